package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/balancing-act/internal/balance"
	"github.com/vovakirdan/balancing-act/internal/config"
)

var (
	flagCount   int
	flagAnswers bool
)

var problemCmd = &cobra.Command{
	Use:   "problem",
	Short: "Print generated equations",
	Long: `Print equations from the same generator the scale uses, one per line.
Useful for worksheets. With --seed the list is reproducible.

Examples:
  balance problem --count 10
  balance problem --count 5 --answers --seed 3`,
	Args: cobra.NoArgs,
	RunE: runProblem,
}

func init() {
	problemCmd.Flags().IntVarP(&flagCount, "count", "n", 1, "Number of equations")
	problemCmd.Flags().BoolVar(&flagAnswers, "answers", false, "Print the solution after each equation")
}

func runProblem(cmd *cobra.Command, _ []string) error {
	logger := loggerFromContext(cmd.Context())
	if flagCount < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", flagCount)
	}

	scale, err := loadScale(logger)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fallbacks := writeProblems(cmd.OutOrStdout(), rand.New(rand.NewSource(seed)), scale.Generator, flagCount, flagAnswers)
	if fallbacks > 0 {
		logger.Warn("generator fell back to the default equation", "times", fallbacks)
	}
	return nil
}

// writeProblems prints n numbered equations and returns how many were the
// fallback.
func writeProblems(w io.Writer, rng *rand.Rand, cfg config.GeneratorConfig, n int, answers bool) int {
	fallbacks := 0
	for i := range n {
		eq, ok := balance.Generate(rng, cfg)
		if !ok {
			fallbacks++
		}
		if answers {
			fmt.Fprintf(w, "%3d. %s    x = %d\n", i+1, eq, eq.Solution)
		} else {
			fmt.Fprintf(w, "%3d. %s\n", i+1, eq)
		}
	}
	return fallbacks
}
