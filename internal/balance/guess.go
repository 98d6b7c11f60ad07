package balance

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrEmptyGuess = errors.New("empty guess")
	ErrNotInteger = errors.New("guess is not an integer")
)

// Feedback messages shown next to the guess box.
const (
	MsgPrompt  = "Enter a value for x."
	MsgFormat  = "Please enter an integer."
	MsgCorrect = "Correct!"
	MsgRetry   = "Try again."
	MsgPanFull = "Pan is full (no column space)."
)

// Tone colors a feedback message.
type Tone int

const (
	ToneNone Tone = iota
	ToneGood
	ToneBad
)

// Feedback is the message under evaluation results.
type Feedback struct {
	Text string
	Tone Tone
}

// ParseGuess converts the trimmed buffer into an integer.
func ParseGuess(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyGuess
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrNotInteger
	}
	return n, nil
}

// CheckGuess evaluates buffer s against the hidden solution.
func CheckGuess(s string, solution int) Feedback {
	n, err := ParseGuess(s)
	switch {
	case errors.Is(err, ErrEmptyGuess):
		return Feedback{Text: MsgPrompt, Tone: ToneBad}
	case err != nil:
		return Feedback{Text: MsgFormat, Tone: ToneBad}
	case n == solution:
		return Feedback{Text: MsgCorrect, Tone: ToneGood}
	default:
		return Feedback{Text: MsgRetry, Tone: ToneBad}
	}
}

// GuessInput is the text buffer of the answer box.
type GuessInput struct {
	text    []rune
	focused bool
	maxLen  int
}

// NewGuessInput creates an empty unfocused box holding at most maxLen runes.
func NewGuessInput(maxLen int) GuessInput {
	return GuessInput{maxLen: maxLen}
}

// Type appends r if it is a digit, or a minus at the start, and there is room.
func (g *GuessInput) Type(r rune) bool {
	if len(g.text) >= g.maxLen {
		return false
	}
	isDigit := r >= '0' && r <= '9'
	isSign := r == '-' && len(g.text) == 0
	if !isDigit && !isSign {
		return false
	}
	g.text = append(g.text, r)
	return true
}

// Erase removes the last rune.
func (g *GuessInput) Erase() {
	if len(g.text) > 0 {
		g.text = g.text[:len(g.text)-1]
	}
}

func (g *GuessInput) Text() string     { return string(g.text) }
func (g *GuessInput) Focused() bool    { return g.focused }
func (g *GuessInput) SetFocus(on bool) { g.focused = on }

// Reset empties and unfocuses the box.
func (g *GuessInput) Reset() {
	g.text = g.text[:0]
	g.focused = false
}
