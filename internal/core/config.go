package core

// RuntimeConfig contains configuration passed to the simulation and its frontends.
type RuntimeConfig struct {
	ScreenW  int   // Frontend width (characters for terminals, pixels for windows)
	ScreenH  int   // Frontend height
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for reproducible problems
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  120,
		ScreenH:  40,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
