package core

// RuntimeConfig contains the per-session values the platform passes down.
type RuntimeConfig struct {
	ScreenW int   // Viewport width in characters
	ScreenH int   // Viewport height in characters
	Seed    int64 // RNG seed for deterministic world generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 150,
		ScreenH: 50,
		Seed:    0, // 0 means use current time in platform layer
	}
}
