package core

// RuntimeConfig contains host settings passed to a game session.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal) or pixels (window)
	ScreenH  int   // Screen height in characters (terminal) or pixels (window)
	TickRate int   // Host frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
