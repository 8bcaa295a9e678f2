package core

// RuntimeConfig carries the platform parameters handed to a play session
// at startup: terminal dimensions, tick pacing, and the RNG seed for
// deterministic rounds.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Real-time ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means seed from the clock in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
