package core

// RuntimeConfig contains host parameters passed to the platform layer.
// The playfield itself is measured in pixels and configured separately;
// ScreenW/ScreenH only decide how that playfield is scaled onto the terminal.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second delivered to the session (default 60)
	Seed     int64 // RNG seed for spawn positions and categories
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

// FrameDeltaMs returns the nominal frame duration in milliseconds.
func (c RuntimeConfig) FrameDeltaMs() float64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return 1000.0 / float64(rate)
}
