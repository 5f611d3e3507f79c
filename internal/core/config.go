package core

import "time"

// RuntimeConfig contains the platform parameters a session is started with.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Polling period of the session loop
	SpawnDelay   time.Duration // How long the pre-spawn frame stays on screen
	Seed         int64         // RNG seed; 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 500 * time.Millisecond,
		SpawnDelay:   200 * time.Millisecond,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// ResolveSeed returns the configured seed, or a time-derived one when unset.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
