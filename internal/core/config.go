package core

import "time"

// RuntimeConfig contains the settings the session loop needs at start.
// It is filled from the YAML config and CLI flags by the platform layer.
type RuntimeConfig struct {
	PollInterval     time.Duration // Delay between input polls
	CelebrateFor     time.Duration // How long the win overlay stays on the wallpaper
	AutoRestartAfter time.Duration // Restart this long after game over (0 = wait for input)
	Target           int           // Tile value that wins the game
	Seed             int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		PollInterval:     50 * time.Millisecond,
		CelebrateFor:     3 * time.Second,
		AutoRestartAfter: 0,
		Target:           2048,
		Seed:             0, // 0 means use current time in platform layer
	}
}
