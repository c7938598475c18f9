// Package config provides YAML-based configuration loading for wall2048.
package config

import (
	"time"

	"github.com/vovakirdan/wall2048/internal/board"
	"github.com/vovakirdan/wall2048/internal/core"
)

// Config contains all user-tunable settings.
type Config struct {
	PollInterval     time.Duration   `yaml:"poll_interval"`
	CelebrateFor     time.Duration   `yaml:"celebrate_for"`
	AutoRestartAfter time.Duration   `yaml:"auto_restart_after"`
	Target           int             `yaml:"target"`
	Spawn            SpawnConfig     `yaml:"spawn"`
	Render           RenderConfig    `yaml:"render"`
	Wallpaper        WallpaperConfig `yaml:"wallpaper"`
	LogLevel         string          `yaml:"log_level"`
}

// SpawnConfig defines the tile distributions.
type SpawnConfig struct {
	Normal []SpawnWeight `yaml:"normal"`
	Hack   []SpawnWeight `yaml:"hack"`
}

// SpawnWeight is one entry of a spawn distribution.
type SpawnWeight struct {
	Value  int     `yaml:"value"`
	Weight float64 `yaml:"weight"`
}

// RenderConfig defines image output parameters.
type RenderConfig struct {
	TileSize int      `yaml:"tile_size"`
	Output   string   `yaml:"output"` // PNG path; empty means temp dir
	Fonts    []string `yaml:"fonts"`  // Tried before the built-in search list
}

// WallpaperConfig selects the desktop backend.
type WallpaperConfig struct {
	Backend string `yaml:"backend"`
	Style   string `yaml:"style"`
}

// Runtime extracts the loop settings.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		PollInterval:     c.PollInterval,
		CelebrateFor:     c.CelebrateFor,
		AutoRestartAfter: c.AutoRestartAfter,
		Target:           c.Target,
	}
}

// NormalSpawns converts the normal distribution for the board engine.
func (c Config) NormalSpawns() []board.SpawnWeight {
	return toWeights(c.Spawn.Normal, board.NormalSpawns)
}

// HackSpawns converts the hack distribution for the board engine.
func (c Config) HackSpawns() []board.SpawnWeight {
	return toWeights(c.Spawn.Hack, board.HackSpawns)
}

func toWeights(in []SpawnWeight, fallback []board.SpawnWeight) []board.SpawnWeight {
	if len(in) == 0 {
		return fallback
	}
	out := make([]board.SpawnWeight, len(in))
	for i, w := range in {
		out[i] = board.SpawnWeight{Value: w.Value, Weight: w.Weight}
	}
	return out
}
