package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/wall2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PollInterval:     50 * time.Millisecond,
		CelebrateFor:     3 * time.Second,
		AutoRestartAfter: 5 * time.Second,
		Target:           2048,
		Spawn: SpawnConfig{
			Normal: []SpawnWeight{
				{Value: 2, Weight: 0.9},
				{Value: 4, Weight: 0.1},
			},
			Hack: []SpawnWeight{
				{Value: 8, Weight: 0.5},
				{Value: 16, Weight: 0.5},
			},
		},
		Render: RenderConfig{
			TileSize: 100,
		},
		Wallpaper: WallpaperConfig{
			Backend: "auto",
		},
		LogLevel: "info",
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `wall2048 config`.
func DefaultYAML() []byte {
	return defaultYAML
}
