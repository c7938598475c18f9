package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration.
// Search order: customPath -> ~/.wall2048/config.yaml -> ./configs/wall2048.yaml -> embedded default
// Values missing from a file keep their defaults.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "wall2048.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the game cannot run with.
func (c Config) Validate() error {
	if c.PollInterval <= 0 {
		return fmt.Errorf("config: poll_interval must be positive, got %s", c.PollInterval)
	}
	if c.CelebrateFor < 0 || c.AutoRestartAfter < 0 {
		return fmt.Errorf("config: durations must not be negative")
	}
	if !isTileValue(c.Target) {
		return fmt.Errorf("config: target %d is not a power of two >= 4", c.Target)
	}
	if c.Render.TileSize < 16 {
		return fmt.Errorf("config: render.tile_size %d is too small (min 16)", c.Render.TileSize)
	}
	for name, weights := range map[string][]SpawnWeight{"normal": c.Spawn.Normal, "hack": c.Spawn.Hack} {
		var total float64
		for _, w := range weights {
			total += w.Weight
			if !isTileValue(w.Value) && w.Value != 2 {
				return fmt.Errorf("config: spawn.%s value %d is not a power of two", name, w.Value)
			}
			if w.Weight < 0 {
				return fmt.Errorf("config: spawn.%s weight for %d is negative", name, w.Value)
			}
		}
		if len(weights) > 0 && total <= 0 {
			return fmt.Errorf("config: spawn.%s weights must add up to more than 0", name)
		}
	}
	return nil
}

// isTileValue reports whether v is a power of two >= 4.
func isTileValue(v int) bool {
	return v >= 4 && v&(v-1) == 0
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wall2048", filename)
}

// OutputPath returns the PNG path, defaulting to the temp directory.
func (c Config) OutputPath() string {
	if c.Render.Output != "" {
		return c.Render.Output
	}
	return filepath.Join(os.TempDir(), "2048.png")
}
