package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "overworld.yaml"

// Load loads the overworld configuration.
// Search order: customPath -> ~/.overworld/configs/overworld.yaml -> ./configs/overworld.yaml -> embedded default
//
// Files are decoded over DefaultConfig, so a partial file only overrides the
// keys it sets. The result is validated.
func Load(customPath string) (Config, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultOverworldYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults.
// A tiles or sprite pixel list in data replaces the default list entirely.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	cfg.Tiles = nil
	cfg.Sprite.Pixels = nil
	cfg.Sprite.Palette = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}

	def := DefaultConfig()
	if cfg.Tiles == nil {
		cfg.Tiles = def.Tiles
	}
	if cfg.Sprite.Pixels == nil {
		cfg.Sprite.Pixels = def.Sprite.Pixels
		if cfg.Sprite.Palette == nil {
			cfg.Sprite.Palette = def.Sprite.Palette
		}
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".overworld", "configs", filename)
}
