package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/snake.yaml"

// Load loads and validates the snake configuration.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Files are applied on top of the defaults, so they may set only some keys.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then the local configs directory.
	// Unreadable or malformed files here are skipped rather than reported.
	for _, path := range []string{userConfigPath("config.yaml"), localConfigPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultSnakeYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// parse decodes data on top of the hardcoded defaults.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}
