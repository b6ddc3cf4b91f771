package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPopper loads the popper configuration.
// Search order: customPath -> ~/.popper/configs/popper.yaml -> ./configs/popper.yaml -> embedded default
//
// Files are decoded over DefaultPopperConfig, so a partial file only overrides
// the keys it names. Only a custom path reports read and parse errors; the
// other locations are skipped when unusable.
func LoadPopper(customPath string) (PopperConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PopperConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return PopperConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("popper.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "popper.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultPopperYAML)
	if err != nil {
		return DefaultPopperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the defaults.
func parse(data []byte) (PopperConfig, error) {
	cfg := DefaultPopperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PopperConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".popper", "configs", filename)
}
