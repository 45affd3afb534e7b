package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHexalines loads the game tuning configuration.
// Search order: customPath -> ~/.hexalines/configs/hexalines.yaml ->
// ./configs/hexalines.yaml -> embedded default.
func LoadHexalines(customPath string) (HexalinesConfig, error) {
	var cfg HexalinesConfig

	// A custom path must exist and parse; anything else is an error.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// User config directory.
	if userCfgPath := userConfigPath("hexalines.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Local configs directory.
	if data, err := os.ReadFile("configs/hexalines.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Embedded default YAML.
	if err := yaml.Unmarshal(defaultHexalinesYAML, &cfg); err != nil {
		return DefaultHexalinesConfig(), nil // fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hexalines", "configs", filename)
}
