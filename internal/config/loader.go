package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that may point at a config file.
const EnvConfigPath = "FIFTEEN_CONFIG"

// LoadFifteen loads the puzzle configuration.
// Search order: customPath -> $FIFTEEN_CONFIG -> ~/.fifteen/configs/fifteen.yaml
// -> ./configs/fifteen.yaml -> embedded default.
// Files are decoded on top of the defaults, so partial files are fine.
// An explicit path (flag or environment) that cannot be read is an error;
// the implicit locations are skipped silently.
func LoadFifteen(customPath string) (FifteenConfig, error) {
	if customPath == "" {
		customPath = os.Getenv(EnvConfigPath)
	}

	// Try explicit path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultFifteenConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return DefaultFifteenConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("fifteen.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "fifteen.yaml")); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultFifteenYAML)
	if err != nil {
		return DefaultFifteenConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Marshal encodes a config as YAML.
func Marshal(cfg FifteenConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// decode unmarshals data on top of the hardcoded defaults.
func decode(data []byte) (FifteenConfig, error) {
	cfg := DefaultFifteenConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fifteen", "configs", filename)
}
