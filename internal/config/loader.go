package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the search directories.
const configFile = "blockdrop.yaml"

// LoadBlockDrop loads BlockDrop configuration.
// Search order: customPath -> ~/.blockdrop/configs/blockdrop.yaml -> ./configs/blockdrop.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadBlockDrop(customPath string) (BlockDropConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BlockDropConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return BlockDropConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultBlockDropYAML)
	if err != nil {
		return DefaultBlockDropConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the default configuration.
func parse(data []byte) (BlockDropConfig, error) {
	cfg := DefaultBlockDropConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BlockDropConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := DataDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// DataDir returns ~/.blockdrop, or empty if home is unavailable.
// The score database and log file live here by default.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockdrop")
}
