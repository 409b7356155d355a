package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-relative location checked after the user config.
const LocalConfigPath = "configs/debris.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.debris/configs/debris.yaml -> ./configs/debris.yaml -> embedded default
func Load(customPath string) (DebrisConfig, error) {
	// Try custom path first
	if customPath != "" {
		return LoadFile(customPath)
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := LoadFile(LocalConfigPath); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultDebrisYAML)
	if err != nil {
		return DefaultDebrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads, parses and validates a single config file.
// Fields missing from the file keep their default values.
func LoadFile(path string) (DebrisConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DebrisConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return DebrisConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes YAML on top of the defaults and validates the result.
func parse(data []byte) (DebrisConfig, error) {
	cfg := DefaultDebrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DebrisConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return DebrisConfig{}, err
	}
	return cfg, nil
}

// ResolvePath returns the file Load would read, or "" when the embedded default is used.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	if p := UserConfigPath(); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if _, err := os.Stat(LocalConfigPath); err == nil {
		return LocalConfigPath
	}
	return ""
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".debris", "configs", "debris.yaml")
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *DebrisConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	// Adjust survival and prices based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 15
	case DifficultyNormal:
		cfg.Player.Lives = 10
	case DifficultyHard:
		cfg.Player.Lives = 5
		cfg.Economy.Crossbow.Price = hardPrice(cfg.Economy.Crossbow.Price)
		cfg.Economy.Explosives.Price = hardPrice(cfg.Economy.Explosives.Price)
		cfg.Economy.ClearAll.Price = hardPrice(cfg.Economy.ClearAll.Price)
	}
}

// hardPrice raises a price by half, rounding up.
func hardPrice(p int) int {
	return p + (p+1)/2
}
