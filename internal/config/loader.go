package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-relative config location.
const LocalConfigPath = "configs/doodle.yaml"

// LoadDoodle loads the Doodle Jump configuration.
// Search order: customPath -> ~/.doodle/configs/doodle.yaml -> ./configs/doodle.yaml -> embedded default.
// Files may be partial; missing keys keep their default values.
func LoadDoodle(customPath string) (DoodleConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultDoodleConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultDoodleConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(LocalConfigPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultDoodleYAML)
	if err != nil {
		return DefaultDoodleConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the default configuration.
func Parse(data []byte) (DoodleConfig, error) {
	cfg := DefaultDoodleConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg DoodleConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".doodle", "configs", "doodle.yaml")
}

// ResolvePath returns the file LoadDoodle would read, or "" when it would
// fall back to the embedded default.
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

// ApplyDoodlePreset modifies the config based on a difficulty preset.
func ApplyDoodlePreset(cfg *DoodleConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Enemies.Every = 15
		cfg.Platforms.BouncyChance = 0.3
	case DifficultyHard:
		cfg.Enemies.Every = 6
		cfg.Platforms.BouncyChance = 0.1
	}
}
