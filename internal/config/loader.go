package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the config directories.
const FileName = "palace.yaml"

// LoadPalace loads the gameplay configuration. Keys missing from the file
// keep their defaults, and the difficulty preset is applied last.
// Search order: customPath -> ~/.palace/configs/palace.yaml -> ./configs/palace.yaml -> embedded default
func LoadPalace(customPath string) (PalaceConfig, error) {
	return LoadPalaceWithPreset(customPath, "")
}

// LoadPalaceWithPreset is LoadPalace with the file's difficulty replaced by
// preset when preset is not empty.
func LoadPalaceWithPreset(customPath string, preset DifficultyPreset) (PalaceConfig, error) {
	if _, err := ParsePreset(string(preset)); err != nil {
		return PalaceConfig{}, err
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PalaceConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseWithPreset(data, preset)
		if err != nil {
			return PalaceConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseWithPreset(data, preset); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := parseWithPreset(data, preset); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseWithPreset(defaultPalaceYAML, preset)
	if err != nil {
		// Fallback to hardcoded if embed fails
		cfg = DefaultPalaceConfig()
		_ = ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

func parse(data []byte) (PalaceConfig, error) {
	return parseWithPreset(data, "")
}

func parseWithPreset(data []byte, preset DifficultyPreset) (PalaceConfig, error) {
	cfg := DefaultPalaceConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PalaceConfig{}, err
	}
	if preset != "" {
		cfg.Difficulty = preset
	}
	if err := ApplyPreset(&cfg, cfg.Difficulty); err != nil {
		return PalaceConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".palace", "configs", filename)
}
