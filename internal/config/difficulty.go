package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the damage settings for a difficulty preset.
// Normal leaves the configured values alone.
func ApplyPreset(cfg *PalaceConfig, preset DifficultyPreset) error {
	p, err := ParsePreset(string(preset))
	if err != nil {
		return err
	}
	cfg.Difficulty = p

	switch p {
	case DifficultyEasy:
		cfg.Damage.StartHealth *= 2
		cfg.Damage.FallThreshold += 2
	case DifficultyHard:
		cfg.Damage.StartHealth /= 2
		cfg.Damage.FallScale *= 2
		cfg.Damage.ContactDeficit *= 2
	}
	return nil
}
