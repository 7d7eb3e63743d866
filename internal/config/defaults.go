package config

import (
	_ "embed"
)

//go:embed defaults/palace.yaml
var defaultPalaceYAML []byte

// DefaultPalaceConfig returns the classic tuning.
func DefaultPalaceConfig() PalaceConfig {
	return PalaceConfig{
		Physics: PhysicsConfig{
			Speed:     180,
			JumpForce: 4.9,
			Gravity:   10,
		},
		Damage: DamageConfig{
			FallThreshold:  8,
			FallScale:      3,
			BounceCap:      4,
			ContactDeficit: 1,
			HealthTick:     0.125,
			StartHealth:    100,
		},
		Spring: SpringConfig{
			MaxLevel: 24,
			Step:     4,
			MaxSteps: 3,
			Decay:    5,
			Absorb:   2,
		},
		Rope: RopeConfig{
			Rate:  120,
			Width: 4,
		},
		Enemy: EnemyConfig{
			PatrolRate: 120,
			SpiderRate: 60,
		},
		Actor: ActorConfig{
			Width:        32,
			Height:       32,
			InsetX:       2,
			DamageInset:  6,
			DamageHeight: 28,
		},
		Difficulty: DifficultyNormal,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPalaceYAML
}
