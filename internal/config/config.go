// Package config provides YAML-based gameplay configuration for the palace.
package config

import (
	"time"

	"github.com/vovakirdan/tui-palace/internal/actor"
	"github.com/vovakirdan/tui-palace/internal/object"
)

// PalaceConfig contains all gameplay tuning.
type PalaceConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Damage     DamageConfig     `yaml:"damage"`
	Spring     SpringConfig     `yaml:"spring"`
	Rope       RopeConfig       `yaml:"rope"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Actor      ActorConfig      `yaml:"actor"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// PhysicsConfig defines movement parameters.
type PhysicsConfig struct {
	Speed     float64 `yaml:"speed"`      // units per second
	JumpForce float64 `yaml:"jump_force"` // initial jump velocity
	Gravity   float64 `yaml:"gravity"`    // velocity lost per second
}

// DamageConfig defines fall damage and the health tick.
type DamageConfig struct {
	FallThreshold  float64 `yaml:"fall_threshold"`
	FallScale      float64 `yaml:"fall_scale"`
	BounceCap      int     `yaml:"bounce_cap"`
	ContactDeficit int     `yaml:"contact_deficit"`
	HealthTick     float64 `yaml:"health_tick"` // seconds
	StartHealth    int     `yaml:"start_health"`
}

// SpringConfig defines the spring board.
type SpringConfig struct {
	MaxLevel float64 `yaml:"max_level"`
	Step     float64 `yaml:"step"`
	MaxSteps int     `yaml:"max_steps"`
	Decay    float64 `yaml:"decay"`
	Absorb   float64 `yaml:"absorb"`
}

// RopeConfig defines the drop rope.
type RopeConfig struct {
	Rate  float64 `yaml:"rate"`
	Width float64 `yaml:"width"`
}

// EnemyConfig defines enemy speeds.
type EnemyConfig struct {
	PatrolRate float64 `yaml:"patrol_rate"`
	SpiderRate float64 `yaml:"spider_rate"`
}

// ActorConfig defines the player's frame and collision boxes.
type ActorConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	InsetX       float64 `yaml:"inset_x"`
	DamageInset  float64 `yaml:"damage_inset"`
	DamageHeight float64 `yaml:"damage_height"`
}

// ActorParams converts the config for the actor package.
func (c PalaceConfig) ActorParams() actor.Params {
	return actor.Params{
		Speed:          c.Physics.Speed,
		JumpForce:      c.Physics.JumpForce,
		Gravity:        c.Physics.Gravity,
		FallThreshold:  c.Damage.FallThreshold,
		FallScale:      c.Damage.FallScale,
		Width:          c.Actor.Width,
		Height:         c.Actor.Height,
		InsetX:         c.Actor.InsetX,
		DamageInset:    c.Actor.DamageInset,
		DamageHeight:   c.Actor.DamageHeight,
		ContactDeficit: c.Damage.ContactDeficit,
		StartHealth:    c.Damage.StartHealth,
	}
}

// ObjectParams converts the config for the object package.
func (c PalaceConfig) ObjectParams() object.Params {
	return object.Params{
		SpringMaxLevel: c.Spring.MaxLevel,
		SpringStep:     c.Spring.Step,
		SpringMaxSteps: c.Spring.MaxSteps,
		SpringDecay:    c.Spring.Decay,
		SpringAbsorb:   c.Spring.Absorb,
		RopeRate:       c.Rope.Rate,
		RopeWidth:      c.Rope.Width,
		PatrolRate:     c.Enemy.PatrolRate,
		SpiderRate:     c.Enemy.SpiderRate,
	}
}

// HealthTick returns the health cadence as a duration.
func (c PalaceConfig) HealthTick() time.Duration {
	if c.Damage.HealthTick <= 0 {
		return 125 * time.Millisecond
	}
	return time.Duration(c.Damage.HealthTick * float64(time.Second))
}
