package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-palace/internal/actor"
	"github.com/vovakirdan/tui-palace/internal/object"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(DefaultYAML()) error = %v", err)
	}
	if cfg != DefaultPalaceConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultPalaceConfig())
	}
}

func TestConversionsMatchPackageDefaults(t *testing.T) {
	cfg := DefaultPalaceConfig()
	if got := cfg.ActorParams(); got != actor.DefaultParams() {
		t.Errorf("ActorParams() = %+v, expected %+v", got, actor.DefaultParams())
	}
	if got := cfg.ObjectParams(); got != object.DefaultParams() {
		t.Errorf("ObjectParams() = %+v, expected %+v", got, object.DefaultParams())
	}
	if got := cfg.HealthTick(); got != 125*time.Millisecond {
		t.Errorf("HealthTick() = %v, expected 125ms", got)
	}
}

func TestLoadPalaceCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palace.yaml")
	data := []byte("physics:\n  gravity: 12\ndifficulty: hard\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPalace(path)
	if err != nil {
		t.Fatalf("LoadPalace() error = %v", err)
	}
	if cfg.Physics.Gravity != 12 {
		t.Errorf("Gravity = %v, expected 12", cfg.Physics.Gravity)
	}
	if cfg.Physics.Speed != 180 {
		t.Errorf("Speed = %v, expected the default 180", cfg.Physics.Speed)
	}
	if cfg.Damage.StartHealth != 50 {
		t.Errorf("StartHealth = %d, expected 50 on hard", cfg.Damage.StartHealth)
	}
}

func TestLoadPalaceErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	unknown := filepath.Join(dir, "unknown.yaml")
	if err := os.WriteFile(unknown, []byte("difficulty: brutal\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.yaml")},
		{name: "bad yaml", path: bad},
		{name: "unknown preset", path: unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadPalace(tt.path); err == nil {
				t.Error("LoadPalace() error = nil, expected an error")
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset        DifficultyPreset
		wantHealth    int
		wantThreshold float64
		wantDeficit   int
	}{
		{preset: DifficultyEasy, wantHealth: 200, wantThreshold: 10, wantDeficit: 1},
		{preset: DifficultyNormal, wantHealth: 100, wantThreshold: 8, wantDeficit: 1},
		{preset: "", wantHealth: 100, wantThreshold: 8, wantDeficit: 1},
		{preset: DifficultyHard, wantHealth: 50, wantThreshold: 8, wantDeficit: 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultPalaceConfig()
			if err := ApplyPreset(&cfg, tt.preset); err != nil {
				t.Fatalf("ApplyPreset() error = %v", err)
			}
			if cfg.Damage.StartHealth != tt.wantHealth {
				t.Errorf("StartHealth = %d, expected %d", cfg.Damage.StartHealth, tt.wantHealth)
			}
			if cfg.Damage.FallThreshold != tt.wantThreshold {
				t.Errorf("FallThreshold = %v, expected %v", cfg.Damage.FallThreshold, tt.wantThreshold)
			}
			if cfg.Damage.ContactDeficit != tt.wantDeficit {
				t.Errorf("ContactDeficit = %d, expected %d", cfg.Damage.ContactDeficit, tt.wantDeficit)
			}
		})
	}
}

func TestLoadPalaceWithPresetOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palace.yaml")
	if err := os.WriteFile(path, []byte("difficulty: hard\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPalaceWithPreset(path, DifficultyEasy)
	if err != nil {
		t.Fatalf("LoadPalaceWithPreset() error = %v", err)
	}
	if cfg.Difficulty != DifficultyEasy || cfg.Damage.StartHealth != 200 {
		t.Errorf("LoadPalaceWithPreset() = %s with health %d, expected easy with 200", cfg.Difficulty, cfg.Damage.StartHealth)
	}

	if _, err := LoadPalaceWithPreset(path, "brutal"); err == nil {
		t.Error("LoadPalaceWithPreset() error = nil, expected an unknown preset error")
	}
}
