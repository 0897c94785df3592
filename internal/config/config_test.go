package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	g, err := LoadGetaway("")
	if err != nil {
		t.Fatalf("LoadGetaway: %v", err)
	}
	want := DefaultGetawayConfig()
	if g.Timing != want.Timing {
		t.Errorf("timing = %+v, want %+v", g.Timing, want.Timing)
	}
	if g.Scoring != want.Scoring {
		t.Errorf("scoring = %+v, want %+v", g.Scoring, want.Scoring)
	}
	if g.Entities != want.Entities {
		t.Errorf("entities = %+v, want %+v", g.Entities, want.Entities)
	}
	if g.Timing.ObstaclePeriod != 1500*time.Millisecond {
		t.Errorf("obstacle period = %v, want 1.5s", g.Timing.ObstaclePeriod)
	}

	u, err := LoadUpdates("")
	if err != nil {
		t.Fatalf("LoadUpdates: %v", err)
	}
	if u != DefaultUpdatesConfig() {
		t.Errorf("updates = %+v, want %+v", u, DefaultUpdatesConfig())
	}
}

func TestLoadGetawayCustomPathOverridesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "getaway.yaml")
	data := "scoring:\n  lives: 5\ntiming:\n  coin_period: 2s\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGetaway(path)
	if err != nil {
		t.Fatalf("LoadGetaway: %v", err)
	}
	if cfg.Scoring.Lives != 5 {
		t.Errorf("lives = %d, want 5", cfg.Scoring.Lives)
	}
	if cfg.Timing.CoinPeriod != 2*time.Second {
		t.Errorf("coin period = %v, want 2s", cfg.Timing.CoinPeriod)
	}
	// Untouched fields keep their defaults
	if cfg.Scoring.CoinBonus != 50 {
		t.Errorf("coin bonus = %d, want 50", cfg.Scoring.CoinBonus)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadGetaway(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("scoring:\n  lives: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadGetaway(path)
	if err == nil || !strings.Contains(err.Error(), "lives") {
		t.Errorf("expected lives validation error, got %v", err)
	}

	path = filepath.Join(t.TempDir(), "updates.yaml")
	if err := os.WriteFile(path, []byte("fallback_url: \"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadUpdates(path); err == nil {
		t.Error("expected error when no update source is configured")
	}
}

func TestApplyGetawayPreset(t *testing.T) {
	cfg := DefaultGetawayConfig()
	ApplyGetawayPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset = %+v", cfg.Difficulty)
	}

	ApplyGetawayPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	before := cfg.Difficulty
	ApplyGetawayPreset(&cfg, ParseDifficultyPreset("impossible"))
	if cfg.Difficulty != before {
		t.Error("unknown preset should keep the loaded settings")
	}
}

func TestDifficultySpeed(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	}
	dm := NewDifficultyManager(cfg)

	if got := dm.Speed(4, 0, 0); got != 4 {
		t.Errorf("speed at score 0 = %v, want 4", got)
	}
	if got := dm.Speed(4, 500, 0); got != 6 {
		t.Errorf("speed at score 500 = %v, want 6", got)
	}
	if got := dm.Speed(4, 5000, 0); got != 8 {
		t.Errorf("speed past max_at = %v, want 8", got)
	}

	if !dm.IsEnabled() {
		t.Error("score progression should be enabled")
	}

	cfg.Enabled = false
	dm = NewDifficultyManager(cfg)
	if dm.IsEnabled() {
		t.Error("disabled config reports progression")
	}
	if got := dm.Speed(4, 5000, 0); got != 4 {
		t.Errorf("disabled speed = %v, want 4", got)
	}
}

func TestGetDefaultYAML(t *testing.T) {
	for _, tc := range []struct {
		name string
		key  string
	}{
		{"getaway", "scoring:"},
		{"updates", "max_updates:"},
	} {
		data := GetDefaultYAML(tc.name)
		if !strings.Contains(string(data), tc.key) {
			t.Errorf("GetDefaultYAML(%q) lacks %q", tc.name, tc.key)
		}
	}
	if GetDefaultYAML("snake") != nil {
		t.Error("unknown config name should have no defaults")
	}
}
