package game

import (
	"errors"
	"testing"
	"time"
)

func TestLoadConfigFromEnvDefaults(t *testing.T) {
	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := DefaultConfig()
	if cfg.Deadline != want.Deadline || cfg.HistoryCapacity != want.HistoryCapacity || cfg.FallThreshold != want.FallThreshold {
		t.Fatalf("defaults differ: got %#v want %#v", cfg, want)
	}
	if cfg.SpeedFractionTolerance != want.SpeedFractionTolerance || cfg.DefaultRevealRate != want.DefaultRevealRate {
		t.Fatalf("defaults differ: got %#v want %#v", cfg, want)
	}
	if float32(cfg.GroundNormalEpsilon) != float32(Float32Epsilon) {
		t.Fatalf("ground epsilon: got %g want %g", cfg.GroundNormalEpsilon, Float32Epsilon)
	}
}

func TestLoadConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("MISPLACED_DEADLINE", "90s")
	t.Setenv("MISPLACED_REQUIRED", "3")
	t.Setenv("MISPLACED_HISTORY_CAPACITY", "8")
	t.Setenv("MISPLACED_RESET_FALL_TIMER", "true")
	t.Setenv("MISPLACED_ASSETS_DIR", "/tmp/misplaced")

	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Deadline != 90*time.Second || cfg.RequiredCollectibles != 3 || cfg.HistoryCapacity != 8 {
		t.Fatalf("overrides not applied: %#v", cfg)
	}
	if !cfg.ResetFallTimerOnRecovery || cfg.AssetsDir != "/tmp/misplaced" {
		t.Fatalf("overrides not applied: %#v", cfg)
	}
}

func TestLoadConfigFromEnvRejectsInvalid(t *testing.T) {
	t.Setenv("MISPLACED_HISTORY_CAPACITY", "0")
	if _, err := LoadConfigFromEnv(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("got %v want ErrInvalidConfig", err)
	}
}

func TestLoadConfigFromEnvRejectsUnparsable(t *testing.T) {
	t.Setenv("MISPLACED_DEADLINE", "soon")
	if _, err := LoadConfigFromEnv(); err == nil {
		t.Fatalf("expected parse error")
	}
}
