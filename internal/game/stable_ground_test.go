package game

import (
	"errors"
	"testing"
	"time"
)

const testMaxSpeed = 50

func fallingBody(cfg Config) *Body {
	b := NewBody("player", Vec3{}, testMaxSpeed, cfg)
	b.Velocity.Y = -testMaxSpeed
	return b
}

func TestWatchRestoresLastStableSampleOnce(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBody("player", Vec3{X: 1, Y: 2, Z: 3}, testMaxSpeed, cfg)
	b.Ground = &Contact{Normal: Up}
	rec := b.Recovery()
	if !rec.Sample(b, 16*time.Millisecond) {
		t.Fatalf("expected a sample on flat ground")
	}
	stable := b.Position

	b.Ground = nil
	b.Velocity.Y = -testMaxSpeed
	recoveries := 0
	skipped := 0
	for range 51 {
		b.Position.Y -= 1
		rec.Sample(b, 100*time.Millisecond)
		_, recovered, err := rec.Watch(b, 100*time.Millisecond)
		if recovered {
			recoveries++
			if b.Position != stable {
				t.Fatalf("recovered to %v want %v", b.Position, stable)
			}
		}
		if err != nil {
			skipped++
		}
	}

	if recoveries != 1 {
		t.Fatalf("recoveries: got %d want 1", recoveries)
	}
	if skipped != 1 {
		t.Fatalf("empty history warnings: got %d want 1", skipped)
	}
	if b.Velocity.Y != -testMaxSpeed {
		t.Fatalf("velocity should be left alone, got %v", b.Velocity)
	}
}

func TestWatchWithEmptyHistoryLeavesBodyDisplaced(t *testing.T) {
	cfg := DefaultConfig()
	b := fallingBody(cfg)
	b.Position = Vec3{Y: -40}

	_, recovered, err := b.Recovery().Watch(b, 6*time.Second)
	if recovered {
		t.Fatalf("unexpected recovery without history")
	}
	if !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("err: got %v want ErrEmptyHistory", err)
	}
	if b.Position.Y != -40 {
		t.Fatalf("body moved to %v", b.Position)
	}
	if _, _, err := b.Recovery().Watch(b, time.Second); err != nil {
		t.Fatalf("expected one warning per fall, got %v", err)
	}
}

func TestWatchResetsWhenFallStops(t *testing.T) {
	cfg := DefaultConfig()
	b := fallingBody(cfg)
	rec := b.Recovery()

	_, _, _ = rec.Watch(b, 4*time.Second)
	if rec.State() != FallFalling || rec.FallTimer() != 4*time.Second {
		t.Fatalf("state %s timer %s", rec.State(), rec.FallTimer())
	}

	b.Velocity.Y = -testMaxSpeed / 2
	_, _, _ = rec.Watch(b, time.Second)
	if rec.State() != FallStable || rec.FallTimer() != 0 {
		t.Fatalf("expected reset, got state %s timer %s", rec.State(), rec.FallTimer())
	}
}

func TestWatchRetriggersUnlessTimerResetOnRecovery(t *testing.T) {
	for _, tc := range []struct {
		name  string
		reset bool
		want  int
	}{
		{name: "keep timer", reset: false, want: 2},
		{name: "reset timer", reset: true, want: 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ResetFallTimerOnRecovery = tc.reset
			b := fallingBody(cfg)
			rec := b.Recovery()
			rec.History().PushFront(Vec3{X: 1})
			rec.History().PushFront(Vec3{X: 2})

			recoveries := 0
			for range 3 {
				if _, ok, _ := rec.Watch(b, 5*time.Second/2); ok {
					recoveries++
				}
			}
			if recoveries != tc.want {
				t.Fatalf("recoveries: got %d want %d", recoveries, tc.want)
			}
		})
	}
}

func TestSampleRequiresFlatGround(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBody("player", Vec3{}, testMaxSpeed, cfg)
	rec := b.Recovery()

	if rec.Sample(b, time.Millisecond) {
		t.Fatalf("sampled while airborne")
	}
	b.Ground = &Contact{Normal: Vec3{X: 0.1, Y: 0.995}}
	if rec.Sample(b, time.Millisecond) {
		t.Fatalf("sampled on a slope")
	}
	b.Ground = &Contact{Normal: Up}
	if !rec.Sample(b, time.Millisecond) {
		t.Fatalf("expected sample on flat ground")
	}
	if rec.History().Len() != 1 {
		t.Fatalf("history len: got %d want 1", rec.History().Len())
	}
}

func TestSampleIntervalThrottles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleInterval = 100 * time.Millisecond
	b := NewBody("player", Vec3{}, testMaxSpeed, cfg)
	b.Ground = &Contact{Normal: Up}

	samples := 0
	for range 10 {
		if b.Recovery().Sample(b, 50*time.Millisecond) {
			samples++
		}
	}
	if samples != 5 {
		t.Fatalf("samples: got %d want 5", samples)
	}
}

func TestSpeedFraction(t *testing.T) {
	if got := SpeedFraction(-50, 50); got != 0 {
		t.Fatalf("terminal velocity: got %v want 0", got)
	}
	if got := SpeedFraction(0, 50); got != 1 {
		t.Fatalf("at rest: got %v want 1", got)
	}
	if got := SpeedFraction(-10, 0); got != 1 {
		t.Fatalf("no max speed: got %v want 1", got)
	}
}

func TestRespawnClearsWatchdogKeepsHistory(t *testing.T) {
	cfg := DefaultConfig()
	b := fallingBody(cfg)
	b.Recovery().History().PushFront(Vec3{X: 3})
	_, _, _ = b.Recovery().Watch(b, 2*time.Second)

	b.Respawn(Vec3{Z: 6})
	if b.Position != (Vec3{Z: 6}) || b.Velocity != (Vec3{}) {
		t.Fatalf("respawn: position %v velocity %v", b.Position, b.Velocity)
	}
	if b.Recovery().FallTimer() != 0 || b.Recovery().State() != FallStable {
		t.Fatalf("watchdog not reset")
	}
	if b.Recovery().History().Len() != 1 {
		t.Fatalf("history dropped on respawn")
	}
}
