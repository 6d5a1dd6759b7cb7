package game

import (
	"fmt"
	"math"
	"time"
)

type FallState int

const (
	FallStable FallState = iota
	FallFalling
	FallRecovered
)

func (s FallState) String() string {
	switch s {
	case FallStable:
		return "stable"
	case FallFalling:
		return "falling"
	case FallRecovered:
		return "recovered"
	default:
		return "unknown"
	}
}

// StableGround keeps the recent stable positions of one body and watches for
// sustained falls. Owned by exactly one Body.
type StableGround struct {
	history *History

	threshold       time.Duration
	tolerance       float64
	epsilon         float64
	interval        time.Duration
	resetOnRecovery bool

	sinceSample time.Duration
	fallTimer   time.Duration
	state       FallState
	warned      bool
}

func NewStableGround(cfg Config) *StableGround {
	return &StableGround{
		history:         NewHistory(cfg.HistoryCapacity),
		threshold:       cfg.FallThreshold,
		tolerance:       cfg.SpeedFractionTolerance,
		epsilon:         cfg.GroundNormalEpsilon,
		interval:        cfg.SampleInterval,
		resetOnRecovery: cfg.ResetFallTimerOnRecovery,
	}
}

func (s *StableGround) History() *History { return s.history }

func (s *StableGround) State() FallState { return s.state }

func (s *StableGround) FallTimer() time.Duration { return s.fallTimer }

// IsStableNormal reports whether a contact normal is straight up within epsilon.
func (s *StableGround) IsStableNormal(n Vec3) bool {
	return math.Abs(1-float64(n.Y)) <= s.epsilon
}

// Sample records the body's position when it stands on stable ground.
// Returns true when a sample was pushed.
func (s *StableGround) Sample(b *Body, delta time.Duration) bool {
	if s.interval > 0 {
		s.sinceSample += delta
		if s.sinceSample < s.interval {
			return false
		}
		s.sinceSample = 0
	}
	if b.Ground == nil || !s.IsStableNormal(b.Ground.Normal) {
		return false
	}
	s.history.PushFront(b.Position)
	return true
}

// SpeedFraction is 0 at terminal velocity and 1 when not moving vertically.
func SpeedFraction(verticalVelocity, maxSpeed float32) float64 {
	if maxSpeed <= 0 {
		return 1
	}
	return 1 - math.Abs(float64(verticalVelocity))/float64(maxSpeed)
}

// Watch advances the fall watchdog. When the fall timer passes the threshold
// the most recent stable sample is popped and written to the body's position;
// velocity is left as is. With no sample left it returns ErrEmptyHistory once
// per fall and the body stays where it is.
func (s *StableGround) Watch(b *Body, delta time.Duration) (Vec3, bool, error) {
	if SpeedFraction(b.Velocity.Y, b.MaxSpeed) <= s.tolerance {
		s.fallTimer += delta
		if s.state == FallStable {
			s.state = FallFalling
		}
	} else {
		s.resetWatchdog()
	}

	if s.state == FallStable || s.fallTimer < s.threshold {
		return Vec3{}, false, nil
	}

	to, ok := s.history.PopFront()
	if !ok {
		if s.warned {
			return Vec3{}, false, nil
		}
		s.warned = true
		return Vec3{}, false, fmt.Errorf("%w: %s fell for %s", ErrEmptyHistory, b.Name, s.fallTimer)
	}
	b.Position = to
	s.state = FallRecovered
	if s.resetOnRecovery {
		s.resetWatchdog()
	}
	return to, true, nil
}

func (s *StableGround) resetWatchdog() {
	s.fallTimer = 0
	s.state = FallStable
	s.warned = false
}
