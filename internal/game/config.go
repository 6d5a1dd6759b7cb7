package game

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Float32Epsilon is the machine epsilon of float32, the precision positions
// and normals are carried in.
const Float32Epsilon = 0x1p-23

// Config is the overridable constant surface of the core. Every field can be
// set from the environment.
type Config struct {
	Deadline             time.Duration `env:"MISPLACED_DEADLINE"          envDefault:"5m"`
	RequiredCollectibles int           `env:"MISPLACED_REQUIRED"          envDefault:"0"`

	HistoryCapacity        int           `env:"MISPLACED_HISTORY_CAPACITY" envDefault:"5"`
	FallThreshold          time.Duration `env:"MISPLACED_FALL_THRESHOLD"   envDefault:"5s"`
	SpeedFractionTolerance float64       `env:"MISPLACED_SPEED_TOLERANCE"  envDefault:"0.01"`
	GroundNormalEpsilon    float64       `env:"MISPLACED_GROUND_EPSILON"   envDefault:"1.1920929e-07"`
	SampleInterval         time.Duration `env:"MISPLACED_SAMPLE_INTERVAL"  envDefault:"0s"`
	// ResetFallTimerOnRecovery is off by default: after a recovery the body
	// keeps its velocity and the timer stays past the threshold, so a body
	// still at terminal velocity recovers again on the next tick.
	ResetFallTimerOnRecovery bool `env:"MISPLACED_RESET_FALL_TIMER" envDefault:"false"`

	DefaultRevealRate float64 `env:"MISPLACED_REVEAL_RATE" envDefault:"15"`

	AssetsDir string `env:"MISPLACED_ASSETS_DIR" envDefault:"assets"`
	LevelFile string `env:"MISPLACED_LEVEL_FILE"`
}

func DefaultConfig() Config {
	return Config{
		Deadline:               5 * time.Minute,
		HistoryCapacity:        5,
		FallThreshold:          5 * time.Second,
		SpeedFractionTolerance: 0.01,
		GroundNormalEpsilon:    Float32Epsilon,
		DefaultRevealRate:      15,
		AssetsDir:              "assets",
	}
}

// LoadConfigFromEnv parses MISPLACED_* variables over the defaults.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Deadline <= 0 {
		return fmt.Errorf("%w: deadline must be positive, got %s", ErrInvalidConfig, c.Deadline)
	}
	if c.RequiredCollectibles < 0 {
		return fmt.Errorf("%w: required collectibles must not be negative, got %d", ErrInvalidConfig, c.RequiredCollectibles)
	}
	if c.HistoryCapacity < 1 {
		return fmt.Errorf("%w: history capacity must be at least 1, got %d", ErrInvalidConfig, c.HistoryCapacity)
	}
	if c.FallThreshold <= 0 {
		return fmt.Errorf("%w: fall threshold must be positive, got %s", ErrInvalidConfig, c.FallThreshold)
	}
	if c.SpeedFractionTolerance < 0 || c.SpeedFractionTolerance >= 1 {
		return fmt.Errorf("%w: speed tolerance must be in [0,1), got %g", ErrInvalidConfig, c.SpeedFractionTolerance)
	}
	if c.GroundNormalEpsilon < 0 {
		return fmt.Errorf("%w: ground epsilon must not be negative, got %g", ErrInvalidConfig, c.GroundNormalEpsilon)
	}
	if c.SampleInterval < 0 {
		return fmt.Errorf("%w: sample interval must not be negative, got %s", ErrInvalidConfig, c.SampleInterval)
	}
	if c.DefaultRevealRate <= 0 {
		return fmt.Errorf("%w: reveal rate must be positive, got %g", ErrInvalidConfig, c.DefaultRevealRate)
	}
	return nil
}
