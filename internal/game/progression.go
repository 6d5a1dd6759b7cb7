package game

import (
	"fmt"
	"io"
	"log"
	"time"
)

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "unknown"
	}
}

// ProgressionState is owned by a single Controller and only changes through
// RegisterCollection and Tick.
type ProgressionState struct {
	Collected int
	Required  int
	Elapsed   time.Duration
	Deadline  time.Duration
	Terminal  Outcome
}

// Remaining is the time left on the countdown, never negative.
func (s ProgressionState) Remaining() time.Duration {
	return max(s.Deadline-s.Elapsed, 0)
}

type Controller struct {
	state ProgressionState
	world map[CollectibleID]Collectible
	order []CollectibleID
	queue *Queue
	log   *log.Logger
}

func NewController(cfg Config, level Level, queue *Queue, logger *log.Logger) (*Controller, error) {
	if err := level.Validate(); err != nil {
		return nil, err
	}
	required := cfg.RequiredCollectibles
	if required == 0 {
		required = len(level.Collectibles)
	}
	if required > len(level.Collectibles) {
		return nil, fmt.Errorf("%w: %d collectibles required but level %q has %d", ErrInvalidConfig, required, level.Name, len(level.Collectibles))
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	c := &Controller{
		state: ProgressionState{
			Required: required,
			Deadline: cfg.Deadline,
		},
		world: make(map[CollectibleID]Collectible, len(level.Collectibles)),
		order: make([]CollectibleID, 0, len(level.Collectibles)),
		queue: queue,
		log:   logger,
	}
	for _, item := range level.Collectibles {
		c.world[item.ID] = item
		c.order = append(c.order, item.ID)
	}
	return c, nil
}

func (c *Controller) State() ProgressionState {
	return c.state
}

func (c *Controller) Terminal() Outcome {
	return c.state.Terminal
}

func (c *Controller) Remaining() []Collectible {
	out := make([]Collectible, 0, len(c.world))
	for _, id := range c.order {
		if item, ok := c.world[id]; ok {
			out = append(out, item)
		}
	}
	return out
}

// RegisterCollection removes the item from the world and advances progress.
// Reaching the requirement resolves the game as a win.
func (c *Controller) RegisterCollection(id CollectibleID) error {
	if c.state.Terminal != OutcomeNone {
		err := fmt.Errorf("%w: collection of %q after %s", ErrInvariantViolation, id, c.state.Terminal)
		assertInvariant(err)
		return err
	}
	item, ok := c.world[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCollectible, id)
	}
	delete(c.world, id)
	c.state.Collected++
	c.log.Printf("collected %s (%d/%d)", id, c.state.Collected, c.state.Required)

	c.queue.Push(EventCollected, CollectedPayload{
		Item:      item,
		Collected: c.state.Collected,
		Required:  c.state.Required,
	})
	if c.state.Collected == c.state.Required {
		c.resolve(OutcomeWin, EventWin)
	}
	return nil
}

// Tick advances the countdown. Passing the deadline resolves the game as a
// loss. Negative deltas are ignored.
func (c *Controller) Tick(delta time.Duration) error {
	if c.state.Terminal != OutcomeNone {
		err := fmt.Errorf("%w: tick after %s", ErrInvariantViolation, c.state.Terminal)
		assertInvariant(err)
		return err
	}
	if delta > 0 {
		c.state.Elapsed += delta
	}
	if c.state.Elapsed >= c.state.Deadline {
		c.resolve(OutcomeLose, EventLose)
	}
	return nil
}

func (c *Controller) resolve(outcome Outcome, t EventType) {
	c.state.Terminal = outcome
	c.log.Printf("resolved %s after %s", outcome, c.state.Elapsed)
	c.queue.Push(t, OutcomePayload{
		Outcome:   outcome,
		Elapsed:   c.state.Elapsed,
		Collected: c.state.Collected,
		Required:  c.state.Required,
	})
}
