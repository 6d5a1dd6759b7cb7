package dialogue

import (
	"math"
	"time"

	"github.com/rivo/uniseg"
)

type RevealState int

const (
	Revealing RevealState = iota
	Complete
)

// Typewriter reveals a fixed text one character (grapheme cluster) at a
// time. The text is captured from the display on the first tick and never
// again; new text needs a new Typewriter.
type Typewriter struct {
	rate     float64
	elapsed  time.Duration
	revealed float64
	full     string
	// bounds[i] is the byte offset just past the i-th grapheme cluster.
	bounds   []int
	captured bool
}

func NewTypewriter(rate float64) *Typewriter {
	return &Typewriter{rate: max(rate, 0)}
}

// Tick advances the reveal and rewrites *text with the revealed prefix.
func (t *Typewriter) Tick(delta time.Duration, text *string) {
	if !t.captured {
		t.capture(*text)
	}
	// Derived from the total elapsed time so many small ticks land exactly
	// on character boundaries.
	if delta > 0 {
		t.elapsed += delta
		t.revealed = math.Min(t.rate*t.elapsed.Seconds(), float64(len(t.bounds)))
	}
	*text = t.Visible()
}

func (t *Typewriter) capture(text string) {
	t.full = text
	t.bounds = t.bounds[:0]
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		_, to := g.Positions()
		t.bounds = append(t.bounds, to)
	}
	t.captured = true
}

// Visible is the revealed prefix, cut on a character boundary.
func (t *Typewriter) Visible() string {
	n := t.VisibleCount()
	if n == 0 {
		return ""
	}
	return t.full[:t.bounds[n-1]]
}

func (t *Typewriter) VisibleCount() int {
	return int(math.Floor(t.revealed))
}

func (t *Typewriter) Revealed() float64 { return t.revealed }

func (t *Typewriter) Total() int { return len(t.bounds) }

func (t *Typewriter) Rate() float64 { return t.rate }

func (t *Typewriter) FullText() string { return t.full }

func (t *Typewriter) Captured() bool { return t.captured }

func (t *Typewriter) State() RevealState {
	if t.captured && t.revealed >= float64(len(t.bounds)) {
		return Complete
	}
	return Revealing
}
