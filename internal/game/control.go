package game

import "sort"

// ControlGate tracks who is holding player input. Input is enabled only
// when nobody holds it.
type ControlGate struct {
	holds map[string]struct{}
}

func NewControlGate() *ControlGate {
	return &ControlGate{holds: make(map[string]struct{})}
}

func (g *ControlGate) Suspend(key string) {
	g.holds[key] = struct{}{}
}

func (g *ControlGate) Resume(key string) {
	delete(g.holds, key)
}

func (g *ControlGate) Enabled() bool {
	return len(g.holds) == 0
}

func (g *ControlGate) Holders() []string {
	out := make([]string, 0, len(g.holds))
	for k := range g.holds {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
