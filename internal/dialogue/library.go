package dialogue

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Library maps dialogue ids to nodes. Branch targets are checked when the
// library is built, so a resolved graph never dangles.
type Library struct {
	nodes map[ID]Node
}

func NewLibrary(nodes ...Node) (*Library, error) {
	l := &Library{nodes: make(map[ID]Node, len(nodes))}
	for _, n := range nodes {
		if strings.TrimSpace(string(n.ID)) == "" {
			return nil, fmt.Errorf("%w: node without id", ErrInvalidScript)
		}
		if _, dup := l.nodes[n.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate node %q", ErrInvalidScript, n.ID)
		}
		if n.Rate < 0 {
			return nil, fmt.Errorf("%w: node %q has negative rate", ErrInvalidScript, n.ID)
		}
		l.nodes[n.ID] = n
	}
	for _, n := range l.nodes {
		if n.Advance.Kind != AdvanceBranch {
			continue
		}
		if n.Final {
			return nil, fmt.Errorf("%w: final node %q cannot branch", ErrInvalidScript, n.ID)
		}
		if _, ok := l.nodes[n.Advance.Next]; !ok {
			return nil, fmt.Errorf("%w: node %q branches to unknown %q", ErrInvalidScript, n.ID, n.Advance.Next)
		}
	}
	return l, nil
}

// Resolve returns the node for id. Unknown ids wrap ErrMissingAsset and carry
// the closest known id when one is near enough.
func (l *Library) Resolve(id ID) (Node, error) {
	if n, ok := l.nodes[id]; ok {
		return n, nil
	}
	if suggestion, ok := l.Suggest(id); ok {
		return Node{}, fmt.Errorf("%w: dialogue %q (did you mean %q?)", ErrMissingAsset, id, suggestion)
	}
	return Node{}, fmt.Errorf("%w: dialogue %q", ErrMissingAsset, id)
}

// Suggest finds the known id with the smallest edit distance to id.
func (l *Library) Suggest(id ID) (ID, bool) {
	needle := strings.ToLower(strings.TrimSpace(string(id)))
	if len(needle) < 3 {
		return "", false
	}
	best := ID("")
	bestDist := -1
	for _, known := range l.IDs() {
		dist := levenshtein.ComputeDistance(needle, string(known))
		if dist > levenshteinLimit(len(known)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = known, dist
		}
	}
	return best, bestDist >= 0
}

func (l *Library) IDs() []ID {
	out := make([]ID, 0, len(l.nodes))
	for id := range l.nodes {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Chain follows branches from id and returns every node in order. It stops
// at a node already visited.
func (l *Library) Chain(id ID) ([]Node, error) {
	var out []Node
	seen := map[ID]bool{}
	for {
		n, err := l.Resolve(id)
		if err != nil {
			return out, err
		}
		out = append(out, n)
		seen[id] = true
		if n.Advance.Kind != AdvanceBranch || seen[n.Advance.Next] {
			return out, nil
		}
		id = n.Advance.Next
	}
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
