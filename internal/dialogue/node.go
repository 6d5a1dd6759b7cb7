package dialogue

import "fmt"

// ID names a dialogue script entry point or a node inside a branch.
type ID string

type AdvanceKind int

const (
	// AdvanceClose despawns the display on dismiss.
	AdvanceClose AdvanceKind = iota
	// AdvanceBranch replaces the display content with the next node.
	AdvanceBranch
)

// Advance is what a dismiss action does to a node.
type Advance struct {
	Kind AdvanceKind
	Next ID
}

func Close() Advance {
	return Advance{Kind: AdvanceClose}
}

func BranchTo(next ID) Advance {
	return Advance{Kind: AdvanceBranch, Next: next}
}

func (a Advance) String() string {
	if a.Kind == AdvanceBranch {
		return fmt.Sprintf("branch(%s)", a.Next)
	}
	return "close"
}

type Audio struct {
	Ref     string
	Looping bool
}

type Node struct {
	ID       ID
	Speaker  string
	Body     string
	Portrait string
	Audio    *Audio
	// Rate is the reveal rate in characters per second; 0 uses the
	// sequencer default.
	Rate    float64
	Advance Advance
	// Final nodes cannot be dismissed. Used for endings.
	Final bool
}

// Placeholder stands in for a node that could not be resolved.
func Placeholder(id ID) Node {
	return Node{
		ID:      id,
		Speaker: "???",
		Body:    fmt.Sprintf("(missing dialogue %q)", string(id)),
		Advance: Close(),
	}
}
