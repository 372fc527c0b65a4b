package orbit

import "github.com/dclassgo/konieczny/element"

// Kind distinguishes a Λ-orbit (right action) from a Ρ-orbit (left
// action); it selects whether ExtendOne steps points with ActRight or
// ActLeft.
type Kind int

const (
	// Lambda is the right-action orbit over Λ-invariants.
	Lambda Kind = iota

	// Rho is the left-action orbit over Ρ-invariants.
	Rho
)

// String renders the Kind for report lines.
func (k Kind) String() string {
	if k == Lambda {
		return "Lambda"
	}
	return "Rho"
}

// Point is one discovered orbit point: its invariant Value, and the
// Schreier edge (Parent index, Gen index) witnessing how it was
// reached. The seed points have Parent == -1 and Gen == -1.
type Point struct {
	Value  element.Invariant
	Parent int
	Gen    int
	Depth  int
}
