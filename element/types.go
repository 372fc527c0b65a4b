// Package element — core capability contract.
//
// Complexity: every method below is expected to be O(arity) or better;
// the engine calls Lambda/Rho and the resulting invariants' ActRight/
// ActLeft once per orbit point and assumes they are cheap.
package element

import "fmt"

// Invariant is a hashable token produced by Lambda or Rho. Two elements
// are L-equivalent iff their Lambda invariants are equal, and
// R-equivalent iff their Rho invariants are equal.
type Invariant interface {
	// Equal reports whether two invariants denote the same orbit point.
	Equal(other Invariant) bool

	// Hash returns a total hash suitable for map keys. Equal invariants
	// MUST return the same Hash.
	Hash() uint64

	// String renders the invariant for diagnostics and report lines.
	String() string

	// ActRight computes this·g, the right-action orbit step used by
	// ΛOrbit. Only meaningful for a Λ-kind invariant.
	ActRight(g Element) Invariant

	// ActLeft computes g·this, the left-action orbit step used by
	// ΡOrbit. Only meaningful for a Ρ-kind invariant.
	ActLeft(g Element) Invariant
}

// Element is the capability set the Konieczny engine requires of a
// semigroup element. The engine is parametric over any type satisfying
// this interface; see bmat.BMat8 and transformation.Transformation for
// the two built-in kinds.
type Element interface {
	// Mul returns the product a·b in the ambient semigroup.
	Mul(other Element) Element

	// Equal is total equality, not D/L/R-equivalence.
	Equal(other Element) bool

	// Hash returns a total hash suitable for map keys.
	Hash() uint64

	// Lambda returns the right-action invariant (row space for BMat8,
	// image for Transformation).
	Lambda() Invariant

	// Rho returns the left-action invariant (column space for BMat8,
	// kernel for Transformation).
	Rho() Invariant

	// Rank is the element's rank (number of non-zero rows for BMat8,
	// image size for Transformation). Rank is non-increasing under
	// multiplication.
	Rank() int

	// Less gives a deterministic total order, used to canonicalise
	// class representatives.
	Less(other Element) bool

	// Arity is the matrix dimension or transformation degree. Two
	// elements with different Arity can never be multiplied.
	Arity() int

	// IsIdempotent reports whether Mul(e, e) == e.
	IsIdempotent() bool

	fmt.Stringer
}

// Word is a Schreier word: a sequence of generator indices witnessing
// reachability of an orbit point from a seed.
type Word []int

// Clone returns an independent copy of w.
func (w Word) Clone() Word {
	out := make(Word, len(w))
	copy(out, w)
	return out
}

// Apply realises the word starting from seed by repeatedly
// right-multiplying (for a Λ-word) or left-multiplying (for a Ρ-word)
// by the generator at each index. Direction is the caller's concern:
// mulFn supplies the multiplication order appropriate to the action.
func (w Word) Apply(seed Element, gens []Element, mulFn func(acc, g Element) Element) Element {
	acc := seed
	for _, gi := range w {
		acc = mulFn(acc, gens[gi])
	}
	return acc
}
