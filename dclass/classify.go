package dclass

import (
	"github.com/dclassgo/konieczny/element"
	"github.com/dclassgo/konieczny/orbit"
)

// ClassifyRegular decides whether x's D-class is regular, returning an
// idempotent witness when it is.
//
// The naive test — is x's own monogenic subsemigroup <x> a group
// (element.IsRegular) — is a fast sufficient check but not a
// necessary one: x can be D-equivalent to an idempotent that is not a
// power of x at all. The classic counterexample is a "tail" map like
// the degree-3 transformation (1,2,2): its powers collapse to the
// constant map at 2 and never come back, yet in the full transformation
// monoid T3 it is regular (y = (0,0,1) satisfies x*y*x = x).
//
// The correct test follows Green's lemma instead: a D-class is regular
// iff every L-class within it contains an idempotent, iff every
// R-class within it does (Howie, Fundamentals of Semigroup Theory,
// ch. 2) — and regularity is constant across a D-class, so x itself is
// regular iff its own L-class or its own R-class contains an
// idempotent. Both are exactly the rank-preserving Λ/Ρ-cosets rooted at
// x that BuildRegular/BuildNonRegular already compute via localCoset,
// so this reuses that machinery on x directly rather than on a
// previously-known idempotent, and scans the result for a witness.
// Each coset representative stands for one H-class, which holds an
// idempotent iff it is a group, i.e. iff the representative's own
// powers form a group (element.IsRegular); the witness returned is that
// power idempotent.
func ClassifyRegular(x element.Element, gens []element.Element) (idem element.Element, regular bool, err error) {
	if x.IsIdempotent() {
		return x, true, nil
	}

	_, leftReps, err := localCoset(orbit.Lambda, x, gens)
	if err != nil {
		return nil, false, err
	}
	for _, r := range leftReps {
		if ok, idem := element.IsRegular(r, 0); ok {
			return idem, true, nil
		}
	}

	_, rightReps, err := localCoset(orbit.Rho, x, gens)
	if err != nil {
		return nil, false, err
	}
	for _, r := range rightReps {
		if ok, idem := element.IsRegular(r, 0); ok {
			return idem, true, nil
		}
	}

	return nil, false, nil
}
