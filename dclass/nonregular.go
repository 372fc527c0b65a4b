package dclass

import (
	"github.com/dclassgo/konieczny/element"
	"github.com/dclassgo/konieczny/orbit"
)

// BuildNonRegular materialises the D-class of a non-regular candidate x:
// its Λ/Ρ-cosets (computed the same way as BuildRegular's, just rooted
// at x instead of at an idempotent) and the full restricted-action
// closure within the grid those cosets span.
//
// x must not be regular; ErrAlreadyRegular otherwise (the caller should
// have routed it to BuildRegular via the idempotent ClassifyRegular
// found).
func BuildNonRegular(x element.Element, gens []element.Element) (*Class, error) {
	if _, regular, err := ClassifyRegular(x, gens); err != nil {
		return nil, err
	} else if regular {
		return nil, ErrAlreadyRegular
	}

	leftVals, leftReps, err := localCoset(orbit.Lambda, x, gens)
	if err != nil {
		return nil, err
	}
	rightVals, rightReps, err := localCoset(orbit.Rho, x, gens)
	if err != nil {
		return nil, err
	}

	fiber := closeFiber(x, gens)

	return &Class{
		Kind:       NonRegular,
		Rep:        x,
		Rank:       x.Rank(),
		LambdaVals: leftVals,
		RhoVals:    rightVals,
		LeftReps:   leftReps,
		RightReps:  rightReps,
		nrSizeH:    len(fiber),
		fiber:      fiber,
	}, nil
}

// closeFiber computes the H-class of x: every element reachable from x
// by two-sided generator multiplication without leaving x's own
// (rank, Λ, Ρ) triple. By Green's lemma every H-class within a D-class
// has the same cardinality, so x's own fiber stands in for the whole
// class's uniform H-class size even though, absent an idempotent, it
// carries no group structure.
func closeFiber(x element.Element, gens []element.Element) []element.Element {
	rank, lam, rho := x.Rank(), x.Lambda(), x.Rho()
	set := newElemSet()
	set.insert(x)
	queue := []element.Element{x}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, g := range gens {
			for _, cand := range [2]element.Element{u.Mul(g), g.Mul(u)} {
				if cand.Rank() != rank || !cand.Lambda().Equal(lam) || !cand.Rho().Equal(rho) {
					continue
				}
				if set.insert(cand) {
					queue = append(queue, cand)
				}
			}
		}
	}
	return set.elements()
}
