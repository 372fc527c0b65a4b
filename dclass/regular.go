package dclass

import (
	"sort"

	"github.com/dclassgo/konieczny/element"
	"github.com/dclassgo/konieczny/orbit"
)

// BuildRegular materialises the D-class of the idempotent e: the group
// H-class H(e) = eSe, and one left/right representative per Λ/Ρ-value
// reachable from e without leaving e's rank.
//
// e must be idempotent; ErrNotIdempotent otherwise. gens is the full
// generating set of the ambient semigroup (not just the generators that
// happen to stabilise e).
func BuildRegular(e element.Element, gens []element.Element) (*Class, error) {
	if !e.IsIdempotent() {
		return nil, ErrNotIdempotent
	}

	h, _, err := closeHClass(e, gens)
	if err != nil {
		return nil, err
	}

	leftVals, leftReps, err := localCoset(orbit.Lambda, e, gens)
	if err != nil {
		return nil, err
	}
	rightVals, rightReps, err := localCoset(orbit.Rho, e, gens)
	if err != nil {
		return nil, err
	}

	// The egg-box cell (LambdaVals[i], RhoVals[j]) holds an idempotent iff
	// LeftReps[i]*RightReps[j] lands back in e's own H-class (Miller-Clifford),
	// and a cell holds at most one, so this counts the class's idempotents.
	lamE, rhoE := e.Lambda(), e.Rho()
	numIdem := 0
	for _, l := range leftReps {
		for _, r := range rightReps {
			p := l.Mul(r)
			if p.Lambda().Equal(lamE) && p.Rho().Equal(rhoE) {
				numIdem++
			}
		}
	}

	return &Class{
		Kind:           Regular,
		Rep:            e,
		Rank:           e.Rank(),
		LambdaVals:     leftVals,
		RhoVals:        rightVals,
		LeftReps:       leftReps,
		RightReps:      rightReps,
		Idem:           e,
		H:              h,
		NumIdempotents: numIdem,
	}, nil
}

// closeHClass computes H(e) = eSe: starting from {e}, it closes under
// right-multiplying by a generator and sandwiching the result between e
// on both sides, keeping only candidates that stay at e's rank and
// Λ/Ρ-value — the defining property of the group H-class sitting at the
// intersection of e's own R- and L-class.
func closeHClass(e element.Element, gens []element.Element) ([]element.Element, int, error) {
	lamE, rhoE, rank := e.Lambda(), e.Rho(), e.Rank()

	set := newElemSet()
	set.insert(e)
	queue := []element.Element{e}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, g := range gens {
			cand := e.Mul(u.Mul(g)).Mul(e)
			if cand.Rank() != rank || !cand.Lambda().Equal(lamE) || !cand.Rho().Equal(rhoE) {
				continue
			}
			if set.insert(cand) {
				queue = append(queue, cand)
			}
		}
	}

	elems := set.elements()
	sort.Slice(elems, func(i, j int) bool { return elems[i].Less(elems[j]) })

	numIdem := 0
	for _, x := range elems {
		if x.IsIdempotent() {
			numIdem++
		}
	}
	return elems, numIdem, nil
}

// localCoset grows a fresh Running orbit of the given kind, rooted at e
// instead of at the raw generating set, then keeps only the points whose
// realised representative stays at e's rank: descendants that drop rank
// belong to a lower D-class and are left for the engine to discover on
// its own. The surviving points are exactly e's Λ- or Ρ-cosets, one
// value and one representative per class.
func localCoset(kind orbit.Kind, e element.Element, gens []element.Element) ([]element.Invariant, []element.Element, error) {
	ro, err := orbit.NewRunning(kind, gens)
	if err != nil {
		return nil, nil, err
	}
	var seed element.Invariant
	if kind == orbit.Lambda {
		seed = e.Lambda()
	} else {
		seed = e.Rho()
	}
	ro.SeedPoint(seed, e)
	for !ro.Exhausted() {
		ro.ExtendOne()
	}

	var vals []element.Invariant
	var reps []element.Element
	for i := 0; i < ro.Len(); i++ {
		rep := ro.Rep(i)
		if rep.Rank() == e.Rank() {
			vals = append(vals, ro.At(i).Value)
			reps = append(reps, rep)
		}
	}
	return vals, reps, nil
}
