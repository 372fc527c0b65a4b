package orbit

import "github.com/dclassgo/konieczny/element"

// Running pairs an Orbit with a concrete Element representative for
// every discovered point, so callers never need to re-trace a word and
// replay it through the generators to get back an actual element
// (Trace still exists for diagnostics, but the builders use Rep
// directly).
type Running struct {
	*Orbit
	reps []element.Element
}

// NewRunning constructs an empty Running orbit of the given Kind.
func NewRunning(kind Kind, gens []element.Element) (*Running, error) {
	o, err := New(kind, gens)
	if err != nil {
		return nil, err
	}
	return &Running{Orbit: o}, nil
}

// Rep returns the concrete Element representative of point i.
func (r *Running) Rep(i int) element.Element { return r.reps[i] }

// SeedFromGenerators seeds the orbit with each generator's own Λ or Ρ
// invariant (depending on Kind) and records that generator as the
// point's representative. If two generators share an invariant, the
// first one seeded wins; this is fine, any representative of the point
// is equally valid.
func (r *Running) SeedFromGenerators(gens []element.Element) {
	for _, g := range gens {
		var v element.Invariant
		if r.kind == Lambda {
			v = g.Lambda()
		} else {
			v = g.Rho()
		}
		idx, isNew := r.insert(v, -1, -1, 0)
		if isNew {
			r.growReps(idx)
			r.reps[idx] = g
		}
	}
}

// SeedPoint seeds the orbit with a single explicit (invariant,
// representative) pair rather than deriving the invariant from a raw
// generator. Builders use this to root a local sub-orbit at a specific
// element (e.g. an idempotent) rather than at the generating set.
func (r *Running) SeedPoint(v element.Invariant, rep element.Element) (int, bool) {
	idx, isNew := r.insert(v, -1, -1, 0)
	if isNew {
		r.growReps(idx)
		r.reps[idx] = rep
	}
	return idx, isNew
}

// growReps extends reps to cover index idx.
func (r *Running) growReps(idx int) {
	for len(r.reps) <= idx {
		r.reps = append(r.reps, nil)
	}
}

// ExtendOne expands one unexpanded point exactly as Orbit.ExtendOne,
// additionally computing a concrete representative for every newly
// discovered point from its parent's representative: right
// multiplication by the generator for a Lambda orbit, left
// multiplication for a Rho orbit.
func (r *Running) ExtendOne() []int {
	added := r.Orbit.ExtendOne()
	for _, idx := range added {
		p := r.points[idx]
		parentRep := r.reps[p.Parent]
		g := r.gens[p.Gen]
		r.growReps(idx)
		if r.kind == Lambda {
			r.reps[idx] = parentRep.Mul(g)
		} else {
			r.reps[idx] = g.Mul(parentRep)
		}
	}
	return added
}
