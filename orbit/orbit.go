package orbit

import "github.com/dclassgo/konieczny/element"

// Orbit is a lazily-grown Schreier tree over Λ- or Ρ-invariants. It is
// grown by whoever drives it via Seed/ExtendOne; Find/Trace/At/Len only
// read it and are safe between steps.
type Orbit struct {
	kind     Kind
	gens     []element.Element
	points   []Point
	index    map[uint64][]int // Value.Hash() -> candidate point indices
	frontier int              // next point index ExtendOne will expand
}

// New constructs an empty Orbit of the given Kind over gens. gens must
// be non-empty; ErrNoGenerators is returned otherwise.
func New(kind Kind, gens []element.Element) (*Orbit, error) {
	if len(gens) == 0 {
		return nil, ErrNoGenerators
	}
	return &Orbit{
		kind:  kind,
		gens:  gens,
		index: make(map[uint64][]int),
	}, nil
}

// Len returns the number of discovered points.
func (o *Orbit) Len() int { return len(o.points) }

// At returns the point at index i.
func (o *Orbit) At(i int) Point { return o.points[i] }

// Exhausted reports whether every discovered point has already been
// expanded, i.e. a further ExtendOne would need to seed new points
// before it could do anything.
func (o *Orbit) Exhausted() bool { return o.frontier >= len(o.points) }

// Find returns the index of v in the orbit, if present.
func (o *Orbit) Find(v element.Invariant) (int, bool) {
	for _, i := range o.index[v.Hash()] {
		if o.points[i].Value.Equal(v) {
			return i, true
		}
	}
	return -1, false
}

// insert appends v as a new point with the given Schreier edge if it is
// not already present, returning (index, true) when it was newly
// inserted and (existingIndex, false) otherwise.
func (o *Orbit) insert(v element.Invariant, parent, gen, depth int) (int, bool) {
	if i, ok := o.Find(v); ok {
		return i, false
	}
	idx := len(o.points)
	o.points = append(o.points, Point{Value: v, Parent: parent, Gen: gen, Depth: depth})
	h := v.Hash()
	o.index[h] = append(o.index[h], idx)
	return idx, true
}

// Seed inserts the given initial points (Parent == -1, Gen == -1,
// Depth == 0), skipping any already present.
func (o *Orbit) Seed(values []element.Invariant) {
	for _, v := range values {
		o.insert(v, -1, -1, 0)
	}
}

// ExtendOne expands exactly one unexpanded point: it applies every
// generator once via the orbit's action (ActRight for Lambda, ActLeft
// for Rho) and inserts any newly-discovered image. It returns the
// indices of every point newly inserted (nil if none). Calling
// ExtendOne when Exhausted is a no-op returning nil.
func (o *Orbit) ExtendOne() []int {
	if o.Exhausted() {
		return nil
	}
	i := o.frontier
	o.frontier++
	p := o.points[i]
	var added []int
	for gi, g := range o.gens {
		var next element.Invariant
		if o.kind == Lambda {
			next = p.Value.ActRight(g)
		} else {
			next = p.Value.ActLeft(g)
		}
		if idx, isNew := o.insert(next, i, gi, p.Depth+1); isNew {
			added = append(added, idx)
		}
	}
	return added
}

// Trace reconstructs the generator-index word witnessing point i's
// reachability from its seed, outermost generator last (i.e. applying
// the word left-to-right from the seed realises the point, matching
// element.Word.Apply's iteration order).
func (o *Orbit) Trace(i int) (element.Word, error) {
	if i < 0 || i >= len(o.points) {
		return nil, ErrIndexOutOfRange
	}
	var rev element.Word
	for cur := i; o.points[cur].Parent != -1; cur = o.points[cur].Parent {
		rev = append(rev, o.points[cur].Gen)
	}
	word := make(element.Word, len(rev))
	for k, v := range rev {
		word[len(rev)-1-k] = v
	}
	return word, nil
}
