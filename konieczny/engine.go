package konieczny

import (
	"fmt"

	"github.com/dclassgo/konieczny/dclass"
	"github.com/dclassgo/konieczny/element"
)

// Engine decomposes the finite semigroup generated by gens into its
// D-classes, one candidate at a time.
type Engine struct {
	gens  []element.Element
	store *dclass.Store
	opts  Options

	buckets map[int][]element.Element // rank -> FIFO queue of candidates
	maxRank int
	pending map[uint64][]element.Element // dedup: already queued or classified

	state State
	steps int
}

// New constructs an Engine over gens. gens must be non-empty and of
// uniform arity.
func New(gens []element.Element, opts ...Option) (*Engine, error) {
	if len(gens) == 0 {
		return nil, ErrEmptyGenerators
	}
	arity := gens[0].Arity()
	for _, g := range gens[1:] {
		if g.Arity() != arity {
			return nil, ErrIncompatibleGenerator
		}
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine{
		gens:    gens,
		store:   dclass.NewStore(),
		opts:    o,
		buckets: make(map[int][]element.Element),
		pending: make(map[uint64][]element.Element),
		state:   Fresh,
	}, nil
}

// State returns the engine's current run state.
func (e *Engine) State() State { return e.state }

// Steps returns the number of D-classes built so far; candidates found
// to belong to an already-known class are not counted.
func (e *Engine) Steps() int { return e.steps }

// seed enqueues every generator as an initial candidate.
func (e *Engine) seed() {
	for _, g := range e.gens {
		e.enqueue(g)
	}
	e.state = Running
}

// enqueue registers x as a candidate to classify, skipping it if it has
// been queued before. It does not consult the Store: a candidate that
// belongs to an already-classified D-class is dropped later, by step.
func (e *Engine) enqueue(x element.Element) {
	h := x.Hash()
	for _, y := range e.pending[h] {
		if y.Equal(x) {
			return
		}
	}
	e.pending[h] = append(e.pending[h], x)

	r := x.Rank()
	e.buckets[r] = append(e.buckets[r], x)
	if r > e.maxRank {
		e.maxRank = r
	}
}

// pop removes and returns the highest-rank queued candidate.
func (e *Engine) pop() (element.Element, bool) {
	for r := e.maxRank; r >= 0; r-- {
		q := e.buckets[r]
		if len(q) == 0 {
			continue
		}
		x := q[0]
		e.buckets[r] = q[1:]
		return x, true
	}
	return nil, false
}

// step performs exactly one unit of work: classify one candidate (or
// confirm it is already classified) and enqueue its generator-products.
// It returns true once there is nothing left to classify.
func (e *Engine) step() (done bool, err error) {
	if e.state == Fresh {
		e.seed()
	}

	x, ok := e.pop()
	if !ok {
		e.state = Finished
		return true, nil
	}

	if e.store.Find(x) != nil {
		return false, nil
	}

	idem, regular, err := dclass.ClassifyRegular(x, e.gens)
	if err != nil {
		return false, err
	}

	var c *dclass.Class
	if regular {
		c, err = dclass.BuildRegular(idem, e.gens)
	} else {
		c, err = dclass.BuildNonRegular(x, e.gens)
	}
	if err != nil {
		return false, err
	}
	e.store.Add(c)
	e.steps++

	if e.opts.Report != nil {
		fmt.Fprintf(e.opts.Report, "discovered %s D-class: rank=%d size=%d left=%d right=%d H=%d\n",
			c.Kind, c.Rank, c.Size(), c.NumLeftReps(), c.NumRightReps(), c.SizeHClass())
	}

	// Every concrete element the builder materialised gets its
	// generator-products queued, not just the triggering candidate x:
	// a class's escape into a strictly-lower-rank D-class can happen
	// through any of its left/right coset witnesses or H-class/fibre
	// members, and restricting this step to x alone would risk losing
	// whichever one of those is the actual escape route.
	for _, y := range c.EmittedElements() {
		for _, g := range e.gens {
			e.enqueue(y.Mul(g))
			e.enqueue(g.Mul(y))
		}
	}
	return false, nil
}
