package fporacle

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dclassgo/konieczny/element"
)

// defaultWorkers bounds the worker pool when the caller does not supply
// one via WithWorkers. errgroup.Group.SetLimit treats a negative value
// as "no limit" and zero as blocking every Go call, so Enumerate always
// uses a concrete positive count.
const defaultWorkers = 4

// Option configures Enumerate.
type Option func(*config)

type config struct {
	workers int
}

// WithWorkers overrides the worker-pool size used to expand each round
// of the frontier; panics on a non-positive count, the same contract
// junjiewwang-perf-analysis's ParallelConfig.MaxWorkers applies.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic("fporacle: WithWorkers requires a positive count")
	}
	return func(c *config) { c.workers = n }
}

// Result is the closure of a generating set under multiplication: every
// element reachable from the generators by repeated left/right
// multiplication, indexed for membership queries. It is the test-only
// oracle the Engine's own decomposition is cross-checked against.
type Result struct {
	elems []element.Element
	index map[uint64][]int
}

// Size returns the number of distinct elements in the closure.
func (r *Result) Size() int { return len(r.elems) }

// Contains reports whether x is in the closure.
func (r *Result) Contains(x element.Element) bool {
	for _, i := range r.index[x.Hash()] {
		if r.elems[i].Equal(x) {
			return true
		}
	}
	return false
}

// Elements returns every element of the closure, in discovery order.
func (r *Result) Elements() []element.Element {
	out := make([]element.Element, len(r.elems))
	copy(out, r.elems)
	return out
}

// Enumerate computes the full multiplicative closure of gens: a
// brute-force, independent cross-check of what the Engine computes by
// growing D-classes instead of concrete elements. Each round's frontier
// is partitioned across a worker pool coordinated by an errgroup.Group;
// workers append newly-discovered elements to a shared, mutex-guarded
// set, and the next round's frontier is exactly what was newly found.
// Returns ErrEmptyGenerators if gens is empty.
func Enumerate(ctx context.Context, gens []element.Element, opts ...Option) (*Result, error) {
	if len(gens) == 0 {
		return nil, ErrEmptyGenerators
	}
	cfg := config{workers: defaultWorkers}
	for _, o := range opts {
		o(&cfg)
	}

	known := &Result{index: make(map[uint64][]int)}
	var mu sync.Mutex

	// insert returns true iff x was not already known; caller holds mu.
	insertLocked := func(x element.Element) bool {
		h := x.Hash()
		for _, i := range known.index[h] {
			if known.elems[i].Equal(x) {
				return false
			}
		}
		idx := len(known.elems)
		known.elems = append(known.elems, x)
		known.index[h] = append(known.index[h], idx)
		return true
	}

	frontier := make([]element.Element, 0, len(gens))
	mu.Lock()
	for _, g := range gens {
		if insertLocked(g) {
			frontier = append(frontier, g)
		}
	}
	mu.Unlock()

	for len(frontier) > 0 {
		tasks := make(chan element.Element, len(frontier))
		for _, x := range frontier {
			tasks <- x
		}
		close(tasks)

		var next []element.Element

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.workers)
		for w := 0; w < cfg.workers; w++ {
			g.Go(func() error {
				for {
					select {
					case <-gctx.Done():
						return gctx.Err()
					case x, ok := <-tasks:
						if !ok {
							return nil
						}
						var found []element.Element
						for _, gen := range gens {
							found = append(found, x.Mul(gen), gen.Mul(x))
						}
						mu.Lock()
						for _, y := range found {
							if insertLocked(y) {
								next = append(next, y)
							}
						}
						mu.Unlock()
					}
				}
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		frontier = next
	}

	return known, nil
}
