package bmat

import (
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/dclassgo/konieczny/element"
)

// RowSpace is the Λ (or, over the transpose, Ρ) invariant for BMat8: the
// full OR-closure of a generating set of row vectors, represented as a
// sorted, deduplicated slice of non-zero bitmasks.
type RowSpace []uint8

// Equal reports whether two row spaces hold the same set of vectors.
func (s RowSpace) Equal(other element.Invariant) bool {
	o, ok := other.(RowSpace)
	if !ok || len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Hash is a total FNV-1a hash over the sorted vector set.
func (s RowSpace) Hash() uint64 {
	h := fnv.New64a()
	for _, v := range s {
		h.Write([]byte{v})
	}
	return h.Sum64()
}

// String renders the row space as a bracketed list of bitmasks.
func (s RowSpace) String() string {
	return fmt.Sprintf("%v", []uint8(s))
}

// ActRight computes s·g: the image of s (already OR-closed) under right
// multiplication by g is itself OR-closed, so no re-closure is needed
// (used for Λ-kind row spaces).
func (s RowSpace) ActRight(g element.Element) element.Invariant {
	return actRight(s, g.(BMat8))
}

// ActLeft computes g·s, dually to ActRight (used for Ρ-kind row
// spaces, i.e. column-space closures).
func (s RowSpace) ActLeft(g element.Element) element.Invariant {
	return actLeft(g.(BMat8), s)
}

// closure computes the OR-closure of the given generating vectors
// (zero vectors ignored), returning a canonical sorted slice. Growth is
// breadth-first: start from the generators, repeatedly OR every pair of
// already-discovered vectors until nothing new appears.
func closure(gens []uint8) RowSpace {
	seen := make(map[uint8]bool, len(gens))
	var queue []uint8
	for _, g := range gens {
		if g != 0 && !seen[g] {
			seen[g] = true
			queue = append(queue, g)
		}
	}
	for i := 0; i < len(queue); i++ {
		r := queue[i]
		// len(queue) is re-read on every iteration, so r is combined
		// with every vector discovered so far, including ones appended
		// during this pass; pairwise ORs suffice because OR-closure is
		// generated pairwise.
		for j := 0; j < len(queue); j++ {
			c := r | queue[j]
			if c != 0 && !seen[c] {
				seen[c] = true
				queue = append(queue, c)
			}
		}
	}
	out := make(RowSpace, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Lambda returns the row-space closure of m's (logical) rows.
func (m BMat8) Lambda() element.Invariant {
	mask := m.mask()
	gens := make([]uint8, 0, m.n)
	for i := 0; i < m.n; i++ {
		gens = append(gens, m.rows[i]&mask)
	}
	return closure(gens)
}

// Rho returns the column-space closure of m, i.e. the row-space closure
// of mᵀ.
func (m BMat8) Rho() element.Invariant {
	return m.Transpose().Lambda()
}

// actRight maps a row-space closure through right multiplication by g.
func actRight(src RowSpace, g BMat8) RowSpace {
	seen := make(map[uint8]bool, len(src))
	out := make(RowSpace, 0, len(src))
	for _, r := range src {
		v := rowVecMul(r, g)
		if v != 0 && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// actLeft maps a column-space closure through left multiplication by g.
func actLeft(g BMat8, src RowSpace) RowSpace {
	seen := make(map[uint8]bool, len(src))
	out := make(RowSpace, 0, len(src))
	for _, c := range src {
		v := colVecMul(g, c)
		if v != 0 && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
