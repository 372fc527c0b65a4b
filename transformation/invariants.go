package transformation

import (
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/dclassgo/konieczny/element"
)

// ImageSet is the Λ invariant: the sorted, deduplicated set of points in
// a transformation's image.
type ImageSet []int

// Equal reports whether two image sets hold the same points.
func (s ImageSet) Equal(other element.Invariant) bool {
	o, ok := other.(ImageSet)
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

// Hash is a total FNV-1a hash over the sorted point set.
func (s ImageSet) Hash() uint64 {
	h := fnv.New64a()
	for _, v := range s {
		h.Write([]byte{byte(v), byte(v >> 8)})
	}
	return h.Sum64()
}

func (s ImageSet) String() string { return fmt.Sprintf("%v", []int(s)) }

// ActRight computes Λ(s)·g = g(Λ(s)), matching image(s·t) = t(image(s)).
func (s ImageSet) ActRight(g element.Element) element.Invariant {
	gg := g.(Transformation)
	seen := make(map[int]bool, len(s))
	out := make(ImageSet, 0, len(s))
	for _, v := range s {
		w := gg.img[v]
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	sort.Ints(out)
	return out
}

// ActLeft is not meaningful for an image set; Λ-invariants are only
// ever stepped via ActRight, so this is unreachable in normal engine
// operation and panics to surface a misuse immediately.
func (s ImageSet) ActLeft(element.Element) element.Invariant {
	panic("transformation: ActLeft called on a Λ-kind invariant (ImageSet)")
}

// KernelPartition is the Ρ invariant: the partition of {0,...,n-1} into
// fibres of equal image, canonicalised by relabelling classes in order
// of first appearance so structurally equal partitions compare equal.
type KernelPartition []int

func kernelOf(t Transformation) KernelPartition {
	classOf := make(map[int]int, len(t.img))
	out := make(KernelPartition, len(t.img))
	next := 0
	for i, v := range t.img {
		id, ok := classOf[v]
		if !ok {
			id = next
			classOf[v] = id
			next++
		}
		out[i] = id
	}
	return out
}

// Rho returns the kernel partition of t.
func (t Transformation) Rho() element.Invariant { return kernelOf(t) }

// Lambda returns the image set of t.
func (t Transformation) Lambda() element.Invariant {
	seen := make(map[int]bool, len(t.img))
	out := make(ImageSet, 0, len(t.img))
	for _, v := range t.img {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

// Equal reports whether two kernel partitions are structurally equal.
func (p KernelPartition) Equal(other element.Invariant) bool {
	o, ok := other.(KernelPartition)
	if !ok || len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// Hash is a total FNV-1a hash over the canonical class-id array.
func (p KernelPartition) Hash() uint64 {
	h := fnv.New64a()
	for _, v := range p {
		h.Write([]byte{byte(v), byte(v >> 8)})
	}
	return h.Sum64()
}

func (p KernelPartition) String() string { return fmt.Sprintf("%v", []int(p)) }

// ActLeft computes g·ρ: i~j under the new kernel iff g(i) and g(j) fall
// in the same ρ-class, then relabels canonically.
func (p KernelPartition) ActLeft(g element.Element) element.Invariant {
	gg := g.(Transformation)
	raw := make([]int, len(gg.img))
	for i, v := range gg.img {
		raw[i] = p[v]
	}
	classOf := make(map[int]int, len(raw))
	out := make(KernelPartition, len(raw))
	next := 0
	for i, v := range raw {
		id, ok := classOf[v]
		if !ok {
			id = next
			classOf[v] = id
			next++
		}
		out[i] = id
	}
	return out
}

// ActRight is not meaningful for a kernel partition; see ImageSet.ActLeft.
func (p KernelPartition) ActRight(element.Element) element.Invariant {
	panic("transformation: ActRight called on a Ρ-kind invariant (KernelPartition)")
}
