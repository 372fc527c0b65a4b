package dclass

import "github.com/dclassgo/konieczny/element"

// elemSet is a small Hash-then-Equal deduplicating set of elements, used
// by the builders to close H(e) and the non-regular restricted action
// without relying on Element being a comparable map key.
type elemSet struct {
	buckets map[uint64][]element.Element
	order   []element.Element
}

func newElemSet() *elemSet {
	return &elemSet{buckets: make(map[uint64][]element.Element)}
}

// insert adds x if not already present, returning true when it was new.
func (s *elemSet) insert(x element.Element) bool {
	h := x.Hash()
	for _, y := range s.buckets[h] {
		if y.Equal(x) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], x)
	s.order = append(s.order, x)
	return true
}

func (s *elemSet) contains(x element.Element) bool {
	for _, y := range s.buckets[x.Hash()] {
		if y.Equal(x) {
			return true
		}
	}
	return false
}

func (s *elemSet) len() int { return len(s.order) }

// elements returns the set's members in insertion order.
func (s *elemSet) elements() []element.Element {
	out := make([]element.Element, len(s.order))
	copy(out, s.order)
	return out
}
