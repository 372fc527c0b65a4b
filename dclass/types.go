package dclass

import "github.com/dclassgo/konieczny/element"

// Kind distinguishes a regular D-class (contains an idempotent, hence
// has a genuine group H-class) from a non-regular one.
type Kind int

const (
	// Regular classes carry a group H-class eSe and decompose as
	// left-rep * H * right-rep.
	Regular Kind = iota

	// NonRegular classes have no idempotent; their "H-class" is not a
	// group, only a fixed-size fibre of the restricted action.
	NonRegular
)

func (k Kind) String() string {
	if k == Regular {
		return "Regular"
	}
	return "NonRegular"
}

// Class is one D-class of the decomposition.
type Class struct {
	Kind Kind
	Rep  element.Element
	Rank int

	// LambdaVals/RhoVals are the distinct Λ/Ρ invariants realised by
	// this class's elements, parallel to LeftReps/RightReps below.
	LambdaVals []element.Invariant
	RhoVals    []element.Invariant

	// LeftReps[i] is an element whose Λ invariant is LambdaVals[i];
	// RightReps[j] is an element whose Ρ invariant is RhoVals[j].
	LeftReps  []element.Element
	RightReps []element.Element

	// Idem and H are populated only for a Regular class: Idem is the
	// idempotent the class was built around, H is the group H-class
	// eSe (Idem included), sorted by Less.
	Idem           element.Element
	H              []element.Element
	NumIdempotents int

	// nrSizeH is the size of a NonRegular class's restricted-action
	// fibre: every H-class within a D-class has the same cardinality
	// (Green's lemma) even when, absent an idempotent, it carries no
	// group structure, so one fibre's size stands in for all of them.
	nrSizeH int

	// fiber holds the concrete elements closeFiber materialised for a
	// NonRegular class (nil for Regular, where H already plays this
	// role). Kept so EmittedElements has real elements to hand the
	// engine, not just nrSizeH's count.
	fiber []element.Element
}

// Size returns the number of elements in the class: |LeftReps| *
// SizeHClass() * |RightReps|. Every (left, right) cell of the egg box
// spanned by a D-class's Λ/Ρ-cosets is non-empty and has the same
// cardinality, so this product counts the class exactly without ever
// materialising its membership.
func (c *Class) Size() int {
	return len(c.LeftReps) * c.SizeHClass() * len(c.RightReps)
}

// SizeHClass returns the size of the H-class fibre: len(H) for a
// Regular class (a genuine group order), the fixed restricted-action
// fibre size for a NonRegular one.
func (c *Class) SizeHClass() int {
	if c.Kind == Regular {
		return len(c.H)
	}
	return c.nrSizeH
}

// NumLeftReps and NumRightReps expose the egg-box's row/column counts
// (nr_left_reps / nr_right_reps in the external query surface).
func (c *Class) NumLeftReps() int  { return len(c.LeftReps) }
func (c *Class) NumRightReps() int { return len(c.RightReps) }

// EmittedElements returns every concrete element this class's builder
// actually materialised: the representative, the left/right coset
// witnesses, and the group H-class (Regular) or restricted-action fibre
// (NonRegular). It is not the class's full membership (a Regular class's
// |Left|*|H|*|Right| product is never fully materialised), but it is
// every element the engine has a concrete handle on, and it is exactly
// the set whose generator-products must be queued as fresh candidates
// so a class's escape to a strictly-lower-rank D-class is never missed
// just because the candidate that happened to trigger discovery wasn't
// the escaping one.
func (c *Class) EmittedElements() []element.Element {
	set := newElemSet()
	set.insert(c.Rep)
	if c.Kind == Regular {
		set.insert(c.Idem)
		for _, h := range c.H {
			set.insert(h)
		}
	} else {
		for _, x := range c.fiber {
			set.insert(x)
		}
	}
	for _, l := range c.LeftReps {
		set.insert(l)
	}
	for _, r := range c.RightReps {
		set.insert(r)
	}
	return set.elements()
}

// Contains reports whether x belongs to this class: same rank, and its
// Λ and Ρ invariants both lie within the cosets this class spans. This
// is the egg-box membership theorem directly (every cell of a D-class's
// Λ-coset × Ρ-coset grid is occupied), rather than a reconstruction via
// H, which would require left/right representatives chosen as mutual
// translators rather than independently-discovered coset witnesses.
func (c *Class) Contains(x element.Element) bool {
	if x.Rank() != c.Rank {
		return false
	}
	lx, rx := x.Lambda(), x.Rho()
	foundL := false
	for _, v := range c.LambdaVals {
		if v.Equal(lx) {
			foundL = true
			break
		}
	}
	if !foundL {
		return false
	}
	for _, v := range c.RhoVals {
		if v.Equal(rx) {
			return true
		}
	}
	return false
}

// Store indexes every discovered Class by Λ/Ρ-value, so the engine can
// cheaply test whether a freshly produced element already belongs to a
// known class before spending effort classifying it from scratch.
type Store struct {
	classes  []*Class
	byLambda map[uint64][]int // Value.Hash() -> candidate class indices
	byRho    map[uint64][]int
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		byLambda: make(map[uint64][]int),
		byRho:    make(map[uint64][]int),
	}
}

// Add registers a newly built class, indexing it by every Λ/Ρ value it
// carries so Find can later locate it from either side.
func (s *Store) Add(c *Class) {
	idx := len(s.classes)
	s.classes = append(s.classes, c)
	for _, v := range c.LambdaVals {
		h := v.Hash()
		s.byLambda[h] = append(s.byLambda[h], idx)
	}
	for _, v := range c.RhoVals {
		h := v.Hash()
		s.byRho[h] = append(s.byRho[h], idx)
	}
}

// Len returns the number of classes registered so far.
func (s *Store) Len() int { return len(s.classes) }

// At returns the class at index i.
func (s *Store) At(i int) *Class { return s.classes[i] }

// All returns every registered class, highest rank first as they were
// discovered (the engine discovers classes in non-increasing rank
// order).
func (s *Store) All() []*Class { return s.classes }

// Find locates the class containing x by looking up x's Λ-value in the
// Λ-index (it is populated for both class kinds) and confirming with
// Contains; the Ρ-index is not consulted.
func (s *Store) Find(x element.Element) *Class {
	h := x.Lambda().Hash()
	for _, idx := range s.byLambda[h] {
		c := s.classes[idx]
		if c.Contains(x) {
			return c
		}
	}
	return nil
}

// HasLambda reports whether any known class already carries the given
// Λ-value, letting the engine skip re-deriving it.
func (s *Store) HasLambda(v element.Invariant) bool {
	for _, idx := range s.byLambda[v.Hash()] {
		for _, lv := range s.classes[idx].LambdaVals {
			if lv.Equal(v) {
				return true
			}
		}
	}
	return false
}

// HasRho reports whether any known class already carries the given
// Ρ-value.
func (s *Store) HasRho(v element.Invariant) bool {
	for _, idx := range s.byRho[v.Hash()] {
		for _, rv := range s.classes[idx].RhoVals {
			if rv.Equal(v) {
				return true
			}
		}
	}
	return false
}
