package fixtures

import (
	"github.com/dclassgo/konieczny/bmat"
	"github.com/dclassgo/konieczny/element"
)

// BMat2GroupOfUnits returns the single involution generating the 2-element
// group {id, swap} inside the 2x2 boolean matrices: a minimal regular-only
// scenario, the BMat8 analogue of t2Gens' single-generator cases.
func BMat2GroupOfUnits() []element.Element {
	swap := bmat.MustEmbed([][]bool{
		{false, true},
		{true, false},
	})
	return []element.Element{swap}
}

// BMat3RegularAndPermutation returns two 3x3 generators: a rank-2
// idempotent projection onto the first two coordinates, and the
// transposition of those same two coordinates. Both are regular (the
// projection is its own idempotent witness; the transposition has order
// 2 and sits in the group of units of its D-class), so every class this
// pair reaches is regular.
func BMat3RegularAndPermutation() []element.Element {
	proj := bmat.MustEmbed([][]bool{
		{true, false, false},
		{true, true, false},
		{false, false, false},
	})
	swap := bmat.MustEmbed([][]bool{
		{false, true, false},
		{true, false, false},
		{false, false, true},
	})
	return []element.Element{proj, swap}
}

// BMat3CascadingNonRegular returns a single 3x3 generator x whose powers
// strictly drop rank at every step before stabilizing: x has rank 2, x^2
// has rank 1, and x^3 is the zero matrix (rank 0, idempotent, absorbing).
// Only the zero matrix's D-class is regular; the rank-2 and rank-1
// classes this generator reaches are not, since neither x nor x^2 is its
// own monogenic-closure idempotent.
func BMat3CascadingNonRegular() []element.Element {
	x := bmat.MustEmbed([][]bool{
		{false, true, false},
		{false, false, true},
		{false, false, false},
	})
	return []element.Element{x}
}
