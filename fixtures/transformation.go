package fixtures

import (
	"github.com/dclassgo/konieczny/element"
	"github.com/dclassgo/konieczny/transformation"
)

// TwoPointFull returns the swap and the two constant maps on {0,1}: the
// three generators whose closure is the full transformation monoid T_2
// (4 elements: id, swap, const0, const1).
func TwoPointFull() []element.Element {
	return []element.Element{
		transformation.MustNew([]int{1, 0}),
		transformation.MustNew([]int{0, 0}),
		transformation.MustNew([]int{1, 1}),
	}
}

// FivePointFullTransformationMonoid returns three degree-5 generators: a
// 5-cycle, a transposition of its first two points, and a rank-4
// idempotent collapsing point 4 onto point 0. The cycle and transposition
// generate the symmetric group S_5; adjoining the idempotent extends the
// closure to the whole monoid T_5 (Howie, Fundamentals of Semigroup
// Theory, the classic generating set for a full transformation monoid).
func FivePointFullTransformationMonoid() []element.Element {
	cycle := transformation.MustNew([]int{1, 2, 3, 4, 0})
	transposition := transformation.MustNew([]int{1, 0, 2, 3, 4})
	collapse := transformation.MustNew([]int{0, 1, 2, 3, 0})
	return []element.Element{cycle, transposition, collapse}
}
