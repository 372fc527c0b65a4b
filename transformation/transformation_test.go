package transformation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dclassgo/konieczny/transformation"
)

func TestNew_RejectsBadDegree(t *testing.T) {
	_, err := transformation.New(nil)
	assert.ErrorIs(t, err, transformation.ErrBadDegree)

	_, err = transformation.New([]int{5})
	assert.ErrorIs(t, err, transformation.ErrBadDegree)
}

func TestMul_Identity(t *testing.T) {
	id := transformation.Identity(5)
	x := transformation.MustNew([]int{1, 0, 2, 3, 4})

	got := id.Mul(x).(transformation.Transformation)
	assert.True(t, got.Equal(x))

	got2 := x.Mul(id).(transformation.Transformation)
	assert.True(t, got2.Equal(x))
}

func TestRankAndIdempotent(t *testing.T) {
	constant := transformation.MustNew([]int{0, 0, 0, 0, 0})
	assert.Equal(t, 1, constant.Rank())
	assert.True(t, constant.IsIdempotent())

	notIdem := transformation.MustNew([]int{1, 2, 3, 4, 0})
	assert.False(t, notIdem.IsIdempotent())
	assert.Equal(t, 5, notIdem.Rank())
}

func TestLambda_RightActionLaw(t *testing.T) {
	s := transformation.MustNew([]int{1, 2, 3, 4, 0})
	g := transformation.MustNew([]int{0, 0, 2, 3, 4})

	st := s.Mul(g).(transformation.Transformation)
	want := st.Lambda()
	got := s.Lambda().ActRight(g)
	require.True(t, got.Equal(want))
}

func TestRho_LeftActionLaw(t *testing.T) {
	g := transformation.MustNew([]int{1, 2, 3, 4, 0})
	tt := transformation.MustNew([]int{0, 0, 2, 3, 4})

	gt := g.Mul(tt).(transformation.Transformation)
	want := gt.Rho()
	got := tt.Rho().ActLeft(g)
	require.True(t, got.Equal(want))
}

func TestRankMonotoneNonIncreasing(t *testing.T) {
	x := transformation.MustNew([]int{0, 0, 2, 3, 4})
	y := transformation.MustNew([]int{1, 1, 1, 3, 4})
	xy := x.Mul(y).(transformation.Transformation)
	assert.LessOrEqual(t, xy.Rank(), x.Rank())
}
