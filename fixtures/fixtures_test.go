package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dclassgo/konieczny/bmat"
	"github.com/dclassgo/konieczny/fixtures"
)

func TestBMat2GroupOfUnits_IsInvolution(t *testing.T) {
	gens := fixtures.BMat2GroupOfUnits()
	require.Len(t, gens, 1)
	swap := gens[0].(bmat.BMat8)

	id := bmat.Identity(2)
	got := swap.Mul(swap).(bmat.BMat8)
	assert.True(t, got.Equal(id))
}

func TestBMat3RegularAndPermutation_ProjectionIsIdempotent(t *testing.T) {
	gens := fixtures.BMat3RegularAndPermutation()
	require.Len(t, gens, 2)
	proj := gens[0].(bmat.BMat8)

	assert.True(t, proj.IsIdempotent())
	assert.Equal(t, 2, proj.Rank())
}

func TestBMat3CascadingNonRegular_PowersCollapse(t *testing.T) {
	gens := fixtures.BMat3CascadingNonRegular()
	require.Len(t, gens, 1)
	x := gens[0].(bmat.BMat8)

	x2 := x.Mul(x).(bmat.BMat8)
	x3 := x2.Mul(x).(bmat.BMat8)

	assert.Equal(t, 2, x.Rank())
	assert.Equal(t, 1, x2.Rank())
	assert.Equal(t, 0, x3.Rank())
	assert.True(t, x3.IsIdempotent())
	assert.False(t, x.IsIdempotent())
	assert.False(t, x2.IsIdempotent())
}

func TestTwoPointFull_ConstantsAreIdempotent(t *testing.T) {
	gens := fixtures.TwoPointFull()
	require.Len(t, gens, 3)
	for _, g := range gens[1:] {
		assert.True(t, g.IsIdempotent())
	}
}

func TestFivePointFullTransformationMonoid_CollapseIsIdempotentRankFour(t *testing.T) {
	gens := fixtures.FivePointFullTransformationMonoid()
	require.Len(t, gens, 3)
	collapse := gens[2]

	assert.True(t, collapse.IsIdempotent())
	assert.Equal(t, 4, collapse.Rank())
}

func TestRandomRankKTransformation_ProducesExactRank(t *testing.T) {
	for k := 1; k <= 5; k++ {
		g, err := fixtures.RandomRankKTransformation(5, k, fixtures.WithSeed(int64(k)))
		require.NoError(t, err)
		assert.Equal(t, k, g.Rank())
	}
}

func TestRandomRankKTransformation_RejectsBadRank(t *testing.T) {
	_, err := fixtures.RandomRankKTransformation(5, 0)
	assert.ErrorIs(t, err, fixtures.ErrBadRank)

	_, err = fixtures.RandomRankKTransformation(5, 6)
	assert.ErrorIs(t, err, fixtures.ErrBadRank)

	_, err = fixtures.RandomRankKTransformation(0, 1)
	assert.ErrorIs(t, err, fixtures.ErrBadDegree)
}

func TestRandomTransformationGenerators_Deterministic(t *testing.T) {
	a, err := fixtures.RandomTransformationGenerators(6, 4, 3, fixtures.WithSeed(42))
	require.NoError(t, err)
	b, err := fixtures.RandomTransformationGenerators(6, 4, 3, fixtures.WithSeed(42))
	require.NoError(t, err)

	require.Len(t, a, 4)
	for i := range a {
		assert.Equal(t, a[i].String(), b[i].String())
	}
}

func TestRandomTransformationGenerators_RejectsBadCount(t *testing.T) {
	_, err := fixtures.RandomTransformationGenerators(5, 0, 3)
	assert.ErrorIs(t, err, fixtures.ErrBadCount)
}
