package element_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dclassgo/konieczny/bmat"
	"github.com/dclassgo/konieczny/element"
	"github.com/dclassgo/konieczny/transformation"
)

func TestCyclicIndexPeriod_PermutationIsIndexOne(t *testing.T) {
	// A permutation of {0,1,2} (a 3-cycle) generates a cyclic group of
	// order 3: it is its own inverse's square, so it is regular from the
	// very first power.
	g := transformation.MustNew([]int{1, 2, 0})

	index, period, idem, ok := element.CyclicIndexPeriod(g, 0)
	require.True(t, ok)
	assert.Equal(t, 1, index)
	assert.Equal(t, 3, period)
	assert.True(t, idem.IsIdempotent())
	assert.Equal(t, g.Rank(), idem.Rank())

	regular, ridem := element.IsRegular(g, 0)
	assert.True(t, regular)
	assert.True(t, ridem.Equal(idem))
}

func TestCyclicIndexPeriod_RankCollapseFailsTheOwnPowersTest(t *testing.T) {
	// g has rank 2 but g^2 collapses to the constant map at 2 (rank 1),
	// so g's own cyclic subsemigroup never revisits rank 2: index > 1,
	// and the fast own-powers IsRegular check reports false. This does
	// NOT mean g is irregular in its ambient semigroup — in the full
	// transformation monoid T3, g is in fact regular (y = (0,0,1)
	// satisfies g*y*g = g) — it only means IsRegular's sufficient-but-
	// not-necessary test doesn't witness it; dclass.ClassifyRegular is
	// the test that gets this case right.
	g := transformation.MustNew([]int{1, 2, 2})

	index, _, _, ok := element.CyclicIndexPeriod(g, 0)
	require.True(t, ok)
	assert.Greater(t, index, 1)

	regular, idem := element.IsRegular(g, 0)
	assert.False(t, regular)
	assert.Nil(t, idem)
}

func TestCyclicIndexPeriod_IdentityMatrixIsRegular(t *testing.T) {
	id := bmat.Identity(3)

	regular, idem := element.IsRegular(id, 0)
	require.True(t, regular)
	assert.True(t, idem.Equal(id))
}
