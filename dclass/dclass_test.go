package dclass_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dclassgo/konieczny/dclass"
	"github.com/dclassgo/konieczny/element"
	"github.com/dclassgo/konieczny/transformation"
)

// T2 generators realise the full transformation monoid on {0,1}: the
// swap, and the two constant maps.
func t2Gens() []element.Element {
	return []element.Element{
		transformation.MustNew([]int{1, 0}),
		transformation.MustNew([]int{0, 0}),
		transformation.MustNew([]int{1, 1}),
	}
}

func TestBuildRegular_GroupOfUnits(t *testing.T) {
	id := transformation.Identity(2)
	gens := t2Gens()

	c, err := dclass.BuildRegular(id, gens)
	require.NoError(t, err)

	assert.Equal(t, dclass.Regular, c.Kind)
	assert.Equal(t, 2, c.Rank)
	assert.Equal(t, 1, c.NumLeftReps())
	assert.Equal(t, 1, c.NumRightReps())
	assert.Equal(t, 2, c.SizeHClass())
	assert.Equal(t, 2, c.Size())
	assert.Equal(t, 1, c.NumIdempotents) // only the identity; the swap has order 2.

	swap := transformation.MustNew([]int{1, 0})
	assert.True(t, c.Contains(id))
	assert.True(t, c.Contains(swap))
	assert.False(t, c.Contains(transformation.MustNew([]int{0, 0})))
}

func TestBuildRegular_RejectsNonIdempotent(t *testing.T) {
	swap := transformation.MustNew([]int{1, 0})
	_, err := dclass.BuildRegular(swap, t2Gens())
	assert.ErrorIs(t, err, dclass.ErrNotIdempotent)
}

func TestBuildRegular_ConstantFibreIsASingleClass(t *testing.T) {
	const0 := transformation.MustNew([]int{0, 0})
	const1 := transformation.MustNew([]int{1, 1})
	gens := t2Gens()

	c, err := dclass.BuildRegular(const0, gens)
	require.NoError(t, err)

	assert.Equal(t, 1, c.Rank)
	assert.Equal(t, 1, c.SizeHClass())
	assert.Equal(t, 2, c.Size())
	assert.True(t, c.Contains(const0))
	assert.True(t, c.Contains(const1))
}

func TestBuildNonRegular_SingletonClass(t *testing.T) {
	// g has rank 2, but g^2 collapses to a constant (rank 1): g's own
	// cyclic subsemigroup never revisits rank 2, so g is not regular.
	// The subsemigroup {g, g^2} it generates has exactly one element
	// of rank 2 (g itself), a minimal but legitimate non-regular class.
	g := transformation.MustNew([]int{1, 2, 2})
	gens := []element.Element{g}

	c, err := dclass.BuildNonRegular(g, gens)
	require.NoError(t, err)

	assert.Equal(t, dclass.NonRegular, c.Kind)
	assert.Equal(t, 2, c.Rank)
	assert.Equal(t, 1, c.Size())
	assert.Equal(t, 1, c.SizeHClass())
	assert.True(t, c.Contains(g))
}

func TestBuildNonRegular_RejectsRegularCandidate(t *testing.T) {
	id := transformation.Identity(2)
	_, err := dclass.BuildNonRegular(id, t2Gens())
	assert.ErrorIs(t, err, dclass.ErrAlreadyRegular)
}

func TestStore_FindLocatesRegisteredClass(t *testing.T) {
	id := transformation.Identity(2)
	gens := t2Gens()
	c, err := dclass.BuildRegular(id, gens)
	require.NoError(t, err)

	store := dclass.NewStore()
	store.Add(c)

	swap := transformation.MustNew([]int{1, 0})
	require.NotNil(t, store.Find(swap))
	assert.Nil(t, store.Find(transformation.MustNew([]int{0, 0})))
	assert.True(t, store.HasLambda(id.Lambda()))
	assert.True(t, store.HasRho(id.Rho()))
}

// TestClassifyRegular_OwnPowersCollapseButClassIsRegular is the
// counterexample to the own-powers-only regularity test: g's cyclic
// subsemigroup collapses before revisiting its starting rank (g^2 =
// g^3 = (2,2,2)), so element.IsRegular(g) reports false, yet g is a
// regular element of the full transformation monoid T3 its generating
// set reaches — y = (0,0,1) satisfies g*y*g = g, and g's own rank-2
// D-class (every rank-2 map of T3, a classical fact about full
// transformation monoids) contains the idempotent "collapse" below.
// ClassifyRegular must find this via g's own Λ/Ρ-coset, not via g's
// own powers.
func TestClassifyRegular_OwnPowersCollapseButClassIsRegular(t *testing.T) {
	g := transformation.MustNew([]int{1, 2, 2})
	cycle := transformation.MustNew([]int{1, 2, 0})
	transposition := transformation.MustNew([]int{1, 0, 2})
	collapse := transformation.MustNew([]int{0, 1, 1})
	gens := []element.Element{cycle, transposition, collapse}

	y := transformation.MustNew([]int{0, 0, 1})
	require.True(t, g.Mul(y).Mul(g).Equal(g), "test setup: y must witness g's regularity")

	regularOwnPowers, _ := element.IsRegular(g, 0)
	require.False(t, regularOwnPowers, "test setup: g must fail the own-powers test")

	idem, regular, err := dclass.ClassifyRegular(g, gens)
	require.NoError(t, err)
	assert.True(t, regular)
	require.NotNil(t, idem)
	assert.True(t, idem.IsIdempotent())
	assert.Equal(t, g.Rank(), idem.Rank())
}
