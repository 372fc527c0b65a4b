package konieczny_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dclassgo/konieczny/dclass"
	"github.com/dclassgo/konieczny/element"
	"github.com/dclassgo/konieczny/fixtures"
	"github.com/dclassgo/konieczny/internal/fporacle"
	"github.com/dclassgo/konieczny/konieczny"
)

// isRegularInOracle tests x*y*x=x (spec glossary's own definition of a
// regular element) against every element of an independently computed
// closure, with no reference to anything the Engine itself decided.
func isRegularInOracle(x element.Element, oracle *fporacle.Result) bool {
	for _, y := range oracle.Elements() {
		if x.Mul(y).Mul(x).Equal(x) {
			return true
		}
	}
	return false
}

// TestEngine_T5RegularityMatchesIndependentOracle exercises
// fixtures.FivePointFullTransformationMonoid, whose closure (spec §8
// scenario 6) contains "tail" elements — transformations whose own
// powers collapse to a lower rank before cycling back, so
// element.IsRegular would wrongly call them non-regular — inside a
// monoid that is in fact entirely regular (T5 is a full transformation
// monoid; every element of it is regular, Howie, Fundamentals of
// Semigroup Theory). Unlike the cross-checks in
// konieczny_scenarios_test.go, which compare Engine.RegularClasses
// against Engine.IsRegularElement (itself read off the same Kind field
// under test, hence tautological), this test computes regularity for
// every oracle element directly from the definition (x*y*x=x, spec
// glossary) and compares that independent count against the Engine's
// own regular-class total.
func TestEngine_T5RegularityMatchesIndependentOracle(t *testing.T) {
	gens := fixtures.FivePointFullTransformationMonoid()

	e, err := konieczny.New(gens)
	require.NoError(t, err)
	require.NoError(t, e.Run(context.Background()))

	oracle, err := fporacle.Enumerate(context.Background(), gens)
	require.NoError(t, err)

	oracleRegularCount := 0
	oracleIdempotentCount := 0
	for _, x := range oracle.Elements() {
		if isRegularInOracle(x, oracle) {
			oracleRegularCount++
		}
		if x.IsIdempotent() {
			oracleIdempotentCount++
		}
	}

	// T5 is a full transformation monoid: every element is regular.
	assert.Equal(t, oracle.Size(), oracleRegularCount,
		"T5 is a regular monoid: every oracle element should satisfy x*y*x=x for some y")

	classes, err := e.Classes()
	require.NoError(t, err)

	engineRegularTotal := 0
	engineIdempotentTotal := 0
	for _, c := range classes {
		if c.Kind == dclass.Regular {
			engineRegularTotal += c.Size()
		}
		engineIdempotentTotal += c.NumIdempotents
	}

	assert.Equal(t, oracleRegularCount, engineRegularTotal,
		"Engine.Classes' Kind must agree with the independent xyx=x definition, not just each representative's own powers")

	numIdem, err := e.NumIdempotents()
	require.NoError(t, err)
	assert.Equal(t, oracleIdempotentCount, numIdem)
	assert.Equal(t, oracleIdempotentCount, engineIdempotentTotal)
}
