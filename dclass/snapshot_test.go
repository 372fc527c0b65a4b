package dclass_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/dclassgo/konieczny/bmat"
	"github.com/dclassgo/konieczny/dclass"
)

// classSnapshot is a structural projection of dclass.Class's egg-box
// shape, compared as a whole with cmp.Diff instead of one assert.Equal
// per field: when a class's Size/SizeHClass/NumLeftReps/NumRightReps
// don't all line up at once, testify's per-field output makes it hard
// to see which combination is wrong, where a single diff of the whole
// shape localizes it immediately.
type classSnapshot struct {
	Size         int
	SizeHClass   int
	NumLeftReps  int
	NumRightReps int
}

func snapshotOf(c *dclass.Class) classSnapshot {
	return classSnapshot{
		Size:         c.Size(),
		SizeHClass:   c.SizeHClass(),
		NumLeftReps:  c.NumLeftReps(),
		NumRightReps: c.NumRightReps(),
	}
}

// TestBuildNonRegular_StructuralSnapshots reproduces the six non-regular
// representatives of test-konieczny.cpp case "005" — the same literal
// data TestDecomposition_3x3RegularAndNonRegularTotal247 checks field by
// field — as table-driven cmp.Diff comparisons of the whole egg-box
// shape at once.
func TestBuildNonRegular_StructuralSnapshots(t *testing.T) {
	gens := threeByThreeGens()

	tests := []struct {
		name string
		rep  bmat.BMat8
		want classSnapshot
	}{
		{
			name: "rep0",
			rep:  bm([]int{0, 0, 1}, []int{1, 0, 1}, []int{1, 1, 0}),
			want: classSnapshot{Size: 36, SizeHClass: 1, NumLeftReps: 6, NumRightReps: 6},
		},
		{
			name: "rep1",
			rep:  bm([]int{0, 0, 1}, []int{1, 1, 1}, []int{1, 1, 0}),
			want: classSnapshot{Size: 18, SizeHClass: 1, NumLeftReps: 3, NumRightReps: 6},
		},
		{
			name: "rep2",
			rep:  bm([]int{0, 1, 1}, []int{1, 0, 1}, []int{1, 1, 1}),
			want: classSnapshot{Size: 18, SizeHClass: 2, NumLeftReps: 3, NumRightReps: 3},
		},
		{
			name: "rep3",
			rep:  bm([]int{0, 1, 1}, []int{1, 1, 0}, []int{1, 0, 1}),
			want: classSnapshot{Size: 6, SizeHClass: 6, NumLeftReps: 1, NumRightReps: 1},
		},
		{
			name: "rep4",
			rep:  bm([]int{1, 0, 1}, []int{1, 0, 1}, []int{1, 1, 0}),
			want: classSnapshot{Size: 18, SizeHClass: 1, NumLeftReps: 6, NumRightReps: 3},
		},
		{
			name: "rep5",
			rep:  bm([]int{1, 1, 0}, []int{1, 1, 1}, []int{1, 1, 1}),
			want: classSnapshot{Size: 9, SizeHClass: 1, NumLeftReps: 3, NumRightReps: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := dclass.BuildNonRegular(tt.rep, gens)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, snapshotOf(c)); diff != "" {
				t.Errorf("unexpected class snapshot for %s (-want +got):\n%s", tt.name, diff)
			}
		})
	}
}
