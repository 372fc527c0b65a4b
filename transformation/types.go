package transformation

import (
	"fmt"
	"hash/fnv"

	"github.com/dclassgo/konieczny/element"
)

// Transformation is a full self-map of {0,...,n-1}, represented densely
// as img[i] = the image of point i.
type Transformation struct {
	img []int
}

// New builds a Transformation of degree len(img) from an explicit image
// array. Every value must be in [0, len(img)).
func New(img []int) (Transformation, error) {
	n := len(img)
	if n == 0 {
		return Transformation{}, ErrBadDegree
	}
	cp := make([]int, n)
	for i, v := range img {
		if v < 0 || v >= n {
			return Transformation{}, ErrBadDegree
		}
		cp[i] = v
	}
	return Transformation{img: cp}, nil
}

// MustNew is New but panics on error; for compile-time literal fixtures.
func MustNew(img []int) Transformation {
	t, err := New(img)
	if err != nil {
		panic(err)
	}
	return t
}

// Identity returns the identity transformation on n points.
func Identity(n int) Transformation {
	img := make([]int, n)
	for i := range img {
		img[i] = i
	}
	return MustNew(img)
}

// Arity is the degree n.
func (t Transformation) Arity() int { return len(t.img) }

// At returns the image of point i.
func (t Transformation) At(i int) int { return t.img[i] }

// Mul returns t·other under the convention (t*other)(x) = other(t(x)).
func (t Transformation) Mul(other element.Element) element.Element {
	o := other.(Transformation)
	if len(t.img) != len(o.img) {
		panic("transformation: Mul called on mismatched degrees")
	}
	out := make([]int, len(t.img))
	for i, v := range t.img {
		out[i] = o.img[v]
	}
	return Transformation{img: out}
}

// Equal is total equality.
func (t Transformation) Equal(other element.Element) bool {
	o, ok := other.(Transformation)
	if !ok || len(t.img) != len(o.img) {
		return false
	}
	for i := range t.img {
		if t.img[i] != o.img[i] {
			return false
		}
	}
	return true
}

// Hash is a total FNV-1a hash over the image array.
func (t Transformation) Hash() uint64 {
	h := fnv.New64a()
	for _, v := range t.img {
		h.Write([]byte{byte(v), byte(v >> 8)})
	}
	return h.Sum64()
}

// Less gives a deterministic total order, comparing image arrays
// lexicographically (shorter degree first).
func (t Transformation) Less(other element.Element) bool {
	o := other.(Transformation)
	if len(t.img) != len(o.img) {
		return len(t.img) < len(o.img)
	}
	for i := range t.img {
		if t.img[i] != o.img[i] {
			return t.img[i] < o.img[i]
		}
	}
	return false
}

// Rank is the size of the image set.
func (t Transformation) Rank() int {
	return len(t.Lambda().(ImageSet))
}

// IsIdempotent reports whether every image point is a fixed point,
// i.e. f(f(i)) == f(i) for all i.
func (t Transformation) IsIdempotent() bool {
	for _, v := range t.img {
		if t.img[v] != v {
			return false
		}
	}
	return true
}

// String renders the image array.
func (t Transformation) String() string {
	return fmt.Sprintf("%v", t.img)
}
