package bmat

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/dclassgo/konieczny/element"
)

// BMat8 is an 8×8 boolean matrix. Rows are packed one uint8 per row;
// bit j of rows[i] holds the (i,j) entry. n is the logical dimension;
// rows/columns at index >= n are the identity padding described in
// Embed's doc comment.
type BMat8 struct {
	rows [8]uint8
	n    int
}

// mask returns the low-n-bits mask used to ignore padding columns.
func (m BMat8) mask() uint8 {
	if m.n >= 8 {
		return 0xff
	}
	return uint8(1<<uint(m.n)) - 1
}

// Embed builds a BMat8 from an n×n boolean matrix (n in [1,8]), padding
// rows and columns n..7 with the identity so that multiplication
// restricted to the first n rows/columns agrees with native n×n
// boolean matrix multiplication (see doc.go).
func Embed(rows [][]bool) (BMat8, error) {
	n := len(rows)
	if n < 1 || n > 8 {
		return BMat8{}, ErrBadDimension
	}
	var m BMat8
	m.n = n
	for i := 0; i < n; i++ {
		if len(rows[i]) != n {
			return BMat8{}, ErrBadDimension
		}
		var r uint8
		for j := 0; j < n; j++ {
			if rows[i][j] {
				r |= 1 << uint(j)
			}
		}
		m.rows[i] = r
	}
	for i := n; i < 8; i++ {
		m.rows[i] = 1 << uint(i)
	}
	return m, nil
}

// MustEmbed is Embed but panics on error; intended for compile-time
// literal fixtures where the shape is known to be valid.
func MustEmbed(rows [][]bool) BMat8 {
	m, err := Embed(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// Identity returns the n×n identity matrix embedded in BMat8.
func Identity(n int) BMat8 {
	rows := make([][]bool, n)
	for i := range rows {
		rows[i] = make([]bool, n)
		rows[i][i] = true
	}
	return MustEmbed(rows)
}

// Arity returns the logical dimension n.
func (m BMat8) Arity() int { return m.n }

// At reports the boolean entry at (i,j), i,j in [0,n).
func (m BMat8) At(i, j int) bool {
	return m.rows[i]&(1<<uint(j)) != 0
}

// Equal is total equality on the logical n×n content.
func (m BMat8) Equal(other element.Element) bool {
	o, ok := other.(BMat8)
	if !ok || o.n != m.n {
		return false
	}
	mask := m.mask()
	for i := 0; i < m.n; i++ {
		if m.rows[i]&mask != o.rows[i]&mask {
			return false
		}
	}
	return true
}

// Hash is a total FNV-1a hash over the logical rows and n.
func (m BMat8) Hash() uint64 {
	h := fnv.New64a()
	mask := m.mask()
	h.Write([]byte{byte(m.n)})
	for i := 0; i < m.n; i++ {
		h.Write([]byte{m.rows[i] & mask})
	}
	return h.Sum64()
}

// Less gives a deterministic total order over same-arity matrices,
// comparing packed rows lexicographically; different arities order by
// arity first.
func (m BMat8) Less(other element.Element) bool {
	o := other.(BMat8)
	if m.n != o.n {
		return m.n < o.n
	}
	mask := m.mask()
	for i := 0; i < m.n; i++ {
		a, b := m.rows[i]&mask, o.rows[i]&mask
		if a != b {
			return a < b
		}
	}
	return false
}

// Rank is the number of non-zero rows among the logical n rows.
func (m BMat8) Rank() int {
	mask := m.mask()
	count := 0
	for i := 0; i < m.n; i++ {
		if m.rows[i]&mask != 0 {
			count++
		}
	}
	return count
}

// String renders the logical n×n 0/1 matrix, one row per line.
func (m BMat8) String() string {
	var b strings.Builder
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if m.At(i, j) {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		if i != m.n-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

var _ fmt.Stringer = BMat8{}
