package bmat

import "github.com/dclassgo/konieczny/element"

// Mul returns the boolean matrix product m·other. Precondition: m and
// other share the same Arity(); this is an invariant the engine
// enforces before ever calling Mul (konieczny.New rejects a mixed-arity
// generating set with konieczny.ErrIncompatibleGenerator), so a mismatch
// panics rather than returning an error.
func (m BMat8) Mul(other element.Element) element.Element {
	o := other.(BMat8)
	if m.n != o.n {
		panic("bmat: Mul called on mismatched arities")
	}
	var out BMat8
	out.n = m.n
	for i := 0; i < 8; i++ {
		var r uint8
		row := m.rows[i]
		for k := 0; k < 8; k++ {
			if row&(1<<uint(k)) != 0 {
				r |= o.rows[k]
			}
		}
		out.rows[i] = r
	}
	return out
}

// Transpose returns mᵀ.
func (m BMat8) Transpose() BMat8 {
	var out BMat8
	out.n = m.n
	for i := 0; i < 8; i++ {
		var r uint8
		for j := 0; j < 8; j++ {
			if m.rows[j]&(1<<uint(i)) != 0 {
				r |= 1 << uint(j)
			}
		}
		out.rows[i] = r
	}
	return out
}

// IsIdempotent reports whether m·m == m.
func (m BMat8) IsIdempotent() bool {
	return m.Mul(m).(BMat8).Equal(m)
}

// rowVecMul computes r·g for a row vector r (bitmask over columns) and
// matrix g: result bit j is set iff some i with bit i of r set has
// g.rows[i] bit j set.
func rowVecMul(r uint8, g BMat8) uint8 {
	var out uint8
	for i := 0; i < 8; i++ {
		if r&(1<<uint(i)) != 0 {
			out |= g.rows[i]
		}
	}
	return out
}

// colVecMul computes g·c for a column vector c (bitmask over rows) and
// matrix g: result bit i is set iff g.rows[i] shares a set bit with c.
func colVecMul(g BMat8, c uint8) uint8 {
	var out uint8
	for i := 0; i < 8; i++ {
		if g.rows[i]&c != 0 {
			out |= 1 << uint(i)
		}
	}
	return out
}
