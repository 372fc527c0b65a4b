package element

// defaultPowerBound caps the search for the index/period of the cyclic
// subsemigroup generated by a single element. Every finite semigroup
// scenario this engine targets has rank bounded by a handful of points,
// so a cyclic subsemigroup exhausts itself long before this bound.
const defaultPowerBound = 512

// CyclicIndexPeriod computes the index m and period p of the monogenic
// subsemigroup <x> generated by x: the least m such that x^m = x^(m+p)
// for some minimal p >= 1. It also returns the unique idempotent power
// e = x^k lying in the cyclic group {x^m, ..., x^(m+p-1)} (k is the
// smallest multiple of p that is >= m).
//
// index(x) == 1 (equivalently m == 1) means <x> itself is a group, so x
// is certainly a regular element of the ambient semigroup: x's own
// powers already cycle through an idempotent. This is a sufficient
// condition, not a necessary one: x can be D-equivalent to an
// idempotent that is not a power of x at all (e.g. the degree-3
// transformation (1,2,2) has index 2 — its powers collapse to a
// constant map and never come back — yet it is regular in the full
// transformation monoid T3, via y = (0,0,1) with x*y*x = x). Callers
// that need the actual D-class regularity test, not just this
// fast-path check on x's own powers, use dclass.ClassifyRegular, which
// tests x's rank-preserving Λ/Ρ-cosets instead (Green's lemma).
//
// ok is false if no repeat is found within maxIter powers (0 uses
// defaultPowerBound); this should not happen for any finite semigroup
// small enough for this engine to enumerate at all.
func CyclicIndexPeriod(x Element, maxIter int) (index, period int, idem Element, ok bool) {
	if maxIter <= 0 {
		maxIter = defaultPowerBound
	}
	powers := make([]Element, 0, maxIter)
	cur := x
	powers = append(powers, cur) // x^1
	for e := 2; e <= maxIter; e++ {
		cur = cur.Mul(x)
		for m := 0; m < len(powers); m++ {
			if powers[m].Equal(cur) {
				index = m + 1
				period = e - index
				k := period
				for k < index {
					k += period
				}
				return index, period, powers[k-1], true
			}
		}
		powers = append(powers, cur)
	}
	return 0, 0, nil, false
}

// IsRegular reports whether x's own monogenic subsemigroup <x> is
// already a group, using the index-1 criterion from CyclicIndexPeriod.
// This is a fast sufficient test for x being regular, not a complete
// one — see CyclicIndexPeriod's doc comment — so the engine's D-class
// classification (dclass.ClassifyRegular) does not apply it to x alone
// but to every representative of x's Λ/Ρ-cosets; it remains useful on
// its own for callers who only care whether x's own powers hit a group
// without growing any orbit. idem is nil when the
// index-1 test fails to find an idempotent, which does not mean x is
// irregular, only that this particular test didn't witness it.
func IsRegular(x Element, maxIter int) (regular bool, idem Element) {
	index, _, e, ok := CyclicIndexPeriod(x, maxIter)
	if !ok || index != 1 {
		return false, nil
	}
	return true, e
}
