package fixtures

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/dclassgo/konieczny/element"
	"github.com/dclassgo/konieczny/transformation"
)

// RandomRankKTransformation builds a degree-n transformation of exact rank
// k: it draws a uniformly random k-subset of {0,...,n-1} from
// combin.Combinations as the image set, then assigns every domain point
// to an image point, forcing a bijection on a random k-subset of the
// domain first so every chosen image point is actually hit.
func RandomRankKTransformation(n, k int, opts ...Option) (element.Element, error) {
	if n < 1 {
		return nil, ErrBadDegree
	}
	if k < 1 || k > n {
		return nil, ErrBadRank
	}
	cfg := newConfig(opts...)

	combos := combin.Combinations(n, k)
	image := combos[cfg.rng.Intn(len(combos))]

	domainPerm := cfg.rng.Perm(n)
	img := make([]int, n)
	for i := 0; i < k; i++ {
		img[domainPerm[i]] = image[i]
	}
	for i := k; i < n; i++ {
		img[domainPerm[i]] = image[cfg.rng.Intn(k)]
	}
	return transformation.MustNew(img), nil
}

// RandomTransformationGenerators builds count degree-n transformations,
// each of a uniformly random rank in [1, maxRank], sharing one RNG across
// the whole batch so WithSeed freezes the entire set reproducibly.
func RandomTransformationGenerators(n, count, maxRank int, opts ...Option) ([]element.Element, error) {
	if n < 1 {
		return nil, ErrBadDegree
	}
	if count < 1 {
		return nil, ErrBadCount
	}
	if maxRank < 1 || maxRank > n {
		return nil, ErrBadRank
	}
	cfg := newConfig(opts...)

	gens := make([]element.Element, count)
	for i := 0; i < count; i++ {
		k := 1 + cfg.rng.Intn(maxRank)
		g, err := RandomRankKTransformation(n, k, WithRand(cfg.rng))
		if err != nil {
			return nil, err
		}
		gens[i] = g
	}
	return gens, nil
}
