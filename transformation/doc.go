// Package transformation implements finite full transformations of
// {0,...,n-1}: arbitrary (not necessarily injective) self-maps, the
// second built-in Element kind alongside github.com/dclassgo/konieczny/bmat.
//
// Composition follows the left-to-right convention used throughout:
// (f*g)(x) = g(f(x)), so that image(f*g) = g(image(f)) matches the
// action orbit's right-action law directly.
//
// Λ is the image set; Ρ is the kernel (the partition of {0,...,n-1}
// into fibres of equal image, canonicalised by order of first
// appearance so that structurally equal partitions compare equal
// regardless of which concrete element produced them).
package transformation
