// Package bmat implements BMat8, an 8×8 boolean matrix packed into eight
// uint8 rows, one of the two built-in element kinds the Konieczny engine
// operates over.
//
// Matrices of logical dimension n < 8 are embedded in the top-left n×n
// corner with the remaining rows/columns fixed to the identity, so that
// BMat8 multiplication restricted to the first n rows and columns agrees
// exactly with n×n boolean matrix multiplication. See Embed.
//
// Row/column space are computed as the full OR-closure of the matrix's
// rows (respectively columns), not merely a basis: two matrices generate
// the same left ideal iff their row-space closures are equal, which is
// the Λ-invariant the engine's action orbits require.
//
// Complexity: every operation here is O(1) in the number of matrix
// elements (bounded by 8×8) but closure construction is bounded by
// O(2^n) distinct row values; for n ≤ 8 this is at most 256 and is
// computed once per element.
package bmat
