// Package konieczny drives the D-class decomposition of a finite
// semigroup from its generators: a step-at-a-time engine over a
// rank-ordered candidate queue, handing each candidate to
// dclass.BuildRegular or dclass.BuildNonRegular depending on whether
// dclass.ClassifyRegular finds an idempotent in the candidate's own
// rank-preserving Λ/Ρ-cosets (Green's lemma: a D-class is regular iff
// any one of its L-classes or R-classes contains an idempotent — a
// candidate's own powers are not enough, since it can be D-equivalent
// to an idempotent that is not one of its own powers), and enqueueing
// every generator-product of the result for later classification.
//
// The engine is a small state machine (Fresh -> Running -> Paused ->
// Finished, with Cancelled entered whenever Run finds its context done
// before a step, including on a Fresh engine) so a caller can
// drive it to completion with Run, bound it in wall-clock time with
// RunFor, or stop it early with RunUntil and a predicate. Its query
// surface (Size, Classes, IsRegularElement, Contains) only answers once
// the run has reached Finished.
package konieczny
