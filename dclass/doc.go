// Package dclass holds the decomposed D-classes the Konieczny engine
// discovers, and the two builders that materialise one: BuildRegular for
// a class containing an idempotent, BuildNonRegular for one that does
// not.
//
// A D-class is stored as a representative together with its left reps
// (indexed by the distinct Λ-values reachable from the representative)
// and right reps (indexed by distinct Ρ-values), and — for a regular
// class — the group H-class eSe sitting at their intersection. The
// class's full membership is never materialised: |class| = |left reps|
// * |H| * |right reps|, an identity from the egg-box picture (every
// cell of a D-class's Λ-coset × Ρ-coset grid is occupied and the same
// size), and Contains tests the same grid membership directly rather
// than listing elements.
//
// Store indexes every discovered class by Λ/Ρ-value, the structure the engine's candidate queue consults on
// every step to decide whether a freshly produced element is already
// known.
package dclass
