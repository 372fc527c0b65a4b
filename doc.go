// Package konieczny (root) decomposes the finite semigroup generated by a
// set of boolean matrices or finite transformations into its D-classes,
// using Konieczny's algorithm.
//
// What it computes:
//
//	Given generators of one concrete element kind, the engine accounts
//	for every element reachable by repeated multiplication by grouping
//	them into D-classes (egg-box pictures of L/R/H-classes), without
//	listing each class's members, distinguishing regular classes
//	(containing an idempotent) from non-regular ones.
//
// Subpackages:
//
//	element/        — the Element/Invariant capability contract shared by
//	                   every concrete element kind, plus the monogenic
//	                   (cyclic subsemigroup) regularity test.
//	bmat/           — BMat8, an 8x8 boolean matrix Element.
//	transformation/ — Transformation, a finite self-map Element.
//	orbit/          — lazy Λ/Ρ-orbit construction with Schreier words.
//	dclass/         — D-class representation and the regular/non-regular
//	                   builders.
//	konieczny/      — the stepping engine tying the above together.
//	fixtures/       — hand-picked and randomized generator sets for tests
//	                   and examples.
//
// See the konieczny subpackage's doc comment for the engine's run loop
// and query surface.
package konieczny
