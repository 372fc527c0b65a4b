// Package fixtures builds reusable generator sets for the element types in
// bmat and transformation: small hand-picked scenarios for deterministic
// tests and examples, plus randomized generator sets for property-style
// exercising of the konieczny engine at larger arities.
//
// Every constructor returns []element.Element so callers can feed the
// result straight into konieczny.New without a type switch. Randomized
// constructors accept Options (WithSeed/WithRand) to control determinism,
// mirroring the seeded-builder pattern used elsewhere in this module's
// ancestry.
package fixtures
