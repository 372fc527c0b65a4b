// Package element defines the capability contract the Konieczny engine
// requires of a semigroup element type, and the small set of value types
// (Invariant, Word) shared by every concrete implementation.
//
// The engine never inspects an element's bits directly; it only ever
// calls the methods of the Element interface. Concrete element kinds
// (github.com/dclassgo/konieczny/bmat, github.com/dclassgo/konieczny/transformation)
// satisfy Element and additionally know how to print and construct
// themselves from literals, but that is outside this package's concern.
//
// Invariant laws:
//
//	lambda(s·t) depends only on (lambda(s), t)   — right action
//	rho(s·t)    depends only on (s, rho(t))      — left action
//	lambda(s) = lambda(t)  iff  S¹·s = S¹·t        (same L-class)
//	rho(s)    = rho(t)     iff  s·S¹ = t·S¹        (same R-class)
//
// A concrete element kind supplies Lambda/Rho such that these laws hold
// for the corresponding Invariant's ActRight/ActLeft; the engine and the
// D-class builders rely on it.
package element
