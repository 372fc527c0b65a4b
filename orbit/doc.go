// Package orbit implements the two action orbits: the Λ-orbit (the
// right-action closure of seeded Λ-invariants) and the Ρ-orbit (the dual
// left-action closure).
//
// An Orbit is lazy and step-driven, mirroring github.com/katalvlaran/lvlath/bfs's
// queue-and-visited-set walker but exposing its frontier one point at a
// time via ExtendOne instead of running to completion. Within this
// module the only driver is the dclass builders, which seed a Running
// orbit at one element and extend it until Exhausted; the konieczny
// engine holds no orbit and does not interleave the two.
//
// Every point records a Schreier edge (parent index, generator index)
// so the generator word that reaches it from a seed can be reconstructed
// on demand with Trace; Running additionally keeps a concrete Element
// representative per point.
package orbit
