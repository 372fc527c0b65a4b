// SPDX-License-Identifier: MIT
// Package orbit: sentinel errors.
package orbit

import "errors"

var (
	// ErrNoGenerators indicates an Orbit was constructed with an empty
	// generator list.
	ErrNoGenerators = errors.New("orbit: no generators supplied")

	// ErrIndexOutOfRange indicates Trace was called with an index not
	// yet present in the orbit.
	ErrIndexOutOfRange = errors.New("orbit: index out of range")
)
