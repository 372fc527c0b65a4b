// SPDX-License-Identifier: MIT
// Package dclass: sentinel errors.
package dclass

import "errors"

var (
	// ErrNotIdempotent indicates BuildRegular was asked to build around
	// an element that is not idempotent.
	ErrNotIdempotent = errors.New("dclass: representative is not idempotent")

	// ErrUnknownInvariant indicates a Λ or Ρ invariant required to build
	// a class was not found in the supplied orbit.
	ErrUnknownInvariant = errors.New("dclass: invariant not present in orbit")

	// ErrAlreadyRegular indicates BuildNonRegular was asked to build
	// around a candidate that turned out to be regular.
	ErrAlreadyRegular = errors.New("dclass: candidate is regular")
)
