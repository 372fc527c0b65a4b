// SPDX-License-Identifier: MIT
// Package element: sentinel errors shared by every concrete element kind.
//
// Error policy (matches lvlath/builder):
//   - Only sentinel variables are exposed at package scope.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site.
package element

import "errors"

var (
	// ErrIncompatibleArity indicates two elements (or an element and a
	// generator list) do not share the same matrix dimension or
	// transformation degree and cannot be multiplied or compared.
	ErrIncompatibleArity = errors.New("element: incompatible arity")

	// ErrEmptyGenerators indicates a semigroup was requested with no
	// generators; Konieczny's algorithm requires at least one.
	ErrEmptyGenerators = errors.New("element: generator list is empty")
)
