// SPDX-License-Identifier: MIT
// Package konieczny: sentinel errors.
package konieczny

import "errors"

var (
	// ErrEmptyGenerators indicates the engine was constructed with no
	// generators.
	ErrEmptyGenerators = errors.New("konieczny: no generators supplied")

	// ErrIncompatibleGenerator indicates the generating set mixes
	// elements of different arity.
	ErrIncompatibleGenerator = errors.New("konieczny: generators have incompatible arity")

	// ErrNotYetFinished indicates a query method was called before Run
	// (or RunFor/RunUntil) drove the engine to completion.
	ErrNotYetFinished = errors.New("konieczny: engine has not finished running")

	// ErrCancelled indicates Run's context was cancelled mid-computation.
	ErrCancelled = errors.New("konieczny: run cancelled")
)
