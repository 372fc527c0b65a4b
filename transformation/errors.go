// SPDX-License-Identifier: MIT
// Package transformation: sentinel errors.
package transformation

import "errors"

var (
	// ErrBadDegree is returned when constructing a Transformation whose
	// image array has length zero or contains an out-of-range point.
	ErrBadDegree = errors.New("transformation: invalid degree or image value")
)
