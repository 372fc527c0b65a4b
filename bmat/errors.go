// SPDX-License-Identifier: MIT
// Package bmat: sentinel errors.
package bmat

import "errors"

var (
	// ErrBadDimension is returned when constructing a BMat8 from rows
	// whose dimension is not in [1,8] or whose rows are not square.
	ErrBadDimension = errors.New("bmat: dimension must be in [1,8] and square")
)
