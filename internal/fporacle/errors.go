// SPDX-License-Identifier: MIT
package fporacle

import "errors"

// ErrEmptyGenerators indicates Enumerate was called with no generators.
var ErrEmptyGenerators = errors.New("fporacle: no generators supplied")
