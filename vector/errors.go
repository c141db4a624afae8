// SPDX-License-Identifier: MIT

package vector

import "errors"

var (
	// ErrDimensionMismatch indicates two operands of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrDegenerateVector indicates an attempt to normalise or invert a vector
	// with a zero or non-finite magnitude (or a zero coordinate for Inverse).
	ErrDegenerateVector = errors.New("vector: degenerate vector")
)
