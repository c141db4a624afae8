// SPDX-License-Identifier: MIT

// Package vector provides the value-returning vector algebra the rest of
// lvstat is built on: addition, subtraction, scaling, dot product,
// magnitude, unit vector, distance and coordinatewise inversion over
// []float64.
//
// 🚀 Contract
//
//	Every function returns a freshly allocated result and never mutates its
//	arguments. Binary operations require equal lengths and fail with
//	ErrDimensionMismatch otherwise. Normalising a vector whose magnitude is
//	zero, subnormal, NaN or ±Inf fails with ErrDegenerateVector.
//
// ⚙️ Usage:
//
//	u, err := vector.Unit([]float64{3, 4}) // [0.6 0.8]
//	d, err := vector.Distance(a, b)
//
// The tight loops delegate to gonum.org/v1/gonum/floats.
package vector
