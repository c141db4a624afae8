// SPDX-License-Identifier: MIT

package vector

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// minNormal is the smallest positive normal float64 (2^-1022).
const minNormal = 0x1p-1022

// IsNormal reports whether x is a finite, non-zero, non-subnormal value.
// Distances and magnitudes failing this test are treated as "coincident"
// by the eccentricity and median code.
func IsNormal(x float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return false
	}

	return math.Abs(x) >= minNormal
}

// Clone returns a copy of a.
func Clone(a []float64) []float64 {
	out := make([]float64, len(a))
	copy(out, a)

	return out
}

// Add returns a+b.
func Add(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, ErrDimensionMismatch
	}

	return floats.AddTo(make([]float64, len(a)), a, b), nil
}

// Sub returns a-b.
func Sub(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, ErrDimensionMismatch
	}

	return floats.SubTo(make([]float64, len(a)), a, b), nil
}

// Scale returns s·a.
func Scale(a []float64, s float64) []float64 {
	return floats.ScaleTo(make([]float64, len(a)), s, a)
}

// Dot returns Σ aᵢbᵢ.
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}

	return floats.Dot(a, b), nil
}

// Magnitude returns the Euclidean norm √Σaᵢ².
func Magnitude(a []float64) float64 {
	if len(a) == 0 {
		return 0
	}

	return floats.Norm(a, 2)
}

// Unit returns a/|a|.
//
// Errors:
//   - ErrDegenerateVector when |a| is zero, subnormal or not finite.
func Unit(a []float64) ([]float64, error) {
	mag := Magnitude(a)
	if !IsNormal(mag) {
		return nil, ErrDegenerateVector
	}

	return Scale(a, 1/mag), nil
}

// Distance returns |a-b|.
func Distance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	if len(a) == 0 {
		return 0, nil
	}

	return floats.Distance(a, b, 2), nil
}

// DistanceSq returns |a-b|², avoiding the square root.
func DistanceSq(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}

	var (
		i    int
		diff float64
		sum  float64
	)
	for i = range a {
		diff = a[i] - b[i]
		sum += diff * diff
	}

	return sum, nil
}

// Inverse returns the coordinatewise reciprocal (1/aᵢ). This is not the
// unit vector; it is the building block of the harmonic centroid.
//
// Errors:
//   - ErrDegenerateVector when any coordinate is exactly zero.
func Inverse(a []float64) ([]float64, error) {
	out := make([]float64, len(a))
	for i, x := range a {
		if x == 0 {
			return nil, ErrDegenerateVector
		}
		out[i] = 1 / x
	}

	return out, nil
}
