// SPDX-License-Identifier: MIT

package geomed

import (
	"fmt"

	"github.com/katalvlaran/lvstat/vector"
)

// Point is a d-dimensional real vector. Values returned by this package are
// always fresh allocations owned by the caller.
type Point []float64

// Dim returns the number of coordinates.
func (p Point) Dim() int { return len(p) }

// Clone returns a copy of p.
func (p Point) Clone() Point {
	return vector.Clone(p)
}

// Algorithm selects the iterative scheme used by GeometricMedian.
type Algorithm int

const (
	// Weiszfeld is the reciprocal-distance weighted fixed point iteration
	// started at the arithmetic centroid. Coincident points are skipped
	// instead of aborting the round.
	Weiszfeld Algorithm = iota

	// TwoPoint keeps two estimates, seeded at FirstPoint and the centroid,
	// and moves both to the closest points of the lines through them along
	// their eccentricity directions.
	TwoPoint

	// Secant applies a one-dimensional secant step to the eccentricity
	// magnitude, moving along the eccentricity direction.
	Secant
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case Weiszfeld:
		return "weiszfeld"
	case TwoPoint:
		return "two_point"
	case Secant:
		return "secant"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// Extremes reports the smallest and largest value of a per-member measure
// together with their indices (first occurrence on ties).
//
// For Medoid the minimum is the medoid and the maximum the outlier; for
// EMedoid they are the e-medoid and e-outlier.
type Extremes struct {
	MinValue float64
	MinIndex int
	MaxValue float64
	MaxIndex int
}
