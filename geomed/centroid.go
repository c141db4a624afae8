// SPDX-License-Identifier: MIT

package geomed

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvstat/vector"
)

// ArithmeticCentroid returns the per-coordinate mean of s.
//
// Complexity: O(n·d).
func ArithmeticCentroid(s *PointSet) (Point, error) {
	if err := checkSet(s); err != nil {
		return nil, errors.Wrap(err, "arithmetic centroid")
	}

	return acentroid(s), nil
}

// HarmonicCentroid returns the coordinatewise inverse of the summed
// reciprocals, 1 / Σᵢ (1/pᵢₖ). This is the harmonic mean of each coordinate
// divided by n. Any zero coordinate, or a reciprocal sum of zero in some
// coordinate, yields ErrDegenerateVector.
//
// Complexity: O(n·d).
func HarmonicCentroid(s *PointSet) (Point, error) {
	if err := checkSet(s); err != nil {
		return nil, errors.Wrap(err, "harmonic centroid")
	}

	sum := make([]float64, s.d)
	for i, row := range s.rows {
		inv, err := vector.Inverse(row)
		if err != nil {
			return nil, errors.Wrapf(err, "harmonic centroid: point %d", i)
		}
		floats.Add(sum, inv)
	}

	c, err := vector.Inverse(sum)
	if err != nil {
		return nil, errors.Wrap(err, "harmonic centroid: reciprocal sum")
	}

	return c, nil
}

// FirstPoint returns Σ(p/|p|) / Σ(1/|p|) over the points with a normal
// magnitude; points at the origin are skipped. It seeds TwoPoint and Secant.
// If every point is at the origin the result is undefined and
// ErrDegenerateVector is returned.
//
// Complexity: O(n·d).
func FirstPoint(s *PointSet) (Point, error) {
	if err := checkSet(s); err != nil {
		return nil, errors.Wrap(err, "first point")
	}
	fp, ok := firstPoint(s)
	if !ok {
		return nil, errors.Wrap(ErrDegenerateVector, "first point: every point is at the origin")
	}

	return fp, nil
}

func acentroid(s *PointSet) Point {
	c := make(Point, s.d)
	for _, row := range s.rows {
		floats.Add(c, row)
	}
	floats.Scale(1/float64(len(s.rows)), c)

	return c
}

func firstPoint(s *PointSet) (Point, bool) {
	var rsum float64
	vsum := make(Point, s.d)
	for _, row := range s.rows {
		mag := vector.Magnitude(row)
		if !vector.IsNormal(mag) {
			continue
		}
		rec := 1 / mag
		rsum += rec
		floats.AddScaled(vsum, rec, row)
	}
	if rsum == 0 {
		return nil, false
	}
	for k := range vsum {
		vsum[k] /= rsum
	}

	return vsum, true
}

// seed is FirstPoint, or the centroid when every point sits at the origin.
func seed(s *PointSet) Point {
	if fp, ok := firstPoint(s); ok {
		return fp
	}

	return acentroid(s)
}
