// SPDX-License-Identifier: MIT

package geomed

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvstat/vector"
)

// EccentricityVectors returns, for every member i, Σ_{j≠i} unit(pⱼ − pᵢ).
//
// Each unordered pair is visited once: its unit vector is added to the
// accumulator of i and subtracted from that of j. Coincident pairs
// contribute nothing.
//
// Complexity: O(n²·d) time, O(n·d) space.
func EccentricityVectors(s *PointSet) ([]Point, error) {
	if err := checkSet(s); err != nil {
		return nil, errors.Wrap(err, "eccentricity vectors")
	}

	return eccField(s), nil
}

// EccentricityInSet returns |eccentricity vector of member i| / (n−1),
// the averaged unit-direction residual of a member. A single-point set has
// eccentricity 0.
//
// Complexity: O(n·d).
func EccentricityInSet(s *PointSet, i int) (float64, error) {
	if err := checkIndex(s, i); err != nil {
		return 0, errors.Wrap(err, "eccentricity in set")
	}
	n := len(s.rows)
	if n == 1 {
		return 0, nil
	}

	return vector.Magnitude(eccVector(s, s.rows[i])) / float64(n-1), nil
}

// EccentricityVector returns Σᵢ unit(pᵢ − q) for an arbitrary query q.
// Members coincident with q are skipped. The vector vanishes at the
// geometric median.
//
// Complexity: O(n·d).
func EccentricityVector(s *PointSet, q []float64) (Point, error) {
	if err := checkQuery(s, q); err != nil {
		return nil, errors.Wrap(err, "eccentricity vector")
	}

	return eccVector(s, q), nil
}

// Eccentricity returns |EccentricityVector(s, q)| / d.
//
// Note the normaliser differs from EccentricityInSet (n−1); the two are
// distinct measures and are not interchangeable.
func Eccentricity(s *PointSet, q []float64) (float64, error) {
	if err := checkQuery(s, q); err != nil {
		return 0, errors.Wrap(err, "eccentricity")
	}

	return vector.Magnitude(eccVector(s, q)) / float64(s.d), nil
}

// eccVector is EccentricityVector without validation; q must have dimension
// s.d. A member equal to q is skipped, so for a member it sums over the
// others.
func eccVector(s *PointSet, q []float64) Point {
	var (
		acc  = make(Point, s.d)
		diff = make([]float64, s.d)
	)
	for _, row := range s.rows {
		floats.SubTo(diff, row, q)
		mag := floats.Norm(diff, 2)
		if !vector.IsNormal(mag) {
			continue
		}
		floats.AddScaled(acc, 1/mag, diff)
	}

	return acc
}

// eccField is the pairwise form of eccVector over all members.
func eccField(s *PointSet) []Point {
	var (
		n    = len(s.rows)
		acc  = make([]Point, n)
		diff = make([]float64, s.d)
	)
	for i := range acc {
		acc[i] = make(Point, s.d)
	}

	var i, j int
	for i = 1; i < n; i++ {
		for j = 0; j < i; j++ {
			floats.SubTo(diff, s.rows[j], s.rows[i])
			mag := floats.Norm(diff, 2)
			if !vector.IsNormal(mag) {
				continue
			}
			// i receives unit(pⱼ−pᵢ), j its opposite.
			floats.AddScaled(acc[i], 1/mag, diff)
			floats.AddScaled(acc[j], -1/mag, diff)
		}
	}

	return acc
}

// scalarEccs returns |field[i]| / (n−1) for every member (zeros for n == 1).
func scalarEccs(s *PointSet) []float64 {
	n := len(s.rows)
	out := make([]float64, n)
	if n == 1 {
		return out
	}
	for i, e := range eccField(s) {
		out[i] = vector.Magnitude(e) / float64(n-1)
	}

	return out
}
