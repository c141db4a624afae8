// SPDX-License-Identifier: MIT

package geomed

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvstat/summary"
	"github.com/katalvlaran/lvstat/vector"
)

// DistanceSums returns, for every member, the sum of its distances to all
// other members. Each pair distance is computed once and credited to both
// ends, so Σ DistanceSums = 2·Σ_{i<j} |pᵢ − pⱼ|.
//
// Complexity: O(n²·d).
func DistanceSums(s *PointSet) ([]float64, error) {
	if err := checkSet(s); err != nil {
		return nil, errors.Wrap(err, "distance sums")
	}

	return distSums(s), nil
}

// DistanceSumInSet returns the sum of distances from member i to the others.
//
// Complexity: O(n·d).
func DistanceSumInSet(s *PointSet, i int) (float64, error) {
	if err := checkIndex(s, i); err != nil {
		return 0, errors.Wrap(err, "distance sum in set")
	}

	return distSum(s, s.rows[i]), nil
}

// Distances returns |pᵢ − q| for every member.
func Distances(s *PointSet, q []float64) ([]float64, error) {
	if err := checkQuery(s, q); err != nil {
		return nil, errors.Wrap(err, "distances")
	}

	out := make([]float64, len(s.rows))
	for i, row := range s.rows {
		d, err := vector.Distance(row, q)
		if err != nil {
			return nil, errors.Wrapf(err, "distances: point %d", i)
		}
		out[i] = d
	}

	return out, nil
}

// DistanceSum returns Σᵢ |pᵢ − q|, the objective the geometric median
// minimises.
func DistanceSum(s *PointSet, q []float64) (float64, error) {
	if err := checkQuery(s, q); err != nil {
		return 0, errors.Wrap(err, "distance sum")
	}

	return distSum(s, q), nil
}

// Medoid returns the member with the smallest distance sum (the medoid) and
// the one with the largest (the outlier). Ties go to the lower index.
//
// Complexity: O(n²·d).
func Medoid(s *PointSet) (Extremes, error) {
	if err := checkSet(s); err != nil {
		return Extremes{}, errors.Wrap(err, "medoid")
	}

	return extremes(distSums(s))
}

// EMedoid is Medoid over the in-set scalar eccentricities instead of the
// distance sums: the e-medoid and e-outlier. It can disagree with Medoid,
// since eccentricity measures directional imbalance rather than spread.
//
// Complexity: O(n²·d).
func EMedoid(s *PointSet) (Extremes, error) {
	if err := checkSet(s); err != nil {
		return Extremes{}, errors.Wrap(err, "e-medoid")
	}

	return extremes(scalarEccs(s))
}

func extremes(xs []float64) (Extremes, error) {
	minV, minI, maxV, maxI, err := summary.MinMax(xs)
	if err != nil {
		return Extremes{}, err
	}

	return Extremes{MinValue: minV, MinIndex: minI, MaxValue: maxV, MaxIndex: maxI}, nil
}

func distSum(s *PointSet, q []float64) float64 {
	var sum float64
	for _, row := range s.rows {
		sum += floats.Distance(row, q, 2)
	}

	return sum
}

func distSums(s *PointSet) []float64 {
	n := len(s.rows)
	out := make([]float64, n)

	var i, j int
	for i = 1; i < n; i++ {
		for j = 0; j < i; j++ {
			d := floats.Distance(s.rows[i], s.rows[j], 2)
			out[i] += d
			out[j] += d
		}
	}

	return out
}
