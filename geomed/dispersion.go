// SPDX-License-Identifier: MIT

package geomed

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvstat/summary"
)

// Ranked is the result of SortedEccs.
type Ranked struct {
	// Median is the geometric median of the set.
	Median Point

	// Eccs holds the in-set scalar eccentricities in the requested order.
	Eccs []float64

	// Index[k] is the member whose eccentricity is Eccs[k]. Equal values keep
	// their input order in both directions.
	Index []int
}

// MOE ("median of eccentricities") summarises the in-set scalar
// eccentricity field of s by its mean and population standard deviation and
// by its quartiles. It is a robust one-dimensional measure of multivariate
// spread.
//
// The field is computed pairwise and does not iterate; opts is validated so
// MOE accepts the same configuration as the median based functions.
//
// Complexity: O(n²·d).
func MOE(s *PointSet, opts Options) (summary.MStats, summary.Med, error) {
	if err := prepare(s, opts); err != nil {
		return summary.MStats{}, summary.Med{}, errors.Wrap(err, "moe")
	}

	eccs := scalarEccs(s)
	ms, err := summary.MeanStd(eccs)
	if err != nil {
		return summary.MStats{}, summary.Med{}, errors.Wrap(err, "moe")
	}
	med, err := summary.Median(eccs)
	if err != nil {
		return summary.MStats{}, summary.Med{}, errors.Wrap(err, "moe")
	}

	return ms, med, nil
}

// SortedEccs returns the geometric median of s together with the in-set
// scalar eccentricities sorted ascending (or descending) and the member
// index of each.
//
// Complexity: O(n²·d + n log n) plus one median solve.
func SortedEccs(s *PointSet, ascending bool, opts Options) (Ranked, error) {
	g, err := GeometricMedian(s, opts)
	if err != nil {
		return Ranked{}, errors.Wrap(err, "sorted eccentricities")
	}

	eccs := scalarEccs(s)
	idx := make([]int, len(eccs))
	if !ascending {
		floats.Scale(-1, eccs)
	}
	floats.ArgsortStable(eccs, idx)
	if !ascending {
		floats.Scale(-1, eccs)
	}

	return Ranked{Median: g, Eccs: eccs, Index: idx}, nil
}
