// SPDX-License-Identifier: MIT

package summary

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MeanStd returns the arithmetic mean and the population (biased, 1/n)
// standard deviation of xs.
func MeanStd(xs []float64) (MStats, error) {
	if len(xs) == 0 {
		return MStats{}, ErrEmptyInput
	}

	mean, variance := stat.PopMeanVariance(xs, nil)
	if variance < 0 {
		// rounding on near-constant samples
		variance = 0
	}

	return MStats{Mean: mean, Std: math.Sqrt(variance)}, nil
}

// Median returns the quartiles and median of xs.
//
// Complexity: O(n log n) time, O(n) space for the sorted copy.
func Median(xs []float64) (Med, error) {
	n := len(xs)
	if n == 0 {
		return Med{}, ErrEmptyInput
	}

	s := make([]float64, n)
	copy(s, xs)
	sort.Float64s(s)

	mid := n / 2
	med := s[mid]
	if n%2 == 0 {
		med = (s[mid-1] + s[mid]) / 2
	}

	return Med{
		LowerQuartile: s[n/4],
		Median:        med,
		UpperQuartile: s[3*n/4],
	}, nil
}

// MinMax returns the minimum and maximum of xs with their indices.
// Ties resolve to the first occurrence.
func MinMax(xs []float64) (minValue float64, minIndex int, maxValue float64, maxIndex int, err error) {
	if len(xs) == 0 {
		return 0, 0, 0, 0, ErrEmptyInput
	}

	minIndex = floats.MinIdx(xs)
	maxIndex = floats.MaxIdx(xs)

	return xs[minIndex], minIndex, xs[maxIndex], maxIndex, nil
}
