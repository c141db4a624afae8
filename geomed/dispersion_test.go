// SPDX-License-Identifier: MIT

package geomed_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstat/geomed"
	"github.com/katalvlaran/lvstat/summary"
)

// inSetEccs collects EccentricityInSet for every member.
func inSetEccs(t *testing.T, s *geomed.PointSet) []float64 {
	t.Helper()
	out := make([]float64, s.Len())
	for i := range out {
		e, err := geomed.EccentricityInSet(s, i)
		require.NoError(t, err)
		out[i] = e
	}

	return out
}

func TestMOE(t *testing.T) {
	s := randomSet(t, 6, 24, 7)
	eccs := inSetEccs(t, s)

	ms, med, err := geomed.MOE(s, geomed.DefaultOptions())
	require.NoError(t, err)

	wantMS, err := summary.MeanStd(eccs)
	require.NoError(t, err)
	wantMed, err := summary.Median(eccs)
	require.NoError(t, err)

	assert.InDelta(t, wantMS.Mean, ms.Mean, 1e-12)
	assert.InDelta(t, wantMS.Std, ms.Std, 1e-12)
	assert.InDelta(t, wantMed.Median, med.Median, 1e-12)
	assert.InDelta(t, wantMed.LowerQuartile, med.LowerQuartile, 1e-12)
	assert.InDelta(t, wantMed.UpperQuartile, med.UpperQuartile, 1e-12)
	assert.LessOrEqual(t, med.LowerQuartile, med.Median)
	assert.LessOrEqual(t, med.Median, med.UpperQuartile)

	_, _, err = geomed.MOE(s, geomed.Options{})
	assert.ErrorIs(t, err, geomed.ErrBadTolerance)
}

func TestSortedEccs(t *testing.T) {
	s := mustSet(t, fivePoints)
	eccs := inSetEccs(t, s)

	asc, err := geomed.SortedEccs(s, true, geomed.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 2, 0, 1}, asc.Index)
	assert.True(t, sort.Float64sAreSorted(asc.Eccs))
	for k, i := range asc.Index {
		assert.InDelta(t, eccs[i], asc.Eccs[k], 1e-12)
	}

	g, err := geomed.GeometricMedian(s, geomed.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, g, asc.Median)

	desc, err := geomed.SortedEccs(s, false, geomed.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2, 4, 3}, desc.Index)
	for k := range desc.Eccs {
		assert.Equal(t, asc.Eccs[len(asc.Eccs)-1-k], desc.Eccs[k])
	}
}

func TestSortedEccs_TiesKeepInputOrder(t *testing.T) {
	s := mustSet(t, [][]float64{{1, 1}, {1, 1}, {1, 1}})
	for _, ascending := range []bool{true, false} {
		r, err := geomed.SortedEccs(s, ascending, geomed.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2}, r.Index)
		assert.Equal(t, []float64{0, 0, 0}, r.Eccs)
	}
}

func TestTrend(t *testing.T) {
	s := randomSet(t, 3, 50, 7)
	opts := geomed.NewOptions(geomed.WithTolerance(1e-10))

	zero, err := geomed.Trend(s, s, opts)
	require.NoError(t, err)
	assert.Equal(t, geomed.Point{0, 0, 0}, zero)

	// a shifted copy of a different size moves the median by the shift
	rows := s.Points()[:30]
	shifted := mustSet(t, rows)
	shifted, err = shifted.Translate([]float64{-1, 2, -3})
	require.NoError(t, err)
	base := mustSet(t, rows)

	tr, err := geomed.Trend(base, shifted, opts)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, -2, 3}, tr, 1e-8)

	_, err = geomed.Trend(s, mustSet(t, [][]float64{{1, 2}}), opts)
	assert.ErrorIs(t, err, geomed.ErrDimensionMismatch)
	_, err = geomed.Trend(nil, s, opts)
	assert.ErrorIs(t, err, geomed.ErrEmptyInput)
}

func TestCovariance_Square(t *testing.T) {
	s := mustSet(t, [][]float64{{0, 0}, {2, 0}, {0, 2}, {2, 2}})

	cov, err := geomed.Covariance(s)
	require.NoError(t, err)
	require.Equal(t, 2, cov.SymmetricDim())
	assert.InDelta(t, 1, cov.At(0, 0), 1e-12)
	assert.InDelta(t, 1, cov.At(1, 1), 1e-12)
	assert.InDelta(t, 0, cov.At(0, 1), 1e-12)

	// the median of a symmetric set is its centre, so both agree
	com, err := geomed.Comediance(s, geomed.DefaultOptions())
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, cov.At(i, j), com.At(i, j), 1e-9)
		}
	}
}

func TestComediance_RobustToOutlier(t *testing.T) {
	s := randomSet(t, 4, 80, 13)
	cov, err := geomed.Covariance(s)
	require.NoError(t, err)
	com, err := geomed.Comediance(s, geomed.DefaultOptions())
	require.NoError(t, err)

	d := s.Dim()
	for i := 0; i < d; i++ {
		assert.GreaterOrEqual(t, cov.At(i, i), 0.0)
		assert.GreaterOrEqual(t, com.At(i, i), 0.0)
		// scatter about any point other than the centroid is larger
		assert.GreaterOrEqual(t, com.At(i, i), cov.At(i, i)-1e-12)
		for j := 0; j < d; j++ {
			assert.Equal(t, cov.At(i, j), cov.At(j, i))
			assert.Equal(t, com.At(i, j), com.At(j, i))
		}
	}

	_, err = geomed.Covariance(nil)
	assert.ErrorIs(t, err, geomed.ErrEmptyInput)
}
