// SPDX-License-Identifier: MIT

package geomed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstat/geomed"
)

func TestArithmeticCentroid_PerCoordinateMean(t *testing.T) {
	rows := [][]float64{{1, 10, -3}, {2, 20, 0}, {6, 30, 3}}
	c, err := geomed.ArithmeticCentroid(mustSet(t, rows))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3, 20, 0}, c, 1e-12)

	s := randomSet(t, 7, 50, 11)
	c, err = geomed.ArithmeticCentroid(s)
	require.NoError(t, err)
	pts := s.Points()
	for k := 0; k < s.Dim(); k++ {
		var sum float64
		for _, p := range pts {
			sum += p[k]
		}
		assert.InDelta(t, sum/float64(len(pts)), c[k], 1e-12)
	}
}

func TestHarmonicCentroid(t *testing.T) {
	c, err := geomed.HarmonicCentroid(mustSet(t, [][]float64{{1, 2}, {2, 4}}))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2.0 / 3, 4.0 / 3}, c, 1e-12)

	// n identical points give the point scaled by 1/n
	c, err = geomed.HarmonicCentroid(mustSet(t, [][]float64{{5, -2}, {5, -2}, {5, -2}}))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5.0 / 3, -2.0 / 3}, c, 1e-12)
}

func TestHarmonicCentroid_Degenerate(t *testing.T) {
	_, err := geomed.HarmonicCentroid(mustSet(t, [][]float64{{1, 2}, {0, 4}}))
	assert.ErrorIs(t, err, geomed.ErrDegenerateVector)
	assert.Contains(t, err.Error(), "point 1")

	// reciprocals cancel in the first coordinate
	_, err = geomed.HarmonicCentroid(mustSet(t, [][]float64{{1, 2}, {-1, 4}}))
	assert.ErrorIs(t, err, geomed.ErrDegenerateVector)
}

func TestFirstPoint(t *testing.T) {
	fp, err := geomed.FirstPoint(mustSet(t, [][]float64{{1, 0}, {0, 2}}))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2.0 / 3, 2.0 / 3}, fp, 1e-12)

	// points at the origin are skipped
	fp, err = geomed.FirstPoint(mustSet(t, [][]float64{{3, 4}, {0, 0}}))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3, 4}, fp, 1e-12)

	_, err = geomed.FirstPoint(mustSet(t, [][]float64{{0, 0}, {0, 0}}))
	assert.ErrorIs(t, err, geomed.ErrDegenerateVector)
}

func TestCentroids_NilSet(t *testing.T) {
	_, err := geomed.ArithmeticCentroid(nil)
	assert.ErrorIs(t, err, geomed.ErrEmptyInput)
	_, err = geomed.HarmonicCentroid(nil)
	assert.ErrorIs(t, err, geomed.ErrEmptyInput)
	_, err = geomed.FirstPoint(nil)
	assert.ErrorIs(t, err, geomed.ErrEmptyInput)
}
