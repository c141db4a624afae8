// SPDX-License-Identifier: MIT

package geomed_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstat/gen"
	"github.com/katalvlaran/lvstat/geomed"
)

// algorithms lists every scheme for table-driven tests.
var algorithms = []geomed.Algorithm{geomed.Weiszfeld, geomed.TwoPoint, geomed.Secant}

// mustSet builds a PointSet or fails the test.
func mustSet(t testing.TB, rows [][]float64) *geomed.PointSet {
	t.Helper()
	s, err := geomed.NewPointSet(rows)
	require.NoError(t, err)

	return s
}

// randomSet returns a seeded uniform point set in [0,1)^d.
func randomSet(t testing.TB, d, n int, seed int64) *geomed.PointSet {
	t.Helper()

	return mustSet(t, gen.Points(d, n, seed))
}

// orthoplex returns the 2d vertices ±eₖ of the d-dimensional cross polytope.
func orthoplex(d int) [][]float64 {
	rows := make([][]float64, 0, 2*d)
	for _, sign := range []float64{1, -1} {
		for k := 0; k < d; k++ {
			p := make([]float64, d)
			p[k] = sign
			rows = append(rows, p)
		}
	}

	return rows
}

// line returns the 1-D points 1..n.
func line(n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = []float64{float64(i + 1)}
	}

	return rows
}

// withAlgo returns default options using algo and tolerance eps.
func withAlgo(algo geomed.Algorithm, eps float64) geomed.Options {
	return geomed.NewOptions(geomed.WithAlgorithm(algo), geomed.WithTolerance(eps))
}
