// SPDX-License-Identifier: MIT

package geomed

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Covariance returns the d×d population covariance of s about its
// arithmetic centroid: (1/n) Σᵢ (pᵢ−c)(pᵢ−c)ᵀ.
//
// Complexity: O(n·d²).
func Covariance(s *PointSet) (*mat.SymDense, error) {
	if err := checkSet(s); err != nil {
		return nil, errors.Wrap(err, "covariance")
	}

	return scatterAbout(s, acentroid(s)), nil
}

// Comediance is Covariance taken about the geometric median instead of the
// centroid, which keeps a few far points from dominating the spread.
//
// Complexity: O(n·d²) plus one median solve.
func Comediance(s *PointSet, opts Options) (*mat.SymDense, error) {
	g, err := GeometricMedian(s, opts)
	if err != nil {
		return nil, errors.Wrap(err, "comediance")
	}

	return scatterAbout(s, g), nil
}

// scatterAbout accumulates (1/n) Σᵢ (pᵢ−m)(pᵢ−m)ᵀ by rank-one updates.
func scatterAbout(s *PointSet, m Point) *mat.SymDense {
	var (
		out   = mat.NewSymDense(s.d, nil)
		diff  = mat.NewVecDense(s.d, nil)
		alpha = 1 / float64(len(s.rows))
	)
	for _, row := range s.rows {
		for k := range row {
			diff.SetVec(k, row[k]-m[k])
		}
		out.SymRankOne(out, alpha, diff)
	}

	return out
}
