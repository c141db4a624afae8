// SPDX-License-Identifier: MIT

package geomed

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvstat/vector"
)

// Trend returns median(s2) − median(s1), the displacement between the
// geometric medians of two sets. The sets may differ in size but must share
// their dimension.
func Trend(s1, s2 *PointSet, opts Options) (Point, error) {
	if err := checkSet(s1); err != nil {
		return nil, errors.Wrap(err, "trend: first set")
	}
	if err := checkSet(s2); err != nil {
		return nil, errors.Wrap(err, "trend: second set")
	}
	if s1.d != s2.d {
		return nil, errors.Wrapf(ErrDimensionMismatch, "trend: dimensions %d and %d", s1.d, s2.d)
	}

	m1, err := GeometricMedian(s1, opts)
	if err != nil {
		return nil, errors.Wrap(err, "trend: first set")
	}
	m2, err := GeometricMedian(s2, opts)
	if err != nil {
		return nil, errors.Wrap(err, "trend: second set")
	}

	tr, err := vector.Sub(m2, m1)
	if err != nil {
		return nil, errors.Wrap(err, "trend")
	}

	return tr, nil
}
