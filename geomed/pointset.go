// SPDX-License-Identifier: MIT

package geomed

import (
	"math"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// PointSet is an ordered, read-only collection of n ≥ 1 points sharing the
// dimension d ≥ 1. It owns a private copy of its data; nothing in this
// package mutates it after construction.
type PointSet struct {
	rows [][]float64
	d    int
}

// Number is the set of coordinate encodings accepted by FromValues.
type Number interface {
	constraints.Integer | constraints.Float
}

// NewPointSet validates rows and returns a PointSet holding a deep copy.
//
// Contract:
//   - len(rows) ≥ 1 and len(rows[0]) ≥ 1, else ErrEmptyInput;
//   - every row has len(rows[0]) coordinates, else ErrDimensionMismatch;
//   - every coordinate is finite, else ErrNonFinite.
//
// All offending rows are reported together as a *multierror.Error; errors.Is
// matches each contained sentinel.
//
// Complexity: O(n·d).
func NewPointSet(rows [][]float64) (*PointSet, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrEmptyInput, "new point set")
	}
	d := len(rows[0])
	if d == 0 {
		return nil, errors.Wrap(ErrEmptyInput, "new point set: point 0 has no coordinates")
	}

	var merr *multierror.Error
	for i, row := range rows {
		if len(row) != d {
			merr = multierror.Append(merr,
				errors.Wrapf(ErrDimensionMismatch, "point %d has %d coordinates, want %d", i, len(row), d))
			continue
		}
		for j, x := range row {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				merr = multierror.Append(merr,
					errors.Wrapf(ErrNonFinite, "point %d coordinate %d is %v", i, j, x))
				break
			}
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	data := make([]float64, len(rows)*d)
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = data[i*d : (i+1)*d : (i+1)*d]
		copy(out[i], row)
	}

	return &PointSet{rows: out, d: d}, nil
}

// FromValues converts integer, byte or float32 encoded rows to float64 and
// builds a PointSet from them. This is the only place narrower numeric
// encodings enter the package; every algorithm works on float64.
func FromValues[T Number](rows [][]T) (*PointSet, error) {
	conv := make([][]float64, len(rows))
	for i, row := range rows {
		conv[i] = make([]float64, len(row))
		for j, x := range row {
			conv[i][j] = float64(x)
		}
	}

	return NewPointSet(conv)
}

// Len returns the number of points n.
func (s *PointSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.rows)
}

// Dim returns the common dimension d.
func (s *PointSet) Dim() int {
	if s == nil {
		return 0
	}

	return s.d
}

// Point returns a copy of the i-th point.
func (s *PointSet) Point(i int) (Point, error) {
	if err := checkSet(s); err != nil {
		return nil, err
	}
	if i < 0 || i >= len(s.rows) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "point %d of %d", i, len(s.rows))
	}

	return Point(s.rows[i]).Clone(), nil
}

// Points returns a deep copy of all points.
func (s *PointSet) Points() [][]float64 {
	if s == nil {
		return nil
	}
	out := make([][]float64, len(s.rows))
	for i, row := range s.rows {
		out[i] = append([]float64(nil), row...)
	}

	return out
}

// Translate returns a new PointSet with m subtracted from every point.
// With m set to the geometric median this is the zero-median form.
func (s *PointSet) Translate(m []float64) (*PointSet, error) {
	if err := checkQuery(s, m); err != nil {
		return nil, errors.Wrap(err, "translate")
	}

	data := make([]float64, len(s.rows)*s.d)
	out := make([][]float64, len(s.rows))
	for i, row := range s.rows {
		out[i] = data[i*s.d : (i+1)*s.d : (i+1)*s.d]
		for k := range row {
			out[i][k] = row[k] - m[k]
		}
	}

	return &PointSet{rows: out, d: s.d}, nil
}

// checkSet rejects a nil PointSet; constructed sets are never empty.
func checkSet(s *PointSet) error {
	if s == nil || len(s.rows) == 0 {
		return ErrEmptyInput
	}

	return nil
}

// checkQuery validates an external point against s.
func checkQuery(s *PointSet, q []float64) error {
	if err := checkSet(s); err != nil {
		return err
	}
	if len(q) != s.d {
		return errors.Wrapf(ErrDimensionMismatch, "query has %d coordinates, want %d", len(q), s.d)
	}
	for j, x := range q {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return errors.Wrapf(ErrNonFinite, "query coordinate %d is %v", j, x)
		}
	}

	return nil
}

// checkIndex validates a member index.
func checkIndex(s *PointSet, i int) error {
	if err := checkSet(s); err != nil {
		return err
	}
	if i < 0 || i >= len(s.rows) {
		return errors.Wrapf(ErrIndexOutOfRange, "point %d of %d", i, len(s.rows))
	}

	return nil
}
