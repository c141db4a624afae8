// SPDX-License-Identifier: MIT

package geomed

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvstat/summary"
	"github.com/katalvlaran/lvstat/vector"
)

// Sentinels shared with the leaf packages, so that a single errors.Is check
// works whichever layer produced the failure.
var (
	// ErrEmptyInput is returned for a nil or empty PointSet or sample.
	ErrEmptyInput = summary.ErrEmptyInput

	// ErrDimensionMismatch is returned when points, query vectors or sets
	// disagree on dimension.
	ErrDimensionMismatch = vector.ErrDimensionMismatch

	// ErrDegenerateVector is returned when a zero or non-finite vector has to
	// be normalised or inverted and no skip rule applies.
	ErrDegenerateVector = vector.ErrDegenerateVector
)

var (
	// ErrNonConvergent indicates that a solver exhausted Options.MaxIterations
	// (or stalled) before meeting the tolerance.
	ErrNonConvergent = errors.New("geomed: solver did not converge")

	// ErrNonFinite is returned for NaN or ±Inf coordinates.
	ErrNonFinite = errors.New("geomed: non-finite coordinate")

	// ErrIndexOutOfRange is returned for a member index outside [0, n).
	ErrIndexOutOfRange = errors.New("geomed: index out of range")

	// ErrBadTolerance is returned when Options.Tolerance is not a positive
	// finite number.
	ErrBadTolerance = errors.New("geomed: tolerance must be positive and finite")

	// ErrBadIterations is returned when Options.MaxIterations < 1.
	ErrBadIterations = errors.New("geomed: max iterations must be positive")

	// ErrBadWorkers is returned when Options.Workers < 0.
	ErrBadWorkers = errors.New("geomed: workers must be non-negative")

	// ErrUnsupportedAlgorithm is returned for an unknown Algorithm value.
	ErrUnsupportedAlgorithm = errors.New("geomed: unsupported algorithm")
)
