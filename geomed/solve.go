// SPDX-License-Identifier: MIT

// Package geomed - unified dispatcher for the geometric median schemes.
//
// GeometricMedian validates Options and the PointSet once, then routes to the
// scheme named by Options.Algorithm. SolveWeiszfeld, SolveTwoPoint and
// SolveSecant pin one scheme for callers that depend on a particular
// convergence profile.
//
// Design principles:
//   - Deterministic: no randomness, no goroutines; same input ⇒ same output.
//   - Bounded: every scheme stops after Options.MaxIterations rounds.
//   - Errors are returned wrapped around package sentinels, never logged.
//   - The input PointSet is never written to; every estimate is a fresh Point.
package geomed

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// GeometricMedian returns an estimate g of argmin Σᵢ |pᵢ − g| using
// opts.Algorithm.
//
// Contracts:
//   - s must be non-nil (constructed sets are never empty);
//   - opts must pass validation (ErrBadTolerance, ErrBadIterations,
//     ErrBadWorkers, ErrUnsupportedAlgorithm);
//   - a single-point set returns a copy of that point.
//
// Errors: ErrNonConvergent when the scheme exhausts MaxIterations or cannot
// proceed; see each scheme for its own stopping rule.
//
// Complexity: O(iterations·n·d).
func GeometricMedian(s *PointSet, opts Options) (Point, error) {
	if err := prepare(s, opts); err != nil {
		return nil, errors.Wrap(err, "geometric median")
	}
	if len(s.rows) == 1 {
		return Point(s.rows[0]).Clone(), nil
	}

	switch opts.Algorithm {
	case Weiszfeld:
		return weiszfeld(s, opts)
	case TwoPoint:
		return twoPoint(s, opts)
	case Secant:
		return secant(s, opts)
	default:
		return nil, ErrUnsupportedAlgorithm
	}
}

// SolveWeiszfeld runs the reciprocal-weighted fixed point scheme regardless
// of opts.Algorithm.
func SolveWeiszfeld(s *PointSet, opts Options) (Point, error) {
	opts.Algorithm = Weiszfeld

	return GeometricMedian(s, opts)
}

// SolveTwoPoint runs the two-line scheme regardless of opts.Algorithm.
func SolveTwoPoint(s *PointSet, opts Options) (Point, error) {
	opts.Algorithm = TwoPoint

	return GeometricMedian(s, opts)
}

// SolveSecant runs the scalar secant scheme regardless of opts.Algorithm.
func SolveSecant(s *PointSet, opts Options) (Point, error) {
	opts.Algorithm = Secant

	return GeometricMedian(s, opts)
}

// prepare performs the checks shared by every entry point that solves for a
// median.
func prepare(s *PointSet, opts Options) error {
	if err := validateOptions(opts); err != nil {
		return err
	}

	return checkSet(s)
}

// converged emits the Debug trace of a successful solve.
func converged(opts Options, algo Algorithm, iterations int, residual float64) {
	opts.logger().WithFields(logrus.Fields{
		"action":     "geometric_median",
		"algorithm":  algo.String(),
		"iterations": iterations,
		"residual":   residual,
	}).Debug("geometric median converged")
}

func nonConvergent(algo Algorithm, opts Options) error {
	return errors.Wrapf(ErrNonConvergent, "%s: no convergence within %d iterations (tolerance %g)",
		algo, opts.MaxIterations, opts.Tolerance)
}

// fallback continues with weiszfeld after algo could not proceed at round it,
// or reports ErrNonConvergent with reason when opts.Fallback is off.
func fallback(s *PointSet, opts Options, algo Algorithm, it int, reason string) (Point, error) {
	if !opts.Fallback {
		return nil, errors.Wrapf(ErrNonConvergent, "%s: %s at iteration %d", algo, reason, it)
	}
	opts.logger().WithFields(logrus.Fields{
		"action":     "geometric_median",
		"algorithm":  algo.String(),
		"iterations": it,
		"fallback":   true,
	}).Debugf("%s, continuing with weiszfeld", reason)

	return weiszfeld(s, opts)
}
