// SPDX-License-Identifier: MIT

// Package geomed locates the geometric median of a multidimensional point set
// and derives the robust dispersion statistics built on it.
//
// 🚀 What is the geometric median?
//
//	The point g minimising Σᵢ |pᵢ − g| over a set of n points in d
//	dimensions. Unlike the arithmetic centroid it is rotation-equivariant and
//	insensitive to outliers, but it has no closed form beyond one dimension,
//	so it is found iteratively.
//
// ✨ Key features:
//   - PointSet: validated, read-only n×d data (ragged or non-finite rows are
//     reported all at once)
//   - centroids: arithmetic, harmonic and the inverse-magnitude "first point"
//   - three median schemes behind one Algorithm switch:
//     Weiszfeld (reciprocal-weighted fixed point), TwoPoint (two search lines
//     along eccentricity directions) and Secant (1-D secant on |eccentricity|)
//   - eccentricity: the sum of unit vectors from a point toward every other
//     point, zero exactly at the median; per-member field, external queries,
//     medoid/outlier, e-medoid/e-outlier, MOE summaries, sorted eccentricities
//   - Trend between two sets, comediance/covariance as *mat.SymDense
//   - BatchMedians for many independent sets in parallel
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvstat/geomed"
//
//	set, err := geomed.NewPointSet(rows)
//	opts := geomed.NewOptions(
//	    geomed.WithTolerance(1e-9),
//	    geomed.WithAlgorithm(geomed.Secant),
//	)
//	g, err := geomed.GeometricMedian(set, opts)
//	r, err := geomed.Eccentricity(set, g) // residual
//
// Every solver stops after Options.MaxIterations rounds with
// ErrNonConvergent. When TwoPoint's search lines turn parallel or Secant
// stalls, the solve continues with Weiszfeld unless Options.Fallback is off.
// Errors are returned, never logged; an optional
// logrus.FieldLogger in Options receives a Debug trace of each solve.
//
// Performance:
//
//   - one solver round: O(n·d)
//   - field, distance sums, medoids: O(n²·d) pairwise, each pair visited once
package geomed
