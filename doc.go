// SPDX-License-Identifier: MIT

// Package lvstat is a toolbox of robust statistics for multidimensional
// point sets: where the mean/variance pair breaks down under outliers or
// non-Euclidean spread, it offers the geometric median and the eccentricity
// measures built around it.
//
// 🚀 What is inside?
//
//	• vector  — value-returning vector algebra over []float64
//	• summary — 1-D mean/std, median/quartiles, min/max of a sample
//	• geomed  — PointSet, centroids, geometric median (three schemes),
//	            eccentricity field, medoids, MOE, trend, comediance
//	• gen     — deterministic synthetic point sets for tests and demos
//
// ✨ Why the geometric median?
//
//   - Robust: a minority of far-away points cannot drag it arbitrarily
//   - Rotation-equivariant: independent of the choice of axes
//   - Self-checking: its eccentricity vector is zero exactly at the median,
//     so every estimate comes with a residual
//
// Quick example:
//
//	set, _ := geomed.NewPointSet([][]float64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}, {9, 9}})
//	g, _ := geomed.GeometricMedian(set, geomed.DefaultOptions())
//	r, _ := geomed.Eccentricity(set, g)
//
// Runnable scenarios live under examples/; see each package's
// example_test.go for stable, documented output.
//
//	go get github.com/katalvlaran/lvstat
package lvstat
