// SPDX-License-Identifier: MIT

package geomed

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvstat/vector"
)

// parallelTol is the smallest accepted 1−(u·v)² before the two search lines
// are considered parallel.
const parallelTol = 1e-12

// twoPoint keeps estimates op1 (FirstPoint) and op2 (centroid). Each round
// takes the unit eccentricity directions u at op1 and v at op2 and moves both
// estimates to the mutually closest points of the lines op1+a·u and op2+b·v:
//
//	pd = op2 − op1, uv = u·v
//	b  = (uv·(u·pd) − v·pd) / (1 − uv²)
//	a  = u·pd + b·uv
//
// When |f1 − f2| < ε the midpoint is accepted if its mean unit residual
// |eccentricity vector| / n is below ε as well. Otherwise the lines met away
// from the median, which is what always happens in the plane, and the pair
// restarts at the midpoint and one Weiszfeld step from it. An estimate with
// a vanishing eccentricity is the median and is returned as is.
//
// Parallel lines (1 − uv² ≤ parallelTol) hand over to weiszfeld when
// opts.Fallback is set; otherwise ErrNonConvergent.
//
// Complexity: O(iterations·n·d).
func twoPoint(s *PointSet, opts Options) (Point, error) {
	var (
		n   = float64(len(s.rows))
		op1 = seed(s)
		op2 = acentroid(s)
		pd  = make([]float64, s.d)
	)

	for it := 1; it <= opts.MaxIterations; it++ {
		// Stage 1: eccentricity directions at both estimates.
		e1 := eccVector(s, op1)
		u, err := vector.Unit(e1)
		if err != nil {
			converged(opts, TwoPoint, it, vector.Magnitude(e1)/n)
			return op1, nil
		}
		e2 := eccVector(s, op2)
		v, err := vector.Unit(e2)
		if err != nil {
			converged(opts, TwoPoint, it, vector.Magnitude(e2)/n)
			return op2, nil
		}

		// Stage 2: closest points of the two lines.
		uv := floats.Dot(u, v)
		den := 1 - uv*uv
		if !(den > parallelTol) {
			return fallback(s, opts, TwoPoint, it, "parallel search lines")
		}
		floats.SubTo(pd, op2, op1)
		udotpd := floats.Dot(u, pd)
		b := (uv*udotpd - floats.Dot(v, pd)) / den
		a := udotpd + b*uv

		f1 := op1.Clone()
		floats.AddScaled(f1, a, u)
		f2 := op2.Clone()
		floats.AddScaled(f2, b, v)

		// Stage 3: the lines met; accept the crossing only at the median.
		if floats.Distance(f1, f2, 2) < opts.Tolerance {
			mid := make(Point, s.d)
			floats.AddTo(mid, f1, f2)
			floats.Scale(0.5, mid)

			residual := floats.Norm(eccVector(s, mid), 2) / n
			if residual < opts.Tolerance {
				converged(opts, TwoPoint, it, residual)
				return mid, nil
			}
			op1, op2 = mid, make(Point, s.d)
			weiszfeldStep(s, op1, op2)

			continue
		}
		op1, op2 = f1, f2
	}

	return nil, nonConvergent(TwoPoint, opts)
}
