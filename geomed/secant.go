// SPDX-License-Identifier: MIT

package geomed

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvstat/vector"
)

// secant treats |eccentricity| as a scalar function along the eccentricity
// direction and applies secant steps to it:
//
//	p2   = p1 + e1·(|p1| / |e1| / n)
//	ed   = |e1| − |e2|  if |e1| > |e2|,  else |e1| + |e2|
//	newp = p2 + e2·(|p1 − p2| / ed)
//
// It stops when |e2| < ε. The choice of ed is empirical: the difference for a
// monotone approach, the sum when the magnitude grows (overshoot).
//
// The seed is FirstPoint. When the seed lies at the origin the first step is
// scaled by the mean distance to the members instead of |p1|.
//
// A vanishing denominator or a step scale that is not normal is a stall, as
// on odd collinear sets where the iterates oscillate around the middle
// point. A stall hands over to weiszfeld when opts.Fallback is set;
// otherwise ErrNonConvergent.
//
// Complexity: O(iterations·n·d).
func secant(s *PointSet, opts Options) (Point, error) {
	var (
		n     = float64(len(s.rows))
		p1    = seed(s)
		e1    = eccVector(s, p1)
		e1mag = floats.Norm(e1, 2)
	)
	if e1mag < opts.Tolerance {
		converged(opts, Secant, 0, e1mag)
		return p1, nil
	}

	step := floats.Norm(p1, 2)
	if !vector.IsNormal(step) {
		step = distSum(s, p1) / n
	}
	p2 := p1.Clone()
	floats.AddScaled(p2, step/e1mag/n, e1)

	for it := 1; it <= opts.MaxIterations; it++ {
		e2 := eccVector(s, p2)
		e2mag := floats.Norm(e2, 2)
		if e2mag < opts.Tolerance {
			converged(opts, Secant, it, e2mag)
			return p2, nil
		}

		var ed float64
		if e1mag > e2mag {
			ed = e1mag - e2mag
		} else {
			ed = e1mag + e2mag
		}
		if ed == 0 {
			return fallback(s, opts, Secant, it, "zero secant denominator")
		}
		scale := floats.Distance(p1, p2, 2) / ed
		if !vector.IsNormal(scale) {
			return fallback(s, opts, Secant, it, "stalled")
		}

		next := p2.Clone()
		floats.AddScaled(next, scale, e2)
		p1, p2, e1mag = p2, next, e2mag
	}

	return nil, nonConvergent(Secant, opts)
}
