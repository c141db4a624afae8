// SPDX-License-Identifier: MIT

package geomed

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvstat/vector"
)

// weiszfeld iterates v ← Σ(pᵢ/dᵢ) / Σ(1/dᵢ), dᵢ = |pᵢ − v|, from the
// arithmetic centroid. Terms with a non-normal dᵢ (v sitting on a member) are
// dropped from the round rather than aborting it. The round whose step is
// shorter than ε is kept: the new estimate is returned.
//
// Complexity: O(iterations·n·d).
func weiszfeld(s *PointSet, opts Options) (Point, error) {
	var (
		v    = acentroid(s)
		next = make(Point, s.d)
	)

	for it := 1; it <= opts.MaxIterations; it++ {
		if !weiszfeldStep(s, v, next) {
			// Every member coincides with v.
			converged(opts, Weiszfeld, it, 0)
			return v, nil
		}
		step := floats.Distance(next, v, 2)
		if step < opts.Tolerance {
			converged(opts, Weiszfeld, it, step)
			return next, nil
		}
		v, next = next, v
	}

	return nil, nonConvergent(Weiszfeld, opts)
}

// weiszfeldStep writes the next estimate into dst and reports whether any
// member contributed.
func weiszfeldStep(s *PointSet, v, dst Point) bool {
	var rsum float64
	for k := range dst {
		dst[k] = 0
	}
	for _, row := range s.rows {
		d := floats.Distance(row, v, 2)
		if !vector.IsNormal(d) {
			continue
		}
		rec := 1 / d
		rsum += rec
		floats.AddScaled(dst, rec, row)
	}
	if rsum == 0 {
		return false
	}
	floats.Scale(1/rsum, dst)

	return true
}
