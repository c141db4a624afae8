// SPDX-License-Identifier: MIT

package geomed

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// BatchMedians computes GeometricMedian for every set concurrently, at most
// opts.Workers at a time (0 ⇒ GOMAXPROCS). The result is index-aligned with
// sets.
//
// The first failure cancels the sets not yet started and is returned wrapped
// with its index; no partial result is returned. A cancelled ctx is reported
// as ctx.Err().
func BatchMedians(ctx context.Context, sets []*PointSet, opts Options) ([]Point, error) {
	if err := validateOptions(opts); err != nil {
		return nil, errors.Wrap(err, "batch medians")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var (
		out      = make([]Point, len(sets))
		eg, gctx = errgroup.WithContext(ctx)
	)
	eg.SetLimit(workers)

	for i := range sets {
		i := i // per-iteration copy; go.mod targets go 1.21 loop semantics
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			g, err := GeometricMedian(sets[i], opts)
			if err != nil {
				return errors.Wrapf(err, "set %d", i)
			}
			out[i] = g

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
