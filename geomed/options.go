// SPDX-License-Identifier: MIT

// Package geomed: solver configuration. This file defines:
//   - documented defaults (constants, single source of truth),
//   - Options, a plain struct usable directly or through DefaultOptions,
//   - Option / WithX constructors resolved by NewOptions; WithX panics only on
//     nonsensical programmer-supplied values,
//   - validateOptions, the runtime check every entry point performs.
package geomed

import (
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

// ---------- Defaults ----------

const (
	// DefaultTolerance is the convergence threshold ε.
	DefaultTolerance = 1e-7

	// DefaultMaxIterations caps every iterative scheme.
	DefaultMaxIterations = 10_000

	// DefaultAlgorithm is the scheme used by GeometricMedian.
	DefaultAlgorithm = Weiszfeld

	// DefaultFallback lets TwoPoint hand over to Weiszfeld when its search
	// lines become parallel.
	DefaultFallback = true

	// DefaultWorkers for BatchMedians; 0 ⇒ runtime.GOMAXPROCS(0).
	DefaultWorkers = 0
)

// Options configures the median solvers and the functions built on them.
type Options struct {
	// Tolerance ε > 0. Weiszfeld stops when a step is shorter than ε,
	// TwoPoint when its two estimates are closer than ε, Secant when the
	// eccentricity magnitude drops below ε.
	Tolerance float64

	// MaxIterations ≥ 1 bounds the number of rounds; exceeding it yields
	// ErrNonConvergent.
	MaxIterations int

	// Algorithm selects the scheme used by GeometricMedian and everything
	// that needs a median (Trend, SortedEccs, Comediance, BatchMedians).
	Algorithm Algorithm

	// Fallback: when true, a degenerate TwoPoint round continues with
	// Weiszfeld instead of failing with ErrNonConvergent.
	Fallback bool

	// Workers bounds the goroutines of BatchMedians (0 ⇒ GOMAXPROCS).
	Workers int

	// Logger receives a Debug trace per solve. nil ⇒ discard.
	Logger logrus.FieldLogger
}

// Option mutates Options; see NewOptions.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Algorithm:     DefaultAlgorithm,
		Fallback:      DefaultFallback,
		Workers:       DefaultWorkers,
	}
}

// NewOptions applies opts on top of DefaultOptions, left to right.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithTolerance sets ε. Panics if eps is not a positive finite number.
func WithTolerance(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic("geomed: WithTolerance requires a positive finite value")
	}

	return func(o *Options) { o.Tolerance = eps }
}

// WithMaxIterations sets the iteration cap. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("geomed: WithMaxIterations requires n >= 1")
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithAlgorithm selects the median scheme. Panics on an unknown value.
func WithAlgorithm(a Algorithm) Option {
	if !a.valid() {
		panic("geomed: WithAlgorithm: unknown algorithm")
	}

	return func(o *Options) { o.Algorithm = a }
}

// WithFallback toggles the TwoPoint → Weiszfeld fallback.
func WithFallback(on bool) Option {
	return func(o *Options) { o.Fallback = on }
}

// WithWorkers bounds BatchMedians concurrency. Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("geomed: WithWorkers requires n >= 0")
	}

	return func(o *Options) { o.Workers = n }
}

// WithLogger attaches a structured logger for the solver trace.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = l }
}

func (a Algorithm) valid() bool {
	switch a {
	case Weiszfeld, TwoPoint, Secant:
		return true
	default:
		return false
	}
}

// validateOptions checks Options assembled by hand (struct literals bypass
// the WithX guards).
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if !(opts.Tolerance > 0) || math.IsInf(opts.Tolerance, 0) {
		return ErrBadTolerance
	}
	if opts.MaxIterations < 1 {
		return ErrBadIterations
	}
	if !opts.Algorithm.valid() {
		return ErrUnsupportedAlgorithm
	}
	if opts.Workers < 0 {
		return ErrBadWorkers
	}

	return nil
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)

	return l
}()

// logger returns the configured logger or a silent one.
func (o Options) logger() logrus.FieldLogger {
	if o.Logger == nil {
		return discard
	}

	return o.Logger
}
