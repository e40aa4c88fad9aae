// Package ordered: functional configuration shared by both constructions
// and the batch map. Defaults are documented constants (single source of
// truth); WithX constructors panic only on nonsensical values (programmer
// error), never on data.

package ordered

import (
	"math"

	"github.com/rs/zerolog"
)

// Defaults.
const (
	// DefaultTolerance bounds |sum(p) − 1| for simplex validation.
	DefaultTolerance = 1e-6

	// DefaultWorkers = 0 lets the batch map use one worker per available CPU.
	DefaultWorkers = 0

	// SaturationThreshold is the |cutpoint − anchor| magnitude past which
	// Expit rounds to exactly 0 or 1 in float64. Crossing it is reported
	// through the diagnostics logger; returned values are never altered.
	SaturationThreshold = 36.0
)

// Internal panic messages (no magic strings).
const (
	panicToleranceInvalid = "ordered: WithTolerance: tol must be finite, non-negative"
	panicWorkersInvalid   = "ordered: WithWorkers: n must be >= 0"
	panicAnchorInvalid    = "ordered: NewSimplexAnchored: anchor must be finite"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the effective configuration after applying setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	tol     float64        // simplex sum tolerance; DefaultTolerance
	workers int            // batch map parallelism; DefaultWorkers
	log     zerolog.Logger // diagnostics sink; Nop by default
}

// WithTolerance sets the simplex-sum tolerance.
// Panics with a stable message when tol is negative or non-finite.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithWorkers bounds batch-map parallelism to n goroutines.
// n = 0 means one worker per available CPU. Panics when n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger installs a diagnostics logger. The library only ever writes
// non-fatal numerical-instability warnings to it; the default is
// zerolog.Nop(), i.e. fully silent.
func WithLogger(log zerolog.Logger) Option {
	return func(o *Options) { o.log = log }
}

// gatherOptions resolves setters against the documented defaults,
// last-writer-wins. All public entry points funnel through it.
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:     DefaultTolerance,
		workers: DefaultWorkers,
		log:     zerolog.Nop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
