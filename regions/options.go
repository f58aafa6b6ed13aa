package regions

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/rastergroup/gridgraph"
)

// Option configures a Grid via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by NewGrid.
type Option func(*Options)

// Options holds the parameters of a grouping run.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn gridgraph.Connectivity

	// Epsilon is the tolerance for cluster equality: a == b or |a-b| < Epsilon.
	Epsilon float64

	// Strategy selects merge-on-contact or flood fill labeling.
	Strategy Strategy

	// Logger receives per-pass debug records.
	Logger *log.Logger

	err error
}

// DefaultOptions returns Conn4, DefaultEpsilon, StrategyMerge and a logger
// that discards everything.
func DefaultOptions() Options {
	return Options{
		Conn:     gridgraph.Conn4,
		Epsilon:  DefaultEpsilon,
		Strategy: StrategyMerge,
		Logger:   log.NewWithOptions(io.Discard, log.Options{}),
	}
}

// WithConnectivity selects Conn4 or Conn8.
func WithConnectivity(c gridgraph.Connectivity) Option {
	return func(o *Options) {
		if !c.Valid() {
			o.err = fmt.Errorf("%w: connectivity %v", ErrOptionViolation, c)
			return
		}
		o.Conn = c
	}
}

// WithEpsilon sets the cluster equality tolerance.
// Two values match when they are equal or differ by strictly less than eps;
// values exactly eps apart are different clusters. WithEpsilon(0) requires
// exact equality. Negative, NaN or infinite eps is invalid.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
			o.err = fmt.Errorf("%w: epsilon %v", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithStrategy selects the labeling strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != StrategyMerge && s != StrategyFloodFill {
			o.err = fmt.Errorf("%w: strategy %v", ErrOptionViolation, s)
			return
		}
		o.Strategy = s
	}
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
