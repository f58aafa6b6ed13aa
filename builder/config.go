// SPDX-License-Identifier: MIT
// Package: rastergroup/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   • labelFn = DefaultLabelFn (class k → float64(k))
//   • rng     = nil            (deterministic unless seeded)
//   • jitter  = 0              (labels are exact)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors and rendering.
// It is passed by value to constructors.
type builderConfig struct {
	// labelFn maps a class index to the label written into the raster.
	labelFn LabelFn
	// rng drives stochastic constructors and jitter; nil means no randomness.
	rng *rand.Rand
	// jitter is the half-width of the uniform perturbation added to labels.
	jitter float64
}

// newBuilderConfig applies options in order over the defaults; last wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		labelFn: DefaultLabelFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
