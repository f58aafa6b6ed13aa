// SPDX-License-Identifier: MIT
// Package: rastergroup/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors and BuildLabels never panic.
//   • Seeding is explicit via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a new RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLabelFn sets the class→label mapping. Panics on nil.
func WithLabelFn(fn LabelFn) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelFn(nil)")
	}
	return func(c *builderConfig) {
		c.labelFn = fn
	}
}

// WithPalette maps class k to values[k]. See PaletteLabelFn.
func WithPalette(values ...float64) BuilderOption {
	return WithLabelFn(PaletteLabelFn(values...))
}

// WithCentroids maps classes to k evenly spaced centroids of [lo, hi].
// See CentroidLabelFn.
func WithCentroids(lo, hi float64, k int) BuilderOption {
	return WithLabelFn(CentroidLabelFn(lo, hi, k))
}

// WithJitter adds a uniform perturbation in [-amp, amp) to every label.
// Requires an RNG at build time. Panics if amp is negative or not finite.
func WithJitter(amp float64) BuilderOption {
	if amp < 0 || math.IsNaN(amp) || math.IsInf(amp, 0) {
		panic("builder: WithJitter(amp<0)")
	}
	return func(c *builderConfig) {
		c.jitter = amp
	}
}
