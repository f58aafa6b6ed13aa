// SPDX-License-Identifier: MIT
// Package: rastergroup/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Constructors attach context with "%s: ...: %w" using their method tag.
//   • Runtime paths never panic; option constructors (WithX) may.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates a size parameter (width, height, band, class count)
// below its minimum.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrOutOfBounds indicates a rectangle or class index that does not fit.
var ErrOutOfBounds = errors.New("builder: out of bounds")

// ErrNeedRandSource indicates a stochastic constructor or option ran without
// an RNG (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not produce a valid
// raster, including a nil constructor passed to BuildLabels.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps sentinel with the given method context.
// It returns an error of the form "<Method>: <formatted message>: <sentinel>",
// so errors.Is still matches the sentinel.
//
// Parameters:
//   - method:   constructor tag, e.g. MethodRect.
//   - sentinel: one of the Err* variables above.
//   - format:   format string for the inner message.
//   - args:     values for the format placeholders.
//
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
