// SPDX-License-Identifier: MIT
// Package: rastergroup/builder
//
// api.go - public entry points for the builder package.
//
// Contract:
//   • One orchestrator: BuildLabels(w, h, opts, cons...). Creates the canvas,
//     resolves cfg, runs cons in order, then renders classes to labels.
//   • Functional options resolve into an immutable builderConfig.
//   • Same inputs, options, seed and constructor order ⇒ identical labels.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Canvas is the class raster constructors paint on. Classes are row-major.
type Canvas struct {
	Width, Height int
	Classes       []int
}

// Set paints cell (x, y) with class k. Out-of-range cells are ignored.
func (c *Canvas) Set(x, y, k int) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	c.Classes[y*c.Width+x] = k
}

// At returns the class of cell (x, y).
func (c *Canvas) At(x, y int) int {
	return c.Classes[y*c.Width+x]
}

// Constructor paints classes onto the canvas using the resolved builderConfig.
// Constructors validate parameters before touching the canvas and never panic.
type Constructor func(c *Canvas, cfg builderConfig) error

// BuildLabels creates a width×height canvas, applies all constructors in
// order and returns row-major labels rendered through the configured LabelFn
// (plus jitter, if enabled).
//
// Errors:
//   - ErrTooSmall if width or height < MinDim.
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped as "BuildLabels: %w".
//   - ErrNeedRandSource if WithJitter is set without an RNG.
//
// Complexity: O(W×H) plus the cost of each constructor.
func BuildLabels(width, height int, opts []BuilderOption, cons ...Constructor) ([]float64, error) {
	if err := validateMin(MethodBuildLabels, "width", width, MinDim); err != nil {
		return nil, err
	}
	if err := validateMin(MethodBuildLabels, "height", height, MinDim); err != nil {
		return nil, err
	}

	cfg := newBuilderConfig(opts...)
	c := &Canvas{Width: width, Height: height, Classes: make([]int, width*height)}

	for i, fn := range cons {
		if fn == nil {
			return nil, builderErrorf(MethodBuildLabels, ErrConstructFailed, "nil constructor at index %d", i)
		}
		if err := fn(c, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildLabels, err)
		}
	}

	return render(c, cfg)
}

// BuildRows is BuildLabels reshaped into rows[y][x].
func BuildRows(width, height int, opts []BuilderOption, cons ...Constructor) ([][]float64, error) {
	labels, err := BuildLabels(width, height, opts, cons...)
	if err != nil {
		return nil, err
	}
	rows := make([][]float64, height)
	for y := range rows {
		rows[y] = labels[y*width : (y+1)*width : (y+1)*width]
	}
	return rows, nil
}

// BuildDense is BuildLabels as a height×width matrix.
func BuildDense(width, height int, opts []BuilderOption, cons ...Constructor) (*mat.Dense, error) {
	labels, err := BuildLabels(width, height, opts, cons...)
	if err != nil {
		return nil, err
	}
	return mat.NewDense(height, width, labels), nil
}

// render maps classes to label values and applies jitter.
func render(c *Canvas, cfg builderConfig) ([]float64, error) {
	if cfg.jitter > 0 && cfg.rng == nil {
		return nil, builderErrorf(MethodBuildLabels, ErrNeedRandSource, "jitter %g", cfg.jitter)
	}
	labels := make([]float64, len(c.Classes))
	for i, k := range c.Classes {
		labels[i] = cfg.labelFn(k)
		if cfg.jitter > 0 {
			labels[i] += (2*cfg.rng.Float64() - 1) * cfg.jitter
		}
	}
	return labels, nil
}
