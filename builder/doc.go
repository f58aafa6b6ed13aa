// Package builder constructs deterministic label rasters for tests,
// benchmarks and examples.
//
// A raster is built by BuildLabels(width, height, opts, cons...): the canvas
// starts as class 0 everywhere and each Constructor paints over it in order.
// Constructors work in class indices (0, 1, 2, ...); the LabelFn resolved from
// the options maps a class index to the float label value written to the
// cell, so the same layout can be rendered as small integers or as k-means
// style centroids.
//
// Constructors:
//
//	Fill(k)                 every cell is class k
//	Checkerboard(a, b)      alternating classes; (x+y) even gets a
//	Stripes(band, ks...)    vertical bands of width band cycling through ks
//	Rect(x, y, w, h, k)     paint an axis-aligned rectangle
//	Random(k)               uniform classes in [0,k); needs WithSeed/WithRand
//
// Determinism: the same size, options, seed and constructor order always give
// the same labels. WithJitter perturbs every label by a seeded amount, useful
// for exercising the equality tolerance of the grouping code.
//
// Errors: ErrTooSmall, ErrOutOfBounds, ErrNeedRandSource, ErrConstructFailed.
// Option constructors panic on meaningless arguments.
package builder
