// Package pipeline runs a grouping job end to end: load labels from a
// classifier, group every cluster into connected regions, compact and audit
// the ids, project them into a raster and hand it to a vectorizer.
//
// # Stages
//
//  1. Load: LabelSource.Labels returns the cluster label raster.
//  2. Group: one region-growing pass per cluster, then a single compaction.
//  3. Verify: the grid's bookkeeping is audited before anything is projected.
//  4. Project: group ids become a raster of the same shape.
//  5. Vectorize: the projection and group sizes go to the Vectorizer.
//
// The context is checked between stages and between cluster passes; a pass
// that has started always runs to completion.
//
// # Usage
//
//	runner := pipeline.NewRunner(cfg, logger)
//	res, err := runner.Run(ctx, pipeline.DenseSource{M: labels}, vectorizer)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.RunID, res.Stats.Groups)
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rastergroup/regions"
)

// ErrNoLabels indicates a LabelSource produced no raster.
var ErrNoLabels = errors.New("pipeline: no labels")

// LabelSource produces the per-cell cluster labels, typically the output of a
// classifier. Rows of the matrix are raster rows.
type LabelSource interface {
	Labels(ctx context.Context) (*mat.Dense, error)
}

// Vectorizer consumes the projected group raster. sizes[id] is the cell count
// of group id.
type Vectorizer interface {
	Vectorize(ctx context.Context, projected *mat.Dense, sizes []int) error
}

// DenseSource serves an in-memory label matrix.
type DenseSource struct {
	M *mat.Dense
}

// Labels returns s.M, or ErrNoLabels if it is nil.
func (s DenseSource) Labels(context.Context) (*mat.Dense, error) {
	if s.M == nil {
		return nil, ErrNoLabels
	}
	return s.M, nil
}

// SourceFunc adapts a function to LabelSource.
type SourceFunc func(ctx context.Context) (*mat.Dense, error)

// Labels calls f(ctx).
func (f SourceFunc) Labels(ctx context.Context) (*mat.Dense, error) {
	return f(ctx)
}

// VectorizerFunc adapts a function to Vectorizer.
type VectorizerFunc func(ctx context.Context, projected *mat.Dense, sizes []int) error

// Vectorize calls f(ctx, projected, sizes).
func (f VectorizerFunc) Vectorize(ctx context.Context, projected *mat.Dense, sizes []int) error {
	return f(ctx, projected, sizes)
}

// Result contains the outputs of a run.
type Result struct {
	// RunID identifies the run in logs.
	RunID uuid.UUID

	// Projected holds one group id per cell, same shape as the input.
	Projected *mat.Dense

	// Sizes is the compacted group-size table.
	Sizes []int

	// Ranges maps each processed cluster to its group id range.
	Ranges map[float64]regions.Range

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains run statistics.
type Stats struct {
	Width, Height int
	Groups        int
	Merges        int
	Passes        []regions.PassStats

	LoadTime      time.Duration
	GroupTime     time.Duration
	VerifyTime    time.Duration
	VectorizeTime time.Duration
}
