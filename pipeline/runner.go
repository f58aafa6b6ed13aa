package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/rastergroup/config"
	"github.com/katalvlaran/rastergroup/regions"
)

// Runner executes grouping runs with a fixed configuration.
//
// A Runner holds no per-run state; several goroutines may call Run on the
// same Runner concurrently.
type Runner struct {
	Config config.Config
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(cfg config.Config, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Config: cfg, Logger: logger}
}

// Run loads labels from src, groups them and, when sink is non-nil, hands the
// projection to it. Errors are prefixed with the failing stage.
func (r *Runner) Run(ctx context.Context, src LabelSource, sink Vectorizer) (*Result, error) {
	if src == nil {
		return nil, fmt.Errorf("load: %w", ErrNoLabels)
	}
	if err := r.Config.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	res := &Result{RunID: uuid.New()}
	lvl, err := r.Config.Level()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logger := r.Logger.With("run", res.RunID.String())
	logger.SetLevel(lvl)

	// Stage 1: Load
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	start := time.Now()
	labels, err := src.Labels(ctx)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	if labels == nil {
		return nil, fmt.Errorf("load: %w", ErrNoLabels)
	}
	res.Stats.Height, res.Stats.Width = labels.Dims()
	res.Stats.LoadTime = time.Since(start)
	logger.Info("loaded labels",
		"width", res.Stats.Width,
		"height", res.Stats.Height,
		"duration", res.Stats.LoadTime)

	// Stage 2: Group
	opts, err := r.Config.Options(logger)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	g, err := regions.FromDense(labels, opts...)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	start = time.Now()
	clusters := r.Config.Clusters
	if len(clusters) == 0 {
		clusters = g.Clusters()
	}
	for _, c := range clusters {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("group: %w", err)
		}
		st, err := g.Group(c)
		if err != nil {
			return nil, fmt.Errorf("group: cluster %v: %w", c, err)
		}
		if st.Cells == 0 {
			if st.Range.Len() == 0 {
				logger.Warn("cluster not present in raster", "cluster", c)
			} else {
				logger.Debug("cluster already grouped", "cluster", c, "range", st.Range)
			}
			continue
		}
		res.Stats.Passes = append(res.Stats.Passes, st)
		res.Stats.Merges += st.Merges
	}
	groups, err := g.Compact()
	if err != nil {
		return nil, fmt.Errorf("compact: %w", err)
	}
	res.Stats.Groups = groups
	res.Stats.GroupTime = time.Since(start)
	logger.Info("grouped regions",
		"clusters", len(res.Stats.Passes),
		"groups", groups,
		"merges", res.Stats.Merges,
		"duration", res.Stats.GroupTime)

	// Stage 3: Verify
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}
	start = time.Now()
	if err := g.Verify(); err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}
	res.Stats.VerifyTime = time.Since(start)

	// Stage 4: Project
	res.Projected = g.ProjectDense()
	res.Sizes = g.Sizes()
	res.Ranges = make(map[float64]regions.Range, len(res.Stats.Passes))
	for _, cr := range g.Registry() {
		res.Ranges[cr.Cluster] = cr.Range
	}
	for i := range res.Stats.Passes {
		if rg, ok := g.ClusterRange(res.Stats.Passes[i].Cluster); ok {
			res.Stats.Passes[i].Range = rg
		}
	}

	// Stage 5: Vectorize
	if sink == nil {
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("vectorize: %w", err)
	}
	start = time.Now()
	if err := sink.Vectorize(ctx, res.Projected, res.Sizes); err != nil {
		return nil, fmt.Errorf("vectorize: %w", err)
	}
	res.Stats.VectorizeTime = time.Since(start)
	logger.Info("vectorized regions",
		"groups", groups,
		"duration", res.Stats.VectorizeTime)

	return res, nil
}
