// Package builder contains unit tests for builderConfig and BuilderOption.
package builder

import (
	"math/rand"
	"testing"
)

// TestLabelOptions verifies label mapping options apply in order.
func TestLabelOptions(t *testing.T) {
	t.Parallel()

	// 1. Default: class k renders as float64(k)
	if got := newBuilderConfig().labelFn(7); got != 7 {
		t.Errorf("default labelFn: expected 7, got %v", got)
	}

	// 2. WithPalette overrides
	cfg := newBuilderConfig(WithPalette(0.25, 0.75))
	if got := cfg.labelFn(1); got != 0.75 {
		t.Errorf("WithPalette: expected 0.75, got %v", got)
	}

	// 3. Later option wins
	cfg = newBuilderConfig(WithPalette(9), WithLabelFn(OffsetLabelFn(10, 5)))
	if got := cfg.labelFn(2); got != 20 {
		t.Errorf("WithLabelFn override: expected 20, got %v", got)
	}
}

// TestRNGOptions verifies RNG options, including reproducibility of WithSeed.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. By default there is no RNG
	if cfg := newBuilderConfig(); cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}

	// 2. WithRand installs the given RNG
	r := rand.New(rand.NewSource(123))
	if cfg := newBuilderConfig(WithRand(r)); cfg.rng != r {
		t.Errorf("WithRand: expected %p, got %p", r, cfg.rng)
	}

	// 3. WithSeed is reproducible
	a := newBuilderConfig(WithSeed(42)).rng.Int63()
	b := newBuilderConfig(WithSeed(42)).rng.Int63()
	if a != b {
		t.Errorf("WithSeed: expected identical draws, got %d and %d", a, b)
	}

	// 4. Jitter defaults to off
	if cfg := newBuilderConfig(); cfg.jitter != 0 {
		t.Errorf("default jitter: expected 0, got %v", cfg.jitter)
	}
}
