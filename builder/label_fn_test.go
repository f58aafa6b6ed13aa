package builder_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rastergroup/builder"
)

// assertPanics fails the test if fn does not panic.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, but none occurred", name)
		}
	}()
	fn()
}

// TestLabelFns checks each LabelFn on representative classes.
func TestLabelFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		fn    builder.LabelFn
		class int
		want  float64
	}{
		{"Default_zero", builder.DefaultLabelFn, 0, 0},
		{"Default_multi", builder.DefaultLabelFn, 12, 12},
		{"Offset", builder.OffsetLabelFn(10, 5), 3, 25},
		{"OffsetNegativeStep", builder.OffsetLabelFn(1, -0.5), 2, 0},
		{"Palette", builder.PaletteLabelFn(0.1, 0.2, 0.3), 1, 0.2},
		{"PaletteWraps", builder.PaletteLabelFn(0.1, 0.2, 0.3), 4, 0.2},
		{"Centroid_first", builder.CentroidLabelFn(0, 1, 4), 0, 0.125},
		{"Centroid_last", builder.CentroidLabelFn(0, 1, 4), 3, 0.875},
		{"CentroidWraps", builder.CentroidLabelFn(0, 1, 4), 5, 0.375},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.fn(tc.class); math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("%s(%d) = %v; want %v", tc.name, tc.class, got, tc.want)
			}
		})
	}
}

// TestOptionPanics verifies option and LabelFn constructors reject
// meaningless arguments.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"WithRand(nil)", func() { builder.WithRand(nil) }},
		{"WithLabelFn(nil)", func() { builder.WithLabelFn(nil) }},
		{"WithJitter(-1)", func() { builder.WithJitter(-1) }},
		{"WithJitter(NaN)", func() { builder.WithJitter(math.NaN()) }},
		{"OffsetLabelFn(step=0)", func() { builder.OffsetLabelFn(1, 0) }},
		{"PaletteLabelFn()", func() { builder.PaletteLabelFn() }},
		{"CentroidLabelFn(k=0)", func() { builder.CentroidLabelFn(0, 1, 0) }},
		{"CentroidLabelFn(hi<=lo)", func() { builder.CentroidLabelFn(1, 1, 3) }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assertPanics(t, tc.fn, tc.name)
		})
	}
}
