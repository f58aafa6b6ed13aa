// File: builder_impl_test.go
// Package builder_test contains functional tests for all Constructor
// implementations: layout, determinism and error sentinels.
package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rastergroup/builder"
)

// TestBuilders_Functional runs table-driven layout checks for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		w, h int
		cons []builder.Constructor
		want []float64
	}{
		{
			name: "Default canvas is class 0",
			w:    2, h: 2,
			want: []float64{0, 0, 0, 0},
		},
		{
			name: "Fill(3)",
			w:    3, h: 1,
			cons: []builder.Constructor{builder.Fill(3)},
			want: []float64{3, 3, 3},
		},
		{
			name: "Checkerboard(1,2)",
			w:    3, h: 2,
			cons: []builder.Constructor{builder.Checkerboard(1, 2)},
			want: []float64{
				1, 2, 1,
				2, 1, 2,
			},
		},
		{
			name: "Stripes(2; 0,1)",
			w:    5, h: 2,
			cons: []builder.Constructor{builder.Stripes(2, 0, 1)},
			want: []float64{
				0, 0, 1, 1, 0,
				0, 0, 1, 1, 0,
			},
		},
		{
			name: "Fill then Rect overlays",
			w:    4, h: 3,
			cons: []builder.Constructor{builder.Fill(1), builder.Rect(1, 1, 2, 2, 4)},
			want: []float64{
				1, 1, 1, 1,
				1, 4, 4, 1,
				1, 4, 4, 1,
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := builder.BuildLabels(tc.w, tc.h, nil, tc.cons...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			// idempotence: a second build gives the same raster
			again, err := builder.BuildLabels(tc.w, tc.h, nil, tc.cons...)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

// TestBuilders_Errors checks each constructor's error sentinel.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		w, h int
		opts []builder.BuilderOption
		cons []builder.Constructor
		want error
	}{
		{"ZeroWidth", 0, 3, nil, nil, builder.ErrTooSmall},
		{"ZeroHeight", 3, 0, nil, nil, builder.ErrTooSmall},
		{"NilConstructor", 2, 2, nil, []builder.Constructor{nil}, builder.ErrConstructFailed},
		{"FillNegative", 2, 2, nil, []builder.Constructor{builder.Fill(-1)}, builder.ErrOutOfBounds},
		{"CheckerNegative", 2, 2, nil, []builder.Constructor{builder.Checkerboard(0, -2)}, builder.ErrOutOfBounds},
		{"StripesZeroBand", 2, 2, nil, []builder.Constructor{builder.Stripes(0, 1)}, builder.ErrTooSmall},
		{"StripesNoClasses", 2, 2, nil, []builder.Constructor{builder.Stripes(1)}, builder.ErrTooSmall},
		{"RectOutside", 2, 2, nil, []builder.Constructor{builder.Rect(1, 1, 2, 1, 1)}, builder.ErrOutOfBounds},
		{"RectNegativeOrigin", 2, 2, nil, []builder.Constructor{builder.Rect(-1, 0, 1, 1, 1)}, builder.ErrOutOfBounds},
		{"RectEmpty", 2, 2, nil, []builder.Constructor{builder.Rect(0, 0, 0, 1, 1)}, builder.ErrTooSmall},
		{"RandomNoRNG", 2, 2, nil, []builder.Constructor{builder.Random(3)}, builder.ErrNeedRandSource},
		{"RandomZeroK", 2, 2, []builder.BuilderOption{builder.WithSeed(1)}, []builder.Constructor{builder.Random(0)}, builder.ErrTooSmall},
		{"JitterNoRNG", 2, 2, []builder.BuilderOption{builder.WithJitter(1e-6)}, nil, builder.ErrNeedRandSource},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildLabels(tc.w, tc.h, tc.opts, tc.cons...)
			if !errors.Is(err, tc.want) {
				t.Errorf("BuildLabels error = %v; want %v", err, tc.want)
			}
		})
	}
}

// TestBuilders_ErrorContext: constructor errors carry the orchestrator and
// method tags ahead of the sentinel text.
func TestBuilders_ErrorContext(t *testing.T) {
	_, err := builder.BuildLabels(2, 2, nil, builder.Rect(1, 1, 2, 1, 1))
	require.Error(t, err)
	assert.Equal(t, "BuildLabels: Rect: (1,1)+2x1 outside 2x2 canvas: builder: out of bounds", err.Error())

	_, err = builder.BuildLabels(2, 2, nil, builder.Stripes(0, 1))
	require.Error(t, err)
	assert.Equal(t, "BuildLabels: Stripes: band=0 (must be ≥ 1): builder: parameter too small", err.Error())

	_, err = builder.BuildLabels(2, 2, nil, builder.Checkerboard(-3, 0))
	assert.ErrorIs(t, err, builder.ErrOutOfBounds)
	assert.Contains(t, err.Error(), "Checkerboard: class -3 is negative")
}

// TestRandom_Deterministic: the same seed yields the same raster, labels stay
// in range, and a different seed changes it.
func TestRandom_Deterministic(t *testing.T) {
	t.Parallel()

	build := func(seed int64) []float64 {
		labels, err := builder.BuildLabels(16, 16, []builder.BuilderOption{builder.WithSeed(seed)}, builder.Random(4))
		require.NoError(t, err)
		return labels
	}
	a, b, c := build(7), build(7), build(8)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	for i, v := range a {
		if v < 0 || v > 3 || v != float64(int(v)) {
			t.Fatalf("cell %d: label %v outside classes [0,4)", i, v)
		}
	}
}

// TestJitter keeps every label within amp of its class value.
func TestJitter(t *testing.T) {
	t.Parallel()

	const amp = 1e-7
	labels, err := builder.BuildLabels(8, 8,
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithJitter(amp)},
		builder.Stripes(2, 0, 5))
	require.NoError(t, err)

	exact, err := builder.BuildLabels(8, 8, nil, builder.Stripes(2, 0, 5))
	require.NoError(t, err)

	moved := 0
	for i := range labels {
		assert.InDelta(t, exact[i], labels[i], amp)
		if labels[i] != exact[i] {
			moved++
		}
	}
	assert.Positive(t, moved)
}

// TestBuildRowsAndDense reshape the same raster.
func TestBuildRowsAndDense(t *testing.T) {
	t.Parallel()

	cons := []builder.Constructor{builder.Stripes(1, 0, 1, 2)}
	rows, err := builder.BuildRows(3, 2, nil, cons...)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1, 2}, {0, 1, 2}}, rows)

	d, err := builder.BuildDense(3, 2, nil, cons...)
	require.NoError(t, err)
	r, c := d.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 2.0, d.At(1, 2))

	_, err = builder.BuildRows(0, 2, nil)
	assert.ErrorIs(t, err, builder.ErrTooSmall)
	_, err = builder.BuildDense(2, 0, nil)
	assert.ErrorIs(t, err, builder.ErrTooSmall)
}

// TestCanvas_SetIgnoresOutOfRange paints only inside the canvas.
func TestCanvas_SetIgnoresOutOfRange(t *testing.T) {
	c := &builder.Canvas{Width: 2, Height: 2, Classes: make([]int, 4)}
	c.Set(1, 1, 9)
	c.Set(2, 0, 9)
	c.Set(0, -1, 9)
	assert.Equal(t, []int{0, 0, 0, 9}, c.Classes)
	assert.Equal(t, 9, c.At(1, 1))
}
