// Package builder provides class→label mappings used when rendering a canvas.
package builder

import "fmt"

// LabelFn maps a class index to a label value. It must be pure.
type LabelFn func(class int) float64

// DefaultLabelFn returns float64(class).
func DefaultLabelFn(class int) float64 {
	return float64(class)
}

// OffsetLabelFn returns base + class*step, e.g. OffsetLabelFn(10, 5): 0→10, 1→15.
// Panics if step is zero.
func OffsetLabelFn(base, step float64) LabelFn {
	if step == 0 {
		panic("OffsetLabelFn: step must be non-zero")
	}
	return func(class int) float64 {
		return base + float64(class)*step
	}
}

// PaletteLabelFn returns values[class]. Classes beyond the palette wrap
// around. Panics on an empty palette.
func PaletteLabelFn(values ...float64) LabelFn {
	if len(values) == 0 {
		panic("PaletteLabelFn: empty palette")
	}
	p := append([]float64(nil), values...)
	return func(class int) float64 {
		i := class % len(p)
		if i < 0 {
			i += len(p)
		}
		return p[i]
	}
}

// CentroidLabelFn mimics the centroids a k-means classifier emits for values
// spread over [lo, hi]: class i maps to the center of the i-th of k equal
// bins, lo + (i+0.5)·(hi-lo)/k. Classes beyond k wrap around.
// Panics if k < 1 or hi <= lo.
func CentroidLabelFn(lo, hi float64, k int) LabelFn {
	if k < MinClasses {
		panic(fmt.Sprintf("CentroidLabelFn: k must be ≥ %d, got %d", MinClasses, k))
	}
	if !(hi > lo) {
		panic(fmt.Sprintf("CentroidLabelFn: require lo < hi, got lo=%g hi=%g", lo, hi))
	}
	width := (hi - lo) / float64(k)
	return func(class int) float64 {
		i := class % k
		if i < 0 {
			i += k
		}
		return lo + (float64(i)+0.5)*width
	}
}
