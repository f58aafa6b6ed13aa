// SPDX-License-Identifier: MIT
// Package: rastergroup/builder
//
// impl_rect.go - Rect constructor.
//
// Contract:
//   • The rectangle [x, x+w) × [y, y+h) must lie inside the canvas
//     (else ErrOutOfBounds); it is never clipped.
//   • w, h ≥ MinDim (else ErrTooSmall).
//   • Only cells inside the rectangle change, so Rects layer in call order.
//
// Complexity:
//   • Time: O(w×h). Space: O(1) extra.

package builder

// Rect returns a Constructor painting the w×h rectangle with top-left corner
// (x, y) with class k.
//
// Parameters:
//   - x, y: top-left corner, column and row.
//   - w, h: width and height in cells, each ≥ MinDim.
//   - k:    class index, ≥ 0.
//
// Returns ErrTooSmall for w or h < MinDim, ErrOutOfBounds if the rectangle
// leaves the canvas or k is negative.
func Rect(x, y, w, h, k int) Constructor {
	return func(c *Canvas, _ builderConfig) error {
		if err := validateMin(MethodRect, "w", w, MinDim); err != nil {
			return err
		}
		if err := validateMin(MethodRect, "h", h, MinDim); err != nil {
			return err
		}
		if err := validateClass(MethodRect, k); err != nil {
			return err
		}
		if x < 0 || y < 0 || x+w > c.Width || y+h > c.Height {
			return builderErrorf(MethodRect, ErrOutOfBounds, "(%d,%d)+%dx%d outside %dx%d canvas",
				x, y, w, h, c.Width, c.Height)
		}
		for yy := y; yy < y+h; yy++ {
			for xx := x; xx < x+w; xx++ {
				c.Set(xx, yy, k)
			}
		}
		return nil
	}
}
