// SPDX-License-Identifier: MIT
// Package: rastergroup/builder
//
// impl_fill.go - Fill and Checkerboard constructors.
//
// Contract:
//   • Every cell of the canvas is overwritten; earlier constructors are lost.
//   • Classes must be ≥ 0 (else ErrOutOfBounds). Nothing is painted on error.
//
// Complexity:
//   • Time: O(W×H). Space: O(1) extra.
//
// Determinism: both are pure functions of the canvas shape; cfg is unused.

package builder

// Fill returns a Constructor painting every cell with class k.
//
// Parameters:
//   - k: class index, ≥ 0.
//
// Returns ErrOutOfBounds for a negative k.
func Fill(k int) Constructor {
	return func(c *Canvas, _ builderConfig) error {
		if err := validateClass(MethodFill, k); err != nil {
			return err
		}
		for i := range c.Classes {
			c.Classes[i] = k
		}
		return nil
	}
}

// Checkerboard returns a Constructor alternating classes a and b; cells with
// even x+y get a. Under 4-connectivity every cell is its own region, under
// 8-connectivity each class forms a single region.
//
// Parameters:
//   - a: class of cells with even x+y.
//   - b: class of cells with odd x+y.
//
// Returns ErrOutOfBounds if a or b is negative.
func Checkerboard(a, b int) Constructor {
	return func(c *Canvas, _ builderConfig) error {
		if err := validateClasses(MethodCheckerboard, []int{a, b}); err != nil {
			return err
		}
		for y := 0; y < c.Height; y++ {
			for x := 0; x < c.Width; x++ {
				if (x+y)%2 == 0 {
					c.Set(x, y, a)
				} else {
					c.Set(x, y, b)
				}
			}
		}
		return nil
	}
}
