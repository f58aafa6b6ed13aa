// SPDX-License-Identifier: MIT
// Package: rastergroup/builder
//
// impl_stripes.go - Stripes constructor.
//
// Contract:
//   • band ≥ MinBand and at least one class (else ErrTooSmall).
//   • Every class ≥ 0 (else ErrOutOfBounds).
//   • Bands start at the left edge; the last band may be cut by the border.
//
// Complexity:
//   • Time: O(W×H). Space: O(1) extra.

package builder

// Stripes returns a Constructor painting vertical bands of width band,
// cycling through classes ks from the left edge: column x gets
// ks[(x/band) % len(ks)].
//
// Parameters:
//   - band: stripe width in cells, ≥ MinBand.
//   - ks:   classes in left-to-right order; repeated classes are allowed, so
//     Stripes(1, 0, 0, 1) yields two-cell bands of 0 and one-cell bands of 1.
//
// Returns ErrTooSmall if band < MinBand or ks is empty, ErrOutOfBounds for a
// negative class.
func Stripes(band int, ks ...int) Constructor {
	return func(c *Canvas, _ builderConfig) error {
		if err := validateMin(MethodStripes, "band", band, MinBand); err != nil {
			return err
		}
		if err := validateClasses(MethodStripes, ks); err != nil {
			return err
		}
		for y := 0; y < c.Height; y++ {
			for x := 0; x < c.Width; x++ {
				c.Set(x, y, ks[(x/band)%len(ks)])
			}
		}
		return nil
	}
}
