// SPDX-License-Identifier: MIT
// Package: rastergroup/builder
//
// impl_random.go - Random constructor.
//
// Contract:
//   • k ≥ MinClasses, else ErrTooSmall.
//   • Requires cfg.rng (WithSeed/WithRand), else ErrNeedRandSource.
//   • Cells are drawn in row-major order, so a fixed seed fixes the raster.
//
// Complexity:
//   • Time: O(W×H) draws. Space: O(1) extra.

package builder

// Random returns a Constructor assigning every cell a uniform class in [0,k).
//
// Parameters:
//   - k: number of classes, ≥ MinClasses.
//
// Returns ErrTooSmall for k < MinClasses, ErrNeedRandSource without an RNG.
func Random(k int) Constructor {
	return func(c *Canvas, cfg builderConfig) error {
		if err := validateMin(MethodRandom, "k", k, MinClasses); err != nil {
			return err
		}
		if cfg.rng == nil {
			return builderErrorf(MethodRandom, ErrNeedRandSource, "use WithSeed or WithRand")
		}
		for i := range c.Classes {
			c.Classes[i] = cfg.rng.Intn(k)
		}
		return nil
	}
}
