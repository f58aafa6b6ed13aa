// Package builder validators enforce parameter contracts shared by the
// Constructor factories. Each returns a sentinel wrapped by builderErrorf
// when its precondition is violated, and nil otherwise.
package builder

// validateMin ensures got ≥ min.
// Returns "<Method>: <name>=<got> (must be ≥ <min>): builder: parameter too small"
// otherwise.
//
// Parameters:
//   - method: constructor tag, e.g. MethodStripes.
//   - name:   parameter name as the caller spells it.
//   - got:    value supplied by the user.
//   - min:    smallest acceptable value.
//
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooSmall, "%s=%d (must be ≥ %d)", name, got, min)
	}

	return nil
}

// validateClass rejects negative class indices with ErrOutOfBounds.
// Classes have no upper bound; the label function maps any k ≥ 0.
//
// Parameters:
//   - method: constructor tag.
//   - k:      class index to check.
//
// Complexity: O(1) time and space.
func validateClass(method string, k int) error {
	if k < 0 {
		return builderErrorf(method, ErrOutOfBounds, "class %d is negative", k)
	}

	return nil
}

// validateClasses applies validateClass to every entry of ks and rejects an
// empty list with ErrTooSmall.
//
// Complexity: O(len(ks)).
func validateClasses(method string, ks []int) error {
	if len(ks) == 0 {
		return builderErrorf(method, ErrTooSmall, "no classes")
	}
	for _, k := range ks {
		if err := validateClass(method, k); err != nil {
			return err
		}
	}

	return nil
}
