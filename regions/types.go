package regions

import "fmt"

// NoGroup marks a cell that has not been assigned to any group.
const NoGroup = -1

// DefaultEpsilon is the tolerance under which two cluster values are equal.
// The comparison is strict: |a-b| < DefaultEpsilon.
const DefaultEpsilon = 1e-5

// Cell is one raster position. Row, Col and Cluster never change after the
// grid is built; Group moves from NoGroup to a tentative id, may be redirected
// by merges, and is final after Compact.
type Cell struct {
	Row, Col int
	Cluster  float64
	Group    int
}

// Grouped reports whether the cell has a group.
func (c Cell) Grouped() bool {
	return c.Group != NoGroup
}

// Range is a half-open interval [Lo, Hi) of group ids.
type Range struct {
	Lo, Hi int
}

// Len returns the number of ids in the range.
func (r Range) Len() int {
	return r.Hi - r.Lo
}

// Contains reports whether id lies in [Lo, Hi).
func (r Range) Contains(id int) bool {
	return id >= r.Lo && id < r.Hi
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Lo, r.Hi)
}

// ClusterRange records which group ids one cluster pass produced.
type ClusterRange struct {
	Cluster float64
	Range   Range
}

// Strategy selects how a cluster pass labels its cells.
type Strategy int

const (
	// StrategyMerge scans cells row-major and merges neighbor groups on
	// contact, largest group winning. This is the default.
	StrategyMerge Strategy = iota
	// StrategyFloodFill grows each region completely from its first cell with
	// a worklist BFS. Same partition as StrategyMerge; ids follow first
	// encounter of each region.
	StrategyFloodFill
)

func (s Strategy) String() string {
	switch s {
	case StrategyMerge:
		return "merge"
	case StrategyFloodFill:
		return "floodfill"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "merge" or "floodfill" to a Strategy. The empty string
// selects StrategyMerge.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "merge":
		return StrategyMerge, nil
	case "floodfill", "flood-fill":
		return StrategyFloodFill, nil
	default:
		return StrategyMerge, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, s)
	}
}

// PassStats summarizes one cluster pass.
type PassStats struct {
	Cluster float64
	Range   Range
	Cells   int // cells grouped during the pass
	Merges  int // loser groups redirected
	Groups  int // surviving groups allocated by the pass
}
