package regions

import "fmt"

// Compact renumbers surviving groups into the dense id space 0..n-1. A group
// with nonzero size gets its rank among nonzero-size ids in ascending order;
// cells, the size table, group owners and the per-cluster registry are all
// rewritten. Returns the number of groups.
//
// Returns ErrUnflattenedRedirection, leaving the grid untouched, if a cell
// sits in a group whose size is zero or a size is negative.
// Complexity: O(groups + cells).
func (g *Grid) Compact() (int, error) {
	n := len(g.sizes)
	remap := make([]int, n)
	prefix := make([]int, n+1) // prefix[id] = surviving ids below id
	dense := 0
	for id, s := range g.sizes {
		prefix[id] = dense
		switch {
		case s < 0:
			return 0, fmt.Errorf("%w: group %d has negative size %d", ErrUnflattenedRedirection, id, s)
		case s == 0:
			remap[id] = NoGroup
		default:
			remap[id] = dense
			dense++
		}
	}
	prefix[n] = dense

	for i := range g.cells {
		if id := g.cells[i].Group; id != NoGroup && remap[id] == NoGroup {
			return 0, fmt.Errorf("%w: cell %d is in empty group %d", ErrUnflattenedRedirection, i, id)
		}
	}

	for i := range g.cells {
		if id := g.cells[i].Group; id != NoGroup {
			g.cells[i].Group = remap[id]
		}
	}
	sizes := make([]int, 0, dense)
	owner := make([]float64, 0, dense)
	for id, s := range g.sizes {
		if s > 0 {
			sizes = append(sizes, s)
			owner = append(owner, g.owner[id])
		}
	}
	for k := range g.registry {
		r := g.registry[k].Range
		g.registry[k].Range = Range{Lo: prefix[r.Lo], Hi: prefix[r.Hi]}
	}

	removed := n - dense
	g.sizes, g.owner, g.next = sizes, owner, dense
	g.compacted = true
	g.log.Debug("compacted groups", "groups", dense, "removed", removed)

	return dense, nil
}
