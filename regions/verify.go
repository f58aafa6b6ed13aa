package regions

import "fmt"

// Verify audits the grid's bookkeeping:
//
//   - every grouped cell's id is in range and owned by the cell's cluster
//     (ErrClusterMismatch / ErrUnknownGroup);
//   - sizes[id] equals the number of cells in id (ErrUnflattenedRedirection);
//   - for every registered cluster, the sizes over its range sum to the
//     number of cells carrying that cluster (ErrClusterMismatch);
//   - no two adjacent cells of one cluster are in different groups
//     (ErrSplitRegion);
//   - after Compact, no id has size zero (ErrUnflattenedRedirection).
//
// Complexity: O(W×H×d + groups).
func (g *Grid) Verify() error {
	if len(g.sizes) != g.next || len(g.owner) != g.next {
		return fmt.Errorf("%w: %d sizes and %d owners for %d ids",
			ErrUnflattenedRedirection, len(g.sizes), len(g.owner), g.next)
	}

	counts := make([]int, g.next)
	for i := range g.cells {
		cell := &g.cells[i]
		if !cell.Grouped() {
			continue
		}
		if cell.Group < 0 || cell.Group >= g.next {
			return fmt.Errorf("%w: cell %d has group %d", ErrUnknownGroup, i, cell.Group)
		}
		if !g.same(g.owner[cell.Group], cell.Cluster) {
			return fmt.Errorf("%w: cell %d of cluster %v is in group %d of cluster %v",
				ErrClusterMismatch, i, cell.Cluster, cell.Group, g.owner[cell.Group])
		}
		counts[cell.Group]++
	}
	for id, n := range counts {
		if n != g.sizes[id] {
			return fmt.Errorf("%w: group %d records %d cells, holds %d",
				ErrUnflattenedRedirection, id, g.sizes[id], n)
		}
		if g.compacted && n == 0 {
			return fmt.Errorf("%w: compacted group %d is empty", ErrUnflattenedRedirection, id)
		}
	}

	for _, cr := range g.registry {
		total := 0
		for id := cr.Range.Lo; id < cr.Range.Hi; id++ {
			total += g.sizes[id]
		}
		members := 0
		for i := range g.cells {
			cell := &g.cells[i]
			if g.same(cell.Cluster, cr.Cluster) {
				members++
			}
		}
		if total != members {
			return fmt.Errorf("%w: cluster %v range %v sizes sum to %d, grid has %d such cells",
				ErrClusterMismatch, cr.Cluster, cr.Range, total, members)
		}
	}

	for i := range g.cells {
		a := &g.cells[i]
		if !a.Grouped() {
			continue
		}
		for _, j := range g.topo.NeighborsOf(i) {
			b := &g.cells[j]
			if b.Grouped() && b.Group != a.Group && g.same(g.owner[a.Group], g.owner[b.Group]) &&
				g.same(a.Cluster, b.Cluster) {
				return fmt.Errorf("%w: cells %d and %d in groups %d and %d",
					ErrSplitRegion, i, j, a.Group, b.Group)
			}
		}
	}

	return nil
}
