// SPDX-License-Identifier: MIT
// Package: rastergroup/regions
//
// grow.go - per-cluster region growing.
//
// Contract:
//   • Cells are visited in row-major order. The partition does not depend on
//     the order, but group numbering does.
//   • A cell only ever joins a group owned by its own cluster value.
//   • Merge strategy: the neighbor id with the most cells in the size table
//     wins, ties to the lowest id. Cells still labeled with a redirected id
//     count toward that id, not its root, until the apply pass. Losers are redirected through a
//     union-find that is flattened before the single apply pass at the end
//     of the cluster.
//   • Re-running a pass on a fully grouped cluster changes nothing.

package regions

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
)

// Group runs one region-growing pass over every ungrouped cell whose cluster
// equals c within Epsilon, and registers the id range the pass allocated.
// The id space is left sparse; call Compact (or use Process) before projecting.
//
// Returns ErrInvalidLabel for a NaN or infinite c, ErrClusterMismatch if a neighbor sits
// in a group owned by another cluster, ErrUnflattenedRedirection if merge
// bookkeeping is inconsistent after redirections are applied.
// Complexity: O(W×H×d + groups).
func (g *Grid) Group(c float64) (PassStats, error) {
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return PassStats{}, fmt.Errorf("%w: cannot group cluster %v", ErrInvalidLabel, c)
	}
	lo := g.next

	var (
		st  PassStats
		err error
	)
	switch g.opts.Strategy {
	case StrategyFloodFill:
		st, err = g.floodFill(c)
	default:
		st, err = g.mergeScan(c)
	}
	st.Cluster = c
	st.Range = Range{Lo: lo, Hi: g.next}
	if err != nil {
		g.log.Error("grouping pass failed", "cluster", c, "err", err)
		return st, err
	}

	if st.Range.Len() == 0 {
		if r, ok := g.ClusterRange(c); ok {
			st.Range = r
		}
		g.log.Debug("nothing to group", "cluster", c, "range", st.Range)
		return st, nil
	}

	g.registry = append(g.registry, ClusterRange{Cluster: c, Range: st.Range})
	g.compacted = false
	g.log.Debug("grouped cluster",
		"cluster", c,
		"cells", st.Cells,
		"groups", st.Groups,
		"merges", st.Merges,
		"range", st.Range)

	return st, nil
}

// Process groups cluster c and compacts the id space, so the grid is ready
// for projection after every call.
func (g *Grid) Process(c float64) (PassStats, error) {
	st, err := g.Group(c)
	if err != nil {
		return st, err
	}
	if _, err := g.Compact(); err != nil {
		return st, err
	}
	if r, ok := g.ClusterRange(c); ok {
		st.Range = r
	}
	return st, nil
}

// GroupAll groups every distinct cluster in first-encounter order and then
// compacts once. Returned ranges are the compacted ones.
func (g *Grid) GroupAll() ([]PassStats, error) {
	clusters := g.Clusters()
	stats := make([]PassStats, 0, len(clusters))
	for _, c := range clusters {
		st, err := g.Group(c)
		if err != nil {
			return stats, err
		}
		stats = append(stats, st)
	}
	if _, err := g.Compact(); err != nil {
		return stats, err
	}
	for i := range stats {
		if r, ok := g.ClusterRange(stats[i].Cluster); ok {
			stats[i].Range = r
		}
	}

	return stats, nil
}

// mergeScan is the merge-on-contact pass.
func (g *Grid) mergeScan(c float64) (PassStats, error) {
	var st PassStats
	lo := g.next
	rd := newRedirects(g.sizes)
	ids := make([]int, 0, 8)

	for i := range g.cells {
		cell := &g.cells[i]
		if cell.Grouped() || !g.same(cell.Cluster, c) {
			continue
		}

		// Distinct raw group ids among grouped same-cluster neighbors.
		ids = ids[:0]
		for _, j := range g.topo.NeighborsOf(i) {
			nb := &g.cells[j]
			if !nb.Grouped() || !g.same(nb.Cluster, c) {
				continue
			}
			if !g.same(g.owner[nb.Group], c) {
				return st, fmt.Errorf("%w: cell %d neighbor %d is in group %d of cluster %v while grouping %v",
					ErrClusterMismatch, i, j, nb.Group, g.owner[nb.Group], c)
			}
			if !containsInt(ids, nb.Group) {
				ids = append(ids, nb.Group)
			}
		}

		var id int
		switch len(ids) {
		case 0:
			id = g.allocate(c)
			rd.add()
		case 1:
			id = ids[0]
		default:
			// The winner is chosen on the live size table, then resolved.
			id = rd.find(g.largest(ids))
			for _, x := range ids {
				if r := rd.find(x); r != id {
					rd.union(id, r)
					st.Merges++
				}
			}
		}
		cell.Group = id
		g.sizes[id]++
		rd.grow(rd.find(id))
		st.Cells++
	}

	rd.flatten()
	if err := g.applyRedirects(rd); err != nil {
		return st, err
	}
	for id := lo; id < g.next; id++ {
		if g.sizes[id] > 0 {
			st.Groups++
		}
	}

	return st, nil
}

// applyRedirects moves every cell out of a redirected id in one pass and then
// audits the size table against the union-find.
func (g *Grid) applyRedirects(rd *redirects) error {
	if !rd.flat() {
		return fmt.Errorf("%w: redirection chain longer than one hop", ErrUnflattenedRedirection)
	}
	for i := range g.cells {
		cell := &g.cells[i]
		if !cell.Grouped() {
			continue
		}
		if t, ok := rd.target(cell.Group); ok {
			g.sizes[cell.Group]--
			g.sizes[t]++
			cell.Group = t
		}
	}
	for id, p := range rd.parent {
		if p != id {
			if g.sizes[id] != 0 {
				return fmt.Errorf("%w: group %d redirected to %d still holds %d cells",
					ErrUnflattenedRedirection, id, p, g.sizes[id])
			}
			continue
		}
		if g.sizes[id] != rd.size[id] {
			return fmt.Errorf("%w: group %d has %d cells, union-find counts %d",
				ErrUnflattenedRedirection, id, g.sizes[id], rd.size[id])
		}
	}

	return nil
}

// floodFill grows each region of cluster c to completion from its first
// ungrouped cell with a worklist BFS.
func (g *Grid) floodFill(c float64) (PassStats, error) {
	var st PassStats
	visited := bitset.New(uint(len(g.cells)))
	queue := make([]int, 0, 64)

	for i0 := range g.cells {
		seed := &g.cells[i0]
		if seed.Grouped() || visited.Test(uint(i0)) || !g.same(seed.Cluster, c) {
			continue
		}
		id := g.allocate(c)
		queue = append(queue[:0], i0)
		visited.Set(uint(i0))

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			g.cells[u].Group = id
			g.sizes[id]++
			for _, v := range g.topo.NeighborsOf(u) {
				if visited.Test(uint(v)) {
					continue
				}
				nb := &g.cells[v]
				if !g.same(nb.Cluster, c) {
					continue
				}
				if nb.Grouped() {
					if !g.same(g.owner[nb.Group], c) {
						return st, fmt.Errorf("%w: cell %d neighbor %d is in group %d of cluster %v while grouping %v",
							ErrClusterMismatch, u, v, nb.Group, g.owner[nb.Group], c)
					}
					continue
				}
				visited.Set(uint(v))
				queue = append(queue, v)
			}
		}
		st.Groups++
	}
	st.Cells = int(visited.Count())

	return st, nil
}

// largest returns the id in ids with the most cells in the size table; ties
// go to the lowest id. ids must be non-empty.
func (g *Grid) largest(ids []int) int {
	best := ids[0]
	for _, x := range ids[1:] {
		if g.sizes[x] > g.sizes[best] || (g.sizes[x] == g.sizes[best] && x < best) {
			best = x
		}
	}
	return best
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
