// Package regions partitions a raster of cluster labels into maximal
// spatially connected groups of equal label and gives each group a dense
// integer id.
//
// What
//
//   - Grid holds one Cell per raster position (row, col, cluster, group), a
//     group-size table, a monotonically increasing id counter and a registry
//     of the id range each processed cluster produced.
//   - Group(c) runs one region-growing pass for cluster c.
//   - Compact renumbers surviving groups to 0..n-1.
//   - Project renders group ids (or the cluster value of ungrouped cells)
//     into a dense array for a downstream vectorizer.
//
// Region growing
//
//	Cells are scanned row-major. For an ungrouped cell of cluster c, the
//	distinct groups of its already-grouped same-cluster neighbors decide:
//
//	  none      → open a new group
//	  one       → join it
//	  several   → join the one with the most cells in the size table
//	              (ties: lowest id); the others are redirected to it
//
//	Sizes are the live table counts. A group already redirected during the
//	pass still counts only the cells labeled with its own id.
//
//	Redirections live in a union-find with path compression. At the end of the
//	pass it is flattened and applied to every cell in one sweep, moving size
//	counts from each redirected id to its target.
//
//	StrategyFloodFill instead grows each region to completion from its first
//	cell with a worklist BFS and a visited bitset. Both strategies produce the
//	same partition; numbering may differ.
//
// Determinism
//
//	The same labels, connectivity and strategy always produce the same ids and
//	sizes. Row-major scan order is part of the contract.
//
// Usage
//
//	g, err := regions.FromRows(rows, regions.WithConnectivity(gridgraph.Conn8))
//	if err != nil {
//		// ErrInvalidShape, ErrInvalidLabel, ErrOptionViolation
//	}
//	if _, err := g.GroupAll(); err != nil {
//		// ErrClusterMismatch, ErrUnflattenedRedirection: fatal
//	}
//	out := g.ProjectDense()
//
// Errors
//
//   - ErrInvalidShape           width×height does not match the cells.
//   - ErrInvalidLabel           NaN label.
//   - ErrOptionViolation        invalid Option.
//   - ErrClusterMismatch        a neighbor or group crosses cluster values.
//   - ErrUnflattenedRedirection merge bookkeeping inconsistent after apply.
//   - ErrSplitRegion            adjacent same-cluster cells in different groups (Verify).
//   - ErrUnknownGroup           group id out of range.
package regions
