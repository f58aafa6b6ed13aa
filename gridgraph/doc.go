// Package gridgraph treats a W×H raster as a graph of cells and builds the
// neighbor topology used by region grouping.
//
// What:
//
//   - Topology precomputes, for every row-major cell index i = row*W + col,
//     the indices of its in-bounds neighbors. No wraparound across rows or
//     columns is ever produced.
//   - Conn4 links a cell to N, E, S, W. Conn8 adds NE, SE, SW, NW; cells on
//     edge rows, edge columns and corners simply have fewer neighbors.
//   - LabelComponents finds maximal connected sets of cells carrying the same
//     label (within a tolerance) with an explicit worklist BFS.
//   - ToGraph exports the topology as a gonum undirected graph for generic
//     graph algorithms.
//
// Determinism:
//
//	Neighbor lists are emitted in a fixed compass order
//	(N, NE, E, SE, S, SW, W, NW; Conn4 keeps N, E, S, W).
//
// Complexity:
//
//   - NewTopology:     O(W×H×d), Memory: O(W×H×d)   (d = 4 or 8).
//   - LabelComponents: O(W×H×d), Memory: O(W×H).
//   - ToGraph:         O(W×H×d).
//
// Errors:
//
//   - ErrInvalidShape: non-positive dimensions, W×H not matching the number of
//     cells supplied, or a neighbor index outside [0, W×H).
//   - ErrNonRectangular: rows of differing lengths in FromRows.
//   - ErrUnknownConnectivity: a Connectivity other than Conn4/Conn8.
package gridgraph
