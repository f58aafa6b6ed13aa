// SPDX-License-Identifier: MIT
// Package: rastergroup/regions
//
// grid.go - Grid construction and read accessors.

package regions

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rastergroup/gridgraph"
)

// Grid owns the cells of one raster and all group bookkeeping for a grouping
// run. A Grid is not safe for concurrent use.
type Grid struct {
	topo *gridgraph.Topology
	opts Options
	log  *log.Logger

	cells []Cell

	// sizes[id] is the live cell count of group id. owner[id] is the cluster
	// value the group was created for. Both grow with next.
	sizes []int
	owner []float64
	next  int

	registry []ClusterRange

	compacted bool
}

// NewGrid builds a Grid from row-major cluster labels.
// Returns ErrInvalidShape if width×height != len(labels), ErrInvalidLabel on a
// NaN or infinite label, or ErrOptionViolation for a bad Option.
// Complexity: O(W×H×d).
func NewGrid(width, height int, labels []float64, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	topo, err := gridgraph.NewTopology(width, height, o.Conn)
	if err != nil {
		return nil, err
	}
	if topo.Len() != len(labels) {
		return nil, fmt.Errorf("%w: %dx%d does not hold %d cells", ErrInvalidShape, width, height, len(labels))
	}

	cells := make([]Cell, len(labels))
	for i, v := range labels {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: cell %d is %v", ErrInvalidLabel, i, v)
		}
		x, y := topo.Coordinate(i)
		cells[i] = Cell{Row: y, Col: x, Cluster: v, Group: NoGroup}
	}

	return &Grid{
		topo:  topo,
		opts:  o,
		log:   o.Logger.With("conn", o.Conn.String(), "strategy", o.Strategy.String()),
		cells: cells,
	}, nil
}

// FromRows builds a Grid from a rectangular [][]float64 (rows[y][x]).
func FromRows(rows [][]float64, opts ...Option) (*Grid, error) {
	labels, w, h, err := gridgraph.FromRows(rows)
	if err != nil {
		return nil, err
	}
	return NewGrid(w, h, labels, opts...)
}

// FromDense builds a Grid from a label matrix; m.At(row, col) is the label of
// cell (row, col).
func FromDense(m mat.Matrix, opts ...Option) (*Grid, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil matrix", ErrInvalidShape)
	}
	h, w := m.Dims()
	labels := make([]float64, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			labels = append(labels, m.At(y, x))
		}
	}
	return NewGrid(w, h, labels, opts...)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.topo.Width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.topo.Height }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Topology returns the neighbor table the grid was built with.
func (g *Grid) Topology() *gridgraph.Topology { return g.topo }

// Options returns the resolved options.
func (g *Grid) Options() Options { return g.opts }

// Cell returns the cell at (row, col).
func (g *Grid) Cell(row, col int) (Cell, error) {
	if !g.topo.InBounds(col, row) {
		return Cell{}, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrInvalidShape, row, col, g.Width(), g.Height())
	}
	return g.cells[g.topo.Index(col, row)], nil
}

// Cells returns a copy of all cells in row-major order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Groups returns a copy of every cell's group id in row-major order
// (NoGroup for ungrouped cells).
func (g *Grid) Groups() []int {
	out := make([]int, len(g.cells))
	for i := range g.cells {
		out[i] = g.cells[i].Group
	}
	return out
}

// Sizes returns a copy of the group-size table indexed by group id.
// Before Compact it may hold zero entries for merged-away groups.
func (g *Grid) Sizes() []int {
	out := make([]int, len(g.sizes))
	copy(out, g.sizes)
	return out
}

// NextID returns the group id the next allocation will use.
func (g *Grid) NextID() int { return g.next }

// NumGroups returns the number of groups with at least one cell.
func (g *Grid) NumGroups() int {
	n := 0
	for _, s := range g.sizes {
		if s > 0 {
			n++
		}
	}
	return n
}

// Compacted reports whether the id space is dense: Compact ran and no pass
// allocated ids since.
func (g *Grid) Compacted() bool { return g.compacted }

// Registry returns the per-cluster id ranges in the order clusters were processed.
func (g *Grid) Registry() []ClusterRange {
	out := make([]ClusterRange, len(g.registry))
	copy(out, g.registry)
	return out
}

// ClusterRange returns the id range registered for cluster c.
func (g *Grid) ClusterRange(c float64) (Range, bool) {
	for _, cr := range g.registry {
		if g.same(cr.Cluster, c) {
			return cr.Range, true
		}
	}
	return Range{}, false
}

// Clusters returns the distinct cluster values in first-encounter (row-major) order.
func (g *Grid) Clusters() []float64 {
	var out []float64
	for i := range g.cells {
		c := g.cells[i].Cluster
		known := false
		for _, v := range out {
			if g.same(v, c) {
				known = true
				break
			}
		}
		if !known {
			out = append(out, c)
		}
	}
	return out
}

// CellsOfGroup returns the row-major indices of the cells in group id.
// Returns ErrUnknownGroup if id is outside [0, NextID()).
func (g *Grid) CellsOfGroup(id int) ([]int, error) {
	if id < 0 || id >= g.next {
		return nil, fmt.Errorf("%w: %d (next id %d)", ErrUnknownGroup, id, g.next)
	}
	out := make([]int, 0, g.sizes[id])
	for i := range g.cells {
		if g.cells[i].Group == id {
			out = append(out, i)
		}
	}
	return out, nil
}

// same reports whether two cluster values are equal within Epsilon.
// The bound is strict; exact equality always matches, so Epsilon 0 compares exactly.
func (g *Grid) same(a, b float64) bool {
	return a == b || math.Abs(a-b) < g.opts.Epsilon
}

// allocate opens a new empty group owned by cluster c.
func (g *Grid) allocate(c float64) int {
	id := g.next
	g.next++
	g.sizes = append(g.sizes, 0)
	g.owner = append(g.owner, c)
	return id
}
