package gridgraph

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
)

// Neighbors computes the neighbor table for a width×height raster holding
// cells values. It is the functional form of NewTopology: deterministic and
// free of side effects.
// Returns ErrInvalidShape if width or height is not positive or if
// width×height != cells, ErrUnknownConnectivity for an unsupported conn.
// Complexity: O(W×H×d) time and memory.
func Neighbors(width, height, cells int, conn Connectivity) ([][]int, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidShape, width, height)
	}
	if width*height != cells {
		return nil, fmt.Errorf("%w: %dx%d does not hold %d cells", ErrInvalidShape, width, height, cells)
	}
	var offsets [][2]int
	switch conn {
	case Conn4:
		offsets = offsets4
	case Conn8:
		offsets = offsets8
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownConnectivity, int(conn))
	}

	total := width * height
	adj := make([][]int, total)
	// One backing array for all lists; rows are sliced out of it with a cap limit
	// so no list can grow into its successor.
	backing := make([]int, 0, total*len(offsets))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			start := len(backing)
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				n := ny*width + nx
				if n < 0 || n >= total {
					return nil, fmt.Errorf("%w: neighbor %d of cell %d", ErrInvalidShape, n, y*width+x)
				}
				backing = append(backing, n)
			}
			adj[y*width+x] = backing[start:len(backing):len(backing)]
		}
	}

	return adj, nil
}

// NewTopology builds the neighbor table for a width×height raster.
// Complexity: O(W×H×d) time and memory.
func NewTopology(width, height int, conn Connectivity) (*Topology, error) {
	adj, err := Neighbors(width, height, width*height, conn)
	if err != nil {
		return nil, err
	}

	return &Topology{
		Width:  width,
		Height: height,
		Conn:   conn,
		adj:    adj,
	}, nil
}

// FromRows flattens a rectangular [][]float64 into row-major order.
// Returns ErrInvalidShape if there are no rows or no columns and
// ErrNonRectangular if any row length differs.
func FromRows(rows [][]float64) (values []float64, width, height int, err error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, 0, 0, fmt.Errorf("%w: empty grid", ErrInvalidShape)
	}
	height, width = len(rows), len(rows[0])
	values = make([]float64, 0, width*height)
	for y, row := range rows {
		if len(row) != width {
			return nil, 0, 0, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), width)
		}
		values = append(values, row...)
	}

	return values, width, height, nil
}

// Len returns the number of cells, Width×Height.
func (t *Topology) Len() int {
	return t.Width * t.Height
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (t *Topology) InBounds(x, y int) bool {
	return x >= 0 && x < t.Width && y >= 0 && y < t.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (t *Topology) Index(x, y int) int {
	return y*t.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (t *Topology) Coordinate(idx int) (x, y int) {
	return idx % t.Width, idx / t.Width
}

// NeighborsOf returns the neighbor indices of cell i in compass order.
// The returned slice is shared with the Topology and must not be modified.
func (t *Topology) NeighborsOf(i int) []int {
	return t.adj[i]
}

// Validate re-checks the table: every index in range, no self-reference,
// and symmetric adjacency (j lists i whenever i lists j).
// Complexity: O(W×H×d²).
func (t *Topology) Validate() error {
	total := t.Len()
	if len(t.adj) != total {
		return fmt.Errorf("%w: %d neighbor lists for %d cells", ErrInvalidShape, len(t.adj), total)
	}
	for i, ns := range t.adj {
		for _, j := range ns {
			if j < 0 || j >= total || j == i {
				return fmt.Errorf("%w: cell %d lists neighbor %d", ErrInvalidShape, i, j)
			}
			if !contains(t.adj[j], i) {
				return fmt.Errorf("%w: adjacency %d->%d is not symmetric", ErrInvalidShape, i, j)
			}
		}
	}

	return nil
}

// ToGraph converts the topology into an undirected gonum graph.
// Node IDs are row-major cell indices; one edge per adjacent pair.
// Complexity: O(W×H×d).
func (t *Topology) ToGraph() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < t.Len(); i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	for i, ns := range t.adj {
		for _, j := range ns {
			if j < i {
				continue // already added from the other side
			}
			g.SetEdge(g.NewEdge(simple.Node(int64(i)), simple.Node(int64(j))))
		}
	}

	return g
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
