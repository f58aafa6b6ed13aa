package regions

import "gonum.org/v1/gonum/mat"

// Project returns a row-major array of the grid's shape holding each cell's
// group id, or its cluster value when the cell is ungrouped.
// Call after Compact so ids are dense.
func (g *Grid) Project() []float64 {
	out := make([]float64, len(g.cells))
	for i := range g.cells {
		if g.cells[i].Grouped() {
			out[i] = float64(g.cells[i].Group)
		} else {
			out[i] = g.cells[i].Cluster
		}
	}
	return out
}

// ProjectDense is Project shaped as a Height×Width matrix.
func (g *Grid) ProjectDense() *mat.Dense {
	return mat.NewDense(g.Height(), g.Width(), g.Project())
}
