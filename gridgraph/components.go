package gridgraph

import (
	"fmt"
	"math"
)

// LabelComponents finds every maximal connected set of cells whose labels are
// equal within eps (a == b or |a-b| < eps), according to t.Conn.
// Components are returned in order of their first cell (row-major); each
// component lists cell indices in BFS visit order, seed first.
//
// Returns ErrInvalidShape if len(labels) != t.Len().
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (t *Topology) LabelComponents(labels []float64, eps float64) ([][]int, error) {
	total := t.Len()
	if len(labels) != total {
		return nil, fmt.Errorf("%w: %d labels for %dx%d grid", ErrInvalidShape, len(labels), t.Width, t.Height)
	}
	seen := make([]bool, total)
	var comps [][]int

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] {
			continue
		}
		label := labels[i0]
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range t.adj[u] {
				if seen[v] {
					continue
				}
				if w := labels[v]; w != label && math.Abs(w-label) >= eps {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		comps = append(comps, queue)
	}

	return comps, nil
}
