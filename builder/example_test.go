// File: builder/example_test.go
package builder_test

import (
	"fmt"

	"github.com/katalvlaran/rastergroup/builder"
)

// ExampleBuildRows composes a background fill with a rectangle.
func ExampleBuildRows() {
	rows, _ := builder.BuildRows(5, 3, nil,
		builder.Fill(1),
		builder.Rect(1, 0, 2, 2, 2),
	)
	for _, r := range rows {
		fmt.Println(r)
	}
	// Output:
	// [1 2 2 1 1]
	// [1 2 2 1 1]
	// [1 1 1 1 1]
}

// ExampleWithCentroids renders stripes as k-means style centroids of [0,1].
func ExampleWithCentroids() {
	labels, _ := builder.BuildLabels(4, 1,
		[]builder.BuilderOption{builder.WithCentroids(0, 1, 4)},
		builder.Stripes(1, 0, 1, 2, 3),
	)
	fmt.Println(labels)
	// Output:
	// [0.125 0.375 0.625 0.875]
}
