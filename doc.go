// Package rastergroup turns a raster of per-cell cluster labels into maximal
// spatially connected regions with dense integer ids.
//
// What is rastergroup?
//
//	A small, deterministic library that sits between a pixel classifier and
//	a polygon vectorizer:
//		• Topology: 4- or 8-connected neighbor tables over a W×H raster
//		• Region growing: one pass per cluster, merge-on-contact with a
//		  largest-wins union-find, or flood fill
//		• Compaction: surviving groups renumbered to 0..n-1, per-cluster
//		  id ranges kept for traceability
//		• Projection: group ids rendered back into a raster
//
// Packages:
//
//	gridgraph/ - raster topology: Conn4/Conn8 neighbor tables, equal-label components
//	regions/   - Grid, region growing, compaction, verification, projection
//	builder/   - deterministic label rasters for tests, benchmarks and demos
//	config/    - TOML run configuration
//	pipeline/  - load → group → verify → project → vectorize runner
//
// Quick example:
//
//	 1 1 2        0 0 1
//	 3 1 2   →    2 0 1
//
//	g, _ := regions.FromRows([][]float64{{1, 1, 2}, {3, 1, 2}})
//	g.GroupAll()
//	g.Project() // [0 0 1 2 0 1]
//
// See examples/terrain_regions.go for an end-to-end run.
package rastergroup
