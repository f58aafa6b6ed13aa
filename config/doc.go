// Package config loads grouping runs from TOML.
//
// A configuration file looks like:
//
//	connectivity = 8          # 4 or 8
//	epsilon      = 1e-5       # cluster equality tolerance
//	strategy     = "merge"    # "merge" or "floodfill"
//	clusters     = [0.1, 0.6] # optional; empty means every cluster
//	log_level    = "info"     # debug, info, warn, error
//
// Missing keys keep the values from Default. Unknown keys are rejected so
// that a misspelled option does not silently fall back to its default.
package config
