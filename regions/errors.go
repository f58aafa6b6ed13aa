// SPDX-License-Identifier: MIT
// Package: rastergroup/regions
//
// errors.go - sentinel errors for the regions package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the failing call site.
//   • ErrClusterMismatch, ErrUnflattenedRedirection and ErrSplitRegion signal a
//     defect in topology or merge bookkeeping. They abort the run; the grid is
//     left as-is for inspection and must not be projected.

package regions

import (
	"errors"

	"github.com/katalvlaran/rastergroup/gridgraph"
)

// ErrInvalidShape indicates width×height does not match the number of cells,
// or a neighbor index fell outside the grid. It is the same value as
// gridgraph.ErrInvalidShape so either can be matched.
var ErrInvalidShape = gridgraph.ErrInvalidShape

// ErrInvalidLabel indicates a NaN cluster label. NaN never compares equal to
// anything, so such a cell could never be grouped.
var ErrInvalidLabel = errors.New("regions: cluster label is NaN")

// ErrClusterMismatch indicates a neighbor relation or group assignment that
// crosses cluster values.
var ErrClusterMismatch = errors.New("regions: cluster mismatch")

// ErrUnflattenedRedirection indicates that after redirections were applied a
// cell still sits in a redirected group, or that size bookkeeping disagrees
// with cell membership.
var ErrUnflattenedRedirection = errors.New("regions: unflattened redirection")

// ErrSplitRegion indicates two adjacent cells of the same cluster ended up in
// different groups.
var ErrSplitRegion = errors.New("regions: connected cells split across groups")

// ErrUnknownGroup indicates a group id outside the current id space.
var ErrUnknownGroup = errors.New("regions: unknown group id")

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("regions: invalid option supplied")
