package gridgraph

import "errors"

var (
	// ErrInvalidShape indicates dimensions that do not describe the supplied cells,
	// or a computed neighbor index outside the grid.
	ErrInvalidShape = errors.New("gridgraph: invalid grid shape")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownConnectivity indicates a Connectivity value other than Conn4 or Conn8.
	ErrUnknownConnectivity = errors.New("gridgraph: unknown connectivity")
)
