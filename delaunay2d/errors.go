package delaunay2d

import "errors"

// Programming-contract sentinel errors. Everything else the triangulator
// encounters (duplicate points, near-degenerate walks, unrecovered
// constraints, flip overflow) is a counter/warning, not an error: those
// conditions are expected to occur on real-world input and do not
// indicate misuse of the API.
var (
	// ErrInvalidVertexID is returned when a constraint source references
	// a point index outside [0, N).
	ErrInvalidVertexID = errors.New("delaunay2d: constraint references out-of-range vertex id")
	// ErrDegenerateConstraintEdge is returned when a constraint edge has
	// coincident endpoints.
	ErrDegenerateConstraintEdge = errors.New("delaunay2d: constraint edge has coincident endpoints")
)
