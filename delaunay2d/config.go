// Package delaunay2d implements a 2D constrained Delaunay triangulator
// with alpha-shape filtering, built as an incremental
// insert-locate-flip pipeline: project input points to a plane,
// bootstrap a bounding ring, insert points one at a time restoring the
// Delaunay property by edge flips, recover embedded constraint edges,
// flood-fill interior/exterior classification from constraint polygons,
// optionally cut the mesh down to an alpha shape, and assemble the
// final triangle/line/vertex lists.
//
// Configuration uses the functional-options pattern: Config is built once
// via NewConfig and is immutable afterward.
package delaunay2d

import "github.com/iceisfun/delaunay2d/types"

// ProjectionPlaneMode selects how 3D input points are mapped to the 2D
// plane the triangulator actually operates on.
type ProjectionPlaneMode int

const (
	// ProjectionXY drops Z and triangulates X/Y directly. The default.
	ProjectionXY ProjectionPlaneMode = iota
	// ProjectionBestFittingPlane computes a least-squares plane through
	// the input points (via PCA) and projects onto it.
	ProjectionBestFittingPlane
)

// Config holds every tunable of a triangulation run. Build one with
// NewConfig; the zero value is not valid (use NewConfig so defaults are
// applied).
type Config struct {
	Alpha                 float64
	Tolerance             float64
	Offset                float64
	BoundingTriangulation bool
	RandomPointInsertion  bool
	ProjectionPlaneMode   ProjectionPlaneMode
	Transform             *types.Transform

	CancelSignal     func() bool
	ProgressCallback func(fraction float64)
}

// Option mutates a Config during construction.
type Option func(*Config)

// NewConfig builds a Config from the supplied options, applying defaults
// first. Offset defaults to 1.0 (see DESIGN.md for why).
func NewConfig(opts ...Option) Config {
	cfg := Config{
		Alpha:                 0.0,
		Tolerance:             1e-5,
		Offset:                1.0,
		BoundingTriangulation: false,
		RandomPointInsertion:  false,
		ProjectionPlaneMode:   ProjectionXY,
		Transform:             nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Offset <= 0 {
		cfg.Offset = 1.0
	}
	if cfg.Tolerance < 0 {
		cfg.Tolerance = 1e-5
	}
	return cfg
}

// WithAlpha sets the alpha-shape circumradius/half-edge-length cutoff.
// Zero (the default) disables alpha filtering.
func WithAlpha(a float64) Option {
	return func(c *Config) { c.Alpha = a }
}

// WithTolerance sets the multiplier on the input bounding diagonal used
// for edge-proximity and duplicate-point tests.
func WithTolerance(t float64) Option {
	return func(c *Config) { c.Tolerance = t }
}

// WithOffset sets the bounding-ring radius factor (ring radius = Offset
// * input diagonal).
func WithOffset(o float64) Option {
	return func(c *Config) { c.Offset = o }
}

// WithBoundingTriangulation controls whether ring-incident triangles are
// kept in the output.
func WithBoundingTriangulation(b bool) Option {
	return func(c *Config) { c.BoundingTriangulation = b }
}

// WithRandomPointInsertion enables the GCD-permuted insertion order.
func WithRandomPointInsertion(b bool) Option {
	return func(c *Config) { c.RandomPointInsertion = b }
}

// WithProjectionPlaneMode selects XY or best-fitting-plane projection.
func WithProjectionPlaneMode(m ProjectionPlaneMode) Option {
	return func(c *Config) { c.ProjectionPlaneMode = m }
}

// WithTransform supplies an explicit projection transform, mutually
// exclusive with best-fitting-plane mode: when both are requested the
// explicit transform wins and ProjectionPlaneMode is ignored; no warning
// is recorded for that combination.
func WithTransform(t *types.Transform) Option {
	return func(c *Config) { c.Transform = t }
}

// WithCancelSignal supplies a cooperative cancellation poll, checked
// every 1000 points during insertion.
func WithCancelSignal(fn func() bool) Option {
	return func(c *Config) { c.CancelSignal = fn }
}

// WithProgressCallback supplies a one-way progress callback invoked with
// the fraction of input points inserted so far.
func WithProgressCallback(fn func(fraction float64)) Option {
	return func(c *Config) { c.ProgressCallback = fn }
}
