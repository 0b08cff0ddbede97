package delaunay2d

import "github.com/iceisfun/delaunay2d/types"

// PointSource is the external collaborator supplying input geometry: an
// indexed set of 3D points with a bounding box.
type PointSource interface {
	// NumPoints returns the number of input points, N. Valid indices are
	// [0, N).
	NumPoints() int
	// Point returns the coordinates of point i.
	Point(i int) types.Point3
	// Bounds returns the axis-aligned bounding box (in 3-space, as the
	// projection of min/max per-axis) of the point set.
	Bounds() (min, max types.Point3)
}

// ConstraintSource is the optional external collaborator supplying
// constraint geometry: indexed polylines and polygons over the same
// point indices as the PointSource.
type ConstraintSource interface {
	// NumPolylines returns the number of constraint polylines (open
	// chains; recovered as individual edges, not filled).
	NumPolylines() int
	// Polyline returns the point indices of polyline i, in order.
	Polyline(i int) []int
	// NumPolygons returns the number of constraint polygons (closed
	// loops; recovered as edges and used to flood-fill interior/exterior
	// classification).
	NumPolygons() int
	// Polygon returns the point indices of polygon i, in winding order,
	// without repeating the first vertex at the end.
	Polygon(i int) []int
}

// SlicePointSource is a PointSource backed by a plain slice, useful for
// tests and simple callers.
type SlicePointSource []types.Point3

func (s SlicePointSource) NumPoints() int          { return len(s) }
func (s SlicePointSource) Point(i int) types.Point3 { return s[i] }

func (s SlicePointSource) Bounds() (min, max types.Point3) {
	if len(s) == 0 {
		return types.Point3{}, types.Point3{}
	}
	min, max = s[0], s[0]
	for _, p := range s[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	return min, max
}

// PolygonConstraintSource is a ConstraintSource backed by plain slices.
type PolygonConstraintSource struct {
	Polylines [][]int
	Polygons  [][]int
}

func (c PolygonConstraintSource) NumPolylines() int    { return len(c.Polylines) }
func (c PolygonConstraintSource) Polyline(i int) []int { return c.Polylines[i] }
func (c PolygonConstraintSource) NumPolygons() int     { return len(c.Polygons) }
func (c PolygonConstraintSource) Polygon(i int) []int  { return c.Polygons[i] }

// Result is the output of a triangulation run.
type Result struct {
	// Points is the output point array. When BoundingTriangulation is on
	// and no transform/best-fit plane is applied, this includes the
	// eight ring points; otherwise it equals the input point set.
	Points []types.Point3

	// Triangles is the surviving triangle list, referencing Points by
	// index.
	Triangles []types.Triangle

	// Lines holds alpha-filtered free edges; empty unless Alpha > 0.
	Lines []types.Edge

	// Verts holds alpha-filtered free vertices; empty unless Alpha > 0.
	Verts []types.VertexID

	Diagnostics types.Diagnostics
	Warnings    []types.Warning
}
