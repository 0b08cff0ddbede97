package geom

import (
	"math"

	"github.com/iceisfun/delaunay2d/types"
)

// Cross returns the 2D (scalar) cross product of vectors (ax,ay) and
// (bx,by).
func Cross(ax, ay, bx, by float64) float64 {
	return ax*by - ay*bx
}

// Dot returns the dot product of vectors (ax,ay) and (bx,by).
func Dot(ax, ay, bx, by float64) float64 {
	return ax*bx + ay*by
}

// Sub returns b-a as a vector.
func Sub(a, b types.Point) (dx, dy float64) {
	return b.X - a.X, b.Y - a.Y
}

// Normalize returns (x,y) scaled to unit length and its original length.
// The zero vector is returned unchanged with length 0.
func Normalize(x, y float64) (nx, ny, length float64) {
	length = math.Hypot(x, y)
	if length == 0 {
		return 0, 0, 0
	}
	return x / length, y / length, length
}

// OutwardNormal returns the 2D outward normal of directed edge a->b: the
// edge vector rotated -90 degrees, i.e. (dy, -dx). "Outward" is relative
// to a CCW-wound triangle that has a->b as one of its edges.
func OutwardNormal(a, b types.Point) (nx, ny float64) {
	dx, dy := Sub(a, b)
	return dy, -dx
}

// HalfPlaneSign evaluates n . (x - p): positive when x lies on the side
// the normal n points toward.
func HalfPlaneSign(p types.Point, nx, ny float64, x types.Point) float64 {
	return Dot(nx, ny, x.X-p.X, x.Y-p.Y)
}

// TriangleNormalSign returns the sign of triangle (a,b,c)'s normal along
// +z: positive for CCW winding, negative for CW, zero for collinear.
// Adjacent surviving triangles are expected to agree on this sign.
func TriangleNormalSign(a, b, c types.Point) float64 {
	ax, ay := Sub(a, b)
	bx, by := Sub(a, c)
	return Cross(ax, ay, bx, by)
}

// PointInTriangle reports whether p lies inside or on triangle (a,b,c),
// within tolerance tol, regardless of the triangle's winding. This is an
// epsilon-tolerant point test, deliberately separate from Orient2D's
// exact/adaptive predicate: point location needs to accept points that
// land exactly on an edge within tolerance, not just strictly inside.
func PointInTriangle(p, a, b, c types.Point, tol float64) bool {
	area := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	if math.Abs(area) <= tol {
		return false
	}

	o1 := orientEps(a, b, p, tol)
	o2 := orientEps(b, c, p, tol)
	o3 := orientEps(c, a, p, tol)

	return (o1 >= 0 && o2 >= 0 && o3 >= 0) || (o1 <= 0 && o2 <= 0 && o3 <= 0)
}

func orientEps(a, b, c types.Point, tol float64) int {
	area := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	if area > tol {
		return 1
	}
	if area < -tol {
		return -1
	}
	return 0
}

// Centroid returns the average of the three vertices.
func Centroid(a, b, c types.Point) types.Point {
	return types.Point{X: (a.X + b.X + c.X) / 3, Y: (a.Y + b.Y + c.Y) / 3}
}

// BBox computes the axis-aligned bounding box of the supplied points.
func BBox(pts []types.Point) types.AABB {
	if len(pts) == 0 {
		return types.AABB{}
	}
	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return types.AABB{Min: types.Point{X: minX, Y: minY}, Max: types.Point{X: maxX, Y: maxY}}
}
