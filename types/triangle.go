package types

import "math"

// Triangle is an ordered triple of point indices. The mesh never stores a
// Triangle with a repeated index.
type Triangle [3]int

// Edges returns the triangle's three edges in canonical form, in the
// order (v0,v1), (v1,v2), (v2,v0).
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{
		NewEdge(t[0], t[1]),
		NewEdge(t[1], t[2]),
		NewEdge(t[2], t[0]),
	}
}

// HasVertex reports whether v is one of the triangle's three indices.
func (t Triangle) HasVertex(v int) bool {
	return t[0] == v || t[1] == v || t[2] == v
}

// PolygonLoop is a closed loop of point indices; the last vertex connects
// back to the first (the first vertex is not repeated at the end).
type PolygonLoop []int

// Edges returns the loop's edges, treating it as closed.
func (p PolygonLoop) Edges() []Edge {
	if len(p) == 0 {
		return nil
	}
	out := make([]Edge, len(p))
	for i := range p {
		out[i] = NewEdge(p[i], p[(i+1)%len(p)])
	}
	return out
}

// AABB is an axis-aligned bounding box in the working 2D plane, inclusive
// on all sides.
type AABB struct {
	Min Point
	Max Point
}

// Diagonal returns the Euclidean length of the box's diagonal, used as the
// base length for tolerance and bounding-ring scaling.
func (b AABB) Diagonal() float64 {
	return math.Hypot(b.Max.X-b.Min.X, b.Max.Y-b.Min.Y)
}

// Center returns the box's midpoint.
func (b AABB) Center() Point {
	return Point{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}
