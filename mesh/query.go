package mesh

import (
	"github.com/iceisfun/delaunay2d/geom"
	"github.com/iceisfun/delaunay2d/types"
)

// OppositeVertex returns the cell's third vertex, the one that is neither
// a nor b. Panics if the cell does not have both a and b as vertices,
// which would indicate a caller bug rather than a recoverable condition.
func OppositeVertex(tri types.Triangle, a, b int) int {
	for _, v := range tri {
		if v != a && v != b {
			return v
		}
	}
	panic("mesh: triangle does not contain both edge endpoints")
}

// SingleEdgeNeighbor returns the unique live cell sharing edge (a,b) with
// t, excluding t itself, and true if exactly one such neighbor exists.
// Flipping and legalization only ever act on manifold interior edges, so
// callers use this instead of the general CellEdgeNeighbors when they
// expect exactly zero or one neighbor.
func (m *Mesh) SingleEdgeNeighbor(t types.TriID, a, b int) (types.TriID, bool) {
	others := m.CellEdgeNeighbors(t, a, b)
	if len(others) != 1 {
		return types.NilTri, false
	}
	return others[0], true
}

// CellCentroid returns the centroid of cell t's three vertices.
func (m *Mesh) CellCentroid(t types.TriID) types.Point {
	tri := m.cells[t]
	return geom.Centroid(m.points[tri[0]], m.points[tri[1]], m.points[tri[2]])
}

// CellCoords returns the three vertex coordinates of cell t.
func (m *Mesh) CellCoords(t types.TriID) (a, b, c types.Point) {
	tri := m.cells[t]
	return m.points[tri[0]], m.points[tri[1]], m.points[tri[2]]
}

// RotateToVertex returns the triangle's vertices starting at v, preserving
// winding order: (v, next, next2). Panics if v is not in tri.
func RotateToVertex(tri types.Triangle, v int) (a, b, c int) {
	for i, vv := range tri {
		if vv == v {
			return tri[i], tri[(i+1)%3], tri[(i+2)%3]
		}
	}
	panic("mesh: triangle does not contain vertex")
}

// LocalEdgeIndex returns which of the triangle's three canonical edges
// (v0,v1), (v1,v2), (v2,v0) matches (a,b), or -1 if none does.
func LocalEdgeIndex(tri types.Triangle, a, b int) int {
	e := types.NewEdge(a, b)
	edges := tri.Edges()
	for i, te := range edges {
		if te == e {
			return i
		}
	}
	return -1
}

// HasPositiveArea reports whether cell t has non-degenerate (non-collinear)
// area under Orient2D.
func (m *Mesh) HasPositiveArea(t types.TriID) bool {
	a, b, c := m.CellCoords(t)
	return geom.Orient2D(a, b, c) != 0
}
