// Package mesh implements a mutable planar triangle complex: a point
// array plus a set of triangle "cells" referencing it by index, with
// bidirectional point<->cell adjacency maintained incrementally as cells
// are inserted, replaced, and removed.
//
// Adjacency is tracked two ways: an edge->cells index for flip and
// walk neighbor lookups, and a point->cells index so every vertex can
// enumerate its incident triangles directly, without scanning the edge
// index.
package mesh

import (
	"fmt"

	"github.com/iceisfun/delaunay2d/types"
)

// deletedMarker is the vertex triple a removed cell slot is overwritten
// with, marking free slots via an impossible vertex triple rather than a
// separate boolean array.
var deletedMarker = types.Triangle{-1, -1, -1}

// Mesh is the planar triangle complex: a point array and a set of
// triangles over it, with point->cells and edge->cells adjacency kept in
// sync on every mutation.
type Mesh struct {
	points []types.Point
	cells  []types.Triangle

	pointCells [][]types.TriID
	edgeCells  map[types.Edge][]types.TriID

	freeList []types.TriID
}

// New creates an empty mesh seeded with the given points. Points are never
// removed once added; the point array only grows. Cells may be inserted,
// replaced, and removed freely.
func New(points []types.Point) *Mesh {
	m := &Mesh{
		points:     append([]types.Point(nil), points...),
		pointCells: make([][]types.TriID, len(points)),
		edgeCells:  make(map[types.Edge][]types.TriID),
	}
	return m
}

// NumPoints returns the number of points in the mesh's point array.
func (m *Mesh) NumPoints() int { return len(m.points) }

// NumCells returns the number of cell slots, including any marked deleted.
func (m *Mesh) NumCells() int { return len(m.cells) }

// Point returns the coordinates of point v.
func (m *Mesh) Point(v int) types.Point { return m.points[v] }

// Points returns the mesh's full point array. The caller must not mutate
// the returned slice.
func (m *Mesh) Points() []types.Point { return m.points }

// AddPoint appends a new point to the mesh and returns its index.
func (m *Mesh) AddPoint(p types.Point) int {
	m.points = append(m.points, p)
	m.pointCells = append(m.pointCells, nil)
	return len(m.points) - 1
}

// IsDeleted reports whether cell t has been removed.
func (m *Mesh) IsDeleted(t types.TriID) bool {
	if int(t) < 0 || int(t) >= len(m.cells) {
		return true
	}
	return m.cells[t] == deletedMarker
}

// CellPoints returns the three point indices of cell t, in winding order.
func (m *Mesh) CellPoints(t types.TriID) types.Triangle {
	return m.cells[t]
}

// PointCells returns the (unordered) list of cells referencing point v.
// The caller must not mutate the returned slice.
func (m *Mesh) PointCells(v int) []types.TriID {
	return m.pointCells[v]
}

// IsEdge reports whether any live cell has an edge between points a and b.
func (m *Mesh) IsEdge(a, b int) bool {
	cells := m.edgeCells[types.NewEdge(a, b)]
	return len(cells) > 0
}

// CellEdgeNeighbors returns the live cells sharing edge (a,b), excluding t
// itself. In a valid manifold mesh this has at most one element for an
// interior edge and zero for a boundary edge; during constraint recovery
// and polygon fill it may transiently be queried on edges with more.
func (m *Mesh) CellEdgeNeighbors(t types.TriID, a, b int) []types.TriID {
	var out []types.TriID
	for _, c := range m.edgeCells[types.NewEdge(a, b)] {
		if c != t {
			out = append(out, c)
		}
	}
	return out
}

// ResizeCellList reserves capacity for delta additional cell references on
// point v's adjacency list, avoiding repeated reallocation when a caller
// knows in advance how many cells will reference v (e.g. during bulk
// polygon triangulation).
func (m *Mesh) ResizeCellList(v int, delta int) {
	if delta <= 0 {
		return
	}
	cur := m.pointCells[v]
	if cap(cur)-len(cur) >= delta {
		return
	}
	grown := make([]types.TriID, len(cur), len(cur)+delta)
	copy(grown, cur)
	m.pointCells[v] = grown
}

// AddReference records that cell t references point v.
func (m *Mesh) AddReference(v int, t types.TriID) {
	m.pointCells[v] = append(m.pointCells[v], t)
}

// RemoveReference removes cell t from point v's adjacency list, if present.
func (m *Mesh) RemoveReference(v int, t types.TriID) {
	list := m.pointCells[v]
	for i, c := range list {
		if c == t {
			list[i] = list[len(list)-1]
			m.pointCells[v] = list[:len(list)-1]
			return
		}
	}
}

// InsertLinkedCell allocates a new cell over (v0,v1,v2), reusing a freed
// slot when available, and registers it in the point and edge adjacency
// tables. Vertices must be supplied in the winding order the caller wants
// the cell to have; this method does not reorient.
func (m *Mesh) InsertLinkedCell(v0, v1, v2 int) types.TriID {
	tri := types.Triangle{v0, v1, v2}

	var id types.TriID
	if n := len(m.freeList); n > 0 {
		id = m.freeList[n-1]
		m.freeList = m.freeList[:n-1]
		m.cells[id] = tri
	} else {
		id = types.TriID(len(m.cells))
		m.cells = append(m.cells, tri)
	}

	m.registerCell(id, tri)
	return id
}

// ReplaceCell overwrites cell t's vertices in place, preserving its TriID
// so callers holding it don't need to re-resolve it, and updates the
// point and edge adjacency tables to match.
func (m *Mesh) ReplaceCell(t types.TriID, v0, v1, v2 int) {
	old := m.cells[t]
	m.unregisterCell(t, old)

	tri := types.Triangle{v0, v1, v2}
	m.cells[t] = tri
	m.registerCell(t, tri)
}

// RemoveCell deletes cell t, freeing its slot for reuse and clearing its
// point/edge adjacency entries.
func (m *Mesh) RemoveCell(t types.TriID) {
	old := m.cells[t]
	if old == deletedMarker {
		return
	}
	m.unregisterCell(t, old)
	m.cells[t] = deletedMarker
	m.freeList = append(m.freeList, t)
}

func (m *Mesh) registerCell(t types.TriID, tri types.Triangle) {
	for _, v := range tri {
		m.AddReference(v, t)
	}
	for _, e := range tri.Edges() {
		m.edgeCells[e] = append(m.edgeCells[e], t)
	}
}

func (m *Mesh) unregisterCell(t types.TriID, tri types.Triangle) {
	for _, v := range tri {
		m.RemoveReference(v, t)
	}
	for _, e := range tri.Edges() {
		list := m.edgeCells[e]
		for i, c := range list {
			if c == t {
				list[i] = list[len(list)-1]
				list = list[:len(list)-1]
				break
			}
		}
		if len(list) == 0 {
			delete(m.edgeCells, e)
		} else {
			m.edgeCells[e] = list
		}
	}
}

// LiveCells returns the TriIDs of all non-deleted cells, in slot order.
func (m *Mesh) LiveCells() []types.TriID {
	out := make([]types.TriID, 0, len(m.cells))
	for i, tri := range m.cells {
		if tri != deletedMarker {
			out = append(out, types.TriID(i))
		}
	}
	return out
}

// Validate checks the mesh's internal invariants: every cell's vertices
// are in range, every cell appears in its three vertices' adjacency
// lists, and every cell's three edges are registered in the edge table.
func (m *Mesh) Validate() error {
	for _, t := range m.LiveCells() {
		tri := m.cells[t]
		for _, v := range tri {
			if v < 0 || v >= len(m.points) {
				return fmt.Errorf("mesh: cell %d references out-of-range point %d", t, v)
			}
			if !containsTri(m.pointCells[v], t) {
				return fmt.Errorf("mesh: point %d missing back-reference to cell %d", v, t)
			}
		}
		for _, e := range tri.Edges() {
			if !containsTri(m.edgeCells[e], t) {
				return fmt.Errorf("mesh: edge %v missing back-reference to cell %d", e, t)
			}
		}
	}
	return nil
}

func containsTri(list []types.TriID, t types.TriID) bool {
	for _, c := range list {
		if c == t {
			return true
		}
	}
	return false
}
