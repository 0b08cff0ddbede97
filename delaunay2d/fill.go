package delaunay2d

import (
	"github.com/iceisfun/delaunay2d/geom"
	"github.com/iceisfun/delaunay2d/mesh"
	"github.com/iceisfun/delaunay2d/types"
)

// fillClassification holds each live triangle's inside/outside mark.
// Triangles absent from the map are implicitly inside, since an area
// untouched by any constraint polygon is unrestricted.
type fillClassification map[types.TriID]int

const (
	classOutside   = 0
	classTentative = -1
	classInside    = 1
)

func (c fillClassification) get(t types.TriID) int {
	if v, ok := c[t]; ok {
		return v
	}
	return classInside
}

// classifyPolygons marks, for each constraint polygon, which triangles
// fall inside or outside its boundary: it marks the triangles
// immediately touching the polygon's edges as outside or tentative by
// the sign of their apex against the edge's outward half-plane, flood
// fills the outside mark across unconstrained edges, then promotes any
// triangle still tentative to inside.
func classifyPolygons(m *mesh.Mesh, polygons []types.PolygonLoop, constrained constrainedEdges, diag *types.Diagnostics) fillClassification {
	classify := fillClassification{}
	if len(polygons) == 0 {
		return classify
	}

	for _, poly := range polygons {
		ok := true
		for _, e := range poly.Edges() {
			if !m.IsEdge(e.A(), e.B()) {
				ok = false
				break
			}
		}
		if !ok {
			diag.Warn(types.WarnPolygonFillSkipped, "constraint polygon missing a recovered edge; fill skipped")
			continue
		}

		// The outward direction is the edge vector crossed with +z, so it
		// depends on traversal order along the loop: walk directed edges
		// rather than the canonicalized Edges() form.
		for i := range poly {
			a, b := poly[i], poly[(i+1)%len(poly)]
			p1, p2 := m.Point(a), m.Point(b)
			nx, ny := geom.OutwardNormal(p1, p2)

			for _, t := range m.CellEdgeNeighbors(types.NilTri, a, b) {
				apex := mesh.OppositeVertex(m.CellPoints(t), a, b)
				sign := geom.HalfPlaneSign(p1, nx, ny, m.Point(apex))
				if sign > 0 {
					classify[t] = classOutside
				} else if _, already := classify[t]; !already {
					classify[t] = classTentative
				}
			}
		}

		floodFillOutside(m, classify, constrained)
	}

	for t, v := range classify {
		if v == classTentative {
			classify[t] = classInside
		}
	}
	return classify
}

// floodFillOutside propagates the outside (0) mark from every
// currently-outside triangle across unconstrained edges to any
// unvisited-or-default (implicitly inside) neighbor.
func floodFillOutside(m *mesh.Mesh, classify fillClassification, constrained constrainedEdges) {
	var queue []types.TriID
	for t, v := range classify {
		if v == classOutside {
			queue = append(queue, t)
		}
	}

	for len(queue) > 0 {
		t := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		tri := m.CellPoints(t)
		for _, e := range tri.Edges() {
			if constrained.has(e.A(), e.B()) {
				continue
			}
			neighbor, ok := m.SingleEdgeNeighbor(t, e.A(), e.B())
			if !ok {
				continue
			}
			if classify.get(neighbor) == classOutside {
				continue
			}
			classify[neighbor] = classOutside
			queue = append(queue, neighbor)
		}
	}
}
