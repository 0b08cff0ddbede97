package delaunay2d

import (
	"github.com/iceisfun/delaunay2d/geom"
	"github.com/iceisfun/delaunay2d/mesh"
	"github.com/iceisfun/delaunay2d/types"
)

// candidateSurvivors selects the triangles eligible to appear in the
// final output: starting from every live cell, it drops triangles
// touching a bounding-ring point unless BoundingTriangulation is on, then
// intersects with the fill classification (if any constraint polygons
// were processed).
func candidateSurvivors(m *mesh.Mesh, ringStart int, bt bool, fill fillClassification, hasPolygons bool) map[types.TriID]bool {
	out := map[types.TriID]bool{}
	for _, t := range m.LiveCells() {
		if !m.HasPositiveArea(t) {
			continue
		}
		if !bt {
			tri := m.CellPoints(t)
			touchesRing := tri[0] >= ringStart || tri[1] >= ringStart || tri[2] >= ringStart
			if touchesRing {
				continue
			}
		}
		if hasPolygons && fill.get(t) != classInside {
			continue
		}
		out[t] = true
	}
	return out
}

// orphanRescue handles every input point left with no surviving incident
// triangle: it tries to swap the diagonal of a neighboring quadrilateral
// (both edge endpoints input points, normals of the two candidate
// triangles agreeing) into the survivor set.
//
// Only invoked when BoundingTriangulation is off, Alpha is 0, and there
// is no constraint source — rescuing orphaned points by diagonal swap
// would otherwise fight with ring-point retention, alpha filtering, or
// polygon fill classification.
func orphanRescue(m *mesh.Mesh, n int, candidates map[types.TriID]bool) {
	for v := 0; v < n; v++ {
		if pointHasSurvivor(m, v, candidates) {
			continue
		}
		rescuePoint(m, n, v, candidates)
	}
}

func pointHasSurvivor(m *mesh.Mesh, v int, candidates map[types.TriID]bool) bool {
	for _, t := range m.PointCells(v) {
		if candidates[t] {
			return true
		}
	}
	return false
}

// assembleOutput emits the surviving triangles (and alpha lines) as the
// final output, mapping working-plane points back to 3-space via
// transform.
//
// keepRing controls whether the eight bounding-ring points are carried
// into the output point set: true only when BoundingTriangulation is on
// and the run used the default identity XY projection. When
// BoundingTriangulation is on, ring points are included in the output
// point set only in that case; otherwise the output point set always
// equals the input point set. When keepRing is false but a surviving
// triangle or alpha line still touches a ring point — as in the
// BoundingTriangulation+transform combination that resolveTransform
// warns about via WarnRingIncompatible, or after an orphanRescue swap
// around a ring apex — that cell is dropped rather than emitted against
// a point set that cannot represent it.
func assembleOutput(m *mesh.Mesh, n, ringStart int, keepRing bool, transform types.Transform, survivors map[types.TriID]bool, lines []types.Edge) (points []types.Point3, triangles []types.Triangle, outLines []types.Edge) {
	if keepRing {
		all := m.Points()
		points = make([]types.Point3, len(all))
		for i, p := range all {
			points[i] = transform.Unproject(p)
		}
		for _, t := range m.LiveCells() {
			if survivors[t] {
				triangles = append(triangles, m.CellPoints(t))
			}
		}
		return points, triangles, lines
	}

	points = make([]types.Point3, n)
	for i := 0; i < n; i++ {
		points[i] = transform.Unproject(m.Point(i))
	}

	for _, t := range m.LiveCells() {
		if !survivors[t] {
			continue
		}
		tri := m.CellPoints(t)
		if tri[0] >= ringStart || tri[1] >= ringStart || tri[2] >= ringStart {
			continue
		}
		triangles = append(triangles, tri)
	}

	for _, e := range lines {
		if e.A() >= ringStart || e.B() >= ringStart {
			continue
		}
		outLines = append(outLines, e)
	}

	return points, triangles, outLines
}

func rescuePoint(m *mesh.Mesh, n int, v int, candidates map[types.TriID]bool) {
	incident := append([]types.TriID(nil), m.PointCells(v)...)
	for _, t := range incident {
		if m.IsDeleted(t) {
			continue
		}
		tri := m.CellPoints(t)
		for _, e := range tri.Edges() {
			if e.A() >= n || e.B() >= n {
				continue
			}
			other, ok := m.SingleEdgeNeighbor(t, e.A(), e.B())
			if !ok {
				continue
			}

			apexHere, p1, p2 := mesh.RotateToVertex(tri, mesh.OppositeVertex(tri, e.A(), e.B()))
			apexThere := mesh.OppositeVertex(m.CellPoints(other), p1, p2)

			// The quadrilateral's other diagonal only yields a valid repair
			// when both candidate triangles wind the same way.
			h := m.Point(apexHere)
			th := m.Point(apexThere)
			n1 := geom.TriangleNormalSign(h, th, m.Point(p2))
			n2 := geom.TriangleNormalSign(h, m.Point(p1), th)
			if n1*n2 < 0 {
				continue
			}

			m.ReplaceCell(t, apexHere, apexThere, p2)
			m.ReplaceCell(other, apexHere, p1, apexThere)

			candidates[t] = true
			candidates[other] = true
			return
		}
	}
}
