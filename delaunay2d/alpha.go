package delaunay2d

import (
	"math"

	"github.com/iceisfun/delaunay2d/geom"
	"github.com/iceisfun/delaunay2d/mesh"
	"github.com/iceisfun/delaunay2d/types"
)

// applyAlphaFilter filters the candidate (already ring/fill-pruned)
// triangles by circumradius: triangles whose circumradius exceeds alpha
// are dropped. For each dropped triangle, an edge is kept as a free line
// when that edge still borders a surviving triangle and its half-length
// does not exceed alpha.
//
// When alpha is 0, filtering is a no-op and no lines are produced.
func applyAlphaFilter(m *mesh.Mesh, alpha float64, candidates map[types.TriID]bool) (survivors map[types.TriID]bool, lines []types.Edge) {
	survivors = make(map[types.TriID]bool, len(candidates))
	if alpha <= 0 {
		for t := range candidates {
			survivors[t] = true
		}
		return survivors, nil
	}

	removed := map[types.TriID]bool{}
	for t := range candidates {
		a, b, c := m.CellCoords(t)
		_, r2 := geom.Circumcircle(a, b, c)
		if math.Sqrt(r2) > alpha {
			removed[t] = true
		} else {
			survivors[t] = true
		}
	}

	lineSet := map[types.Edge]bool{}
	for t := range removed {
		tri := m.CellPoints(t)
		for _, e := range tri.Edges() {
			hasSurvivingNeighbor := false
			for _, n := range m.CellEdgeNeighbors(t, e.A(), e.B()) {
				if survivors[n] {
					hasSurvivingNeighbor = true
					break
				}
			}
			if !hasSurvivingNeighbor {
				continue
			}
			p1, p2 := m.Point(e.A()), m.Point(e.B())
			halfLen := math.Hypot(p2.X-p1.X, p2.Y-p1.Y) / 2
			if halfLen <= alpha {
				lineSet[e] = true
			}
		}
	}

	for e := range lineSet {
		lines = append(lines, e)
	}
	return survivors, lines
}

// freeVertices returns the input point indices incident to neither a
// surviving triangle nor an alpha line, emitted as free points.
func freeVertices(m *mesh.Mesh, numInputPoints int, survivors map[types.TriID]bool, lines []types.Edge) []types.VertexID {
	touched := make([]bool, numInputPoints)
	for t := range survivors {
		for _, v := range m.CellPoints(t) {
			if v < numInputPoints {
				touched[v] = true
			}
		}
	}
	for _, e := range lines {
		if e.A() < numInputPoints {
			touched[e.A()] = true
		}
		if e.B() < numInputPoints {
			touched[e.B()] = true
		}
	}

	var out []types.VertexID
	for v := 0; v < numInputPoints; v++ {
		if !touched[v] {
			out = append(out, types.VertexID(v))
		}
	}
	return out
}
