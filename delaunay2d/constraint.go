package delaunay2d

import (
	"github.com/iceisfun/delaunay2d/geom"
	"github.com/iceisfun/delaunay2d/mesh"
	"github.com/iceisfun/delaunay2d/types"
)

// constrainedEdges tracks which mesh edges must survive flips and
// removal, keyed by canonical endpoint pair.
type constrainedEdges map[types.Edge]bool

func (c constrainedEdges) add(a, b int)      { c[types.NewEdge(a, b)] = true }
func (c constrainedEdges) has(a, b int) bool { return c[types.NewEdge(a, b)] }

// recoverConstraintEdge forces edge (a,b) into the mesh if it is not
// already present: it carves the two-sided influence polygon the segment
// passes through, retriangulates each side with a bounded polygon
// triangulator, and swaps the new triangles in for the traversed ones.
//
// This carves and retriangulates the influence polygon directly rather
// than finding and flipping each intersecting edge in turn, since the
// chain/influence-polygon approach avoids repeatedly re-testing edges
// that a Lawson-style flip search would revisit.
func recoverConstraintEdge(m *mesh.Mesh, boundingRadius2 float64, a, b int, constrained constrainedEdges, tol float64, diag *types.Diagnostics) bool {
	if a == b {
		diag.NumberOfUnrecoveredEdges++
		diag.Warn(types.WarnUnrecoveredConstraintEdge, "constraint edge has coincident endpoints")
		return false
	}
	if m.IsEdge(a, b) {
		constrained.add(a, b)
		return true
	}

	pa, pb := m.Point(a), m.Point(b)

	startTri, v1, v2, ok := findStartingTriangle(m, a, b)
	if !ok {
		diag.NumberOfUnrecoveredEdges++
		diag.Warn(types.WarnUnrecoveredConstraintEdge, "no starting triangle found for constraint edge")
		return false
	}

	left := []int{a}
	right := []int{a}
	sideOfV1 := geom.Orient2D(pa, pb, m.Point(v1))
	if sideOfV1 >= 0 {
		left = append(left, v1)
		right = append(right, v2)
	} else {
		left = append(left, v2)
		right = append(right, v1)
	}

	traversed := []types.TriID{startTri}
	curLeft, curRight := v1, v2
	if sideOfV1 < 0 {
		curLeft, curRight = v2, v1
	}
	curTri := startTri

	const maxSteps = 100000
	steps := 0
	for curLeft != b && curRight != b {
		steps++
		if steps > maxSteps {
			diag.NumberOfUnrecoveredEdges++
			diag.Warn(types.WarnNonManifoldRecovery, "constraint recovery exceeded traversal bound")
			return false
		}

		next, ok := m.SingleEdgeNeighbor(curTri, curLeft, curRight)
		if !ok {
			diag.NumberOfUnrecoveredEdges++
			diag.Warn(types.WarnNonManifoldRecovery, "constraint recovery hit a non-manifold or boundary edge")
			return false
		}
		apex := mesh.OppositeVertex(m.CellPoints(next), curLeft, curRight)
		traversed = append(traversed, next)

		if apex == b {
			left = append(left, b)
			right = append(right, b)
			curTri = next
			break
		}

		side := geom.Orient2D(pa, pb, m.Point(apex))
		if side >= 0 {
			left = append(left, apex)
			curLeft = apex
		} else {
			right = append(right, apex)
			curRight = apex
		}
		curTri = next
	}
	if left[len(left)-1] != b {
		left = append(left, b)
	}
	if right[len(right)-1] != b {
		right = append(right, b)
	}

	// The left chain (apexes on the Orient2D>=0 side) traversed a->...->b
	// is wound clockwise; reversing it to b->...->a makes it
	// counter-clockwise like the right chain, so both sides can share one
	// CCW-assuming ear-clip triangulator.
	leftTris, lok := triangulatePolygonChain(m, reverseInts(left))
	rightTris, rok := triangulatePolygonChain(m, right)
	if !lok || !rok {
		diag.NumberOfUnrecoveredEdges++
		diag.Warn(types.WarnUnrecoveredConstraintEdge, "influence-polygon triangulation refused")
		return false
	}

	newTriangles := append(leftTris, rightTris...)
	applyCellReplacement(m, traversed, newTriangles)

	constrained.add(a, b)

	flipCheckOnceAfterRecovery(m, boundingRadius2, traversed, left, right, constrained, diag)

	return true
}

// findStartingTriangle finds a triangle incident to a whose far edge
// (v1,v2) is crossed by segment (a,b): v1 and v2 lie on opposite sides of
// line (a,b), and b lies within the angular wedge swept from a->v1 to
// a->v2.
func findStartingTriangle(m *mesh.Mesh, a, b int) (tri types.TriID, v1, v2 int, ok bool) {
	pa, pb := m.Point(a), m.Point(b)
	for _, t := range m.PointCells(a) {
		if m.IsDeleted(t) {
			continue
		}
		_, x1, x2 := mesh.RotateToVertex(m.CellPoints(t), a)
		s1 := geom.Orient2D(pa, pb, m.Point(x1))
		s2 := geom.Orient2D(pa, pb, m.Point(x2))
		if s1 == 0 || s2 == 0 || (s1 > 0) == (s2 > 0) {
			continue
		}
		if geom.Orient2D(pa, m.Point(x1), pb) >= 0 && geom.Orient2D(pa, pb, m.Point(x2)) >= 0 {
			return t, x1, x2, true
		}
	}
	return types.NilTri, 0, 0, false
}

// triangulatePolygonChain triangulates the counter-clockwise simple
// polygon whose vertices are chain in order, endpoints included
// (implicitly closed by the edge from its last vertex back to its first),
// using a bounded ear-clip triangulator restricted to the polygon's own
// vertices, not a general Delaunay algorithm.
func triangulatePolygonChain(m *mesh.Mesh, chain []int) ([]types.Triangle, bool) {
	if len(chain) < 3 {
		return nil, len(chain) == 2
	}
	poly := append([]int(nil), chain...)
	var out []types.Triangle

	const maxIterations = 10000
	iter := 0
	for len(poly) > 2 {
		iter++
		if iter > maxIterations {
			return nil, false
		}
		n := len(poly)
		earFound := false
		for i := 0; i < n; i++ {
			prev := poly[(i-1+n)%n]
			cur := poly[i]
			next := poly[(i+1)%n]

			pp, pc, pn := m.Point(prev), m.Point(cur), m.Point(next)
			if geom.Orient2D(pp, pc, pn) <= 0 {
				continue
			}

			clean := true
			for j := 0; j < n; j++ {
				v := poly[j]
				if v == prev || v == cur || v == next {
					continue
				}
				if geom.PointInTriangle(m.Point(v), pp, pc, pn, 0) {
					clean = false
					break
				}
			}
			if !clean {
				continue
			}

			out = append(out, types.Triangle{prev, cur, next})
			poly = append(poly[:i], poly[i+1:]...)
			earFound = true
			break
		}
		if !earFound {
			return nil, false
		}
	}
	return out, true
}

func reverseInts(s []int) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// applyCellReplacement swaps newTriangles in for the traversed cells,
// reusing TriIDs where possible so identity is preserved for as many
// cells as the counts allow.
func applyCellReplacement(m *mesh.Mesh, traversed []types.TriID, newTriangles []types.Triangle) {
	n := len(traversed)
	k := len(newTriangles)
	shared := n
	if k < shared {
		shared = k
	}
	for i := 0; i < shared; i++ {
		tri := newTriangles[i]
		m.ReplaceCell(traversed[i], tri[0], tri[1], tri[2])
	}
	for i := shared; i < k; i++ {
		tri := newTriangles[i]
		m.InsertLinkedCell(tri[0], tri[1], tri[2])
	}
	for i := shared; i < n; i++ {
		m.RemoveCell(traversed[i])
	}
}

// flipCheckOnceAfterRecovery legalizes the triangles just swapped in for
// constraint recovery: for each new triangle edge that is neither an
// influence-polygon boundary edge nor a constraint edge, flip-check once
// (non-recursive); stop at the first successful flip since remaining
// recorded indices may be stale.
func flipCheckOnceAfterRecovery(m *mesh.Mesh, boundingRadius2 float64, traversed []types.TriID, left, right []int, constrained constrainedEdges, diag *types.Diagnostics) {
	boundary := map[types.Edge]bool{}
	addChainBoundary := func(chain []int) {
		for i := 0; i+1 < len(chain); i++ {
			boundary[types.NewEdge(chain[i], chain[i+1])] = true
		}
	}
	addChainBoundary(left)
	addChainBoundary(right)

	for _, t := range traversed {
		if m.IsDeleted(t) {
			continue
		}
		tri := m.CellPoints(t)
		for _, e := range tri.Edges() {
			if boundary[e] || constrained.has(e.A(), e.B()) {
				continue
			}
			other, ok := m.SingleEdgeNeighbor(t, e.A(), e.B())
			if !ok {
				continue
			}
			apexHere, p1, p2 := mesh.RotateToVertex(tri, mesh.OppositeVertex(tri, e.A(), e.B()))
			apexThere := mesh.OppositeVertex(m.CellPoints(other), p1, p2)

			if !geom.InCircle(m.Point(apexThere), m.Point(apexHere), m.Point(p1), m.Point(p2), boundingRadius2) {
				continue
			}

			m.ReplaceCell(t, apexHere, apexThere, p2)
			m.ReplaceCell(other, apexHere, p1, apexThere)
			return
		}
	}
}
