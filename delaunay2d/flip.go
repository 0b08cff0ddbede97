package delaunay2d

import (
	"github.com/iceisfun/delaunay2d/geom"
	"github.com/iceisfun/delaunay2d/mesh"
	"github.com/iceisfun/delaunay2d/types"
)

// maxFlipDepth bounds the edge-flip recursion so a pathological
// configuration degrades to a diagnostic warning instead of a stack
// overflow.
const maxFlipDepth = 2500

// flipCheck recursively legalizes the edge (p1,p2) of triangle t that was
// just exposed by inserting pnew, swapping the diagonal with its
// neighbor across that edge whenever the neighbor's opposite vertex
// falls inside pnew's circumcircle. Constraint-edge awareness (never flip
// a constrained edge) is handled one level up: callers simply never
// invoke flipCheck on a constrained edge.
func flipCheck(m *mesh.Mesh, boundingRadius2 float64, pnew, p1, p2 int, t types.TriID, depth int, diag *types.Diagnostics) {
	if depth > maxFlipDepth {
		diag.NumberOfFlipOverflows++
		diag.Warn(types.WarnFlipOverflow, "edge-flip recursion depth exceeded")
		return
	}

	tOther, ok := m.SingleEdgeNeighbor(t, p1, p2)
	if !ok {
		return
	}

	p3 := mesh.OppositeVertex(m.CellPoints(tOther), p1, p2)

	a := m.Point(pnew)
	b := m.Point(p1)
	c := m.Point(p2)
	d := m.Point(p3)

	if !geom.InCircle(d, a, b, c, boundingRadius2) {
		return
	}

	// Swap the diagonal: (pnew,p1,p2) + (p2,p1,p3) [opposite-ordered]
	// becomes (pnew,p3,p2) in t and (pnew,p1,p3) in tOther.
	m.ReplaceCell(t, pnew, p3, p2)
	m.ReplaceCell(tOther, pnew, p1, p3)

	flipCheck(m, boundingRadius2, pnew, p3, p2, t, depth+1, diag)
	flipCheck(m, boundingRadius2, pnew, p1, p3, tOther, depth+1, diag)
}
