package delaunay2d

import (
	"github.com/iceisfun/delaunay2d/mesh"
	"github.com/iceisfun/delaunay2d/types"
)

// gcd returns the greatest common divisor of a and b.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// gcdTraversalOrder computes a GCD-based traversal order: visit index idx
// via ptId = (P*idx + B) mod N, where B = floor(N/2) and P is the
// smallest integer >= floor(N/2)+1 coprime with N. Deterministic and a
// permutation of [0,N) by construction (P is coprime with N), this
// scatters insertion order across the point cloud without relying on an
// actual random number generator.
func gcdTraversalOrder(n int) []int {
	if n <= 0 {
		return nil
	}
	b := n / 2
	p := b + 1
	for gcd(p, n) != 1 {
		p++
	}
	order := make([]int, n)
	for idx := 0; idx < n; idx++ {
		order[idx] = (p*idx + b) % n
	}
	return order
}

// insertAll runs the incremental insertion loop over every input point,
// restoring the Delaunay property after each insertion via flipCheck.
func insertAll(m *mesh.Mesh, n int, boundingRadius2, tol float64, cfg Config, diag *types.Diagnostics) {
	if n == 0 {
		return
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if cfg.RandomPointInsertion {
		order = gcdTraversalOrder(n)
	}

	lastTri := types.TriID(0)

	for step, idx := range order {
		if cfg.CancelSignal != nil && step%1000 == 0 && cfg.CancelSignal() {
			return
		}
		if cfg.ProgressCallback != nil {
			cfg.ProgressCallback(float64(step+1) / float64(n))
		}

		x := m.Point(idx)
		res := locatePoint(m, x, lastTri, tol)

		switch res.outcome {
		case locateDuplicate:
			diag.NumberOfDuplicatePoints++
			continue
		case locateDegenerate:
			diag.NumberOfDegeneracies++
			continue
		case locateInterior:
			lastTri = insertInterior(m, boundingRadius2, idx, res.tri, diag)
		case locateOnEdge:
			lastTri = insertOnEdge(m, boundingRadius2, idx, res, diag)
		}
	}
}

// insertInterior splits the triangle containing pnew into three: it
// replaces the hit triangle with (pnew,v0,v1) and adds two new triangles
// fanning the remaining edges, flip-checking all three new boundary edges.
func insertInterior(m *mesh.Mesh, boundingRadius2 float64, pnew int, t types.TriID, diag *types.Diagnostics) types.TriID {
	tri := m.CellPoints(t)
	v0, v1, v2 := tri[0], tri[1], tri[2]

	m.ReplaceCell(t, pnew, v0, v1)
	t1 := m.InsertLinkedCell(pnew, v1, v2)
	t2 := m.InsertLinkedCell(pnew, v2, v0)

	flipCheck(m, boundingRadius2, pnew, v0, v1, t, 0, diag)
	flipCheck(m, boundingRadius2, pnew, v1, v2, t1, 0, diag)
	flipCheck(m, boundingRadius2, pnew, v2, v0, t2, 0, diag)

	return t
}

// insertOnEdge handles pnew landing on a mesh edge: it splits both
// triangles sharing the crossed edge into four, fanning pnew, and
// flip-checks all four new boundary edges. If the crossed edge has no
// neighbor (a boundary edge of the evolving mesh), only the one triangle
// is split into two.
func insertOnEdge(m *mesh.Mesh, boundingRadius2 float64, pnew int, res locateResult, diag *types.Diagnostics) types.TriID {
	t := res.tri
	a, b := res.edgeA, res.edgeB
	tri := m.CellPoints(t)
	apex := mesh.OppositeVertex(tri, a, b)

	// t's CCW cycle is a->b->apex->a; pnew lands between a and b, so the
	// two replacement triangles (preserving winding) are (a,pnew,apex)
	// and (pnew,b,apex).
	if res.neighbor == types.NilTri {
		m.ReplaceCell(t, a, pnew, apex)
		t2 := m.InsertLinkedCell(pnew, b, apex)
		flipCheck(m, boundingRadius2, pnew, apex, a, t, 0, diag)
		flipCheck(m, boundingRadius2, pnew, b, apex, t2, 0, diag)
		return t
	}

	tNei := res.neighbor
	neiTri := m.CellPoints(tNei)
	apex2 := mesh.OppositeVertex(neiTri, a, b)

	// tNei's CCW cycle is b->a->apex2->b (the shared edge traversed
	// opposite to t's), so its replacements are (b,pnew,apex2) and
	// (pnew,a,apex2).
	m.ReplaceCell(t, a, pnew, apex)
	t2 := m.InsertLinkedCell(pnew, b, apex)
	m.ReplaceCell(tNei, b, pnew, apex2)
	t4 := m.InsertLinkedCell(pnew, a, apex2)

	flipCheck(m, boundingRadius2, pnew, apex, a, t, 0, diag)
	flipCheck(m, boundingRadius2, pnew, b, apex, t2, 0, diag)
	flipCheck(m, boundingRadius2, pnew, apex2, b, tNei, 0, diag)
	flipCheck(m, boundingRadius2, pnew, a, apex2, t4, 0, diag)

	return t
}
