package delaunay2d

import (
	"math"

	"github.com/iceisfun/delaunay2d/geom"
	"github.com/iceisfun/delaunay2d/mesh"
	"github.com/iceisfun/delaunay2d/types"
)

// walkCrossTolerance is a fixed threshold (independent of the run's
// Tolerance option) used to decide whether a candidate crossing is
// "outward enough" to matter during the walk.
const walkCrossTolerance = 1e-14

// locateOutcome distinguishes the four ways a walk can end.
type locateOutcome int

const (
	locateInterior locateOutcome = iota
	locateOnEdge
	locateDuplicate
	locateDegenerate
)

// locateResult is the outcome of walking to find the triangle containing
// a query point.
type locateResult struct {
	outcome locateOutcome
	tri     types.TriID
	// edgeA, edgeB identify the crossed edge when outcome == locateOnEdge.
	edgeA, edgeB int
	neighbor     types.TriID
}

// locatePoint walks from tstart to find the triangle containing x (or
// detects a duplicate/degenerate case), testing all three edges and
// advancing across whichever is most outward. A deterministic
// per-triangle pseudo-random rotation of the edge-evaluation order avoids
// walk cycles in symmetric configurations.
func locatePoint(m *mesh.Mesh, x types.Point, tstart types.TriID, tol float64) locateResult {
	t := tstart
	came := types.NilTri
	visited := 0
	maxSteps := m.NumCells() + 8

	for {
		if m.IsDeleted(t) {
			return locateResult{outcome: locateDegenerate, tri: types.NilTri}
		}
		tri := m.CellPoints(t)
		v := [3]types.Point{m.Point(tri[0]), m.Point(tri[1]), m.Point(tri[2])}

		// Duplicate-point check against this triangle's own vertices.
		for _, p := range v {
			dx := x.X - p.X
			dy := x.Y - p.Y
			if math.Hypot(dx, dy) <= tol {
				return locateResult{outcome: locateDuplicate, tri: t}
			}
		}

		ir := walkRotation(t)

		bestMag := 0.0
		bestEdge := -1
		var bestNeighbor types.TriID = types.NilTri
		sawOutward := false

		for k := 0; k < 3; k++ {
			e := (ir + k) % 3
			a, b := localEdgeVertices(tri, e)
			apt, bpt := m.Point(a), m.Point(b)

			nx, ny := geom.OutwardNormal(apt, bpt)
			edgeLen := math.Hypot(bpt.X-apt.X, bpt.Y-apt.Y)
			if edgeLen == 0 {
				continue
			}
			sx := geom.HalfPlaneSign(apt, nx, ny, x) / edgeLen

			if sx > walkCrossTolerance {
				sawOutward = true
				if sx > bestMag {
					bestMag = sx
					bestEdge = e
					neighbor, ok := m.SingleEdgeNeighbor(t, a, b)
					if ok {
						bestNeighbor = neighbor
					} else {
						bestNeighbor = types.NilTri
					}
				}
			}
		}

		if !sawOutward {
			return locateResult{outcome: locateInterior, tri: t}
		}

		a, b := localEdgeVertices(tri, bestEdge)
		if bestMag < tol {
			return locateResult{outcome: locateOnEdge, tri: t, edgeA: a, edgeB: b, neighbor: bestNeighbor}
		}

		if bestNeighbor == types.NilTri {
			// Crossed a boundary edge outward with no neighbor: treat the
			// crossing point as an edge hit against the boundary itself.
			return locateResult{outcome: locateOnEdge, tri: t, edgeA: a, edgeB: b, neighbor: types.NilTri}
		}

		if bestNeighbor == came {
			return locateResult{outcome: locateDegenerate, tri: types.NilTri}
		}

		came = t
		t = bestNeighbor
		visited++
		if visited > maxSteps {
			return locateResult{outcome: locateDegenerate, tri: types.NilTri}
		}
	}
}

// walkRotation derives a deterministic pseudo-random edge-evaluation
// order from a triangle's id, in place of a process-wide PRNG call, so
// the walk is reproducible across runs given the same mesh state.
func walkRotation(t types.TriID) int {
	h := uint32(t)
	h ^= h >> 15
	h *= 2246822519
	h ^= h >> 13
	return int(h % 3)
}

func localEdgeVertices(tri types.Triangle, localEdge int) (a, b int) {
	switch localEdge {
	case 0:
		return tri[0], tri[1]
	case 1:
		return tri[1], tri[2]
	default:
		return tri[2], tri[0]
	}
}
