package delaunay2d

import (
	"math"
	"math/rand"
	"testing"

	"github.com/iceisfun/delaunay2d/geom"
	"github.com/iceisfun/delaunay2d/types"
)

func pts3(xy ...[2]float64) SlicePointSource {
	out := make(SlicePointSource, len(xy))
	for i, p := range xy {
		out[i] = types.Point3{X: p[0], Y: p[1]}
	}
	return out
}

func triangleArea(a, b, c types.Point3) float64 {
	return math.Abs((b.X-a.X)*(c.Y-a.Y)-(b.Y-a.Y)*(c.X-a.X)) / 2
}

func totalArea(res Result) float64 {
	sum := 0.0
	for _, tri := range res.Triangles {
		sum += triangleArea(res.Points[tri[0]], res.Points[tri[1]], res.Points[tri[2]])
	}
	return sum
}

func hasEdge(res Result, a, b int) bool {
	want := types.NewEdge(a, b)
	for _, tri := range res.Triangles {
		for _, e := range tri.Edges() {
			if e == want {
				return true
			}
		}
	}
	return false
}

// TestSquareProducesTwoTriangles checks a unit square triangulates into
// two triangles of unit total area, with no duplicates or degeneracies.
func TestSquareProducesTwoTriangles(t *testing.T) {
	src := pts3([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{1, 1}, [2]float64{0, 1})
	res, err := Triangulate(src, nil, NewConfig())
	if err != nil {
		t.Fatalf("Triangulate: %v", err)
	}
	if len(res.Triangles) != 2 {
		t.Fatalf("len(Triangles) = %d, want 2", len(res.Triangles))
	}
	if area := totalArea(res); math.Abs(area-1) > 1e-9 {
		t.Fatalf("total area = %v, want 1", area)
	}
	if res.Diagnostics.NumberOfDuplicatePoints != 0 {
		t.Fatalf("NumberOfDuplicatePoints = %d, want 0", res.Diagnostics.NumberOfDuplicatePoints)
	}
	if res.Diagnostics.NumberOfDegeneracies != 0 {
		t.Fatalf("NumberOfDegeneracies = %d, want 0", res.Diagnostics.NumberOfDegeneracies)
	}
}

// TestRegularPentagonProducesThreeTriangles checks a regular pentagon on
// the unit circle triangulates into three triangles, all locally
// Delaunay.
func TestRegularPentagonProducesThreeTriangles(t *testing.T) {
	var coords [][2]float64
	for i := 0; i < 5; i++ {
		theta := float64(i) * 2 * math.Pi / 5
		coords = append(coords, [2]float64{math.Cos(theta), math.Sin(theta)})
	}
	src := pts3(coords...)
	res, err := Triangulate(src, nil, NewConfig())
	if err != nil {
		t.Fatalf("Triangulate: %v", err)
	}
	if len(res.Triangles) != 3 {
		t.Fatalf("len(Triangles) = %d, want 3", len(res.Triangles))
	}

	for _, tri := range res.Triangles {
		verifyLocallyDelaunay(t, res, tri)
	}
}

// verifyLocallyDelaunay checks that for every neighboring triangle pair
// sharing an edge of tri, the opposite vertex of the neighbor does not
// lie inside tri's circumcircle.
func verifyLocallyDelaunay(t *testing.T, res Result, tri types.Triangle) {
	t.Helper()
	a, b, c := res.Points[tri[0]], res.Points[tri[1]], res.Points[tri[2]]
	pa := types.Point{X: a.X, Y: a.Y}
	pb := types.Point{X: b.X, Y: b.Y}
	pc := types.Point{X: c.X, Y: c.Y}

	for _, other := range res.Triangles {
		if other == tri {
			continue
		}
		shared := 0
		var opp int = -1
		for _, v := range other {
			if v == tri[0] || v == tri[1] || v == tri[2] {
				shared++
			} else {
				opp = v
			}
		}
		if shared != 2 || opp < 0 {
			continue
		}
		op := res.Points[opp]
		if geom.InCircle(types.Point{X: op.X, Y: op.Y}, pa, pb, pc, math.MaxFloat64) {
			t.Fatalf("triangle %v is not locally Delaunay against opposite vertex %d", tri, opp)
		}
	}
}

// TestCollinearTripleYieldsNoValidTriangle checks that three collinear
// input points never form an output triangle among themselves.
func TestCollinearTripleYieldsNoValidTriangle(t *testing.T) {
	src := pts3([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{2, 0})
	res, err := Triangulate(src, nil, NewConfig())
	if err != nil {
		t.Fatalf("Triangulate: %v", err)
	}
	for _, tri := range res.Triangles {
		if tri[0] < 3 && tri[1] < 3 && tri[2] < 3 {
			t.Fatalf("collinear input points should not form an output triangle, got %v", tri)
		}
	}
}

// TestDuplicateHeavyInputCountsDuplicates checks that coincident points
// among the input are counted as duplicates rather than inserted: two
// points coincident with an earlier one among five yield
// NumberOfDuplicatePoints == 2 and one output triangle.
func TestDuplicateHeavyInputCountsDuplicates(t *testing.T) {
	src := pts3([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{0, 1}, [2]float64{0, 0}, [2]float64{0, 0})
	res, err := Triangulate(src, nil, NewConfig())
	if err != nil {
		t.Fatalf("Triangulate: %v", err)
	}
	if res.Diagnostics.NumberOfDuplicatePoints != 2 {
		t.Fatalf("NumberOfDuplicatePoints = %d, want 2", res.Diagnostics.NumberOfDuplicatePoints)
	}
	if len(res.Triangles) != 1 {
		t.Fatalf("len(Triangles) = %d, want 1", len(res.Triangles))
	}
}

// TestRandomPointInsertionIsPermutationInvariant checks that the output
// triangle set (as a set, ignoring winding/order) is the same whether
// insertion order is natural or GCD-permuted, for an input with no
// cocircular ties.
func TestRandomPointInsertionIsPermutationInvariant(t *testing.T) {
	var coords [][2]float64
	for i := 0; i < 9; i++ {
		theta := float64(i) * 0.71
		r := 1 + 0.37*float64(i%3)
		coords = append(coords, [2]float64{r * math.Cos(theta), r * math.Sin(theta)})
	}
	src := pts3(coords...)

	natural, err := Triangulate(src, nil, NewConfig())
	if err != nil {
		t.Fatalf("Triangulate(natural): %v", err)
	}
	shuffled, err := Triangulate(src, nil, NewConfig(WithRandomPointInsertion(true)))
	if err != nil {
		t.Fatalf("Triangulate(random): %v", err)
	}

	if len(natural.Triangles) != len(shuffled.Triangles) {
		t.Fatalf("triangle count differs: natural=%d random=%d", len(natural.Triangles), len(shuffled.Triangles))
	}

	naturalSet := map[types.Edge]int{}
	for _, tri := range natural.Triangles {
		for _, e := range tri.Edges() {
			naturalSet[e]++
		}
	}
	shuffledSet := map[types.Edge]int{}
	for _, tri := range shuffled.Triangles {
		for _, e := range tri.Edges() {
			shuffledSet[e]++
		}
	}
	for e, n := range naturalSet {
		if shuffledSet[e] != n {
			t.Fatalf("edge multiset differs at %v: natural=%d random=%d", e, n, shuffledSet[e])
		}
	}
}

// randomPointSets returns several deterministic pseudo-random point
// clouds of varying size and spread, for property tests over the final
// Result rather than a single fixed scenario.
func randomPointSets() []SlicePointSource {
	cases := []struct {
		seed int64
		n    int
		span float64
	}{
		{seed: 1, n: 15, span: 1},
		{seed: 2, n: 30, span: 10},
		{seed: 3, n: 50, span: 100},
		{seed: 4, n: 40, span: 0.01},
	}
	var sets []SlicePointSource
	for _, tc := range cases {
		rng := rand.New(rand.NewSource(tc.seed))
		src := make(SlicePointSource, tc.n)
		for i := range src {
			src[i] = types.Point3{
				X: rng.Float64() * tc.span,
				Y: rng.Float64() * tc.span,
			}
		}
		sets = append(sets, src)
	}
	return sets
}

// TestOutputIsLocallyDelaunay checks that every pair of adjacent output
// triangles satisfies the empty-circumcircle property, across several
// varied point sets.
func TestOutputIsLocallyDelaunay(t *testing.T) {
	for si, src := range randomPointSets() {
		res, err := Triangulate(src, nil, NewConfig())
		if err != nil {
			t.Fatalf("set %d: Triangulate: %v", si, err)
		}
		if len(res.Triangles) == 0 {
			t.Fatalf("set %d: expected a non-empty triangulation", si)
		}
		for _, tri := range res.Triangles {
			verifyLocallyDelaunay(t, res, tri)
		}
	}
}

// TestEdgeIncidenceIsManifold checks that every edge of the output is
// shared by one (boundary) or two (interior) surviving triangles, never
// more.
func TestEdgeIncidenceIsManifold(t *testing.T) {
	for si, src := range randomPointSets() {
		res, err := Triangulate(src, nil, NewConfig())
		if err != nil {
			t.Fatalf("set %d: Triangulate: %v", si, err)
		}
		counts := map[types.Edge]int{}
		for _, tri := range res.Triangles {
			for _, e := range tri.Edges() {
				counts[e]++
			}
		}
		for e, c := range counts {
			if c < 1 || c > 2 {
				t.Fatalf("set %d: edge %v shared by %d triangles, want 1 or 2", si, e, c)
			}
		}
	}
}

// TestAdjacentTriangleOrientationsAgree checks that every pair of output
// triangles sharing an edge winds the same way (non-negative product of
// their +z normal signs).
func TestAdjacentTriangleOrientationsAgree(t *testing.T) {
	for si, src := range randomPointSets() {
		res, err := Triangulate(src, nil, NewConfig())
		if err != nil {
			t.Fatalf("set %d: Triangulate: %v", si, err)
		}

		signs := make([]float64, len(res.Triangles))
		byEdge := map[types.Edge][]int{}
		for i, tri := range res.Triangles {
			a, b, c := res.Points[tri[0]], res.Points[tri[1]], res.Points[tri[2]]
			signs[i] = geom.TriangleNormalSign(
				types.Point{X: a.X, Y: a.Y},
				types.Point{X: b.X, Y: b.Y},
				types.Point{X: c.X, Y: c.Y},
			)
			for _, e := range tri.Edges() {
				byEdge[e] = append(byEdge[e], i)
			}
		}

		for e, tris := range byEdge {
			if len(tris) != 2 {
				continue
			}
			if signs[tris[0]]*signs[tris[1]] < 0 {
				t.Fatalf("set %d: triangles %v and %v across edge %v disagree on orientation",
					si, res.Triangles[tris[0]], res.Triangles[tris[1]], e)
			}
		}
	}
}

// TestConstrainedLShapeRecoversAllEdges checks that every polygon edge
// survives into the output, and that fill classification restricts
// triangles to the polygon's interior.
func TestConstrainedLShapeRecoversAllEdges(t *testing.T) {
	// An L-shaped hexagon, CCW, area 1*2 + 1*1 = 3 (a 2x2 square missing
	// the top-right 1x1 quadrant).
	lshape := [][2]float64{
		{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2},
	}
	coords := append([][2]float64(nil), lshape...)

	interior := [][2]float64{
		{0.3, 0.3}, {0.6, 0.2}, {0.9, 0.4}, {0.2, 0.9}, {0.5, 0.6},
		{0.1, 1.5}, {0.4, 1.2}, {0.3, 1.7}, {0.8, 1.1}, {0.2, 0.5},
		{1.5, 0.3}, {1.7, 0.6}, {1.2, 0.2}, {0.6, 0.9}, {0.3, 0.1},
		{0.9, 0.8}, {0.15, 1.9}, {0.7, 1.6}, {1.1, 0.5}, {0.05, 0.05},
	}
	coords = append(coords, interior...)

	src := pts3(coords...)
	poly := []int{0, 1, 2, 3, 4, 5}
	constraints := PolygonConstraintSource{Polygons: [][]int{poly}}

	res, err := Triangulate(src, constraints, NewConfig())
	if err != nil {
		t.Fatalf("Triangulate: %v", err)
	}

	for i := 0; i < len(poly); i++ {
		a, b := poly[i], poly[(i+1)%len(poly)]
		if !hasEdge(res, a, b) {
			t.Fatalf("missing recovered polygon edge (%d,%d)", a, b)
		}
	}

	if area := totalArea(res); math.Abs(area-3) > 0.05 {
		t.Fatalf("total filled area = %v, want ~3 (the L-shape area)", area)
	}
}

// TestAlphaSeparatesTwoClusters checks that, with a small alpha,
// triangles spanning the gap between two widely separated clusters are
// removed and no alpha line bridges them.
func TestAlphaSeparatesTwoClusters(t *testing.T) {
	var coords [][2]float64
	for i := 0; i < 10; i++ {
		theta := float64(i) * 2 * math.Pi / 10
		coords = append(coords, [2]float64{math.Cos(theta) * 0.4, math.Sin(theta) * 0.4})
	}
	for i := 0; i < 10; i++ {
		theta := float64(i) * 2 * math.Pi / 10
		coords = append(coords, [2]float64{10 + math.Cos(theta)*0.4, math.Sin(theta) * 0.4})
	}
	src := pts3(coords...)

	res, err := Triangulate(src, nil, NewConfig(WithAlpha(0.5)))
	if err != nil {
		t.Fatalf("Triangulate: %v", err)
	}

	for _, tri := range res.Triangles {
		a := tri[0] < 10
		for _, v := range tri {
			if (v < 10) != a {
				t.Fatalf("alpha-filtered triangle %v spans both clusters", tri)
			}
		}
	}
	for _, e := range res.Lines {
		if (e.A() < 10) != (e.B() < 10) {
			t.Fatalf("alpha line %v bridges both clusters", e)
		}
	}
}

// TestAlphaMonotonicity checks that decreasing alpha never adds
// triangles back in (it only ever removes them).
func TestAlphaMonotonicity(t *testing.T) {
	var coords [][2]float64
	for i := 0; i < 12; i++ {
		theta := float64(i) * 2 * math.Pi / 12
		coords = append(coords, [2]float64{math.Cos(theta), math.Sin(theta)})
	}
	src := pts3(coords...)

	big, err := Triangulate(src, nil, NewConfig(WithAlpha(5)))
	if err != nil {
		t.Fatalf("Triangulate(alpha=5): %v", err)
	}
	small, err := Triangulate(src, nil, NewConfig(WithAlpha(0.3)))
	if err != nil {
		t.Fatalf("Triangulate(alpha=0.3): %v", err)
	}
	if len(small.Triangles) > len(big.Triangles) {
		t.Fatalf("smaller alpha produced more triangles: small=%d big=%d", len(small.Triangles), len(big.Triangles))
	}
}

// TestFewerThanThreePointsYieldsEmptyResult checks that fewer than 3
// input points is not an error.
func TestFewerThanThreePointsYieldsEmptyResult(t *testing.T) {
	src := pts3([2]float64{0, 0}, [2]float64{1, 0})
	res, err := Triangulate(src, nil, NewConfig())
	if err != nil {
		t.Fatalf("Triangulate: %v", err)
	}
	if len(res.Triangles) != 0 {
		t.Fatalf("len(Triangles) = %d, want 0", len(res.Triangles))
	}
}

// TestBoundingTriangulationKeepsRingPoints checks that
// BoundingTriangulation on with the default XY projection carries the
// eight ring points into the output point set.
func TestBoundingTriangulationKeepsRingPoints(t *testing.T) {
	src := pts3([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{1, 1}, [2]float64{0, 1})
	res, err := Triangulate(src, nil, NewConfig(WithBoundingTriangulation(true)))
	if err != nil {
		t.Fatalf("Triangulate: %v", err)
	}
	if len(res.Points) != 4+8 {
		t.Fatalf("len(Points) = %d, want 12 (4 input + 8 ring)", len(res.Points))
	}
	if len(res.Triangles) < 6 {
		t.Fatalf("len(Triangles) = %d, want at least the 6 bootstrap triangles", len(res.Triangles))
	}
}
