package geom

import (
	"testing"

	"github.com/iceisfun/delaunay2d/types"
)

func TestPointInTriangle(t *testing.T) {
	a := types.Point{X: 0, Y: 0}
	b := types.Point{X: 4, Y: 0}
	c := types.Point{X: 0, Y: 4}

	if !PointInTriangle(types.Point{X: 1, Y: 1}, a, b, c, 1e-9) {
		t.Fatalf("expected interior point to be inside")
	}
	if PointInTriangle(types.Point{X: 10, Y: 10}, a, b, c, 1e-9) {
		t.Fatalf("expected far point to be outside")
	}
	if !PointInTriangle(types.Point{X: 2, Y: 0}, a, b, c, 1e-9) {
		t.Fatalf("expected edge point to be classified inside (on-edge)")
	}
}

func TestCentroidAndBBox(t *testing.T) {
	a := types.Point{X: 0, Y: 0}
	b := types.Point{X: 3, Y: 0}
	c := types.Point{X: 0, Y: 3}
	centroid := Centroid(a, b, c)
	if centroid.X != 1 || centroid.Y != 1 {
		t.Fatalf("Centroid = %+v, want (1,1)", centroid)
	}

	box := BBox([]types.Point{a, b, c})
	if box.Min != (types.Point{X: 0, Y: 0}) || box.Max != (types.Point{X: 3, Y: 3}) {
		t.Fatalf("BBox = %+v, want min(0,0) max(3,3)", box)
	}
}

func TestTriangleNormalSign(t *testing.T) {
	a := types.Point{X: 0, Y: 0}
	b := types.Point{X: 1, Y: 0}
	c := types.Point{X: 0, Y: 1}
	if TriangleNormalSign(a, b, c) <= 0 {
		t.Fatalf("expected CCW triangle to have positive normal sign")
	}
	if TriangleNormalSign(a, c, b) >= 0 {
		t.Fatalf("expected CW triangle to have negative normal sign")
	}
}
