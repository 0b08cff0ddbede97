package geom

import (
	"testing"

	"github.com/iceisfun/delaunay2d/types"
)

func TestOrient2D(t *testing.T) {
	a := types.Point{X: 0, Y: 0}
	b := types.Point{X: 1, Y: 0}
	c := types.Point{X: 1, Y: 1}
	if got := Orient2D(a, b, c); got != 1 {
		t.Fatalf("Orient2D(CCW) = %d, want 1", got)
	}
	if got := Orient2D(a, c, b); got != -1 {
		t.Fatalf("Orient2D(CW) = %d, want -1", got)
	}
	d := types.Point{X: 2, Y: 0}
	if got := Orient2D(a, b, d); got != 0 {
		t.Fatalf("Orient2D(collinear) = %d, want 0", got)
	}
}

func TestCircumcircleOfRightTriangle(t *testing.T) {
	a := types.Point{X: 0, Y: 0}
	b := types.Point{X: 2, Y: 0}
	c := types.Point{X: 0, Y: 2}
	center, r2 := Circumcircle(a, b, c)
	if center.X != 1 || center.Y != 1 {
		t.Fatalf("center = %+v, want (1,1)", center)
	}
	if r2 != 2 {
		t.Fatalf("r2 = %v, want 2", r2)
	}
}

func TestInCircleAcceptsInteriorPoint(t *testing.T) {
	a := types.Point{X: 0, Y: 0}
	b := types.Point{X: 4, Y: 0}
	c := types.Point{X: 0, Y: 4}
	inside := types.Point{X: 1, Y: 1}
	outside := types.Point{X: 10, Y: 10}

	if !InCircle(inside, a, b, c, 1e12) {
		t.Fatalf("expected point near centroid to be inside circumcircle")
	}
	if InCircle(outside, a, b, c, 1e12) {
		t.Fatalf("expected far point to be outside circumcircle")
	}
}

func TestInCircleHugeCircumcircleOverride(t *testing.T) {
	a := types.Point{X: 0, Y: 0}
	b := types.Point{X: 1, Y: 0}
	c := types.Point{X: 0.5, Y: 1000}
	x := types.Point{X: 0.5, Y: 0.5}
	if !InCircle(x, a, b, c, 1) {
		t.Fatalf("expected huge-circumcircle override to accept x")
	}
}
