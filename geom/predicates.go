// Package geom implements the 2D geometric primitives the triangulator
// relies on: circumcircles, orientation, the in-circle degeneracy
// tiebreak, and the small vector helpers the walk/flip/constraint stages
// share.
package geom

import (
	"math"
	"math/big"

	"github.com/iceisfun/delaunay2d/types"
)

const (
	orientFilter = 1e-15

	// inCircleDegeneracyFactor is the degeneracy tiebreak that stabilises
	// flips when a fourth point is exactly or nearly cocircular; the exact
	// value matters for reproducing tiebreak orientations and must not be
	// rounded to a cleaner-looking constant.
	inCircleDegeneracyFactor = 0.999999999999
)

// Orient2D returns +1 if (a,b,c) turn counter-clockwise, -1 if clockwise,
// 0 if the points are (near) collinear. Uses an adaptive float64 filter
// and falls back to arbitrary-precision arithmetic near the decision
// boundary.
func Orient2D(a, b, c types.Point) int {
	ax := b.X - a.X
	ay := b.Y - a.Y
	bx := c.X - a.X
	by := c.Y - a.Y
	det := ax*by - ay*bx

	maxMag := maxAbs(a.X, a.Y, b.X, b.Y, c.X, c.Y)
	eps := maxMag * maxMag * orientFilter
	if eps < orientFilter {
		eps = orientFilter
	}

	switch {
	case det > eps:
		return 1
	case det < -eps:
		return -1
	default:
		return orient2DExact(a, b, c)
	}
}

func orient2DExact(a, b, c types.Point) int {
	ax := bigFloat(b.X - a.X)
	ay := bigFloat(b.Y - a.Y)
	bx := bigFloat(c.X - a.X)
	by := bigFloat(c.Y - a.Y)

	term1 := new(big.Float).SetPrec(256).Mul(ax, by)
	term2 := new(big.Float).SetPrec(256).Mul(ay, bx)
	det := new(big.Float).SetPrec(256).Sub(term1, term2)
	return det.Sign()
}

// Circumcircle returns the circumcenter and squared circumradius of
// triangle (a,b,c) in the xy-plane.
func Circumcircle(a, b, c types.Point) (center types.Point, r2 float64) {
	ax, ay := a.X, a.Y
	bx, by := b.X, b.Y
	cx, cy := c.X, c.Y

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if d == 0 {
		// Collinear: fall back to a degenerate "circle" centered on the
		// triangle's centroid with an effectively infinite radius so callers
		// treat it as always containing any test point.
		return types.Point{X: (ax + bx + cx) / 3, Y: (ay + by + cy) / 3}, math.MaxFloat64
	}

	a2 := ax*ax + ay*ay
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy

	ux := (a2*(by-cy) + b2*(cy-ay) + c2*(ay-by)) / d
	uy := (a2*(cx-bx) + b2*(ax-cx) + c2*(bx-ax)) / d

	center = types.Point{X: ux, Y: uy}
	dx := ax - ux
	dy := ay - uy
	r2 = dx*dx + dy*dy
	return center, r2
}

// InCircle reports whether x lies inside the circumcircle of (a,b,c):
// true iff |x-center|^2 < inCircleDegeneracyFactor*r2, or r2 exceeds
// boundingRadius2 (an override that always accepts new points near the
// bounding ring, avoiding numerical blow-ups on its oversized circumcircles).
func InCircle(x, a, b, c types.Point, boundingRadius2 float64) bool {
	center, r2 := Circumcircle(a, b, c)
	if r2 > boundingRadius2 {
		return true
	}
	dx := x.X - center.X
	dy := x.Y - center.Y
	dist2 := dx*dx + dy*dy
	return dist2 < inCircleDegeneracyFactor*r2
}

func maxAbs(values ...float64) float64 {
	m := 0.0
	for _, v := range values {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

func bigFloat(v float64) *big.Float {
	return new(big.Float).SetPrec(256).SetFloat64(v)
}
