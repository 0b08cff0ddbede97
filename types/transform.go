package types

import "github.com/go-gl/mathgl/mgl64"

// Transform maps a Point3 into the working plane. Origin is subtracted
// before the basis is applied, so U and V should be orthonormal vectors
// spanning the projection plane.
type Transform struct {
	Origin mgl64.Vec3
	U      mgl64.Vec3
	V      mgl64.Vec3
	Normal mgl64.Vec3
}

// IdentityXY is the default projection: drop Z, keep X/Y as-is.
func IdentityXY() Transform {
	return Transform{
		Origin: mgl64.Vec3{0, 0, 0},
		U:      mgl64.Vec3{1, 0, 0},
		V:      mgl64.Vec3{0, 1, 0},
		Normal: mgl64.Vec3{0, 0, 1},
	}
}

// Project maps a 3D point into the 2D working plane.
func (t Transform) Project(p Point3) Point {
	rel := p.Vec3().Sub(t.Origin)
	return Point{
		X: rel.Dot(t.U),
		Y: rel.Dot(t.V),
	}
}

// Unproject is the inverse of Project, useful for emitting ring/cover
// points back into 3-space for diagnostics or debug rendering.
func (t Transform) Unproject(p Point) Point3 {
	v := t.Origin.Add(t.U.Mul(p.X)).Add(t.V.Mul(p.Y))
	return Point3FromVec3(v)
}
