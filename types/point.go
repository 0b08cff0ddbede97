// Package types holds the plain data types shared across the triangulator:
// points, indices, edges, triangles, and the small value types (Epsilon,
// AABB, Transform) used to configure and describe a run.
package types

import "github.com/go-gl/mathgl/mgl64"

// Point represents a position in the working 2D plane that the
// triangulator actually operates on. It is produced by projecting a
// Point3 through a Transform (or the identity XY projection).
type Point struct {
	X float64
	Y float64
}

// Point3 represents an input point in 3-space, as supplied by the caller's
// point source. Z is carried through to the output but ignored by every
// in-plane geometric test.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// Vec3 converts the point to a mgl64 vector for use with Transform.
func (p Point3) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

// Point3FromVec3 builds a Point3 from a mgl64 vector.
func Point3FromVec3(v mgl64.Vec3) Point3 {
	return Point3{X: v[0], Y: v[1], Z: v[2]}
}
