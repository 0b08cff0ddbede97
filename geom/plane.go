package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/iceisfun/delaunay2d/types"
)

// BestFittingPlane computes a least-squares plane through the supplied
// points: the centroid as origin, and an orthonormal (U, V, Normal) basis
// where Normal is the eigenvector of the point covariance matrix with the
// smallest eigenvalue (the direction of least variance).
//
// This backs best-fitting-plane projection for non-planar point clouds.
// The eigen solve uses the classical cyclic Jacobi rotation method on
// the symmetric 3x3 covariance matrix, expressed with mgl64.Mat3
// arithmetic.
func BestFittingPlane(points []types.Point3) types.Transform {
	if len(points) == 0 {
		return types.IdentityXY()
	}

	var cx, cy, cz float64
	for _, p := range points {
		cx += p.X
		cy += p.Y
		cz += p.Z
	}
	n := float64(len(points))
	centroid := mgl64.Vec3{cx / n, cy / n, cz / n}

	var cov mgl64.Mat3
	for _, p := range points {
		dx := p.X - centroid[0]
		dy := p.Y - centroid[1]
		dz := p.Z - centroid[2]
		cov[0] += dx * dx
		cov[1] += dy * dx
		cov[2] += dz * dx
		cov[3] += dx * dy
		cov[4] += dy * dy
		cov[5] += dz * dy
		cov[6] += dx * dz
		cov[7] += dy * dz
		cov[8] += dz * dz
	}

	eigvecs, eigvals := jacobiEigenSymmetric3(cov)

	// Smallest eigenvalue's eigenvector becomes the plane normal.
	order := [3]int{0, 1, 2}
	if eigvals[order[1]] < eigvals[order[0]] {
		order[0], order[1] = order[1], order[0]
	}
	if eigvals[order[2]] < eigvals[order[1]] {
		order[1], order[2] = order[2], order[1]
	}
	if eigvals[order[1]] < eigvals[order[0]] {
		order[0], order[1] = order[1], order[0]
	}

	u := eigvecs[order[2]]
	v := eigvecs[order[1]]
	normal := eigvecs[order[0]]

	if u.Cross(v).Dot(normal) < 0 {
		normal = normal.Mul(-1)
	}

	return types.Transform{Origin: centroid, U: u.Normalize(), V: v.Normalize(), Normal: normal.Normalize()}
}

// jacobiEigenSymmetric3 diagonalizes a symmetric 3x3 matrix via the
// classical Jacobi rotation method, returning its eigenvectors (as
// columns) and eigenvalues.
func jacobiEigenSymmetric3(m mgl64.Mat3) (vecs [3]mgl64.Vec3, vals [3]float64) {
	a := m
	v := mgl64.Ident3()

	offDiag := func(a mgl64.Mat3) float64 {
		return math.Abs(a.At(0, 1)) + math.Abs(a.At(0, 2)) + math.Abs(a.At(1, 2))
	}

	for iter := 0; iter < 64 && offDiag(a) > 1e-14; iter++ {
		for p := 0; p < 2; p++ {
			for q := p + 1; q < 3; q++ {
				apq := a.At(p, q)
				if math.Abs(apq) < 1e-300 {
					continue
				}
				app := a.At(p, p)
				aqq := a.At(q, q)
				theta := (aqq - app) / (2 * apq)
				t := math.Copysign(1, theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
				if theta == 0 {
					t = 1
				}
				c := 1 / math.Sqrt(t*t+1)
				s := t * c

				rot := mgl64.Ident3()
				rot.Set(p, p, c)
				rot.Set(q, q, c)
				rot.Set(p, q, s)
				rot.Set(q, p, -s)

				a = rot.Transpose().Mul3(a).Mul3(rot)
				v = v.Mul3(rot)
			}
		}
	}

	for i := 0; i < 3; i++ {
		vals[i] = a.At(i, i)
		vecs[i] = mgl64.Vec3{v.At(0, i), v.At(1, i), v.At(2, i)}
	}
	return vecs, vals
}
