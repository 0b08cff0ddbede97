package delaunay2d

import (
	"math"

	"github.com/iceisfun/delaunay2d/mesh"
	"github.com/iceisfun/delaunay2d/types"
)

// ringPointCount is the fixed size of the circumscribing bounding ring.
const ringPointCount = 8

// bootstrapResult holds the mesh seeded by bootstrapMesh: the eight-point
// circumscribing ring built around the input's bounding box center, with
// six triangles fanning the ring to give every input point a starting
// triangle to walk from.
type bootstrapResult struct {
	m               *mesh.Mesh
	ringStart       int // first ring point index (== N)
	center          types.Point
	boundingRadius  float64
	boundingRadius2 float64
	tolerance       float64
}

func bootstrapMesh(projected []types.Point, box types.AABB, cfg Config) bootstrapResult {
	n := len(projected)
	diag := box.Diagonal()
	if diag == 0 {
		diag = 1
	}

	cx := (box.Min.X + box.Max.X) / 2
	cy := (box.Min.Y + box.Max.Y) / 2
	center := types.Point{X: cx, Y: cy}

	r := cfg.Offset * diag
	if r <= 0 {
		r = diag
	}

	allPoints := make([]types.Point, n, n+ringPointCount)
	copy(allPoints, projected)

	ringStart := n
	for i := 0; i < ringPointCount; i++ {
		theta := float64(i) * (math.Pi / 4)
		allPoints = append(allPoints, types.Point{
			X: cx + r*math.Cos(theta),
			Y: cy + r*math.Sin(theta),
		})
	}

	m := mesh.New(allPoints)

	// Six seed triangles: the ring's 8-gon (centered on the input bounding
	// box's center) split into 6 triangles by a diagonal fan from ring
	// point 0.
	r0 := ringStart
	for i := 1; i < ringPointCount-1; i++ {
		m.InsertLinkedCell(r0, r0+i, r0+i+1)
	}

	return bootstrapResult{
		m:               m,
		ringStart:       ringStart,
		center:          center,
		boundingRadius:  r,
		boundingRadius2: (2 * r) * (2 * r),
		tolerance:       types.NewEpsilon(0, cfg.Tolerance).Value(diag),
	}
}
