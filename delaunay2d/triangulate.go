package delaunay2d

import (
	"fmt"

	"github.com/iceisfun/delaunay2d/geom"
	"github.com/iceisfun/delaunay2d/mesh"
	"github.com/iceisfun/delaunay2d/types"
)

// Triangulate runs the full pipeline: project, bootstrap, insert, recover
// constraints, fill, alpha-filter, assemble.
//
// Fewer than 3 input points is not an error: Triangulate returns an
// empty, successful Result.
func Triangulate(points PointSource, constraints ConstraintSource, cfg Config) (Result, error) {
	n := points.NumPoints()
	if n < 3 {
		return Result{Diagnostics: types.Diagnostics{}}, nil
	}

	input3D := make([]types.Point3, n)
	for i := 0; i < n; i++ {
		input3D[i] = points.Point(i)
	}

	transform, warnings := resolveTransform(input3D, cfg)

	projected := make([]types.Point, n)
	for i, p := range input3D {
		projected[i] = transform.Project(p)
	}

	// Under the identity XY projection the caller's 3D bounds drop
	// straight into the working plane; any other transform needs a rescan
	// of the projected points.
	var box types.AABB
	if cfg.Transform == nil && cfg.ProjectionPlaneMode == ProjectionXY {
		lo, hi := points.Bounds()
		box = types.AABB{
			Min: types.Point{X: lo.X, Y: lo.Y},
			Max: types.Point{X: hi.X, Y: hi.Y},
		}
	} else {
		box = geom.BBox(projected)
	}

	boot := bootstrapMesh(projected, box, cfg)
	m := boot.m

	diag := types.Diagnostics{Warnings: warnings}

	insertAll(m, n, boot.boundingRadius2, boot.tolerance, cfg, &diag)

	constrained := constrainedEdges{}
	var polygonLoops []types.PolygonLoop
	hasConstraints := constraints != nil

	if hasConstraints {
		if err := recoverAllConstraints(m, n, constraints, boot.boundingRadius2, boot.tolerance, constrained, &diag); err != nil {
			return Result{}, err
		}
		for i := 0; i < constraints.NumPolygons(); i++ {
			polygonLoops = append(polygonLoops, types.PolygonLoop(constraints.Polygon(i)))
		}
	}

	fill := classifyPolygons(m, polygonLoops, constrained, &diag)

	candidates := candidateSurvivors(m, boot.ringStart, cfg.BoundingTriangulation, fill, len(polygonLoops) > 0)

	if !cfg.BoundingTriangulation && cfg.Alpha == 0 && !hasConstraints {
		orphanRescue(m, n, candidates)
	}

	survivors, lines := applyAlphaFilter(m, cfg.Alpha, candidates)

	var verts []types.VertexID
	if cfg.Alpha > 0 {
		verts = freeVertices(m, n, survivors, lines)
	}

	keepRing := cfg.BoundingTriangulation && cfg.Transform == nil && cfg.ProjectionPlaneMode == ProjectionXY
	outPoints, outTriangles, remapLines := assembleOutput(m, n, boot.ringStart, keepRing, transform, survivors, lines)
	// Input points are emitted exactly as supplied (Z included); only the
	// ring points, when kept, come from unprojecting the working plane.
	copy(outPoints, input3D)

	return Result{
		Points:      outPoints,
		Triangles:   outTriangles,
		Lines:       remapLines,
		Verts:       verts,
		Diagnostics: diag,
		Warnings:    diag.Warnings,
	}, nil
}

// resolveTransform picks the working-plane transform from cfg (XY,
// best-fitting-plane, or an explicit transform), warning on the
// documented incompatibility between an explicit transform/best-fit
// plane and keeping bounding-ring points in the output.
func resolveTransform(points []types.Point3, cfg Config) (types.Transform, []types.Warning) {
	var warnings []types.Warning

	if cfg.Transform != nil {
		if cfg.BoundingTriangulation {
			warnings = append(warnings, types.Warning{
				Kind:    types.WarnRingIncompatible,
				Message: "explicit transform requested with BoundingTriangulation; ring points will not be emitted in transformed space",
			})
		}
		return *cfg.Transform, warnings
	}

	switch cfg.ProjectionPlaneMode {
	case ProjectionBestFittingPlane:
		if cfg.BoundingTriangulation {
			warnings = append(warnings, types.Warning{
				Kind:    types.WarnRingIncompatible,
				Message: "best-fitting-plane projection requested with BoundingTriangulation; ring points will not be emitted in transformed space",
			})
		}
		return geom.BestFittingPlane(points), warnings
	default:
		return types.IdentityXY(), warnings
	}
}

// recoverAllConstraints validates and recovers every polyline and polygon
// edge from the constraint source, in that order: polylines first, then
// polygons.
func recoverAllConstraints(m *mesh.Mesh, n int, src ConstraintSource, boundingRadius2, tol float64, constrained constrainedEdges, diag *types.Diagnostics) error {
	validate := func(idx int) error {
		if idx < 0 || idx >= n {
			return fmt.Errorf("%w: %d", ErrInvalidVertexID, idx)
		}
		return nil
	}

	for i := 0; i < src.NumPolylines(); i++ {
		line := src.Polyline(i)
		for j := 0; j+1 < len(line); j++ {
			if err := validate(line[j]); err != nil {
				return err
			}
			if err := validate(line[j+1]); err != nil {
				return err
			}
			if line[j] == line[j+1] {
				return fmt.Errorf("%w: polyline %d", ErrDegenerateConstraintEdge, i)
			}
			recoverConstraintEdge(m, boundingRadius2, line[j], line[j+1], constrained, tol, diag)
		}
	}

	for i := 0; i < src.NumPolygons(); i++ {
		poly := types.PolygonLoop(src.Polygon(i))
		for _, e := range poly.Edges() {
			if err := validate(e.A()); err != nil {
				return err
			}
			if err := validate(e.B()); err != nil {
				return err
			}
			if e.A() == e.B() {
				return fmt.Errorf("%w: polygon %d", ErrDegenerateConstraintEdge, i)
			}
			recoverConstraintEdge(m, boundingRadius2, e.A(), e.B(), constrained, tol, diag)
		}
	}
	return nil
}
