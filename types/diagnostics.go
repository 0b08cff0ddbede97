package types

// WarningKind enumerates the non-fatal conditions the triangulator
// surfaces to the caller instead of failing the run outright.
type WarningKind int

const (
	// WarnRingIncompatible fires when BoundingTriangulation is requested
	// together with a transform or best-fit plane.
	WarnRingIncompatible WarningKind = iota
	// WarnUnrecoveredConstraintEdge fires when a constraint edge could not
	// be forced into the triangulation.
	WarnUnrecoveredConstraintEdge
	// WarnNonManifoldRecovery fires when constraint recovery aborts
	// because the mesh is locally non-manifold.
	WarnNonManifoldRecovery
	// WarnFlipOverflow fires when edge-flip recursion hits its depth cap.
	WarnFlipOverflow
	// WarnPolygonFillSkipped fires when a constraint polygon's fill step
	// is skipped because one of its edges is missing.
	WarnPolygonFillSkipped
)

// Warning is a single non-fatal diagnostic emitted during a run.
type Warning struct {
	Kind    WarningKind
	Message string
}

// Diagnostics collects the counters and warnings a run produces, so
// callers can inspect duplicate and degenerate input after the fact.
type Diagnostics struct {
	NumberOfDuplicatePoints  int
	NumberOfDegeneracies     int
	NumberOfUnrecoveredEdges int
	NumberOfFlipOverflows    int
	Warnings                 []Warning
}

// Warn appends a warning to the diagnostics.
func (d *Diagnostics) Warn(kind WarningKind, msg string) {
	d.Warnings = append(d.Warnings, Warning{Kind: kind, Message: msg})
}
