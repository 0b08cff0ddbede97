// Package iosupport implements the JSON point-set/constraint-source
// import-export boundary used by the cmd/ drivers and by debug capture of
// a problematic run: a plain-struct/json.Encoder round trip around
// delaunay2d's PointSource/ConstraintSource/Result types.
//
// github.com/pkg/errors is used exclusively at this I/O boundary
// (Wrap/Wrapf) since this package is the module's load/save boundary for
// point sets, constraint sets and results; the core triangulator's
// internal errors use plain fmt.Errorf %w wrapping instead.
package iosupport

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/iceisfun/delaunay2d/delaunay2d"
	"github.com/iceisfun/delaunay2d/types"
)

// PointSetFile is the on-disk JSON representation of a PointSource.
type PointSetFile struct {
	Points []types.Point3 `json:"points"`
}

// ConstraintFile is the on-disk JSON representation of a ConstraintSource.
type ConstraintFile struct {
	Polylines [][]int `json:"polylines,omitempty"`
	Polygons  [][]int `json:"polygons,omitempty"`
}

// ResultFile is the on-disk JSON representation of a triangulation
// Result, used for debug capture; diagnostic counters are carried
// through unchanged.
type ResultFile struct {
	Points      []types.Point3   `json:"points"`
	Triangles   []types.Triangle `json:"triangles"`
	Lines       []types.Edge     `json:"lines,omitempty"`
	Verts       []types.VertexID `json:"verts,omitempty"`
	Diagnostics types.Diagnostics `json:"diagnostics"`
}

// LoadPointSet reads a PointSetFile from filename and returns it as a
// delaunay2d.SlicePointSource ready to hand to Triangulate.
func LoadPointSet(filename string) (delaunay2d.SlicePointSource, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "iosupport: open point set %q", filename)
	}
	defer f.Close()

	var data PointSetFile
	if err := json.NewDecoder(f).Decode(&data); err != nil {
		return nil, errors.Wrapf(err, "iosupport: decode point set %q", filename)
	}
	return delaunay2d.SlicePointSource(data.Points), nil
}

// SavePointSet writes points to filename as a PointSetFile.
func SavePointSet(filename string, points []types.Point3) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "iosupport: create point set %q", filename)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(PointSetFile{Points: points}); err != nil {
		return errors.Wrapf(err, "iosupport: encode point set %q", filename)
	}
	return nil
}

// LoadConstraintSet reads a ConstraintFile from filename and returns it as
// a delaunay2d.PolygonConstraintSource.
func LoadConstraintSet(filename string) (delaunay2d.PolygonConstraintSource, error) {
	f, err := os.Open(filename)
	if err != nil {
		return delaunay2d.PolygonConstraintSource{}, errors.Wrapf(err, "iosupport: open constraint set %q", filename)
	}
	defer f.Close()

	var data ConstraintFile
	if err := json.NewDecoder(f).Decode(&data); err != nil {
		return delaunay2d.PolygonConstraintSource{}, errors.Wrapf(err, "iosupport: decode constraint set %q", filename)
	}
	return delaunay2d.PolygonConstraintSource{Polylines: data.Polylines, Polygons: data.Polygons}, nil
}

// SaveConstraintSet writes a ConstraintSource to filename.
func SaveConstraintSet(filename string, c delaunay2d.PolygonConstraintSource) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "iosupport: create constraint set %q", filename)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	data := ConstraintFile{Polylines: c.Polylines, Polygons: c.Polygons}
	if err := enc.Encode(data); err != nil {
		return errors.Wrapf(err, "iosupport: encode constraint set %q", filename)
	}
	return nil
}

// SaveResult captures a full Result to filename, useful for sharing a
// problematic triangulation run for offline analysis.
func SaveResult(filename string, res delaunay2d.Result) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "iosupport: create result %q", filename)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	data := ResultFile{
		Points:      res.Points,
		Triangles:   res.Triangles,
		Lines:       res.Lines,
		Verts:       res.Verts,
		Diagnostics: res.Diagnostics,
	}
	if err := enc.Encode(data); err != nil {
		return errors.Wrapf(err, "iosupport: encode result %q", filename)
	}
	return nil
}

// LoadResult reads a ResultFile previously written by SaveResult, useful
// for offline inspection tooling that does not need to re-run
// Triangulate.
func LoadResult(filename string) (ResultFile, error) {
	f, err := os.Open(filename)
	if err != nil {
		return ResultFile{}, errors.Wrapf(err, "iosupport: open result %q", filename)
	}
	defer f.Close()

	var data ResultFile
	if err := json.NewDecoder(f).Decode(&data); err != nil {
		return ResultFile{}, errors.Wrapf(err, "iosupport: decode result %q", filename)
	}
	return data, nil
}
