// Command triangulate2png loads a JSON point set (and optional constraint
// set), runs the triangulator, and writes the surviving triangles,
// recovered constraint edges, and alpha-shape boundary to a PNG for
// visual inspection.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/iceisfun/delaunay2d/delaunay2d"
	"github.com/iceisfun/delaunay2d/iosupport"
	"github.com/iceisfun/delaunay2d/rasterize"
)

func main() {
	var (
		pointsFile     = flag.String("points", "", "Path to point set JSON file (required)")
		constraintFile = flag.String("constraints", "", "Path to constraint set JSON file (optional)")
		output         = flag.String("output", "triangulate_output.png", "Output PNG file path")
		width          = flag.Int("width", 1024, "Output image width")
		height         = flag.Int("height", 1024, "Output image height")
		alpha          = flag.Float64("alpha", 0, "Alpha-shape circumradius cutoff (0 disables)")
		tolerance      = flag.Float64("tolerance", 1e-5, "Tolerance multiplier on the input bounding diagonal")
		boundingTri    = flag.Bool("bounding-triangulation", false, "Keep bounding-ring triangles in the output")
		randomInsert   = flag.Bool("random-insertion", false, "Use GCD-permuted insertion order")
	)
	flag.Parse()

	if *pointsFile == "" {
		fmt.Fprintln(os.Stderr, "Error: --points flag is required")
		fmt.Fprintln(os.Stderr, "\nUsage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(runOptions{
		pointsFile:     *pointsFile,
		constraintFile: *constraintFile,
		output:         *output,
		width:          *width,
		height:         *height,
		alpha:          *alpha,
		tolerance:      *tolerance,
		boundingTri:    *boundingTri,
		randomInsert:   *randomInsert,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type runOptions struct {
	pointsFile     string
	constraintFile string
	output         string
	width, height  int
	alpha          float64
	tolerance      float64
	boundingTri    bool
	randomInsert   bool
}

func run(opts runOptions) error {
	fmt.Printf("Loading points from %s...\n", opts.pointsFile)
	points, err := iosupport.LoadPointSet(opts.pointsFile)
	if err != nil {
		return fmt.Errorf("failed to load point set: %w", err)
	}
	fmt.Printf("Loaded %d points\n", points.NumPoints())

	var constraints delaunay2d.ConstraintSource
	if opts.constraintFile != "" {
		fmt.Printf("Loading constraints from %s...\n", opts.constraintFile)
		c, err := iosupport.LoadConstraintSet(opts.constraintFile)
		if err != nil {
			return fmt.Errorf("failed to load constraint set: %w", err)
		}
		fmt.Printf("Loaded %d polylines, %d polygons\n", c.NumPolylines(), c.NumPolygons())
		constraints = c
	}

	cfg := delaunay2d.NewConfig(
		delaunay2d.WithAlpha(opts.alpha),
		delaunay2d.WithTolerance(opts.tolerance),
		delaunay2d.WithBoundingTriangulation(opts.boundingTri),
		delaunay2d.WithRandomPointInsertion(opts.randomInsert),
	)

	fmt.Println("Triangulating...")
	res, err := delaunay2d.Triangulate(points, constraints, cfg)
	if err != nil {
		return fmt.Errorf("failed to triangulate: %w", err)
	}
	fmt.Printf("Triangulated: %d triangles, %d alpha lines, %d alpha verts, %d duplicates, %d degeneracies\n",
		len(res.Triangles), len(res.Lines), len(res.Verts),
		res.Diagnostics.NumberOfDuplicatePoints, res.Diagnostics.NumberOfDegeneracies)
	for _, w := range res.Warnings {
		fmt.Printf("warning: %s\n", w.Message)
	}

	fmt.Printf("Rendering to %dx%d image...\n", opts.width, opts.height)
	img := rasterize.Render(res, rasterize.WithDimensions(opts.width, opts.height))

	fmt.Printf("Saving to %s...\n", opts.output)
	outFile, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outFile.Close()

	if err := png.Encode(outFile, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	fmt.Printf("Success! Triangulation written to %s\n", opts.output)
	return nil
}
