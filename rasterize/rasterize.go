// Package rasterize renders a triangulation Result to an RGBA image, for
// visually inspecting the triangle mesh, recovered constraint edges, and
// alpha-shape boundary during development. Drawing is layered: fills under
// edges under the alpha-shape boundary (lines, then isolated vertices), each
// pass alpha-composited onto the one beneath it so overlapping geometry
// stays readable.
package rasterize

import (
	"image"
	"image/color"
	"math"

	"github.com/iceisfun/delaunay2d/delaunay2d"
)

// Render draws res to an RGBA image sized by cfg (or DefaultConfig if no
// options are supplied).
func Render(res delaunay2d.Result, opts ...Option) *image.RGBA {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}

	cv := newCanvas(cfg.Width, cfg.Height, cfg.Background)
	cv.setTransform(computeTransform(res, cfg.Width, cfg.Height))

	if cfg.FillTriangles {
		renderTriangles(cv, res, cfg.TriangleColor)
	}
	if cfg.DrawEdges {
		renderEdges(cv, res, cfg.EdgeColor)
	}
	if cfg.DrawAlphaLines {
		renderAlphaLines(cv, res, cfg.AlphaLineColor)
	}
	if cfg.DrawAlphaVerts {
		renderAlphaVerts(cv, res, cfg.AlphaVertColor)
	}

	return cv.img
}

func renderTriangles(cv *canvas, res delaunay2d.Result, col color.Color) {
	for _, tri := range res.Triangles {
		cv.fillTriangle(res.Points[tri[0]], res.Points[tri[1]], res.Points[tri[2]], col)
	}
}

func renderEdges(cv *canvas, res delaunay2d.Result, col color.Color) {
	for _, tri := range res.Triangles {
		cv.strokeTriangle(res.Points[tri[0]], res.Points[tri[1]], res.Points[tri[2]], col)
	}
}

func renderAlphaLines(cv *canvas, res delaunay2d.Result, col color.Color) {
	for _, e := range res.Lines {
		cv.strokeEdge(res.Points[e.A()], res.Points[e.B()], col)
	}
}

func renderAlphaVerts(cv *canvas, res delaunay2d.Result, col color.Color) {
	for _, v := range res.Verts {
		cv.markVertex(res.Points[v], col)
	}
}

// transform maps working-plane points into image pixel coordinates,
// flipping Y so larger Y values render toward the top of the image (screen
// rows increase downward; geometry Y increases upward).
type transform struct {
	scale            float64
	offsetX, offsetY float64
	height           int
}

func (t transform) apply(x, y float64) (int, int) {
	px := int(math.Round((x + t.offsetX) * t.scale))
	py := t.height - 1 - int(math.Round((y+t.offsetY)*t.scale))
	return px, py
}

// computeTransform fits res's point cloud into (width, height) with a
// fixed margin, uniformly scaled so the triangulation's aspect ratio is
// preserved regardless of the output image's aspect ratio.
func computeTransform(res delaunay2d.Result, width, height int) transform {
	if len(res.Points) == 0 {
		return transform{scale: 1, height: height}
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range res.Points {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	const margin = 0.9
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	scaleX := margin * float64(width) / spanX
	scaleY := margin * float64(height) / spanY
	scale := math.Min(scaleX, scaleY)

	centerX := (minX + maxX) / 2
	centerY := (minY + maxY) / 2

	return transform{
		scale:   scale,
		offsetX: float64(width)/2/scale - centerX,
		offsetY: float64(height)/2/scale - centerY,
		height:  height,
	}
}
