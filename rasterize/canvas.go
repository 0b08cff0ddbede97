package rasterize

import (
	"image"
	"image/color"

	"github.com/iceisfun/delaunay2d/types"
)

// canvas is the pixel surface a Result renders onto. It owns both the
// backing image and the geometry->pixel transform, so every draw method
// takes working-plane points directly: callers never juggle a projected
// (x, y) pair themselves.
type canvas struct {
	img *image.RGBA
	xf  transform
}

func newCanvas(width, height int, background color.Color) *canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, background)
		}
	}
	return &canvas{img: img}
}

func (c *canvas) setTransform(xf transform) { c.xf = xf }

// blendPixel composites col over the existing pixel at (x, y), clipping to
// the image bounds.
func (c *canvas) blendPixel(x, y int, col color.Color) {
	b := c.img.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	c.img.Set(x, y, blendOver(c.img.At(x, y), col))
}

// fillTriangle rasterizes the triangle (a, b, c) in working-plane
// coordinates, compositing col over every covered pixel. Projection to
// pixel space and the edge-function/barycentric scan are fused into one
// pass, since the three vertices only ever need to be projected once each.
// Z is ignored: rendering always happens in the working plane.
func (c *canvas) fillTriangle(a, b, cc types.Point3, col color.Color) {
	ax, ay := c.xf.apply(a.X, a.Y)
	bx, by := c.xf.apply(b.X, b.Y)
	cx, cy := c.xf.apply(cc.X, cc.Y)

	bounds := c.img.Bounds()
	minX := clampInt(min3(ax, bx, cx), bounds.Min.X, bounds.Max.X-1)
	maxX := clampInt(max3(ax, bx, cx), bounds.Min.X, bounds.Max.X-1)
	minY := clampInt(min3(ay, by, cy), bounds.Min.Y, bounds.Max.Y-1)
	maxY := clampInt(max3(ay, by, cy), bounds.Min.Y, bounds.Max.Y-1)

	area := edgeFunction(ax, ay, bx, by, cx, cy)
	if area == 0 {
		return
	}
	den := float64(area)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := float64(edgeFunction(bx, by, cx, cy, x, y)) / den
			w1 := float64(edgeFunction(cx, cy, ax, ay, x, y)) / den
			w2 := float64(edgeFunction(ax, ay, bx, by, x, y)) / den
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				c.blendPixel(x, y, col)
			}
		}
	}
}

// strokeTriangle draws the outline of triangle (a, b, c) in working-plane
// coordinates by walking its three edges.
func (c *canvas) strokeTriangle(a, b, cc types.Point3, col color.Color) {
	c.strokeEdge(a, b, col)
	c.strokeEdge(b, cc, col)
	c.strokeEdge(cc, a, col)
}

// strokeEdge draws a line between two working-plane points using
// Bresenham's algorithm, alpha-blending each covered pixel.
func (c *canvas) strokeEdge(a, b types.Point3, col color.Color) {
	x0, y0 := c.xf.apply(a.X, a.Y)
	x1, y1 := c.xf.apply(b.X, b.Y)

	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		c.blendPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// markVertex draws a 3x3 marker centered on a working-plane point, used to
// render isolated alpha-shape vertices that survive without any incident
// edge.
func (c *canvas) markVertex(p types.Point3, col color.Color) {
	px, py := c.xf.apply(p.X, p.Y)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			c.blendPixel(px+dx, py+dy, col)
		}
	}
}
