package rasterize

import (
	"testing"

	"github.com/iceisfun/delaunay2d/delaunay2d"
	"github.com/iceisfun/delaunay2d/types"
)

func triangleResult() delaunay2d.Result {
	return delaunay2d.Result{
		Points: []types.Point3{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1},
		},
		Triangles: []types.Triangle{{0, 1, 2}},
	}
}

func TestRenderBasicDimensions(t *testing.T) {
	img := Render(triangleResult(), WithDimensions(200, 100))
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 100 {
		t.Fatalf("unexpected image dimensions: %v", img.Bounds())
	}
}

func TestRenderWithoutFillStillDrawsEdges(t *testing.T) {
	img := Render(triangleResult(), WithFillTriangles(false), WithDrawEdges(true))
	if img.Bounds().Empty() {
		t.Fatalf("expected a non-empty image")
	}
	edge := DefaultConfig().EdgeColor
	found := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !found; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.At(x, y) == edge {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatalf("expected at least one pixel in the edge color")
	}
}

func TestRenderEmptyResultProducesBlankImage(t *testing.T) {
	img := Render(delaunay2d.Result{}, WithDimensions(50, 50))
	if img.Bounds().Dx() != 50 || img.Bounds().Dy() != 50 {
		t.Fatalf("unexpected image dimensions for empty result: %v", img.Bounds())
	}
	bg := DefaultConfig().Background
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.At(x, y) != bg {
				t.Fatalf("pixel (%d,%d) = %v, want background %v", x, y, img.At(x, y), bg)
			}
		}
	}
}
