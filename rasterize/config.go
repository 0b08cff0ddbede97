package rasterize

import "image/color"

// Config holds options for rendering a triangulation Result to an image.
type Config struct {
	Width  int
	Height int

	Background     color.Color
	EdgeColor      color.Color
	TriangleColor  color.Color
	AlphaLineColor color.Color
	AlphaVertColor color.Color

	FillTriangles  bool
	DrawEdges      bool
	DrawAlphaLines bool
	DrawAlphaVerts bool
}

// DefaultConfig returns sensible default rendering settings.
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 600,

		Background:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		EdgeColor:      color.RGBA{R: 64, G: 64, B: 64, A: 255},
		TriangleColor:  color.RGBA{R: 100, G: 100, B: 255, A: 128},
		AlphaLineColor: color.RGBA{R: 0, G: 128, B: 0, A: 255},
		AlphaVertColor: color.RGBA{R: 255, G: 0, B: 0, A: 255},

		FillTriangles:  true,
		DrawEdges:      true,
		DrawAlphaLines: true,
		DrawAlphaVerts: true,
	}
}

// Option configures rendering.
type Option func(*Config)

// WithDimensions sets the output image dimensions.
func WithDimensions(width, height int) Option {
	return func(c *Config) {
		if width > 0 {
			c.Width = width
		}
		if height > 0 {
			c.Height = height
		}
	}
}

// WithFillTriangles enables or disables triangle fills.
func WithFillTriangles(enable bool) Option {
	return func(c *Config) { c.FillTriangles = enable }
}

// WithDrawEdges enables or disables triangle edge outlines.
func WithDrawEdges(enable bool) Option {
	return func(c *Config) { c.DrawEdges = enable }
}
