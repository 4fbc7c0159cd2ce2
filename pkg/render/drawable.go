package render

import "image/color"

// Drawable is a shaded screen-space triangle ready for a rasterizer.
// A nil Fill or Stroke means that aspect is not drawn.
type Drawable struct {
	Points    [3]Point2
	Fill      *color.RGBA
	Stroke    *color.RGBA
	Depth     float64
	Luminance float64
}

// Surface receives drawables in back-to-front order
type Surface interface {
	DrawTriangle(d Drawable)
}
