// Package raster draws render drawables into an in-memory RGBA image.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/philipparndt/gomesh/pkg/render"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Canvas is a render.Surface backed by an *image.RGBA.
// Fills are anti-aliased; strokes are one pixel wide.
type Canvas struct {
	img        *image.RGBA
	rasterizer *vector.Rasterizer
	Background color.RGBA
}

var _ render.Surface = (*Canvas)(nil)

// New creates a width x height canvas cleared to black
func New(width, height int) *Canvas {
	c := &Canvas{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		rasterizer: vector.NewRasterizer(width, height),
		Background: color.RGBA{A: 255},
	}
	c.Clear()
	return c
}

// Image returns the backing image
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the canvas with the background colour
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.Background), image.Point{}, draw.Src)
}

// DrawTriangle fills and then outlines d
func (c *Canvas) DrawTriangle(d render.Drawable) {
	for _, p := range d.Points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return
		}
	}

	if d.Fill != nil {
		if c.inside(d.Points) {
			c.fillVector(d.Points, *d.Fill)
		} else {
			fillTriangle(c.img, d.Points, *d.Fill)
		}
	}

	if d.Stroke != nil {
		for i := range d.Points {
			a, b := d.Points[i], d.Points[(i+1)%3]
			drawLine(c.img, int(math.Round(a.X)), int(math.Round(a.Y)), int(math.Round(b.X)), int(math.Round(b.Y)), *d.Stroke)
		}
	}
}

// inside reports whether all points lie within the rasterizer bounds
func (c *Canvas) inside(points [3]render.Point2) bool {
	size := c.img.Bounds().Size()
	for _, p := range points {
		if p.X < 0 || p.Y < 0 || p.X > float64(size.X) || p.Y > float64(size.Y) {
			return false
		}
	}
	return true
}

// fillVector rasterizes the triangle within its own bounding box only
func (c *Canvas) fillVector(points [3]render.Point2, col color.RGBA) {
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	r := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}

	ox, oy := float32(r.Min.X), float32(r.Min.Y)
	z := c.rasterizer
	z.Reset(r.Dx(), r.Dy())
	z.MoveTo(float32(points[0].X)-ox, float32(points[0].Y)-oy)
	z.LineTo(float32(points[1].X)-ox, float32(points[1].Y)-oy)
	z.LineTo(float32(points[2].X)-ox, float32(points[2].Y)-oy)
	z.ClosePath()
	z.DrawOp = draw.Over
	z.Draw(c.img, r, image.NewUniform(col), image.Point{})
}

// WritePNG encodes the canvas as PNG
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to filename as PNG
func (c *Canvas) SavePNG(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := c.WritePNG(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
