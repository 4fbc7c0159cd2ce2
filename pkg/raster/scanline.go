package raster

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/philipparndt/gomesh/pkg/render"
)

// fillTriangle fills a triangle with the scanline algorithm, clipping every
// span to the image. Used for triangles that reach past the canvas edge.
func fillTriangle(img *image.RGBA, points [3]render.Point2, col color.RGBA) {
	vertices := points[:]
	sort.Slice(vertices, func(i, j int) bool { return vertices[i].Y < vertices[j].Y })
	p1, p2, p3 := vertices[0], vertices[1], vertices[2]

	bounds := img.Bounds()
	top := math.Max(float64(bounds.Min.Y), math.Ceil(p1.Y))
	bottom := math.Min(float64(bounds.Max.Y-1), math.Floor(p3.Y))

	edges := [3][2]render.Point2{{p1, p2}, {p2, p3}, {p1, p3}}
	for y := int(top); y <= int(bottom); y++ {
		fy := float64(y)

		// Find intersections with triangle edges
		xStart, xEnd := math.Inf(1), math.Inf(-1)
		for _, e := range edges {
			a, b := e[0], e[1]
			if a.Y == b.Y || fy < a.Y || fy > b.Y {
				continue
			}
			x := a.X + (fy-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			xStart = math.Min(xStart, x)
			xEnd = math.Max(xEnd, x)
		}
		if xStart > xEnd {
			continue
		}

		// Clamp to image bounds
		xStart = math.Max(float64(bounds.Min.X), math.Ceil(xStart))
		xEnd = math.Min(float64(bounds.Max.X-1), math.Floor(xEnd))

		for x := int(xStart); x <= int(xEnd); x++ {
			img.SetRGBA(x, y, col)
		}
	}
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	// Lines far outside the canvas would walk millions of pixels for nothing
	if max(x1, x2) < bounds.Min.X || min(x1, x2) >= bounds.Max.X ||
		max(y1, y2) < bounds.Min.Y || min(y1, y2) >= bounds.Max.Y {
		return
	}

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := -1, -1
	if x1 < x2 {
		sx = 1
	}
	if y1 < y2 {
		sy = 1
	}

	err := dx - dy

	for {
		if image.Pt(x1, y1).In(bounds) {
			img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
