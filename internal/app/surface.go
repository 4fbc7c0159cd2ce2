package app

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gomesh/pkg/render"
)

// raylibSurface draws drawables onto the current raylib frame
type raylibSurface struct {
	view *ViewSettings
}

func vec2(p render.Point2) rl.Vector2 {
	return rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
}

func rlColor(c *color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// DrawTriangle fills and outlines d. raylib only fills triangles listed
// counter-clockwise on screen, so the order is fixed up here.
func (s raylibSurface) DrawTriangle(d render.Drawable) {
	a, b, c := vec2(d.Points[0]), vec2(d.Points[1]), vec2(d.Points[2])
	if (b.X-a.X)*(c.Y-a.Y)-(b.Y-a.Y)*(c.X-a.X) > 0 {
		b, c = c, b
	}

	if d.Fill != nil && s.view.showFill {
		rl.DrawTriangle(a, b, c, rlColor(d.Fill))
	}
	if d.Stroke != nil && s.view.showEdge {
		rl.DrawTriangleLines(a, b, c, rlColor(d.Stroke))
	}
}
