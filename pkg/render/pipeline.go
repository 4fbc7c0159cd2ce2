// Package render turns meshes into depth-ordered screen triangles.
//
// Per frame every face is rotated, moved in front of the camera, culled when
// it faces away, lit, projected and shaded. Faces are processed in parallel;
// the sort into painter's order happens once all of them are done.
package render

import (
	"fmt"
	"math"
	"runtime"
	"sort"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
	"golang.org/x/sync/errgroup"
)

// minLuminance keeps faces lit away from the light visible
const minLuminance = 0.1

// Pipeline owns the per-frame state: the rotation angle, camera and light.
// Render only reads that state, so one frame may be rendered concurrently
// with nothing but Advance, SetAngle and SetLight excluded.
type Pipeline struct {
	opts       Options
	projection Projection
	light      geometry.Vector3
	angle      float64
}

// New validates opts and builds a pipeline at angle 0
func New(opts Options) (*Pipeline, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Workers == 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	return &Pipeline{
		opts:       opts,
		projection: NewProjection(opts.Width, opts.Height, opts.FOV, opts.Near, opts.Far),
		light:      opts.Light.Normalize(),
	}, nil
}

// Options returns the options the pipeline was built with
func (p *Pipeline) Options() Options {
	return p.opts
}

// Projection returns the screen projection
func (p *Pipeline) Projection() Projection {
	return p.projection
}

// Advance moves the rotation on by one step
func (p *Pipeline) Advance() {
	p.angle += p.opts.Step
}

// Angle returns the accumulated rotation in radians
func (p *Pipeline) Angle() float64 {
	return p.angle
}

// SetAngle replaces the accumulated rotation
func (p *Pipeline) SetAngle(theta float64) {
	p.angle = theta
}

// Light returns the normalized light direction
func (p *Pipeline) Light() geometry.Vector3 {
	return p.light
}

// SetLight points the light along dir
func (p *Pipeline) SetLight(dir geometry.Vector3) error {
	if dir.IsZero() {
		return fmt.Errorf("light direction is zero: %w", ErrInvalidOptions)
	}
	p.light = dir.Normalize()
	return nil
}

// Rotation returns the model rotation for the current angle: a turn of angle
// about z followed by half of it about x.
func (p *Pipeline) Rotation() geometry.Matrix4 {
	return geometry.RotationZ(p.angle).Mul(geometry.RotationX(p.angle * 0.5))
}

// Render returns the visible faces of m as drawables, farthest first
func (p *Pipeline) Render(m *mesh.Mesh) ([]Drawable, error) {
	count := m.FaceCount()
	if count == 0 {
		return nil, nil
	}

	rotation := p.Rotation()
	slots := make([]Drawable, count)
	visible := make([]bool, count)

	chunk := (count + p.opts.Workers - 1) / p.opts.Workers
	var g errgroup.Group
	g.SetLimit(p.opts.Workers)
	for start := 0; start < count; start += chunk {
		end := min(start+chunk, count)
		g.Go(func() error {
			for i := start; i < end; i++ {
				tri, err := m.CompileFace(i)
				if err != nil {
					return err
				}
				slots[i], visible[i] = p.face(tri, rotation)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to render: %w", err)
	}

	drawables := make([]Drawable, 0, count)
	for i, ok := range visible {
		if ok {
			drawables = append(drawables, slots[i])
		}
	}
	sort.SliceStable(drawables, func(a, b int) bool {
		return drawables[a].Depth > drawables[b].Depth
	})
	return drawables, nil
}

// face transforms, culls, lights and projects one compiled face
func (p *Pipeline) face(tri mesh.Triangle, rotation geometry.Matrix4) (Drawable, bool) {
	view := tri.Transform(rotation).Translate(p.opts.Offset)

	normal := view.Normal()
	ray := view.Vertices[0].Sub(p.opts.Camera)
	// NaN normals from degenerate faces fail this test and are dropped too
	if !(normal.Dot(ray) < 0) {
		return Drawable{}, false
	}

	view.Luminance = math.Max(normal.Dot(p.light), minLuminance)

	d := Drawable{
		Fill:      view.ShadedFill(),
		Depth:     view.MidZ(),
		Luminance: view.Luminance,
	}
	if view.Stroke != nil {
		stroke := *view.Stroke
		d.Stroke = &stroke
	}
	for i, v := range view.Vertices {
		d.Points[i] = p.projection.ToScreen(p.projection.Project(v))
	}
	return d, true
}

// Draw renders m and hands the drawables to s in back-to-front order
func (p *Pipeline) Draw(m *mesh.Mesh, s Surface) error {
	drawables, err := p.Render(m)
	if err != nil {
		return err
	}
	for _, d := range drawables {
		s.DrawTriangle(d)
	}
	return nil
}
