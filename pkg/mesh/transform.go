package mesh

import "github.com/philipparndt/gomesh/pkg/geometry"

// Translate moves every vertex by v
func (m *Mesh) Translate(v geometry.Vector3) {
	m.apply(func(p geometry.Vector3) geometry.Vector3 { return p.Add(v) })
}

// TranslateScalar adds k to every coordinate of every vertex
func (m *Mesh) TranslateScalar(k float64) {
	m.apply(func(p geometry.Vector3) geometry.Vector3 { return p.AddScalar(k) })
}

// Scale multiplies every vertex component-wise by v
func (m *Mesh) Scale(v geometry.Vector3) {
	m.apply(func(p geometry.Vector3) geometry.Vector3 { return p.MulVec(v) })
}

// ScaleScalar multiplies every vertex by k
func (m *Mesh) ScaleScalar(k float64) {
	m.apply(func(p geometry.Vector3) geometry.Vector3 { return p.Mul(k) })
}

// Fit centers the mesh on the origin and scales it uniformly so that its
// largest extent equals size. Meshes without extent are only centered.
func (m *Mesh) Fit(size float64) {
	bounds := m.Bounds()
	if bounds.IsEmpty() {
		return
	}
	m.Translate(bounds.Center().Mul(-1))
	if extent := bounds.MaxDimension(); extent > 0 {
		m.ScaleScalar(size / extent)
	}
}

func (m *Mesh) apply(fn func(geometry.Vector3) geometry.Vector3) {
	for i, v := range m.vertices {
		m.vertices[i] = fn(v)
	}
}
