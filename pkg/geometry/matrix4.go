package geometry

import "math"

// Matrix4 is a row-major 4x4 transform applied to row vectors (v' = v·M).
// The fourth column carries the projective terms used to compute w.
type Matrix4 [4][4]float64

// Identity returns the identity matrix
func Identity() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// RotationX returns a rotation about the X axis, theta in radians
func RotationX(theta float64) Matrix4 {
	s, c := math.Sincos(theta)
	return Matrix4{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	}
}

// RotationY returns a rotation about the Y axis, theta in radians
func RotationY(theta float64) Matrix4 {
	s, c := math.Sincos(theta)
	return Matrix4{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ returns a rotation about the Z axis, theta in radians
func RotationZ(theta float64) Matrix4 {
	s, c := math.Sincos(theta)
	return Matrix4{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul returns the product m·other. The product is not commutative:
// applied to row vectors, m acts first.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var out Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return out
}

// Transform applies m to v as the homogeneous row vector (x, y, z, 1)
// and divides by the resulting w. A w of exactly zero is treated as 1,
// leaving the components undivided.
func (m Matrix4) Transform(v Vector3) Vector3 {
	w := v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + m[3][3]
	if w == 0 {
		w = 1
	}
	out := Vector3{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + m[3][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + m[3][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + m[3][2],
	}
	if w != 1 {
		out.X /= w
		out.Y /= w
		out.Z /= w
	}
	return out
}
