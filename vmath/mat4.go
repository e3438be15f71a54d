package vmath

import (
	"math"
)

// Mat4 is a 4x4 matrix in column-major order (OpenGL layout):
// element (row r, col c) lives at index c*4+r
type Mat4 [16]float64

// Viewport describes the window rectangle for projection:
// origin (X, Y) at the bottom-left, size (W, H) in pixels
type Viewport struct {
	X, Y, W, H float64
}

// M4Identity returns the identity matrix
func M4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// M4Mul returns a*b (apply b first, then a)
func M4Mul(a, b Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += a[k*4+r] * b[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// M4MulVec4 transforms a homogeneous point (x, y, z, w)
func M4MulVec4(m Mat4, x, y, z, w float64) (ox, oy, oz, ow float64) {
	ox = m[0]*x + m[4]*y + m[8]*z + m[12]*w
	oy = m[1]*x + m[5]*y + m[9]*z + m[13]*w
	oz = m[2]*x + m[6]*y + m[10]*z + m[14]*w
	ow = m[3]*x + m[7]*y + m[11]*z + m[15]*w
	return
}

// M4Perspective builds a perspective projection (fovy in degrees)
func M4Perspective(fovyDeg, aspect, near, far float64) Mat4 {
	f := 1.0 / math.Tan(fovyDeg*math.Pi/360.0)
	var m Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / (near - far)
	m[11] = -1
	m[14] = 2 * far * near / (near - far)
	return m
}

// M4Translate builds a translation matrix
func M4Translate(x, y, z float64) Mat4 {
	m := M4Identity()
	m[12] = x
	m[13] = y
	m[14] = z
	return m
}

// M4RotateX builds a rotation about the X axis (degrees)
func M4RotateX(deg float64) Mat4 {
	s, c := math.Sincos(deg * math.Pi / 180.0)
	m := M4Identity()
	m[5] = c
	m[6] = s
	m[9] = -s
	m[10] = c
	return m
}

// M4RotateY builds a rotation about the Y axis (degrees)
func M4RotateY(deg float64) Mat4 {
	s, c := math.Sincos(deg * math.Pi / 180.0)
	m := M4Identity()
	m[0] = c
	m[2] = -s
	m[8] = s
	m[10] = c
	return m
}

// M4Invert returns the general inverse. ok is false when the matrix is
// singular, in which case the identity is returned
func M4Invert(m Mat4) (Mat4, bool) {
	var inv Mat4

	inv[0] = m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] +
		m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	inv[4] = -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] -
		m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	inv[8] = m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] +
		m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	inv[12] = -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] -
		m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]
	inv[1] = -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] -
		m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	inv[5] = m[0]*m[10]*m[15] - m[0]*m[11]*m[14] - m[8]*m[2]*m[15] +
		m[8]*m[3]*m[14] + m[12]*m[2]*m[11] - m[12]*m[3]*m[10]
	inv[9] = -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] + m[8]*m[1]*m[15] -
		m[8]*m[3]*m[13] - m[12]*m[1]*m[11] + m[12]*m[3]*m[9]
	inv[13] = m[0]*m[9]*m[14] - m[0]*m[10]*m[13] - m[8]*m[1]*m[14] +
		m[8]*m[2]*m[13] + m[12]*m[1]*m[10] - m[12]*m[2]*m[9]
	inv[2] = m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] +
		m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	inv[6] = -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] + m[4]*m[2]*m[15] -
		m[4]*m[3]*m[14] - m[12]*m[2]*m[7] + m[12]*m[3]*m[6]
	inv[10] = m[0]*m[5]*m[15] - m[0]*m[7]*m[13] - m[4]*m[1]*m[15] +
		m[4]*m[3]*m[13] + m[12]*m[1]*m[7] - m[12]*m[3]*m[5]
	inv[14] = -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] + m[4]*m[1]*m[14] -
		m[4]*m[2]*m[13] - m[12]*m[1]*m[6] + m[12]*m[2]*m[5]
	inv[3] = -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] -
		m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]
	inv[7] = m[0]*m[6]*m[11] - m[0]*m[7]*m[10] - m[4]*m[2]*m[11] +
		m[4]*m[3]*m[10] + m[8]*m[2]*m[7] - m[8]*m[3]*m[6]
	inv[11] = -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] + m[4]*m[1]*m[11] -
		m[4]*m[3]*m[9] - m[8]*m[1]*m[7] + m[8]*m[3]*m[5]
	inv[15] = m[0]*m[5]*m[10] - m[0]*m[6]*m[9] - m[4]*m[1]*m[10] +
		m[4]*m[2]*m[9] + m[8]*m[1]*m[6] - m[8]*m[2]*m[5]

	det := m[0]*inv[0] + m[1]*inv[4] + m[2]*inv[8] + m[3]*inv[12]
	if det == 0 {
		return M4Identity(), false
	}

	invDet := 1.0 / det
	for i := range inv {
		inv[i] *= invDet
	}
	return inv, true
}

// Project maps a world point to window coordinates through a combined
// modelview-projection matrix. Window origin is bottom-left; the returned Z
// is the normalized depth in [0, 1]. ok is false when the point sits on the
// camera plane (w = 0)
func Project(world Vec3, mvp Mat4, vp Viewport) (win Vec3, ok bool) {
	x, y, z, w := M4MulVec4(mvp, world.X, world.Y, world.Z, 1.0)
	if w == 0 {
		return Vec3{}, false
	}
	inv := 1.0 / w
	x, y, z = x*inv, y*inv, z*inv
	return Vec3{
		X: vp.X + vp.W*(x+1)/2,
		Y: vp.Y + vp.H*(y+1)/2,
		Z: (z + 1) / 2,
	}, true
}

// UnProject maps window coordinates (bottom-left origin, depth in [0, 1])
// back to world space through the inverse modelview-projection matrix
func UnProject(win Vec3, invMVP Mat4, vp Viewport) (world Vec3, ok bool) {
	if vp.W == 0 || vp.H == 0 {
		return Vec3{}, false
	}
	nx := (win.X-vp.X)/vp.W*2 - 1
	ny := (win.Y-vp.Y)/vp.H*2 - 1
	nz := win.Z*2 - 1

	x, y, z, w := M4MulVec4(invMVP, nx, ny, nz, 1.0)
	if w == 0 {
		return Vec3{}, false
	}
	inv := 1.0 / w
	return Vec3{X: x * inv, Y: y * inv, Z: z * inv}, true
}
