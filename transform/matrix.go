package transform

import (
	"math"
)

// A Vector3 is a 3-component vector.
type Vector3 struct {
	X, Y, Z float64
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns a unit-length copy, or the zero vector unchanged.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

func (v Vector3) Lerp(o Vector3, alpha float64) Vector3 {
	return v.Add(o.Sub(v).Scale(alpha))
}

// A Vector4 is a 4-component vector.
type Vector4 struct {
	X, Y, Z, W float64
}

func (v Vector4) Lerp(o Vector4, alpha float64) Vector4 {
	return Vector4{
		v.X + (o.X-v.X)*alpha,
		v.Y + (o.Y-v.Y)*alpha,
		v.Z + (o.Z-v.Z)*alpha,
		v.W + (o.W-v.W)*alpha,
	}
}

// A Matrix4 is a 4x4 matrix in column-major storage with column-vector
// semantics (points transform as M*v), matching CSS matrix3d ordering.
type Matrix4 [16]float64

// Identity returns the identity matrix.
func Identity() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at the given row and column.
func (m Matrix4) At(row, col int) float64 {
	return m[col*4+row]
}

// Set assigns the element at the given row and column.
func (m *Matrix4) Set(row, col int, v float64) {
	m[col*4+row] = v
}

// Mul returns the product m*b.
func (m Matrix4) Mul(b Matrix4) Matrix4 {
	var out Matrix4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m.At(r, k) * b.At(k, c)
			}
			out.Set(r, c, sum)
		}
	}
	return out
}

// MulVector4 returns the product m*v.
func (m Matrix4) MulVector4(v Vector4) Vector4 {
	return Vector4{
		m.At(0, 0)*v.X + m.At(0, 1)*v.Y + m.At(0, 2)*v.Z + m.At(0, 3)*v.W,
		m.At(1, 0)*v.X + m.At(1, 1)*v.Y + m.At(1, 2)*v.Z + m.At(1, 3)*v.W,
		m.At(2, 0)*v.X + m.At(2, 1)*v.Y + m.At(2, 2)*v.Z + m.At(2, 3)*v.W,
		m.At(3, 0)*v.X + m.At(3, 1)*v.Y + m.At(3, 2)*v.Z + m.At(3, 3)*v.W,
	}
}

// Transpose returns the transposed matrix.
func (m Matrix4) Transpose() Matrix4 {
	var out Matrix4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out.Set(r, c, m.At(c, r))
		}
	}
	return out
}

// Determinant returns the matrix determinant.
func (m Matrix4) Determinant() float64 {
	_, det := m.inverse()
	return det
}

// Inverse returns the inverted matrix, or false for a singular matrix.
func (m Matrix4) Inverse() (Matrix4, bool) {
	inv, det := m.inverse()
	if det == 0 {
		return Identity(), false
	}
	s := 1 / det
	for i := range inv {
		inv[i] *= s
	}
	return inv, true
}

// inverse computes the adjugate and determinant (cofactor expansion).
func (m Matrix4) inverse() (Matrix4, float64) {
	var inv Matrix4

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
	return inv, det
}

// Translation returns a translation matrix.
func Translation(x, y, z float64) Matrix4 {
	m := Identity()
	m.Set(0, 3, x)
	m.Set(1, 3, y)
	m.Set(2, 3, z)
	return m
}

// Scaling returns a scaling matrix.
func Scaling(x, y, z float64) Matrix4 {
	m := Identity()
	m.Set(0, 0, x)
	m.Set(1, 1, y)
	m.Set(2, 2, z)
	return m
}

// Rotation returns a rotation matrix about an arbitrary axis. A zero
// axis yields the identity.
func Rotation(axis Vector3, angle float64) Matrix4 {
	if axis.Length() == 0 {
		return Identity()
	}
	a := axis.Normalize()
	s, c := math.Sin(angle), math.Cos(angle)
	t := 1 - c

	m := Identity()
	m.Set(0, 0, t*a.X*a.X+c)
	m.Set(0, 1, t*a.X*a.Y-s*a.Z)
	m.Set(0, 2, t*a.X*a.Z+s*a.Y)
	m.Set(1, 0, t*a.X*a.Y+s*a.Z)
	m.Set(1, 1, t*a.Y*a.Y+c)
	m.Set(1, 2, t*a.Y*a.Z-s*a.X)
	m.Set(2, 0, t*a.X*a.Z-s*a.Y)
	m.Set(2, 1, t*a.Y*a.Z+s*a.X)
	m.Set(2, 2, t*a.Z*a.Z+c)
	return m
}

// A Quaternion represents a 3D rotation.
type Quaternion struct {
	X, Y, Z, W float64
}

// QuaternionFromAxisAngle builds a rotation of angle radians about axis.
func QuaternionFromAxisAngle(axis Vector3, angle float64) Quaternion {
	a := axis.Normalize()
	s := math.Sin(angle / 2)
	return Quaternion{a.X * s, a.Y * s, a.Z * s, math.Cos(angle / 2)}
}

// AxisAngle extracts the axis and angle of the rotation. The identity
// rotation reports the Z axis.
func (q Quaternion) AxisAngle() (Vector3, float64) {
	w := math.Max(-1, math.Min(1, q.W))
	angle := 2 * math.Acos(w)
	s := math.Sqrt(1 - w*w)
	if s < 1e-9 {
		return Vector3{0, 0, 1}, angle
	}
	return Vector3{q.X / s, q.Y / s, q.Z / s}, angle
}

func (q Quaternion) Normalize() Quaternion {
	l := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if l == 0 {
		return Quaternion{0, 0, 0, 1}
	}
	return Quaternion{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

// Slerp spherically interpolates between two rotations.
func (q Quaternion) Slerp(o Quaternion, alpha float64) Quaternion {
	dot := q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
	if dot < 0 {
		o = Quaternion{-o.X, -o.Y, -o.Z, -o.W}
		dot = -dot
	}
	if dot > 0.9995 {
		// Nearly parallel, linear blend avoids a degenerate sin.
		return Quaternion{
			q.X + (o.X-q.X)*alpha,
			q.Y + (o.Y-q.Y)*alpha,
			q.Z + (o.Z-q.Z)*alpha,
			q.W + (o.W-q.W)*alpha,
		}.Normalize()
	}

	theta0 := math.Acos(dot)
	theta := theta0 * alpha
	s0 := math.Cos(theta) - dot*math.Sin(theta)/math.Sin(theta0)
	s1 := math.Sin(theta) / math.Sin(theta0)
	return Quaternion{
		q.X*s0 + o.X*s1,
		q.Y*s0 + o.Y*s1,
		q.Z*s0 + o.Z*s1,
		q.W*s0 + o.W*s1,
	}
}

// Matrix returns the rotation matrix for the quaternion.
func (q Quaternion) Matrix() Matrix4 {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	m := Identity()
	m.Set(0, 0, 1-2*(y*y+z*z))
	m.Set(0, 1, 2*(x*y-z*w))
	m.Set(0, 2, 2*(x*z+y*w))
	m.Set(1, 0, 2*(x*y+z*w))
	m.Set(1, 1, 1-2*(x*x+z*z))
	m.Set(1, 2, 2*(y*z-x*w))
	m.Set(2, 0, 2*(x*z-y*w))
	m.Set(2, 1, 2*(y*z+x*w))
	m.Set(2, 2, 1-2*(x*x+y*y))
	return m
}
