package transform

import (
	"errors"
	"math"
)

// A Decomposed holds the canonical components extracted from a 4x4
// transform matrix. Any two decompositions can be interpolated, which
// makes this the universal fallback when primitive lists cannot be
// matched structurally.
type Decomposed struct {
	Translation Vector3
	Scale       Vector3
	Skew        [3]float64 // xy, xz, yz shear factors
	Perspective Vector4
	Quaternion  Quaternion
}

var errSingularMatrix = errors.New("transform: matrix is not decomposable")

func identityDecomposed() Decomposed {
	return Decomposed{
		Scale:       Vector3{1, 1, 1},
		Perspective: Vector4{0, 0, 0, 1},
		Quaternion:  Quaternion{0, 0, 0, 1},
	}
}

// Decompose extracts translation, rotation, scale, skew and perspective
// from m, following the CSS transforms unmatrix procedure. It fails on
// singular matrices.
func Decompose(m Matrix4) (Decomposed, error) {
	d := identityDecomposed()

	if m.At(3, 3) == 0 {
		return d, errSingularMatrix
	}
	s := 1 / m.At(3, 3)
	for i := range m {
		m[i] *= s
	}

	// perspectiveMatrix is m with the projection row removed; it must be
	// invertible for the perspective components to be solvable.
	pm := m
	pm.Set(3, 0, 0)
	pm.Set(3, 1, 0)
	pm.Set(3, 2, 0)
	pm.Set(3, 3, 1)
	pmInv, ok := pm.Inverse()
	if !ok {
		return d, errSingularMatrix
	}

	if m.At(3, 0) != 0 || m.At(3, 1) != 0 || m.At(3, 2) != 0 {
		rhs := Vector4{m.At(3, 0), m.At(3, 1), m.At(3, 2), m.At(3, 3)}
		d.Perspective = pmInv.Transpose().MulVector4(rhs)
		m.Set(3, 0, 0)
		m.Set(3, 1, 0)
		m.Set(3, 2, 0)
		m.Set(3, 3, 1)
	}

	d.Translation = Vector3{m.At(0, 3), m.At(1, 3), m.At(2, 3)}
	m.Set(0, 3, 0)
	m.Set(1, 3, 0)
	m.Set(2, 3, 0)

	// Gram-Schmidt over the basis columns yields scale, then shear.
	col := [3]Vector3{
		{m.At(0, 0), m.At(1, 0), m.At(2, 0)},
		{m.At(0, 1), m.At(1, 1), m.At(2, 1)},
		{m.At(0, 2), m.At(1, 2), m.At(2, 2)},
	}

	d.Scale.X = col[0].Length()
	if d.Scale.X == 0 {
		return d, errSingularMatrix
	}
	col[0] = col[0].Scale(1 / d.Scale.X)

	d.Skew[0] = col[0].Dot(col[1])
	col[1] = col[1].Sub(col[0].Scale(d.Skew[0]))
	d.Scale.Y = col[1].Length()
	if d.Scale.Y == 0 {
		return d, errSingularMatrix
	}
	col[1] = col[1].Scale(1 / d.Scale.Y)
	d.Skew[0] /= d.Scale.Y

	d.Skew[1] = col[0].Dot(col[2])
	col[2] = col[2].Sub(col[0].Scale(d.Skew[1]))
	d.Skew[2] = col[1].Dot(col[2])
	col[2] = col[2].Sub(col[1].Scale(d.Skew[2]))
	d.Scale.Z = col[2].Length()
	if d.Scale.Z == 0 {
		return d, errSingularMatrix
	}
	col[2] = col[2].Scale(1 / d.Scale.Z)
	d.Skew[1] /= d.Scale.Z
	d.Skew[2] /= d.Scale.Z

	// A negative determinant means the rotation part contains a flip;
	// fold it into the scale instead.
	if col[0].Dot(col[1].Cross(col[2])) < 0 {
		d.Scale = d.Scale.Scale(-1)
		for i := range col {
			col[i] = col[i].Scale(-1)
		}
	}

	d.Quaternion = quaternionFromColumns(col)
	return d, nil
}

func quaternionFromColumns(col [3]Vector3) Quaternion {
	r00, r01, r02 := col[0].X, col[1].X, col[2].X
	r10, r11, r12 := col[0].Y, col[1].Y, col[2].Y
	r20, r21, r22 := col[0].Z, col[1].Z, col[2].Z

	var q Quaternion
	trace := r00 + r11 + r22
	switch {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1)
		q.W = 0.25 / s
		q.X = (r21 - r12) * s
		q.Y = (r02 - r20) * s
		q.Z = (r10 - r01) * s
	case r00 > r11 && r00 > r22:
		s := 2 * math.Sqrt(1+r00-r11-r22)
		q.W = (r21 - r12) / s
		q.X = 0.25 * s
		q.Y = (r01 + r10) / s
		q.Z = (r02 + r20) / s
	case r11 > r22:
		s := 2 * math.Sqrt(1+r11-r00-r22)
		q.W = (r02 - r20) / s
		q.X = (r01 + r10) / s
		q.Y = 0.25 * s
		q.Z = (r12 + r21) / s
	default:
		s := 2 * math.Sqrt(1+r22-r00-r11)
		q.W = (r10 - r01) / s
		q.X = (r02 + r20) / s
		q.Y = (r12 + r21) / s
		q.Z = 0.25 * s
	}
	return q.Normalize()
}

// Matrix recomposes the components into a single transform matrix.
func (d Decomposed) Matrix() Matrix4 {
	m := Identity()
	m.Set(3, 0, d.Perspective.X)
	m.Set(3, 1, d.Perspective.Y)
	m.Set(3, 2, d.Perspective.Z)
	m.Set(3, 3, d.Perspective.W)

	m = m.Mul(Translation(d.Translation.X, d.Translation.Y, d.Translation.Z))
	m = m.Mul(d.Quaternion.Matrix())

	if d.Skew[2] != 0 {
		sk := Identity()
		sk.Set(1, 2, d.Skew[2])
		m = m.Mul(sk)
	}
	if d.Skew[1] != 0 {
		sk := Identity()
		sk.Set(0, 2, d.Skew[1])
		m = m.Mul(sk)
	}
	if d.Skew[0] != 0 {
		sk := Identity()
		sk.Set(0, 1, d.Skew[0])
		m = m.Mul(sk)
	}

	return m.Mul(Scaling(d.Scale.X, d.Scale.Y, d.Scale.Z))
}

// Interpolate blends two decompositions component-wise, with a
// spherical blend for the rotation.
func (d Decomposed) Interpolate(o Decomposed, alpha float64) Decomposed {
	out := d
	out.Translation = d.Translation.Lerp(o.Translation, alpha)
	out.Scale = d.Scale.Lerp(o.Scale, alpha)
	for i := range out.Skew {
		out.Skew[i] = d.Skew[i] + (o.Skew[i]-d.Skew[i])*alpha
	}
	out.Perspective = d.Perspective.Lerp(o.Perspective, alpha)
	out.Quaternion = d.Quaternion.Slerp(o.Quaternion, alpha)
	return out
}
