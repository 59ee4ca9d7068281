package transform

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// A Unit classifies how a primitive argument was authored.
type Unit int

const (
	Number Unit = iota
	Px
	Percent
	Em
	Vw
	Vh
	Deg
	Rad
)

var unitSuffixes = map[Unit]string{
	Number:  "",
	Px:      "px",
	Percent: "%",
	Em:      "em",
	Vw:      "vw",
	Vh:      "vh",
	Deg:     "deg",
	Rad:     "rad",
}

// A Length is a number paired with its unit.
type Length struct {
	N float64
	U Unit
}

func (l Length) String() string {
	return strconv.FormatFloat(l.N, 'g', 6, 64) + unitSuffixes[l.U]
}

// radians returns the angle in radians regardless of authored unit.
func (l Length) radians() float64 {
	if l.U == Deg {
		return l.N * math.Pi / 180
	}
	return l.N
}

// A Kind identifies a transform primitive type.
type Kind int

const (
	KindTranslateX Kind = iota
	KindTranslateY
	KindTranslateZ
	KindTranslate2D
	KindTranslate3D
	KindScaleX
	KindScaleY
	KindScaleZ
	KindScale2D
	KindScale3D
	KindRotateX
	KindRotateY
	KindRotateZ
	KindRotate2D
	KindRotate3D
	KindSkewX
	KindSkewY
	KindSkew2D
	KindPerspective
	KindMatrix3D
	KindDecomposed

	kindNone Kind = -1
)

// Argument classes drive unit resolution: percentages resolve against
// the element width for X lengths and height for Y lengths, and are
// invalid for Z lengths.
type argClass int

const (
	argNumber argClass = iota
	argLengthX
	argLengthY
	argLengthZ
	argAngle
)

type kindSpec struct {
	name     string
	args     []argClass
	identity []Length
	generic  Kind // shared widened form, kindNone when not widenable
}

var kindSpecs = map[Kind]kindSpec{
	KindTranslateX: {"translateX", []argClass{argLengthX},
		[]Length{{0, Px}}, KindTranslate3D},
	KindTranslateY: {"translateY", []argClass{argLengthY},
		[]Length{{0, Px}}, KindTranslate3D},
	KindTranslateZ: {"translateZ", []argClass{argLengthZ},
		[]Length{{0, Px}}, KindTranslate3D},
	KindTranslate2D: {"translate", []argClass{argLengthX, argLengthY},
		[]Length{{0, Px}, {0, Px}}, KindTranslate3D},
	KindTranslate3D: {"translate3d", []argClass{argLengthX, argLengthY, argLengthZ},
		[]Length{{0, Px}, {0, Px}, {0, Px}}, KindTranslate3D},
	KindScaleX: {"scaleX", []argClass{argNumber},
		[]Length{{1, Number}}, KindScale3D},
	KindScaleY: {"scaleY", []argClass{argNumber},
		[]Length{{1, Number}}, KindScale3D},
	KindScaleZ: {"scaleZ", []argClass{argNumber},
		[]Length{{1, Number}}, KindScale3D},
	KindScale2D: {"scale", []argClass{argNumber, argNumber},
		[]Length{{1, Number}, {1, Number}}, KindScale3D},
	KindScale3D: {"scale3d", []argClass{argNumber, argNumber, argNumber},
		[]Length{{1, Number}, {1, Number}, {1, Number}}, KindScale3D},
	KindRotateX: {"rotateX", []argClass{argAngle},
		[]Length{{0, Rad}}, KindRotate3D},
	KindRotateY: {"rotateY", []argClass{argAngle},
		[]Length{{0, Rad}}, KindRotate3D},
	KindRotateZ: {"rotateZ", []argClass{argAngle},
		[]Length{{0, Rad}}, KindRotate3D},
	KindRotate2D: {"rotate", []argClass{argAngle},
		[]Length{{0, Rad}}, KindRotate3D},
	KindRotate3D: {"rotate3d", []argClass{argNumber, argNumber, argNumber, argAngle},
		[]Length{{0, Number}, {0, Number}, {1, Number}, {0, Rad}}, KindRotate3D},
	KindSkewX: {"skewX", []argClass{argAngle},
		[]Length{{0, Rad}}, KindSkew2D},
	KindSkewY: {"skewY", []argClass{argAngle},
		[]Length{{0, Rad}}, KindSkew2D},
	KindSkew2D: {"skew", []argClass{argAngle, argAngle},
		[]Length{{0, Rad}, {0, Rad}}, KindSkew2D},
	KindPerspective: {"perspective", []argClass{argLengthZ},
		[]Length{{0, Px}}, kindNone},
	KindMatrix3D: {"matrix3d", matrixArgs(),
		identityMatrixArgs(), kindNone},
	KindDecomposed: {"decomposed", nil, nil, kindNone},
}

func matrixArgs() []argClass {
	args := make([]argClass, 16)
	for i := range args {
		args[i] = argNumber
	}
	return args
}

func identityMatrixArgs() []Length {
	id := Identity()
	args := make([]Length, 16)
	for i := range args {
		args[i] = Length{id[i], Number}
	}
	return args
}

// KindByName looks up a primitive kind from its CSS-style function
// name. Matching is case-insensitive.
func KindByName(name string) (Kind, bool) {
	for k, spec := range kindSpecs {
		if strings.EqualFold(spec.name, name) {
			return k, true
		}
	}
	return kindNone, false
}

// A Primitive is one typed entry of a transform's primitive list.
type Primitive struct {
	kind       Kind
	args       []Length
	decomposed *Decomposed // only for KindDecomposed
}

// NewPrimitive creates a primitive, validating argument arity.
func NewPrimitive(kind Kind, args ...Length) (Primitive, error) {
	spec, ok := kindSpecs[kind]
	if !ok || kind == KindDecomposed {
		return Primitive{}, fmt.Errorf("transform: unknown primitive kind %d", kind)
	}
	if len(args) != len(spec.args) {
		return Primitive{}, fmt.Errorf("transform: %s takes %d arguments, got %d",
			spec.name, len(spec.args), len(args))
	}
	for i, a := range args {
		if !unitFitsClass(a.U, spec.args[i]) {
			return Primitive{}, fmt.Errorf("transform: %s argument %d: unexpected unit in %s",
				spec.name, i, a)
		}
	}
	p := Primitive{kind: kind, args: make([]Length, len(args))}
	copy(p.args, args)
	return p, nil
}

// NewDecomposedPrimitive wraps a decomposition as a primitive.
func NewDecomposedPrimitive(d Decomposed) Primitive {
	return Primitive{kind: KindDecomposed, decomposed: &d}
}

func (p Primitive) Kind() Kind {
	return p.kind
}

// Args returns a copy of the primitive's arguments.
func (p Primitive) Args() []Length {
	out := make([]Length, len(p.args))
	copy(out, p.args)
	return out
}

// SetIdentity resets the primitive's values to the identity of its
// kind, keeping the kind itself.
func (p *Primitive) SetIdentity() {
	if p.kind == KindDecomposed {
		d := identityDecomposed()
		p.decomposed = &d
		return
	}
	spec := kindSpecs[p.kind]
	p.args = make([]Length, len(spec.identity))
	copy(p.args, spec.identity)
}

// ResolveUnits converts relative lengths to absolute pixels and angles
// to radians, using the element's layout context.
func (p *Primitive) ResolveUnits(e Element) error {
	spec := kindSpecs[p.kind]
	for i := range p.args {
		n, err := resolveArg(p.args[i], spec.args[i], e)
		if err != nil {
			return fmt.Errorf("transform: %s argument %d: %w", spec.name, i, err)
		}
		unit := Px
		switch spec.args[i] {
		case argNumber:
			unit = Number
		case argAngle:
			unit = Rad
		}
		p.args[i] = Length{n, unit}
	}
	return nil
}

// unitFitsClass reports whether an authored unit is acceptable for an
// argument class. Unitless numbers are allowed for lengths (read as
// pixels).
func unitFitsClass(u Unit, class argClass) bool {
	switch class {
	case argNumber:
		return u == Number
	case argAngle:
		return u == Deg || u == Rad
	}
	return u != Deg && u != Rad
}

func resolveArg(l Length, class argClass, e Element) (float64, error) {
	switch class {
	case argNumber:
		if l.U != Number {
			return 0, fmt.Errorf("expected plain number, got %s", l)
		}
		return l.N, nil
	case argAngle:
		if l.U != Deg && l.U != Rad {
			return 0, fmt.Errorf("expected angle, got %s", l)
		}
		return l.radians(), nil
	}

	switch l.U {
	case Px, Number:
		return l.N, nil
	case Em:
		return l.N * e.FontSize(), nil
	case Vw:
		return l.N / 100 * e.ViewportWidth(), nil
	case Vh:
		return l.N / 100 * e.ViewportHeight(), nil
	case Percent:
		switch class {
		case argLengthX:
			return l.N / 100 * e.Width(), nil
		case argLengthY:
			return l.N / 100 * e.Height(), nil
		}
		return 0, fmt.Errorf("percentage not valid here: %s", l)
	}
	return 0, fmt.Errorf("expected length, got %s", l)
}

// toGeneric widens the primitive to its generic kind in place. Only a
// representational change; the effective value is preserved.
func (p *Primitive) toGeneric() {
	switch p.kind {
	case KindTranslateX:
		p.args = []Length{p.args[0], {0, Px}, {0, Px}}
	case KindTranslateY:
		p.args = []Length{{0, Px}, p.args[0], {0, Px}}
	case KindTranslateZ:
		p.args = []Length{{0, Px}, {0, Px}, p.args[0]}
	case KindTranslate2D:
		p.args = []Length{p.args[0], p.args[1], {0, Px}}
	case KindScaleX:
		p.args = []Length{p.args[0], {1, Number}, {1, Number}}
	case KindScaleY:
		p.args = []Length{{1, Number}, p.args[0], {1, Number}}
	case KindScaleZ:
		p.args = []Length{{1, Number}, {1, Number}, p.args[0]}
	case KindScale2D:
		p.args = []Length{p.args[0], p.args[1], {1, Number}}
	case KindRotateX:
		p.args = []Length{{1, Number}, {0, Number}, {0, Number}, p.args[0]}
	case KindRotateY:
		p.args = []Length{{0, Number}, {1, Number}, {0, Number}, p.args[0]}
	case KindRotateZ, KindRotate2D:
		p.args = []Length{{0, Number}, {0, Number}, {1, Number}, p.args[0]}
	case KindSkewX:
		p.args = []Length{p.args[0], {0, Rad}}
	case KindSkewY:
		p.args = []Length{{0, Rad}, p.args[0]}
	default:
		return
	}
	p.kind = kindSpecs[p.kind].generic
}

// tryMatchGeneric widens one or both primitives so their kinds match,
// reporting whether a shared kind was reached.
func tryMatchGeneric(p, q *Primitive) bool {
	if p.kind == q.kind {
		return true
	}
	gp := kindSpecs[p.kind].generic
	gq := kindSpecs[q.kind].generic
	if gp == kindNone || gp != gq {
		return false
	}
	if p.kind != gp {
		p.toGeneric()
	}
	if q.kind != gq {
		q.toGeneric()
	}
	return true
}

// Interpolate blends two primitives of the same kind using the kind's
// own rule.
func (p Primitive) Interpolate(q Primitive, alpha float64) (Primitive, error) {
	if p.kind != q.kind {
		return Primitive{}, fmt.Errorf("transform: cannot interpolate %s with %s",
			kindSpecs[p.kind].name, kindSpecs[q.kind].name)
	}

	switch p.kind {
	case KindDecomposed:
		return NewDecomposedPrimitive(p.decomposed.Interpolate(*q.decomposed, alpha)), nil
	case KindRotate3D:
		return p.interpolateRotation(q, alpha), nil
	case KindMatrix3D:
		d0, err := Decompose(p.argMatrix())
		if err != nil {
			return Primitive{}, err
		}
		d1, err := Decompose(q.argMatrix())
		if err != nil {
			return Primitive{}, err
		}
		m := d0.Interpolate(d1, alpha).Matrix()
		out := Primitive{kind: KindMatrix3D, args: make([]Length, 16)}
		for i := range m {
			out.args[i] = Length{m[i], Number}
		}
		return out, nil
	}

	out := Primitive{kind: p.kind, args: make([]Length, len(p.args))}
	for i := range p.args {
		n := p.args[i].N + (q.args[i].N-p.args[i].N)*alpha
		out.args[i] = Length{n, p.args[i].U}
	}
	return out, nil
}

// interpolateRotation lerps the angle when both rotations share an
// axis, and falls back to a quaternion slerp when they do not.
func (p Primitive) interpolateRotation(q Primitive, alpha float64) Primitive {
	pa := Vector3{p.args[0].N, p.args[1].N, p.args[2].N}.Normalize()
	qa := Vector3{q.args[0].N, q.args[1].N, q.args[2].N}.Normalize()

	if pa.Sub(qa).Length() < 1e-6 {
		angle := p.args[3].radians() + (q.args[3].radians()-p.args[3].radians())*alpha
		return Primitive{kind: KindRotate3D, args: []Length{
			{pa.X, Number}, {pa.Y, Number}, {pa.Z, Number}, {angle, Rad},
		}}
	}

	q0 := QuaternionFromAxisAngle(pa, p.args[3].radians())
	q1 := QuaternionFromAxisAngle(qa, q.args[3].radians())
	axis, angle := q0.Slerp(q1, alpha).AxisAngle()
	return Primitive{kind: KindRotate3D, args: []Length{
		{axis.X, Number}, {axis.Y, Number}, {axis.Z, Number}, {angle, Rad},
	}}
}

// argMatrix reads a Matrix3D primitive's arguments as a matrix.
func (p Primitive) argMatrix() Matrix4 {
	var m Matrix4
	for i := range m {
		m[i] = p.args[i].N
	}
	return m
}

// ResolveMatrix composes the primitive into a 4x4 matrix, resolving
// relative units against the element first.
func (p Primitive) ResolveMatrix(e Element) (Matrix4, error) {
	if p.kind == KindDecomposed {
		return p.decomposed.Matrix(), nil
	}

	g := Primitive{kind: p.kind, args: p.Args()}
	if err := g.ResolveUnits(e); err != nil {
		return Identity(), err
	}
	g.toGeneric()

	switch g.kind {
	case KindTranslate3D:
		return Translation(g.args[0].N, g.args[1].N, g.args[2].N), nil
	case KindScale3D:
		return Scaling(g.args[0].N, g.args[1].N, g.args[2].N), nil
	case KindRotate3D:
		axis := Vector3{g.args[0].N, g.args[1].N, g.args[2].N}
		return Rotation(axis, g.args[3].N), nil
	case KindSkew2D:
		m := Identity()
		m.Set(0, 1, math.Tan(g.args[0].N))
		m.Set(1, 0, math.Tan(g.args[1].N))
		return m, nil
	case KindPerspective:
		m := Identity()
		if g.args[0].N > 0 {
			m.Set(3, 2, -1/g.args[0].N)
		}
		return m, nil
	case KindMatrix3D:
		return g.argMatrix(), nil
	}
	return Identity(), fmt.Errorf("transform: cannot resolve %s", kindSpecs[p.kind].name)
}

func (p Primitive) String() string {
	if p.kind == KindDecomposed {
		m := p.decomposed.Matrix()
		parts := make([]string, len(m))
		for i := range m {
			parts[i] = strconv.FormatFloat(m[i], 'g', 6, 64)
		}
		return "matrix3d(" + strings.Join(parts, ", ") + ")"
	}
	parts := make([]string, len(p.args))
	for i, a := range p.args {
		parts[i] = a.String()
	}
	return kindSpecs[p.kind].name + "(" + strings.Join(parts, ", ") + ")"
}
