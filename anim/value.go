package anim

import (
	"log"
	"strconv"
	"strings"

	"github.com/matt-g-everett/animtx/transform"
)

// A Value is one animatable property value. Float, Colour and
// TransformRef interpolate directly; Int and String are raw inputs
// that normalization coerces to Float.
type Value interface {
	isValue()
	String() string
}

// A Float is a plain scalar value.
type Float float64

func (Float) isValue() {}

func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// An Int is a raw integer input, coerced to Float on normalization.
type Int int

func (Int) isValue() {}

func (i Int) String() string {
	return strconv.Itoa(int(i))
}

// A String is a raw textual input, coerced to Float on normalization.
type String string

func (String) isValue() {}

func (s String) String() string {
	return string(s)
}

// A TransformRef is a shared reference to a transform primitive list.
type TransformRef struct {
	Transform *transform.Transform
}

func (TransformRef) isValue() {}

func (t TransformRef) String() string {
	return t.Transform.String()
}

// A Property is a value together with the unit and specificity tags
// assigned by the style system. Both tags are opaque here and echoed
// unchanged on interpolated output.
type Property struct {
	Value       Value
	Unit        string
	Specificity int
}

func (p Property) String() string {
	switch p.Value.(type) {
	case Float, Int:
		switch p.Unit {
		case "", UnitNumber, UnitColour, UnitTransform:
			return p.Value.String()
		}
		return p.Value.String() + p.Unit
	}
	if p.Value == nil {
		return ""
	}
	return p.Value.String()
}

// Unit tags assigned by the parse layer.
const (
	UnitNumber    = "number"
	UnitPx        = "px"
	UnitDeg       = "deg"
	UnitColour    = "color"
	UnitTransform = "transform"
)

// normalize classifies a value as interpolable, coercing raw inputs to
// Float. A false return means the value can never be interpolated.
func normalize(v Value) (Value, bool) {
	switch t := v.(type) {
	case Float, Colour, TransformRef:
		return v, true
	case Int:
		return Float(t), true
	case String:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(t)), 64)
		if err != nil {
			return v, false
		}
		return Float(f), true
	}
	return v, false
}

// Interpolate blends two values of the same kind. A kind mismatch is
// not fatal: it logs a warning and returns v0 unchanged.
func Interpolate(v0, v1 Value, alpha float64) Value {
	switch a := v0.(type) {
	case Float:
		b, ok := v1.(Float)
		if !ok {
			break
		}
		return Float((1-alpha)*float64(a) + alpha*float64(b))
	case Colour:
		b, ok := v1.(Colour)
		if !ok {
			break
		}
		return a.Blend(b, alpha)
	case TransformRef:
		b, ok := v1.(TransformRef)
		if !ok {
			break
		}
		return interpolateTransforms(a, b, alpha)
	}

	log.Printf("Interpolating values must be of the same kind, got %T and %T", v0, v1)
	return v0
}

func interpolateTransforms(t0, t1 TransformRef, alpha float64) Value {
	p0 := t0.Transform.Primitives()
	p1 := t1.Transform.Primitives()

	if len(p0) != len(p1) {
		log.Printf("Transform primitives not of same size during interpolation")
		return t0
	}

	out := transform.NewTransform()
	for i := range p0 {
		p, err := p0[i].Interpolate(p1[i], alpha)
		if err != nil {
			log.Printf("Transform primitives not interpolable: %v", err)
			return t0
		}
		out.AddPrimitive(p)
	}
	return TransformRef{Transform: out}
}
