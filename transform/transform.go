package transform

import (
	"strings"
)

// A Transform is an ordered list of primitives, applied left to right.
type Transform struct {
	primitives []Primitive
}

// NewTransform creates a transform from its primitives.
func NewTransform(primitives ...Primitive) *Transform {
	t := new(Transform)
	t.primitives = primitives
	return t
}

// Primitives returns the live primitive list.
func (t *Transform) Primitives() []Primitive {
	return t.primitives
}

// AddPrimitive appends a primitive to the transform.
func (t *Transform) AddPrimitive(p Primitive) {
	t.primitives = append(t.primitives, p)
}

// ResolveUnits resolves every primitive's relative units against the
// element's layout context.
func (t *Transform) ResolveUnits(e Element) error {
	for i := range t.primitives {
		if err := t.primitives[i].ResolveUnits(e); err != nil {
			return err
		}
	}
	return nil
}

// CombineAndDecompose composes the whole primitive list into a single
// matrix and replaces the list with one decomposed primitive.
func (t *Transform) CombineAndDecompose(e Element) error {
	m := Identity()
	for _, p := range t.primitives {
		pm, err := p.ResolveMatrix(e)
		if err != nil {
			return err
		}
		m = m.Mul(pm)
	}

	d, err := Decompose(m)
	if err != nil {
		return err
	}

	t.primitives = []Primitive{NewDecomposedPrimitive(d)}
	return nil
}

func (t *Transform) String() string {
	parts := make([]string, len(t.primitives))
	for i, p := range t.primitives {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
