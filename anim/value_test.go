package anim

import (
	"math"
	"testing"

	"github.com/matt-g-everett/animtx/transform"
)

func TestInterpolateFloatExact(t *testing.T) {
	cases := []struct {
		a, b, f float64
	}{
		{0, 10, 0.5},
		{0, 10, 0},
		{0, 10, 1},
		{-5, 5, 0.25},
		{3.5, 3.5, 0.7},
	}
	for _, c := range cases {
		got := Interpolate(Float(c.a), Float(c.b), c.f)
		want := Float((1-c.f)*c.a + c.f*c.b)
		if got != want {
			t.Errorf("Interpolate(%v, %v, %v) = %v, want %v", c.a, c.b, c.f, got, want)
		}
	}
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func coloursClose(a, b Colour) bool {
	return absDiff(a.R, b.R) <= 1 && absDiff(a.G, b.G) <= 1 &&
		absDiff(a.B, b.B) <= 1 && absDiff(a.A, b.A) <= 1
}

func TestInterpolateColourIdentity(t *testing.T) {
	c := Colour{200, 100, 50, 255}
	for _, f := range []float64{0, 0.3, 0.5, 0.9, 1} {
		got := Interpolate(c, c, f).(Colour)
		if !coloursClose(got, c) {
			t.Errorf("Interpolate(c, c, %v) = %v, want %v", f, got, c)
		}
	}
}

func TestInterpolateColourEndpoints(t *testing.T) {
	c0 := Colour{10, 20, 30, 255}
	c1 := Colour{200, 150, 100, 128}

	if got := Interpolate(c0, c1, 0).(Colour); !coloursClose(got, c0) {
		t.Errorf("alpha=0: got %v, want %v", got, c0)
	}
	if got := Interpolate(c0, c1, 1).(Colour); !coloursClose(got, c1) {
		t.Errorf("alpha=1: got %v, want %v", got, c1)
	}
}

func TestInterpolateColourMidpointLinearLight(t *testing.T) {
	// Midpoint of black and white in the square-root approximation:
	// (0.5)^2 * 255 = 63.75, truncated to 63 per channel.
	got := Interpolate(Colour{0, 0, 0, 255}, Colour{255, 255, 255, 255}, 0.5).(Colour)
	want := Colour{63, 63, 63, 255}
	if !coloursClose(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInterpolateColourAlphaGammaSpace(t *testing.T) {
	got := Interpolate(Colour{0, 0, 0, 0}, Colour{0, 0, 0, 255}, 0.5).(Colour)
	if absDiff(got.A, 127) > 1 {
		t.Errorf("alpha channel = %v, want ~127 (plain lerp)", got.A)
	}
}

func TestInterpolateKindMismatchReturnsFirst(t *testing.T) {
	v0 := Float(1)
	got := Interpolate(v0, Colour{255, 0, 0, 255}, 0.5)
	if got != v0 {
		t.Errorf("mismatched kinds should return the first value, got %v", got)
	}
}

func TestInterpolateTransformSizeMismatchReturnsFirst(t *testing.T) {
	p0, _ := transform.NewPrimitive(transform.KindTranslateX, transform.Length{N: 0, U: transform.Px})
	p1, _ := transform.NewPrimitive(transform.KindTranslateX, transform.Length{N: 10, U: transform.Px})
	p2, _ := transform.NewPrimitive(transform.KindRotateZ, transform.Length{N: 1, U: transform.Rad})

	t0 := TransformRef{Transform: transform.NewTransform(p0)}
	t1 := TransformRef{Transform: transform.NewTransform(p1, p2)}

	got := Interpolate(t0, t1, 0.5)
	if got != t0 {
		t.Errorf("size mismatch should return the first transform, got %v", got)
	}
}

func TestInterpolateTransformPairwise(t *testing.T) {
	p0, _ := transform.NewPrimitive(transform.KindTranslateX, transform.Length{N: 0, U: transform.Px})
	r0, _ := transform.NewPrimitive(transform.KindRotateZ, transform.Length{N: 0, U: transform.Rad})
	p1, _ := transform.NewPrimitive(transform.KindTranslateX, transform.Length{N: 100, U: transform.Px})
	r1, _ := transform.NewPrimitive(transform.KindRotateZ, transform.Length{N: math.Pi, U: transform.Rad})

	t0 := TransformRef{Transform: transform.NewTransform(p0, r0)}
	t1 := TransformRef{Transform: transform.NewTransform(p1, r1)}

	mid := Interpolate(t0, t1, 0.5).(TransformRef)
	prims := mid.Transform.Primitives()
	if len(prims) != 2 {
		t.Fatalf("expected 2 primitives, got %d", len(prims))
	}
	if got := prims[0].Args()[0].N; got != 50 {
		t.Errorf("translation = %v, want 50", got)
	}
	if got := prims[1].Args()[0].N; math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("rotation = %v, want pi/2", got)
	}
}

func TestNormalizeCoercion(t *testing.T) {
	if v, ok := normalize(String("3.5")); !ok || v != Float(3.5) {
		t.Errorf("String coercion = %v, %v; want 3.5, true", v, ok)
	}
	if v, ok := normalize(Int(7)); !ok || v != Float(7) {
		t.Errorf("Int coercion = %v, %v; want 7, true", v, ok)
	}
	if _, ok := normalize(String("not a number")); ok {
		t.Error("expected coercion failure for non-numeric string")
	}
	if v, ok := normalize(Colour{1, 2, 3, 4}); !ok || v != (Colour{1, 2, 3, 4}) {
		t.Errorf("Colour should pass through, got %v, %v", v, ok)
	}
}
