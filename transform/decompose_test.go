package transform

import (
	"math"
	"testing"
)

func TestDecomposeTranslation(t *testing.T) {
	d, err := Decompose(Translation(10, -20, 5))
	if err != nil {
		t.Fatalf("decompose failed: %v", err)
	}
	if d.Translation != (Vector3{10, -20, 5}) {
		t.Errorf("translation = %v, want {10 -20 5}", d.Translation)
	}
	if math.Abs(d.Scale.X-1) > 1e-12 || math.Abs(d.Scale.Y-1) > 1e-12 || math.Abs(d.Scale.Z-1) > 1e-12 {
		t.Errorf("scale = %v, want unit", d.Scale)
	}
}

func TestDecomposeScale(t *testing.T) {
	d, err := Decompose(Scaling(2, 3, 4))
	if err != nil {
		t.Fatalf("decompose failed: %v", err)
	}
	if math.Abs(d.Scale.X-2) > 1e-12 || math.Abs(d.Scale.Y-3) > 1e-12 || math.Abs(d.Scale.Z-4) > 1e-12 {
		t.Errorf("scale = %v, want {2 3 4}", d.Scale)
	}
}

func TestDecomposeRecomposeRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		m    Matrix4
	}{
		{"translate", Translation(10, 20, 30)},
		{"rotate", Rotation(Vector3{1, 2, 3}, 1.2)},
		{"trs", Translation(10, 20, 30).
			Mul(Rotation(Vector3{0, 0, 1}, math.Pi/3)).
			Mul(Scaling(2, 3, 4))},
		{"skewed", func() Matrix4 {
			m := Identity()
			m.Set(0, 1, 0.5)
			return Translation(1, 2, 3).Mul(m)
		}()},
		{"perspective", func() Matrix4 {
			m := Identity()
			m.Set(3, 2, -0.01)
			return m.Mul(Rotation(Vector3{0, 1, 0}, 0.4))
		}()},
	}

	for _, c := range cases {
		d, err := Decompose(c.m)
		if err != nil {
			t.Errorf("%s: decompose failed: %v", c.name, err)
			continue
		}
		if got := d.Matrix(); !matricesClose(got, c.m, 1e-9) {
			t.Errorf("%s: recompose mismatch\ngot  %v\nwant %v", c.name, got, c.m)
		}
	}
}

func TestDecomposeSingularFails(t *testing.T) {
	if _, err := Decompose(Scaling(0, 1, 1)); err == nil {
		t.Error("expected failure for singular matrix")
	}

	var zero Matrix4
	if _, err := Decompose(zero); err == nil {
		t.Error("expected failure for zero matrix")
	}
}

func TestDecomposedInterpolate(t *testing.T) {
	d0, err := Decompose(Translation(0, 0, 0))
	if err != nil {
		t.Fatalf("decompose failed: %v", err)
	}
	d1, err := Decompose(Translation(10, 20, 30))
	if err != nil {
		t.Fatalf("decompose failed: %v", err)
	}

	mid := d0.Interpolate(d1, 0.5)
	if mid.Translation != (Vector3{5, 10, 15}) {
		t.Errorf("midpoint translation = %v, want {5 10 15}", mid.Translation)
	}

	if got := d0.Interpolate(d1, 0); got.Translation != d0.Translation {
		t.Errorf("alpha=0 translation = %v, want %v", got.Translation, d0.Translation)
	}
	if got := d0.Interpolate(d1, 1); got.Translation != d1.Translation {
		t.Errorf("alpha=1 translation = %v, want %v", got.Translation, d1.Translation)
	}
}
