package anim

import (
	"testing"

	"github.com/matt-g-everett/animtx/transform"
)

func TestParsePropertyNumber(t *testing.T) {
	p, err := ParseProperty("0.5")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if p.Value != Float(0.5) || p.Unit != UnitNumber {
		t.Errorf("got %v/%q, want 0.5/number", p.Value, p.Unit)
	}
}

func TestParsePropertyUnits(t *testing.T) {
	p, err := ParseProperty("12px")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if p.Value != Float(12) || p.Unit != UnitPx {
		t.Errorf("got %v/%q, want 12/px", p.Value, p.Unit)
	}

	p, err = ParseProperty("45deg")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if p.Value != Float(45) || p.Unit != UnitDeg {
		t.Errorf("got %v/%q, want 45/deg", p.Value, p.Unit)
	}
}

func TestParsePropertyColour(t *testing.T) {
	p, err := ParseProperty("#20a0ff")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	c, ok := p.Value.(Colour)
	if !ok || p.Unit != UnitColour {
		t.Fatalf("got %T/%q, want Colour/color", p.Value, p.Unit)
	}
	if c != (Colour{0x20, 0xa0, 0xff, 0xff}) {
		t.Errorf("colour = %v", c)
	}

	p, err = ParseProperty("#20a0ff80")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := p.Value.(Colour).A; got != 0x80 {
		t.Errorf("alpha = %#x, want 0x80", got)
	}
}

func TestParsePropertyTransform(t *testing.T) {
	p, err := ParseProperty("translateX(50%) rotate(45deg) scale(2)")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	ref, ok := p.Value.(TransformRef)
	if !ok || p.Unit != UnitTransform {
		t.Fatalf("got %T/%q, want TransformRef/transform", p.Value, p.Unit)
	}

	prims := ref.Transform.Primitives()
	if len(prims) != 3 {
		t.Fatalf("expected 3 primitives, got %d", len(prims))
	}
	wantKinds := []transform.Kind{transform.KindTranslateX, transform.KindRotate2D, transform.KindScale2D}
	for i, k := range wantKinds {
		if prims[i].Kind() != k {
			t.Errorf("primitive %d kind = %v, want %v", i, prims[i].Kind(), k)
		}
	}
	if got := prims[0].Args()[0]; got != (transform.Length{N: 50, U: transform.Percent}) {
		t.Errorf("translateX arg = %v, want 50%%", got)
	}
}

func TestParsePropertyTransformMultiArg(t *testing.T) {
	p, err := ParseProperty("translate3d(1px, 2em, 3px)")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	args := p.Value.(TransformRef).Transform.Primitives()[0].Args()
	if args[1] != (transform.Length{N: 2, U: transform.Em}) {
		t.Errorf("second arg = %v, want 2em", args[1])
	}
}

func TestParsePropertyErrors(t *testing.T) {
	cases := []string{
		"",
		"abc",
		"#zzzzzz",
		"wobble(3)",
		"translateX(",
		"translateX(1px, 2px)",
		"scale(1px)",
	}
	for _, c := range cases {
		if _, err := ParseProperty(c); err == nil {
			t.Errorf("ParseProperty(%q) should fail", c)
		}
	}
}
