package anim

import (
	"math"
	"testing"
)

func TestNamedTweenLookup(t *testing.T) {
	for _, name := range []string{"linear", "in-quad", "out-cubic", "in-out-elastic", "out-bounce"} {
		if _, ok := NamedTween(name); !ok {
			t.Errorf("NamedTween(%q) not found", name)
		}
	}
	if _, ok := NamedTween("wobble"); ok {
		t.Error("expected lookup failure for unknown tween")
	}
}

func TestNamedTweenDefaultsToLinear(t *testing.T) {
	tween, ok := NamedTween("")
	if !ok {
		t.Fatal("empty name should resolve")
	}
	if got := tween(0.3); math.Abs(got-0.3) > 1e-12 {
		t.Errorf("default tween(0.3) = %v, want 0.3", got)
	}
}

func TestTweenEndpoints(t *testing.T) {
	for name := range namedTweens {
		tween, _ := NamedTween(name)
		if got := tween(0); math.Abs(got) > 1e-9 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := tween(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestInQuad(t *testing.T) {
	tween, _ := NamedTween("in-quad")
	if got := tween(0.5); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("in-quad(0.5) = %v, want 0.25", got)
	}
}
