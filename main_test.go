package main

import (
	"math"
	"testing"

	"github.com/matt-g-everett/animtx/anim"
	"github.com/matt-g-everett/animtx/transform"
)

func TestBuildTimelinesResolvesSeedUnits(t *testing.T) {
	a := newApp()
	a.Config.Animations = []anim.AnimationConfig{
		{
			Property:   "transform",
			Duration:   1,
			Iterations: 1,
			From:       "rotateZ(45deg)",
			Keys:       []anim.KeyConfig{{Time: 1, Value: "rotateZ(90deg)", Tween: "linear"}},
		},
		{
			Property:   "transform",
			Duration:   1,
			Iterations: 1,
			From:       "translateX(50%)",
			Keys:       []anim.KeyConfig{{Time: 1, Value: "translateX(100px)", Tween: "linear"}},
		},
	}
	element := transform.NewBox(200, 100, 16, 1000, 500)

	tls := a.buildTimelines(element)
	if len(tls) != 2 {
		t.Fatalf("expected 2 timelines, got %d", len(tls))
	}

	// Keys resolve deg to rad, so an unresolved seed would blend 45
	// against pi/2 instead of pi/4 against pi/2.
	p, ok := tls[0].Advance(0.5)
	if !ok {
		t.Fatal("Advance returned no value")
	}
	prims := p.Value.(anim.TransformRef).Transform.Primitives()
	if got, want := prims[0].Args()[0].N, 3*math.Pi/8; math.Abs(got-want) > 1e-12 {
		t.Errorf("blended rotation = %v rad, want %v", got, want)
	}

	// 50% of the 200px wide element is 100px, so the translation holds
	// steady at 100.
	p, ok = tls[1].Advance(0.5)
	if !ok {
		t.Fatal("Advance returned no value")
	}
	prims = p.Value.(anim.TransformRef).Transform.Primitives()
	if got := prims[0].Args()[0].N; math.Abs(got-100) > 1e-12 {
		t.Errorf("blended translation = %v, want 100", got)
	}
}
