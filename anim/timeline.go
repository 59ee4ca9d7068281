package anim

import (
	"fmt"

	"github.com/matt-g-everett/animtx/transform"
)

// An Origin classifies who created an animation. The external manager
// uses it for precedence and removal policy; it is carried, not
// interpreted, here.
type Origin int

const (
	OriginUser Origin = iota
	OriginAnimation
	OriginTransition
)

// bracketEpsilon guards the blend-factor division against coincident
// keyframe times.
const bracketEpsilon = 1e-3

type keyframe struct {
	time  float64
	value Value
	tween Tween
}

// A Timeline drives one styled property across a sequence of
// keyframes. It is constructed with the property's current value as
// an implicit key at time zero, then fed further keys with AddKey and
// queried with Advance.
//
// A Timeline assumes exclusive access; the owning manager serializes
// all calls.
type Timeline struct {
	property    string
	unit        string
	specificity int

	duration      float64 // one iteration
	numIterations int     // -1 for infinite
	alternate     bool    // flip direction between iterations
	origin        Origin

	keys []keyframe

	lastUpdateTime      float64
	sinceIterationStart float64
	currentIteration    int
	reverse             bool
	complete            bool

	valid bool
}

// NewTimeline seeds a timeline with the property's current value at
// time zero. A value that cannot be made interpolable leaves the
// timeline permanently invalid; every later call is then a no-op.
func NewTimeline(property string, origin Origin, current Property, startWorldTime,
	duration float64, numIterations int, alternate bool) *Timeline {

	tl := new(Timeline)
	tl.property = property
	tl.unit = current.Unit
	tl.specificity = current.Specificity
	tl.duration = duration
	tl.numIterations = numIterations
	tl.alternate = alternate
	tl.origin = origin
	tl.lastUpdateTime = startWorldTime

	value, ok := normalize(current.Value)
	tl.valid = ok
	tl.keys = []keyframe{{0, value, func(t float64) float64 { return t }}}

	return tl
}

// AddKey appends a keyframe. The key is rejected, leaving the timeline
// untouched, when its unit differs from the timeline's, its value
// cannot be normalized, or transform reconciliation fails.
func (tl *Timeline) AddKey(time float64, p Property, e transform.Element, tween Tween) error {
	if !tl.valid {
		return fmt.Errorf("anim: timeline for %s is invalid", tl.property)
	}
	if p.Unit != tl.unit {
		return fmt.Errorf("anim: key unit %q does not match timeline unit %q", p.Unit, tl.unit)
	}
	if time < tl.keys[len(tl.keys)-1].time {
		return fmt.Errorf("anim: key time %v precedes last key", time)
	}

	value, ok := normalize(p.Value)
	if !ok {
		return fmt.Errorf("anim: value %v cannot be made interpolable", p.Value)
	}

	tl.keys = append(tl.keys, keyframe{time, value, tween})

	if ref, isTransform := value.(TransformRef); isTransform {
		err := ref.Transform.ResolveUnits(e)
		if err == nil {
			err = tl.prepareTransforms(e, len(tl.keys)-1)
		}
		if err != nil {
			tl.keys = tl.keys[:len(tl.keys)-1]
			return err
		}
	}

	return nil
}

// prepareTransforms reconciles each adjacent key pair so their
// primitive lists can be interpolated. Reconciling a pair can
// restructure the earlier key, which then needs re-reconciling against
// its own predecessor; the walk moves backward on such changes and
// forward otherwise. The iteration cap guards against
// non-convergence, which rejects the key.
func (tl *Timeline) prepareTransforms(e transform.Element, startIndex int) error {
	iterations := 0
	maxIterations := 3 * len(tl.keys)
	if startIndex < 1 {
		startIndex = 1
	}

	for i := startIndex; i < len(tl.keys); iterations++ {
		if iterations >= maxIterations {
			return fmt.Errorf("anim: transform reconciliation did not converge for %s", tl.property)
		}

		t0, ok0 := tl.keys[i-1].value.(TransformRef)
		t1, ok1 := tl.keys[i].value.(TransformRef)
		if !ok0 || !ok1 {
			return fmt.Errorf("anim: non-transform key on transform timeline %s", tl.property)
		}

		result, err := transform.MatchPair(t0.Transform, t1.Transform, e)
		if err != nil {
			return err
		}

		changedFirst := result == transform.ChangedFirst || result == transform.ChangedBoth
		if changedFirst && i > 1 {
			i--
		} else {
			i++
		}
	}
	return nil
}

// Advance moves the timeline to the given world time and returns the
// property to apply. The second return is false once the animation is
// complete or invalid, and for non-increasing times; time must never
// be rewound.
func (tl *Timeline) Advance(worldTime float64) (Property, bool) {
	if tl.complete || !tl.valid || worldTime-tl.lastUpdateTime <= 0 {
		return Property{}, false
	}

	dt := worldTime - tl.lastUpdateTime
	tl.lastUpdateTime = worldTime
	tl.sinceIterationStart += dt

	if tl.sinceIterationStart >= tl.duration {
		tl.currentIteration++

		if tl.currentIteration < tl.numIterations || tl.numIterations == -1 {
			// Carry the overshoot into the new iteration so boundary
			// crossings land where a continuous clock would put them.
			tl.sinceIterationStart -= tl.duration

			if tl.alternate {
				tl.reverse = !tl.reverse
			}
		} else {
			// Clamp so the terminal frame lands exactly on the end value.
			tl.complete = true
			tl.sinceIterationStart = tl.duration
		}
	}

	alpha, key0, key1 := tl.factorAndKeys()
	alpha = tl.keys[key1].tween(alpha)

	return Property{
		Value:       Interpolate(tl.keys[key0].value, tl.keys[key1].value, alpha),
		Unit:        tl.unit,
		Specificity: tl.specificity,
	}, true
}

// factorAndKeys locates the bracketing key pair for the current
// elapsed time and computes the raw blend factor between them.
func (tl *Timeline) factorAndKeys() (float64, int, int) {
	t := tl.sinceIterationStart
	if tl.reverse {
		t = tl.duration - t
	}

	key1 := -1
	for i := range tl.keys {
		if tl.keys[i].time >= t {
			key1 = i
			break
		}
	}
	if key1 < 0 {
		key1 = len(tl.keys) - 1
	}
	key0 := key1
	if key1 > 0 {
		key0 = key1 - 1
	}

	alpha := 0.0
	t0 := tl.keys[key0].time
	t1 := tl.keys[key1].time
	if t1-t0 > bracketEpsilon {
		alpha = (t - t0) / (t1 - t0)
	}
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}

	return alpha, key0, key1
}

// PropertyName returns the styled attribute this timeline drives.
func (tl *Timeline) PropertyName() string {
	return tl.property
}

// Duration returns the length of one iteration in seconds.
func (tl *Timeline) Duration() float64 {
	return tl.duration
}

// IsComplete reports whether the animation has finished.
func (tl *Timeline) IsComplete() bool {
	return tl.complete
}

// Origin returns who created the animation.
func (tl *Timeline) Origin() Origin {
	return tl.origin
}

// IsTransition reports whether the animation came from a declarative
// transition rule.
func (tl *Timeline) IsTransition() bool {
	return tl.origin == OriginTransition
}

// InterpolationFactor returns the current raw blend factor, for
// diagnostics.
func (tl *Timeline) InterpolationFactor() float64 {
	alpha, _, _ := tl.factorAndKeys()
	return alpha
}
