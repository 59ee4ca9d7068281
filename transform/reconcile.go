package transform

// A MatchResult reports which sides of a pair were restructured during
// reconciliation, so callers can propagate changes to adjacent pairs.
type MatchResult int

const (
	Unchanged     MatchResult = 0
	ChangedFirst  MatchResult = 1
	ChangedSecond MatchResult = 2
	ChangedBoth   MatchResult = 3
)

// MatchPair mutates t0 and t1 so their primitive lists have equal
// length and pairwise-matching kinds, making them interpolable.
//
// Three strategies are attempted in order: pairwise generic widening
// when the lists are already the same length, a greedy subsequence
// match that pads the shorter list with identity primitives, and
// finally collapsing both transforms to a single decomposed matrix.
// Based largely on https://drafts.csswg.org/css-transforms-1/#interpolation-of-transforms
//
// Only the decomposition fallback can fail, on a non-decomposable
// matrix.
func MatchPair(t0, t1 *Transform, e Element) (MatchResult, error) {
	p0 := t0.primitives
	p1 := t1.primitives

	if len(p0) == len(p1) {
		result := Unchanged
		same := true
		for i := range p0 {
			k0 := p0[i].kind
			k1 := p1[i].kind
			if k0 == k1 {
				continue
			}
			if !tryMatchGeneric(&p0[i], &p1[i]) {
				same = false
				break
			}
			if p0[i].kind != k0 {
				result |= ChangedFirst
			}
			if p1[i].kind != k1 {
				result |= ChangedSecond
			}
		}
		if same {
			return result, nil
		}
	}

	if len(p0) != len(p1) {
		if result, ok := matchSubsequence(t0, t1); ok {
			return result, nil
		}
	}

	// No structural match; fall back to full matrix decomposition.
	if err := t0.CombineAndDecompose(e); err != nil {
		return Unchanged, err
	}
	if err := t1.CombineAndDecompose(e); err != nil {
		return Unchanged, err
	}
	return ChangedBoth, nil
}

// matchSubsequence matches the shorter list against the longer one in
// order, padding skipped positions with identity primitives of the
// longer list's kinds. For example (letters are kinds):
//
//	big:       a0 b0 c0 b1
//	small:        b2    b3
//	new small: a' b2 c' b3
func matchSubsequence(t0, t1 *Transform) (MatchResult, bool) {
	firstSmallest := len(t0.primitives) < len(t1.primitives)
	small := t0.primitives
	big := t1.primitives
	if !firstSmallest {
		small, big = big, small
	}

	// Indices into big where each small primitive found a match.
	matches := make([]int, 0, len(small)+1)
	iBig := 0
	changedBig := false
	matched := true

	for iSmall := 0; iSmall < len(small); iSmall++ {
		matched = false
		for ; iBig < len(big); iBig++ {
			bigKind := big[iBig].kind
			if small[iSmall].kind == bigKind {
				matched = true
			} else if tryMatchGeneric(&small[iSmall], &big[iBig]) {
				matched = true
				if big[iBig].kind != bigKind {
					changedBig = true
				}
			}
			if matched {
				matches = append(matches, iBig)
				iBig++
				break
			}
		}
		if !matched {
			return Unchanged, false
		}
	}

	// Sentinel so identities also fill positions after the last match.
	matches = append(matches, len(big))

	merged := make([]Primitive, 0, len(big))
	next := 0
	si := 0
	for _, m := range matches {
		for i := next; i < m; i++ {
			id := big[i]
			id.SetIdentity()
			merged = append(merged, id)
		}
		if m < len(big) {
			merged = append(merged, small[si])
			si++
		}
		next = m + 1
	}

	result := ChangedSecond
	if firstSmallest {
		t0.primitives = merged
		result = ChangedFirst
	} else {
		t1.primitives = merged
	}
	if changedBig {
		result = ChangedBoth
	}
	return result, true
}
