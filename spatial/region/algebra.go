// Copyright ©2024 The Region Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import "github.com/hilbertgrid/region/spatial/curve"

// Union returns the set of cells on in a or b.
func Union(c curve.SpaceFillingCurve, a, b PackedRegion) (PackedRegion, error) {
	return combineChecked(c, a, b, func(onA, onB bool) bool { return onA || onB })
}

// Intersect returns the set of cells on in both a and b.
func Intersect(c curve.SpaceFillingCurve, a, b PackedRegion) (PackedRegion, error) {
	return combineChecked(c, a, b, func(onA, onB bool) bool { return onA && onB })
}

// Difference returns the set of cells on in a but not in b.
func Difference(c curve.SpaceFillingCurve, a, b PackedRegion) (PackedRegion, error) {
	return combineChecked(c, a, b, func(onA, onB bool) bool { return onA && !onB })
}

// SymmetricDifference returns the set of cells on in exactly one of a, b.
func SymmetricDifference(c curve.SpaceFillingCurve, a, b PackedRegion) (PackedRegion, error) {
	return combineChecked(c, a, b, func(onA, onB bool) bool { return onA != onB })
}

// Complement returns the set of cells not in r, against the full domain of
// c. It is expressed as combine(r, Empty(), !onA): the combine core's
// termination rule (an exhausted side is pinned off for the rest of the
// curve) and its trailing-run canonicalisation (a run list never ends in a
// zero-length off run) together resolve the one ambiguous case spec.md
// flags — an input whose runs already cover the whole curve — the same way
// every other combine call does, rather than as a special case.
func Complement(c curve.SpaceFillingCurve, r PackedRegion) (PackedRegion, error) {
	return combineChecked(c, r, Empty(), func(onA, _ bool) bool { return !onA })
}

// Insert returns r with coords added as an on cell.
func Insert(c curve.SpaceFillingCurve, r PackedRegion, coords []int) (PackedRegion, error) {
	one, err := Point(c, coords)
	if err != nil {
		return PackedRegion{}, err
	}
	return Union(c, r, one)
}

// Remove returns r with coords cleared to an off cell.
func Remove(c curve.SpaceFillingCurve, r PackedRegion, coords []int) (PackedRegion, error) {
	one, err := Point(c, coords)
	if err != nil {
		return PackedRegion{}, err
	}
	return Difference(c, r, one)
}

func combineChecked(c curve.SpaceFillingCurve, a, b PackedRegion, f func(onA, onB bool) bool) (PackedRegion, error) {
	maxD := c.MaxDistance()
	if uint64(a.Covered()) > maxD || uint64(b.Covered()) > maxD {
		return PackedRegion{}, &OutOfDomainError{Reason: "packed region's covered run total exceeds the curve's maxDistance"}
	}
	return combine(maxD, a, b, f), nil
}

// combine co-iterates the run sequences of a and b, advancing to the
// nearer of their next run boundaries at each step (spec.md §4.3), and
// emits a new run list reflecting f(onA, onB) at every position. When one
// side is exhausted its state is pinned off and its next boundary is
// maxDistance, exactly as the algebra spec describes. The result never
// ends in a zero-length off run: a final off segment is simply not
// flushed, since PackedRegion's canonical form allows runs to sum to less
// than maxDistance.
func combine(maxDistance uint64, a, b PackedRegion, f func(onA, onB bool) bool) PackedRegion {
	var out []uint32
	var posA, posB uint64
	var ia, ib int
	var onA, onB bool
	var pos uint64
	started := false
	var lastState bool
	var skip uint64

	nextBoundary := func(runs []uint32, i int, pos uint64) uint64 {
		if i < len(runs) {
			return pos + uint64(runs[i])
		}
		return maxDistance
	}

	for pos < maxDistance {
		nextA := nextBoundary(a.Runs, ia, posA)
		nextB := nextBoundary(b.Runs, ib, posB)
		next := nextA
		if nextB < next {
			next = nextB
		}
		length := next - pos
		state := f(onA, onB)

		switch {
		case length == 0:
			// A zero-length segment (a zero run in an input) covers no
			// cells and must not flip the output.
		case !started:
			if state {
				out = append(out, 0)
			}
			skip = length
			lastState = state
			started = true
		case state == lastState:
			skip += length
		default:
			out = append(out, uint32(skip))
			skip = length
			lastState = state
		}

		pos = next
		if ia < len(a.Runs) && next == nextA {
			posA = nextA
			onA = !onA && ia+1 < len(a.Runs)
			ia++
		}
		if ib < len(b.Runs) && next == nextB {
			posB = nextB
			onB = !onB && ib+1 < len(b.Runs)
			ib++
		}
	}
	if lastState {
		out = append(out, uint32(skip))
	}
	return PackedRegion{Runs: out}
}
