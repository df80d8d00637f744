// Copyright ©2024 The Region Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import (
	"sort"

	"github.com/hilbertgrid/region/spatial/curve"
)

// RandomSource is the pluggable uniform random source every sampling
// function draws from. It is satisfied directly by *math/rand/v2.Rand —
// no adapter needed.
type RandomSource interface {
	Float64() float64
	IntN(n int) int
	Perm(n int) []int
}

// FractionalSample walks the on runs of r and includes each on cell
// independently with probability p, returning the chosen coordinates in
// curve order.
func FractionalSample(c curve.SpaceFillingCurve, r PackedRegion, p float64, src RandomSource) ([][]int, error) {
	if p < 0 || p > 1 {
		return nil, &InvalidArgumentError{Reason: "FractionalSample probability must be in [0, 1]"}
	}
	var out [][]int
	r.Each(func(d uint64) bool {
		if src.Float64() < p {
			out = append(out, c.Point(d))
		}
		return true
	})
	return out, nil
}

// SingleRandom returns one cell chosen uniformly among r's on cells. The
// second return value is false if r is empty.
func SingleRandom(c curve.SpaceFillingCurve, r PackedRegion, src RandomSource) ([]int, bool, error) {
	count := r.Count()
	if count == 0 {
		return nil, false, nil
	}
	target := src.IntN(count)
	var result []int
	seen := 0
	found := false
	r.Each(func(d uint64) bool {
		if seen == target {
			result = c.Point(d)
			found = true
			return false
		}
		seen++
		return true
	})
	return result, found, nil
}

// FixedSample chooses min(k, count) distinct on cells of r uniformly at
// random, returned in curve (distance) order. It never decompresses r: it
// draws k ordered random indices into [0, count), then walks the on runs
// while advancing a parallel counter, emitting a cell whenever a chosen
// index falls within the run currently being walked.
func FixedSample(c curve.SpaceFillingCurve, r PackedRegion, k int, src RandomSource) ([][]int, error) {
	if k < 0 {
		return nil, &InvalidArgumentError{Reason: "FixedSample k must be non-negative"}
	}
	count := r.Count()
	if k > count {
		k = count
	}
	if k == 0 {
		return nil, nil
	}
	indices := distinctSortedIndices(count, k, src)

	out := make([][]int, 0, k)
	cursor := 0
	next := 0
	r.Each(func(d uint64) bool {
		if next < len(indices) && indices[next] == cursor {
			out = append(out, c.Point(d))
			next++
			for next < len(indices) && indices[next] == cursor {
				// duplicate index can't occur (distinctSortedIndices
				// guarantees distinctness) but guard anyway in case a
				// caller-supplied RandomSource misbehaves.
				next++
			}
		}
		cursor++
		return next < len(indices)
	})
	return out, nil
}

// distinctSortedIndices draws k distinct indices from [0, n) using src's
// Perm when k is a large fraction of n (cheaper than repeated rejection
// sampling), or rejection sampling via IntN otherwise, then returns them
// sorted ascending — the same shape as a Floyd/reservoir ordered-distinct
// sample.
func distinctSortedIndices(n, k int, src RandomSource) []int {
	if k >= n {
		indices := make([]int, n)
		for i := range indices {
			indices[i] = i
		}
		return indices
	}
	if k*2 > n {
		perm := src.Perm(n)
		indices := append([]int(nil), perm[:k]...)
		sort.Ints(indices)
		return indices
	}
	chosen := make(map[int]struct{}, k)
	indices := make([]int, 0, k)
	for len(indices) < k {
		i := src.IntN(n)
		if _, ok := chosen[i]; ok {
			continue
		}
		chosen[i] = struct{}{}
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}
