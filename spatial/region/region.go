// Copyright ©2024 The Region Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package region implements an immutable, run-length packed representation
// of regions over a space-filling curve, together with a set algebra,
// morphological transforms, and sampling over that representation —
// without ever materialising the underlying dense grid.
package region

// PackedRegion is an ordered sequence of non-negative run lengths
// representing alternating off/on runs along a curve, starting with an off
// run (possibly of length zero). A PackedRegion is immutable: no exported
// operation in this package mutates Runs in place, and every operation
// that derives a new region allocates a fresh backing slice.
type PackedRegion struct {
	Runs []uint32
}

// Count returns the number of on cells: the sum of the odd-indexed runs.
func (r PackedRegion) Count() int {
	total := 0
	for i := 1; i < len(r.Runs); i += 2 {
		total += int(r.Runs[i])
	}
	return total
}

// Covered returns the number of cells this region's runs traverse in
// total (on and off alike) — the sum of every run.
func (r PackedRegion) Covered() int {
	total := 0
	for _, run := range r.Runs {
		total += int(run)
	}
	return total
}

// IsEmpty reports whether r encodes the empty region (no on cells).
func (r PackedRegion) IsEmpty() bool { return r.Count() == 0 }

// Copy returns a PackedRegion with its own backing array, so that later
// mutation of r's slice (by a caller who reaches past this package's
// immutability discipline) cannot affect the copy, and vice versa.
func (r PackedRegion) Copy() PackedRegion {
	cp := make([]uint32, len(r.Runs))
	copy(cp, r.Runs)
	return PackedRegion{Runs: cp}
}

// Each calls fn once for every on-cell distance, in ascending curve-distance
// order. It stops early if fn returns false.
func (r PackedRegion) Each(fn func(d uint64) bool) {
	var d uint64
	on := false
	for _, run := range r.Runs {
		if on {
			for i := uint32(0); i < run; i++ {
				if !fn(d) {
					return
				}
				d++
			}
		} else {
			d += uint64(run)
		}
		on = !on
	}
}

// Contains reports whether distance d is an on cell of r.
func (r PackedRegion) Contains(d uint64) bool {
	var pos uint64
	on := false
	for _, run := range r.Runs {
		next := pos + uint64(run)
		if d < next {
			return on
		}
		pos = next
		on = !on
	}
	return false
}

// Empty returns the canonical empty region.
func Empty() PackedRegion { return PackedRegion{} }
