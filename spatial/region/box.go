// Copyright ©2024 The Region Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

// BoundingBox is a tuple of per-axis side lengths, each no larger than the
// corresponding entry of the curve's own dimensionality. It is used
// whenever a packed region is materialised, translated, or expanded: cells
// at coordinates at or beyond the box's own sides are treated as off even
// when they lie within the curve's domain.
type BoundingBox struct {
	Sides []int
}

// NewBoundingBox constructs a BoundingBox from the given per-axis sides.
// It panics if any side is negative.
func NewBoundingBox(sides ...int) BoundingBox {
	for _, s := range sides {
		if s < 0 {
			panic("region: bounding box side must be non-negative")
		}
	}
	cp := make([]int, len(sides))
	copy(cp, sides)
	return BoundingBox{Sides: cp}
}

// Area returns the product of the box's sides.
func (b BoundingBox) Area() int {
	a := 1
	for _, s := range b.Sides {
		a *= s
	}
	return a
}

// Contains reports whether coords lies within the box on every axis.
func (b BoundingBox) Contains(coords []int) bool {
	if len(coords) != len(b.Sides) {
		return false
	}
	for i, c := range coords {
		if c < 0 || c >= b.Sides[i] {
			return false
		}
	}
	return true
}

// Index computes the row-major bounded index of coords within the box:
// index = coords[0]*(Sides[1]*Sides[2]*...) + coords[1]*(Sides[2]*...) + ... + coords[N-1].
// It returns -1 if coords is out of range on any axis or has the wrong rank.
func (b BoundingBox) Index(coords []int) int {
	if len(coords) != len(b.Sides) {
		return -1
	}
	idx := 0
	for i, c := range coords {
		if c < 0 || c >= b.Sides[i] {
			return -1
		}
		idx *= b.Sides[i]
		idx += c
	}
	return idx
}

// FromIndex is the inverse of Index: it recovers the per-axis coordinates
// of a bounded index by successive modular division, starting from the
// last axis.
func (b BoundingBox) FromIndex(idx int) []int {
	coords := make([]int, len(b.Sides))
	for i := len(b.Sides) - 1; i >= 0; i-- {
		coords[i] = idx % b.Sides[i]
		idx /= b.Sides[i]
	}
	return coords
}
