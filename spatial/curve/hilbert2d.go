// Copyright ©2024 The Region Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import "fmt"

// MaxHilbert2DOrder is the largest order NewHilbert2D accepts, giving a
// side length of 256 (2^8) and a maxDistance of 65536 — the primary 2D
// case this library is optimized for.
const MaxHilbert2DOrder = 8

// Hilbert2D is a 2-dimensional Hilbert curve over a power-of-two side up
// to 256. Its coordinate and reverse-lookup tables are computed once at
// construction time and never modified afterwards.
type Hilbert2D struct {
	order int
	side  int

	// xOf, yOf hold the coordinate that each distance maps to.
	xOf, yOf []uint16
	// distanceOf is the reverse table, keyed by x + side*y, giving O(1)
	// coordinate-to-distance lookup for Distance and DistanceAt.
	distanceOf []uint16
}

// NewHilbert2D constructs a Hilbert2D curve of side 2^order. order must be
// in [0, MaxHilbert2DOrder].
func NewHilbert2D(order int) (*Hilbert2D, error) {
	if order < 0 || order > MaxHilbert2DOrder {
		return nil, &InvalidArgumentError{Reason: fmt.Sprintf("hilbert2d order %d out of range [0, %d]", order, MaxHilbert2DOrder)}
	}
	side := 1 << order
	n := side * side

	h := &Hilbert2D{
		order:      order,
		side:       side,
		xOf:        make([]uint16, n),
		yOf:        make([]uint16, n),
		distanceOf: make([]uint16, n),
	}
	for d := 0; d < n; d++ {
		// hilbert2DPoint's own (a, b) recursion is built swapped relative
		// to this curve's documented axis convention (spec S6: e.g.
		// distance(255, 0) == 21845, distance(0, 255) == 65535); swapping
		// here keeps hilbert2DPoint itself the textbook, independently
		// checkable recursion.
		a, b := hilbert2DPoint(side, d)
		x, y := b, a
		h.xOf[d] = uint16(x)
		h.yOf[d] = uint16(y)
		h.distanceOf[x+side*y] = uint16(d)
	}
	return h, nil
}

// Dimensionality implements curve.SpaceFillingCurve.
func (h *Hilbert2D) Dimensionality() []int { return []int{h.side, h.side} }

// MaxDistance implements curve.SpaceFillingCurve.
func (h *Hilbert2D) MaxDistance() uint64 { return uint64(h.side) * uint64(h.side) }

// Point implements curve.SpaceFillingCurve. Out-of-range d clamps to the
// last valid distance, per the curve package's documented failure policy.
func (h *Hilbert2D) Point(d uint64) []int {
	d = h.clamp(d)
	return []int{int(h.xOf[d]), int(h.yOf[d])}
}

// Coordinate implements curve.SpaceFillingCurve.
func (h *Hilbert2D) Coordinate(d uint64, axis int) int {
	d = h.clamp(d)
	switch axis {
	case 0:
		return int(h.xOf[d])
	case 1:
		return int(h.yOf[d])
	default:
		panic("curve: axis out of range for Hilbert2D")
	}
}

// Distance implements curve.SpaceFillingCurve.
func (h *Hilbert2D) Distance(coords []int) int64 {
	if len(coords) != 2 {
		return Invalid
	}
	x, y := coords[0], coords[1]
	if x < 0 || x >= h.side || y < 0 || y >= h.side {
		return Invalid
	}
	return int64(h.distanceOf[x+h.side*y])
}

// DistanceAt is an allocation-free equivalent of Distance for in-range
// coordinates. It does not range-check x and y.
func (h *Hilbert2D) DistanceAt(x, y int) uint64 {
	return uint64(h.distanceOf[x+h.side*y])
}

// Side returns the curve's side length, 2^order.
func (h *Hilbert2D) Side() int { return h.side }

func (h *Hilbert2D) clamp(d uint64) uint64 {
	max := h.MaxDistance()
	if d >= max {
		return max - 1
	}
	return d
}

// hilbert2DPoint converts a distance d on a Hilbert curve of side n (a
// power of two) to (x, y) coordinates, using the standard rotate-and-flip
// recursion. Grounded on the classic iterative Hilbert d2xy algorithm (see
// _examples/sequentialread-modular-spatial-index/hilbert.go's Map, and the
// Wikipedia derivation cited by the teacher's spatial/curve doc comment).
func hilbert2DPoint(n, d int) (x, y int) {
	t := d
	for s := 1; s < n; s *= 2 {
		rx := 1 & (t / 2)
		ry := 1 & (t ^ rx)
		x, y = hilbert2DRotate(s, x, y, rx, ry)
		x += s * rx
		y += s * ry
		t /= 4
	}
	return x, y
}

// hilbert2DRotate rotates/reflects the quadrant (x, y) within an s×s block
// according to (rx, ry), the standard step of the Hilbert recursion.
func hilbert2DRotate(s, x, y, rx, ry int) (int, int) {
	if ry == 0 {
		if rx == 1 {
			x = s - 1 - x
			y = s - 1 - y
		}
		x, y = y, x
	}
	return x, y
}
