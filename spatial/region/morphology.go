// Copyright ©2024 The Region Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import (
	"github.com/hilbertgrid/region/internal/bitset"
	"github.com/hilbertgrid/region/spatial/curve"
	"gonum.org/v1/gonum/spatial/r2"
)

// Metric selects the distance function Radiate uses to shape its visible
// radius.
type Metric int

const (
	Manhattan Metric = iota
	Chebyshev
	Euclidean
)

// Translate shifts every on cell of r by (dx, dy), clamping the result to
// [0, box.Sides[0]) × [0, box.Sides[1]) rather than dropping it — cells
// pushed past an edge pile up on the border.
func Translate(c curve.SpaceFillingCurve, r PackedRegion, dx, dy int, box BoundingBox) (PackedRegion, error) {
	if len(box.Sides) != 2 {
		return PackedRegion{}, &StrategyMismatchError{Reason: "Translate requires a 2-dimensional bounding box"}
	}
	if box.Area() == 0 {
		return Empty(), nil
	}
	bs := bitset.New(int(c.MaxDistance()))
	r.Each(func(d uint64) bool {
		coords := c.Point(d)
		x := clampInt(coords[0]+dx, 0, box.Sides[0]-1)
		y := clampInt(coords[1]+dy, 0, box.Sides[1]-1)
		if nd := c.Distance([]int{x, y}); nd != curve.Invalid {
			bs.Add(int(nd))
		}
		return true
	})
	return packFromBitset(bs), nil
}

// Expand returns r grown by every cell within radius of an on cell, under
// the Chebyshev metric (eightWay) or the Manhattan metric, clamped to box.
// Radius 0 returns r unchanged.
func Expand(c curve.SpaceFillingCurve, r PackedRegion, radius int, box BoundingBox, eightWay bool) (PackedRegion, error) {
	if radius < 0 {
		return PackedRegion{}, &InvalidArgumentError{Reason: "Expand radius must be non-negative"}
	}
	if r.IsEmpty() {
		return Empty(), nil
	}
	if radius == 0 {
		return r.Copy(), nil
	}
	dims := len(box.Sides)
	offsets := neighborOffsets(dims, radius, eightWay)
	bs := bitset.New(int(c.MaxDistance()))
	r.Each(func(d uint64) bool {
		coords := c.Point(d)
		for _, off := range offsets {
			nc := addOffset(coords, off)
			if !box.Contains(nc) {
				continue
			}
			if nd := c.Distance(nc); nd != curve.Invalid {
				bs.Add(int(nd))
			}
		}
		return true
	})
	return packFromBitset(bs), nil
}

// Fringe returns the expansion of r by radius, minus r itself. Radius 0
// returns the empty region.
func Fringe(c curve.SpaceFillingCurve, r PackedRegion, radius int, box BoundingBox, eightWay bool) (PackedRegion, error) {
	expanded, err := Expand(c, r, radius, box, eightWay)
	if err != nil {
		return PackedRegion{}, err
	}
	return Difference(c, expanded, r)
}

// ExpandSeries returns the expansion of r at every radius 1..maxRadius, as
// one list, computed in a single breadth-first growth pass that reuses the
// accumulated distance set instead of recomputing Expand from scratch at
// every radius.
func ExpandSeries(c curve.SpaceFillingCurve, r PackedRegion, maxRadius int, box BoundingBox, eightWay bool) ([]PackedRegion, error) {
	if maxRadius < 0 {
		return nil, &InvalidArgumentError{Reason: "ExpandSeries maxRadius must be non-negative"}
	}
	series := make([]PackedRegion, 0, maxRadius)
	if r.IsEmpty() {
		for i := 0; i < maxRadius; i++ {
			series = append(series, Empty())
		}
		return series, nil
	}
	dims := len(box.Sides)
	offsets := nonZeroOffsets(neighborOffsets(dims, 1, eightWay))
	visited := bitset.New(int(c.MaxDistance()))
	var frontier []uint64
	r.Each(func(d uint64) bool {
		visited.Add(int(d))
		frontier = append(frontier, d)
		return true
	})
	for step := 0; step < maxRadius; step++ {
		var next []uint64
		for _, d := range frontier {
			coords := c.Point(d)
			for _, off := range offsets {
				nc := addOffset(coords, off)
				if !box.Contains(nc) {
					continue
				}
				nd := c.Distance(nc)
				if nd == curve.Invalid || visited.Contains(int(nd)) {
					continue
				}
				visited.Add(int(nd))
				next = append(next, uint64(nd))
			}
		}
		frontier = next
		series = append(series, packFromBitset(visited))
	}
	return series, nil
}

// Mask is sugar for Intersect, named for the common "restrict to visible
// area" use after Radiate.
func Mask(c curve.SpaceFillingCurve, r, mask PackedRegion) (PackedRegion, error) {
	return Intersect(c, r, mask)
}

// Fringes produces an ordered list of layers successive one-cell-thick
// rings. Each ring is the radius-1 fringe of r together with every earlier
// ring, so no ring overlaps r or another ring — see the ledger's note on
// this spec's "fringes accumulates without resetting" open question.
func Fringes(c curve.SpaceFillingCurve, r PackedRegion, layers int, box BoundingBox, eightWay bool) ([]PackedRegion, error) {
	if layers < 0 {
		return nil, &InvalidArgumentError{Reason: "Fringes layers must be non-negative"}
	}
	rings := make([]PackedRegion, 0, layers)
	covered := r
	for i := 0; i < layers; i++ {
		ring, err := Fringe(c, covered, 1, box, eightWay)
		if err != nil {
			return nil, err
		}
		rings = append(rings, ring)
		covered, err = Union(c, covered, ring)
		if err != nil {
			return nil, err
		}
	}
	return rings, nil
}

// Flood grows seed by up to radius breadth-first steps, accepting only
// cells that are on in bounds and not already visited. Every cell of the
// result is guaranteed to be an on cell of bounds.
func Flood(c curve.SpaceFillingCurve, bounds, seed PackedRegion, radius int, box BoundingBox, eightWay bool) (PackedRegion, error) {
	if radius < 0 {
		return PackedRegion{}, &InvalidArgumentError{Reason: "Flood radius must be non-negative"}
	}
	if box.Area() == 0 {
		return Empty(), nil
	}
	dims := len(box.Sides)
	offsets := nonZeroOffsets(neighborOffsets(dims, 1, eightWay))
	visited := bitset.New(int(c.MaxDistance()))
	var frontier []uint64
	seed.Each(func(d uint64) bool {
		if bounds.Contains(d) && !visited.Contains(int(d)) {
			visited.Add(int(d))
			frontier = append(frontier, d)
		}
		return true
	})
	for step := 0; step < radius && len(frontier) > 0; step++ {
		var next []uint64
		for _, d := range frontier {
			coords := c.Point(d)
			for _, off := range offsets {
				nc := addOffset(coords, off)
				if !box.Contains(nc) {
					continue
				}
				nd := c.Distance(nc)
				if nd == curve.Invalid || visited.Contains(int(nd)) {
					continue
				}
				if !bounds.Contains(uint64(nd)) {
					continue
				}
				visited.Add(int(nd))
				next = append(next, uint64(nd))
			}
		}
		frontier = next
	}
	return packFromBitset(visited), nil
}

// Radiate computes a shadow-casting field of view from every on cell of
// seed across a 2-dimensional curve, treating off cells of bounds as
// vision-blocking and including a visible cell once its distance under
// metric is at most 2*radius.
func Radiate(c curve.SpaceFillingCurve, bounds, seed PackedRegion, radius int, box BoundingBox, metric Metric) (PackedRegion, error) {
	if len(box.Sides) != 2 {
		return PackedRegion{}, &StrategyMismatchError{Reason: "Radiate requires a 2-dimensional curve"}
	}
	if radius < 0 {
		return PackedRegion{}, &InvalidArgumentError{Reason: "Radiate radius must be non-negative"}
	}
	visited := bitset.New(int(c.MaxDistance()))
	seed.Each(func(d uint64) bool {
		coords := c.Point(d)
		ox, oy := coords[0], coords[1]
		if bounds.Contains(d) {
			visited.Add(int(d))
		}
		for oct := 0; oct < 8; oct++ {
			xx, xy := octantMult[0][oct], octantMult[1][oct]
			yx, yy := octantMult[2][oct], octantMult[3][oct]
			castLight(ox, oy, 1, 1, 0, radius, xx, xy, yx, yy, metric, c, box, bounds, visited)
		}
		return true
	})
	return packFromBitset(visited), nil
}

// octantMult maps each of the eight 45-degree octants to the axis
// transform applied to castLight's (row, col) scan coordinates, the
// standard table used by recursive-shadowcasting field-of-view algorithms.
var octantMult = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

func castLight(ox, oy, row int, start, end float64, radius, xx, xy, yx, yy int, metric Metric, c curve.SpaceFillingCurve, box BoundingBox, bounds PackedRegion, visited *bitset.Set) {
	if start < end {
		return
	}
	limit := float64(2 * radius)
	blocked := false
	var newStart float64
	for distance := row; distance <= 2*radius; distance++ {
		deltaY := -distance
		for deltaX := -distance; deltaX <= 0; deltaX++ {
			currentX := ox + deltaX*xx + deltaY*xy
			currentY := oy + deltaX*yx + deltaY*yy
			leftSlope := (float64(deltaX) - 0.5) / (float64(deltaY) + 0.5)
			rightSlope := (float64(deltaX) + 0.5) / (float64(deltaY) - 0.5)

			if start < rightSlope {
				continue
			}
			if end > leftSlope {
				break
			}

			wall := isBlocked(c, box, bounds, currentX, currentY)
			if !wall && metricDistance(metric, currentX-ox, currentY-oy) <= limit {
				if d := c.Distance([]int{currentX, currentY}); d != curve.Invalid {
					visited.Add(int(d))
				}
			}

			switch {
			case blocked && wall:
				newStart = rightSlope
			case blocked && !wall:
				blocked = false
				start = newStart
			case !blocked && wall && distance < 2*radius:
				blocked = true
				castLight(ox, oy, distance+1, start, leftSlope, radius, xx, xy, yx, yy, metric, c, box, bounds, visited)
				newStart = rightSlope
			}
		}
		if blocked {
			break
		}
	}
}

func isBlocked(c curve.SpaceFillingCurve, box BoundingBox, bounds PackedRegion, x, y int) bool {
	if !box.Contains([]int{x, y}) {
		return true
	}
	d := c.Distance([]int{x, y})
	if d == curve.Invalid {
		return true
	}
	return !bounds.Contains(uint64(d))
}

func metricDistance(metric Metric, dx, dy int) float64 {
	switch metric {
	case Manhattan:
		return float64(absInt(dx) + absInt(dy))
	case Chebyshev:
		return float64(maxInt(absInt(dx), absInt(dy)))
	case Euclidean:
		return r2.Norm(r2.Vec{X: float64(dx), Y: float64(dy)})
	default:
		return 0
	}
}

// neighborOffsets enumerates every integer offset vector of the given
// dimensionality within [-radius, radius] on every axis, filtered by
// Chebyshev distance (eightWay) or Manhattan distance; it always includes
// the zero offset, since a radius-r ball is defined to include its centre.
func neighborOffsets(dims, radius int, eightWay bool) [][]int {
	var offsets [][]int
	cur := make([]int, dims)
	var rec func(axis int)
	rec = func(axis int) {
		if axis == dims {
			if eightWay {
				offsets = append(offsets, append([]int(nil), cur...))
				return
			}
			sum := 0
			for _, v := range cur {
				sum += absInt(v)
			}
			if sum <= radius {
				offsets = append(offsets, append([]int(nil), cur...))
			}
			return
		}
		for v := -radius; v <= radius; v++ {
			cur[axis] = v
			rec(axis + 1)
		}
	}
	rec(0)
	return offsets
}

func nonZeroOffsets(offsets [][]int) [][]int {
	out := offsets[:0:0]
	for _, off := range offsets {
		zero := true
		for _, v := range off {
			if v != 0 {
				zero = false
				break
			}
		}
		if !zero {
			out = append(out, off)
		}
	}
	return out
}

func addOffset(coords, offset []int) []int {
	out := make([]int, len(coords))
	for i := range coords {
		out[i] = coords[i] + offset[i]
	}
	return out
}

func packFromBitset(bs *bitset.Set) PackedRegion {
	elems := bs.Elements()
	distances := make([]uint64, len(elems))
	for i, e := range elems {
		distances[i] = uint64(e)
	}
	return packSortedDistances(distances)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
