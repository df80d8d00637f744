// Copyright ©2024 The Region Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import (
	"math"
	"sort"

	"github.com/hilbertgrid/region/spatial/curve"
)

// Pack constructs a PackedRegion by walking every distance of c in order,
// testing predicate against the coordinates at that distance, and treating
// anything outside box as off regardless of what predicate says. It stops
// early once every cell inside box has been visited, since everything
// beyond that point is necessarily off. It returns an OutOfDomainError if
// box exceeds c's own dimensionality on any axis, rather than silently
// packing a box that can never be fully matched against the curve.
func Pack(c curve.SpaceFillingCurve, box BoundingBox, predicate func(coords []int) bool) (PackedRegion, error) {
	dims := c.Dimensionality()
	if len(box.Sides) != len(dims) {
		return PackedRegion{}, &StrategyMismatchError{Reason: "bounding box rank does not match curve dimensionality"}
	}
	for i, side := range box.Sides {
		if side > dims[i] {
			return PackedRegion{}, &OutOfDomainError{Reason: "bounding box exceeds the curve's dimensionality on an axis"}
		}
	}
	area := box.Area()

	var runs []uint32
	var skip uint32
	on := false
	seenInBox := 0
	max := c.MaxDistance()
	for d := uint64(0); d < max; d++ {
		coords := c.Point(d)
		inBox := box.Contains(coords)
		isOn := inBox && predicate(coords)
		if isOn != on {
			runs = append(runs, skip)
			skip = 0
			on = isOn
		}
		skip++
		if inBox {
			seenInBox++
			if seenInBox == area {
				break
			}
		}
	}
	if on {
		runs = append(runs, skip)
	}
	if len(runs) == 0 {
		return Empty(), nil
	}
	return PackedRegion{Runs: runs}, nil
}

// PackBoolGrid packs a row-major boolean grid (first index x, second
// index y) against c. It returns an OutOfDomainError if grid's dimensions
// exceed c's own dimensionality on any axis.
func PackBoolGrid(c curve.SpaceFillingCurve, grid [][]bool) (PackedRegion, error) {
	if len(grid) == 0 {
		return PackedRegion{}, &InvalidArgumentError{Reason: "PackBoolGrid requires a non-empty grid"}
	}
	box := NewBoundingBox(len(grid), len(grid[0]))
	return Pack(c, box, func(coords []int) bool {
		return grid[coords[0]][coords[1]]
	})
}

// PackThresholdGrid packs a row-major numeric grid, treating a cell as on
// when its value is strictly greater than threshold. It returns an
// OutOfDomainError if grid's dimensions exceed c's own dimensionality on
// any axis.
func PackThresholdGrid(c curve.SpaceFillingCurve, grid [][]float64, threshold float64) (PackedRegion, error) {
	if len(grid) == 0 {
		return PackedRegion{}, &InvalidArgumentError{Reason: "PackThresholdGrid requires a non-empty grid"}
	}
	box := NewBoundingBox(len(grid), len(grid[0]))
	return Pack(c, box, func(coords []int) bool {
		return grid[coords[0]][coords[1]] > threshold
	})
}

// PackCharGrid packs a row-major rune grid, treating a cell as on when it
// equals match. It returns an OutOfDomainError if grid's dimensions
// exceed c's own dimensionality on any axis.
func PackCharGrid(c curve.SpaceFillingCurve, grid [][]rune, match rune) (PackedRegion, error) {
	if len(grid) == 0 {
		return PackedRegion{}, &InvalidArgumentError{Reason: "PackCharGrid requires a non-empty grid"}
	}
	box := NewBoundingBox(len(grid), len(grid[0]))
	return Pack(c, box, func(coords []int) bool {
		return grid[coords[0]][coords[1]] == match
	})
}

// Full returns the region covering every cell of c's domain.
func Full(c curve.SpaceFillingCurve) PackedRegion {
	return PackedRegion{Runs: []uint32{0, uint32(c.MaxDistance())}}
}

// Point returns the single-cell region at coords.
func Point(c curve.SpaceFillingCurve, coords []int) (PackedRegion, error) {
	d := c.Distance(coords)
	if d == curve.Invalid {
		return PackedRegion{}, &StrategyMismatchError{Reason: "coordinates out of range or wrong rank for curve"}
	}
	return PackedRegion{Runs: []uint32{uint32(d), 1}}, nil
}

// Rectangle returns the region covering the axis-aligned box
// [x, x+w) × [y, y+h), clamped to c's own dimensionality.
func Rectangle(c curve.SpaceFillingCurve, x, y, w, h int) (PackedRegion, error) {
	dims := c.Dimensionality()
	if len(dims) != 2 {
		return PackedRegion{}, &StrategyMismatchError{Reason: "Rectangle requires a 2-dimensional curve"}
	}
	if w < 0 || h < 0 {
		return PackedRegion{}, &InvalidArgumentError{Reason: "Rectangle width and height must be non-negative"}
	}
	if w > dims[0] {
		w = dims[0]
	}
	if h > dims[1] {
		h = dims[1]
	}
	box := NewBoundingBox(dims[0], dims[1])
	return Pack(c, box, func(coords []int) bool {
		return coords[0] >= x && coords[0] < x+w && coords[1] >= y && coords[1] < y+h
	})
}

// PackPoints returns the union of the single cells named by coordsList —
// spec.md's "union of enumerated coordinates" primitive (packSeveral):
// the distances are sorted ascending and the runs built directly from the
// sorted sequence, folding duplicates into the current on-run, rather than
// going through the general pack-by-predicate walk.
func PackPoints(c curve.SpaceFillingCurve, coordsList [][]int) (PackedRegion, error) {
	if len(coordsList) == 0 {
		return Empty(), nil
	}
	distances := make([]uint64, 0, len(coordsList))
	for _, coords := range coordsList {
		d := c.Distance(coords)
		if d == curve.Invalid {
			return PackedRegion{}, &StrategyMismatchError{Reason: "coordinates out of range or wrong rank for curve"}
		}
		distances = append(distances, uint64(d))
	}
	sort.Slice(distances, func(i, j int) bool { return distances[i] < distances[j] })
	return packSortedDistances(distances), nil
}

// packSortedDistances builds a PackedRegion's runs from an ascending
// (not necessarily deduplicated) sequence of on-cell distances, folding
// adjacent/duplicate entries into the current on-run. Shared by PackPoints
// and by morphology's distance-set emitters.
func packSortedDistances(distances []uint64) PackedRegion {
	if len(distances) == 0 {
		return Empty()
	}
	var runs []uint32
	prevEnd := uint64(0)
	i := 0
	for i < len(distances) {
		start := distances[i]
		runs = append(runs, uint32(start-prevEnd))
		end := start + 1
		i++
		for i < len(distances) && distances[i] <= end {
			if distances[i] == end {
				end++
			}
			i++
		}
		runs = append(runs, uint32(end-start))
		prevEnd = end
	}
	return PackedRegion{Runs: runs}
}

// Unpack materialises r into a dense, row-major []bool of length box.Area(),
// indexed by BoundingBox.Index. Coordinates outside box are silently
// skipped (they can never be set, since they're never addressed).
func Unpack(c curve.SpaceFillingCurve, r PackedRegion, box BoundingBox) ([]bool, error) {
	if len(box.Sides) != len(c.Dimensionality()) {
		return nil, &StrategyMismatchError{Reason: "bounding box rank does not match curve dimensionality"}
	}
	area := box.Area()
	if area < 0 || area > math.MaxInt32 {
		return nil, &OverflowError{Reason: "bounding box area exceeds a 32-bit element count"}
	}
	out := make([]bool, area)

	var d uint64
	on := false
	for _, run := range r.Runs {
		if on {
			for i := uint32(0); i < run; i++ {
				coords := c.Point(d)
				if idx := box.Index(coords); idx >= 0 {
					out[idx] = true
				}
				d++
			}
		} else {
			d += uint64(run)
		}
		on = !on
	}
	return out, nil
}
