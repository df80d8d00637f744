// Copyright ©2024 The Region Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import "fmt"

// PukaHilbert is a composite curve: an outer HilbertND curve over a cube of
// 5³-cell blocks, with a Puka atom substituted into every block. Each
// atom is rotated so its entry and exit faces line up with the block's
// neighbours on the outer curve, which keeps the composite's overall
// adjacency invariant (consecutive distances are always grid-adjacent)
// intact across block boundaries.
//
// Unlike Hilbert2D, PukaHilbert holds no reverse lookup table sized to its
// own MaxDistance: for the 1280³ composite that would be on the order of
// two billion entries, far past anything a flat table can hold. Instead it
// precomputes the much smaller set of rotated atom variants (30 of them —
// 6 for same-direction transitions, 24 for perpendicular ones) once at
// construction, and both Point and Distance evaluate the outer curve at the
// block and its neighbouring blocks (to pick the atom's orientation) plus
// one 125-entry atom lookup per call.
type PukaHilbert struct {
	outer      *HilbertND
	outerOrder int
	side       int

	straight [6]*pukaVariant
	turn     [6][6]*pukaVariant
}

type pukaVariant struct {
	path    [125][3]int
	reverse [125]int
}

// pukaDirs are the six unit vectors the outer curve can step along.
var pukaDirs = [6][3]int{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// pukaRefPerp picks a fixed perpendicular direction for each of the six
// directions, used to orient the straight atom (whose entry/exit are on
// opposite faces, so any perpendicular in-plane rotation is equally valid).
var pukaRefPerp = [6]int{
	2, 2, // +X, -X -> +Y
	4, 4, // +Y, -Y -> +Z
	0, 0, // +Z, -Z -> +X
}

// NewPukaHilbert constructs a Puka-Hilbert composite curve. outerOrder must
// be 3 (a 40³ composite: 8³ outer blocks of 5³ cells) or 8 (a 1280³
// composite: 256³ outer blocks). The 1280³ case is expensive only in the
// sense that its MaxDistance is large (~2.1 billion); it allocates no table
// proportional to that count, so constructing it is cheap, but callers
// should still construct it once and reuse it rather than rebuilding it on
// every query.
func NewPukaHilbert(outerOrder int) (*PukaHilbert, error) {
	if outerOrder != 3 && outerOrder != 8 {
		return nil, &InvalidArgumentError{Reason: "PukaHilbert outerOrder must be 3 (side 40) or 8 (side 1280)"}
	}
	outer, err := NewHilbertND(outerOrder, 3)
	if err != nil {
		return nil, err
	}
	ph := &PukaHilbert{
		outer:      outer,
		outerOrder: outerOrder,
		side:       (1 << uint(outerOrder)) * 5,
	}
	for di := 0; di < 6; di++ {
		ph.straight[di] = buildVariant(&pukaStraightPath, pukaDirs[di], pukaDirs[pukaRefPerp[di]])
	}
	for di := 0; di < 6; di++ {
		for dj := 0; dj < 6; dj++ {
			if !perpendicular(pukaDirs[di], pukaDirs[dj]) {
				continue
			}
			ph.turn[di][dj] = buildVariant(&pukaTurnPath, pukaDirs[di], pukaDirs[dj])
		}
	}
	return ph, nil
}

// buildVariant rotates atom so its canonical Z axis maps to zImg and its
// canonical X axis maps to xImg, about the block's center (2,2,2), and
// builds the accompanying reverse lookup.
func buildVariant(atom *[125][3]int, zImg, xImg [3]int) *pukaVariant {
	yImg := cross(zImg, xImg)
	v := &pukaVariant{}
	for i, c := range atom {
		cx, cy, cz := c[0]-2, c[1]-2, c[2]-2
		rx := cx*xImg[0] + cy*yImg[0] + cz*zImg[0]
		ry := cx*xImg[1] + cy*yImg[1] + cz*zImg[1]
		rz := cx*xImg[2] + cy*yImg[2] + cz*zImg[2]
		p := [3]int{rx + 2, ry + 2, rz + 2}
		v.path[i] = p
		v.reverse[p[0]+5*p[1]+25*p[2]] = i
	}
	return v
}

func cross(a, b [3]int) [3]int {
	return [3]int{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func perpendicular(a, b [3]int) bool {
	return a[0]*b[0]+a[1]*b[1]+a[2]*b[2] == 0
}

func dirIndex(d [3]int) int {
	for i, v := range pukaDirs {
		if v == d {
			return i
		}
	}
	panic("curve: not a unit axis direction")
}

// Dimensionality implements curve.SpaceFillingCurve.
func (ph *PukaHilbert) Dimensionality() []int { return []int{ph.side, ph.side, ph.side} }

// MaxDistance implements curve.SpaceFillingCurve.
func (ph *PukaHilbert) MaxDistance() uint64 { return ph.outer.MaxDistance() * 125 }

// Point implements curve.SpaceFillingCurve.
func (ph *PukaHilbert) Point(d uint64) []int {
	max := ph.MaxDistance()
	if d >= max {
		d = max - 1
	}
	block := d / 125
	atomIdx := d % 125
	blockCoords := ph.outer.Point(block)
	din, dout := ph.transitionDirs(block, blockCoords)
	local := ph.variantFor(din, dout).path[atomIdx]
	return []int{
		blockCoords[0]*5 + local[0],
		blockCoords[1]*5 + local[1],
		blockCoords[2]*5 + local[2],
	}
}

// Coordinate implements curve.SpaceFillingCurve.
func (ph *PukaHilbert) Coordinate(d uint64, axis int) int {
	if axis < 0 || axis > 2 {
		panic("curve: axis out of range for PukaHilbert")
	}
	return ph.Point(d)[axis]
}

// Distance implements curve.SpaceFillingCurve.
func (ph *PukaHilbert) Distance(coords []int) int64 {
	if len(coords) != 3 {
		return Invalid
	}
	for _, c := range coords {
		if c < 0 || c >= ph.side {
			return Invalid
		}
	}
	blockCoords := []int{coords[0] / 5, coords[1] / 5, coords[2] / 5}
	local := [3]int{coords[0] % 5, coords[1] % 5, coords[2] % 5}
	blockDist := ph.outer.Distance(blockCoords)
	if blockDist == Invalid {
		return Invalid
	}
	din, dout := ph.transitionDirs(uint64(blockDist), blockCoords)
	atomIdx := ph.variantFor(din, dout).reverse[local[0]+5*local[1]+25*local[2]]
	return int64(uint64(blockDist)*125 + uint64(atomIdx))
}

// transitionDirs returns the incoming and outgoing travel directions for
// the outer block at the given distance/coordinates. At the first and last
// block (no predecessor or successor) the missing direction is treated as
// equal to the one that exists, which orients that end block as if it were
// a straight-through continuation.
func (ph *PukaHilbert) transitionDirs(block uint64, blockCoords []int) (din, dout [3]int) {
	last := ph.outer.MaxDistance() - 1
	switch {
	case block == 0:
		next := ph.outer.Point(block + 1)
		dout = subtract(next, blockCoords)
		din = dout
	case block == last:
		prev := ph.outer.Point(block - 1)
		din = subtract(blockCoords, prev)
		dout = din
	default:
		prev := ph.outer.Point(block - 1)
		next := ph.outer.Point(block + 1)
		din = subtract(blockCoords, prev)
		dout = subtract(next, blockCoords)
	}
	return din, dout
}

func (ph *PukaHilbert) variantFor(din, dout [3]int) *pukaVariant {
	if din == dout {
		return ph.straight[dirIndex(din)]
	}
	return ph.turn[dirIndex(din)][dirIndex(dout)]
}

func subtract(a, b []int) [3]int {
	return [3]int{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (ph *PukaHilbert) String() string {
	return fmt.Sprintf("PukaHilbert(outerOrder=%d, side=%d)", ph.outerOrder, ph.side)
}
