// Copyright ©2024 The Region Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import "fmt"

// Moore is a 2-dimensional closed-loop Hilbert variant: unlike Hilbert2D,
// the cell at the last distance is grid-adjacent to the cell at distance
// zero, so the curve can be walked cyclically with no discontinuity.
//
// Its table is built once at construction by walking the curve's
// production grammar (the standard L-system generator for the Moore
// curve), exactly as Hilbert2D builds its tables by walking a recursive
// formula — the result is the same kind of flat, immutable lookup table.
type Moore struct {
	side       int
	xOf, yOf   []uint16
	distanceOf []uint16
}

// mooreRules is the standard L-system production for the Moore curve:
// an L-system whose turtle walk traces a closed loop covering a
// 2^(order+1) square grid exactly once per cell.
var mooreRules = map[byte]string{
	'L': "-RF+LFL+FR-",
	'R': "+LF-RFR-FL+",
}

const mooreAxiom = "LFL+F+LFL"

// NewMoore constructs a closed-loop Moore curve of side 1<<(order+1).
// order must be at least 1 (giving the smallest closed loop, side 4).
func NewMoore(order int) (*Moore, error) {
	if order < 1 {
		return nil, &InvalidArgumentError{Reason: "Moore order must be at least 1"}
	}
	if order+1 > MaxHilbert2DOrder {
		return nil, &OverflowError{Reason: fmt.Sprintf("Moore order %d gives a side too large to index in 16 bits", order)}
	}

	program := expandLSystem(mooreAxiom, mooreRules, order)
	xs, ys := walkTurtle(program)

	minX, minY := xs[0], ys[0]
	for i := range xs {
		if xs[i] < minX {
			minX = xs[i]
		}
		if ys[i] < minY {
			minY = ys[i]
		}
	}
	side := 0
	for i := range xs {
		xs[i] -= minX
		ys[i] -= minY
		if xs[i]+1 > side {
			side = xs[i] + 1
		}
		if ys[i]+1 > side {
			side = ys[i] + 1
		}
	}

	n := side * side
	if len(xs) != n {
		panic("curve: Moore curve construction did not cover every cell exactly once")
	}

	m := &Moore{
		side:       side,
		xOf:        make([]uint16, n),
		yOf:        make([]uint16, n),
		distanceOf: make([]uint16, n),
	}
	for d := 0; d < n; d++ {
		m.xOf[d] = uint16(xs[d])
		m.yOf[d] = uint16(ys[d])
		m.distanceOf[xs[d]+side*ys[d]] = uint16(d)
	}
	return m, nil
}

// Dimensionality implements curve.SpaceFillingCurve.
func (m *Moore) Dimensionality() []int { return []int{m.side, m.side} }

// MaxDistance implements curve.SpaceFillingCurve.
func (m *Moore) MaxDistance() uint64 { return uint64(m.side) * uint64(m.side) }

// Point implements curve.SpaceFillingCurve.
func (m *Moore) Point(d uint64) []int {
	d = m.clamp(d)
	return []int{int(m.xOf[d]), int(m.yOf[d])}
}

// Coordinate implements curve.SpaceFillingCurve.
func (m *Moore) Coordinate(d uint64, axis int) int {
	d = m.clamp(d)
	switch axis {
	case 0:
		return int(m.xOf[d])
	case 1:
		return int(m.yOf[d])
	default:
		panic("curve: axis out of range for Moore")
	}
}

// Distance implements curve.SpaceFillingCurve.
func (m *Moore) Distance(coords []int) int64 {
	if len(coords) != 2 {
		return Invalid
	}
	x, y := coords[0], coords[1]
	if x < 0 || x >= m.side || y < 0 || y >= m.side {
		return Invalid
	}
	return int64(m.distanceOf[x+m.side*y])
}

func (m *Moore) clamp(d uint64) uint64 {
	max := m.MaxDistance()
	if d >= max {
		return max - 1
	}
	return d
}

// expandLSystem applies rules to axiom n times, replacing every byte that
// has a rule with its replacement and leaving the rest (F, +, -) as-is.
func expandLSystem(axiom string, rules map[byte]string, n int) string {
	s := axiom
	for i := 0; i < n; i++ {
		buf := make([]byte, 0, len(s)*3)
		for j := 0; j < len(s); j++ {
			if repl, ok := rules[s[j]]; ok {
				buf = append(buf, repl...)
			} else {
				buf = append(buf, s[j])
			}
		}
		s = string(buf)
	}
	return s
}

// turtleDirs are the four unit headings a turtle cycles through, turning
// 90 degrees per '+' or '-' instruction.
var turtleDirs = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// walkTurtle interprets an L-system program (F = step forward, + = turn
// left, - = turn right, any other byte is a non-drawing symbol) and
// returns the sequence of visited integer coordinates, starting at the
// origin.
func walkTurtle(program string) (xs, ys []int) {
	x, y := 0, 0
	heading := 0
	xs = append(xs, x)
	ys = append(ys, y)
	for i := 0; i < len(program); i++ {
		switch program[i] {
		case 'F':
			d := turtleDirs[heading]
			x += d[0]
			y += d[1]
			xs = append(xs, x)
			ys = append(ys, y)
		case '+':
			heading = (heading + 1) % 4
		case '-':
			heading = (heading + 3) % 4
		}
	}
	return xs, ys
}
