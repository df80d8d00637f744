// Copyright ©2024 The Region Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ExampleHilbert2D_Distance prints the distance of every cell of an
// order-3 (side 8) curve in row-major (y, then x) order.
func ExampleHilbert2D_Distance() {
	h, err := NewHilbert2D(3)
	if err != nil {
		panic(err)
	}
	for y := 0; y < h.Side(); y++ {
		for x := 0; x < h.Side(); x++ {
			if x > 0 {
				fmt.Print("  ")
			}
			fmt.Printf("%02x", h.Distance([]int{x, y}))
		}
		fmt.Println()
	}
	// Output:
	// 00  01  0e  0f  10  13  14  15
	// 03  02  0d  0c  11  12  17  16
	// 04  07  08  0b  1e  1d  18  19
	// 05  06  09  0a  1f  1c  1b  1a
	// 3a  39  36  35  20  23  24  25
	// 3b  38  37  34  21  22  27  26
	// 3c  3d  32  33  2e  2d  28  29
	// 3f  3e  31  30  2f  2c  2b  2a
}

func TestHilbert2DCorners(t *testing.T) {
	h, err := NewHilbert2D(MaxHilbert2DOrder)
	if err != nil {
		t.Fatalf("NewHilbert2D: %v", err)
	}

	cases := []struct {
		x, y int
		want int64
	}{
		{0, 0, 0},
		{255, 0, 21845},
		{0, 255, 65535},
		{255, 255, 43690},
	}
	for _, c := range cases {
		c := c
		t.Run(fmt.Sprintf("(%d,%d)", c.x, c.y), func(t *testing.T) {
			got := h.Distance([]int{c.x, c.y})
			if got != c.want {
				t.Errorf("Distance(%d,%d) = %d, want %d", c.x, c.y, got, c.want)
			}
		})
	}

	d := h.Distance([]int{255, 255})
	if diff := cmp.Diff([]int{255, 255}, h.Point(uint64(d))); diff != "" {
		t.Errorf("Point(Distance(255,255)) mismatch (-want +got):\n%s", diff)
	}
}

func TestHilbert2DInverse(t *testing.T) {
	h, err := NewHilbert2D(4) // side 16, small enough to check exhaustively
	if err != nil {
		t.Fatal(err)
	}
	for d := uint64(0); d < h.MaxDistance(); d++ {
		c := h.Point(d)
		if got := h.Distance(c); got != int64(d) {
			t.Fatalf("Distance(Point(%d)) = %d, want %d", d, got, d)
		}
	}
}

func TestHilbert2DAdjacency(t *testing.T) {
	h, err := NewHilbert2D(5) // side 32
	if err != nil {
		t.Fatal(err)
	}
	var prev []int
	for d := uint64(0); d < h.MaxDistance(); d++ {
		c := h.Point(d)
		if prev != nil && manhattan(prev, c) != 1 {
			t.Fatalf("adjacency broken between d=%d (%v) and d=%d (%v)", d-1, prev, d, c)
		}
		prev = c
	}
}

func TestHilbert2DOutOfRange(t *testing.T) {
	h, err := NewHilbert2D(3)
	if err != nil {
		t.Fatal(err)
	}
	if got := h.Distance([]int{8, 0}); got != Invalid {
		t.Errorf("Distance with out-of-range x = %d, want Invalid", got)
	}
	if got := h.Distance([]int{-1, 0}); got != Invalid {
		t.Errorf("Distance with negative x = %d, want Invalid", got)
	}
	// Point clamps rather than panicking.
	last := h.Point(h.MaxDistance() - 1)
	clamped := h.Point(h.MaxDistance() + 1000)
	if diff := cmp.Diff(last, clamped); diff != "" {
		t.Errorf("Point clamp mismatch (-want +got):\n%s", diff)
	}
}

func TestNewHilbert2DInvalidOrder(t *testing.T) {
	if _, err := NewHilbert2D(-1); err == nil {
		t.Error("expected error for negative order")
	}
	if _, err := NewHilbert2D(MaxHilbert2DOrder + 1); err == nil {
		t.Error("expected error for order above MaxHilbert2DOrder")
	}
}
