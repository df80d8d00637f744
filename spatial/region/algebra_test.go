// Copyright ©2024 The Region Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import "testing"

func TestUnionIsCommutative(t *testing.T) {
	c := mustHilbert2D(t, 3)
	a, _ := Rectangle(c, 0, 0, 4, 4)
	b, _ := Rectangle(c, 2, 2, 4, 4)
	ab, err := Union(c, a, b)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := Union(c, b, a)
	if err != nil {
		t.Fatal(err)
	}
	if ab.Count() != ba.Count() {
		t.Fatalf("Union not commutative: %d vs %d", ab.Count(), ba.Count())
	}
}

func TestUnionIsIdempotent(t *testing.T) {
	c := mustHilbert2D(t, 3)
	a, _ := Rectangle(c, 1, 1, 3, 3)
	aa, err := Union(c, a, a)
	if err != nil {
		t.Fatal(err)
	}
	if aa.Count() != a.Count() {
		t.Fatalf("Union not idempotent: %d vs %d", aa.Count(), a.Count())
	}
}

func TestIntersectIsIdempotent(t *testing.T) {
	c := mustHilbert2D(t, 3)
	a, _ := Rectangle(c, 1, 1, 3, 3)
	aa, err := Intersect(c, a, a)
	if err != nil {
		t.Fatal(err)
	}
	if aa.Count() != a.Count() {
		t.Fatalf("Intersect not idempotent: %d vs %d", aa.Count(), a.Count())
	}
}

func TestDifferenceWithSelfIsEmpty(t *testing.T) {
	c := mustHilbert2D(t, 3)
	a, _ := Rectangle(c, 1, 1, 3, 3)
	d, err := Difference(c, a, a)
	if err != nil {
		t.Fatal(err)
	}
	if !d.IsEmpty() {
		t.Fatalf("Difference(a, a) not empty: %v", d.Runs)
	}
}

func TestSymmetricDifferenceMatchesUnionOfDifferences(t *testing.T) {
	c := mustHilbert2D(t, 3)
	a, _ := Rectangle(c, 0, 0, 4, 4)
	b, _ := Rectangle(c, 2, 2, 4, 4)
	symDiff, err := SymmetricDifference(c, a, b)
	if err != nil {
		t.Fatal(err)
	}
	aMinusB, _ := Difference(c, a, b)
	bMinusA, _ := Difference(c, b, a)
	want, err := Union(c, aMinusB, bMinusA)
	if err != nil {
		t.Fatal(err)
	}
	if symDiff.Count() != want.Count() {
		t.Fatalf("SymmetricDifference != union(a-b, b-a): %d vs %d", symDiff.Count(), want.Count())
	}
}

func TestDoubleComplementIsIdentity(t *testing.T) {
	c := mustHilbert2D(t, 3)
	a, _ := Rectangle(c, 1, 1, 5, 5)
	once, err := Complement(c, a)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := Complement(c, once)
	if err != nil {
		t.Fatal(err)
	}
	if twice.Count() != a.Count() {
		t.Fatalf("Complement(Complement(a)) != a: %d vs %d", twice.Count(), a.Count())
	}
	for i := range a.Runs {
		if i >= len(twice.Runs) || a.Runs[i] != twice.Runs[i] {
			t.Fatalf("Complement(Complement(a)).Runs = %v, want %v", twice.Runs, a.Runs)
		}
	}
}

func TestComplementOfFullIsEmpty(t *testing.T) {
	c := mustHilbert2D(t, 3)
	full := Full(c)
	comp, err := Complement(c, full)
	if err != nil {
		t.Fatal(err)
	}
	if !comp.IsEmpty() {
		t.Fatalf("Complement(Full()) not empty: %v", comp.Runs)
	}
}

func TestComplementOfEmptyIsFull(t *testing.T) {
	c := mustHilbert2D(t, 3)
	comp, err := Complement(c, Empty())
	if err != nil {
		t.Fatal(err)
	}
	if uint64(comp.Count()) != c.MaxDistance() {
		t.Fatalf("Complement(Empty()).Count() = %d, want %d", comp.Count(), c.MaxDistance())
	}
}

func TestCountPlusComplementCountIsMaxDistance(t *testing.T) {
	c := mustHilbert2D(t, 3)
	a, _ := Rectangle(c, 1, 1, 3, 5)
	comp, err := Complement(c, a)
	if err != nil {
		t.Fatal(err)
	}
	if uint64(a.Count()+comp.Count()) != c.MaxDistance() {
		t.Fatalf("count(a) + count(complement(a)) = %d, want %d", a.Count()+comp.Count(), c.MaxDistance())
	}
}

func TestInsertAndRemove(t *testing.T) {
	c := mustHilbert2D(t, 3)
	r := Empty()
	coords := []int{3, 3}
	r, err := Insert(c, r, coords)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Contains(uint64(c.Distance(coords))) {
		t.Fatal("Insert did not add the requested cell")
	}
	r, err = Remove(c, r, coords)
	if err != nil {
		t.Fatal(err)
	}
	if !r.IsEmpty() {
		t.Fatalf("Remove did not clear the cell: %v", r.Runs)
	}
}

func TestCrossUnionAndDoubleComplement(t *testing.T) {
	// S1: a 14x60 vertical rectangle at (25,2) unioned with a 60x14
	// horizontal rectangle at (2,25) forms a cross; double-complementing
	// the cross returns it unchanged.
	c := mustHilbert2D(t, 8)
	vertical, err := Rectangle(c, 25, 2, 14, 60)
	if err != nil {
		t.Fatal(err)
	}
	horizontal, err := Rectangle(c, 2, 25, 60, 14)
	if err != nil {
		t.Fatal(err)
	}
	cross, err := Union(c, vertical, horizontal)
	if err != nil {
		t.Fatal(err)
	}
	once, err := Complement(c, cross)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := Complement(c, once)
	if err != nil {
		t.Fatal(err)
	}
	if twice.Count() != cross.Count() {
		t.Fatalf("double complement of the cross changed its cell count: %d vs %d", twice.Count(), cross.Count())
	}
	box := NewBoundingBox(64, 64)
	want, err := Unpack(c, cross, box)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Unpack(c, twice, box)
	if err != nil {
		t.Fatal(err)
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("double complement of the cross differs at cell %d", i)
		}
	}
}

func TestIntersectionIsCentralBox(t *testing.T) {
	// S3: intersection of the S1 rectangles equals [25..39] x [25..39].
	c := mustHilbert2D(t, 8)
	vertical, err := Rectangle(c, 25, 2, 14, 60)
	if err != nil {
		t.Fatal(err)
	}
	horizontal, err := Rectangle(c, 2, 25, 60, 14)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Intersect(c, vertical, horizontal)
	if err != nil {
		t.Fatal(err)
	}
	want, err := Rectangle(c, 25, 25, 14, 14)
	if err != nil {
		t.Fatal(err)
	}
	if got.Count() != want.Count() {
		t.Fatalf("intersection of the S1 rectangles = %d cells, want %d", got.Count(), want.Count())
	}
	box := NewBoundingBox(64, 64)
	gotGrid, err := Unpack(c, got, box)
	if err != nil {
		t.Fatal(err)
	}
	wantGrid, err := Unpack(c, want, box)
	if err != nil {
		t.Fatal(err)
	}
	for i := range wantGrid {
		if gotGrid[i] != wantGrid[i] {
			t.Fatalf("intersection region differs from [25..39]x[25..39] at cell %d", i)
		}
	}
}

func TestAlgebraRejectsStrategyMismatchViaOutOfDomain(t *testing.T) {
	c := mustHilbert2D(t, 2)
	oversized := PackedRegion{Runs: []uint32{0, uint32(c.MaxDistance()) + 10}}
	_, err := Union(c, oversized, Empty())
	if err == nil {
		t.Fatal("Union should reject a region whose covered run total exceeds maxDistance")
	}
	if _, ok := err.(*OutOfDomainError); !ok {
		t.Fatalf("got %T, want *OutOfDomainError", err)
	}
}
