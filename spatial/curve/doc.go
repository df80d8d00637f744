// Copyright ©2024 The Region Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curve provides the space-filling curves used to address the
// cells of a bounded grid for run-length packing: plain Hilbert curves (2D
// table-backed up to side 256, and a general N-dimensional direct form),
// the closed-loop Moore curve, the fixed 5×5×5 Puka atom, and the
// Puka-Hilbert composites built by substituting a Puka atom for every unit
// cell of an outer Hilbert cube.
//
// All strategies share the SpaceFillingCurve interface: Point maps a curve
// distance to a coordinate tuple, Distance is its inverse, and consecutive
// distances are always grid-adjacent (Manhattan distance 1 apart) — the
// property that makes a region of on/off cells along the curve compress
// well as alternating run lengths.
//
// Every strategy is immutable once constructed; lookup tables (the
// Hilbert-2D and Moore coordinate and reverse tables, the rotated Puka
// atoms) are computed once inside the constructor, so a constructed curve
// may be shared and read concurrently without synchronization. No
// strategy builds a table proportional to a Puka-Hilbert composite's
// MaxDistance.
package curve
