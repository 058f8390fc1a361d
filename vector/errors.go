// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// vector package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions; every dimension and index rule is raised as an
// explicit sentinel before any element is touched.

package vector

import "errors"

var (
	// ErrBadDimension is returned when a requested dimension is not
	// strictly positive, or when a subvector request does not fit the
	// source. Constructors must validate before allocation.
	ErrBadDimension = errors.New("vector: dimension must be > 0")

	// ErrIndexOutOfRange indicates that an element index is outside
	// [0, Dimension). Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add/Sub/Dot over vectors of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrNot3D signals that the cross product was requested on vectors
	// that are not three-dimensional. The operation is undefined there.
	ErrNot3D = errors.New("vector: cross product requires 3-dimensional vectors")

	// ErrBadResize is returned when Shrink/Grow violates the strict
	// size-change rule: Shrink must strictly reduce the dimension and
	// Grow must strictly increase it.
	ErrBadResize = errors.New("vector: resize must strictly change the dimension")

	// ErrNilVector indicates that a nil *Vector (receiver argument) was
	// passed where a value was required.
	ErrNilVector = errors.New("vector: nil vector")
)
