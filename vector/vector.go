// SPDX-License-Identifier: MIT
// Package vector: core container — construction, indexing, equality,
// filling and the textual rendering. Arithmetic lives in ops.go and the
// resizing copies in resize.go.

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gfxmath/scalar"
)

// Vector is a fixed-length, ordered sequence of numeric elements.
// The length is set at construction and is immutable afterwards; elems
// always holds exactly Dimension() values. The zero Vector (dimension
// zero) is not useful — obtain instances through the constructors.
type Vector[T scalar.Number] struct {
	elems []T // backing storage, len(elems) == Dimension()
}

// New creates a vector of dimension n with every element set to zero.
// Stage 1 (Validate): ensure n > 0.
// Stage 2 (Prepare): allocate the backing slice (zeroed by make).
// Complexity: O(n) time and memory.
func New[T scalar.Number](n int) (*Vector[T], error) {
	if n <= 0 {
		return nil, ErrBadDimension
	}

	return &Vector[T]{elems: make([]T, n)}, nil
}

// NewFilled creates a vector of dimension n with every element set to
// value. Complexity: O(n).
func NewFilled[T scalar.Number](n int, value T) (*Vector[T], error) {
	v, err := New[T](n)
	if err != nil {
		return nil, err
	}
	v.Fill(value)

	return v, nil
}

// FromSlice creates a vector of dimension n initialized from values in
// order. Fewer than n values leave the remaining elements zero; extra
// values beyond n are ignored. The input slice is copied, never
// aliased. Complexity: O(n).
func FromSlice[T scalar.Number](n int, values []T) (*Vector[T], error) {
	v, err := New[T](n)
	if err != nil {
		return nil, err
	}
	// copy stops at the shorter of the two lengths, which implements
	// both the zero-padding and the truncation rule at once.
	copy(v.elems, values)

	return v, nil
}

// New2 creates a 2-D vector from its components.
func New2[T scalar.Number](x, y T) *Vector[T] {
	return &Vector[T]{elems: []T{x, y}}
}

// New3 creates a 3-D vector from its components.
func New3[T scalar.Number](x, y, z T) *Vector[T] {
	return &Vector[T]{elems: []T{x, y, z}}
}

// New4 creates a 4-D vector from its components.
func New4[T scalar.Number](x, y, z, w T) *Vector[T] {
	return &Vector[T]{elems: []T{x, y, z, w}}
}

// Clone returns a deep, independent copy of the vector.
// Complexity: O(n) time and memory.
func (v *Vector[T]) Clone() *Vector[T] {
	elems := make([]T, len(v.elems))
	copy(elems, v.elems)

	return &Vector[T]{elems: elems}
}

// Dimension returns the fixed number of elements. Complexity: O(1).
func (v *Vector[T]) Dimension() int {
	return len(v.elems)
}

// isIndex reports whether i addresses an element of v.
func (v *Vector[T]) isIndex(i int) bool {
	return i >= 0 && i < len(v.elems)
}

// At retrieves the element at index i, or ErrIndexOutOfRange when i is
// outside [0, Dimension). Complexity: O(1).
func (v *Vector[T]) At(i int) (T, error) {
	if !v.isIndex(i) {
		var zero T
		return zero, fmt.Errorf("At(%d): %w", i, ErrIndexOutOfRange)
	}

	return v.elems[i], nil
}

// Set assigns value at index i, or returns ErrIndexOutOfRange when i is
// outside [0, Dimension). This is the only per-element mutation the
// type offers. Complexity: O(1).
func (v *Vector[T]) Set(i int, value T) error {
	if !v.isIndex(i) {
		return fmt.Errorf("Set(%d): %w", i, ErrIndexOutOfRange)
	}
	v.elems[i] = value

	return nil
}

// Fill overwrites every element with value. Complexity: O(n).
func (v *Vector[T]) Fill(value T) {
	for i := range v.elems {
		v.elems[i] = value
	}
}

// Equal reports exact elementwise equality. Vectors of different
// dimensions, and comparisons against nil, are simply unequal — no
// error, mirroring how == behaves on values. Complexity: O(n).
func (v *Vector[T]) Equal(rhs *Vector[T]) bool {
	if rhs == nil || len(v.elems) != len(rhs.elems) {
		return false
	}
	for i := range v.elems {
		if v.elems[i] != rhs.elems[i] {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal. Complexity: O(n).
func (v *Vector[T]) NotEqual(rhs *Vector[T]) bool {
	return !v.Equal(rhs)
}

// AlmostEqual reports whether every element pair lies within the
// ABSOLUTE tolerance delta: |v[i]-rhs[i]| ≤ delta for all i.
//
// This is intentionally a different definition from scalar.AlmostEqual,
// which is relative; both are part of the contract and must not be
// conflated. Errors: scalar.ErrNonPositiveDelta when delta ≤ 0 or NaN,
// ErrNilVector, ErrDimensionMismatch. Complexity: O(n).
func (v *Vector[T]) AlmostEqual(rhs *Vector[T], delta float64) (bool, error) {
	if !(delta > 0) {
		return false, scalar.ErrNonPositiveDelta
	}
	if rhs == nil {
		return false, ErrNilVector
	}
	if len(v.elems) != len(rhs.elems) {
		return false, ErrDimensionMismatch
	}
	for i := range v.elems {
		lo := float64(rhs.elems[i]) - delta
		hi := float64(rhs.elems[i]) + delta
		if e := float64(v.elems[i]); e < lo || e > hi {
			return false, nil
		}
	}

	return true, nil
}

// String implements fmt.Stringer, rendering the vector as
// "<e0, e1, ..., eN>" — angle brackets, comma-and-space separators.
// The exact bytes are part of the observable contract. Complexity: O(n).
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('<')
	for i, e := range v.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", e)
	}
	sb.WriteByte('>')

	return sb.String()
}
