// SPDX-License-Identifier: MIT
// Package vector: resizing copies. Each operation returns a fresh
// vector of a different dimension; the source is never mutated. The
// strict size-change rules are validated at runtime before any
// element is copied.

package vector

import "fmt"

// Subvector returns a fresh vector of dimension n holding n contiguous
// elements of v starting at index start.
//
// Stage 1 (Validate): n must be positive and no larger than the source
// dimension (ErrBadDimension); both start and start+n-1 must be valid
// indices (ErrIndexOutOfRange).
// Stage 2 (Copy): copy the window.
// Complexity: O(n).
func (v *Vector[T]) Subvector(start, n int) (*Vector[T], error) {
	if n <= 0 || n > len(v.elems) {
		return nil, fmt.Errorf("Subvector(%d,%d): %w", start, n, ErrBadDimension)
	}
	if !v.isIndex(start) || !v.isIndex(start+n-1) {
		return nil, fmt.Errorf("Subvector(%d,%d): %w", start, n, ErrIndexOutOfRange)
	}
	part := &Vector[T]{elems: make([]T, n)}
	copy(part.elems, v.elems[start:start+n])

	return part, nil
}

// Shrink returns a lower-dimension copy of v, keeping only the first n
// elements. n must be strictly smaller than the source dimension and
// positive; anything else is ErrBadResize. Complexity: O(n).
func (v *Vector[T]) Shrink(n int) (*Vector[T], error) {
	if n <= 0 || n >= len(v.elems) {
		return nil, fmt.Errorf("Shrink(%d): %w", n, ErrBadResize)
	}
	lower := &Vector[T]{elems: make([]T, n)}
	copy(lower.elems, v.elems[:n])

	return lower, nil
}

// Grow returns a higher-dimension copy of v: the original elements in
// their positions, the newly created trailing elements all set to
// defaultValue. n must be strictly larger than the source dimension;
// anything else is ErrBadResize. Complexity: O(n).
func (v *Vector[T]) Grow(n int, defaultValue T) (*Vector[T], error) {
	if n <= len(v.elems) {
		return nil, fmt.Errorf("Grow(%d): %w", n, ErrBadResize)
	}
	higher := &Vector[T]{elems: make([]T, n)}
	copy(higher.elems, v.elems)
	for i := len(v.elems); i < n; i++ {
		higher.elems[i] = defaultValue
	}

	return higher, nil
}
