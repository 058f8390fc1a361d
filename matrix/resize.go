// SPDX-License-Identifier: MIT
// Package matrix: resizing copies and row/column extraction. Each
// operation returns a fresh matrix or vector; the source is never
// mutated. The strict size-change rules are validated at runtime
// before any element is copied.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/gfxmath/vector"
)

// Submatrix returns the height×width block of m whose top-left corner
// sits at (top, left), as a fresh matrix.
//
// Stage 1 (Validate): both result dimensions must be positive and no
// larger than the source (ErrBadShape); the block must actually fit,
// so top ∈ [0, Height-height] (ErrRowOutOfRange) and
// left ∈ [0, Width-width] (ErrColOutOfRange).
// Stage 2 (Copy): copy the block row by row.
// Complexity: O(height·width).
func (m *Matrix[T]) Submatrix(top, left, height, width int) (*Matrix[T], error) {
	if height <= 0 || width <= 0 || height > m.height || width > m.width {
		return nil, fmt.Errorf("Submatrix(%d,%d,%d,%d): %w", top, left, height, width, ErrBadShape)
	}
	if top < 0 || top+height > m.height {
		return nil, fmt.Errorf("Submatrix(%d,%d,%d,%d): %w", top, left, height, width, ErrRowOutOfRange)
	}
	if left < 0 || left+width > m.width {
		return nil, fmt.Errorf("Submatrix(%d,%d,%d,%d): %w", top, left, height, width, ErrColOutOfRange)
	}
	sub, _ := New[T](height, width) // validated positive shape, cannot fail
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			sub.set(i, j, m.at(i+top, j+left))
		}
	}

	return sub, nil
}

// Shrink returns a smaller copy of m, keeping only the first height
// rows and width columns. Both result dimensions must be positive and
// no larger than the source, and at least one must be strictly smaller;
// anything else is ErrBadResize. Complexity: O(height·width).
func (m *Matrix[T]) Shrink(height, width int) (*Matrix[T], error) {
	if height <= 0 || width <= 0 || height > m.height || width > m.width {
		return nil, fmt.Errorf("Shrink(%d,%d): %w", height, width, ErrBadResize)
	}
	if height == m.height && width == m.width {
		return nil, fmt.Errorf("Shrink(%d,%d): %w", height, width, ErrBadResize)
	}
	sub, _ := New[T](height, width)
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			sub.set(i, j, m.at(i, j))
		}
	}

	return sub, nil
}

// Grow returns a larger copy of m: the original elements occupy the
// top-left corner, every newly created element is set to defaultValue.
// Both result dimensions must be at least the source's and at least one
// must be strictly larger; anything else is ErrBadResize.
// Complexity: O(height·width).
func (m *Matrix[T]) Grow(height, width int, defaultValue T) (*Matrix[T], error) {
	if height < m.height || width < m.width {
		return nil, fmt.Errorf("Grow(%d,%d): %w", height, width, ErrBadResize)
	}
	if height == m.height && width == m.width {
		return nil, fmt.Errorf("Grow(%d,%d): %w", height, width, ErrBadResize)
	}
	growth, _ := NewFilled[T](height, width, defaultValue)
	for i := 0; i < m.height; i++ {
		for j := 0; j < m.width; j++ {
			growth.set(i, j, m.at(i, j))
		}
	}

	return growth, nil
}

// RowVector returns row r as a detached vector copy — unlike Row, the
// result does not alias the matrix. Errors: ErrRowOutOfRange.
// Complexity: O(w).
func (m *Matrix[T]) RowVector(r int) (*vector.Vector[T], error) {
	if !m.isRow(r) {
		return nil, fmt.Errorf("RowVector(%d): %w", r, ErrRowOutOfRange)
	}

	return m.rows[r].Clone(), nil
}

// RowMatrix returns row r as a fresh 1×Width matrix.
// Errors: ErrRowOutOfRange. Complexity: O(w).
func (m *Matrix[T]) RowMatrix(r int) (*Matrix[T], error) {
	if !m.isRow(r) {
		return nil, fmt.Errorf("RowMatrix(%d): %w", r, ErrRowOutOfRange)
	}
	rowmat, _ := New[T](1, m.width)
	for j := 0; j < m.width; j++ {
		rowmat.set(0, j, m.at(r, j))
	}

	return rowmat, nil
}

// ColumnVector returns column c as a vector of dimension Height.
// Errors: ErrColOutOfRange. Complexity: O(h).
func (m *Matrix[T]) ColumnVector(c int) (*vector.Vector[T], error) {
	if !m.isColumn(c) {
		return nil, fmt.Errorf("ColumnVector(%d): %w", c, ErrColOutOfRange)
	}
	col, _ := vector.New[T](m.height)
	for i := 0; i < m.height; i++ {
		_ = col.Set(i, m.at(i, c))
	}

	return col, nil
}

// ColumnMatrix returns column c as a fresh Height×1 matrix.
// Errors: ErrColOutOfRange. Complexity: O(h).
func (m *Matrix[T]) ColumnMatrix(c int) (*Matrix[T], error) {
	if !m.isColumn(c) {
		return nil, fmt.Errorf("ColumnMatrix(%d): %w", c, ErrColOutOfRange)
	}
	colmat, _ := New[T](m.height, 1)
	for i := 0; i < m.height; i++ {
		colmat.set(i, 0, m.at(i, c))
	}

	return colmat, nil
}
