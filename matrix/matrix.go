// SPDX-License-Identifier: MIT
// Package matrix: core container — construction, row/element access,
// equality, filling and the textual rendering. Arithmetic lives in
// ops.go, the Cramer kernels in cramer.go and the resizing copies in
// resize.go.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gfxmath/scalar"
	"github.com/katalvlaran/gfxmath/vector"
)

// Matrix is a fixed-size, height×width numeric container. Each row is
// an independent vector.Vector of the width; the matrix exclusively
// owns its rows and two matrices never alias storage. The shape is set
// at construction and immutable afterwards. Obtain instances through
// the constructors; the zero Matrix is not useful.
type Matrix[T scalar.Number] struct {
	height, width int
	rows          []*vector.Vector[T] // len(rows) == height, each of dimension width
}

// New creates a height×width matrix with every element set to zero.
// Stage 1 (Validate): ensure height > 0 and width > 0.
// Stage 2 (Prepare): allocate one zero row vector per row.
// Complexity: O(h·w) time and memory.
func New[T scalar.Number](height, width int) (*Matrix[T], error) {
	if height <= 0 || width <= 0 {
		return nil, ErrBadShape
	}
	rows := make([]*vector.Vector[T], height)
	for i := range rows {
		rows[i], _ = vector.New[T](width) // width > 0, cannot fail
	}

	return &Matrix[T]{height: height, width: width, rows: rows}, nil
}

// NewFilled creates a height×width matrix with every element set to
// value. Complexity: O(h·w).
func NewFilled[T scalar.Number](height, width int, value T) (*Matrix[T], error) {
	m, err := New[T](height, width)
	if err != nil {
		return nil, err
	}
	m.Fill(value)

	return m, nil
}

// FromSlice creates a height×width matrix initialized from values in
// row-major order: the first row fills left to right, then the second,
// and so on. Fewer values than h·w leave the remaining elements zero;
// extras are ignored. The input slice is copied, never aliased.
// Complexity: O(h·w).
func FromSlice[T scalar.Number](height, width int, values []T) (*Matrix[T], error) {
	if height <= 0 || width <= 0 {
		return nil, ErrBadShape
	}
	rows := make([]*vector.Vector[T], height)
	for i := range rows {
		// Window of values owned by row i; clamp to what was provided.
		// vector.FromSlice zero-pads a short window and copies a full one.
		lo := i * width
		if lo > len(values) {
			lo = len(values)
		}
		hi := lo + width
		if hi > len(values) {
			hi = len(values)
		}
		rows[i], _ = vector.FromSlice(width, values[lo:hi]) // width > 0, cannot fail
	}

	return &Matrix[T]{height: height, width: width, rows: rows}, nil
}

// New2x2 creates a 2×2 matrix from its elements in row-major order.
func New2x2[T scalar.Number](a, b, c, d T) *Matrix[T] {
	m, _ := FromSlice(2, 2, []T{a, b, c, d}) // fixed positive shape, cannot fail
	return m
}

// New3x3 creates a 3×3 matrix from its elements in row-major order.
func New3x3[T scalar.Number](values ...T) *Matrix[T] {
	m, _ := FromSlice(3, 3, values)
	return m
}

// New4x4 creates a 4×4 matrix from its elements in row-major order.
func New4x4[T scalar.Number](values ...T) *Matrix[T] {
	m, _ := FromSlice(4, 4, values)
	return m
}

// Identity returns the n×n matrix with 1 on the diagonal and 0
// elsewhere — the multiplicative identity. Identity matrices are square
// by construction, so the non-square case cannot arise. Errors:
// ErrBadShape when n ≤ 0. Complexity: O(n²).
func Identity[T scalar.Number](n int) (*Matrix[T], error) {
	ident, err := New[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		ident.set(i, i, 1)
	}

	return ident, nil
}

// Clone returns a deep, independent copy: every row vector is cloned.
// Complexity: O(h·w) time and memory.
func (m *Matrix[T]) Clone() *Matrix[T] {
	rows := make([]*vector.Vector[T], m.height)
	for i, r := range m.rows {
		rows[i] = r.Clone()
	}

	return &Matrix[T]{height: m.height, width: m.width, rows: rows}
}

// Height returns the fixed number of rows. Complexity: O(1).
func (m *Matrix[T]) Height() int {
	return m.height
}

// Width returns the fixed number of columns. Complexity: O(1).
func (m *Matrix[T]) Width() int {
	return m.width
}

// IsSquare reports whether the height and width are identical.
func (m *Matrix[T]) IsSquare() bool {
	return m.height == m.width
}

// isRow reports whether r addresses a row of m.
func (m *Matrix[T]) isRow(r int) bool {
	return r >= 0 && r < m.height
}

// isColumn reports whether c addresses a column of m.
func (m *Matrix[T]) isColumn(c int) bool {
	return c >= 0 && c < m.width
}

// at reads element (r, c). Callers must have established bounds; the
// row vector's own check cannot fire after that.
func (m *Matrix[T]) at(r, c int) T {
	e, _ := m.rows[r].At(c)
	return e
}

// set writes element (r, c). Same bounds contract as at.
func (m *Matrix[T]) set(r, c int, value T) {
	_ = m.rows[r].Set(c, value)
}

// Row returns row r of the matrix as its live row vector — writes
// through the returned vector mutate the matrix, the Go rendering of a
// mutable row reference. Use Row(r).Clone() for a detached copy, or
// RowVector for the same thing in one call. Errors: ErrRowOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) Row(r int) (*vector.Vector[T], error) {
	if !m.isRow(r) {
		return nil, fmt.Errorf("Row(%d): %w", r, ErrRowOutOfRange)
	}

	return m.rows[r], nil
}

// At retrieves the element at (r, c).
// Errors: ErrRowOutOfRange, ErrColOutOfRange. Complexity: O(1).
func (m *Matrix[T]) At(r, c int) (T, error) {
	var zero T
	if !m.isRow(r) {
		return zero, fmt.Errorf("At(%d,%d): %w", r, c, ErrRowOutOfRange)
	}
	if !m.isColumn(c) {
		return zero, fmt.Errorf("At(%d,%d): %w", r, c, ErrColOutOfRange)
	}

	return m.at(r, c), nil
}

// Set assigns value at (r, c). This and Fill are the only in-place
// mutations the type offers.
// Errors: ErrRowOutOfRange, ErrColOutOfRange. Complexity: O(1).
func (m *Matrix[T]) Set(r, c int, value T) error {
	if !m.isRow(r) {
		return fmt.Errorf("Set(%d,%d): %w", r, c, ErrRowOutOfRange)
	}
	if !m.isColumn(c) {
		return fmt.Errorf("Set(%d,%d): %w", r, c, ErrColOutOfRange)
	}
	m.set(r, c, value)

	return nil
}

// Fill overwrites every element with value. Complexity: O(h·w).
func (m *Matrix[T]) Fill(value T) {
	for _, r := range m.rows {
		r.Fill(value)
	}
}

// Equal reports exact elementwise equality across all positions,
// delegating to the row vectors' equality. Matrices of different
// shapes, and comparisons against nil, are simply unequal.
// Complexity: O(h·w).
func (m *Matrix[T]) Equal(rhs *Matrix[T]) bool {
	if rhs == nil || m.height != rhs.height || m.width != rhs.width {
		return false
	}
	for i, r := range m.rows {
		if !r.Equal(rhs.rows[i]) {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal. Complexity: O(h·w).
func (m *Matrix[T]) NotEqual(rhs *Matrix[T]) bool {
	return !m.Equal(rhs)
}

// AlmostEqual reports whether every corresponding row pair is
// almost-equal under the row vectors' ABSOLUTE per-element tolerance:
// |m[i][j]-rhs[i][j]| ≤ delta everywhere. Errors:
// scalar.ErrNonPositiveDelta when delta ≤ 0 or NaN, ErrNilMatrix,
// ErrDimensionMismatch on shape mismatch. Complexity: O(h·w).
func (m *Matrix[T]) AlmostEqual(rhs *Matrix[T], delta float64) (bool, error) {
	if !(delta > 0) {
		return false, scalar.ErrNonPositiveDelta
	}
	if rhs == nil {
		return false, ErrNilMatrix
	}
	if m.height != rhs.height || m.width != rhs.width {
		return false, ErrDimensionMismatch
	}
	for i, r := range m.rows {
		ok, err := r.AlmostEqual(rhs.rows[i], delta)
		if err != nil {
			return false, fmt.Errorf("AlmostEqual: row %d: %w", i, err)
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// String implements fmt.Stringer, rendering one row per line as
// "|e0 e1 ... eW|" — pipe-enclosed, space-separated, each row
// newline-terminated. The exact bytes are part of the observable
// contract. Complexity: O(h·w).
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for _, r := range m.rows {
		sb.WriteByte('|')
		for j := 0; j < m.width; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			e, _ := r.At(j)
			fmt.Fprintf(&sb, "%v", e)
		}
		sb.WriteString("|\n")
	}

	return sb.String()
}
