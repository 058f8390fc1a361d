// SPDX-License-Identifier: MIT
// Package matrix: algebraic operations. Every function here is pure —
// the receiver and the argument are never mutated, and each result is a
// freshly allocated matrix. All binary operations perform strict
// fail-fast validation and return clear sentinels on shape mismatches.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/gfxmath/vector"
)

// validateSameShape ensures rhs is non-nil and congruent with m.
// Returns plain sentinels so call sites can wrap uniformly.
func (m *Matrix[T]) validateSameShape(rhs *Matrix[T]) error {
	if rhs == nil {
		return ErrNilMatrix
	}
	if m.height != rhs.height || m.width != rhs.width {
		return ErrDimensionMismatch
	}

	return nil
}

// Add returns the elementwise sum m + rhs as a fresh matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(h·w).
func (m *Matrix[T]) Add(rhs *Matrix[T]) (*Matrix[T], error) {
	if err := m.validateSameShape(rhs); err != nil {
		return nil, fmt.Errorf("Add: %w", err)
	}
	sum := m.Clone()
	for i := 0; i < m.height; i++ {
		for j := 0; j < m.width; j++ {
			sum.set(i, j, sum.at(i, j)+rhs.at(i, j))
		}
	}

	return sum, nil
}

// Sub returns the elementwise difference m - rhs as a fresh matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(h·w).
func (m *Matrix[T]) Sub(rhs *Matrix[T]) (*Matrix[T], error) {
	if err := m.validateSameShape(rhs); err != nil {
		return nil, fmt.Errorf("Sub: %w", err)
	}
	dif := m.Clone()
	for i := 0; i < m.height; i++ {
		for j := 0; j < m.width; j++ {
			dif.set(i, j, dif.at(i, j)-rhs.at(i, j))
		}
	}

	return dif, nil
}

// Neg returns a fresh matrix with every element negated. Complexity: O(h·w).
func (m *Matrix[T]) Neg() *Matrix[T] {
	neg := m.Clone()
	for i := 0; i < m.height; i++ {
		for j := 0; j < m.width; j++ {
			neg.set(i, j, -neg.at(i, j))
		}
	}

	return neg
}

// Scale returns a fresh matrix with every element multiplied by k.
// Complexity: O(h·w).
func (m *Matrix[T]) Scale(k T) *Matrix[T] {
	prod := m.Clone()
	for i := 0; i < m.height; i++ {
		for j := 0; j < m.width; j++ {
			prod.set(i, j, prod.at(i, j)*k)
		}
	}

	return prod
}

// Div returns a fresh matrix with every element divided by k.
// There is deliberately no zero guard: for float scalars k == 0
// propagates ±Inf/NaN, for integer scalars it panics with the runtime's
// division-by-zero error, exactly as plain Go division would.
// Complexity: O(h·w).
func (m *Matrix[T]) Div(k T) *Matrix[T] {
	quot := m.Clone()
	for i := 0; i < m.height; i++ {
		for j := 0; j < m.width; j++ {
			quot.set(i, j, quot.at(i, j)/k)
		}
	}

	return quot
}

// Mul performs standard matrix multiplication m × rhs: an H×W left
// operand composed with a W×R right operand yields an H×R result via
// inner products. The inner dimensions must agree — m.Width() must
// equal rhs.Height().
//
// Stage 1 (Validate): rhs non-nil (ErrNilMatrix), inner dimensions
// match (ErrDimensionMismatch).
// Stage 2 (Execute): fixed i→j→k triple loop into a fresh H×R matrix.
// Complexity: O(h·w·r) time, O(h·r) space.
func (m *Matrix[T]) Mul(rhs *Matrix[T]) (*Matrix[T], error) {
	if rhs == nil {
		return nil, fmt.Errorf("Mul: %w", ErrNilMatrix)
	}
	if m.width != rhs.height {
		return nil, fmt.Errorf("Mul: %w", ErrDimensionMismatch)
	}
	crossed, _ := New[T](m.height, rhs.width) // shape is positive, cannot fail
	var crossval T
	for i := 0; i < m.height; i++ {
		for j := 0; j < rhs.width; j++ {
			crossval = 0
			for k := 0; k < m.width; k++ {
				crossval += m.at(i, k) * rhs.at(k, j)
			}
			crossed.set(i, j, crossval)
		}
	}

	return crossed, nil
}

// MulVector computes y = m·x, treating x as a column vector of
// dimension Width and producing a column vector of dimension Height.
// Equivalent to composing with an W×1 column matrix, without the
// intermediate matrix.
// Errors: vector.ErrNilVector, ErrDimensionMismatch when x's dimension
// differs from the width. Complexity: O(h·w).
func (m *Matrix[T]) MulVector(x *vector.Vector[T]) (*vector.Vector[T], error) {
	if x == nil {
		return nil, fmt.Errorf("MulVector: %w", vector.ErrNilVector)
	}
	if x.Dimension() != m.width {
		return nil, fmt.Errorf("MulVector: %w", ErrDimensionMismatch)
	}
	y, _ := vector.New[T](m.height)
	var acc T
	for i := 0; i < m.height; i++ {
		acc = 0
		for j := 0; j < m.width; j++ {
			xj, _ := x.At(j) // j < width == x.Dimension()
			acc += m.at(i, j) * xj
		}
		_ = y.Set(i, acc)
	}

	return y, nil
}

// Transpose returns the W×H matrix with element [j][i] equal to the
// receiver's [i][j]. Complexity: O(h·w).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	transposed, _ := New[T](m.width, m.height) // dims flipped, cannot fail
	for i := 0; i < m.height; i++ {
		for j := 0; j < m.width; j++ {
			transposed.set(j, i, m.at(i, j))
		}
	}

	return transposed
}
