// SPDX-License-Identifier: MIT
// Package matrix: the numerically special kernels, Determinant and
// Solve. Both are deliberately restricted to 2×2 and 3×3 square
// matrices and use the direct closed-form expansions; for the sizes
// graphics code meets, Cramer's rule is an acceptable solver and keeps
// results bit-for-bit deterministic. Any other shape fails explicitly
// with ErrNonSquare or ErrUnsupportedOrder instead of falling through
// to an unspecified value.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/gfxmath/vector"
)

// Determinant returns the determinant of the matrix.
//
// Stage 1 (Validate): the matrix must be square (ErrNonSquare) and of
// order 2 or 3 (ErrUnsupportedOrder).
// Stage 2 (Execute): the 2×2 form ad−bc, or the six-term 3×3
// expansion, evaluated in the scalar type.
// Complexity: O(1).
func (m *Matrix[T]) Determinant() (T, error) {
	var det T
	if !m.IsSquare() {
		return det, fmt.Errorf("Determinant: %w", ErrNonSquare)
	}
	switch m.width {
	case 2:
		det = m.at(0, 0)*m.at(1, 1) - m.at(1, 0)*m.at(0, 1)
	case 3:
		det += m.at(0, 0) * m.at(1, 1) * m.at(2, 2)
		det += m.at(0, 1) * m.at(1, 2) * m.at(2, 0)
		det += m.at(0, 2) * m.at(1, 0) * m.at(2, 1)
		det -= m.at(0, 2) * m.at(1, 1) * m.at(2, 0)
		det -= m.at(0, 1) * m.at(1, 0) * m.at(2, 2)
		det -= m.at(0, 0) * m.at(1, 2) * m.at(2, 1)
	default:
		return det, fmt.Errorf("Determinant: %w", ErrUnsupportedOrder)
	}

	return det, nil
}

// Solve solves the linear system A·x = b, where the receiver holds the
// coefficients A and b holds the right-hand-side constants, returning
// x. Implemented via Cramer's rule: component i of the solution is the
// determinant of A with column i replaced by b, divided by det(A).
//
// Stage 1 (Validate): b non-nil (vector.ErrNilVector); A square
// (ErrNonSquare) of order 2 or 3 (ErrUnsupportedOrder); b's dimension
// equals the height (ErrDimensionMismatch).
// Stage 2 (Execute): for each column, substitute b into a working copy
// of A and take the ratio of determinants.
//
// A singular system (det(A) == 0) is NOT guarded: the division
// propagates ±Inf/NaN for float scalars and panics with the runtime's
// division-by-zero error for integer scalars — callers that cannot rule
// out singularity should check Determinant first.
// Complexity: O(n) determinant evaluations of O(1) each, so O(n²) for
// the supported orders.
func (m *Matrix[T]) Solve(b *vector.Vector[T]) (*vector.Vector[T], error) {
	if b == nil {
		return nil, fmt.Errorf("Solve: %w", vector.ErrNilVector)
	}
	if !m.IsSquare() {
		return nil, fmt.Errorf("Solve: %w", ErrNonSquare)
	}
	if m.width != 2 && m.width != 3 {
		return nil, fmt.Errorf("Solve: %w", ErrUnsupportedOrder)
	}
	if b.Dimension() != m.height {
		return nil, fmt.Errorf("Solve: %w", ErrDimensionMismatch)
	}

	det, _ := m.Determinant() // validated above, cannot fail
	x, _ := vector.New[T](m.height)
	for col := 0; col < m.width; col++ {
		// Working copy of A with column col replaced by b.
		cramer := m.Clone()
		for row := 0; row < m.height; row++ {
			bi, _ := b.At(row) // row < m.height == b.Dimension()
			cramer.set(row, col, bi)
		}
		colDet, _ := cramer.Determinant() // same shape as m, cannot fail
		_ = x.Set(col, colDet/det)        // unguarded ratio, see doc comment
	}

	return x, nil
}
