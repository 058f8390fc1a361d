// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions. Every shape rule is validated up front, before
// any element is read or written.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("Op: %w", ErrX)
// at the operation boundary — callers still match via errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (height or width ≤ 0, or a submatrix larger than its source).
	// Constructors must validate before allocation.
	ErrBadShape = errors.New("matrix: height and width must be > 0")

	// ErrRowOutOfRange indicates a row index outside [0, Height).
	ErrRowOutOfRange = errors.New("matrix: row index out of range")

	// ErrColOutOfRange indicates a column index outside [0, Width).
	ErrColOutOfRange = errors.New("matrix: column index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between
	// operands: Add/Sub over different shapes, Mul where the left width
	// differs from the right height, or Solve with a constant vector
	// whose dimension is not the matrix height.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required
	// (Determinant, Solve) but the receiver is not.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrUnsupportedOrder marks the deliberate boundary of the direct
	// closed-form kernels: Determinant and Solve are implemented for
	// 2×2 and 3×3 matrices only. Larger square systems fail explicitly
	// rather than guessing a generalization.
	ErrUnsupportedOrder = errors.New("matrix: determinant and solve are only implemented for 2x2 and 3x3")

	// ErrBadResize is returned when Shrink/Grow violates the strict
	// size-change rule: Shrink must make at least one dimension strictly
	// smaller (none larger), Grow at least one strictly larger (none
	// smaller).
	ErrBadResize = errors.New("matrix: resize must strictly change at least one dimension")

	// ErrNilMatrix indicates that a nil *Matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
