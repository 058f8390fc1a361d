// Package matrix implements a fixed-size numeric matrix for graphics
// code, built on vector rows.
//
// The matrix package provides:
//
//   - Matrix[T] — an H×W container of scalar.Number elements, stored as
//     H independent vector.Vector rows of width W.
//   - Elementwise arithmetic (Add, Sub, Neg, Scale, Div), matrix
//     multiplication, Transpose and Identity.
//   - Determinant and Solve (Cramer's rule), deliberately restricted to
//     the 2×2 and 3×3 square systems graphics code needs; any other
//     shape fails with an explicit sentinel instead of a silently wrong
//     general formula.
//   - Resizing and extraction: Submatrix, Shrink, Grow, RowVector,
//     ColumnVector, RowMatrix, ColumnMatrix.
//
// The height and width are fixed at construction; every shape rule is
// validated up front and reported via errors.Is-matchable sentinels.
// Arithmetic always returns a fresh matrix. Row returns the matrix's
// own row vector, so writing through it mutates the matrix — the Go
// rendering of a mutable row reference.
//
// Matrices render one row per line as "|e0 e1 ... eW|" with a trailing
// newline per row; tests rely on the exact bytes.
//
// Matrices up to 4×4 are the expected sizes, so values are cheap to
// clone and Cramer's rule is an acceptable solver.
package matrix
