// Package vector implements a fixed-length numeric vector for graphics
// code.
//
// The vector package provides:
//
//   - Vector[T] — an ordered, homogeneous container of exactly
//     Dimension() elements, generic over scalar.Number.
//   - Elementwise arithmetic (Add, Sub, Neg, Scale, Div), the dot
//     product, the 3-D cross product, magnitudes and normalization.
//   - Resizing copies: Subvector, Shrink, Grow.
//
// The dimension is fixed when a vector is constructed and never changes
// afterwards; every shape rule is validated up front and reported via
// errors.Is-matchable sentinels. Arithmetic always returns a fresh
// vector — only Set and Fill mutate in place — so distinct vectors
// never share storage and are safe to use from distinct goroutines.
//
// Vectors render as "<e0, e1, ..., eN>" via fmt.Stringer, which tests
// and debug output rely on verbatim.
//
// See the examples in this package and matrix for usage patterns.
package vector
