// Package gfxmath is a compact linear-algebra toolkit for computer
// graphics: low-dimensional vectors and matrices with value semantics.
//
// 🚀 What is gfxmath?
//
//	A small, deterministic library built around two generic containers:
//		• vector.Vector[T] — a fixed-length numeric vector (2D/3D/4D and beyond)
//		• matrix.Matrix[T] — an H×W numeric matrix stored as vector rows
//	plus the scalar package with the numeric constraint and a relative
//	approximate-equality helper.
//
// ✨ Why choose gfxmath?
//
//   - Graphics-first – dot/cross products, transpose, identity,
//     determinants and Cramer's-rule solving for the 2×2 and 3×3 systems
//     graphics code actually meets
//   - Fail-fast guarantees – every shape rule is validated up front and
//     reported through errors.Is-matchable sentinels, never a silent
//     wrong answer
//   - Pure Go – no cgo, no hidden deps, generic over int and float scalars
//
// Everything is organized under three subpackages, leaves first:
//
//	scalar/ — Number constraint + AlmostEqual (relative tolerance)
//	vector/ — Vector[T]: construction, arithmetic, resize, rendering
//	matrix/ — Matrix[T]: arithmetic, transpose, determinant, Solve
//
// Quick ASCII example:
//
//	|4 -3|   |x|   |11|
//	|6  5| · |y| = | 7|   ⇒   x = 2, y = -1
//
// solved with matrix.Matrix[int].Solve via Cramer's rule.
//
// Dive into the package docs and examples for the full surface.
//
//	go get github.com/katalvlaran/gfxmath
package gfxmath
