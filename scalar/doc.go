// Package scalar defines the numeric element contract shared by the
// vector and matrix packages.
//
// The scalar package provides:
//
//   - Number — the generic constraint naming every element type the
//     containers accept (signed integers and floats).
//   - AlmostEqual — a relative-tolerance comparison for individual
//     scalars, intended for floating-point values where exact equality
//     is too strict.
//
// Note that AlmostEqual is deliberately NOT the comparison used by
// Vector.AlmostEqual and Matrix.AlmostEqual: the containers compare
// elementwise with an absolute tolerance, while this helper divides the
// difference by the reference value. Both definitions are part of the
// contract; pick the one whose semantics you actually want.
package scalar
