// SPDX-License-Identifier: MIT
// Package vector: algebraic operations. Every function here is pure —
// the receiver and the argument are never mutated, and each result is a
// freshly allocated vector (or a plain scalar). All binary operations
// perform strict fail-fast validation and return clear sentinels on
// dimension mismatches.

package vector

import (
	"fmt"
	"math"
)

// validateSameDimension ensures rhs is non-nil and matches v's length.
// Returns plain sentinels so call sites can wrap uniformly.
func (v *Vector[T]) validateSameDimension(rhs *Vector[T]) error {
	if rhs == nil {
		return ErrNilVector
	}
	if len(v.elems) != len(rhs.elems) {
		return ErrDimensionMismatch
	}

	return nil
}

// Add returns the elementwise sum v + rhs as a fresh vector.
// Errors: ErrNilVector, ErrDimensionMismatch. Complexity: O(n).
func (v *Vector[T]) Add(rhs *Vector[T]) (*Vector[T], error) {
	if err := v.validateSameDimension(rhs); err != nil {
		return nil, fmt.Errorf("Add: %w", err)
	}
	sum := v.Clone()
	for i := range sum.elems {
		sum.elems[i] += rhs.elems[i]
	}

	return sum, nil
}

// Sub returns the elementwise difference v - rhs as a fresh vector.
// Errors: ErrNilVector, ErrDimensionMismatch. Complexity: O(n).
func (v *Vector[T]) Sub(rhs *Vector[T]) (*Vector[T], error) {
	if err := v.validateSameDimension(rhs); err != nil {
		return nil, fmt.Errorf("Sub: %w", err)
	}
	dif := v.Clone()
	for i := range dif.elems {
		dif.elems[i] -= rhs.elems[i]
	}

	return dif, nil
}

// Neg returns a fresh vector with every element negated. Complexity: O(n).
func (v *Vector[T]) Neg() *Vector[T] {
	neg := v.Clone()
	for i := range neg.elems {
		neg.elems[i] = -neg.elems[i]
	}

	return neg
}

// Scale returns a fresh vector with every element multiplied by k.
// Complexity: O(n).
func (v *Vector[T]) Scale(k T) *Vector[T] {
	prod := v.Clone()
	for i := range prod.elems {
		prod.elems[i] *= k
	}

	return prod
}

// Div returns a fresh vector with every element divided by k.
// There is deliberately no zero guard: for float scalars k == 0
// propagates ±Inf/NaN, for integer scalars it panics with the runtime's
// division-by-zero error, exactly as plain Go division would.
// Complexity: O(n).
func (v *Vector[T]) Div(k T) *Vector[T] {
	quot := v.Clone()
	for i := range quot.elems {
		quot.elems[i] /= k
	}

	return quot
}

// Dot returns the dot product Σ v[i]·rhs[i].
// Errors: ErrNilVector, ErrDimensionMismatch. Complexity: O(n).
func (v *Vector[T]) Dot(rhs *Vector[T]) (T, error) {
	var dot T
	if err := v.validateSameDimension(rhs); err != nil {
		return dot, fmt.Errorf("Dot: %w", err)
	}
	for i := range v.elems {
		dot += v.elems[i] * rhs.elems[i]
	}

	return dot, nil
}

// MagnitudeSquared returns Σ element², in the scalar type itself —
// integer scalars accumulate and truncate in integer arithmetic. Often
// sufficient, and cheaper than Magnitude. Complexity: O(n).
func (v *Vector[T]) MagnitudeSquared() T {
	var magsq T
	for _, e := range v.elems {
		magsq += e * e
	}

	return magsq
}

// Magnitude returns the Euclidean length: the square root of the sum of
// squares. The sum accumulates in T, the root is taken in float64 and
// converted back, so integer scalars truncate the result. Complexity: O(n).
func (v *Vector[T]) Magnitude() T {
	return T(math.Sqrt(float64(v.MagnitudeSquared())))
}

// Normalize returns a fresh vector with the same direction and
// magnitude 1, i.e. every element divided by Magnitude(). The zero
// vector is NOT guarded: its magnitude is zero and the division
// propagates ±Inf/NaN for float scalars or panics for integer scalars.
// Complexity: O(n).
func (v *Vector[T]) Normalize() *Vector[T] {
	return v.Div(v.Magnitude())
}

// Cross returns the 3-D cross product v × rhs as a fresh vector.
// The cross product is only defined in three dimensions; any other
// dimension yields ErrNot3D. Note cross is not commutative — the
// receiver is the left operand. Errors: ErrNilVector, ErrNot3D.
// Complexity: O(1).
func (v *Vector[T]) Cross(rhs *Vector[T]) (*Vector[T], error) {
	if rhs == nil {
		return nil, fmt.Errorf("Cross: %w", ErrNilVector)
	}
	if len(v.elems) != 3 || len(rhs.elems) != 3 {
		return nil, fmt.Errorf("Cross: %w", ErrNot3D)
	}

	return New3[T](
		v.elems[1]*rhs.elems[2]-v.elems[2]*rhs.elems[1],
		-(v.elems[0]*rhs.elems[2] - v.elems[2]*rhs.elems[0]),
		v.elems[0]*rhs.elems[1]-v.elems[1]*rhs.elems[0],
	), nil
}
