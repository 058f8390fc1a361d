// SPDX-License-Identifier: MIT
// Package scalar: generic numeric constraint and relative approximate
// equality. This file is the single source of truth for what counts as
// a scalar across gfxmath.

package scalar

import (
	"errors"
	"math"
)

// Number enumerates the element types the gfxmath containers support:
// the signed integer family and both float widths. Elements are passed
// and returned by value and must be initializable from the literals 0
// and 1, which every listed type satisfies.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// DefaultDelta is the conventional tolerance for approximate
// comparisons: one part in a thousand.
const DefaultDelta = 0.001

// ErrNonPositiveDelta signals that a tolerance argument was zero,
// negative, or NaN. A tolerance must be a positive fraction; anything
// else is a programmer error reported as a sentinel so call sites can
// match it with errors.Is.
var ErrNonPositiveDelta = errors.New("scalar: delta must be positive")

// AlmostEqual reports whether lhs and rhs are equal within the relative
// tolerance delta.
//
// Stage 1 (Validate): delta must be positive (ErrNonPositiveDelta).
// Stage 2 (Exact): lhs == rhs returns true immediately; this branch
// also handles signed infinities, since an infinity equals itself.
// Stage 3 (Relative): otherwise compute |lhs-rhs| / |rhs| in float64
// and accept iff the ratio is ≤ delta.
//
// The test is asymmetric: the denominator is rhs, so treat rhs as the
// reference value. When rhs is exactly zero and lhs is not, the ratio
// is a division by zero and the result follows float64 arithmetic
// (+Inf ratio, hence false); callers comparing against an exact zero
// reference should use an absolute tolerance instead.
//
// Complexity: O(1).
func AlmostEqual[T Number](lhs, rhs T, delta float64) (bool, error) {
	// Validate the tolerance before touching the operands.
	if !(delta > 0) {
		return false, ErrNonPositiveDelta // rejects 0, negatives and NaN
	}
	// Exact match, including ±Inf.
	if lhs == rhs {
		return true, nil
	}
	// Relative difference against rhs.
	difference := float64(lhs) - float64(rhs)
	positiveRatio := math.Abs(difference / float64(rhs))

	return positiveRatio <= delta, nil
}
