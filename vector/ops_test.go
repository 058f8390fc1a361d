// Package vector_test contains unit tests for the algebraic operations
// of Vector: elementwise arithmetic, dot/cross products, magnitudes and
// normalization.
package vector_test

import (
	"testing"

	"github.com/katalvlaran/gfxmath/vector"
	"github.com/stretchr/testify/require"
)

// TestAdd_CommutativeAndZeroIdentity checks v+w == w+v and v+0 == v.
func TestAdd_CommutativeAndZeroIdentity(t *testing.T) {
	v := vector.New3(1, -2, 3)
	w := vector.New3(4, 5, -6)

	vw, err := v.Add(w)
	require.NoError(t, err)
	wv, err := w.Add(v)
	require.NoError(t, err)
	require.True(t, vw.Equal(wv), "addition is commutative")
	require.True(t, vw.Equal(vector.New3(5, 3, -3)))

	zero, err := vector.New[int](3)
	require.NoError(t, err)
	vz, err := v.Add(zero)
	require.NoError(t, err)
	require.True(t, vz.Equal(v), "zero is the additive identity")
}

// TestAdd_DoesNotMutateOperands pins the pure-value contract.
func TestAdd_DoesNotMutateOperands(t *testing.T) {
	v := vector.New2(1, 2)
	w := vector.New2(3, 4)

	_, err := v.Add(w)
	require.NoError(t, err)
	require.True(t, v.Equal(vector.New2(1, 2)))
	require.True(t, w.Equal(vector.New2(3, 4)))
}

// TestSub_EqualsAddOfNegation checks v-w == v+(-w).
func TestSub_EqualsAddOfNegation(t *testing.T) {
	v := vector.New3(7, 0, -2)
	w := vector.New3(1, 5, 3)

	dif, err := v.Sub(w)
	require.NoError(t, err)
	alt, err := v.Add(w.Neg())
	require.NoError(t, err)
	require.True(t, dif.Equal(alt))
	require.True(t, dif.Equal(vector.New3(6, -5, -5)))
}

// TestBinaryOps_DimensionMismatch covers the sentinel paths of Add,
// Sub and Dot.
func TestBinaryOps_DimensionMismatch(t *testing.T) {
	v := vector.New2(1, 2)
	w := vector.New3(1, 2, 3)

	_, err := v.Add(w)
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)

	_, err = v.Sub(w)
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)

	_, err = v.Dot(w)
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)

	_, err = v.Add(nil)
	require.ErrorIs(t, err, vector.ErrNilVector)
}

// TestNeg negates every element.
func TestNeg(t *testing.T) {
	require.True(t, vector.New3(1, -2, 0).Neg().Equal(vector.New3(-1, 2, 0)))
}

// TestScaleDiv exercises scalar multiplication and division.
func TestScaleDiv(t *testing.T) {
	v := vector.New3(1, -2, 3)
	require.True(t, v.Scale(3).Equal(vector.New3(3, -6, 9)))

	w := vector.New3(2.0, -4.0, 6.0)
	require.True(t, w.Div(2).Equal(vector.New3(1.0, -2.0, 3.0)))

	// Integer division truncates like plain Go division.
	require.True(t, vector.New2(7, -7).Div(2).Equal(vector.New2(3, -3)))
}

// TestDot_SymmetricAndValue checks v·w == w·v and a hand-computed value.
func TestDot_SymmetricAndValue(t *testing.T) {
	v := vector.New3(1, 2, 3)
	w := vector.New3(4, -5, 6)

	vw, err := v.Dot(w)
	require.NoError(t, err)
	wv, err := w.Dot(v)
	require.NoError(t, err)
	require.Equal(t, vw, wv, "dot product is symmetric")
	require.Equal(t, 12, vw) // 4 - 10 + 18
}

// TestMagnitudeSquared_Concrete pins the documented scenario:
// <1,2,3> has squared magnitude 14.
func TestMagnitudeSquared_Concrete(t *testing.T) {
	require.Equal(t, 14, vector.New3(1, 2, 3).MagnitudeSquared())
}

// TestMagnitude covers float exactness and integer truncation.
func TestMagnitude(t *testing.T) {
	// 3-4-5 triangle: exact in float64.
	require.Equal(t, 5.0, vector.New2(3.0, 4.0).Magnitude())

	// Integer scalars truncate: √14 ≈ 3.74 → 3.
	require.Equal(t, 3, vector.New3(1, 2, 3).Magnitude())
}

// TestNormalize_UnitMagnitude checks v.Normalize().Magnitude() ≈ 1 for
// non-zero float vectors.
func TestNormalize_UnitMagnitude(t *testing.T) {
	for _, v := range []*vector.Vector[float64]{
		vector.New2(3.0, 4.0),
		vector.New3(1.0, 2.0, 3.0),
		vector.New4(-1.0, 0.5, 2.0, -7.0),
	} {
		require.InDelta(t, 1.0, float64(v.Normalize().Magnitude()), 1e-12)
	}
}

// TestNormalize_Direction keeps the direction: normalizing <3,4> gives
// <0.6, 0.8>.
func TestNormalize_Direction(t *testing.T) {
	n := vector.New2(3.0, 4.0).Normalize()
	e0, err := n.At(0)
	require.NoError(t, err)
	e1, err := n.At(1)
	require.NoError(t, err)
	require.InDelta(t, 0.6, e0, 1e-12)
	require.InDelta(t, 0.8, e1, 1e-12)
}

// TestCross_KnownValues checks the standard basis identities and a
// hand-computed product.
func TestCross_KnownValues(t *testing.T) {
	x := vector.New3(1, 0, 0)
	y := vector.New3(0, 1, 0)
	z := vector.New3(0, 0, 1)

	xy, err := x.Cross(y)
	require.NoError(t, err)
	require.True(t, xy.Equal(z), "x × y = z")

	v := vector.New3(2, 3, 4)
	w := vector.New3(5, 6, 7)
	vw, err := v.Cross(w)
	require.NoError(t, err)
	require.True(t, vw.Equal(vector.New3(-3, 6, -3)))
}

// TestCross_AntiCommutative checks v×w == -(w×v).
func TestCross_AntiCommutative(t *testing.T) {
	v := vector.New3(1, -2, 3)
	w := vector.New3(4, 0, -1)

	vw, err := v.Cross(w)
	require.NoError(t, err)
	wv, err := w.Cross(v)
	require.NoError(t, err)
	require.True(t, vw.Equal(wv.Neg()))
}

// TestCross_Not3D ensures non-3-D operands fail with ErrNot3D.
func TestCross_Not3D(t *testing.T) {
	v := vector.New2(1, 2)
	_, err := v.Cross(vector.New2(3, 4))
	require.ErrorIs(t, err, vector.ErrNot3D)

	w := vector.New4(1, 2, 3, 4)
	_, err = w.Cross(w)
	require.ErrorIs(t, err, vector.ErrNot3D)

	u := vector.New3(1, 2, 3)
	_, err = u.Cross(nil)
	require.ErrorIs(t, err, vector.ErrNilVector)
}
