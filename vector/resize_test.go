// Package vector_test contains unit tests for the resizing copies:
// Subvector, Shrink and Grow.
package vector_test

import (
	"testing"

	"github.com/katalvlaran/gfxmath/vector"
	"github.com/stretchr/testify/require"
)

// TestSubvector_Window extracts contiguous windows.
func TestSubvector_Window(t *testing.T) {
	v := vector.New4(10, 20, 30, 40)

	mid, err := v.Subvector(1, 2)
	require.NoError(t, err)
	require.True(t, mid.Equal(vector.New2(20, 30)))

	full, err := v.Subvector(0, 4) // the whole vector is a valid window
	require.NoError(t, err)
	require.True(t, full.Equal(v))

	one, err := v.Subvector(3, 1)
	require.NoError(t, err)
	require.Equal(t, 1, one.Dimension())
}

// TestSubvector_Errors covers bad window sizes and start positions.
func TestSubvector_Errors(t *testing.T) {
	v := vector.New3(1, 2, 3)

	_, err := v.Subvector(0, 0) // empty window
	require.ErrorIs(t, err, vector.ErrBadDimension)

	_, err = v.Subvector(0, 4) // window larger than the source
	require.ErrorIs(t, err, vector.ErrBadDimension)

	_, err = v.Subvector(-1, 2) // start before the first element
	require.ErrorIs(t, err, vector.ErrIndexOutOfRange)

	_, err = v.Subvector(2, 2) // window runs past the last element
	require.ErrorIs(t, err, vector.ErrIndexOutOfRange)
}

// TestShrink keeps the leading elements and enforces strictness.
func TestShrink(t *testing.T) {
	v := vector.New4(1, 2, 3, 4)

	s, err := v.Shrink(2)
	require.NoError(t, err)
	require.True(t, s.Equal(vector.New2(1, 2)))

	_, err = v.Shrink(4) // same size is not a shrink
	require.ErrorIs(t, err, vector.ErrBadResize)

	_, err = v.Shrink(5) // larger is certainly not
	require.ErrorIs(t, err, vector.ErrBadResize)

	_, err = v.Shrink(0)
	require.ErrorIs(t, err, vector.ErrBadResize)
}

// TestGrow copies the original and fills the tail with the default.
func TestGrow(t *testing.T) {
	v := vector.New2(1, 2)

	g, err := v.Grow(4, 9)
	require.NoError(t, err)
	require.True(t, g.Equal(vector.New4(1, 2, 9, 9)))

	_, err = v.Grow(2, 0) // same size is not a growth
	require.ErrorIs(t, err, vector.ErrBadResize)

	_, err = v.Grow(1, 0) // smaller is certainly not
	require.ErrorIs(t, err, vector.ErrBadResize)
}

// TestShrinkThenGrow_RestoresPrefix pins the round-trip property:
// shrinking then growing back restores the leading elements, with the
// tail equal to the grow default.
func TestShrinkThenGrow_RestoresPrefix(t *testing.T) {
	v := vector.New4(5, 6, 7, 8)

	s, err := v.Shrink(2)
	require.NoError(t, err)
	g, err := s.Grow(4, 0)
	require.NoError(t, err)
	require.True(t, g.Equal(vector.New4(5, 6, 0, 0)))
}

// TestResize_ReturnsDetachedCopies ensures no storage is shared with
// the source vector.
func TestResize_ReturnsDetachedCopies(t *testing.T) {
	v := vector.New3(1, 2, 3)

	sub, err := v.Subvector(0, 2)
	require.NoError(t, err)
	require.NoError(t, sub.Set(0, 99))
	e, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, 1, e, "source must stay untouched")
}
