package braid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMulCancelsAdjacentInverse(t *testing.T) {
	w := Word{1, 2}
	got := w.Mul(w.Inverse())
	assert.Equal(t, Word{}, got)
}

func TestInverseReversesAndNegates(t *testing.T) {
	w := Word{1, -2, 3}
	assert.Equal(t, Word{-3, 2, -1}, w.Inverse())
}

func TestStarBraidOnPairIsSingleGenerator(t *testing.T) {
	m := Monoid{Strands: 4}
	w, err := m.StarBraid([]int{1, 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, Word{1}, w)
}

func TestStarBraidOnTripleIsTriangularWord(t *testing.T) {
	m := Monoid{Strands: 4}
	w, err := m.StarBraid([]int{1, 2, 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, Word{1, 2, 1}, w)
}

func TestStarBraidHonoursFrontForSign(t *testing.T) {
	m := Monoid{Strands: 4}
	w, err := m.StarBraid([]int{1, 2}, func(a, b int) bool { return false })
	require.NoError(t, err)
	assert.Equal(t, Word{-1}, w)
}

func TestStarBraidOnEmptyBlockFails(t *testing.T) {
	m := Monoid{Strands: 4}
	_, err := m.StarBraid(nil, nil)
	require.ErrorIs(t, err, ErrEmptyBlock)
}

func TestGeneratorOutOfRangeReturnsNil(t *testing.T) {
	m := Monoid{Strands: 3}
	assert.Nil(t, m.Generator(5))
	assert.Nil(t, m.Generator(0))
}

func TestIdentityIsMulNeutral(t *testing.T) {
	m := Monoid{Strands: 4}
	w := Word{1, -2, 3}
	assert.True(t, w.Equal(m.Identity().Mul(w)))
	assert.True(t, w.Equal(w.Mul(m.Identity())))
}
