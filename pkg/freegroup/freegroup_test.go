package freegroup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zvk/vankampen/pkg/braid"
)

func TestHurwitzSingleGeneratorConjugates(t *testing.T) {
	g := Group{Rank: 2}
	x1, x2 := g.Generator(1), g.Generator(2)
	bn := braid.Monoid{Strands: 2}
	out, err := g.Hurwitz(bn.Generator(1), []Word{x1, x2})
	require.NoError(t, err)
	// x1 x2 x1^{-1}, x1
	assert.True(t, out[0].Equal(Word{1, 2, -1}))
	assert.True(t, out[1].Equal(x1))
}

func TestHurwitzInverseUndoesGenerator(t *testing.T) {
	g := Group{Rank: 2}
	x1, x2 := g.Generator(1), g.Generator(2)
	bn := braid.Monoid{Strands: 2}
	once, err := g.Hurwitz(bn.Generator(1), []Word{x1, x2})
	require.NoError(t, err)
	back, err := g.Hurwitz(bn.Generator(-1), once)
	require.NoError(t, err)
	assert.True(t, back[0].Equal(x1))
	assert.True(t, back[1].Equal(x2))
}

func TestHurwitzRejectsWrongCount(t *testing.T) {
	g := Group{Rank: 3}
	bn := braid.Monoid{Strands: 2}
	_, err := g.Hurwitz(bn.Generator(1), []Word{g.Generator(1)})
	require.ErrorIs(t, err, ErrWrongWordCount)
}
