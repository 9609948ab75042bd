package hurwitz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zvk/vankampen/pkg/braid"
)

func TestVKQuotientOnSingleGeneratorBraidHasOneRelatorPerGenerator(t *testing.T) {
	bn := braid.Monoid{Strands: 2}
	pr, err := VKQuotient([]braid.Word{bn.Generator(1)}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"f1", "f2"}, pr.Generators)
	assert.Len(t, pr.Relators, 2)
}

func TestVKQuotientRejectsNonPositiveStrands(t *testing.T) {
	_, err := VKQuotient(nil, 0)
	require.ErrorIs(t, err, ErrEmptyBraidList)
}

func TestDBVKQuotientAddsOneGeneratorPerBraidAndBasepointRelator(t *testing.T) {
	bn := braid.Monoid{Strands: 2}
	in := NonMonicInput{
		Braids:    []braid.Word{bn.Generator(1)},
		Strands:   2,
		Basepoint: 1,
	}
	pr, err := DBVKQuotient(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"f1", "f2", "g1"}, pr.Generators)
	// 2 Hurwitz relators + 1 basepoint relator.
	assert.Len(t, pr.Relators, 3)
}
