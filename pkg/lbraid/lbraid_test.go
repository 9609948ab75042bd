package lbraid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zvk/vankampen/pkg/braid"
	"github.com/zvk/vankampen/pkg/cnum"
)

func r(re, im int64) cnum.Rat { return cnum.NewRat(re, 1, im, 1) }

func TestLBraidToWordIdentityOnNoCrossing(t *testing.T) {
	bn := braid.Monoid{Strands: 2}
	v := []cnum.Rat{r(0, 0), r(1, 0)}
	w, err := LBraidToWord(v, v, bn)
	require.NoError(t, err)
	assert.True(t, w.Equal(bn.Identity()))
}

func TestLBraidToWordSingleCrossingProducesOneGenerator(t *testing.T) {
	bn := braid.Monoid{Strands: 2}
	v1 := []cnum.Rat{r(0, 0), r(1, 1)}
	v2 := []cnum.Rat{r(1, 0), r(0, 1)}
	w, err := LBraidToWord(v1, v2, bn)
	require.NoError(t, err)
	require.Len(t, w, 1)
	assert.Equal(t, 1, abs(w[0]))
}

func TestLBraidToWordRejectsMismatchedLengths(t *testing.T) {
	bn := braid.Monoid{Strands: 3}
	_, err := LBraidToWord([]cnum.Rat{r(0, 0)}, []cnum.Rat{r(0, 0), r(1, 0)}, bn)
	require.ErrorIs(t, err, ErrStrandCountMismatch)
}

func TestLBraidToWordOnTripleCollisionEmitsStarBraid(t *testing.T) {
	bn := braid.Monoid{Strands: 3}
	v1 := []cnum.Rat{r(-1, 0), r(0, 1), r(1, 2)}
	v2 := []cnum.Rat{r(1, 0), r(0, 1), r(-1, 2)}
	w, err := LBraidToWord(v1, v2, bn)
	require.NoError(t, err)
	assert.Equal(t, braid.Word{1, 2, 1}, w)
}

func TestLBraidToWordDetectsSingularCoincidence(t *testing.T) {
	bn := braid.Monoid{Strands: 2}
	v1 := []cnum.Rat{r(0, 0), r(0, 0)}
	v2 := []cnum.Rat{r(0, 0), r(1, 0)}
	_, err := LBraidToWord(v1, v2, bn)
	require.ErrorIs(t, err, ErrSingularMonodromy)
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
