package loopgraph

import (
	"testing"

	"github.com/npillmayer/arithm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zvk/vankampen/pkg/cnum"
)

func TestBuildRejectsEmptyRootSet(t *testing.T) {
	_, err := Build(nil, Config{})
	require.ErrorIs(t, err, ErrTooFewPoints)
}

func TestBuildProducesOneLoopPerRoot(t *testing.T) {
	roots := []cnum.Rat{
		cnum.RatFromInt(-1),
		cnum.RatFromInt(0),
		cnum.RatFromInt(1),
	}
	g, err := Build(roots, Config{})
	require.NoError(t, err)
	assert.Len(t, g.Loops, 3)
	assert.Equal(t, 0, g.Basepoint)
	for _, loop := range g.Loops {
		assert.GreaterOrEqual(t, len(loop), 2)
		assert.Equal(t, 0, loop[0], "every loop starts at the basepoint")
	}
}

func TestShrinkCancelsBacktracking(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, Shrink([]int{0, 1, 0, 1, 2}))
	assert.Equal(t, []int{0}, Shrink([]int{0, 1, 0}))
	assert.Equal(t, []int{0, 1, 2, 3}, Shrink([]int{0, 1, 2, 3}))
}

func TestConvertLoopsDeduplicatesPoints(t *testing.T) {
	loopA := []arithm.Pair{arithm.P(0, 0), arithm.P(1, 0), arithm.P(0, 0)}
	loopB := []arithm.Pair{arithm.P(0, 0), arithm.P(0, 1), arithm.P(0, 0)}
	g, err := ConvertLoops([][]arithm.Pair{loopA, loopB}, arithm.P(0, 0))
	require.NoError(t, err)
	assert.Len(t, g.Points, 3)
	assert.Equal(t, 0, g.Basepoint)
}
