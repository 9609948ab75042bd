package loopgraph

import (
	"testing"

	"github.com/npillmayer/arithm"
	"github.com/stretchr/testify/assert"

	"github.com/zvk/vankampen/pkg/geom"
)

func TestVoronoiAdjacencyOfThreeCollinearPointsIsAPath(t *testing.T) {
	pts := []arithm.Pair{arithm.P(-1, 0), arithm.P(0, 0), arithm.P(1, 0)}
	box := boundingBox(-1, 0, 1, 0)
	adj := voronoiAdjacency(pts, box)

	assert.ElementsMatch(t, []int{1}, adj[0], "the leftmost point's cell only borders the middle one")
	assert.ElementsMatch(t, []int{1}, adj[2], "the rightmost point's cell only borders the middle one")
	assert.ElementsMatch(t, []int{0, 2}, adj[1], "the middle point's cell borders both outer ones")
}

func TestVoronoiAdjacencyOfASquareOmitsTheDiagonals(t *testing.T) {
	// four points at the corners of a square: each cell borders both
	// its immediate neighbours but not the diagonal opposite.
	pts := []arithm.Pair{arithm.P(0, 0), arithm.P(1, 0), arithm.P(1, 1), arithm.P(0, 1)}
	box := boundingBox(0, 0, 1, 1)
	adj := voronoiAdjacency(pts, box)

	assert.ElementsMatch(t, []int{1, 3}, adj[0])
	assert.ElementsMatch(t, []int{0, 2}, adj[1])
	assert.ElementsMatch(t, []int{1, 3}, adj[2])
	assert.ElementsMatch(t, []int{0, 2}, adj[3])
}

func TestClipCellDropsVerticesClaimedByACloserSite(t *testing.T) {
	box := boundingBox(-10, -10, 10, 10)
	cell := append([]arithm.Pair(nil), box...)
	w := make([]arithm.Pair, len(cell))
	for i := range w {
		w[i] = geom.BoundaryWitness()
	}
	newCell, newW := clipCell(cell, w, arithm.P(0, 0), arithm.P(4, 0))
	assert.NotEmpty(t, newCell)
	for _, p := range newCell {
		assert.LessOrEqual(t, p.X(), 2.0+1e-9, "every surviving vertex stays on the y-side of the mediatrix")
	}
	foundZWitness := false
	for _, p := range newW {
		if p.X() == 4 && p.Y() == 0 {
			foundZWitness = true
		}
	}
	assert.True(t, foundZWitness, "the new wall's witness is the folded-in site")
}
