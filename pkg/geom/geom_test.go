package geom

import (
	"testing"

	"github.com/npillmayer/arithm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistSegToEndpoint(t *testing.T) {
	a := arithm.P(0, 0)
	b := arithm.P(4, 0)
	d := DistSeg(arithm.P(6, 0), a, b)
	f, _ := d.Float64()
	assert.InDelta(t, 2.0, f, 1e-9)
}

func TestDistSegToPerpendicularFoot(t *testing.T) {
	a := arithm.P(0, 0)
	b := arithm.P(4, 0)
	d := DistSeg(arithm.P(2, 3), a, b)
	f, _ := d.Float64()
	assert.InDelta(t, 3.0, f, 1e-9)
}

func TestMediatrixIsEquidistant(t *testing.T) {
	x := arithm.P(0, 0)
	y := arithm.P(4, 0)
	mid, _ := Mediatrix(x, y)
	assert.InDelta(t, 2.0, mid.X(), 1e-9)
	assert.InDelta(t, 0.0, mid.Y(), 1e-9)
}

func TestCrossingOfDiagonals(t *testing.T) {
	p, ok := Crossing(arithm.P(0, 0), arithm.P(2, 2), arithm.P(0, 2), arithm.P(2, 0))
	assert.True(t, ok)
	assert.InDelta(t, 1.0, p.X(), 1e-9)
	assert.InDelta(t, 1.0, p.Y(), 1e-9)
}

func TestCrossingOfParallelSegmentsIsNone(t *testing.T) {
	_, ok := Crossing(arithm.P(0, 0), arithm.P(1, 0), arithm.P(0, 1), arithm.P(1, 1))
	assert.False(t, ok)
}

func TestCrossingIsALineNotASegmentIntersection(t *testing.T) {
	// these two segments don't overlap, but their supporting lines do.
	p, ok := Crossing(arithm.P(0, 0), arithm.P(1, 0), arithm.P(5, -1), arithm.P(5, 1))
	assert.True(t, ok)
	assert.InDelta(t, 5.0, p.X(), 1e-9)
	assert.InDelta(t, 0.0, p.Y(), 1e-9)
}

func TestDetectsLeftCrossingFlagsVerticesCloserToTheNewSite(t *testing.T) {
	// a large square cell around the origin, all four walls inherited
	// from the bounding box.
	c := []arithm.Pair{arithm.P(-100, -100), arithm.P(100, -100), arithm.P(100, 100), arithm.P(-100, 100)}
	w := []arithm.Pair{BoundaryWitness(), BoundaryWitness(), BoundaryWitness(), BoundaryWitness()}
	z := arithm.P(150, 0)
	flags := DetectsLeftCrossing(c, w, arithm.P(0, 0), z)
	assert.True(t, flags[1], "(100,-100) is already closer to the new site at (150,0)")
	assert.True(t, flags[2], "(100,100) is already closer to the new site at (150,0)")
	assert.False(t, flags[0], "(-100,-100) is still closer to the origin")
	assert.False(t, flags[3], "(-100,100) is still closer to the origin")

	w[1] = z // wall already attributed to z: no further clipping needed there
	flags = DetectsLeftCrossing(c, w, arithm.P(0, 0), z)
	assert.False(t, flags[1], "vertex already cut by this same site is left unmarked")
}

func TestEdgeParamLocatesPointAlongSegment(t *testing.T) {
	x1, x2 := arithm.P(0, 0), arithm.P(4, 0)
	assert.InDelta(t, 0.5, EdgeParam(x1, x2, arithm.P(2, 0)), 1e-9)
	assert.InDelta(t, 0.0, EdgeParam(x1, x2, x1), 1e-9)
	assert.InDelta(t, 1.0, EdgeParam(x1, x2, x2), 1e-9)
}

func TestCycOrderIsCounterclockwise(t *testing.T) {
	c := arithm.P(0, 0)
	pts := []arithm.Pair{arithm.P(0, -1), arithm.P(1, 0), arithm.P(-1, 0), arithm.P(0, 1)}
	ordered := CycOrder(pts, c)
	assert.Equal(t, 4, len(ordered))
	assert.InDelta(t, 1.0, ordered[0].X(), 1e-9)
	assert.InDelta(t, 0.0, ordered[0].Y(), 1e-9)
}

func TestByDistanceSortsByDistance(t *testing.T) {
	c := arithm.P(0, 0)
	pts := []arithm.Pair{arithm.P(5, 0), arithm.P(1, 0), arithm.P(3, 0)}
	sorted := ByDistance(pts, c)
	assert.InDelta(t, 1.0, sorted[0].X(), 1e-9)
	assert.InDelta(t, 3.0, sorted[1].X(), 1e-9)
	assert.InDelta(t, 5.0, sorted[2].X(), 1e-9)
}

// TestNeighboursExcludesDominatedColinearPoint checks the Gabriel-graph
// filter on three colinear points: the near point (1,0) lies inside
// the closed disk of diameter [c,(2,0)], so the far point is excluded
// and only the near one survives as a neighbour of c.
func TestNeighboursExcludesDominatedColinearPoint(t *testing.T) {
	c := arithm.P(0, 0)
	near := arithm.P(1, 0)
	far := arithm.P(2, 0)
	out := Neighbours([]arithm.Pair{near, far}, c)
	require.Len(t, out, 1)
	assert.InDelta(t, 1.0, out[0].X(), 1e-9)
	assert.InDelta(t, 0.0, out[0].Y(), 1e-9)
}

// TestNeighboursKeepsRightAngledPair checks that two points forming a
// right angle at c (neither inside the other's diameter disk, since
// the angle each subtends at the other is acute) both survive as
// neighbours, ordered by distance.
func TestNeighboursKeepsRightAngledPair(t *testing.T) {
	c := arithm.P(0, 0)
	p1 := arithm.P(1, 0)
	p2 := arithm.P(0, 1)
	out := Neighbours([]arithm.Pair{p1, p2}, c)
	require.Len(t, out, 2)
}
