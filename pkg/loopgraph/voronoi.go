package loopgraph

import (
	"math"

	"github.com/npillmayer/arithm"

	"github.com/zvk/vankampen/pkg/geom"
)

// boundingBox returns the four corners of a rectangle enclosing
// [minX,maxX]x[minY,maxY] with enough margin that no Voronoi wall
// between two roots can fail to reach it, the "enclose R in a
// rectangular box" step of spec.md §4.E.
func boundingBox(minX, minY, maxX, maxY float64) []arithm.Pair {
	spread := math.Max(maxX-minX, maxY-minY)
	if spread < 1 {
		spread = 1
	}
	margin := spread * 1000
	return []arithm.Pair{
		arithm.P(minX-margin, minY-margin),
		arithm.P(maxX+margin, minY-margin),
		arithm.P(maxX+margin, maxY+margin),
		arithm.P(minX-margin, maxY+margin),
	}
}

// clipCell halves the running polygon cell (with w recording, per
// vertex, which neighbour's mediatrix produced the wall leaving it;
// geom.BoundaryWitness() for a wall inherited from the bounding box)
// down to the side still closest to y, folding in one more candidate
// neighbour z via geom.DetectsLeftCrossing and geom.Crossing — the
// incremental half-plane intersection spec.md §4.E's honeycomb
// construction performs once per candidate witness.
func clipCell(cell, w []arithm.Pair, y, z arithm.Pair) ([]arithm.Pair, []arithm.Pair) {
	n := len(cell)
	if n == 0 {
		return cell, w
	}
	cut := geom.DetectsLeftCrossing(cell, w, y, z)
	mx, my := geom.Mediatrix(y, z)
	var newCell, newW []arithm.Pair
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if !cut[i] {
			newCell = append(newCell, cell[i])
			newW = append(newW, w[i])
		}
		if cut[i] != cut[j] {
			if p, ok := geom.Crossing(cell[i], cell[j], mx, my); ok {
				if t := geom.EdgeParam(cell[i], cell[j], p); t >= 0 && t <= 1 {
					newCell = append(newCell, p)
					if cut[i] {
						// leaving the cut region: p's wall is the rest of the old edge
						newW = append(newW, w[i])
					} else {
						newW = append(newW, z)
					}
				}
			}
		}
	}
	return newCell, newW
}

// voronoiCell returns the Voronoi cell of site y among others,
// bounded by box, and the per-vertex witness array recording which
// neighbour (or the bounding box) produced each wall.
func voronoiCell(y arithm.Pair, others, box []arithm.Pair) ([]arithm.Pair, []arithm.Pair) {
	cell := append([]arithm.Pair(nil), box...)
	w := make([]arithm.Pair, len(cell))
	for i := range w {
		w[i] = geom.BoundaryWitness()
	}
	for _, z := range geom.CycOrder(others, y) {
		cell, w = clipCell(cell, w, y, z)
		if len(cell) == 0 {
			break
		}
	}
	return cell, w
}

// voronoiAdjacency returns, for every point in pts, the indices of
// the other points whose Voronoi cell shares a wall with it — the
// honeycomb's "friends" graph edges (spec.md §4.E step 2), recovered
// directly from each cell's surviving witnesses rather than a
// distance heuristic.
func voronoiAdjacency(pts, box []arithm.Pair) [][]int {
	n := len(pts)
	adj := make([][]int, n)
	for i, y := range pts {
		others := make([]arithm.Pair, 0, n-1)
		for j, p := range pts {
			if j != i {
				others = append(others, p)
			}
		}
		cell, w := voronoiCell(y, others, box)
		seen := make(map[int]bool, len(w))
		for k, witness := range w {
			next := cell[(k+1)%len(cell)]
			if cell[k].X() == next.X() && cell[k].Y() == next.Y() {
				continue // a zero-length wall is a shared corner, not a shared wall
			}
			j := indexOf(pts, witness)
			if j < 0 || j == i || seen[j] {
				continue
			}
			seen[j] = true
			adj[i] = append(adj[i], j)
		}
	}
	return adj
}
