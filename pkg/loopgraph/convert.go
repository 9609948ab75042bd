package loopgraph

import (
	"fmt"

	"github.com/npillmayer/arithm"
)

// ConvertLoops packages externally-supplied geometric loops (e.g. from
// a full Voronoi/mediatrix honeycomb implementation plugged in as a
// collaborator) into the Graph record: points are deduplicated, loops
// become index sequences into the deduplicated point list, and the
// index of whichever existing point lies closest to basepointHint is
// recorded as Basepoint (the points are not reordered).
func ConvertLoops(rawLoops [][]arithm.Pair, basepointHint arithm.Pair) (Graph, error) {
	if len(rawLoops) == 0 {
		return Graph{}, ErrTooFewPoints
	}
	index := make(map[string]int)
	var pts []arithm.Pair
	lookup := func(p arithm.Pair) int {
		key := fmt.Sprintf("%.9f,%.9f", p.X(), p.Y())
		if i, ok := index[key]; ok {
			return i
		}
		i := len(pts)
		index[key] = i
		pts = append(pts, p)
		return i
	}

	loops := make([][]int, len(rawLoops))
	segSeen := make(map[[2]int]bool)
	var segs [][2]int
	for li, raw := range rawLoops {
		idxs := make([]int, len(raw))
		for pi, p := range raw {
			idxs[pi] = lookup(p)
		}
		for i := 0; i+1 < len(idxs); i++ {
			a, b := idxs[i], idxs[i+1]
			key := [2]int{a, b}
			if a > b {
				key = [2]int{b, a}
			}
			if !segSeen[key] {
				segSeen[key] = true
				segs = append(segs, key)
			}
		}
		loops[li] = Shrink(idxs)
	}

	base := 0
	bestDist := -1.0
	for i, p := range pts {
		dx := p.X() - basepointHint.X()
		dy := p.Y() - basepointHint.Y()
		d := dx*dx + dy*dy
		if bestDist < 0 || d < bestDist {
			base, bestDist = i, d
		}
	}

	return Graph{Points: pts, Segments: segs, Loops: loops, Basepoint: base}, nil
}
