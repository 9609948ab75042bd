// Package loopgraph implements the loop constructor of spec.md §4.E: a
// basepoint, a spanning structure over the root set, and one path per
// root from the basepoint along the spanning structure (the handle of
// that root's generator loop; no circuit around the root is built
// here). The spanning structure is built from the
// root set's actual Voronoi/mediatrix honeycomb (voronoi.go: a bounding
// box clipped down to each root's cell one candidate neighbour at a
// time, per spec.md §4.E's case-by-case construction), taking each
// cell's surviving wall witnesses as the "friends" graph edges, and
// backstopped by a global minimum spanning tree ("lovers") when the
// honeycomb does not already connect every root, exactly as spec.md
// §4.E steps 2 and 4 describe. Connectivity bookkeeping is delegated
// to lvlath/graph/core and graph/algorithms rather than a hand-rolled
// union-find.
package loopgraph

import (
	"sort"

	"github.com/npillmayer/arithm"
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/lvlath/graph/algorithms"
	"github.com/katalvlaran/lvlath/graph/core"

	"github.com/zvk/vankampen/pkg/cnum"
	"github.com/zvk/vankampen/pkg/geom"
)

// Graph is the loop-graph data model of spec.md §3: a basepoint,
// the points the construction threads through, the segments joining
// them, and per root one path (a sequence of point indices) from the
// basepoint to that root's point.
type Graph struct {
	Points    []arithm.Pair
	Segments  [][2]int
	Loops     [][]int
	Basepoint int
}

// Config bundles the small set of parameters the loop constructor
// needs; it is deliberately narrower than the orchestration-level
// vankampen.Config, mirroring the way each spec.md component takes
// only the configuration it actually consumes.
type Config struct {
	// Precision is the decimal precision used when projecting exact
	// root positions down to float geometry.
	Precision int32
	// Neighbours bounds how many nearest neighbours each root is
	// directly wired to before the spanning-tree fallback runs; 0
	// selects a sensible default.
	Neighbours int
}

func (cfg Config) precision() int32 {
	if cfg.Precision > 0 {
		return cfg.Precision
	}
	return cnum.DefaultPrec
}

func (cfg Config) neighbours(n int) int {
	k := cfg.Neighbours
	if k <= 0 {
		k = 3
	}
	if k > n-1 {
		k = n - 1
	}
	return k
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

func toPair(z cnum.Rat, prec int32) arithm.Pair {
	f := z.ToFloat(prec)
	x, _ := f.Re.Float64()
	y, _ := f.Im.Float64()
	return arithm.P(x, y)
}

func scaledWeight(d decimal.Decimal) int64 {
	scaled := d.Mul(decimal.NewFromInt(1_000_000)).Round(0)
	return scaled.IntPart() + 1 // never zero: Kruskal treats a zero-weight self-loop oddly
}

// Build constructs the loop graph for roots: a basepoint placed below
// and to the left of the whole root set, a spanning structure over the
// roots, and per root one open path from the basepoint along the
// spanning tree, ending at that root's point. No circuit around the
// root is built here.
func Build(roots []cnum.Rat, cfg Config) (Graph, error) {
	n := len(roots)
	if n == 0 {
		return Graph{}, ErrTooFewPoints
	}
	prec := cfg.precision()
	pts := make([]arithm.Pair, n)
	for i, z := range roots {
		pts[i] = toPair(z, prec)
	}

	minX, minY := pts[0].X(), pts[0].Y()
	maxX, maxY := pts[0].X(), pts[0].Y()
	for _, p := range pts[1:] {
		if p.X() < minX {
			minX = p.X()
		}
		if p.Y() < minY {
			minY = p.Y()
		}
		if p.X() > maxX {
			maxX = p.X()
		}
		if p.Y() > maxY {
			maxY = p.Y()
		}
	}
	basept := arithm.P(minX-1, minY-1)

	// "friends": the true Voronoi/mediatrix honeycomb adjacency over
	// the roots (spec.md §4.E), built by clipping a bounding box around
	// each root down to its cell one candidate neighbour at a time
	// (voronoiAdjacency), then capped to the cfg.Neighbours closest
	// honeycomb neighbours so the skeleton stays sparse.
	friends := core.NewGraph(false, true)
	for i := range pts {
		friends.AddVertex(&core.Vertex{ID: itoa(i)})
	}
	k := cfg.neighbours(n)
	box := boundingBox(minX, minY, maxX, maxY)
	honeycomb := voronoiAdjacency(pts, box)
	for i, p := range pts {
		candidates := make([]arithm.Pair, len(honeycomb[i]))
		for idx, j := range honeycomb[i] {
			candidates[idx] = pts[j]
		}
		ordered := geom.ByDistance(candidates, p)
		added := 0
		for _, q := range ordered {
			if added >= k {
				break
			}
			j := indexOf(pts, q)
			w := scaledWeight(geom.DistSeg(p, pts[j], pts[j]))
			friends.AddEdge(itoa(i), itoa(j), w)
			added++
		}
	}

	connected := true
	if res, err := algorithms.DFS(friends, itoa(0), nil); err != nil || len(res.Visited) != n {
		connected = false
	}

	// "lovers": if the neighbour graph left any root unreachable, fall
	// back to the global minimum spanning tree over the complete graph
	// so every root is guaranteed to be wired into the structure.
	var mstEdges []*core.Edge
	if connected {
		mstEdges = spanningTreeFromNeighbours(friends, n)
	} else {
		tracer().Debugf("loopgraph: neighbour graph disconnected, falling back to global MST")
		complete := core.NewGraph(false, true)
		for i := range pts {
			complete.AddVertex(&core.Vertex{ID: itoa(i)})
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				w := scaledWeight(geom.DistSeg(pts[i], pts[j], pts[j]))
				complete.AddEdge(itoa(i), itoa(j), w)
			}
		}
		edges, _, err := algorithms.Kruskal(complete)
		if err != nil {
			return Graph{}, err
		}
		mstEdges = edges
	}

	adj := make(map[int][]int, n)
	for _, e := range mstEdges {
		i, j := atoi(e.From.ID), atoi(e.To.ID)
		adj[i] = append(adj[i], j)
		adj[j] = append(adj[j], i)
	}

	// Root the spanning tree at whichever root is nearest the
	// basepoint, then record one path per root: the basepoint followed
	// by the tree path from that root out to the root in question.
	nearest := 0
	nearestDist := geom.DistSeg(basept, pts[0], pts[0])
	for i := 1; i < n; i++ {
		d := geom.DistSeg(basept, pts[i], pts[i])
		if d.LessThan(nearestDist) {
			nearest, nearestDist = i, d
		}
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -2 // unvisited marker
	}
	parent[nearest] = -1
	order := []int{nearest}
	for h := 0; h < len(order); h++ {
		u := order[h]
		sort.Ints(adj[u])
		for _, v := range adj[u] {
			if parent[v] == -2 {
				parent[v] = u
				order = append(order, v)
			}
		}
	}
	if len(order) != n {
		return Graph{}, ErrDisconnected
	}

	allPts := append([]arithm.Pair{basept}, pts...)
	loops := make([][]int, n)
	for i := 0; i < n; i++ {
		path := treePathToRoot(parent, i)
		loop := make([]int, 0, len(path)+2)
		loop = append(loop, 0) // basepoint
		for _, v := range path {
			loop = append(loop, v+1) // offset by 1 for the basepoint slot
		}
		loops[i] = Shrink(loop)
	}

	segs := make([][2]int, 0, n+len(mstEdges))
	segs = append(segs, [2]int{0, nearest + 1})
	for _, e := range mstEdges {
		segs = append(segs, [2]int{atoi(e.From.ID) + 1, atoi(e.To.ID) + 1})
	}

	return Graph{Points: allPts, Segments: segs, Loops: loops, Basepoint: 0}, nil
}

// treePathToRoot walks parent pointers from i back up to the tree's
// root and returns the path root-to-i (so the loop threads outward
// from the basepoint).
func treePathToRoot(parent []int, i int) []int {
	var rev []int
	for v := i; v != -1; v = parent[v] {
		rev = append(rev, v)
	}
	path := make([]int, len(rev))
	for k, v := range rev {
		path[len(rev)-1-k] = v
	}
	return path
}

// spanningTreeFromNeighbours extracts a spanning tree from an already
// connected neighbour graph via Kruskal, so the "friends" graph's own
// edges (not a fresh complete graph) define the loop skeleton whenever
// they already connect everything.
func spanningTreeFromNeighbours(g *core.Graph, n int) []*core.Edge {
	edges, _, err := algorithms.Kruskal(g)
	if err != nil {
		return nil
	}
	return edges
}

func indexOf(pts []arithm.Pair, q arithm.Pair) int {
	for i, p := range pts {
		if p.X() == q.X() && p.Y() == q.Y() {
			return i
		}
	}
	return -1
}

func atoi(s string) int {
	n := 0
	neg := false
	for i, r := range s {
		if i == 0 && r == '-' {
			neg = true
			continue
		}
		n = n*10 + int(r-'0')
	}
	if neg {
		n = -n
	}
	return n
}

// Shrink reduces a vertex-index walk by cancelling immediate
// backtracking (…, a, b, a, … becomes …, a, …), the same free
// reduction pkg/freegroup applies to words, applied here to loop
// encodings so a lasso built by walking out and back along a
// spanning-tree path collapses to its simple path.
func Shrink(loop []int) []int {
	stack := make([]int, 0, len(loop))
	for _, v := range loop {
		if len(stack) >= 2 && stack[len(stack)-2] == v {
			stack = stack[:len(stack)-1]
			continue
		}
		stack = append(stack, v)
	}
	return stack
}
