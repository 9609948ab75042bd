// Package geom implements the geometry helpers of spec.md §4.D: the
// planar primitives the loop constructor (pkg/loopgraph) needs to
// build the Voronoi/mediatrix honeycomb around the root set and to
// detect which side of a honeycomb wall a test segment crosses.
//
// Only arithm.Pair's constructor and accessors (P, X, Y) are used here
// — the rest of the vector algebra is small enough to write directly,
// the way corelang's own pair arithmetic does in the teacher repo.
package geom

import (
	"math"
	"sort"

	"github.com/npillmayer/arithm"
	"github.com/shopspring/decimal"
)

func sub(a, b arithm.Pair) arithm.Pair        { return arithm.P(a.X()-b.X(), a.Y()-b.Y()) }
func add(a, b arithm.Pair) arithm.Pair        { return arithm.P(a.X()+b.X(), a.Y()+b.Y()) }
func scalePt(a arithm.Pair, t float64) arithm.Pair { return arithm.P(a.X()*t, a.Y()*t) }
func dot(a, b arithm.Pair) float64            { return a.X()*b.X() + a.Y()*b.Y() }
func cross(a, b arithm.Pair) float64          { return a.X()*b.Y() - a.Y()*b.X() }
func norm2(a arithm.Pair) float64             { return dot(a, a) }
func length(a arithm.Pair) float64            { return math.Sqrt(norm2(a)) }

// DistSeg returns the Euclidean distance from z to the segment [a,b].
func DistSeg(z, a, b arithm.Pair) decimal.Decimal {
	ab := sub(b, a)
	l2 := norm2(ab)
	if l2 == 0 {
		return decimal.NewFromFloat(length(sub(z, a)))
	}
	t := dot(sub(z, a), ab) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := add(a, scalePt(ab, t))
	return decimal.NewFromFloat(length(sub(z, proj)))
}

// Mediatrix returns two points spanning the perpendicular bisector of
// segment [x,y]: its midpoint, and the midpoint displaced one step
// along the perpendicular direction.
func Mediatrix(x, y arithm.Pair) (arithm.Pair, arithm.Pair) {
	mid := scalePt(add(x, y), 0.5)
	d := sub(y, x)
	perp := arithm.P(-d.Y(), d.X())
	return mid, add(mid, perp)
}

// Crossing returns the intersection point of line (x1,x2) and line
// (y1,y2), or false if the lines are parallel. Unlike a segment
// intersection test it never bounds t or u to [0,1]: spec.md §4.D
// defines crossing on the two full lines (its case analysis rotates
// the configuration by E(3) and by i to dodge a vertical line's
// undefined slope), and the cross-product formulation below handles
// every such case uniformly without needing the rotation at all.
// Callers that need the intersection to fall within a finite edge
// bound it themselves against that edge's own endpoints (see
// loopgraph's polygon clipping).
func Crossing(x1, x2, y1, y2 arithm.Pair) (arithm.Pair, bool) {
	r := sub(x2, x1)
	s := sub(y2, y1)
	denom := cross(r, s)
	if math.Abs(denom) < 1e-12 {
		return arithm.Pair(0), false
	}
	qp := sub(y1, x1)
	t := cross(qp, s) / denom
	return add(x1, scalePt(r, t)), true
}

// EdgeParam reports how far along segment [x1,x2] (0 at x1, 1 at x2)
// point p lies, assuming p is already known to sit on the line through
// x1 and x2. Used to bound a Crossing point to a finite edge.
func EdgeParam(x1, x2, p arithm.Pair) float64 {
	d := sub(x2, x1)
	if math.Abs(d.X()) >= math.Abs(d.Y()) {
		return (p.X() - x1.X()) / d.X()
	}
	return (p.Y() - x1.Y()) / d.Y()
}

// CycOrder returns pts sorted counterclockwise by angle around center
// c, starting just short of the negative imaginary axis ("−i+ε" in
// spec.md §4.D) rather than the positive x-axis, so a point that falls
// exactly on the starting ray is treated as the last, not the first,
// neighbour in the cycle.
func CycOrder(pts []arithm.Pair, c arithm.Pair) []arithm.Pair {
	out := append([]arithm.Pair(nil), pts...)
	const epsilon = 1e-9
	angle := func(p arithm.Pair) float64 {
		d := sub(p, c)
		a := math.Atan2(d.Y(), d.X()) + math.Pi/2 - epsilon
		a = math.Mod(a, 2*math.Pi)
		if a < 0 {
			a += 2 * math.Pi
		}
		return a
	}
	sort.Slice(out, func(i, j int) bool { return angle(out[i]) < angle(out[j]) })
	return out
}

// ByDistance returns pts sorted by increasing distance to c, the
// candidate order the honeycomb builder consumes when deciding which
// walls to draw first around c. It performs no exclusion: every point
// of pts comes back, merely reordered. Callers that need spec.md
// §4.D's actual neighbour filter want Neighbours instead.
func ByDistance(pts []arithm.Pair, c arithm.Pair) []arithm.Pair {
	out := append([]arithm.Pair(nil), pts...)
	sort.Slice(out, func(i, j int) bool {
		return norm2(sub(out[i], c)) < norm2(sub(out[j], c))
	})
	return out
}

// Neighbours returns the sublist of pts (other than c itself) such
// that no other point of pts lies in the closed disk of diameter
// [c,y] (spec.md §4.D's Gabriel-graph neighbour filter), ordered by
// increasing distance to c. By Thales' theorem a point z lies on or
// inside the circle with diameter [c,y] exactly when the angle c-z-y
// is not acute, i.e. (c-z)·(y-z) <= 0; y is excluded the moment any
// other z satisfies that.
func Neighbours(pts []arithm.Pair, c arithm.Pair) []arithm.Pair {
	var out []arithm.Pair
	for _, y := range pts {
		if y.X() == c.X() && y.Y() == c.Y() {
			continue
		}
		dominated := false
		for _, z := range pts {
			if (z.X() == y.X() && z.Y() == y.Y()) || (z.X() == c.X() && z.Y() == c.Y()) {
				continue
			}
			if dot(sub(c, z), sub(y, z)) <= 0 {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, y)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return norm2(sub(out[i], c)) < norm2(sub(out[j], c))
	})
	return out
}

// BoundaryWitness is the sentinel DetectsLeftCrossing's w slice uses
// to mark a wall inherited from the bounding box rather than cut by a
// mediatrix with a real neighbouring site.
func BoundaryWitness() arithm.Pair { return arithm.P(math.NaN(), math.NaN()) }

func isBoundaryWitness(p arithm.Pair) bool { return math.IsNaN(p.X()) }

// DetectsLeftCrossing walks the closed polygon c built around site y
// (w[i] names the neighbour whose mediatrix with y cut edge i,
// BoundaryWitness() for a wall inherited from the bounding box) and
// reports, per vertex c[i], whether folding candidate site z into the
// honeycomb strictly moves that vertex to z's side of the new
// mediatrix — the half-plane test spec.md §4.E's incremental honeycomb
// builder runs once per candidate neighbour, clipping the current
// cell down to the side still closest to y. A vertex whose wall is
// already attributed to z (w[i] == z) is left unmarked: that wall was
// already cut by this same site and needs no further clipping.
func DetectsLeftCrossing(c, w []arithm.Pair, y, z arithm.Pair) []bool {
	n := len(c)
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		if !isBoundaryWitness(w[i]) && w[i].X() == z.X() && w[i].Y() == z.Y() {
			continue
		}
		out[i] = length(sub(c[i], z)) < length(sub(c[i], y))
	}
	return out
}
