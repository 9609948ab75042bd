package vankampen

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/zvk/vankampen/pkg/bipoly"
	"github.com/zvk/vankampen/pkg/cnum"
	"github.com/zvk/vankampen/pkg/loopgraph"
	"github.com/zvk/vankampen/pkg/roots"
	"github.com/zvk/vankampen/pkg/upoly"
)

// repairCurve divides out gcd(p, ∂p/∂x) when p is not already
// squarefree, per spec.md §7's "NotSquarefree: recovered locally by
// dividing through" rule. lib.Squarefree is idempotent on an
// already-squarefree curve, so this never needs to check first.
func repairCurve(lib MultivariatePolyLib, p bipoly.Poly) (bipoly.Poly, error) {
	return lib.Squarefree(p)
}

// exactBasepoint places the basepoint below and to the left of every
// critical value, in exact rational arithmetic, mirroring
// pkg/loopgraph's own float-geometry placement rule.
func exactBasepoint(vals []cnum.Rat) cnum.Rat {
	minRe := new(big.Rat).Set(vals[0].Re)
	minIm := new(big.Rat).Set(vals[0].Im)
	for _, v := range vals[1:] {
		if v.Re.Cmp(minRe) < 0 {
			minRe = new(big.Rat).Set(v.Re)
		}
		if v.Im.Cmp(minIm) < 0 {
			minIm = new(big.Rat).Set(v.Im)
		}
	}
	return cnum.Rat{Re: new(big.Rat).Sub(minRe, big.NewRat(1, 1)), Im: new(big.Rat).Sub(minIm, big.NewRat(1, 1))}
}

// diamondPoints places the four corners of the closing circuit around
// yi, rotating the offset v by the four 4th roots of unity via the
// NumberKernel external collaborator (spec.md §6) rather than a
// hardcoded imaginary unit.
func diamondPoints(numbers NumberKernel, yi, v cnum.Rat) (cnum.Rat, cnum.Rat, cnum.Rat, cnum.Rat) {
	i := numbers.RootOfUnity(4, 1)
	iv := i.Mul(v)
	return yi.Add(v), yi.Add(iv), yi.Sub(v), yi.Sub(iv)
}

// findSafeOffset looks for a small real offset v such that the four
// diamond points yi±v, yi±iv around the critical value yi are all
// regular values of the projection (the discriminant does not vanish
// there), so the fibre at each of them has the full, non-degenerate
// sheet count. This stands in for a certified exclusion-disk radius:
// it is a deterministic search, not a proof, and is documented as
// such in DESIGN.md.
func findSafeOffset(numbers NumberKernel, disc upoly.Poly[cnum.Rat], yi cnum.Rat) (cnum.Rat, error) {
	for shift := uint(8); shift <= 40; shift++ {
		v := cnum.NewRat(1, int64(1)<<shift, 0, 1)
		d1, d2, d3, d4 := diamondPoints(numbers, yi, v)
		ok := true
		for _, w := range []cnum.Rat{d1, d2, d3, d4} {
			if disc.Eval(w, upoly.Rats).IsZero() {
				ok = false
				break
			}
		}
		if ok {
			return v, nil
		}
	}
	return cnum.Rat{}, ErrCannotPerturbCriticalValue
}

// loopPlan is the fully closed set of loops vankampen assembles on top
// of pkg/loopgraph's spanning skeleton: each root's generator loop is
// realized as the skeleton's handle out to a point near the critical
// value, a small closed diamond encircling it, and the same handle
// back in reverse (spec.md §4.E step 5's
// "handle[i] · circle[i] · reverse(handle[i])").
type loopPlan struct {
	points    []cnum.Rat
	segments  [][2]int
	loops     [][]int
	basepoint int
}

func segmentIndexFor(segments [][2]int, a, b int) (idx int, reversed bool, ok bool) {
	for i, s := range segments {
		if s[0] == a && s[1] == b {
			return i + 1, false, true
		}
		if s[0] == b && s[1] == a {
			return i + 1, true, true
		}
	}
	return 0, false, false
}

func handleSegmentIndices(skeleton loopgraph.Graph, rootIdx int) ([]int, error) {
	path := skeleton.Loops[rootIdx]
	out := make([]int, 0, len(path)-1)
	for k := 0; k+1 < len(path); k++ {
		idx, reversed, ok := segmentIndexFor(skeleton.Segments, path[k], path[k+1])
		if !ok {
			return nil, ErrCannotPerturbCriticalValue
		}
		if reversed {
			out = append(out, -idx)
		} else {
			out = append(out, idx)
		}
	}
	return out, nil
}

func buildLoopPlan(numbers NumberKernel, skeleton loopgraph.Graph, criticalVals []cnum.Rat, disc upoly.Poly[cnum.Rat]) (loopPlan, error) {
	n := len(criticalVals)
	points := make([]cnum.Rat, len(skeleton.Points))
	points[0] = exactBasepoint(criticalVals)
	offsets := make([]cnum.Rat, n)
	for i := 0; i < n; i++ {
		v, err := findSafeOffset(numbers, disc, criticalVals[i])
		if err != nil {
			return loopPlan{}, err
		}
		offsets[i] = v
		points[i+1] = criticalVals[i].Add(v)
	}

	segments := append([][2]int(nil), skeleton.Segments...)
	loops := make([][]int, n)
	for i := 0; i < n; i++ {
		handle, err := handleSegmentIndices(skeleton, i)
		if err != nil {
			return loopPlan{}, err
		}
		_, d1, d2, d3 := diamondPoints(numbers, criticalVals[i], offsets[i])
		base := i + 1
		i1 := len(points)
		points = append(points, d1, d2, d3)
		i2, i3 := i1+1, i1+2
		segStart := len(segments)
		segments = append(segments,
			[2]int{base, i1},
			[2]int{i1, i2},
			[2]int{i2, i3},
			[2]int{i3, base},
		)
		loop := append([]int(nil), handle...)
		loop = append(loop, segStart+1, segStart+2, segStart+3, segStart+4)
		for k := len(handle) - 1; k >= 0; k-- {
			loop = append(loop, -handle[k])
		}
		loops[i] = loop
	}
	return loopPlan{points: points, segments: segments, loops: loops, basepoint: 0}, nil
}

// computeFibres returns, for every point in plan.points, the certified
// separated roots of P(·,point) (spec.md §3 "Fibre data"). newtonLimit
// caps each root's Newton iteration count (spec.md §6's
// Config.NewtonLimit).
func computeFibres(lib MultivariatePolyLib, p bipoly.Poly, points []cnum.Rat, safety decimal.Decimal, newtonLimit int) ([][]cnum.Rat, int, error) {
	zeros := make([][]cnum.Rat, len(points))
	strands := -1
	for i, y := range points {
		zs, err := roots.SeparateRoots(lib.AtY(p, y), safety, newtonLimit)
		if err != nil {
			return nil, 0, err
		}
		zeros[i] = zs
		if strands < 0 {
			strands = len(zs)
		} else if len(zs) != strands {
			return nil, 0, ErrInconsistentSheetCount
		}
	}
	return zeros, strands, nil
}
