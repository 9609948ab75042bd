// Package monodromy implements the two monodromy followers of
// spec.md §4.G/§4.H: given a fibre polynomial P and a straight-line
// segment [a,b] in the base parameter, follow the n zeros of
// P(·,y(t)) as y sweeps the segment and reconstruct the braid the
// zeros traced out.
package monodromy

import (
	"context"
	"math/big"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/zvk/vankampen/pkg/bipoly"
	"github.com/zvk/vankampen/pkg/braid"
	"github.com/zvk/vankampen/pkg/cnum"
	"github.com/zvk/vankampen/pkg/lbraid"
	"github.com/zvk/vankampen/pkg/roots"
	"github.com/zvk/vankampen/pkg/sturm"
	"github.com/zvk/vankampen/pkg/upoly"
)

// Follower computes the monodromy braid a fibre of n roots traces out
// as the base parameter moves along the segment [a,b], re-indexed at
// the end to line up with the caller's own record of the fibre at b.
type Follower interface {
	Follow(ctx context.Context, p bipoly.Poly, a, b cnum.Rat, startZeros, endZeros []cnum.Rat, bn braid.Monoid) (braid.Word, error)
}

const workingPrec int32 = cnum.DefaultPrec

// pointAt returns a + diff*t for a real dyadic/decimal parameter t in
// [0,1], exactly, by rationalizing t via decimal.Decimal.Rat.
func pointAt(a, diff cnum.Rat, t decimal.Decimal) cnum.Rat {
	tr := t.Rat()
	return a.Add(diff.Mul(cnum.Rat{Re: tr, Im: new(big.Rat)}))
}

func dist(a, b cnum.Rat) decimal.Decimal {
	return a.Sub(b).ToFloat(workingPrec).Abs(workingPrec)
}

// minPairwiseDistances returns, for each index i, the minimum
// distance from zs[i] to any other point in zs (spec.md §4.G's
// `dm[i]`).
func minPairwiseDistances(zs []cnum.Rat) []decimal.Decimal {
	out := make([]decimal.Decimal, len(zs))
	for i := range zs {
		var best decimal.Decimal
		set := false
		for j := range zs {
			if i == j {
				continue
			}
			d := dist(zs[i], zs[j])
			if !set || d.LessThan(best) {
				best, set = d, true
			}
		}
		out[i] = best
	}
	return out
}

func minNonzero(ds []decimal.Decimal) decimal.Decimal {
	if len(ds) == 0 {
		return decimal.NewFromInt(1)
	}
	best := ds[0]
	for _, d := range ds[1:] {
		if d.LessThan(best) {
			best = d
		}
	}
	if best.IsZero() {
		return decimal.NewFromInt(1)
	}
	return best
}

// fitBijection re-indexes cur to match target by a greedy
// closest-point assignment, failing with ErrFitAmbiguous if the
// result is not a bijection or any displacement exceeds one tenth of
// target's minimum pairwise distance (spec.md §4.G, the "fit" step).
func fitBijection(cur, target []cnum.Rat) ([]cnum.Rat, error) {
	if len(cur) != len(target) {
		return nil, ErrFitAmbiguous
	}
	n := len(cur)
	type pair struct {
		i, j int
		d    decimal.Decimal
	}
	pairs := make([]pair, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			pairs = append(pairs, pair{i, j, dist(cur[i], target[j])})
		}
	}
	sort.Slice(pairs, func(x, y int) bool { return pairs[x].d.LessThan(pairs[y].d) })
	usedI := make([]bool, n)
	usedJ := make([]bool, n)
	out := make([]cnum.Rat, n)
	assigned := 0
	tol := minNonzero(minPairwiseDistances(target)).Div(decimal.NewFromInt(10))
	for _, pr := range pairs {
		if assigned == n {
			break
		}
		if usedI[pr.i] || usedJ[pr.j] {
			continue
		}
		if pr.d.GreaterThan(tol) {
			continue
		}
		usedI[pr.i], usedJ[pr.j] = true, true
		out[pr.j] = cur[pr.i]
		assigned++
	}
	if assigned != n {
		return nil, ErrFitAmbiguous
	}
	return out, nil
}

// Approximate is the adaptive heuristic monodromy follower of
// spec.md §4.G. It is never the default follower: the pipeline must
// opt in explicitly (Config.MonodromyApprox).
type Approximate struct {
	AdaptivityFactor decimal.Decimal
	Safety           decimal.Decimal
}

func (m Approximate) factor() decimal.Decimal {
	if m.AdaptivityFactor.IsZero() {
		return decimal.NewFromInt(10)
	}
	return m.AdaptivityFactor
}

func (m Approximate) safety() decimal.Decimal {
	if m.Safety.IsZero() {
		return decimal.New(1, -int32(cnum.DefaultPrec/2))
	}
	return m.Safety
}

const minDyadicStep = 1.0 / (1 << 30)

// Follow implements the step-doubling/halving loop of spec.md §4.G.
func (m Approximate) Follow(ctx context.Context, p bipoly.Poly, a, b cnum.Rat, startZeros, endZeros []cnum.Rat, bn braid.Monoid) (braid.Word, error) {
	diff := b.Sub(a)
	prevZeros := append([]cnum.Rat(nil), startZeros...)
	total := decimal.Zero
	step := decimal.NewFromInt(1)
	one := decimal.NewFromInt(1)
	two := decimal.NewFromInt(2)
	word := bn.Identity()

	for !total.Equal(one) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		tsNext := total.Add(step)
		if tsNext.GreaterThan(one) {
			tsNext = one
			step = tsNext.Sub(total)
		}
		next := pointAt(a, diff, tsNext)
		nextZeros, err := roots.SeparateRootsInitialGuess(p.AtY(next), prevZeros, m.safety(), roots.DefaultNewtonLimit)
		accept := err == nil
		dm := minPairwiseDistances(prevZeros)
		if accept {
			for i := range prevZeros {
				if i >= len(nextZeros) {
					accept = false
					break
				}
				dn := dist(prevZeros[i], nextZeros[i])
				if dn.GreaterThan(dm[i].Div(m.factor())) {
					accept = false
					break
				}
			}
		}
		if !accept {
			sf, _ := step.Float64()
			if sf < minDyadicStep {
				return nil, ErrAdaptivityExhausted
			}
			step = step.Div(two)
			continue
		}
		w, err := lbraid.LBraidToWord(prevZeros, nextZeros, bn)
		if err != nil {
			return nil, err
		}
		word = word.Mul(w)

		doubling := true
		for i := range prevZeros {
			dn := dist(prevZeros[i], nextZeros[i])
			if dn.GreaterThanOrEqual(dm[i].Div(m.factor().Mul(two))) {
				doubling = false
				break
			}
		}
		prevZeros = nextZeros
		total = tsNext
		if doubling && total.LessThan(one) {
			step = step.Mul(two)
		}
	}

	fitted, err := fitBijection(prevZeros, endZeros)
	if err != nil {
		tracer().Debugf("monodromy: fit failed at segment end: %v", err)
		return nil, err
	}
	w, err := lbraid.LBraidToWord(prevZeros, fitted, bn)
	if err != nil {
		return nil, err
	}
	return word.Mul(w), nil
}

// Certified is the Sturm-certified monodromy follower of spec.md
// §4.H: instead of accepting a step on a heuristic displacement
// bound, it derives (per strand) a real polynomial in the segment
// parameter t that certifies the tracked root stays the unique root
// inside its protection disk, and asks pkg/sturm for the largest
// dyadic sub-interval on which that certificate holds.
type Certified struct {
	Safety decimal.Decimal
}

func (m Certified) safety() decimal.Decimal {
	if m.Safety.IsZero() {
		return decimal.New(1, -int32(cnum.DefaultPrec/2))
	}
	return m.Safety
}

// substituteAtX returns P(x0, ·) composed with the affine segment
// parametrization y(t) = a + (b-a)t, as an exact polynomial in t with
// Gaussian-rational coefficients.
func substituteAtX(p bipoly.Poly, x0, a, diff cnum.Rat) upoly.Poly[cnum.Rat] {
	x0Poly := upoly.Poly[cnum.Rat]{Coeffs: []cnum.Rat{x0}}
	yOfX0 := p.AsXPoly().Eval(x0Poly, upoly.PolyRing[cnum.Rat]{Base: upoly.Rats})
	affine := upoly.Poly[cnum.Rat]{Coeffs: []cnum.Rat{a, diff}}
	d := yOfX0.Degree(upoly.Rats)
	if d < 0 {
		return upoly.Poly[cnum.Rat]{}
	}
	acc := upoly.Poly[cnum.Rat]{Coeffs: []cnum.Rat{yOfX0.At(d, upoly.Rats)}}
	for i := d - 1; i >= 0; i-- {
		acc = acc.Mul(affine, upoly.Rats).Add(upoly.Poly[cnum.Rat]{Coeffs: []cnum.Rat{yOfX0.At(i, upoly.Rats)}}, upoly.Rats)
	}
	return acc
}

// modulusSquared converts an exact complex polynomial in t into the
// real (decimal) polynomial |q(t)|^2 = Re(q)(t)^2 + Im(q)(t)^2.
func modulusSquared(q upoly.Poly[cnum.Rat]) upoly.Poly[decimal.Decimal] {
	reRow := make([]decimal.Decimal, len(q.Coeffs))
	imRow := make([]decimal.Decimal, len(q.Coeffs))
	for i, c := range q.Coeffs {
		f := c.ToFloat(workingPrec)
		reRow[i], imRow[i] = f.Re, f.Im
	}
	reP := upoly.Poly[decimal.Decimal]{Coeffs: reRow}
	imP := upoly.Poly[decimal.Decimal]{Coeffs: imRow}
	return reP.Mul(reP, upoly.Decimals).Add(imP.Mul(imP, upoly.Decimals), upoly.Decimals)
}

// protectionTestPoly builds the certificate polynomial of spec.md
// §4.H step 3: protp(t) - R^2 * protdpdx(t), positive exactly while
// the disk of radius R around v is certified to isolate a single
// root.
func protectionTestPoly(p bipoly.Poly, v, a, diff cnum.Rat, r decimal.Decimal) upoly.Poly[decimal.Decimal] {
	protp := modulusSquared(substituteAtX(p, v, a, diff))
	protdpdx := modulusSquared(substituteAtX(p.DX(), v, a, diff))
	r2 := r.Mul(r)
	scaled := protdpdx.Scale(r2, upoly.Decimals)
	return protp.Sub(scaled, upoly.Decimals)
}

const certifiedAdaptSteps = 24

// Follow implements the disk-protection loop of spec.md §4.H,
// certifying each advance via pkg/sturm instead of a heuristic bound.
func (m Certified) Follow(ctx context.Context, p bipoly.Poly, a, b cnum.Rat, startZeros, endZeros []cnum.Rat, bn braid.Monoid) (braid.Word, error) {
	diff := b.Sub(a)
	v := append([]cnum.Rat(nil), startZeros...)
	tm := decimal.Zero
	one := decimal.NewFromInt(1)
	word := bn.Identity()

	for tm.LessThan(one) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		dm := minPairwiseDistances(v)
		aCur := pointAt(a, diff, tm)
		remaining := one.Sub(tm)
		protectedTo := one
		for k := range v {
			r := dm[k].Div(decimal.NewFromInt(2))
			test := protectionTestPoly(p, v[k], aCur, diff, r)
			s, err := sturm.PositiveUntil(test, remaining, certifiedAdaptSteps)
			if err != nil {
				return nil, ErrNonSeparable
			}
			reach := tm.Add(s)
			if reach.LessThan(protectedTo) {
				protectedTo = reach
			}
		}
		if protectedTo.LessThanOrEqual(tm) {
			return nil, ErrNonSeparable
		}
		next := pointAt(a, diff, protectedTo)
		nextZeros, err := roots.SeparateRootsInitialGuess(p.AtY(next), v, m.safety(), roots.DefaultNewtonLimit)
		if err != nil {
			return nil, ErrNonSeparable
		}
		w, err := lbraid.LBraidToWord(v, nextZeros, bn)
		if err != nil {
			return nil, err
		}
		word = word.Mul(w)
		v = nextZeros
		tm = protectedTo
	}

	fitted, err := fitBijection(v, endZeros)
	if err != nil {
		tracer().Debugf("monodromy: certified fit failed at segment end: %v", err)
		return nil, err
	}
	w, err := lbraid.LBraidToWord(v, fitted, bn)
	if err != nil {
		return nil, err
	}
	return word.Mul(w), nil
}
