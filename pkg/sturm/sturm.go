// Package sturm implements the Sturm-sequence disk protection the
// certified monodromy follower (spec.md §4.H) uses to guarantee a
// tracked sheet never crosses another sheet between sample points: a
// real-coefficient polynomial whose positive region on an interval
// certifies that two sheets stay separated.
package sturm

import (
	"github.com/shopspring/decimal"

	"github.com/zvk/vankampen/pkg/upoly"
)

// Sequence returns the Sturm sequence of p: p0=p, p1=p', and
// p_{i+1} = -rem(p_{i-1}, p_i), terminating once a remainder is
// constant (or zero).
func Sequence(p upoly.Poly[decimal.Decimal]) []upoly.Poly[decimal.Decimal] {
	seq := []upoly.Poly[decimal.Decimal]{
		p.Trim(upoly.Decimals),
		p.Derivative(upoly.Decimals).Trim(upoly.Decimals),
	}
	for {
		last := seq[len(seq)-1]
		if last.Degree(upoly.Decimals) < 0 {
			break
		}
		prev := seq[len(seq)-2]
		_, rem, err := upoly.DivMod(prev, last, upoly.Decimals)
		if err != nil {
			break
		}
		next := rem.Scale(upoly.Decimals.Neg(upoly.Decimals.One()), upoly.Decimals)
		seq = append(seq, next)
		if next.Degree(upoly.Decimals) <= 0 {
			break
		}
	}
	return seq
}

// signChangesAt counts the sign changes in seq evaluated at x,
// skipping any terms that evaluate to exactly zero (the standard
// Sturm-sequence convention).
func signChangesAt(seq []upoly.Poly[decimal.Decimal], x decimal.Decimal) int {
	var signs []int
	for _, q := range seq {
		v := q.Eval(x, upoly.Decimals)
		if s := v.Sign(); s != 0 {
			signs = append(signs, s)
		}
	}
	changes := 0
	for i := 1; i < len(signs); i++ {
		if signs[i-1] != signs[i] {
			changes++
		}
	}
	return changes
}

// countRootsIn returns the number of distinct real roots of p in
// (a,b], via V(a) - V(b) where V counts sign changes of the Sturm
// sequence.
func countRootsIn(seq []upoly.Poly[decimal.Decimal], a, b decimal.Decimal) int {
	return signChangesAt(seq, a) - signChangesAt(seq, b)
}

// PositiveUntil returns the largest dyadic fraction s of tm (found by
// up to adapt steps of bisection) such that p has no root in [0,s],
// certifying p stays positive across that whole sub-interval given
// that p(0) > 0. This is the concrete certification primitive the
// certified monodromy follower uses to decide how far a time step can
// safely advance.
func PositiveUntil(p upoly.Poly[decimal.Decimal], tm decimal.Decimal, adapt int) (decimal.Decimal, error) {
	if p.Eval(decimal.Zero, upoly.Decimals).Sign() <= 0 {
		return decimal.Zero, ErrNotPositiveAtStart
	}
	seq := Sequence(p)
	if countRootsIn(seq, decimal.Zero, tm) == 0 {
		return tm, nil
	}
	lo, hi := decimal.Zero, tm
	two := decimal.NewFromInt(2)
	for i := 0; i < adapt; i++ {
		mid := lo.Add(hi).DivRound(two, 50)
		if countRootsIn(seq, decimal.Zero, mid) == 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	tracer().Debugf("sturm: PositiveUntil certified [0,%s] of requested [0,%s] after %d steps", lo, tm, adapt)
	return lo, nil
}
