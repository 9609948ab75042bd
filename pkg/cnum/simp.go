package cnum

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Simp returns the continued-fraction convergent of t with the
// smallest denominator at distance <= prec from t (spec.md §4.A). It
// is applied independently to the real and imaginary parts: each part
// is rationalized at distance <= prec/sqrt(2), which certifies the
// combined complex error bound |Simp(t,prec) - t| <= prec.
func Simp(t Float, prec decimal.Decimal) Rat {
	half := prec.DivRound(decimal.NewFromFloat(1.4142135623730951), DefaultPrec)
	return Rat{
		Re: simpReal(t.Re, half),
		Im: simpReal(t.Im, half),
	}
}

// simpReal finds the rational with smallest denominator within prec of
// x, via the standard continued-fraction convergent search: expand the
// continued fraction of x and stop at the first convergent whose error
// is within tolerance.
func simpReal(x decimal.Decimal, prec decimal.Decimal) *big.Rat {
	if prec.Sign() <= 0 {
		return decimalToRat(x)
	}
	neg := false
	if x.Sign() < 0 {
		neg = true
		x = x.Neg()
	}
	// p[-1]=1,p[0]=a0 ; q[-1]=0,q[0]=1
	a0 := x.Floor()
	p0 := decimalToRat(a0)
	q0 := big.NewRat(1, 1)
	pPrev := big.NewRat(1, 1)
	qPrev := big.NewRat(0, 1)

	if withinTol(p0, x, prec) {
		return signRat(p0, neg)
	}

	frac := x.Sub(a0)
	const maxTerms = 64
	for i := 0; i < maxTerms; i++ {
		if frac.IsZero() {
			break
		}
		recip := decimal.NewFromInt(1).DivRound(frac, DefaultPrec+20)
		a := recip.Floor()
		aRat := decimalToRat(a)

		pNext := new(big.Rat).Add(new(big.Rat).Mul(aRat, p0), pPrev)
		qNext := new(big.Rat).Add(new(big.Rat).Mul(aRat, q0), qPrev)

		pPrev, qPrev = p0, q0
		p0, q0 = pNext, qNext

		approx := new(big.Rat).Quo(p0, q0)
		if withinTolRat(approx, x, prec) {
			return signRat(approx, neg)
		}
		frac = recip.Sub(a)
	}
	// Fall back to the last convergent if the loop exhausted its budget;
	// this should not happen for the precisions the monodromy followers use.
	return signRat(new(big.Rat).Quo(p0, q0), neg)
}

func signRat(r *big.Rat, neg bool) *big.Rat {
	if neg {
		return new(big.Rat).Neg(r)
	}
	return r
}

func withinTol(candidate *big.Rat, x decimal.Decimal, prec decimal.Decimal) bool {
	return withinTolRat(candidate, x, prec)
}

func withinTolRat(candidate *big.Rat, x decimal.Decimal, prec decimal.Decimal) bool {
	cd := ratToDecimal(candidate, DefaultPrec+20)
	diff := cd.Sub(x).Abs()
	return diff.LessThanOrEqual(prec)
}

func decimalToRat(d decimal.Decimal) *big.Rat {
	coeff := d.Coefficient()
	exp := d.Exponent()
	r := new(big.Rat).SetInt(coeff)
	if exp > 0 {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil)
		r.Mul(r, new(big.Rat).SetInt(scale))
	} else if exp < 0 {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-exp)), nil)
		r.Quo(r, new(big.Rat).SetInt(scale))
	}
	return r
}
