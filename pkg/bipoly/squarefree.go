package bipoly

import (
	"github.com/zvk/vankampen/pkg/cnum"
	"github.com/zvk/vankampen/pkg/upoly"
)

// yFracField is ℚ(y), the field of fractions of ℚ[y] (yPolyRing), used to run the
// Euclidean algorithm on P and ∂P/∂x treated as polynomials in x with
// coefficients in the fraction field — the classic way to compute a
// bivariate gcd without a dedicated multivariate gcd algorithm.
var yPolyRing = upoly.Ring[upoly.Poly[cnum.Rat]](upoly.PolyRing[cnum.Rat]{Base: upoly.Rats})
var yFracField = upoly.FracField[upoly.Poly[cnum.Rat]]{Base: yPolyRing}

func liftToFrac(p upoly.Poly[upoly.Poly[cnum.Rat]]) upoly.Poly[upoly.Frac[upoly.Poly[cnum.Rat]]] {
	out := make([]upoly.Frac[upoly.Poly[cnum.Rat]], len(p.Coeffs))
	for i, c := range p.Coeffs {
		out[i] = yFracField.FromBase(c)
	}
	return upoly.Poly[upoly.Frac[upoly.Poly[cnum.Rat]]]{Coeffs: out}
}

// Gcd returns gcd(p, ∂p/∂x) as a genuine bivariate polynomial, by
// running the Euclidean algorithm over ℚ(y)(x) and then clearing
// denominators (spec.md §1 names multivariate gcd an external
// collaborator; this is the concrete default adapter).
func (p Poly) Gcd() Poly {
	f := liftToFrac(p.AsXPoly())
	g := liftToFrac(p.DX().AsXPoly())
	gcdFrac := upoly.GCD(f, g, yFracField)
	return clearDenominators(gcdFrac)
}

func clearDenominators(p upoly.Poly[upoly.Frac[upoly.Poly[cnum.Rat]]]) Poly {
	d := p.Degree(yFracField)
	if d < 0 {
		return Poly{}
	}
	// Common denominator: product of all per-coefficient denominators.
	den := upoly.Poly[cnum.Rat]{Coeffs: []cnum.Rat{cnum.One()}}
	for i := 0; i <= d; i++ {
		c := p.At(i, yFracField)
		den = den.Mul(c.Den, upoly.Rats)
	}
	rows := make([][]cnum.Rat, d+1)
	for i := 0; i <= d; i++ {
		c := p.At(i, yFracField)
		scale, err := upoly.ExactDiv(den, c.Den, upoly.Rats)
		if err != nil {
			// Dens don't divide den exactly only if den was built
			// incorrectly; fall back to the unscaled numerator.
			scale = upoly.Poly[cnum.Rat]{Coeffs: []cnum.Rat{cnum.One()}}
		}
		rows[i] = scale.Mul(c.Num, upoly.Rats).Coeffs
	}
	return Poly{Coeffs: rows}
}

// Squarefree divides out gcd(p, ∂p/∂x), returning the squarefree part
// of p. A p whose gcd has no x-degree is returned unchanged;
// ErrNotSquarefree is returned only when the exact division by the gcd
// fails. Driver code (pkg/vankampen)
// uses this to implement the "NotSquarefree: recovered locally by
// dividing through" rule of spec.md §7.
func (p Poly) Squarefree() (Poly, error) {
	g := p.Gcd()
	if g.DegX() <= 0 {
		return p, nil
	}
	// Exact-divide p by g treated as x-polynomials over the fraction
	// field ℚ(y), then clear denominators once more.
	pf := liftToFrac(p.AsXPoly())
	gf := liftToFrac(g.AsXPoly())
	qf, err := upoly.ExactDiv(pf, gf, yFracField)
	if err != nil {
		return Poly{}, upoly.ErrNotSquarefree
	}
	return clearDenominators(qf), nil
}
