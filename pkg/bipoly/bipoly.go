// Package bipoly holds the dense bivariate curve representation and
// the default adapter for the "multivariate polynomial library"
// external collaborator named in spec.md §1/§6: gcd, discriminant,
// derivative, exact division, substitution. The real arithmetic is
// delegated to pkg/upoly, lifted one level (a bivariate polynomial is
// a univariate polynomial in x whose coefficients are univariate
// polynomials in y).
package bipoly

import (
	"errors"

	"github.com/zvk/vankampen/pkg/cnum"
	"github.com/zvk/vankampen/pkg/upoly"
)

// ErrCoefficientUnsupported is returned when parsing input with
// coefficients outside ℚ or ℚ(i) (spec.md §7).
var ErrCoefficientUnsupported = errors.New("bipoly: coefficient type unsupported (need rational or Gaussian-rational)")

// ErrCurveAtInfinity names the non-goal of spec.md §1 ("curves at
// infinity"). No function in this module returns it: the pipeline does
// not check whether a curve meets the line at infinity.
var ErrCurveAtInfinity = errors.New("bipoly: curve meets the line at infinity in a way this engine does not model")

// ErrTrivializingLineDegenerate is returned by SearchHorizontal when
// none of its candidate heights h gives a squarefree augmented curve
// p·(x-h). Whether the line x=h meets a critical value of the
// projection is not checked.
var ErrTrivializingLineDegenerate = errors.New("bipoly: trivializing horizontal line meets a critical value; retry with a larger base height")

// Poly is a dense bivariate polynomial. Coeffs[i][j] is the
// coefficient of x^i y^j.
type Poly struct {
	Coeffs [][]cnum.Rat
}

// DegX returns the degree of p in x.
func (p Poly) DegX() int {
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		if !rowIsZero(p.Coeffs[i]) {
			return i
		}
	}
	return -1
}

func rowIsZero(row []cnum.Rat) bool {
	for _, c := range row {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// row returns the i-th x-coefficient (a polynomial in y) as
// upoly.Poly[cnum.Rat], or the zero polynomial if out of range.
func (p Poly) row(i int) upoly.Poly[cnum.Rat] {
	if i < 0 || i >= len(p.Coeffs) {
		return upoly.Poly[cnum.Rat]{}
	}
	return upoly.Poly[cnum.Rat]{Coeffs: append([]cnum.Rat(nil), p.Coeffs[i]...)}
}

// AsXPoly views p as a univariate polynomial in x whose coefficients
// are polynomials in y.
func (p Poly) AsXPoly() upoly.Poly[upoly.Poly[cnum.Rat]] {
	d := p.DegX()
	if d < 0 {
		return upoly.Poly[upoly.Poly[cnum.Rat]]{}
	}
	rows := make([]upoly.Poly[cnum.Rat], d+1)
	for i := 0; i <= d; i++ {
		rows[i] = p.row(i)
	}
	return upoly.Poly[upoly.Poly[cnum.Rat]]{Coeffs: rows}
}

// FromXPoly rebuilds a Poly from the lifted x-polynomial-of-y-polynomials
// representation.
func FromXPoly(xp upoly.Poly[upoly.Poly[cnum.Rat]]) Poly {
	ring := upoly.PolyRing[cnum.Rat]{Base: upoly.Rats}
	d := xp.Degree(ring)
	out := make([][]cnum.Rat, d+1)
	for i := 0; i <= d; i++ {
		out[i] = append([]cnum.Rat(nil), xp.At(i, ring).Coeffs...)
	}
	return Poly{Coeffs: out}
}

// DX returns ∂p/∂x.
func (p Poly) DX() Poly {
	ring := upoly.PolyRing[cnum.Rat]{Base: upoly.Rats}
	return FromXPoly(p.AsXPoly().Derivative(ring))
}

// AtY specializes p at y, returning the fibre polynomial P(·, y) as a
// univariate polynomial in x.
func (p Poly) AtY(y cnum.Rat) upoly.Poly[cnum.Rat] {
	d := p.DegX()
	if d < 0 {
		return upoly.Poly[cnum.Rat]{}
	}
	out := make([]cnum.Rat, d+1)
	for i := 0; i <= d; i++ {
		out[i] = p.row(i).Eval(y, upoly.Rats)
	}
	return upoly.Poly[cnum.Rat]{Coeffs: out}.Trim(upoly.Rats)
}

// LeadInX returns the leading (in x) coefficient, itself a polynomial
// in y; it is a non-zero constant exactly when p is monic in x (up to
// scale).
func (p Poly) LeadInX() upoly.Poly[cnum.Rat] {
	d := p.DegX()
	if d < 0 {
		return upoly.Poly[cnum.Rat]{}
	}
	return p.row(d)
}

// IsMonicInX reports whether the leading x-coefficient is a non-zero
// constant.
func (p Poly) IsMonicInX() bool {
	lead := p.LeadInX()
	return lead.Degree(upoly.Rats) == 0
}
