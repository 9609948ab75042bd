package bipoly

import (
	"github.com/zvk/vankampen/pkg/cnum"
	"github.com/zvk/vankampen/pkg/upoly"
)

// VerticalPart returns the gcd of the x-coefficients of p viewed as
// elements of ℚ[y] (spec.md §3 "Discriminant Δ"): the content of p
// when p is written Σ a_i(y) x^i.
func (p Poly) VerticalPart() upoly.Poly[cnum.Rat] {
	d := p.DegX()
	if d < 0 {
		return upoly.Poly[cnum.Rat]{}
	}
	g := p.row(0)
	for i := 1; i <= d; i++ {
		g = upoly.GCD(g, p.row(i), upoly.Rats)
		if g.Degree(upoly.Rats) <= 0 {
			break
		}
	}
	return g
}

// Discriminant returns (Δ(y), verticalPart, nil): Δ is
// Res_x(P, ∂P/∂x) divided by its own repeated factors, times the
// vertical part, per spec.md §3.
func (p Poly) Discriminant() (upoly.Poly[cnum.Rat], Poly, error) {
	px := p.AsXPoly()
	dpx := p.DX().AsXPoly()
	ring := upoly.PolyRing[cnum.Rat]{Base: upoly.Rats}
	raw := upoly.Resultant(px, dpx, ring)

	sf, err := upoly.Squarefree(raw, upoly.Rats)
	if err != nil {
		return upoly.Poly[cnum.Rat]{}, Poly{}, err
	}
	vertical := p.VerticalPart()
	delta := sf.Mul(vertical, upoly.Rats)
	return delta, Poly{Coeffs: [][]cnum.Rat{vertical.Coeffs}}, nil
}
