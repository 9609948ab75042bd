package bipoly

import "github.com/zvk/vankampen/pkg/cnum"

// candidateHeights is the deterministic search sequence SearchHorizontal
// tries, in order, when looking for a trivializing line.
func candidateHeights() []cnum.Rat {
	out := make([]cnum.Rat, 0, 21)
	out = append(out, cnum.Zero())
	for n := int64(1); n <= 10; n++ {
		out = append(out, cnum.RatFromInt(n), cnum.RatFromInt(-n))
	}
	return out
}

func linearFactor(h cnum.Rat) Poly {
	return Poly{Coeffs: [][]cnum.Rat{{h.Neg()}, {cnum.One()}}}
}

// SearchHorizontal adds a trivializing line x=h to a curve that is not
// monic in x, per spec.md §6/§9: multiplying by (x-h) bumps the sheet
// count by one, giving the non-monic-case pipeline (pkg/hurwitz's
// DBVKQuotient) a curve that behaves as if it were monic, at the cost
// of one extra tracked sheet per monodromy braid. It searches a small
// deterministic set of candidate heights and accepts the first one
// that keeps the augmented curve squarefree, returning
// ErrTrivializingLineDegenerate if none of them do (spec.md §9's open
// question about this case).
func (p Poly) SearchHorizontal() (Poly, cnum.Rat, error) {
	for _, h := range candidateHeights() {
		augmented := p.mulPoly(linearFactor(h))
		if augmented.Gcd().DegX() <= 0 {
			return augmented, h, nil
		}
	}
	return Poly{}, cnum.Zero(), ErrTrivializingLineDegenerate
}
