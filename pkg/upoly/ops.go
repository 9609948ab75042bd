package upoly

// DivMod performs polynomial long division p = q*quot + rem with
// deg(rem) < deg(q), over a field of coefficients.
func DivMod[T any](p, q Poly[T], field Field[T]) (quot, rem Poly[T], err error) {
	dq := q.Degree(field)
	if dq < 0 {
		return Poly[T]{}, Poly[T]{}, ErrZeroDivisor
	}
	rem = p.Trim(field)
	dp := rem.Degree(field)
	if dp < dq {
		return Poly[T]{}, rem, nil
	}
	quotCoeffs := make([]T, dp-dq+1)
	invLead := field.Inv(q.Lead(field))
	for dp >= dq && dp >= 0 {
		c := field.Mul(rem.Lead(field), invLead)
		shift := dp - dq
		quotCoeffs[shift] = c
		// rem -= c * x^shift * q
		sub := make([]T, dp+1)
		for i := range sub {
			sub[i] = field.Zero()
		}
		for i, qc := range q.Coeffs {
			if i+shift < len(sub) {
				sub[i+shift] = field.Mul(c, qc)
			}
		}
		rem = rem.Sub(Poly[T]{Coeffs: sub}, field)
		dp = rem.Degree(field)
	}
	return Poly[T]{Coeffs: quotCoeffs}.Trim(field), rem, nil
}

// ExactDiv divides p by q and fails with ErrInexactDivision if the
// remainder is non-zero (spec.md §4.B).
func ExactDiv[T any](p, q Poly[T], field Field[T]) (Poly[T], error) {
	quot, rem, err := DivMod(p, q, field)
	if err != nil {
		return Poly[T]{}, err
	}
	if rem.Degree(field) >= 0 {
		return Poly[T]{}, ErrInexactDivision
	}
	return quot, nil
}

// GCD computes the monic gcd of p and q over a field via the
// Euclidean algorithm.
func GCD[T any](p, q Poly[T], field Field[T]) Poly[T] {
	a, b := p.Trim(field), q.Trim(field)
	for b.Degree(field) >= 0 {
		_, r, err := DivMod(a, b, field)
		if err != nil {
			break
		}
		a, b = b, r
	}
	if a.Degree(field) < 0 {
		return a
	}
	return a.Scale(field.Inv(a.Lead(field)), field)
}

// Squarefree divides p once by gcd(p, p'), returning the squarefree
// part. ErrNotSquarefree is never
// returned by this function (which fixes the problem); it is reserved
// for callers that want to reject non-squarefree input outright
// instead of silently repairing it.
func Squarefree[T any](p Poly[T], field Field[T]) (Poly[T], error) {
	g := GCD(p, p.Derivative(field), field)
	if g.Degree(field) <= 0 {
		return p.Trim(field), nil
	}
	sf, err := ExactDiv(p, g, field)
	if err != nil {
		return Poly[T]{}, err
	}
	return sf, nil
}

// Resultant computes Res(f,g) as the determinant of the Sylvester
// matrix, generic over any commutative Ring[T] (no division needed).
// This is the concrete default adapter for the "multivariate
// polynomial library" external collaborator named in spec.md §6 when
// T is itself a polynomial ring (the bivariate-lift case); for plain
// T = cnum.Rat it is the ordinary resultant of two scalar-coefficient
// polynomials.
func Resultant[T any](f, g Poly[T], ring Ring[T]) T {
	df, dg := f.Degree(ring), g.Degree(ring)
	if df < 0 || dg < 0 {
		return ring.Zero()
	}
	n := df + dg
	mat := make([][]T, n)
	for i := range mat {
		mat[i] = make([]T, n)
		for j := range mat[i] {
			mat[i][j] = ring.Zero()
		}
	}
	// dg rows of shifted f, df rows of shifted g (standard Sylvester layout).
	for r := 0; r < dg; r++ {
		for c := 0; c <= df; c++ {
			mat[r][r+c] = f.Coeffs[df-c]
		}
	}
	for r := 0; r < df; r++ {
		for c := 0; c <= dg; c++ {
			mat[dg+r][r+c] = g.Coeffs[dg-c]
		}
	}
	return Det(mat, ring)
}

// Discriminant returns disc(p) = (-1)^(n(n-1)/2) * Res(p,p') / lead(p)
// over a field of coefficients (spec.md §4.B, §3).
func Discriminant[T any](p Poly[T], field Field[T]) (T, error) {
	n := p.Degree(field)
	if n <= 0 {
		return field.Zero(), ErrInexactDivision
	}
	res := Resultant(p, p.Derivative(field), field)
	lead := p.Lead(field)
	d := field.Mul(res, field.Inv(lead))
	if n%4 == 2 || n%4 == 3 {
		d = field.Neg(d)
	}
	return d, nil
}
