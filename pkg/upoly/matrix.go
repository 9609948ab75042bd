package upoly

// Det computes the determinant of a square matrix over a commutative
// ring by cofactor (Laplace) expansion along the first row. This needs
// only Add/Sub/Mul/Zero from Ring[T] — no division — which is what
// lets Resultant work generically over T = Poly[cnum.Rat] (a
// polynomial ring, not a field). Cofactor expansion is exponential in
// matrix size; the Sylvester matrices this engine builds are bounded
// by the sum of the two curve degrees, which stays small for the
// hand-checkable scenarios in spec.md §8. A production deployment
// would swap this for a fraction-free (Bareiss) elimination; that
// optimization is left to the external multivariate-polynomial
// collaborator (spec.md §1/§6) this function stands in for.
func Det[T any](m [][]T, ring Ring[T]) T {
	n := len(m)
	if n == 0 {
		return ring.One()
	}
	if n == 1 {
		return m[0][0]
	}
	if n == 2 {
		return ring.Sub(ring.Mul(m[0][0], m[1][1]), ring.Mul(m[0][1], m[1][0]))
	}
	acc := ring.Zero()
	for c := 0; c < n; c++ {
		if ring.IsZero(m[0][c]) {
			continue
		}
		minor := make([][]T, n-1)
		for i := 1; i < n; i++ {
			row := make([]T, 0, n-1)
			for j := 0; j < n; j++ {
				if j == c {
					continue
				}
				row = append(row, m[i][j])
			}
			minor[i-1] = row
		}
		term := ring.Mul(m[0][c], Det(minor, ring))
		if c%2 == 1 {
			term = ring.Neg(term)
		}
		acc = ring.Add(acc, term)
	}
	return acc
}
