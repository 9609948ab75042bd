// Package upoly implements the univariate polynomial kernel of
// spec.md §4.B: evaluation, derivative, gcd, exact division, and
// resultant/discriminant, generic over the coefficient ring so the
// same code computes plain univariate polynomials (coefficients in
// cnum.Rat) and the lifted bivariate resultant (coefficients in
// Poly[cnum.Rat], i.e. the ring ℚ[y]).
package upoly

// Poly is a dense univariate polynomial, Coeffs[i] the coefficient of
// x^i, lowest degree first. A nil/empty Coeffs slice is the zero
// polynomial.
type Poly[T any] struct {
	Coeffs []T
}

// New builds a polynomial from its coefficients, lowest degree first.
func New[T any](coeffs ...T) Poly[T] {
	return Poly[T]{Coeffs: coeffs}
}

// Degree returns the polynomial's degree, or -1 for the zero
// polynomial.
func (p Poly[T]) Degree(ring Ring[T]) int {
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		if !ring.IsZero(p.Coeffs[i]) {
			return i
		}
	}
	return -1
}

// Trim returns p with trailing zero coefficients removed.
func (p Poly[T]) Trim(ring Ring[T]) Poly[T] {
	d := p.Degree(ring)
	if d < 0 {
		return Poly[T]{}
	}
	return Poly[T]{Coeffs: append([]T(nil), p.Coeffs[:d+1]...)}
}

// Lead returns the leading coefficient, or the ring's zero for the
// zero polynomial.
func (p Poly[T]) Lead(ring Ring[T]) T {
	d := p.Degree(ring)
	if d < 0 {
		return ring.Zero()
	}
	return p.Coeffs[d]
}

// At returns the coefficient of x^i, or the ring's zero if out of
// range.
func (p Poly[T]) At(i int, ring Ring[T]) T {
	if i < 0 || i >= len(p.Coeffs) {
		return ring.Zero()
	}
	return p.Coeffs[i]
}

func (p Poly[T]) coeffOrZero(i int, ring Ring[T]) T {
	return p.At(i, ring)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Add returns p+q.
func (p Poly[T]) Add(q Poly[T], ring Ring[T]) Poly[T] {
	n := maxInt(len(p.Coeffs), len(q.Coeffs))
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = ring.Add(p.coeffOrZero(i, ring), q.coeffOrZero(i, ring))
	}
	return Poly[T]{Coeffs: out}.Trim(ring)
}

// Sub returns p-q.
func (p Poly[T]) Sub(q Poly[T], ring Ring[T]) Poly[T] {
	n := maxInt(len(p.Coeffs), len(q.Coeffs))
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = ring.Sub(p.coeffOrZero(i, ring), q.coeffOrZero(i, ring))
	}
	return Poly[T]{Coeffs: out}.Trim(ring)
}

// Scale returns c*p.
func (p Poly[T]) Scale(c T, ring Ring[T]) Poly[T] {
	out := make([]T, len(p.Coeffs))
	for i, a := range p.Coeffs {
		out[i] = ring.Mul(c, a)
	}
	return Poly[T]{Coeffs: out}.Trim(ring)
}

// Mul returns p*q by convolution.
func (p Poly[T]) Mul(q Poly[T], ring Ring[T]) Poly[T] {
	dp, dq := p.Degree(ring), q.Degree(ring)
	if dp < 0 || dq < 0 {
		return Poly[T]{}
	}
	out := make([]T, dp+dq+1)
	for i := range out {
		out[i] = ring.Zero()
	}
	for i := 0; i <= dp; i++ {
		if ring.IsZero(p.Coeffs[i]) {
			continue
		}
		for j := 0; j <= dq; j++ {
			out[i+j] = ring.Add(out[i+j], ring.Mul(p.Coeffs[i], q.Coeffs[j]))
		}
	}
	return Poly[T]{Coeffs: out}.Trim(ring)
}

// Equal reports structural equality after trimming.
func (p Poly[T]) Equal(q Poly[T], ring Ring[T]) bool {
	pt, qt := p.Trim(ring), q.Trim(ring)
	if len(pt.Coeffs) != len(qt.Coeffs) {
		return false
	}
	for i := range pt.Coeffs {
		if !ring.Equal(pt.Coeffs[i], qt.Coeffs[i]) {
			return false
		}
	}
	return true
}

// Eval evaluates p at x by Horner's method.
func (p Poly[T]) Eval(x T, ring Ring[T]) T {
	d := p.Degree(ring)
	if d < 0 {
		return ring.Zero()
	}
	acc := p.Coeffs[d]
	for i := d - 1; i >= 0; i-- {
		acc = ring.Add(ring.Mul(acc, x), p.Coeffs[i])
	}
	return acc
}

// Derivative returns dp/dx. Integer coefficient multiples are built by
// repeated addition, which is fine for the small degrees this engine
// targets and needs no separate "multiply by int" ring operation.
func (p Poly[T]) Derivative(ring Ring[T]) Poly[T] {
	d := p.Degree(ring)
	if d <= 0 {
		return Poly[T]{}
	}
	out := make([]T, d)
	for i := 1; i <= d; i++ {
		out[i-1] = natMul(i, p.Coeffs[i], ring)
	}
	return Poly[T]{Coeffs: out}.Trim(ring)
}

// natMul computes n*a via repeated doubling, n a small non-negative
// integer multiplicity (a coefficient exponent), a a ring element.
func natMul[T any](n int, a T, ring Ring[T]) T {
	acc := ring.Zero()
	base := a
	for n > 0 {
		if n&1 == 1 {
			acc = ring.Add(acc, base)
		}
		base = ring.Add(base, base)
		n >>= 1
	}
	return acc
}

// Clone makes a shallow copy of the coefficient slice.
func (p Poly[T]) Clone() Poly[T] {
	out := make([]T, len(p.Coeffs))
	copy(out, p.Coeffs)
	return Poly[T]{Coeffs: out}
}
