package upoly

import "github.com/zvk/vankampen/pkg/cnum"

// Ring is the minimal algebraic structure the generic polynomial
// kernel needs: a commutative ring with identity. Component B
// (spec.md §4.B) is specified over ℚ or ℚ(i); this package is kept
// generic over Ring[T] so the same resultant/determinant code serves
// both plain univariate polynomials (T = cnum.Rat) and the recursive
// lift used for bivariate discriminants (T = Poly[cnum.Rat]).
type Ring[T any] interface {
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Neg(a T) T
	Zero() T
	One() T
	IsZero(a T) bool
	Equal(a, b T) bool
}

// Field is a Ring that additionally supports division, needed for
// exact division, gcd and discriminant normalization. In this codebase
// Rats (cnum.Rat), Decimals (cnum.Decimal) and the FracField over a
// ring play this role; ℚ[y] coefficient rings used for bivariate
// resultants are Rings but not Fields.
type Field[T any] interface {
	Ring[T]
	Inv(a T) T
}

// RatRing is the Ring[cnum.Rat] instance for exact Gaussian rationals.
type RatRing struct{}

func (RatRing) Add(a, b cnum.Rat) cnum.Rat { return a.Add(b) }
func (RatRing) Sub(a, b cnum.Rat) cnum.Rat { return a.Sub(b) }
func (RatRing) Mul(a, b cnum.Rat) cnum.Rat { return a.Mul(b) }
func (RatRing) Neg(a cnum.Rat) cnum.Rat    { return a.Neg() }
func (RatRing) Zero() cnum.Rat             { return cnum.Zero() }
func (RatRing) One() cnum.Rat              { return cnum.One() }
func (RatRing) IsZero(a cnum.Rat) bool     { return a.IsZero() }
func (RatRing) Equal(a, b cnum.Rat) bool   { return a.Equal(b) }
func (RatRing) Inv(a cnum.Rat) cnum.Rat    { return a.Inv() }

// Rats is the canonical Field[cnum.Rat] instance.
var Rats = RatRing{}

// PolyRing lifts a Ring[T] to a Ring[Poly[T]]: the ring of
// polynomials over T, used to treat a bivariate polynomial as a
// univariate polynomial in x whose coefficients live in the
// polynomial ring ℚ[y] (T = cnum.Rat).
type PolyRing[T any] struct {
	Base Ring[T]
}

func (r PolyRing[T]) Add(a, b Poly[T]) Poly[T] { return a.Add(b, r.Base) }
func (r PolyRing[T]) Sub(a, b Poly[T]) Poly[T] { return a.Sub(b, r.Base) }
func (r PolyRing[T]) Mul(a, b Poly[T]) Poly[T] { return a.Mul(b, r.Base) }
func (r PolyRing[T]) Neg(a Poly[T]) Poly[T]    { return a.Scale(r.Base.Neg(r.Base.One()), r.Base) }
func (r PolyRing[T]) Zero() Poly[T]            { return Poly[T]{} }
func (r PolyRing[T]) One() Poly[T]             { return Poly[T]{Coeffs: []T{r.Base.One()}} }
func (r PolyRing[T]) IsZero(a Poly[T]) bool    { return a.Degree(r.Base) < 0 }
func (r PolyRing[T]) Equal(a, b Poly[T]) bool  { return a.Equal(b, r.Base) }
