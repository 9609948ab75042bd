package upoly

// Frac is an element a/b of the field of fractions of a ring T. It is
// kept unreduced (no gcd cancellation) — the classic "gcd via the
// fraction field" technique this package uses to compute a bivariate
// gcd only needs a field to run the Euclidean algorithm in, not a
// reduced representation.
type Frac[T any] struct {
	Num, Den T
}

// FracField adapts Ring[T] to Field[Frac[T]] by formal fraction
// arithmetic. T must be an integral domain (no zero divisors); every
// Ring this package instantiates T with (cnum.Rat, Poly[cnum.Rat])
// satisfies that.
type FracField[T any] struct {
	Base Ring[T]
}

func (f FracField[T]) mk(n, d T) Frac[T] { return Frac[T]{Num: n, Den: d} }

func (f FracField[T]) Add(a, b Frac[T]) Frac[T] {
	return f.mk(
		f.Base.Add(f.Base.Mul(a.Num, b.Den), f.Base.Mul(b.Num, a.Den)),
		f.Base.Mul(a.Den, b.Den),
	)
}

func (f FracField[T]) Sub(a, b Frac[T]) Frac[T] {
	return f.mk(
		f.Base.Sub(f.Base.Mul(a.Num, b.Den), f.Base.Mul(b.Num, a.Den)),
		f.Base.Mul(a.Den, b.Den),
	)
}

func (f FracField[T]) Mul(a, b Frac[T]) Frac[T] {
	return f.mk(f.Base.Mul(a.Num, b.Num), f.Base.Mul(a.Den, b.Den))
}

func (f FracField[T]) Neg(a Frac[T]) Frac[T] {
	return f.mk(f.Base.Neg(a.Num), a.Den)
}

func (f FracField[T]) Zero() Frac[T] { return f.mk(f.Base.Zero(), f.Base.One()) }
func (f FracField[T]) One() Frac[T]  { return f.mk(f.Base.One(), f.Base.One()) }

func (f FracField[T]) IsZero(a Frac[T]) bool { return f.Base.IsZero(a.Num) }

func (f FracField[T]) Equal(a, b Frac[T]) bool {
	return f.Base.Equal(f.Base.Mul(a.Num, b.Den), f.Base.Mul(b.Num, a.Den))
}

func (f FracField[T]) Inv(a Frac[T]) Frac[T] { return f.mk(a.Den, a.Num) }

// FromBase lifts a base-ring element to the fraction field.
func (f FracField[T]) FromBase(a T) Frac[T] { return f.mk(a, f.Base.One()) }
