package upoly

import "github.com/shopspring/decimal"

// DecimalRing is the Field[decimal.Decimal] instance used by
// pkg/sturm to build Sturm sequences of decimal-coefficient
// polynomials (spec.md §4.H's certified monodromy follower works on
// the decimal-backed approximate kernel, not the exact one).
type DecimalRing struct{}

func (DecimalRing) Add(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) }
func (DecimalRing) Sub(a, b decimal.Decimal) decimal.Decimal { return a.Sub(b) }
func (DecimalRing) Mul(a, b decimal.Decimal) decimal.Decimal { return a.Mul(b) }
func (DecimalRing) Neg(a decimal.Decimal) decimal.Decimal    { return a.Neg() }
func (DecimalRing) Zero() decimal.Decimal                    { return decimal.Zero }
func (DecimalRing) One() decimal.Decimal                     { return decimal.NewFromInt(1) }
func (DecimalRing) IsZero(a decimal.Decimal) bool            { return a.IsZero() }
func (DecimalRing) Equal(a, b decimal.Decimal) bool          { return a.Equal(b) }

// decimalRingPrec is the fixed precision DecimalRing.Inv divides to;
// Sturm sequences only need enough digits to resolve sign changes, not
// arbitrary precision.
const decimalRingPrec = 50

func (DecimalRing) Inv(a decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).DivRound(a, decimalRingPrec)
}

// Decimals is the canonical Field[decimal.Decimal] instance.
var Decimals = DecimalRing{}
