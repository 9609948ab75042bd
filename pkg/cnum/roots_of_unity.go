package cnum

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

func zeroRat() *big.Rat   { return big.NewRat(0, 1) }
func oneRat() *big.Rat    { return big.NewRat(1, 1) }
func negOneRat() *big.Rat { return big.NewRat(-1, 1) }

func decimalEpsilon(prec int32) decimal.Decimal {
	return decimal.New(1, -prec)
}

// E returns the primitive n-th root of unity raised to the k-th power,
// e^(2*pi*i*k/n). spec.md §1 treats the exact cyclotomic-number kernel
// ℚ(E(n)) as an external collaborator; where the value is exactly a
// Gaussian rational (every k for n ∈ {1,2,4}, k = 0 for n = 3, and
// k ∈ {0,3} for n = 6) it is returned as such. For any other (n,k) E
// falls back to a decimal
// evaluation of the trigonometric definition, rationalized by Simp at
// DefaultPrec — the documented default adapter for the external
// cyclotomic interface (spec.md §6).
func E(n, k int) Rat {
	if n <= 0 {
		panic("cnum: E(n,k) requires n > 0")
	}
	k = ((k % n) + n) % n
	if exact, ok := exactRootOfUnity(n, k); ok {
		return exact
	}
	angle := 2 * math.Pi * float64(k) / float64(n)
	f := FromFloat64(math.Cos(angle), math.Sin(angle))
	return Simp(f, decimalEpsilon(DefaultPrec))
}

func exactRootOfUnity(n, k int) (Rat, bool) {
	switch n {
	case 1:
		return One(), true
	case 2:
		if k == 0 {
			return One(), true
		}
		return RatFromInt(-1), true
	case 4:
		switch k {
		case 0:
			return One(), true
		case 1:
			return Rat{Re: zeroRat(), Im: oneRat()}, true
		case 2:
			return RatFromInt(-1), true
		case 3:
			return Rat{Re: zeroRat(), Im: negOneRat()}, true
		}
	case 3:
		// E(3,k) = -1/2 ± sqrt(3)/2 i is not rational; only k=0 is exact.
		if k == 0 {
			return One(), true
		}
	case 6:
		if k == 0 {
			return One(), true
		}
		if k == 3 {
			return RatFromInt(-1), true
		}
	}
	return Rat{}, false
}
