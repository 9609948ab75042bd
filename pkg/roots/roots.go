// Package roots implements the root finder of spec.md §4.C: Newton
// iteration on the decimal-backed approximate kernel, rationalized
// back to an exact Gaussian rational via cnum.Simp, and a root
// separation driver that certifies the resulting set has dispersal no
// smaller than a requested safety margin.
package roots

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/zvk/vankampen/pkg/cnum"
	"github.com/zvk/vankampen/pkg/upoly"
)

// workingPrec is the decimal precision Newton iteration works at
// internally, comfortably ahead of any eps callers are likely to pass.
const workingPrec int32 = cnum.DefaultPrec + 20

// DefaultNewtonLimit is the default iteration cap named by spec.md §4.C
// ("Default lim = 800 (Config.NewtonLimit)").
const DefaultNewtonLimit = 800

func evalFloat(p upoly.Poly[cnum.Rat], z cnum.Float, prec int32) cnum.Float {
	d := p.Degree(upoly.Rats)
	if d < 0 {
		return cnum.Float{}
	}
	acc := p.Coeffs[d].ToFloat(prec)
	for i := d - 1; i >= 0; i-- {
		acc = acc.Mul(z).Add(p.Coeffs[i].ToFloat(prec))
	}
	return acc
}

// NewtonRoot runs Newton's method for p starting from the rational
// guess z0, in decimal-backed arithmetic, stopping once |p(z)| <= eps
// or lim iterations have elapsed. On success it rationalizes the
// approximate root back to an exact Gaussian rational via cnum.Simp
// and returns the residual |p(z)| actually achieved.
func NewtonRoot(p upoly.Poly[cnum.Rat], z0 cnum.Rat, eps decimal.Decimal, lim int) (cnum.Rat, decimal.Decimal, error) {
	dp := p.Derivative(upoly.Rats)
	z := z0.ToFloat(workingPrec)
	resid := evalFloat(p, z, workingPrec).Abs(workingPrec)
	for i := 0; i < lim && resid.GreaterThan(eps); i++ {
		dfz := evalFloat(dp, z, workingPrec)
		if dfz.IsZero() {
			return cnum.Rat{}, resid, ErrDegenerateStart
		}
		fz := evalFloat(p, z, workingPrec)
		z = z.Sub(fz.Div(dfz, workingPrec))
		resid = evalFloat(p, z, workingPrec).Abs(workingPrec)
	}
	if resid.GreaterThan(eps) {
		return cnum.Rat{}, resid, ErrDidNotConverge
	}
	return cnum.Simp(z, eps), resid, nil
}

// distRat returns |a-b| as a decimal, used only to compare root
// separations, never to decide exact equality.
func distRat(a, b cnum.Rat) decimal.Decimal {
	return a.Sub(b).ToFloat(workingPrec).Abs(workingPrec)
}

func closeToAny(found []cnum.Rat, z cnum.Rat, tol decimal.Decimal) bool {
	for _, f := range found {
		if distRat(f, z).LessThanOrEqual(tol) {
			return true
		}
	}
	return false
}

func checkSeparation(found []cnum.Rat, safety decimal.Decimal) error {
	for i := 0; i < len(found); i++ {
		for j := i + 1; j < len(found); j++ {
			if distRat(found[i], found[j]).LessThan(safety) {
				return ErrRootsNotSeparated
			}
		}
	}
	return nil
}

// SeparateRootsInitialGuess runs NewtonRoot from each of the supplied
// initial guesses v, deduplicates the resulting roots, and certifies
// that every pair of distinct roots is at least safety apart
// (spec.md §4.C, the "dispersal" requirement of §3 made concrete). lim
// caps each Newton run's iteration count (spec.md §6's
// Config.NewtonLimit); lim <= 0 selects DefaultNewtonLimit.
func SeparateRootsInitialGuess(p upoly.Poly[cnum.Rat], v []cnum.Rat, safety decimal.Decimal, lim int) ([]cnum.Rat, error) {
	d := p.Degree(upoly.Rats)
	if d <= 0 {
		return nil, ErrConstantPolynomial
	}
	if lim <= 0 {
		lim = DefaultNewtonLimit
	}
	eps := safety.DivRound(decimal.NewFromInt(1000), cnum.DefaultPrec)
	if eps.Sign() <= 0 {
		eps = decimal.New(1, -cnum.DefaultPrec)
	}
	var found []cnum.Rat
	for _, z0 := range v {
		z, _, err := NewtonRoot(p, z0, eps, lim)
		if err != nil {
			tracer().Debugf("roots: Newton failed from guess %s: %v", z0, err)
			continue
		}
		if !closeToAny(found, z, eps) {
			found = append(found, z)
		}
	}
	if len(found) != d {
		return nil, fmt.Errorf("roots: found %d of %d roots from %d initial guesses", len(found), d, len(v))
	}
	if err := checkSeparation(found, safety); err != nil {
		return nil, err
	}
	return found, nil
}

// cauchyBound returns a heuristic upper bound on the modulus of any
// root of p, used only to seed initial guesses, never to certify
// anything: 1 + max_{i<d} |a_i/a_d|.
func cauchyBound(p upoly.Poly[cnum.Rat]) float64 {
	d := p.Degree(upoly.Rats)
	lead, _ := p.Coeffs[d].ToFloat(cnum.DefaultPrec).Abs(cnum.DefaultPrec).Float64()
	if lead == 0 {
		lead = 1
	}
	max := 0.0
	for i := 0; i < d; i++ {
		c, _ := p.Coeffs[i].ToFloat(cnum.DefaultPrec).Abs(cnum.DefaultPrec).Float64()
		if ratio := c / lead; ratio > max {
			max = ratio
		}
	}
	return 1 + max
}

// initialGuesses seeds one guess per root on a circle of the Cauchy
// bound's radius, at the d-th roots of unity — reusing the cyclotomic
// kernel (cnum.E) rather than a separate trigonometric helper.
func initialGuesses(p upoly.Poly[cnum.Rat], d int) []cnum.Rat {
	r := cauchyBound(p)
	scaleRe := new(big.Rat).SetFloat64(r)
	if scaleRe == nil {
		scaleRe = big.NewRat(2, 1)
	}
	scale := cnum.Rat{Re: scaleRe, Im: new(big.Rat)}
	guesses := make([]cnum.Rat, d)
	for k := 0; k < d; k++ {
		guesses[k] = cnum.E(d, k).Mul(scale)
	}
	return guesses
}

// SeparateRoots finds and certifies all d roots of p with pairwise
// separation at least safety, generating its own initial guesses from
// a Cauchy-bound circle. lim caps each Newton run's iteration count;
// lim <= 0 selects DefaultNewtonLimit.
func SeparateRoots(p upoly.Poly[cnum.Rat], safety decimal.Decimal, lim int) ([]cnum.Rat, error) {
	d := p.Degree(upoly.Rats)
	if d <= 0 {
		return nil, ErrConstantPolynomial
	}
	v := initialGuesses(p, d)
	return SeparateRootsInitialGuess(p, v, safety, lim)
}
