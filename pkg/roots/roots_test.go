package roots

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zvk/vankampen/pkg/cnum"
	"github.com/zvk/vankampen/pkg/upoly"
)

func poly(coeffs ...int64) upoly.Poly[cnum.Rat] {
	out := make([]cnum.Rat, len(coeffs))
	for i, c := range coeffs {
		out[i] = cnum.RatFromInt(c)
	}
	return upoly.Poly[cnum.Rat]{Coeffs: out}
}

func TestNewtonRootOnLinearPolynomial(t *testing.T) {
	// p(x) = x - 3
	p := poly(-3, 1)
	root, resid, err := NewtonRoot(p, cnum.RatFromInt(0), decimal.New(1, -20), 50)
	require.NoError(t, err)
	assert.True(t, root.Sub(cnum.RatFromInt(3)).IsZero())
	assert.True(t, resid.LessThan(decimal.New(1, -15)))
}

func TestSeparateRootsOfVerticalLines(t *testing.T) {
	// p(x) = x^2 - 1 = (x-1)(x+1)
	p := poly(-1, 0, 1)
	rs, err := SeparateRoots(p, decimal.NewFromFloat(0.1), 0)
	require.NoError(t, err)
	require.Len(t, rs, 2)
}

func TestSeparateRootsOfThreeLines(t *testing.T) {
	// p(x) = (x-1)(x-2)(x-3) = x^3 -6x^2 +11x -6
	p := poly(-6, 11, -6, 1)
	rs, err := SeparateRoots(p, decimal.NewFromFloat(0.1), 0)
	require.NoError(t, err)
	require.Len(t, rs, 3)
}

func TestSeparateRootsRejectsConstant(t *testing.T) {
	p := poly(5)
	_, err := SeparateRoots(p, decimal.NewFromFloat(0.1), 0)
	require.ErrorIs(t, err, ErrConstantPolynomial)
}

// TestSeparateRootsHonorsNewtonLimit confirms a caller-supplied
// iteration cap is the one actually enforced, not DefaultNewtonLimit:
// a limit of 1 is nowhere near enough for Newton's method to converge
// to safety/1000 = 1e-4 from a Cauchy-bound starting guess on a cubic, so the call
// must fail, while lim<=0 still falls back to the default and
// succeeds.
func TestSeparateRootsHonorsNewtonLimit(t *testing.T) {
	p := poly(-6, 11, -6, 1)
	_, err := SeparateRoots(p, decimal.NewFromFloat(0.1), 1)
	require.Error(t, err)

	rs, err := SeparateRoots(p, decimal.NewFromFloat(0.1), -1)
	require.NoError(t, err)
	require.Len(t, rs, 3)
}
