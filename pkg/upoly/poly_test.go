package upoly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zvk/vankampen/pkg/cnum"
)

func r(n int64) cnum.Rat { return cnum.RatFromInt(n) }

func TestEvalAndDerivative(t *testing.T) {
	// p = 1 + 2x + 3x^2
	p := New(r(1), r(2), r(3))
	got := p.Eval(r(2), Rats)
	assert.True(t, got.Equal(r(1+4+12)))

	dp := p.Derivative(Rats)
	// dp = 2 + 6x
	assert.True(t, dp.Eval(r(2), Rats).Equal(r(2+12)))
}

func TestExactDivByLinearFactor(t *testing.T) {
	// p = (x-1)(x-2) = x^2 -3x +2 ; q = (x-1)
	p := New(r(2), r(-3), r(1))
	q := New(r(-1), r(1))
	quot, err := ExactDiv(p, q, Rats)
	require.NoError(t, err)
	// quot should be (x-2)
	assert.True(t, quot.Eval(r(2), Rats).Equal(r(0)))
}

func TestSquarefreeRepairsDoubleRoot(t *testing.T) {
	// p = (x-1)^2(x-3) has a double root at 1.
	xm1 := New(r(-1), r(1))
	xm1sq := xm1.Mul(xm1, Rats)
	xm3 := New(r(-3), r(1))
	p := xm1sq.Mul(xm3, Rats)

	sf, err := Squarefree(p, Rats)
	require.NoError(t, err)
	assert.Equal(t, 2, sf.Degree(Rats))
}

func TestResultantVanishesOnCommonRoot(t *testing.T) {
	// f = (x-1)(x-2), g = (x-2)(x-3): common root at 2 => resultant 0.
	f := New(r(2), r(-3), r(1))
	g := New(r(6), r(-5), r(1))
	res := Resultant(f, g, Rats)
	assert.True(t, res.IsZero())
}

func TestResultantNonzeroWithoutCommonRoot(t *testing.T) {
	f := New(r(-1), r(0), r(1)) // x^2-1
	g := New(r(-4), r(0), r(1)) // x^2-4
	res := Resultant(f, g, Rats)
	assert.False(t, res.IsZero())
}

func TestDiscriminantOfQuadratic(t *testing.T) {
	// p = x^2 + bx + c, disc = b^2 - 4c
	b, c := r(5), r(6)
	p := New(c, b, r(1))
	d, err := Discriminant(p, Rats)
	require.NoError(t, err)
	want := b.Mul(b).Sub(r(4).Mul(c))
	assert.True(t, d.Equal(want))
}
