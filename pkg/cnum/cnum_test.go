package cnum

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatArithmetic(t *testing.T) {
	a := NewRat(1, 2, 1, 3)
	b := NewRat(1, 4, -1, 6)
	sum := a.Add(b)
	assert.Equal(t, "3/4", sum.Re.RatString())
	assert.Equal(t, "1/6", sum.Im.RatString())

	prod := a.Mul(b)
	// (1/2+1/3i)(1/4-1/6i) = (1/8+1/18) + (1/12*... )
	assert.False(t, prod.IsZero())

	inv := a.Inv()
	one := a.Mul(inv)
	assert.True(t, one.Equal(One()))
}

func TestEExactRoots(t *testing.T) {
	require.True(t, E(4, 0).Equal(One()))
	require.True(t, E(4, 2).Equal(RatFromInt(-1)))
	require.True(t, E(2, 1).Equal(RatFromInt(-1)))
}

func TestSimpRationalizes(t *testing.T) {
	f := FromFloat64(0.3333333333, 0.0)
	prec := decimal.New(1, -6)
	r := Simp(f, prec)
	got := ratToDecimal(r.Re, 10)
	diff := got.Sub(decimal.NewFromFloat(0.3333333333)).Abs()
	assert.True(t, diff.LessThanOrEqual(prec))
}

func TestSqrt(t *testing.T) {
	x := decimal.NewFromInt(2)
	s := Sqrt(x, 20)
	sq := s.Mul(s)
	diff := sq.Sub(x).Abs()
	assert.True(t, diff.LessThan(decimal.New(1, -15)))
}
