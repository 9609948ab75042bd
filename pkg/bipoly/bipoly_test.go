package bipoly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zvk/vankampen/pkg/cnum"
	"github.com/zvk/vankampen/pkg/upoly"
)

func mustParse(t *testing.T, src string) Poly {
	t.Helper()
	p, err := Parse(src)
	require.NoError(t, err, "parsing %q", src)
	return p
}

func TestParseCusp(t *testing.T) {
	p := mustParse(t, "x^2 - y^3")
	assert.Equal(t, 2, p.DegX())
	fibre := p.AtY(cnum.Zero())
	assert.Equal(t, 2, fibre.Degree(upoly.Rats))
}

func TestParseThreeLines(t *testing.T) {
	p := mustParse(t, "(x+y)*(x-y)*(x+2*y)")
	assert.Equal(t, 3, p.DegX())
	assert.True(t, p.IsMonicInX())
}

func TestParseVerticalLines(t *testing.T) {
	p := mustParse(t, "x^2 - 1")
	assert.Equal(t, 2, p.DegX())
	fibre := p.AtY(cnum.Zero())
	assert.Equal(t, 2, fibre.Degree(upoly.Rats))
}

func TestParseTacnode(t *testing.T) {
	p := mustParse(t, "x^3 - y^2")
	assert.Equal(t, 3, p.DegX())
}

func TestParseDisjointCircles(t *testing.T) {
	p := mustParse(t, "(x^2+y^2-1)*(x^2+y^2-4)")
	assert.Equal(t, 4, p.DegX())
}

func TestNonMonicCurveIsNotMonicInX(t *testing.T) {
	// x^2 - 1 is monic in x (leading coeff 1), and so is x*(x-1)*(x-y):
	// its x-degree-3 coefficient is the constant 1. Use a genuinely
	// non-monic curve.
	p := mustParse(t, "y*x^2 - 1")
	assert.False(t, p.IsMonicInX())
}

func TestDiscriminantOfCoprimeFactorsIsNotIdenticallyZero(t *testing.T) {
	p := mustParse(t, "(x-y)*(x+y)")
	delta, _, err := p.Discriminant()
	require.NoError(t, err)
	// x^2 - y^2 has a resultant with ∂/∂x proportional to y^2, whose
	// squarefree part Δ is proportional to y: never identically zero.
	assert.GreaterOrEqual(t, delta.Trim(upoly.Rats).Degree(upoly.Rats), 0)
}

func TestParseRejectsUnknownIndeterminate(t *testing.T) {
	_, err := Parse("x + z")
	require.Error(t, err)
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	_, err := Parse("x + y )")
	require.Error(t, err)
}

func TestSearchHorizontalKeepsAugmentedCurveSquarefree(t *testing.T) {
	p := mustParse(t, "y*x^2 - 1")
	augmented, h, err := p.SearchHorizontal()
	require.NoError(t, err)
	assert.Equal(t, p.DegX()+1, augmented.DegX())
	assert.True(t, augmented.Gcd().DegX() <= 0)
	_ = h
}
