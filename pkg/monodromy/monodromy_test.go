package monodromy

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/zvk/vankampen/pkg/bipoly"
	"github.com/zvk/vankampen/pkg/braid"
	"github.com/zvk/vankampen/pkg/cnum"
)

func mustParseCurve(t *testing.T, src string) bipoly.Poly {
	t.Helper()
	p, err := bipoly.Parse(src)
	require.NoError(t, err)
	return p
}

// The curve x^2 - y has two real sheets, x = ±sqrt(y), that never
// cross for y on [1,4]: this exercises the non-crossing path of both
// followers without needing a discriminant-avoiding path search.
func nonCrossingFixture(t *testing.T) (bipoly.Poly, cnum.Rat, cnum.Rat, []cnum.Rat, []cnum.Rat, braid.Monoid) {
	t.Helper()
	p := mustParseCurve(t, "x^2 - y")
	a := cnum.RatFromInt(1)
	b := cnum.RatFromInt(4)
	start := []cnum.Rat{cnum.RatFromInt(-1), cnum.RatFromInt(1)}
	end := []cnum.Rat{cnum.RatFromInt(-2), cnum.RatFromInt(2)}
	bn := braid.Monoid{Strands: 2}
	return p, a, b, start, end, bn
}

func TestApproximateFollowOnNonCrossingSegmentIsTrivial(t *testing.T) {
	p, a, b, start, end, bn := nonCrossingFixture(t)
	f := Approximate{AdaptivityFactor: decimal.NewFromInt(10), Safety: decimal.New(1, -20)}
	w, err := f.Follow(context.Background(), p, a, b, start, end, bn)
	require.NoError(t, err)
	require.True(t, w.Equal(bn.Identity()))
}

func TestCertifiedFollowOnNonCrossingSegmentIsTrivial(t *testing.T) {
	p, a, b, start, end, bn := nonCrossingFixture(t)
	f := Certified{Safety: decimal.New(1, -20)}
	w, err := f.Follow(context.Background(), p, a, b, start, end, bn)
	require.NoError(t, err)
	require.True(t, w.Equal(bn.Identity()))
}

func TestFitBijectionRejectsMismatchedLengths(t *testing.T) {
	_, err := fitBijection([]cnum.Rat{cnum.RatFromInt(0)}, []cnum.Rat{cnum.RatFromInt(0), cnum.RatFromInt(1)})
	require.ErrorIs(t, err, ErrFitAmbiguous)
}
