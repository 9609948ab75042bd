package sturm

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zvk/vankampen/pkg/upoly"
)

func dpoly(coeffs ...float64) upoly.Poly[decimal.Decimal] {
	out := make([]decimal.Decimal, len(coeffs))
	for i, c := range coeffs {
		out[i] = decimal.NewFromFloat(c)
	}
	return upoly.Poly[decimal.Decimal]{Coeffs: out}
}

func TestPositiveUntilStaysBelowFirstRoot(t *testing.T) {
	// p(t) = 2 - t has a root at t=2.
	p := dpoly(2, -1)
	s, err := PositiveUntil(p, decimal.NewFromInt(5), 20)
	require.NoError(t, err)
	f, _ := s.Float64()
	assert.Less(t, f, 2.0)
	assert.Greater(t, f, 1.9)
}

func TestPositiveUntilReturnsFullIntervalWhenNoRoot(t *testing.T) {
	// p(t) = 1 (no roots at all).
	p := dpoly(1)
	s, err := PositiveUntil(p, decimal.NewFromInt(5), 20)
	require.NoError(t, err)
	assert.True(t, s.Equal(decimal.NewFromInt(5)))
}

func TestPositiveUntilRejectsNonPositiveStart(t *testing.T) {
	p := dpoly(-1)
	_, err := PositiveUntil(p, decimal.NewFromInt(5), 20)
	require.ErrorIs(t, err, ErrNotPositiveAtStart)
}
