package vankampen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zvk/vankampen/pkg/freegroup"
)

// generatorsTouched returns the set of generator indices (by absolute
// value) a relator actually mentions, ignoring sign.
func generatorsTouched(w freegroup.Word) map[int]bool {
	out := make(map[int]bool, len(w))
	for _, g := range w {
		if g < 0 {
			g = -g
		}
		out[g] = true
	}
	return out
}

// TestComputeOnVerticalLinesProducesFreeGroup checks the simplest
// possible case from spec.md §8: x^2-1 is two disjoint vertical lines,
// whose complement has a free fundamental group on two generators with
// trivial monodromy (no two lines ever cross as y varies), so every
// relator should reduce to the identity word.
func TestComputeOnVerticalLinesProducesFreeGroup(t *testing.T) {
	res, err := Compute(context.Background(), "x^2 - 1", Config{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Strands())
	assert.Len(t, res.Presentation().Generators, 2)
	for _, r := range res.Presentation().Relators {
		assert.Empty(t, r, "expected trivial relator for a non-crossing curve, got %v", r)
	}
}

// TestComputeOnCuspProducesOneRelator exercises a curve with an actual
// critical point (spec.md §8's cusp x^2-y^3): one critical value, one
// loop, hence exactly one generator loop contributing relators. Per
// hurwitz.VKQuotient, the raw presentation carries one relator per
// (braid, generator) pair, so a single cusp braid over 2 strands
// yields exactly 2 relators (the trefoil relation aba=bab expressed
// once from each generator's point of view), both touching both
// generators since the cusp's local braid entangles the whole fibre.
func TestComputeOnCuspProducesOneBraidAndTwoRelators(t *testing.T) {
	res, err := Compute(context.Background(), "x^2 - y^3", Config{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Strands())
	assert.Len(t, res.Braids(), 1)
	assert.Len(t, res.CriticalValues(), 1)

	pres := res.Presentation()
	assert.Len(t, pres.Generators, 2)
	assert.Len(t, pres.Relators, res.Strands()*len(res.Braids()))
	for _, r := range pres.Relators {
		assert.NotEmpty(t, r, "a cusp's local braid moves every sheet, so no relator should be trivial")
		assert.Len(t, generatorsTouched(r), 2, "the cusp entangles both sheets in every relator")
	}
}

// TestComputeOnThreeLinesIsMonicAndConnected exercises a configuration
// whose only critical value is a triple collision of sheets (spec.md
// §8's three concurrent lines).
// All three lines meet only at the origin, so there is a single
// critical value whose local star braid entangles all three sheets,
// giving 3 relators (one per generator, the raw form of the cyclic
// relation cab=abc=bca). A star braid built from adjacent
// transpositions need not touch all three generators in every single
// relator — e.g. a sheet that returns to its starting slot after the
// braid still picks up a nontrivial relator, but one naming only the
// two generators either side of it — so the assertion that matters is
// that no relator degenerates to the identity, and that collectively
// the three relators still mention every generator.
func TestComputeOnThreeLinesIsMonicAndConnected(t *testing.T) {
	res, err := Compute(context.Background(), "(x+y)*(x-y)*(x+2*y)", Config{})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Strands())
	assert.NotEmpty(t, res.Loops())
	assert.Len(t, res.CriticalValues(), 1, "all three lines cross only at the origin")

	pres := res.Presentation()
	assert.Len(t, pres.Generators, 3)
	assert.Len(t, pres.Relators, res.Strands()*len(res.Braids()))
	seen := map[int]bool{}
	for _, r := range pres.Relators {
		assert.NotEmpty(t, r, "the triple crossing at the origin moves every sheet")
		for g := range generatorsTouched(r) {
			seen[g] = true
		}
	}
	assert.Len(t, seen, 3, "across all relators the triple crossing must mention every generator")
}

// TestComputeOnNonGenericArrangementHasTwoCrossings exercises spec.md
// §8's scenario 4, x(x-1)(x-y): unlike the three concurrent lines
// above, the three sheets 0, 1, y collide pairwise at two distinct
// critical values (y=0, where the y-sheet meets the 0-sheet, and y=1,
// where it meets the 1-sheet), never all three at once. So the raw
// presentation carries 2 braids worth of relators rather than scenario
// 2's single triple-collision braid.
func TestComputeOnNonGenericArrangementHasTwoCrossings(t *testing.T) {
	res, err := Compute(context.Background(), "x*(x-1)*(x-y)", Config{})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Strands())
	assert.Len(t, res.CriticalValues(), 2, "the y-sheet crosses sheet 0 at y=0 and sheet 1 at y=1, separately")

	pres := res.Presentation()
	assert.Len(t, pres.Generators, 3)
	assert.Len(t, pres.Relators, res.Strands()*len(res.Braids()))
}

// TestComputeOnTacnodeVariantMatchesCuspShape exercises spec.md §8's
// scenario 5, x^3-y^2: projecting the same cuspidal curve through the
// other variable gives a degree-3 cover with a single critical value
// at y=0 where all three sheets collide via the same star-braid
// construction as the three-lines case above, so the raw presentation
// has the same shape: 3 relators, none trivial, collectively
// mentioning every generator.
func TestComputeOnTacnodeVariantMatchesCuspShape(t *testing.T) {
	res, err := Compute(context.Background(), "x^3 - y^2", Config{})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Strands())
	assert.Len(t, res.CriticalValues(), 1)

	pres := res.Presentation()
	assert.Len(t, pres.Generators, 3)
	assert.Len(t, pres.Relators, res.Strands()*len(res.Braids()))
	seen := map[int]bool{}
	for _, r := range pres.Relators {
		assert.NotEmpty(t, r)
		for g := range generatorsTouched(r) {
			seen[g] = true
		}
	}
	assert.Len(t, seen, 3)
}

// TestComputeOnTwoDisjointCirclesKeepsGeneratorsSeparate exercises
// spec.md §8's scenario 6, (x^2+y^2-1)(x^2+y^2-4): two disjoint smooth
// conics never share a root, so the two factors' discriminants never
// coincide and every one of the four critical values (y=±1 for the
// inner circle, y=±2 for the outer one) comes from exactly one factor
// — the structural precondition for the commuting ℤ×ℤ fundamental
// group spec.md claims for this curve.
func TestComputeOnTwoDisjointCirclesKeepsGeneratorsSeparate(t *testing.T) {
	res, err := Compute(context.Background(), "(x^2+y^2-1)*(x^2+y^2-4)", Config{})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Strands())
	assert.Len(t, res.CriticalValues(), 4, "y=-2,-1,1,2: each factor's own two branch points, never shared")

	pres := res.Presentation()
	assert.Len(t, pres.Generators, 4)
	assert.Len(t, pres.Relators, res.Strands()*len(res.Braids()))
}

// TestComputeOnNonMonicCurveUsesTrivializingLine exercises the
// non-monic branch of spec.md §6/§9: y*x^2-1 is not monic in x (its
// x^2 coefficient is y, not a constant), so Compute must call
// bipoly.SearchHorizontal and run the DBVKQuotient presentation
// builder, yielding one extra generator per braid.
func TestComputeOnNonMonicCurveUsesTrivializingLine(t *testing.T) {
	res, err := Compute(context.Background(), "y*x^2 - 1", Config{})
	require.NoError(t, err)
	// The augmented curve carries one more sheet than the original.
	assert.Greater(t, res.Strands(), 2)
	assert.GreaterOrEqual(t, len(res.Presentation().Generators), res.Strands())
}

// TestComputeRejectsCurveWithNoXDegree guards spec.md §7's input
// validation for a curve that degenerates to a pure y-polynomial.
func TestComputeRejectsCurveWithNoXDegree(t *testing.T) {
	_, err := Compute(context.Background(), "y - 1", Config{})
	require.Error(t, err)
}

// TestComputeApproximateAndCertifiedAgreeOnCusp checks that both
// monodromy followers (spec.md §4.G and §4.H) reconstruct the same
// strand count and loop count for the same curve, even though they
// reach their answers by different certification strategies.
func TestComputeApproximateAndCertifiedAgreeOnCusp(t *testing.T) {
	certified, err := Compute(context.Background(), "x^2 - y^3", Config{})
	require.NoError(t, err)
	approx, err := Compute(context.Background(), "x^2 - y^3", Config{MonodromyApprox: true})
	require.NoError(t, err)
	assert.Equal(t, certified.Strands(), approx.Strands())
	assert.Equal(t, len(certified.Braids()), len(approx.Braids()))
}
