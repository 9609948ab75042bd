package vankampen

import (
	"github.com/zvk/vankampen/pkg/bipoly"
	"github.com/zvk/vankampen/pkg/braid"
	"github.com/zvk/vankampen/pkg/cnum"
	"github.com/zvk/vankampen/pkg/presentation"
	"github.com/zvk/vankampen/pkg/upoly"
)

// Result is the immutable output record of spec.md §3 "Result record
// R": curve, discriminant, roots, loop graph, fibres, per-loop
// monodromy braids and the final presentation. It is built exclusively
// through resultBuilder so that no caller can observe a partially
// populated value (spec.md §9's "immutable Result via builder" design
// note).
type Result struct {
	curve         bipoly.Poly
	discriminant  upoly.Poly[cnum.Rat]
	criticalVals  []cnum.Rat
	points        []cnum.Rat
	segments      [][2]int
	loops         [][]int
	basepoint     int
	zeros         [][]cnum.Rat
	strands       int
	braids        []braid.Word
	presentation  presentation.Presentation
}

func (r Result) Curve() bipoly.Poly                     { return r.curve }
func (r Result) Discriminant() upoly.Poly[cnum.Rat]      { return r.discriminant }
func (r Result) CriticalValues() []cnum.Rat              { return append([]cnum.Rat(nil), r.criticalVals...) }
func (r Result) Points() []cnum.Rat                      { return append([]cnum.Rat(nil), r.points...) }
func (r Result) Segments() [][2]int                      { return r.segments }
func (r Result) Loops() [][]int                          { return r.loops }
func (r Result) Basepoint() int                          { return r.basepoint }
func (r Result) Zeros(pointIdx int) []cnum.Rat           { return append([]cnum.Rat(nil), r.zeros[pointIdx]...) }
func (r Result) Strands() int                            { return r.strands }
func (r Result) Braids() []braid.Word                    { return r.braids }
func (r Result) Presentation() presentation.Presentation { return r.presentation }

// resultBuilder accumulates a Result's fields across the
// prepare/segments/finish pipeline and produces an immutable Result
// (spec.md §9's builder design note for a statically typed port of a
// language with mutable records). build returns whatever fields have
// been set so far; it does not check that every field was set.
type resultBuilder struct {
	r Result
}

func newResultBuilder() *resultBuilder { return &resultBuilder{} }

func (b *resultBuilder) withCurve(p bipoly.Poly) *resultBuilder {
	b.r.curve = p
	return b
}

func (b *resultBuilder) withDiscriminant(d upoly.Poly[cnum.Rat], critical []cnum.Rat) *resultBuilder {
	b.r.discriminant = d
	b.r.criticalVals = critical
	return b
}

func (b *resultBuilder) withLoopGraph(points []cnum.Rat, segs [][2]int, loops [][]int, basepoint int) *resultBuilder {
	b.r.points = points
	b.r.segments = segs
	b.r.loops = loops
	b.r.basepoint = basepoint
	return b
}

func (b *resultBuilder) withZeros(zeros [][]cnum.Rat, strands int) *resultBuilder {
	b.r.zeros = zeros
	b.r.strands = strands
	return b
}

func (b *resultBuilder) withBraids(braids []braid.Word) *resultBuilder {
	b.r.braids = braids
	return b
}

func (b *resultBuilder) withPresentation(p presentation.Presentation) *resultBuilder {
	b.r.presentation = p
	return b
}

func (b *resultBuilder) build() Result { return b.r }
