// Package hurwitz turns a list of monodromy braids into a Van Kampen
// presentation of π₁(ℂ²−C) via the Hurwitz action of spec.md §4.I.
package hurwitz

import (
	"fmt"

	"github.com/zvk/vankampen/pkg/braid"
	"github.com/zvk/vankampen/pkg/freegroup"
	"github.com/zvk/vankampen/pkg/presentation"
)

// VKQuotient builds the monic-case Van Kampen presentation: generators
// f_1,...,f_n (one per sheet) and, for every monodromy braid β_i and
// every generator f_j, the relator φ_i(f_j)·f_j⁻¹ where φ_i is the
// Hurwitz action of β_i (spec.md §4.I).
func VKQuotient(braids []braid.Word, strands int) (presentation.Presentation, error) {
	if strands <= 0 {
		return presentation.Presentation{}, ErrEmptyBraidList
	}
	g := freegroup.Group{Rank: strands}
	gens := make([]string, strands)
	base := make([]freegroup.Word, strands)
	for i := range base {
		gens[i] = fmt.Sprintf("f%d", i+1)
		base[i] = g.Generator(i + 1)
	}
	var relators []freegroup.Word
	for _, b := range braids {
		acted, err := g.Hurwitz(b, base)
		if err != nil {
			return presentation.Presentation{}, err
		}
		for j := range base {
			relators = append(relators, acted[j].Mul(base[j].Inverse()))
		}
	}
	tracer().Debugf("hurwitz: VKQuotient produced %d generators, %d relators from %d braids", strands, len(relators), len(braids))
	return presentation.Presentation{Generators: gens, Relators: relators}, nil
}

// NonMonicInput carries the pieces of a prepared curve that
// DBVKQuotient needs: the monodromy braids, strand count, and
// basepoint sheet index of a curve that required a trivializing
// horizontal line to become monic in x (spec.md §4.I, non-monic
// case). It is a narrow, hurwitz-local view of vankampen.Result
// rather than that type itself, since pkg/vankampen is the caller of
// this package and importing it back here would cycle; pkg/vankampen
// builds a NonMonicInput from its own Result before calling in.
type NonMonicInput struct {
	Braids    []braid.Word
	Strands   int
	Basepoint int // 1-based sheet index identified with the added line
}

// DBVKQuotient builds the non-monic-case presentation: one extra
// generator g_i per monodromy braid accounting for loops crossing the
// added trivializing line, relators φ_i(f_j)·g_i·f_j⁻¹·g_i⁻¹, plus the
// relation f_basepoint = 1 quotienting out the added line
// (spec.md §4.I).
func DBVKQuotient(r NonMonicInput) (presentation.Presentation, error) {
	if r.Strands <= 0 {
		return presentation.Presentation{}, ErrEmptyBraidList
	}
	g := freegroup.Group{Rank: r.Strands}
	gens := make([]string, r.Strands)
	base := make([]freegroup.Word, r.Strands)
	for i := range base {
		gens[i] = fmt.Sprintf("f%d", i+1)
		base[i] = g.Generator(i + 1)
	}
	extraGens := make([]string, len(r.Braids))
	var relators []freegroup.Word
	for bi, b := range r.Braids {
		extraGens[bi] = fmt.Sprintf("g%d", bi+1)
		gi := freegroup.Word{r.Strands + bi + 1}
		acted, err := g.Hurwitz(b, base)
		if err != nil {
			return presentation.Presentation{}, err
		}
		for j := range base {
			relators = append(relators, acted[j].Mul(gi).Mul(base[j].Inverse()).Mul(gi.Inverse()))
		}
	}
	if r.Basepoint >= 1 && r.Basepoint <= r.Strands {
		relators = append(relators, base[r.Basepoint-1])
	}
	allGens := append(append([]string(nil), gens...), extraGens...)
	tracer().Debugf("hurwitz: DBVKQuotient produced %d generators, %d relators", len(allGens), len(relators))
	return presentation.Presentation{Generators: allGens, Relators: relators}, nil
}
