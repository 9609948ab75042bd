// Package presentation holds the finitely-presented-group output of
// the Hurwitz quotient (spec.md §4.I/§5, the "Van Kampen
// presentation") and the external "presentation simplifier"
// collaborator boundary named in spec.md §6.
package presentation

import (
	"fmt"

	"github.com/zvk/vankampen/pkg/freegroup"
)

// Presentation is a finitely-presented group ⟨Generators | Relators⟩,
// each relator a freegroup.Word understood to equal the identity.
type Presentation struct {
	Generators []string
	Relators   []freegroup.Word
}

// String renders the presentation in the usual ⟨...|...⟩ notation,
// useful for CLI output and test failure messages.
func (pr Presentation) String() string {
	s := "⟨"
	for i, g := range pr.Generators {
		if i > 0 {
			s += ", "
		}
		s += g
	}
	s += " | "
	for i, r := range pr.Relators {
		if i > 0 {
			s += ", "
		}
		s += wordString(pr.Generators, r)
	}
	return s + "⟩"
}

func wordString(gens []string, w freegroup.Word) string {
	if len(w) == 0 {
		return "1"
	}
	s := ""
	for i, g := range w {
		if i > 0 {
			s += " "
		}
		name := fmt.Sprintf("f%d", g)
		idx := g
		if idx < 0 {
			idx = -idx
		}
		if idx-1 < len(gens) {
			name = gens[idx-1]
			if g < 0 {
				name += "⁻¹"
			}
		}
		s += name
	}
	return s
}

// Simplifier is the external "Tietze transformation" collaborator
// named in spec.md §6: it is handed the raw Hurwitz-quotient
// presentation and returns an equivalent, hopefully smaller one.
type Simplifier interface {
	Simplify(Presentation) (Presentation, error)
}

// IdentitySimplifier is the default adapter: it performs no
// simplification, returning its input unchanged. Wiring a real Tietze
// simplifier is outside this engine's scope (spec.md §1 Non-goals).
type IdentitySimplifier struct{}

// Simplify returns pr unchanged.
func (IdentitySimplifier) Simplify(pr Presentation) (Presentation, error) {
	tracer().Debugf("presentation: identity simplifier, %d generators, %d relators", len(pr.Generators), len(pr.Relators))
	return pr, nil
}
