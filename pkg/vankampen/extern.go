package vankampen

import (
	"github.com/zvk/vankampen/pkg/bipoly"
	"github.com/zvk/vankampen/pkg/braid"
	"github.com/zvk/vankampen/pkg/cnum"
	"github.com/zvk/vankampen/pkg/presentation"
	"github.com/zvk/vankampen/pkg/upoly"
)

// MultivariatePolyLib is the "multivariate polynomial library"
// external collaborator of spec.md §1/§6: gcd, discriminant,
// derivative, exact division, substitution. pkg/bipoly is this
// engine's in-repo default adapter.
type MultivariatePolyLib interface {
	Squarefree(p bipoly.Poly) (bipoly.Poly, error)
	Discriminant(p bipoly.Poly) (upoly.Poly[cnum.Rat], bipoly.Poly, error)
	Derivative(p bipoly.Poly) bipoly.Poly
	AtY(p bipoly.Poly, y cnum.Rat) upoly.Poly[cnum.Rat]
}

// defaultPolyLib wires pkg/bipoly's methods as the default
// MultivariatePolyLib adapter.
type defaultPolyLib struct{}

func (defaultPolyLib) Squarefree(p bipoly.Poly) (bipoly.Poly, error) { return p.Squarefree() }

func (defaultPolyLib) Discriminant(p bipoly.Poly) (upoly.Poly[cnum.Rat], bipoly.Poly, error) {
	return p.Discriminant()
}

func (defaultPolyLib) Derivative(p bipoly.Poly) bipoly.Poly { return p.DX() }

func (defaultPolyLib) AtY(p bipoly.Poly, y cnum.Rat) upoly.Poly[cnum.Rat] { return p.AtY(y) }

// BraidMonoidLib is the "braid monoid" external collaborator of
// spec.md §6: constructor B(n), generators, group operations,
// equality. pkg/braid is the in-repo default adapter.
type BraidMonoidLib interface {
	New(n int) braid.Monoid
	Generator(m braid.Monoid, i int) braid.Word
	Mul(w, other braid.Word) braid.Word
	Equal(w, other braid.Word) bool
}

type defaultBraidLib struct{}

func (defaultBraidLib) New(n int) braid.Monoid                     { return braid.Monoid{Strands: n} }
func (defaultBraidLib) Generator(m braid.Monoid, i int) braid.Word { return m.Generator(i) }
func (defaultBraidLib) Mul(w, other braid.Word) braid.Word         { return w.Mul(other) }
func (defaultBraidLib) Equal(w, other braid.Word) bool             { return w.Equal(other) }

// PresentationSimplifier is the "free-group / presentation library"
// external collaborator of spec.md §6; presentation.Simplifier (and
// its no-op default, presentation.IdentitySimplifier) is the in-repo
// default adapter.
type PresentationSimplifier = presentation.Simplifier

// NumberKernel is the "exact number kernel" external collaborator of
// spec.md §6: rationals, big integers, cyclotomic field ℚ(E(n)).
// pkg/cnum is the in-repo default adapter.
type NumberKernel interface {
	Zero() cnum.Rat
	One() cnum.Rat
	RootOfUnity(n, k int) cnum.Rat
}

type defaultNumberKernel struct{}

func (defaultNumberKernel) Zero() cnum.Rat                { return cnum.Zero() }
func (defaultNumberKernel) One() cnum.Rat                 { return cnum.One() }
func (defaultNumberKernel) RootOfUnity(n, k int) cnum.Rat { return cnum.E(n, k) }
