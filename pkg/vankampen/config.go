package vankampen

import (
	"github.com/shopspring/decimal"

	"github.com/zvk/vankampen/pkg/presentation"
)

// Config bundles the orthogonal knobs of spec.md §6, all with the
// documented defaults applied by the zero value via the accessor
// methods below (so a bare Config{} behaves like the spec's default
// configuration).
type Config struct {
	// MonodromyApprox selects the adaptive heuristic follower
	// (pkg/monodromy.Approximate) over the Sturm-certified one
	// (pkg/monodromy.Certified). Default false: certified.
	MonodromyApprox bool
	// NewtonLimit caps Newton iterations per root-finder call.
	// Default 800 (pkg/roots.DefaultNewtonLimit).
	NewtonLimit int
	// AdaptivityFactor is the approximate follower's step-size
	// heuristic. Default 10.
	AdaptivityFactor decimal.Decimal
	// ShrinkBraid requests the external braid-word shrinker before
	// the Hurwitz action is computed (useful for very long monodromy
	// words). No such shrinker ships in-repo; when true and none is
	// configured, braids pass through unshrunk with an info-level
	// trace message.
	ShrinkBraid bool
	// Safety is the minimum certified pairwise root separation
	// (pkg/roots.SeparateRoots's `safety` parameter, and the disk
	// scale factor of the certified follower).
	Safety decimal.Decimal
	// Verbosity: 0 silent, 1 per-segment progress, 2 per-step
	// diagnostics. Controls trace output only, never results.
	Verbosity int
	// Neighbours bounds the loop constructor's nearest-neighbour
	// fan-out (pkg/loopgraph.Config.Neighbours). 0 selects the
	// loop constructor's own default.
	Neighbours int
	// Simplifier post-processes the raw Hurwitz-quotient presentation
	// (spec.md §6's "presentation simplifier" external collaborator).
	// Nil selects presentation.IdentitySimplifier{}.
	Simplifier presentation.Simplifier
	// PolyLib is the "multivariate polynomial library" external
	// collaborator (spec.md §6). Nil selects defaultPolyLib{}
	// (pkg/bipoly).
	PolyLib MultivariatePolyLib
	// BraidLib is the "braid monoid" external collaborator
	// (spec.md §6). Nil selects defaultBraidLib{} (pkg/braid).
	BraidLib BraidMonoidLib
	// Numbers is the "exact number kernel" external collaborator
	// (spec.md §6). Nil selects defaultNumberKernel{} (pkg/cnum).
	Numbers NumberKernel
}

func (c Config) simplifier() presentation.Simplifier {
	if c.Simplifier != nil {
		return c.Simplifier
	}
	return presentation.IdentitySimplifier{}
}

func (c Config) polyLib() MultivariatePolyLib {
	if c.PolyLib != nil {
		return c.PolyLib
	}
	return defaultPolyLib{}
}

func (c Config) braidLib() BraidMonoidLib {
	if c.BraidLib != nil {
		return c.BraidLib
	}
	return defaultBraidLib{}
}

func (c Config) numbers() NumberKernel {
	if c.Numbers != nil {
		return c.Numbers
	}
	return defaultNumberKernel{}
}

func (c Config) newtonLimit() int {
	if c.NewtonLimit > 0 {
		return c.NewtonLimit
	}
	return 800
}

func (c Config) adaptivityFactor() decimal.Decimal {
	if c.AdaptivityFactor.IsZero() {
		return decimal.NewFromInt(10)
	}
	return c.AdaptivityFactor
}

func (c Config) safety() decimal.Decimal {
	if c.Safety.IsZero() {
		return decimal.New(1, -30)
	}
	return c.Safety
}
