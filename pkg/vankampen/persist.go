package vankampen

import (
	"context"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/zvk/vankampen/pkg/bipoly"
	"github.com/zvk/vankampen/pkg/braid"
	"github.com/zvk/vankampen/pkg/cnum"
	"github.com/zvk/vankampen/pkg/hurwitz"
	"github.com/zvk/vankampen/pkg/loopgraph"
	"github.com/zvk/vankampen/pkg/monodromy"
	"github.com/zvk/vankampen/pkg/presentation"
	"github.com/zvk/vankampen/pkg/roots"
	"github.com/zvk/vankampen/pkg/upoly"
)

// preparedSnapshot is the gob-serializable payload of <name>.prep
// (spec.md §6's persistence layout). It deliberately holds only types
// defined in this module, never the float-geometry loopgraph.Graph
// itself, so the snapshot format does not depend on the internal field
// visibility of a third-party geometry package.
type preparedSnapshot struct {
	Curve             bipoly.Poly
	AugmentedForMonic bool
	AddedLineHeight   cnum.Rat
	Discriminant      upoly.Poly[cnum.Rat]
	CriticalVals      []cnum.Rat
	Points            []cnum.Rat
	Segments          [][2]int
	Loops             [][]int
	Basepoint         int
	Zeros             [][]cnum.Rat
	Strands           int
	BasepointSheet    int // 1-based; 0 when the curve was already monic
}

// segSnapshot is the gob-serializable payload of <name>.seg.<i>.
// ReflectionLength is the word's generator count, stored alongside the
// word itself as a cheap corruption checksum (spec.md §6's "integer
// reflection length for checksum"); it is not a genuine Garside normal
// form, which this engine does not implement.
type segSnapshot struct {
	Word             braid.Word
	ReflectionLength int
}

func prepPath(name string) string    { return name + ".prep" }
func segPath(name string, i int) string { return fmt.Sprintf("%s.seg.%d", name, i) }

func writeGob(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(v)
}

func readGob(path string, v interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewDecoder(f).Decode(v)
}

// prepare runs the curve-to-loop-plan pipeline shared by Prepare and
// Compute: parse, repair squarefreeness, trivialize if non-monic,
// discriminant, critical values, loop plan, fibres.
func prepare(curveSrc string, cfg Config) (preparedSnapshot, error) {
	lib := cfg.polyLib()
	numbers := cfg.numbers()

	p, err := bipoly.Parse(curveSrc)
	if err != nil {
		return preparedSnapshot{}, err
	}
	if p.DegX() <= 0 {
		return preparedSnapshot{}, ErrEmptyCurve
	}
	p, err = repairCurve(lib, p)
	if err != nil {
		return preparedSnapshot{}, err
	}

	augmented := false
	addedHeight := numbers.Zero()
	if !p.IsMonicInX() {
		aug, h, err := p.SearchHorizontal()
		if err != nil {
			return preparedSnapshot{}, err
		}
		p, addedHeight, augmented = aug, h, true
	}

	disc, _, err := lib.Discriminant(p)
	if err != nil {
		return preparedSnapshot{}, err
	}

	// A discriminant with no y-degree at all is identically a non-zero
	// constant (the curve has no critical values anywhere: it is an
	// unbranched cover), so there is nothing to loop around and the
	// presentation is simply free on one generator per sheet.
	var criticalVals []cnum.Rat
	var plan loopPlan
	if disc.Degree(upoly.Rats) > 0 {
		criticalVals, err = roots.SeparateRoots(disc, cfg.safety(), cfg.newtonLimit())
		if err != nil {
			return preparedSnapshot{}, err
		}
	}
	if len(criticalVals) == 0 {
		plan = loopPlan{points: []cnum.Rat{numbers.Zero()}, basepoint: 0}
	} else {
		skeleton, err := loopgraph.Build(criticalVals, loopgraph.Config{Neighbours: cfg.Neighbours})
		if err != nil {
			return preparedSnapshot{}, err
		}
		plan, err = buildLoopPlan(numbers, skeleton, criticalVals, disc)
		if err != nil {
			return preparedSnapshot{}, err
		}
	}
	zeros, strands, err := computeFibres(lib, p, plan.points, cfg.safety(), cfg.newtonLimit())
	if err != nil {
		return preparedSnapshot{}, err
	}

	basepointSheet := 0
	if augmented {
		for idx, z := range zeros[plan.basepoint] {
			if z.Equal(addedHeight) {
				basepointSheet = idx + 1
				break
			}
		}
	}

	return preparedSnapshot{
		Curve:             p,
		AugmentedForMonic: augmented,
		AddedLineHeight:   addedHeight,
		Discriminant:      disc,
		CriticalVals:      criticalVals,
		Points:            plan.points,
		Segments:          plan.segments,
		Loops:             plan.loops,
		Basepoint:         plan.basepoint,
		Zeros:             zeros,
		Strands:           strands,
		BasepointSheet:    basepointSheet,
	}, nil
}

// Prepare runs the curve-to-loop-plan pipeline (spec.md §4.A-E) and
// writes <name>.prep, per spec.md §5's prepare/segments/finish
// concurrency-friendly split: many workers can later claim disjoint
// segment ranges from this single snapshot.
func Prepare(ctx context.Context, curveSrc, name string, cfg Config) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	snap, err := prepare(curveSrc, cfg)
	if err != nil {
		return err
	}
	return writeGob(prepPath(name), &snap)
}

func follower(cfg Config) monodromy.Follower {
	if cfg.MonodromyApprox {
		return monodromy.Approximate{AdaptivityFactor: cfg.adaptivityFactor(), Safety: cfg.safety()}
	}
	return monodromy.Certified{Safety: cfg.safety()}
}

// Segments computes and persists one <name>.seg.<i> per segment index
// in rng (or every segment, if rng is empty), per spec.md §5: each
// segment's monodromy braid depends only on the curve and the fibres
// at its two endpoints, so independent workers can compute disjoint
// ranges in parallel.
func Segments(ctx context.Context, name string, rng []int, cfg Config) error {
	var snap preparedSnapshot
	if err := readGob(prepPath(name), &snap); err != nil {
		return ErrMissingSnapshot
	}
	indices := rng
	if len(indices) == 0 {
		indices = make([]int, len(snap.Segments))
		for i := range indices {
			indices[i] = i
		}
	}
	f := follower(cfg)
	bn := cfg.braidLib().New(snap.Strands)
	for _, i := range indices {
		if i < 0 || i >= len(snap.Segments) {
			return ErrIncompleteSegments
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		s := snap.Segments[i]
		a, b := snap.Points[s[0]], snap.Points[s[1]]
		word, err := f.Follow(ctx, snap.Curve, a, b, snap.Zeros[s[0]], snap.Zeros[s[1]], bn)
		if err != nil {
			return err
		}
		out := segSnapshot{Word: word, ReflectionLength: len(word)}
		if err := writeGob(segPath(name, i), &out); err != nil {
			return err
		}
	}
	return nil
}

func loopBraid(bn braid.Monoid, segWords []braid.Word, loop []int) braid.Word {
	word := bn.Identity()
	for _, signed := range loop {
		idx := signed
		reversed := false
		if idx < 0 {
			idx, reversed = -idx, true
		}
		w := segWords[idx-1]
		if reversed {
			w = w.Inverse()
		}
		word = word.Mul(w)
	}
	return word
}

// Finish reads the prepared snapshot and every computed segment,
// composes each loop's braid, runs the Hurwitz quotient (monic or
// non-monic, depending on whether Prepare needed a trivializing line),
// simplifies the resulting presentation, and returns the assembled
// Result (spec.md §4.I, §5's final "finish" phase).
func Finish(ctx context.Context, name string, cfg Config) (Result, error) {
	var snap preparedSnapshot
	if err := readGob(prepPath(name), &snap); err != nil {
		return Result{}, ErrMissingSnapshot
	}
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	default:
	}
	segWords := make([]braid.Word, len(snap.Segments))
	for i := range snap.Segments {
		var seg segSnapshot
		if err := readGob(segPath(name, i), &seg); err != nil {
			return Result{}, ErrIncompleteSegments
		}
		if seg.ReflectionLength != len(seg.Word) {
			return Result{}, ErrSegmentChecksum
		}
		segWords[i] = seg.Word
	}

	bn := cfg.braidLib().New(snap.Strands)
	braids := make([]braid.Word, len(snap.Loops))
	for i, loop := range snap.Loops {
		braids[i] = loopBraid(bn, segWords, loop)
	}
	if cfg.ShrinkBraid {
		tracer().Infof("vankampen: ShrinkBraid requested but no external braid-word shrinker is configured; passing %d braids through unshrunk", len(braids))
	}

	var pres presentation.Presentation
	var err error
	if snap.AugmentedForMonic {
		pres, err = hurwitz.DBVKQuotient(hurwitz.NonMonicInput{
			Braids:    braids,
			Strands:   snap.Strands,
			Basepoint: snap.BasepointSheet,
		})
	} else {
		pres, err = hurwitz.VKQuotient(braids, snap.Strands)
	}
	if err != nil {
		return Result{}, err
	}
	pres, err = cfg.simplifier().Simplify(pres)
	if err != nil {
		return Result{}, err
	}

	return newResultBuilder().
		withCurve(snap.Curve).
		withDiscriminant(snap.Discriminant, snap.CriticalVals).
		withLoopGraph(snap.Points, snap.Segments, snap.Loops, snap.Basepoint).
		withZeros(snap.Zeros, snap.Strands).
		withBraids(braids).
		withPresentation(pres).
		build(), nil
}
