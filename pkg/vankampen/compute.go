package vankampen

import (
	"context"

	"github.com/zvk/vankampen/pkg/braid"
	"github.com/zvk/vankampen/pkg/hurwitz"
	"github.com/zvk/vankampen/pkg/presentation"
)

// Compute runs the whole prepare/segments/finish pipeline in memory,
// without touching disk, for callers that do not need the
// concurrency-friendly persisted split of spec.md §5 (a single curve,
// computed start to finish in one call).
func Compute(ctx context.Context, curveSrc string, cfg Config) (Result, error) {
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	default:
	}
	snap, err := prepare(curveSrc, cfg)
	if err != nil {
		return Result{}, err
	}

	f := follower(cfg)
	bn := cfg.braidLib().New(snap.Strands)
	segWords := make([]braid.Word, len(snap.Segments))
	for i, s := range snap.Segments {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}
		a, b := snap.Points[s[0]], snap.Points[s[1]]
		w, err := f.Follow(ctx, snap.Curve, a, b, snap.Zeros[s[0]], snap.Zeros[s[1]], bn)
		if err != nil {
			return Result{}, err
		}
		segWords[i] = w
	}

	braids := make([]braid.Word, len(snap.Loops))
	for i, loop := range snap.Loops {
		braids[i] = loopBraid(bn, segWords, loop)
	}
	if cfg.ShrinkBraid {
		tracer().Infof("vankampen: ShrinkBraid requested but no external braid-word shrinker is configured; passing %d braids through unshrunk", len(braids))
	}

	var pres presentation.Presentation
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
