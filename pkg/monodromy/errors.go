package monodromy

import "errors"

// ErrAdaptivityExhausted is returned by Approximate.Follow when the
// heuristic step size has been halved past a usable floor without
// ever satisfying the adaptivity bound (spec.md §4.G step 3).
var ErrAdaptivityExhausted = errors.New("monodromy: adaptive step size exhausted before segment could be followed")

// ErrFitAmbiguous is returned when the final re-indexing of the
// followed fibre against the stored endpoint fibre is not a clean
// closest-point bijection (spec.md §4.G, the "fit" step).
var ErrFitAmbiguous = errors.New("monodromy: final fibre does not fit the stored endpoint fibre by a closest-point bijection")

// ErrNonSeparable is returned by Certified.Follow when the Sturm
// certification primitive cannot certify any forward progress for a
// tracked strand (spec.md §4.H, "failure modes").
var ErrNonSeparable = errors.New("monodromy: certified follower could not certify progress for a tracked root")
