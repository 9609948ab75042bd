package sturm

import "errors"

// ErrNotPositiveAtStart is returned by PositiveUntil when p is already
// non-positive at t=0, so no positive interval exists to certify.
var ErrNotPositiveAtStart = errors.New("sturm: polynomial is not positive at the start of the interval")
