package vankampen

import "errors"

// ErrEmptyCurve is returned when the parsed curve has no x-degree
// (i.e. Parse produced a polynomial in y alone).
var ErrEmptyCurve = errors.New("vankampen: curve has no x-degree")

// ErrMissingSnapshot is returned by Segments/Finish when the named
// <name>.prep file cannot be read.
var ErrMissingSnapshot = errors.New("vankampen: missing prepared snapshot, run Prepare first")

// ErrIncompleteSegments is returned by Finish when at least one
// <name>.seg.<i> file is missing, and by Segments when a requested
// segment index is out of range.
var ErrIncompleteSegments = errors.New("vankampen: one or more segments have not been computed yet")

// ErrSegmentChecksum is returned when a persisted segment's stored
// reflection length does not match its word (spec.md §6, the
// "integer reflection length for checksum" of the persistence
// layout).
var ErrSegmentChecksum = errors.New("vankampen: segment checksum mismatch")

// ErrCannotPerturbCriticalValue is returned when no small offset could
// be found whose diamond of four points around a critical value avoids
// every other regular-value degeneracy (spec.md §4.E's loop
// construction assumes such an offset always exists for a
// well-separated root set; this bounds the search rather than looping
// forever on a pathological one). It is also returned when a step of
// a spanning-tree path between two critical values has no matching
// segment in the loop plan.
var ErrCannotPerturbCriticalValue = errors.New("vankampen: could not find a safe offset around a critical value")

// ErrInconsistentSheetCount is returned when two points in the loop
// plan report a different number of fibre zeros, which should never
// happen once the curve is squarefree and every point avoids the
// discriminant.
var ErrInconsistentSheetCount = errors.New("vankampen: fibre sheet count is not consistent across the loop plan")
