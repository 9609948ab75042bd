package lbraid

import "errors"

// ErrSingularMonodromy is returned when two sheets have exactly the
// same real part at either endpoint, when the sheets crossing at one
// parameter do not form a contiguous block, or when the braid's end
// order disagrees with the real-part order at the far endpoint
// (spec.md §4.F). No desingularizing rotation is attempted first.
var ErrSingularMonodromy = errors.New("lbraid: singular monodromy, sheets coincide and cannot be desingularized")

// ErrStrandCountMismatch is returned when the start and end sheet
// position lists have different lengths.
var ErrStrandCountMismatch = errors.New("lbraid: start and end strand counts differ")
