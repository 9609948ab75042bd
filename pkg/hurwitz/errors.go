package hurwitz

import "errors"

// ErrEmptyBraidList is returned when the quotient is asked to work
// with a non-positive strand count.
var ErrEmptyBraidList = errors.New("hurwitz: no strands to quotient over")
