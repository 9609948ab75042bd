package upoly

import "errors"

// ErrNotSquarefree is returned when a polynomial shares a non-trivial
// factor with its derivative (spec.md §7).
var ErrNotSquarefree = errors.New("upoly: polynomial is not squarefree")

// ErrInexactDivision is returned by ExactDiv when the divisor does not
// divide the dividend evenly.
var ErrInexactDivision = errors.New("upoly: division has non-zero remainder")

// ErrZeroDivisor is returned when dividing by the zero polynomial.
var ErrZeroDivisor = errors.New("upoly: division by the zero polynomial")
