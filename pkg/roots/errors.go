package roots

import "errors"

// ErrDidNotConverge is returned by NewtonRoot when the iteration limit
// is reached without the residual dropping below eps.
var ErrDidNotConverge = errors.New("roots: Newton iteration did not converge")

// ErrDegenerateStart is returned when Newton's method is started at (or
// lands on) a point where the polynomial's derivative vanishes.
var ErrDegenerateStart = errors.New("roots: derivative vanished during Newton iteration")

// ErrConstantPolynomial is returned when asked to separate the roots of
// a polynomial of degree <= 0.
var ErrConstantPolynomial = errors.New("roots: polynomial has no roots to separate")

// ErrRootsNotSeparated is returned by SeparateRoots/SeparateRootsInitialGuess
// when two distinct roots converge closer together than the requested
// safety margin, so the dispersal of the resulting root set cannot be
// certified (spec.md §3 "dispersal(R)").
var ErrRootsNotSeparated = errors.New("roots: roots are not separated by the requested safety margin")
