package braid

import "errors"

// ErrGeneratorOutOfRange describes a generator index outside
// {±1,...,±(Strands-1)}. Monoid.Generator does not return it; it
// returns nil for such an index.
var ErrGeneratorOutOfRange = errors.New("braid: generator index out of range")

// ErrEmptyBlock is returned by StarBraid when given an empty strand
// block.
var ErrEmptyBlock = errors.New("braid: star braid needs at least one strand")
