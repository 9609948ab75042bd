package freegroup

import "errors"

// ErrGeneratorOutOfRange describes a generator index outside
// {±1,...,±Rank}. Group.Generator does not return it; it logs the
// index and returns nil.
var ErrGeneratorOutOfRange = errors.New("freegroup: generator index out of range")

// ErrWrongWordCount is returned by Hurwitz when the supplied tuple of
// words does not have exactly Rank entries.
var ErrWrongWordCount = errors.New("freegroup: Hurwitz action needs exactly Rank words")

// ErrBraidGeneratorOutOfRange is returned by Hurwitz when a braid
// generator references a strand pair outside the tuple.
var ErrBraidGeneratorOutOfRange = errors.New("freegroup: braid generator references a strand outside the word tuple")
