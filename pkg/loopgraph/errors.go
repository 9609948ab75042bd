package loopgraph

import "errors"

// ErrTooFewPoints is returned by Build when fewer than one root is
// supplied: there is nothing to loop around.
var ErrTooFewPoints = errors.New("loopgraph: need at least one root to build loops around")

// ErrDisconnected is returned if the spanning structure computed over
// the root set fails to reach every root, which would indicate a bug
// in the neighbour-graph construction rather than a property of the
// input curve.
var ErrDisconnected = errors.New("loopgraph: spanning tree does not reach every root")
