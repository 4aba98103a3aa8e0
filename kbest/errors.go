package kbest

import "errors"

// ErrGraphNotConnected is returned by Solve when the graph's unconstrained
// MST is infeasible: the graph has edges, but no spanning tree covers all
// of its vertices. A graph with no edges is not reported this way; Solve
// returns an empty result for it.
// This is the only error Solve ever returns; every other infeasible
// partition encountered during the search is expected control flow and is
// simply dropped.
var ErrGraphNotConnected = errors.New("kbest: graph is not connected")
