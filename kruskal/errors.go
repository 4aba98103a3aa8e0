package kruskal

import "errors"

// ErrInfeasible signals that a partition's constraints cannot produce a
// spanning tree: after scanning every edge, more than one component remains.
//
// This is a control-flow signal, not a user-facing error: package kbest
// consumes it directly within its search loop and it must never propagate
// past kbest.Solve.
var ErrInfeasible = errors.New("kruskal: constrained graph has no spanning tree")
