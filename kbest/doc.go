// Package kbest implements the partition method for K-best spanning-tree
// enumeration: given a connected, weighted, undirected graph, Solve produces
// every spanning tree exactly once, sorted by ascending total weight.
//
// What & why
//
//   - What is the partition method?
//     Starting from the graph's unconstrained MST, the search space of
//     remaining spanning trees is split into disjoint subspaces ("partitions"),
//     each a vector of per-edge IN/OUT/FREE constraints (see package
//     kruskal). Every spanning tree distinct from a partition's own MST is
//     assigned to exactly one child partition: the one that forbids the
//     smallest-indexed tree edge absent from that spanning tree, while
//     pinning (forcing IN) every tree edge of smaller index. This is what
//     guarantees completeness (every tree is reachable) and uniqueness (no
//     tree is reachable from two different partitions).
//
//   - Why a priority queue over partitions:
//     Exploring partitions in ascending-cost order means the very first
//     partition popped after the root is already the second-cheapest
//     spanning tree overall, and so on. Results, however, are appended when
//     each child is built, not when it is popped, so they are not in cost
//     order until the final stable sort by cost.
//
// Algorithm (a sort-once-scan-once shape lifted from a single MST
// computation to a frontier of them):
//
//  1. If V == 0 or E == 0, return an empty result.
//  2. Run BuildMST with all edges FREE. Infeasible means the graph itself is
//     disconnected: return ErrGraphNotConnected.
//  3. Push that initial partition into both the frontier and the results.
//  4. While the frontier is non-empty: pop the cheapest partition P; let its
//     tree edges (ascending index) be t_0 < t_1 < ... For each x where
//     P.Choices[t_x] == Free, build a child that sets t_x to OUT and pins
//     every t_y (y < x) to IN. Feasible children are pushed into the
//     frontier and appended to results; infeasible ones are dropped
//     silently — that is expected control flow, not an error.
//  5. Stably sort results by ascending Cost and return.
//
// Concurrency: Solve is synchronous and single-threaded; it owns its
// frontier and a single unionfind.UnionFind for the whole call, resetting it
// on every BuildMST invocation (see package unionfind). Solve is pure given
// its input graph and is freely reentrant across independent graphs.
package kbest
