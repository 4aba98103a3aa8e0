// Package kruskal implements Kruskal's algorithm under per-edge IN/OUT/FREE
// constraints, the building block package kbest repeatedly invokes to
// explore each partition of the search space.
//
// What & why
//
//   - What is Kruskal-with-constraints?
//     Ordinary Kruskal (sort edges by weight, union-find components,
//     greedily add non-cycle edges) extended with a per-edge EdgeChoice: an
//     IN edge is added unconditionally (and contracted for union-find
//     purposes), an OUT edge is skipped entirely, and a FREE edge is
//     considered by the normal greedy rule.
//
//   - Why it matters here:
//     Ordinary Kruskal over a sorted edge list and a union-find generalizes
//     directly once the union-find is a shared, resettable
//     *unionfind.UnionFind over integer vertex indices and a per-edge
//     constraint vector is threaded through: package kbest's partition
//     enumerator needs exactly that to carve up the search space.
//
// Contract
//
//  1. uf.Reset().
//  2. Phase A (forced edges): scan edges in sorted order; for every IN edge,
//     union its endpoints and append its index to MSTEdges.
//  3. Phase B (free edges): continue in sorted order over FREE edges,
//     short-circuiting once uf.ComponentCount() == 1; union and append
//     whenever the endpoints are not already connected.
//  4. If more than one component remains, the partition is infeasible.
//  5. Sort MSTEdges ascending by edge index (insertion order is by weight;
//     the enumerator's pinning rule needs index order).
//  6. Return the populated Partition.
//
// EdgeChoice is a genuine tagged three-state type (Free, In, Out), not an
// integer sentinel: this package picks one encoding and sticks to it
// everywhere.
package kruskal
