// Package unionfind provides a disjoint-set (union-find) data structure over
// the dense integer universe [0, V), with union by size and full path
// compression.
//
// What & why
//
//   - What is a disjoint-set?
//     A partition of [0, V) into disjoint components, supporting near-constant
//     amortized Find and Union operations.
//
//   - Why it matters here:
//     kthmst's Kruskal-with-constraints step (see package kruskal) needs to
//     merge components edge by edge while scanning a globally sorted edge
//     list. A shared, resettable UnionFind lets every Kruskal invocation reuse
//     one allocation instead of building fresh parent/size arrays per call.
//
// Complexity
//
//   - New:             O(V)
//   - Reset:           O(V)
//   - Find:            O(α(V)) amortized, with full path compression
//   - Union:           O(α(V)) amortized
//   - Connected:       O(α(V)) amortized
//   - ComponentSize:   O(α(V)) amortized
//   - ComponentCount:  O(1)
//
// Concurrency: UnionFind is not safe for concurrent use; callers needing
// concurrent access must synchronize externally. This mirrors the rest of
// the module, which is single-threaded by design (see package kbest).
package unionfind
