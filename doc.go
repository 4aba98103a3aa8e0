// Package kthmst enumerates all spanning trees of an undirected,
// edge-weighted, connected graph in nondecreasing order of total weight.
//
// The core is organized into small, independently testable packages:
//
//	unionfind/  - weighted disjoint-set with path compression
//	pq/         - generic min-heap
//	graph/      - immutable Edge/Graph model, built from a dense matrix
//	kruskal/    - Kruskal's algorithm under per-edge IN/OUT/FREE constraints
//	kbest/      - the partition-refinement enumerator (Solve)
//	matrixio/   - adjacency-matrix file reader (collaborator)
//	report/     - console and HTML output (collaborator)
//	cmd/kthmst/ - CLI entry point (collaborator)
package kthmst
