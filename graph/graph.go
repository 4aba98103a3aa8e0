package graph

import "sort"

// Edge is a value object describing one undirected edge (U, V) with U < V
// and a strictly positive integer weight W. Edges never represent
// self-loops: U == V is not constructible via FromMatrix.
type Edge struct {
	U, V int
	W    int64
}

// Graph is immutable after construction: V (vertex count) and an ordered
// edge list, sorted once ascending by weight with original-scan-order as the
// stable tie-break. The index of an edge within that list is its canonical
// identifier throughout packages kruskal and kbest.
type Graph struct {
	v     int
	edges []Edge
}

// New constructs a Graph directly from a caller-supplied edge list, applying
// the same once-only stable sort FromMatrix performs. It is the entry point
// used by tests and callers that already hold an edge list rather than a
// dense matrix.
//
// Complexity: O(E log E).
func New(v int, edges []Edge) *Graph {
	sorted := make([]Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].W < sorted[j].W })

	return &Graph{v: v, edges: sorted}
}

// FromMatrix constructs a Graph from a dense V×V adjacency matrix of
// nonnegative integer weights. Only the strict upper triangle (u < v) is
// read; entries are assumed symmetric. A zero entry means "no edge".
//
// Construction steps:
//  1. Validate the matrix is square.
//  2. Emit (u, v, w) for every u < v with w != 0, scanning row-major.
//  3. Sort the resulting list ascending by w, stably (scan order is the
//     tie-break).
//  4. Store V, the sorted edge list, and E = len(edges).
//
// Returns ErrInvalidInput if the matrix is not square.
//
// Complexity: O(V^2 + E log E).
func FromMatrix(m [][]int64) (*Graph, error) {
	n := len(m)
	for _, row := range m {
		if len(row) != n {
			return nil, ErrInvalidInput
		}
	}

	edges := make([]Edge, 0, n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if w := m[u][v]; w != 0 {
				edges = append(edges, Edge{U: u, V: v, W: w})
			}
		}
	}

	return New(n, edges), nil
}

// NumVertices returns V, the vertex count.
func (g *Graph) NumVertices() int { return g.v }

// NumEdges returns E, the number of edges in the sorted edge list.
func (g *Graph) NumEdges() int { return len(g.edges) }

// Edges returns a defensive copy of the graph's sorted edge list. The index
// of each edge in the returned slice is its canonical edge index.
//
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeAt returns the edge at the given canonical index without copying the
// whole slice. It panics if idx is out of range: an out-of-range index is
// treated as a programmer error, not a returned error.
func (g *Graph) EdgeAt(idx int) Edge {
	return g.edges[idx]
}
