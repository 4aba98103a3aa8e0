package kruskal

import (
	"sort"

	"github.com/katalvlaran/kthmst/graph"
	"github.com/katalvlaran/kthmst/unionfind"
)

// BuildMST computes the MST of g restricted by choices: IN edges are forced,
// OUT edges are forbidden, FREE edges are greedily considered in weight
// order. uf is reset at the start of every call and is safe to reuse across
// many BuildMST invocations (see package unionfind's Reset contract).
//
// choices must have exactly len(g.Edges()) entries, one per canonical edge
// index.
//
// Returns ErrInfeasible if the constrained graph is not connected.
//
// Complexity: O(E) per call once the graph's edges are pre-sorted (sorting
// happens once, at Graph construction).
func BuildMST(g *graph.Graph, uf *unionfind.UnionFind, choices []EdgeChoice) (Partition, error) {
	uf.Reset()

	edges := g.Edges()
	var mstEdges []int
	var cost int64

	// Phase A: forced edges are added unconditionally, in sorted order.
	for i, e := range edges {
		if choices[i] != In {
			continue
		}
		uf.Union(e.U, e.V)
		mstEdges = append(mstEdges, i)
		cost += e.W
	}

	// Phase B: free edges, continuing in sorted order; short-circuit once
	// a single component remains.
	for i, e := range edges {
		if uf.ComponentCount() == 1 {
			break
		}
		if choices[i] != Free {
			continue
		}
		if !uf.Connected(e.U, e.V) {
			uf.Union(e.U, e.V)
			mstEdges = append(mstEdges, i)
			cost += e.W
		}
	}

	if uf.ComponentCount() > 1 {
		return Partition{}, ErrInfeasible
	}

	sort.Ints(mstEdges)

	return Partition{Choices: choices, MSTEdges: mstEdges, Cost: cost}, nil
}
