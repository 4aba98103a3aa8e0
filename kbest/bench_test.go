package kbest_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/kthmst/graph"
	"github.com/katalvlaran/kthmst/kbest"
)

// buildSparseGraph builds a connected graph with a modest number of
// alternative spanning trees, small enough that full enumeration is
// benchmarkable.
func buildSparseGraph(n int, extra int) *graph.Graph {
	r := rand.New(rand.NewSource(3))
	edges := make([]graph.Edge, 0, n-1+extra)
	for i := 1; i < n; i++ {
		edges = append(edges, graph.Edge{U: i - 1, V: i, W: int64(1 + r.Intn(5))})
	}
	for k := 0; k < extra; k++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		if u > v {
			u, v = v, u
		}
		edges = append(edges, graph.Edge{U: u, V: v, W: int64(1 + r.Intn(10))})
	}
	return graph.New(n, edges)
}

// BenchmarkSolve_SmallDense measures full enumeration cost on a graph with a
// handful of extra edges beyond a spanning chain (E-V+1 kept small so the
// exponential blowup stays tractable inside a benchmark loop).
func BenchmarkSolve_SmallDense(b *testing.B) {
	g := buildSparseGraph(8, 5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = kbest.Solve(g)
	}
}
