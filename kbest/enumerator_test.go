package kbest_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kthmst/graph"
	"github.com/katalvlaran/kthmst/kbest"
	"github.com/katalvlaran/kthmst/kruskal"
	"github.com/katalvlaran/kthmst/unionfind"
)

// edgeSetKey renders a Partition's MSTEdges (already ascending) as a
// comparable key for set-equality checks.
func edgeSetKey(edges []int) string {
	key := make([]byte, 0, len(edges)*2)
	for _, e := range edges {
		key = append(key, byte(e), ',')
	}
	return string(key)
}

// bruteForceSpanningTrees enumerates every V-1-edge subset of g's edges that
// forms a spanning tree, by brute-force subset scan. Intended only for
// graphs small enough that this is tractable (V <= 6, E <= 10).
func bruteForceSpanningTrees(t *testing.T, g *graph.Graph) map[string]int64 {
	t.Helper()
	edges := g.Edges()
	e := len(edges)
	n := g.NumVertices()
	want := map[string]int64{}

	for mask := 0; mask < (1 << e); mask++ {
		var chosen []int
		for i := 0; i < e; i++ {
			if mask&(1<<i) != 0 {
				chosen = append(chosen, i)
			}
		}
		if len(chosen) != n-1 {
			continue
		}

		uf, err := unionfind.New(n)
		require.NoError(t, err)
		var cost int64
		ok := true
		for _, idx := range chosen {
			edge := edges[idx]
			if uf.Connected(edge.U, edge.V) {
				ok = false
				break
			}
			uf.Union(edge.U, edge.V)
			cost += edge.W
		}
		if ok && uf.ComponentCount() == 1 {
			want[edgeSetKey(chosen)] = cost
		}
	}

	return want
}

func mustGraph(t *testing.T, m [][]int64) *graph.Graph {
	t.Helper()
	g, err := graph.FromMatrix(m)
	require.NoError(t, err)
	return g
}

func TestSolve_EmptyGraph(t *testing.T) {
	g := mustGraph(t, nil)
	results, err := kbest.Solve(g)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSolve_S1_Triangle(t *testing.T) {
	g := mustGraph(t, [][]int64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	})
	results, err := kbest.Solve(g)
	require.NoError(t, err)

	var costs []int64
	for _, p := range results {
		costs = append(costs, p.Cost)
	}
	assert.Equal(t, []int64{3, 4, 5}, costs)
}

func TestSolve_S2_SquareWithDiagonal(t *testing.T) {
	g := mustGraph(t, [][]int64{
		{0, 1, 2, 1},
		{1, 0, 1, 0},
		{2, 1, 0, 1},
		{1, 0, 1, 0},
	})
	results, err := kbest.Solve(g)
	require.NoError(t, err)

	var costs []int64
	for _, p := range results {
		costs = append(costs, p.Cost)
	}
	sort.Slice(costs, func(i, j int) bool { return costs[i] < costs[j] })
	assert.Equal(t, []int64{3, 3, 3, 3, 4, 4, 4, 4}, costs)
}

func TestSolve_S3_Disconnected(t *testing.T) {
	g := mustGraph(t, [][]int64{
		{0, 1, 0},
		{1, 0, 0},
		{0, 0, 0},
	})
	_, err := kbest.Solve(g)
	assert.ErrorIs(t, err, kbest.ErrGraphNotConnected)
}

func TestSolve_S4_SingleEdge(t *testing.T) {
	g := mustGraph(t, [][]int64{
		{0, 5},
		{5, 0},
	})
	results, err := kbest.Solve(g)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(5), results[0].Cost)
}

func TestSolve_S5_K4UnitWeights(t *testing.T) {
	g := mustGraph(t, [][]int64{
		{0, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 0, 1},
		{1, 1, 1, 0},
	})
	results, err := kbest.Solve(g)
	require.NoError(t, err)
	require.Len(t, results, 16)

	seen := map[string]bool{}
	for _, p := range results {
		assert.Equal(t, int64(4), p.Cost)
		key := edgeSetKey(p.MSTEdges)
		assert.False(t, seen[key], "duplicate spanning tree %v", p.MSTEdges)
		seen[key] = true
	}
}

func TestSolve_S6_PathRejectsAllBranches(t *testing.T) {
	g := mustGraph(t, [][]int64{
		{0, 1, 0, 0},
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{0, 0, 1, 0},
	})
	results, err := kbest.Solve(g)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(3), results[0].Cost)
}

// TestSolve_Completeness checks property 1: for a small graph, Solve's
// output set equals the brute-force set of all spanning trees.
func TestSolve_Completeness(t *testing.T) {
	g := mustGraph(t, [][]int64{
		{0, 4, 0, 4, 0},
		{4, 0, 2, 3, 0},
		{0, 2, 0, 5, 4},
		{4, 3, 5, 0, 1},
		{0, 0, 4, 1, 0},
	})
	want := bruteForceSpanningTrees(t, g)

	results, err := kbest.Solve(g)
	require.NoError(t, err)

	got := map[string]int64{}
	for _, p := range results {
		got[edgeSetKey(p.MSTEdges)] = p.Cost
	}
	assert.Equal(t, want, got)
}

// TestSolve_Uniqueness checks property 2: no two results share the same
// edge-index set.
func TestSolve_Uniqueness(t *testing.T) {
	g := mustGraph(t, [][]int64{
		{0, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 0, 1},
		{1, 1, 1, 0},
	})
	results, err := kbest.Solve(g)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, p := range results {
		key := edgeSetKey(p.MSTEdges)
		require.False(t, seen[key])
		seen[key] = true
	}
}

// TestSolve_TreeProperty checks property 3: every emitted partition's
// MSTEdges forms a spanning tree (one component, no cycles, V-1 edges).
func TestSolve_TreeProperty(t *testing.T) {
	g := mustGraph(t, [][]int64{
		{0, 1, 2, 0},
		{1, 0, 3, 4},
		{2, 3, 0, 5},
		{0, 4, 5, 0},
	})
	results, err := kbest.Solve(g)
	require.NoError(t, err)

	edges := g.Edges()
	for _, p := range results {
		require.Len(t, p.MSTEdges, g.NumVertices()-1)

		uf, err := unionfind.New(g.NumVertices())
		require.NoError(t, err)
		for _, idx := range p.MSTEdges {
			e := edges[idx]
			require.False(t, uf.Connected(e.U, e.V), "cycle introduced by edge %d", idx)
			uf.Union(e.U, e.V)
		}
		assert.Equal(t, 1, uf.ComponentCount())
	}
}

// TestSolve_SortedOutput checks property 4.
func TestSolve_SortedOutput(t *testing.T) {
	g := mustGraph(t, [][]int64{
		{0, 1, 2, 0},
		{1, 0, 3, 4},
		{2, 3, 0, 5},
		{0, 4, 5, 0},
	})
	results, err := kbest.Solve(g)
	require.NoError(t, err)

	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i-1].Cost, results[i].Cost)
	}
}

// TestSolve_MSTCorrectness checks property 5: results[0].Cost equals an
// independently computed MST cost (via an unconstrained BuildMST call).
func TestSolve_MSTCorrectness(t *testing.T) {
	g := mustGraph(t, [][]int64{
		{0, 4, 0, 4, 0},
		{4, 0, 2, 3, 0},
		{0, 2, 0, 5, 4},
		{4, 3, 5, 0, 1},
		{0, 0, 4, 1, 0},
	})
	results, err := kbest.Solve(g)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	uf, err := unionfind.New(g.NumVertices())
	require.NoError(t, err)
	allFree := make([]kruskal.EdgeChoice, g.NumEdges())
	independent, err := kruskal.BuildMST(g, uf, allFree)
	require.NoError(t, err)

	assert.Equal(t, independent.Cost, results[0].Cost)
}

// TestSolve_CostConsistency checks property 6.
func TestSolve_CostConsistency(t *testing.T) {
	g := mustGraph(t, [][]int64{
		{0, 1, 2, 0},
		{1, 0, 3, 4},
		{2, 3, 0, 5},
		{0, 4, 5, 0},
	})
	results, err := kbest.Solve(g)
	require.NoError(t, err)

	edges := g.Edges()
	for _, p := range results {
		var want int64
		for _, idx := range p.MSTEdges {
			want += edges[idx].W
		}
		assert.Equal(t, want, p.Cost)
	}
}

func TestSolve_WithMaxTrees(t *testing.T) {
	g := mustGraph(t, [][]int64{
		{0, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 0, 1},
		{1, 1, 1, 0},
	})
	results, err := kbest.Solve(g, kbest.WithMaxTrees(3))
	require.NoError(t, err)
	assert.Len(t, results, 3)
}
