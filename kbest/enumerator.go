package kbest

import (
	"errors"
	"sort"

	"github.com/katalvlaran/kthmst/graph"
	"github.com/katalvlaran/kthmst/kruskal"
	"github.com/katalvlaran/kthmst/pq"
	"github.com/katalvlaran/kthmst/unionfind"
)

// Solve enumerates every spanning tree of g exactly once, sorted ascending
// by total weight. A graph with no vertices or no edges yields an empty
// result and no error. Otherwise returns ErrGraphNotConnected if no spanning
// tree covers all of g's vertices.
//
// Complexity: each frontier pop produces at most V-1 children, each costing
// one BuildMST call (O(E)); total work is O(T*E) for T spanning trees
// enumerated, which is exponential in E-V+1 in the worst case. See package
// doc for the algorithm.
func Solve(g *graph.Graph, opts ...Option) ([]kruskal.Partition, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g.NumVertices() == 0 || g.NumEdges() == 0 {
		return nil, nil
	}

	uf, err := unionfind.New(g.NumVertices())
	if err != nil {
		// g.NumVertices() > 0 was just checked, so unionfind.New cannot
		// reject this; guard kept for defense against future changes.
		return nil, err
	}

	allFree := make([]kruskal.EdgeChoice, g.NumEdges())
	root, err := kruskal.BuildMST(g, uf, allFree)
	if err != nil {
		if errors.Is(err, kruskal.ErrInfeasible) {
			return nil, ErrGraphNotConnected
		}
		return nil, err
	}

	frontier := pq.New(func(a, b kruskal.Partition) bool { return a.Cost < b.Cost })
	frontier.Push(root)
	results := []kruskal.Partition{root}

	capped := func() bool { return cfg.maxTrees > 0 && len(results) >= cfg.maxTrees }

	for !frontier.Empty() && !capped() {
		p, perr := frontier.Pop()
		if perr != nil {
			// Empty is guarded by the loop condition; unreachable in
			// practice.
			break
		}

		for x, tx := range p.MSTEdges {
			if capped() {
				break
			}
			if p.Choices[tx] != kruskal.Free {
				continue
			}

			child := p.Clone()
			child.Choices[tx] = kruskal.Out
			for _, ty := range p.MSTEdges[:x] {
				child.Choices[ty] = kruskal.In
			}

			built, berr := kruskal.BuildMST(g, uf, child.Choices)
			if berr != nil {
				// Infeasible children are expected: this branch of the
				// search space simply contains no spanning tree.
				continue
			}

			frontier.Push(built)
			results = append(results, built)
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Cost < results[j].Cost })

	return results, nil
}
