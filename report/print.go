package report

import (
	"fmt"
	"io"

	"github.com/katalvlaran/kthmst/graph"
	"github.com/katalvlaran/kthmst/kruskal"
)

// Print mode constants.
const (
	ModeSilent = 0
	ModeByCost = 1
	ModeAll    = 2
)

// GroupByCost partitions partitions into buckets of equal Cost, preserving
// the order in which each distinct cost was first seen. partitions is
// assumed already sorted ascending by Cost (the contract Solve provides),
// so buckets are also emitted in ascending-cost order.
//
// Complexity: O(n).
func GroupByCost(partitions []kruskal.Partition) [][]kruskal.Partition {
	var groups [][]kruskal.Partition
	for _, p := range partitions {
		if len(groups) > 0 {
			last := groups[len(groups)-1]
			if last[0].Cost == p.Cost {
				groups[len(groups)-1] = append(last, p)
				continue
			}
		}
		groups = append(groups, []kruskal.Partition{p})
	}

	return groups
}

// Print writes a human-readable rendering of partitions to w according to
// mode:
//
//	ModeSilent - writes nothing.
//	ModeByCost - one representative partition per distinct cost.
//	ModeAll    - every partition.
//
// Each printed partition is rendered as its cost followed by the (u,v,w)
// triples of its MSTEdges, resolved against g.Edges().
func Print(w io.Writer, mode int, g *graph.Graph, partitions []kruskal.Partition) {
	if mode == ModeSilent {
		return
	}

	edges := g.Edges()
	toPrint := partitions
	if mode == ModeByCost {
		toPrint = nil
		for _, group := range GroupByCost(partitions) {
			toPrint = append(toPrint, group[0])
		}
	}

	for _, p := range toPrint {
		fmt.Fprintf(w, "cost=%d:", p.Cost)
		for _, idx := range p.MSTEdges {
			e := edges[idx]
			fmt.Fprintf(w, " (%d,%d,%d)", e.U, e.V, e.W)
		}
		fmt.Fprintln(w)
	}
}
