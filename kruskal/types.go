package kruskal

// EdgeChoice tags one edge's status within a partition's constrained search
// space.
type EdgeChoice int8

const (
	// Free means the edge may or may not be in the MST; Kruskal decides.
	Free EdgeChoice = iota
	// In forces the edge into the MST unconditionally.
	In
	// Out forbids the edge from the MST entirely.
	Out
)

// String renders the EdgeChoice for diagnostics and test failure messages.
func (c EdgeChoice) String() string {
	switch c {
	case Free:
		return "FREE"
	case In:
		return "IN"
	case Out:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Partition is a search-space description plus the MST computed within it.
//
// Invariants:
//   - Choices is consistent with MSTEdges: every In edge appears in
//     MSTEdges; no Out edge appears.
//   - MSTEdges forms a spanning tree of the graph restricted by Choices,
//     stored in ascending edge-index order.
//   - Cost equals the summed weight of MSTEdges.
//
// Partition is a value type, but plain assignment copies only the slice
// headers: the copy shares Choices and MSTEdges with its source. Use Clone
// for an independent copy (see package kbest's ownership model).
type Partition struct {
	Choices  []EdgeChoice
	MSTEdges []int
	Cost     int64
}

// Clone returns a deep copy of p, safe to mutate independently. package
// kbest uses this to derive a child partition's Choices vector from its
// parent without aliasing the parent's slice.
func (p Partition) Clone() Partition {
	choices := make([]EdgeChoice, len(p.Choices))
	copy(choices, p.Choices)
	mstEdges := make([]int, len(p.MSTEdges))
	copy(mstEdges, p.MSTEdges)

	return Partition{Choices: choices, MSTEdges: mstEdges, Cost: p.Cost}
}
