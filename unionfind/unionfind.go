package unionfind

// UnionFind is a disjoint-set structure over the dense universe [0, V).
//
// Invariants:
//   - parent[i] is always a valid index in [0, V).
//   - Following parent from any node terminates at a root (parent[root] == root).
//   - size[root] equals the number of nodes whose Find resolves to root.
//   - count equals the number of distinct roots.
type UnionFind struct {
	parent []int
	size   []int
	count  int
}

// New constructs a UnionFind over v elements, each initially its own
// singleton component. Returns ErrEmptySet if v <= 0.
//
// Complexity: O(v).
func New(v int) (*UnionFind, error) {
	if v <= 0 {
		return nil, ErrEmptySet
	}

	uf := &UnionFind{
		parent: make([]int, v),
		size:   make([]int, v),
	}
	uf.Reset()

	return uf, nil
}

// Reset restores every element to its own singleton component: parent[i] = i,
// size[i] = 1 for all i, and component_count = V.
//
// Callers that reuse a single UnionFind across many independent MST
// computations (see kruskal.BuildMST) must call Reset before each one;
// forgetting to restore count silently breaks completeness elsewhere in the
// enumeration.
//
// Complexity: O(V).
func (uf *UnionFind) Reset() {
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	uf.count = len(uf.parent)
}

// Find returns the root of x's component, applying full path compression:
// every node visited on the way to the root is relinked directly to it, so a
// subsequent Find(x) is O(1).
//
// Complexity: O(α(V)) amortized.
func (uf *UnionFind) Find(x int) int {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	// Second pass: relink every node on the path directly to root.
	for uf.parent[x] != root {
		uf.parent[x], x = root, uf.parent[x]
	}

	return root
}

// Union merges the components containing x and y. If they are already in the
// same component this is a no-op. Otherwise the smaller tree (by size) is
// attached under the larger; on a tie, y's root is attached under x's root.
//
// Complexity: O(α(V)) amortized.
func (uf *UnionFind) Union(x, y int) {
	rx, ry := uf.Find(x), uf.Find(y)
	if rx == ry {
		return
	}

	if uf.size[rx] < uf.size[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	uf.size[rx] += uf.size[ry]
	uf.count--
}

// Connected reports whether x and y belong to the same component.
//
// Complexity: O(α(V)) amortized.
func (uf *UnionFind) Connected(x, y int) bool {
	return uf.Find(x) == uf.Find(y)
}

// ComponentSize returns the number of elements in x's component.
//
// Complexity: O(α(V)) amortized.
func (uf *UnionFind) ComponentSize(x int) int {
	return uf.size[uf.Find(x)]
}

// ComponentCount returns the current number of distinct components.
//
// Complexity: O(1).
func (uf *UnionFind) ComponentCount() int {
	return uf.count
}
