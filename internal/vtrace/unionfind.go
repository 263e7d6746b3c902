package vtrace

// pixelUnionFind is the pixel-level union-find used only during the
// scan-order clustering pass. It is rank-compressed with path halving and
// is a distinct structure from the cluster-level mergedInto chain (spec
// §9 "Two union-find roles").
type pixelUnionFind struct {
	parent []int32
	rank   []uint8
}

func newPixelUnionFind(n int) *pixelUnionFind {
	uf := &pixelUnionFind{
		parent: make([]int32, n),
		rank:   make([]uint8, n),
	}
	for i := range uf.parent {
		uf.parent[i] = int32(i)
	}
	return uf
}

// find returns the root of x's set, halving the path as it walks.
func (uf *pixelUnionFind) find(x int32) int32 {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// union merges the sets containing x and y, attaching the lower-rank root
// under the higher. Returns the resulting root.
func (uf *pixelUnionFind) union(x, y int32) int32 {
	rx, ry := uf.find(x), uf.find(y)
	if rx == ry {
		return rx
	}
	switch {
	case uf.rank[rx] < uf.rank[ry]:
		uf.parent[rx] = ry
		return ry
	case uf.rank[rx] > uf.rank[ry]:
		uf.parent[ry] = rx
		return rx
	default:
		uf.parent[ry] = rx
		uf.rank[rx]++
		return rx
	}
}
