package vtrace

// Cluster is a maximal set of pixels connected under the quantized
// same-color predicate and the active connectivity. Cluster state is
// mutated in place as pixel-level and hierarchical merges fold other
// clusters into it; ResidueSum survives merges independently of Sum so the
// eventual emitted color reflects every absorbed descendant (spec §9).
type Cluster struct {
	Area       int
	Sum        ColorSum
	ResidueSum ColorSum
	Rect       Rect
}

// ClusterTable is an arena of clusters indexed 1..N; index 0 is the
// sentinel for unassigned/keyed-out pixels (spec §3).
type ClusterTable struct {
	clusters []Cluster
}

func newClusterTable() *ClusterTable {
	return &ClusterTable{clusters: make([]Cluster, 1)} // index 0 sentinel
}

func (t *ClusterTable) alloc() int {
	t.clusters = append(t.clusters, Cluster{})
	return len(t.clusters) - 1
}

// Get returns a pointer to the cluster at index i for in-place mutation.
func (t *ClusterTable) Get(i int) *Cluster { return &t.clusters[i] }

// Len returns the number of allocated cluster slots (excludes sentinel 0).
func (t *ClusterTable) Len() int { return len(t.clusters) - 1 }

// adjacency is a symmetric cluster -> neighbor map. Neighbor lists are
// insertion-ordered so the best-neighbor search in the hierarchical merge
// can break color-distance ties by "first-found order" (spec §4.6).
type adjacency struct {
	order   map[int][]int
	present map[int]map[int]bool
}

func newAdjacency() adjacency {
	return adjacency{order: make(map[int][]int), present: make(map[int]map[int]bool)}
}

func (a adjacency) link(x, y int) {
	if a.present[x] == nil {
		a.present[x] = make(map[int]bool)
	}
	if a.present[x][y] {
		return
	}
	a.present[x][y] = true
	a.order[x] = append(a.order[x], y)
}

func (a adjacency) addEdge(x, y int) {
	if x == y {
		return
	}
	a.link(x, y)
	a.link(y, x)
}

// removeEdge detaches x and y from each other in both directions.
func (a adjacency) removeEdge(x, y int) {
	if a.present[x] != nil && a.present[x][y] {
		delete(a.present[x], y)
		a.order[x] = removeFirst(a.order[x], y)
	}
	if a.present[y] != nil && a.present[y][x] {
		delete(a.present[y], x)
		a.order[y] = removeFirst(a.order[y], x)
	}
}

// neighborsOf returns cluster x's current neighbors in first-discovered
// order. The caller must not mutate the returned slice.
func (a adjacency) neighborsOf(x int) []int { return a.order[x] }

func removeFirst(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// buildClusters performs the scan-order two-pass labeling described in
// spec §4.4: a pixel-level union-find groups same-color-connected pixels
// while a parallel cluster table accumulates area/color/rect per group.
// Two distinct clusters can be discovered to be the same physical region
// mid-scan (the "both Up and Left match, but their roots differ" case);
// when that happens the smaller cluster is folded into the larger one
// immediately rather than deferred, so the returned label array is already
// final — the pixel-level UF only tracks equivalence, never itself holds
// pixel-facing cluster identity.
func buildClusters(pixels []byte, width, height int, cfg Config) (*ClusterTable, []int32, adjacency) {
	n := width * height
	table := newClusterTable()
	labels := make([]int32, n)
	if n == 0 {
		return table, labels, adjacency{}
	}

	uf := newPixelUnionFind(n)
	rootCluster := make([]int32, n)
	shift := uint(cfg.shift())
	diagonal := cfg.diagonal()

	idx := func(x, y int) int32 { return int32(y*width + x) }
	clusterAt := func(pixIdx int32) int32 { return rootCluster[uf.find(pixIdx)] }

	addPixel := func(c int32, x, y int, cur Color) {
		cl := table.Get(int(c))
		cl.Area++
		cl.Sum.Add(cur)
		cl.Rect = cl.Rect.AddXY(x, y)
	}

	joinNeighbor := func(pixIdx, neighborIdx int32, x, y int, cur Color) {
		c := clusterAt(neighborIdx)
		r := uf.union(pixIdx, neighborIdx)
		rootCluster[r] = c
		addPixel(c, x, y, cur)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixIdx := idx(x, y)
			cur := colorAt(pixels, width, x, y)

			var upIdx, leftIdx, ulIdx int32
			upValid, leftValid, ulValid := y > 0, x > 0, x > 0 && y > 0
			var upMatch, leftMatch, ulMatch bool
			if upValid {
				upIdx = idx(x, y-1)
				upMatch = sameColor(cur, colorAt(pixels, width, x, y-1), shift)
			}
			if leftValid {
				leftIdx = idx(x-1, y)
				leftMatch = sameColor(cur, colorAt(pixels, width, x-1, y), shift)
			}
			if ulValid {
				ulIdx = idx(x-1, y-1)
				ulMatch = sameColor(cur, colorAt(pixels, width, x-1, y-1), shift)
			}

			switch {
			case upMatch && leftMatch:
				upRootBefore := uf.find(upIdx)
				leftRootBefore := uf.find(leftIdx)
				upCluster := rootCluster[upRootBefore]

				r := uf.union(pixIdx, upIdx)
				rootCluster[r] = upCluster
				addPixel(upCluster, x, y, cur)

				if leftRootBefore != upRootBefore {
					leftCluster := rootCluster[leftRootBefore]
					winner := mergeIntoLarger(table, upCluster, leftCluster)
					r2 := uf.union(upRootBefore, leftRootBefore)
					rootCluster[r2] = winner
				}

			case upMatch && ulMatch:
				joinNeighbor(pixIdx, upIdx, x, y, cur)

			case leftMatch && ulMatch:
				joinNeighbor(pixIdx, leftIdx, x, y, cur)

			case diagonal && ulMatch:
				joinNeighbor(pixIdx, ulIdx, x, y, cur)

			case upMatch:
				joinNeighbor(pixIdx, upIdx, x, y, cur)

			case leftMatch:
				joinNeighbor(pixIdx, leftIdx, x, y, cur)

			default:
				c := int32(table.alloc())
				rootCluster[uf.find(pixIdx)] = c
				addPixel(c, x, y, cur)
			}
		}
	}

	for i := 0; i < n; i++ {
		labels[i] = clusterAt(int32(i))
	}

	for c := 1; c <= table.Len(); c++ {
		cl := table.Get(c)
		cl.ResidueSum = cl.Sum
	}

	adj := newAdjacency()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cur := labels[y*width+x]
			if x+1 < width {
				if r := labels[y*width+x+1]; r != cur {
					adj.addEdge(int(cur), int(r))
				}
			}
			if y+1 < height {
				if d := labels[(y+1)*width+x]; d != cur {
					adj.addEdge(int(cur), int(d))
				}
			}
		}
	}

	return table, labels, adj
}

// mergeIntoLarger folds the smaller cluster into the larger (ties favor a)
// and returns the surviving cluster index. The absorbed cluster's Area is
// zeroed per the "merged-from, never re-merged" invariant (spec §3).
func mergeIntoLarger(table *ClusterTable, a, b int32) int32 {
	ca, cb := table.Get(int(a)), table.Get(int(b))
	winner := a
	wc, lc := ca, cb
	if cb.Area > ca.Area {
		winner = b
		wc, lc = cb, ca
	}
	wc.Area += lc.Area
	wc.Sum.AddSum(lc.Sum)
	wc.Rect = Merge(wc.Rect, lc.Rect)
	lc.Area = 0
	return winner
}
