package vtrace

// SavedMeta is the snapshot taken at emission time: the cluster's
// residue-average color and a copy of its bounding rect, captured because
// the cluster object is mutated by merges below it afterward (spec §3).
type SavedMeta struct {
	Color Color
	Rect  Rect
}

// hierarchicalMerge implements spec §4.6: clusters are processed in
// ascending area order, each folded into its closest-colored neighbor; one
// that is large and color-distinct enough is first emitted as its own
// output layer, and its residue is then kept out of the neighbor's. It
// returns the emission order (bottom-up), the merge chain, and
// the saved metadata for every emitted cluster.
func hierarchicalMerge(table *ClusterTable, adj adjacency, width, height int, cfg Config, usedKeyColor bool) (emitted []int, mergedInto []int, saved map[int]SavedMeta) {
	n := table.Len()
	mergedInto = make([]int, n+1)
	for i := range mergedInto {
		mergedInto[i] = i
	}
	saved = make(map[int]SavedMeta)

	queue := newAreaQueue()
	for c := 1; c <= n; c++ {
		if table.Get(c).Area > 0 {
			queue.add(table.Get(c).Area, c)
		}
	}

	imageArea := width * height

	emit := func(c int) {
		cl := table.Get(c)
		saved[c] = SavedMeta{Color: cl.ResidueSum.Average(), Rect: cl.Rect}
		emitted = append(emitted, c)
	}

	// mergeInto folds c into nStar: area/sum/rect always, residue only
	// when foldResidue is set (spec §4.6 step 5 vs step 6), relinks c's
	// adjacency edges onto nStar, and moves nStar to its new area bucket.
	mergeInto := func(c, nStar int, foldResidue bool) {
		cl, ncl := table.Get(c), table.Get(nStar)
		oldNArea := ncl.Area

		ncl.Area += cl.Area
		ncl.Sum.AddSum(cl.Sum)
		ncl.Rect = Merge(ncl.Rect, cl.Rect)
		if foldResidue {
			ncl.ResidueSum.AddSum(cl.ResidueSum)
		}

		mergedInto[c] = nStar
		cl.Area = 0

		queue.remove(oldNArea, nStar)
		queue.add(ncl.Area, nStar)

		for _, nb := range append([]int(nil), adj.neighborsOf(c)...) {
			adj.removeEdge(c, nb)
			if nb == nStar {
				continue
			}
			adj.addEdge(nb, nStar)
		}
	}

	for {
		area, members, ok := queue.popSmallest()
		if !ok {
			break
		}
		for i, c := range members {
			cl := table.Get(c)
			if cl.Area != area {
				continue // snapshot stale: already absorbed or grown
			}

			if cl.Area >= imageArea {
				emit(c)
				continue
			}

			neighbors := adj.neighborsOf(c)
			if len(neighbors) == 0 {
				moreSiblings := false
				for _, sib := range members[i+1:] {
					if table.Get(sib).Area == area {
						moreSiblings = true
						break
					}
				}
				if (queue.empty() && !moreSiblings) || usedKeyColor {
					emit(c)
				}
				// else: drop silently, mergedInto[c] stays identity
				continue
			}

			curColor := cl.Sum.Average()
			best, bestDist := -1, -1
			for _, nb := range neighbors {
				d := manhattan(curColor, table.Get(nb).Sum.Average())
				if best == -1 || d < bestDist {
					best, bestDist = nb, d
				}
			}
			nStar := best

			isLargeEnough := cfg.filterArea() > 0 && cl.Area >= cfg.filterArea()
			shouldDeepen := bestDist > cfg.LayerDifference

			if isLargeEnough && shouldDeepen {
				emit(c)
				mergeInto(c, nStar, false)
			} else {
				mergeInto(c, nStar, true)
			}
		}
	}

	return emitted, mergedInto, saved
}
