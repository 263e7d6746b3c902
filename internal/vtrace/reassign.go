package vtrace

// maxMergeChainHops caps the merge-chain walk so a malformed or cyclic
// chain can never spin forever (spec §4.7, §7).
const maxMergeChainHops = 10000

// reassignPixels implements spec §4.7: every pixel walks its merge chain
// to the first emitted cluster on it (its own cluster, if that was
// emitted), then (in cutout mode)
// higher-emitted layers claim their pixels exclusively.
func reassignPixels(labels []int32, mergedInto []int, emitted []int, hierarchical Hierarchical) map[int][]int {
	emittedSet := make(map[int]bool, len(emitted))
	for _, e := range emitted {
		emittedSet[e] = true
	}

	owner := make([]int, len(labels))
	for i, lbl := range labels {
		owner[i] = -1
		if lbl == 0 {
			continue
		}
		cur := int(lbl)
		hops := 0
		for !emittedSet[cur] {
			next := mergedInto[cur]
			if next == cur {
				cur = -1
				break
			}
			cur = next
			hops++
			if hops > maxMergeChainHops {
				cur = -1
				break
			}
		}
		owner[i] = cur
	}

	pixelsOf := make(map[int][]int, len(emitted))
	for i, o := range owner {
		if o < 0 {
			continue
		}
		pixelsOf[o] = append(pixelsOf[o], i)
	}

	if hierarchical != Cutout {
		return pixelsOf
	}

	claimed := make([]bool, len(labels))
	for i := len(emitted) - 1; i >= 0; i-- {
		e := emitted[i]
		pixels := pixelsOf[e]
		kept := pixels[:0]
		for _, p := range pixels {
			if claimed[p] {
				continue
			}
			claimed[p] = true
			kept = append(kept, p)
		}
		pixelsOf[e] = kept
	}
	return pixelsOf
}
