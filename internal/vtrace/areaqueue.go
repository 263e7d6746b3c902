package vtrace

import "sort"

// areaQueue is an ordered-by-area priority structure: "area -> set of
// cluster indices with that area," plus a sorted list of populated area
// values (spec §9 "Ordered area processing"). Popping always returns the
// smallest populated area and every cluster currently filed under it.
type areaQueue struct {
	buckets map[int]map[int]bool
	areas   []int // sorted ascending, distinct
}

func newAreaQueue() *areaQueue {
	return &areaQueue{buckets: make(map[int]map[int]bool)}
}

func (q *areaQueue) add(area, cluster int) {
	set, ok := q.buckets[area]
	if !ok {
		set = make(map[int]bool)
		q.buckets[area] = set
		i := sort.SearchInts(q.areas, area)
		q.areas = append(q.areas, 0)
		copy(q.areas[i+1:], q.areas[i:])
		q.areas[i] = area
	}
	set[cluster] = true
}

func (q *areaQueue) remove(area, cluster int) {
	set, ok := q.buckets[area]
	if !ok {
		return
	}
	delete(set, cluster)
	if len(set) == 0 {
		delete(q.buckets, area)
		i := sort.SearchInts(q.areas, area)
		if i < len(q.areas) && q.areas[i] == area {
			q.areas = append(q.areas[:i], q.areas[i+1:]...)
		}
	}
}

func (q *areaQueue) empty() bool { return len(q.areas) == 0 }

// popSmallest removes and returns the smallest populated area and a
// snapshot of its member cluster indices. Ordering within the returned
// slice is unspecified but deterministic per run (spec §9 open question).
func (q *areaQueue) popSmallest() (area int, members []int, ok bool) {
	if q.empty() {
		return 0, nil, false
	}
	area = q.areas[0]
	q.areas = q.areas[1:]
	set := q.buckets[area]
	delete(q.buckets, area)
	members = make([]int, 0, len(set))
	for c := range set {
		members = append(members, c)
	}
	sort.Ints(members) // deterministic intra-bucket order
	return area, members, true
}
