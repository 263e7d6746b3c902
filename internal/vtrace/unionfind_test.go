package vtrace

import "testing"

func TestPixelUnionFindUnionAndFind(t *testing.T) {
	uf := newPixelUnionFind(5)
	for i := int32(0); i < 5; i++ {
		if uf.find(i) != i {
			t.Fatalf("singleton %d should be its own root", i)
		}
	}

	r1 := uf.union(0, 1)
	r2 := uf.union(2, 3)
	if uf.find(0) != uf.find(1) {
		t.Error("0 and 1 should share a root after union")
	}
	if uf.find(2) != uf.find(3) {
		t.Error("2 and 3 should share a root after union")
	}

	r3 := uf.union(r1, r2)
	if uf.find(0) != uf.find(3) {
		t.Error("all of 0,1,2,3 should share a root after merging their sets")
	}
	if uf.find(4) == r3 {
		t.Error("unrelated singleton should not have been folded in")
	}
}

func TestPixelUnionFindIdempotentUnion(t *testing.T) {
	uf := newPixelUnionFind(3)
	uf.union(0, 1)
	before := uf.find(0)
	uf.union(0, 1)
	if uf.find(0) != before {
		t.Error("re-union of already-joined set should not change its root")
	}
}
