package vtrace

import "testing"

func TestAreaQueuePopSmallestOrder(t *testing.T) {
	q := newAreaQueue()
	q.add(10, 1)
	q.add(3, 2)
	q.add(3, 3)
	q.add(7, 4)

	area, members, ok := q.popSmallest()
	if !ok || area != 3 {
		t.Fatalf("first pop area = %d, ok=%v, want 3/true", area, ok)
	}
	if len(members) != 2 || members[0] != 2 || members[1] != 3 {
		t.Errorf("members = %v, want [2 3]", members)
	}

	area, _, ok = q.popSmallest()
	if !ok || area != 7 {
		t.Fatalf("second pop area = %d, want 7", area)
	}

	area, _, ok = q.popSmallest()
	if !ok || area != 10 {
		t.Fatalf("third pop area = %d, want 10", area)
	}

	if !q.empty() {
		t.Error("queue should be empty after draining all areas")
	}
	if _, _, ok := q.popSmallest(); ok {
		t.Error("popSmallest on empty queue should report ok=false")
	}
}

func TestAreaQueueRemove(t *testing.T) {
	q := newAreaQueue()
	q.add(5, 1)
	q.add(5, 2)
	q.remove(5, 1)

	area, members, ok := q.popSmallest()
	if !ok || area != 5 || len(members) != 1 || members[0] != 2 {
		t.Errorf("after removing member 1, popSmallest = %d %v %v, want 5 [2] true", area, members, ok)
	}
}

func TestAreaQueueRemoveDrainsEmptyBucket(t *testing.T) {
	q := newAreaQueue()
	q.add(5, 1)
	q.remove(5, 1)
	if !q.empty() {
		t.Error("bucket should be dropped once its last member is removed")
	}
}
