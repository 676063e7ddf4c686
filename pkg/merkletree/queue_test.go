package merkletree

import "testing"

func Test_NodeQueue_PushPopPeekLen(t *testing.T) {
	q := newNodeQueue(0)
	if q.len() != 0 {
		t.Fatalf("len = %d, want 0", q.len())
	}
	if _, ok := q.pop(); ok {
		t.Fatalf("pop on empty queue returned ok=true")
	}

	q.push(1)
	q.push(2)
	q.push(3)
	if q.len() != 3 {
		t.Fatalf("len = %d, want 3", q.len())
	}
	if front, ok := q.peek(); !ok || front != 1 {
		t.Fatalf("peek = %v, %v, want 1, true", front, ok)
	}
	if front, ok := q.pop(); !ok || front != 1 {
		t.Fatalf("pop = %v, %v, want 1, true", front, ok)
	}
	if q.len() != 2 {
		t.Fatalf("len = %d, want 2", q.len())
	}
}

func Test_NodeQueue_Drain(t *testing.T) {
	q := newNodeQueue(0)
	for i := nodeID(0); i < 7; i++ {
		q.push(i)
	}

	group := q.drain(3)
	want := []nodeID{0, 1, 2}
	if !equalIDs(group, want) {
		t.Fatalf("drain(3) = %v, want %v", group, want)
	}
	if q.len() != 4 {
		t.Fatalf("len after drain = %d, want 4", q.len())
	}

	// Draining more than available returns only what's left, all-or-nothing
	// with respect to what exists.
	rest := q.drain(10)
	want = []nodeID{3, 4, 5, 6}
	if !equalIDs(rest, want) {
		t.Fatalf("drain(10) = %v, want %v", rest, want)
	}
	if q.len() != 0 {
		t.Fatalf("len after draining everything = %d, want 0", q.len())
	}
	if got := q.drain(3); got != nil {
		t.Fatalf("drain on empty queue = %v, want nil", got)
	}
}

func equalIDs(a, b []nodeID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
