package huffio

import (
	"testing"
)

func TestQueue_InsertRemove(t *testing.T) {
	var q Queue[int, int]
	q.Insert(100, 69)
	q.Insert(1, 80)

	pair, ok := q.Remove()
	if !ok {
		t.Fatal("Remove reported an empty queue")
	}
	if pair.Weight != 1 || pair.Value != 80 {
		t.Errorf("expected (1, 80), got (%d, %d)", pair.Weight, pair.Value)
	}

	pair, ok = q.Remove()
	if !ok {
		t.Fatal("Remove reported an empty queue")
	}
	if pair.Weight != 100 || pair.Value != 69 {
		t.Errorf("expected (100, 69), got (%d, %d)", pair.Weight, pair.Value)
	}

	if _, ok := q.Remove(); ok {
		t.Error("Remove on an empty queue reported an entry")
	}
}

func TestQueue_RemoveTwo(t *testing.T) {
	var q Queue[int, string]
	q.Insert(3, "c")
	q.Insert(1, "a")
	q.Insert(2, "b")

	a, b, ok := q.RemoveTwo()
	if !ok {
		t.Fatal("RemoveTwo reported fewer than two entries")
	}
	if a.Weight != 1 || a.Value != "a" {
		t.Errorf("expected (1, a) first, got (%d, %s)", a.Weight, a.Value)
	}
	if b.Weight != 2 || b.Value != "b" {
		t.Errorf("expected (2, b) second, got (%d, %s)", b.Weight, b.Value)
	}

	if _, _, ok := q.RemoveTwo(); ok {
		t.Error("RemoveTwo with one entry left reported a pair")
	}
	if q.Len() != 1 {
		t.Errorf("expected 1 entry left, got %d", q.Len())
	}
}

func TestQueue_EqualWeights(t *testing.T) {
	// Entries of equal weight must come back out in insertion order.
	var q Queue[int, string]
	q.Insert(5, "first")
	q.Insert(5, "second")
	q.Insert(5, "third")

	expect := [...]string{"first", "second", "third"}
	for i, want := range expect {
		pair, ok := q.Remove()
		if !ok {
			t.Fatalf("Remove %d reported an empty queue", i)
		}
		if pair.Value != want {
			t.Errorf("Remove %d: expected %q, got %q", i, want, pair.Value)
		}
	}
}
