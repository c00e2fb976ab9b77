package crawler

import "testing"

func TestFrontierFIFO(t *testing.T) {
	f := NewFrontier()

	for _, u := range []string{"a", "b", "c"} {
		if !f.Push(u) {
			t.Fatalf("Push(%q) rejected", u)
		}
	}

	if f.Len() != 3 {
		t.Errorf("Expected length 3, got %d", f.Len())
	}

	for _, want := range []string{"a", "b", "c"} {
		got, ok := f.Pop()
		if !ok {
			t.Fatalf("Pop returned empty, want %q", want)
		}
		if got != want {
			t.Errorf("Pop = %q, want %q", got, want)
		}
	}

	if _, ok := f.Pop(); ok {
		t.Error("Pop on empty frontier should return false")
	}
}

func TestFrontierRejectsDuplicates(t *testing.T) {
	f := NewFrontier()

	if !f.Push("a") {
		t.Fatal("First push rejected")
	}
	if f.Push("a") {
		t.Error("Duplicate push while queued should be rejected")
	}

	if u, _ := f.Pop(); u != "a" {
		t.Fatalf("Unexpected pop %q", u)
	}

	// Still rejected after the URL has been popped: a URL never appears
	// twice in the insertion history.
	if f.Push("a") {
		t.Error("Duplicate push after pop should be rejected")
	}

	if f.SeenCount() != 1 {
		t.Errorf("Expected seen count 1, got %d", f.SeenCount())
	}
}

func TestFrontierSeen(t *testing.T) {
	f := NewFrontier()
	f.Push("a")

	if !f.Seen("a") {
		t.Error("Expected a to be seen while queued")
	}
	if f.Seen("b") {
		t.Error("Unknown URL reported as seen")
	}

	f.Pop()
	if !f.Seen("a") {
		t.Error("Expected a to remain seen after pop")
	}
}
