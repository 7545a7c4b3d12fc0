package vect

import "testing"

func TestSelectorRowRoundTrip(t *testing.T) {
	cases := []struct {
		row uint64
		tag func(uint64) uint64
		sel uint64
	}{
		{0, DataRef, 1},
		{1, DataRef, 1},
		{1<<62 - 1, DataRef, 1},
		{0, OOORef, 0},
		{42, OOORef, 0},
	}
	for _, c := range cases {
		ref := c.tag(c.row)
		if got := Selector(ref); got != c.sel {
			t.Errorf("Selector(%#x) = %d, want %d", ref, got, c.sel)
		}
		if got := Row(ref); got != c.row {
			t.Errorf("Row(%#x) = %d, want %d", ref, got, c.row)
		}
	}
}

func TestIsSorted(t *testing.T) {
	sorted := []Index{{Ts: 1}, {Ts: 1}, {Ts: 3}, {Ts: 5}}
	if !IsSorted(sorted) {
		t.Error("expected sorted")
	}
	unsorted := []Index{{Ts: 5}, {Ts: 1}}
	if IsSorted(unsorted) {
		t.Error("expected not sorted")
	}
	if !IsSorted(nil) || !IsSorted([]Index{{Ts: 1}}) {
		t.Error("degenerate cases should be sorted")
	}
}

func TestNewMergeInputSetPadding(t *testing.T) {
	runs := [][]Index{{{Ts: 1}}, {{Ts: 2}}, {{Ts: 3}}}
	set := NewMergeInputSet(runs)
	if set.Count != 3 {
		t.Fatalf("Count = %d, want 3", set.Count)
	}
	if len(set.Entries) != 4 {
		t.Fatalf("len(Entries) = %d, want 4 (next pow2)", len(set.Entries))
	}
	if !set.Entries[3].Sentinel {
		t.Error("expected padding entry to be marked sentinel")
	}
}
