package vect

import "testing"

func tsOnly(vals ...uint64) []Index {
	out := make([]Index, len(vals))
	for i, v := range vals {
		out[i] = Index{Ts: v, I: uint64(i)}
	}
	return out
}

func tsSlice(index []Index) []uint64 {
	out := make([]uint64, len(index))
	for i, e := range index {
		out[i] = e.Ts
	}
	return out
}

func TestMergeThreeWay(t *testing.T) {
	// spec.md §8 scenario S3: three pre-sorted runs merged into one.
	runs := [][]Index{
		tsOnly(1, 4, 9),
		tsOnly(2, 3, 8),
		tsOnly(0, 5, 6, 7),
	}
	set := NewMergeInputSet(runs)
	got := Merge(set)

	want := []uint64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	gotTs := tsSlice(got)
	if len(gotTs) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(gotTs), len(want), gotTs)
	}
	for i := range want {
		if gotTs[i] != want[i] {
			t.Fatalf("mismatch at %d: got %v want %v", i, gotTs, want)
		}
	}
}

func TestMergeCountZero(t *testing.T) {
	set := NewMergeInputSet(nil)
	if got := Merge(set); got != nil {
		t.Fatalf("Merge(empty) = %v, want nil", got)
	}
}

func TestMergeCountOnePassesThrough(t *testing.T) {
	run := tsOnly(1, 2, 3)
	set := NewMergeInputSet([][]Index{run})
	got := Merge(set)
	if &got[0] != &run[0] {
		t.Fatal("Count==1 merge should return the input run's own backing array unmodified")
	}
}

func TestMergePreservesMultiset(t *testing.T) {
	runs := [][]Index{
		{{Ts: 10, I: 100}, {Ts: 30, I: 101}},
		{{Ts: 20, I: 200}, {Ts: 40, I: 201}},
		{{Ts: 5, I: 300}},
	}
	set := NewMergeInputSet(runs)
	got := Merge(set)

	seen := make(map[uint64]bool)
	for _, r := range runs {
		for _, e := range r {
			seen[e.I] = true
		}
	}
	if len(got) != len(seen) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(seen))
	}
	for _, e := range got {
		if !seen[e.I] {
			t.Fatalf("unexpected row id %d in merge output", e.I)
		}
		delete(seen, e.I)
	}
	if len(seen) != 0 {
		t.Fatalf("rows missing from merge output: %v", seen)
	}
	if !IsSorted(got) {
		t.Fatalf("merge output not sorted: %v", tsSlice(got))
	}
}

func TestMergeNonPowerOfTwoRunCountPads(t *testing.T) {
	runs := [][]Index{tsOnly(1), tsOnly(2), tsOnly(3)}
	set := NewMergeInputSet(runs)
	if set.Count != 3 || len(set.Entries) != 4 {
		t.Fatalf("Count=%d len(Entries)=%d, want 3 and 4", set.Count, len(set.Entries))
	}
	got := Merge(set)
	want := []uint64{1, 2, 3}
	gotTs := tsSlice(got)
	for i := range want {
		if gotTs[i] != want[i] {
			t.Fatalf("got %v want %v", gotTs, want)
		}
	}
}

func TestFreeMergedIndexIsNoOp(t *testing.T) {
	index := tsOnly(1, 2, 3)
	FreeMergedIndex(index)
	if tsSlice(index)[1] != 2 {
		t.Fatal("FreeMergedIndex should not mutate its argument")
	}
}
