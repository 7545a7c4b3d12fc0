package vect

import (
	"math/rand"
	"sort"
	"testing"
)

func randomIndex(n int, seed int64) []Index {
	r := rand.New(rand.NewSource(seed))
	out := make([]Index, n)
	for i := range out {
		out[i] = Index{Ts: uint64(r.Int63()), I: uint64(i)}
	}
	return out
}

func isAscByTs(index []Index) bool {
	for i := 1; i < len(index); i++ {
		if index[i-1].Ts > index[i].Ts {
			return false
		}
	}
	return true
}

func TestSortSmallQuicksortPath(t *testing.T) {
	index := []Index{{Ts: 5}, {Ts: 1}, {Ts: 4}, {Ts: 2}, {Ts: 3}}
	Sort(index)
	if !isAscByTs(index) {
		t.Fatalf("not sorted: %+v", index)
	}
}

func TestSortEmptyAndSingleton(t *testing.T) {
	var empty []Index
	Sort(empty)

	single := []Index{{Ts: 42}}
	Sort(single)
	if single[0].Ts != 42 {
		t.Fatal("singleton mutated")
	}
}

func TestSortDispatchEquivalence(t *testing.T) {
	// spec.md §8 item 2: quicksort and radix sort must agree on the same
	// input, so force both paths over the same data via SortWithThreshold.
	base := randomIndex(2000, 1)

	quick := append([]Index(nil), base...)
	SortWithThreshold(quick, len(quick)+1)

	radix := append([]Index(nil), base...)
	SortWithThreshold(radix, 1)

	if !isAscByTs(quick) || !isAscByTs(radix) {
		t.Fatal("one of the dispatch paths produced an unsorted result")
	}
	for i := range quick {
		if quick[i].Ts != radix[i].Ts {
			t.Fatalf("quicksort and radix disagree at position %d: %d vs %d", i, quick[i].Ts, radix[i].Ts)
		}
	}
}

func TestSortAgainstReferenceSort(t *testing.T) {
	for _, n := range []int{0, 1, 2, 31, 32, 33, 599, 600, 601, 4096} {
		index := randomIndex(n, int64(n)+7)
		want := append([]Index(nil), index...)
		sort.Slice(want, func(i, j int) bool { return want[i].Ts < want[j].Ts })

		Sort(index)
		for i := range want {
			if index[i].Ts != want[i].Ts {
				t.Fatalf("n=%d: mismatch at %d: got %d want %d", n, i, index[i].Ts, want[i].Ts)
			}
		}
	}
}

func TestSortPreservesMultiset(t *testing.T) {
	index := randomIndex(1500, 99)
	seen := make(map[uint64]int)
	for _, e := range index {
		seen[e.I]++
	}
	Sort(index)
	after := make(map[uint64]int)
	for _, e := range index {
		after[e.I]++
	}
	if len(seen) != len(after) {
		t.Fatalf("row-id multiset size changed: %d vs %d", len(seen), len(after))
	}
	for k, v := range seen {
		if after[k] != v {
			t.Fatalf("row id %d count changed: %d vs %d", k, v, after[k])
		}
	}
}
