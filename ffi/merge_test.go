package ffi

import (
	"context"
	"errors"
	"testing"
	"unsafe"

	"github.com/vectdb/oomerge/vect"
)

func TestMergeLongIndexesAscRejectsCountMismatch(t *testing.T) {
	run := []vect.Index{{Ts: 1}}
	_, err := MergeLongIndexesAsc(context.Background(), []unsafe.Pointer{unsafe.Pointer(&run[0])}, []int{1, 2})
	if !errors.Is(err, ErrRunCountMismatch) {
		t.Fatalf("got %v, want ErrRunCountMismatch", err)
	}
}

func TestMergeLongIndexesAscMergesRuns(t *testing.T) {
	run1 := []vect.Index{{Ts: 1}, {Ts: 4}}
	run2 := []vect.Index{{Ts: 2}, {Ts: 3}}

	got, err := MergeLongIndexesAsc(context.Background(),
		[]unsafe.Pointer{unsafe.Pointer(&run1[0]), unsafe.Pointer(&run2[0])},
		[]int{len(run1), len(run2)},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []uint64{1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Ts != w {
			t.Fatalf("got[%d].Ts = %d, want %d", i, got[i].Ts, w)
		}
	}

	FreeMergedIndex(context.Background(), got)
}
