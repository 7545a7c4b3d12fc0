package ffi

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/vectdb/oomerge/vect"
)

// MergeLongIndexesAsc k-way merges count pre-sorted Index runs, one per
// (pointer, length) pair in runPtrs/runLens, mirroring
// Java_io_questdb_std_Vect_mergeLongIndexesAsc. The original ABI packs
// (address, size) pairs into a flat long array the host builds; this
// binding takes them already split out, leaving that packing to the
// thunk layer that would call this function.
func MergeLongIndexesAsc(ctx context.Context, runPtrs []unsafe.Pointer, runLens []int) ([]vect.Index, error) {
	if len(runPtrs) != len(runLens) {
		return nil, fmt.Errorf("MergeLongIndexesAsc: %w (%d ptrs, %d lens)", ErrRunCountMismatch, len(runPtrs), len(runLens))
	}
	runs := make([][]vect.Index, len(runPtrs))
	for i, p := range runPtrs {
		run, err := Bind[vect.Index](p, runLens[i])
		if err != nil {
			return nil, fmt.Errorf("MergeLongIndexesAsc: run %d: %w", i, err)
		}
		runs[i] = run
	}
	set := vect.NewMergeInputSet(runs)
	result := vect.Merge(set)
	logCall(ctx, "MergeLongIndexesAsc", len(result))
	return result, nil
}

// FreeMergedIndex releases the buffer returned by MergeLongIndexesAsc.
// It is a no-op in Go; see vect.FreeMergedIndex's doc comment for why the
// asymmetry with the C ABI is intentional.
func FreeMergedIndex(ctx context.Context, merged []vect.Index) {
	vect.FreeMergedIndex(merged)
	logCall(ctx, "FreeMergedIndex", len(merged))
}
