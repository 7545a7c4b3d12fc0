package ffi

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/vectdb/oomerge/vect"
)

func reshuffle[T any](ctx context.Context, op string, srcPtr, destPtr, indexPtr unsafe.Pointer, count int) error {
	src, err := Bind[T](srcPtr, count)
	if err != nil {
		return fmt.Errorf("%s: src: %w", op, err)
	}
	dest, err := Bind[T](destPtr, count)
	if err != nil {
		return fmt.Errorf("%s: dest: %w", op, err)
	}
	index, err := Bind[vect.Index](indexPtr, count)
	if err != nil {
		return fmt.Errorf("%s: index: %w", op, err)
	}
	vect.Reshuffle(src, dest, index, count)
	logCall(ctx, op, count)
	return nil
}

// IndexReshuffle8Bit applies the sort/merge permutation in the Index
// array at indexPtr to an 8-bit-element column, mirroring
// Java_io_questdb_std_Vect_indexReshuffle8Bit.
func IndexReshuffle8Bit(ctx context.Context, srcPtr, destPtr, indexPtr unsafe.Pointer, count int) error {
	return reshuffle[int8](ctx, "IndexReshuffle8Bit", srcPtr, destPtr, indexPtr, count)
}

// IndexReshuffle16Bit is IndexReshuffle8Bit for 16-bit elements,
// mirroring Java_io_questdb_std_Vect_indexReshuffle16Bit.
func IndexReshuffle16Bit(ctx context.Context, srcPtr, destPtr, indexPtr unsafe.Pointer, count int) error {
	return reshuffle[int16](ctx, "IndexReshuffle16Bit", srcPtr, destPtr, indexPtr, count)
}

// IndexReshuffle32Bit is IndexReshuffle8Bit for 32-bit elements,
// mirroring Java_io_questdb_std_Vect_indexReshuffle32Bit.
func IndexReshuffle32Bit(ctx context.Context, srcPtr, destPtr, indexPtr unsafe.Pointer, count int) error {
	return reshuffle[int32](ctx, "IndexReshuffle32Bit", srcPtr, destPtr, indexPtr, count)
}

// IndexReshuffle64Bit is IndexReshuffle8Bit for 64-bit elements,
// mirroring Java_io_questdb_std_Vect_indexReshuffle64Bit.
func IndexReshuffle64Bit(ctx context.Context, srcPtr, destPtr, indexPtr unsafe.Pointer, count int) error {
	return reshuffle[int64](ctx, "IndexReshuffle64Bit", srcPtr, destPtr, indexPtr, count)
}

func mergeShuffle[T any](ctx context.Context, op string, src1Ptr, src2Ptr, destPtr, indexPtr unsafe.Pointer, count int) error {
	src1, err := Bind[T](src1Ptr, count)
	if err != nil {
		return fmt.Errorf("%s: src1: %w", op, err)
	}
	src2, err := Bind[T](src2Ptr, count)
	if err != nil {
		return fmt.Errorf("%s: src2: %w", op, err)
	}
	dest, err := Bind[T](destPtr, count)
	if err != nil {
		return fmt.Errorf("%s: dest: %w", op, err)
	}
	index, err := Bind[vect.Index](indexPtr, count)
	if err != nil {
		return fmt.Errorf("%s: index: %w", op, err)
	}
	vect.MergeShuffle(src1, src2, dest, index, count)
	logCall(ctx, op, count)
	return nil
}

// MergeShuffle8Bit gathers an 8-bit-element column from two sources by
// the tagged references in the Index array at indexPtr, mirroring
// Java_io_questdb_std_Vect_mergeShuffle8Bit.
func MergeShuffle8Bit(ctx context.Context, src1Ptr, src2Ptr, destPtr, indexPtr unsafe.Pointer, count int) error {
	return mergeShuffle[int8](ctx, "MergeShuffle8Bit", src1Ptr, src2Ptr, destPtr, indexPtr, count)
}

// MergeShuffle16Bit is MergeShuffle8Bit for 16-bit elements, mirroring
// Java_io_questdb_std_Vect_mergeShuffle16Bit.
func MergeShuffle16Bit(ctx context.Context, src1Ptr, src2Ptr, destPtr, indexPtr unsafe.Pointer, count int) error {
	return mergeShuffle[int16](ctx, "MergeShuffle16Bit", src1Ptr, src2Ptr, destPtr, indexPtr, count)
}

// MergeShuffle32Bit is MergeShuffle8Bit for 32-bit elements, mirroring
// Java_io_questdb_std_Vect_mergeShuffle32Bit.
func MergeShuffle32Bit(ctx context.Context, src1Ptr, src2Ptr, destPtr, indexPtr unsafe.Pointer, count int) error {
	return mergeShuffle[int32](ctx, "MergeShuffle32Bit", src1Ptr, src2Ptr, destPtr, indexPtr, count)
}

// MergeShuffle64Bit is MergeShuffle8Bit for 64-bit elements, mirroring
// Java_io_questdb_std_Vect_mergeShuffle64Bit.
func MergeShuffle64Bit(ctx context.Context, src1Ptr, src2Ptr, destPtr, indexPtr unsafe.Pointer, count int) error {
	return mergeShuffle[int64](ctx, "MergeShuffle64Bit", src1Ptr, src2Ptr, destPtr, indexPtr, count)
}

func mergeShuffleWithTop[T any](ctx context.Context, op string, src1Ptr, src2Ptr, destPtr, indexPtr unsafe.Pointer, count int, topOffset int64) error {
	// data-side rows are read past the column top, so src1 spans the top
	// elements plus count rows.
	var zero T
	src1, err := Bind[T](src1Ptr, count+int(topOffset/int64(unsafe.Sizeof(zero))))
	if err != nil {
		return fmt.Errorf("%s: src1: %w", op, err)
	}
	src2, err := Bind[T](src2Ptr, count)
	if err != nil {
		return fmt.Errorf("%s: src2: %w", op, err)
	}
	dest, err := Bind[T](destPtr, count)
	if err != nil {
		return fmt.Errorf("%s: dest: %w", op, err)
	}
	index, err := Bind[vect.Index](indexPtr, count)
	if err != nil {
		return fmt.Errorf("%s: index: %w", op, err)
	}
	vect.MergeShuffleTop(src1, src2, dest, index, count, topOffset)
	logCall(ctx, op, count)
	return nil
}

// MergeShuffleWithTop8Bit is MergeShuffle8Bit with a column-top row shift
// applied to the data side, mirroring
// Java_io_questdb_std_Vect_mergeShuffleWithTop8Bit.
func MergeShuffleWithTop8Bit(ctx context.Context, src1Ptr, src2Ptr, destPtr, indexPtr unsafe.Pointer, count int, topOffset int64) error {
	return mergeShuffleWithTop[int8](ctx, "MergeShuffleWithTop8Bit", src1Ptr, src2Ptr, destPtr, indexPtr, count, topOffset)
}

// MergeShuffleWithTop16Bit is MergeShuffleWithTop8Bit for 16-bit elements,
// mirroring Java_io_questdb_std_Vect_mergeShuffleWithTop16Bit.
func MergeShuffleWithTop16Bit(ctx context.Context, src1Ptr, src2Ptr, destPtr, indexPtr unsafe.Pointer, count int, topOffset int64) error {
	return mergeShuffleWithTop[int16](ctx, "MergeShuffleWithTop16Bit", src1Ptr, src2Ptr, destPtr, indexPtr, count, topOffset)
}

// MergeShuffleWithTop32Bit is MergeShuffleWithTop8Bit for 32-bit elements,
// mirroring Java_io_questdb_std_Vect_mergeShuffleWithTop32Bit.
func MergeShuffleWithTop32Bit(ctx context.Context, src1Ptr, src2Ptr, destPtr, indexPtr unsafe.Pointer, count int, topOffset int64) error {
	return mergeShuffleWithTop[int32](ctx, "MergeShuffleWithTop32Bit", src1Ptr, src2Ptr, destPtr, indexPtr, count, topOffset)
}

// MergeShuffleWithTop64Bit is MergeShuffleWithTop8Bit for 64-bit elements,
// mirroring Java_io_questdb_std_Vect_mergeShuffleWithTop64Bit.
func MergeShuffleWithTop64Bit(ctx context.Context, src1Ptr, src2Ptr, destPtr, indexPtr unsafe.Pointer, count int, topOffset int64) error {
	return mergeShuffleWithTop[int64](ctx, "MergeShuffleWithTop64Bit", src1Ptr, src2Ptr, destPtr, indexPtr, count, topOffset)
}
