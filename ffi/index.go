package ffi

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/vectdb/oomerge/vect"
)

// MakeTimestampIndex builds an OOO Index array from data[low:high] into
// the memory at destPtr, mirroring Java_io_questdb_std_Vect_makeTimestampIndex.
func MakeTimestampIndex(ctx context.Context, dataPtr unsafe.Pointer, dataLen int, low, high int, destPtr unsafe.Pointer) error {
	data, err := Bind[int64](dataPtr, dataLen)
	if err != nil {
		return fmt.Errorf("MakeTimestampIndex: data: %w", err)
	}
	if low < 0 || high < low || high >= dataLen {
		return fmt.Errorf("MakeTimestampIndex: %w (low=%d, high=%d, dataLen=%d)", ErrNegativeLength, low, high, dataLen)
	}
	dest, err := Bind[vect.Index](destPtr, high-low+1)
	if err != nil {
		return fmt.Errorf("MakeTimestampIndex: dest: %w", err)
	}
	vect.MakeTimestampIndex(data, low, high, dest)
	logCall(ctx, "MakeTimestampIndex", len(dest))
	return nil
}

// SortLongIndexAscInPlace sorts the Index array at ptr in place, ascending
// by Ts, mirroring Java_io_questdb_std_Vect_sortLongIndexAscInPlace.
func SortLongIndexAscInPlace(ctx context.Context, ptr unsafe.Pointer, n int) error {
	index, err := Bind[vect.Index](ptr, n)
	if err != nil {
		return fmt.Errorf("SortLongIndexAscInPlace: %w", err)
	}
	vect.Sort(index)
	logCall(ctx, "SortLongIndexAscInPlace", n)
	return nil
}

// FlattenIndex resets index[i].I = i for i in [0, count), mirroring
// Java_io_questdb_std_Vect_flattenIndex.
func FlattenIndex(ctx context.Context, ptr unsafe.Pointer, count int) error {
	index, err := Bind[vect.Index](ptr, count)
	if err != nil {
		return fmt.Errorf("FlattenIndex: %w", err)
	}
	vect.FlattenIndex(index, count)
	logCall(ctx, "FlattenIndex", count)
	return nil
}

func checkScanDir(scanDir int) error {
	if scanDir != 1 && scanDir != -1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidScanDir, scanDir)
	}
	return nil
}

// BinarySearch64Bit searches the non-decreasing int64 array at ptr,
// mirroring Java_io_questdb_std_Vect_binarySearch64Bit.
func BinarySearch64Bit(ctx context.Context, ptr unsafe.Pointer, n int, value int64, low, high int, scanDir int) (int, error) {
	if err := checkScanDir(scanDir); err != nil {
		return 0, fmt.Errorf("BinarySearch64Bit: %w", err)
	}
	data, err := Bind[int64](ptr, n)
	if err != nil {
		return 0, fmt.Errorf("BinarySearch64Bit: %w", err)
	}
	result := vect.BinarySearch(data, value, low, high, scanDir)
	logCall(ctx, "BinarySearch64Bit", n)
	return result, nil
}

// BinarySearchIndexT searches the Index array at ptr keyed by Ts,
// mirroring Java_io_questdb_std_Vect_binarySearchIndexT.
func BinarySearchIndexT(ctx context.Context, ptr unsafe.Pointer, n int, value uint64, low, high int, scanDir int) (int, error) {
	if err := checkScanDir(scanDir); err != nil {
		return 0, fmt.Errorf("BinarySearchIndexT: %w", err)
	}
	data, err := Bind[vect.Index](ptr, n)
	if err != nil {
		return 0, fmt.Errorf("BinarySearchIndexT: %w", err)
	}
	result := vect.BinarySearchIndex(data, value, low, high, scanDir)
	logCall(ctx, "BinarySearchIndexT", n)
	return result, nil
}

// OooCopyIndex copies count Index records from srcPtr to destPtr,
// mirroring Java_io_questdb_std_Vect_oooCopyIndex.
func OooCopyIndex(ctx context.Context, srcPtr, destPtr unsafe.Pointer, count int) error {
	src, err := Bind[vect.Index](srcPtr, count)
	if err != nil {
		return fmt.Errorf("OooCopyIndex: src: %w", err)
	}
	dest, err := Bind[vect.Index](destPtr, count)
	if err != nil {
		return fmt.Errorf("OooCopyIndex: dest: %w", err)
	}
	copy(dest, src)
	logCall(ctx, "OooCopyIndex", count)
	return nil
}
