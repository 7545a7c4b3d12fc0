package ffi

import (
	"fmt"
	"unsafe"

	"github.com/vectdb/oomerge/ints"
)

// Bind validates ptr and n, then returns a []T slice header aliasing the
// n*sizeof(T) bytes starting at ptr. No copy is made: the returned slice
// is only valid for as long as the host guarantees ptr's memory is live
// and not concurrently mutated elsewhere, per spec.md §5's no-aliasing
// resource model.
func Bind[T any](ptr unsafe.Pointer, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("bind %T: %w (n=%d)", *new(T), ErrNegativeLength, n)
	}
	if n == 0 {
		return nil, nil
	}
	if ptr == nil {
		return nil, fmt.Errorf("bind %T: %w", *new(T), ErrNilPointer)
	}
	var zero T
	align := uint64(unsafe.Alignof(zero))
	if !ints.IsAligned64(uint64(uintptr(ptr)), align) {
		return nil, fmt.Errorf("bind %T: %w (addr=%#x, align=%d)", zero, ErrMisaligned, uintptr(ptr), align)
	}
	return unsafe.Slice((*T)(ptr), n), nil
}
