package vect

import (
	"golang.org/x/exp/constraints"

	"github.com/vectdb/oomerge/internal/memops"
)

// MakeTimestampIndex builds an out-of-order Index array from data[low:high]
// (inclusive on both ends): dest[l-low] = {Ts: data[l], I: l | OOOTag}.
func MakeTimestampIndex(data []int64, low, high int, dest []Index) {
	for l := low; l <= high; l++ {
		dest[l-low] = Index{Ts: uint64(data[l]), I: uint64(l) | OOOTag}
	}
}

// FlattenIndex sets index[i].I = i for i in [0, count), leaving Ts
// untouched. This is used to reset a freshly-sorted index so that I
// identifies position within the sort result rather than source row.
func FlattenIndex(index []Index, count int) {
	for i := 0; i < count; i++ {
		index[i].I = uint64(i)
	}
}

// CopyIndexTimestamps writes dest[i] = index[i].Ts for i in [0, n).
func CopyIndexTimestamps(index []Index, n int, dest []int64) {
	for i := 0; i < n; i++ {
		dest[i] = int64(index[i].Ts)
	}
}

// numeric is the element-type constraint SetMemory/SetVarRefs operate
// over: the five fixed-width payload types named in spec.md §4.1.
type numeric interface {
	~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// SetMemory fills buf with value, the generalization of
// internal/memops.ZeroMemory to an arbitrary fill value.
func SetMemory[T numeric](buf []T, value T) {
	if value == 0 {
		memops.ZeroMemory(buf)
		return
	}
	for i := range buf {
		buf[i] = value
	}
}

// varRefSize is the byte size of the length-prefix type used by
// SetVarRefs's caller, surfaced so the offsets progression matches the
// variable column layout of spec.md §3.4.
type varRefSize interface {
	~int32 | ~int64
}

// SetVarRefs writes the arithmetic progression addr[i] = offset + i *
// sizeof(T) into addr, producing the initial offsets table for an empty
// variable column of length-prefix type T.
func SetVarRefs[T varRefSize](addr []int64, offset int64, count int) {
	var zero T
	inc := int64(sizeOf(zero))
	for i := 0; i < count; i++ {
		addr[i] = offset + int64(i)*inc
	}
}

func sizeOf[T varRefSize](zero T) int {
	switch any(zero).(type) {
	case int32:
		return 4
	default:
		return 8
	}
}

// BinarySearch searches the non-decreasing array data[low:high] (both
// ends inclusive) for value, per spec.md §4.1:
//
//   - if value is present, scanning continues across equal elements in
//     direction scanDir (+1 or -1) and the last equal-valued position in
//     that direction is returned;
//   - if value is smaller than every element, low-1 is returned (which
//     may be negative);
//   - if value is larger than every element, high is returned.
//
// Behavior is undefined when low > high.
func BinarySearch[T constraints.Integer](data []T, value T, low, high int, scanDir int) int {
	for low < high {
		mid := (low + high) / 2
		midVal := data[mid]

		if midVal < value {
			if low < mid {
				low = mid
			} else {
				if data[high] > value {
					return low
				}
				return high
			}
		} else if midVal > value {
			high = mid
		} else {
			mid += scanDir
			for mid >= low && mid <= high && data[mid] == midVal {
				mid += scanDir
			}
			return mid - scanDir
		}
	}

	if data[low] > value {
		return low - 1
	}
	return low
}

// BinarySearchIndex is BinarySearch specialized to an Index array keyed
// by Ts, as used by the ABI's BinarySearchIndexT entry point.
func BinarySearchIndex(data []Index, value uint64, low, high int, scanDir int) int {
	for low < high {
		mid := (low + high) / 2
		midVal := data[mid].Ts

		if midVal < value {
			if low < mid {
				low = mid
			} else {
				if data[high].Ts > value {
					return low
				}
				return high
			}
		} else if midVal > value {
			high = mid
		} else {
			mid += scanDir
			for mid >= low && mid <= high && data[mid].Ts == midVal {
				mid += scanDir
			}
			return mid - scanDir
		}
	}

	if data[low].Ts > value {
		return low - 1
	}
	return low
}
