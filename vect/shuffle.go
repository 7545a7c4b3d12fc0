package vect

import "github.com/vectdb/oomerge/ints"

// shuffleElem is the element-type constraint for the fixed-width
// shuffle kernels: the 8/16/32/64-bit payload widths named in spec.md
// §4.4. Go generics let a single definition stand in for what the
// teacher's C++ original expressed as one function template
// instantiated per width.
type shuffleElem interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

// Reshuffle applies the merge/sort permutation in index to src,
// producing dest[i] = src[index[i].I]. Used after Sort to apply the
// sort permutation to every column of a partition.
func Reshuffle[T shuffleElem](src, dest []T, index []Index, count int) {
	for i := 0; i < count; i++ {
		touchAhead(index, i+prefetchDistance)
		dest[i] = src[index[i].I]
	}
}

// MergeShuffle gathers dest from two sources using the tagged
// references in index (spec.md §3.2): bit 63 set selects src1 ("data"),
// clear selects src2 ("ooo").
func MergeShuffle[T shuffleElem](src1, src2, dest []T, index []Index, count int) {
	for i := 0; i < count; i++ {
		r := index[i].I
		if Selector(r) == 1 {
			dest[i] = src1[Row(r)]
		} else {
			dest[i] = src2[Row(r)]
		}
	}
}

// MergeShuffleTop is MergeShuffle, except the data-side (src1) row is
// shifted by topOffset/sizeof(T) elements before indexing — the "column
// top" handling of spec.md §3.5, used when src1 is a column whose
// on-disk storage begins at a non-zero logical row. The ooo side is
// never shifted.
func MergeShuffleTop[T shuffleElem](src1, src2, dest []T, index []Index, count int, topOffset int64) {
	var zero T
	width := uint64(elemSize(zero))
	if !ints.IsAligned64(uint64(topOffset), width) {
		panic("vect: column top offset is not a whole number of elements")
	}
	shift := topOffset / int64(width)
	for i := 0; i < count; i++ {
		r := index[i].I
		if Selector(r) == 1 {
			dest[i] = src1[int64(Row(r))+shift]
		} else {
			dest[i] = src2[Row(r)]
		}
	}
}

func elemSize[T shuffleElem](zero T) int {
	switch any(zero).(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	default:
		return 8
	}
}
