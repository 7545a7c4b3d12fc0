package vect

import (
	"encoding/binary"

	"github.com/vectdb/oomerge/ints"
)

// fixEntryWidth is the byte width of one Fix-table entry (an int64
// offset), used to convert a column-top byte offset into a row shift.
const fixEntryWidth = 8

// lengthPrefix is the length-prefix type of a variable-width column
// (spec.md §3.4): int32 for UTF-16 strings (mult=2), int64 for binaries
// (mult=1).
type lengthPrefix interface {
	~int32 | ~int64
}

// MergeCopyVarColumn materializes a destination (Fix, Var) pair for a
// variable-width column by applying mergeIndex to the two sources
// (ooo and data), writing length-prefixed records into dstVar starting
// at dstVarOffset and recording each row's starting offset in dstFix.
// It returns the destination offset immediately following the last
// written record.
//
// L is the length-prefix type (int32 for strings, int64 for binaries);
// mult is the per-character byte multiplier (2 for UTF-16 strings, 1 for
// binaries). A length of any negative value is a null marker: it is
// written through verbatim with zero payload bytes.
func MergeCopyVarColumn[L lengthPrefix](
	mergeIndex []Index,
	n int,
	srcDataFix []int64, srcDataVar []byte,
	srcOOOFix []int64, srcOOOVar []byte,
	dstFix []int64, dstVar []byte,
	dstVarOffset int64,
	mult int,
) int64 {
	fix := [2][]int64{srcOOOFix, srcDataFix}
	vr := [2][]byte{srcOOOVar, srcDataVar}

	for i := 0; i < n; i++ {
		touchAhead(mergeIndex, i+prefetchDistance)
		dstFix[i] = dstVarOffset
		r := mergeIndex[i].I
		bit := Selector(r)
		row := Row(r)

		offset := fix[bit][row]
		srcRec := vr[bit][offset:]
		length := readLength[L](srcRec)

		charCount := int64(0)
		if length > 0 {
			charCount = length * int64(mult)
		}

		writeLength[L](dstVar[dstVarOffset:], length)
		prefixSize := int64(lengthPrefixSize[L]())
		copy(dstVar[dstVarOffset+prefixSize:], srcRec[prefixSize:prefixSize+charCount])
		dstVarOffset += prefixSize + charCount
	}

	return dstVarOffset
}

// MergeCopyVarColumnTop is MergeCopyVarColumn, except the data-side row
// is additionally shifted by srcDataFixOffset/8 (a byte offset into the
// data-side fix table, per spec.md §4.5's "with top" variant). The ooo
// side is never shifted.
func MergeCopyVarColumnTop[L lengthPrefix](
	mergeIndex []Index,
	n int,
	srcDataFix []int64, srcDataFixOffset int64, srcDataVar []byte,
	srcOOOFix []int64, srcOOOVar []byte,
	dstFix []int64, dstVar []byte,
	dstVarOffset int64,
	mult int,
) int64 {
	if !ints.IsAligned64(uint64(srcDataFixOffset), fixEntryWidth) {
		panic("vect: data-side fix offset is not a whole number of Fix-table entries")
	}
	fix := [2][]int64{srcOOOFix, srcDataFix}
	vr := [2][]byte{srcOOOVar, srcDataVar}
	fixShift := [2]int64{0, srcDataFixOffset / fixEntryWidth}

	for i := 0; i < n; i++ {
		touchAhead(mergeIndex, i+prefetchDistance)
		dstFix[i] = dstVarOffset
		r := mergeIndex[i].I
		bit := Selector(r)
		row := Row(r)

		offset := fix[bit][int64(row)+fixShift[bit]]
		srcRec := vr[bit][offset:]
		length := readLength[L](srcRec)

		charCount := int64(0)
		if length > 0 {
			charCount = length * int64(mult)
		}

		writeLength[L](dstVar[dstVarOffset:], length)
		prefixSize := int64(lengthPrefixSize[L]())
		copy(dstVar[dstVarOffset+prefixSize:], srcRec[prefixSize:prefixSize+charCount])
		dstVarOffset += prefixSize + charCount
	}

	return dstVarOffset
}

func lengthPrefixSize[L lengthPrefix]() int {
	var zero L
	switch any(zero).(type) {
	case int32:
		return 4
	default:
		return 8
	}
}

func readLength[L lengthPrefix](buf []byte) int64 {
	var zero L
	switch any(zero).(type) {
	case int32:
		return int64(int32(binary.LittleEndian.Uint32(buf)))
	default:
		return int64(binary.LittleEndian.Uint64(buf))
	}
}

func writeLength[L lengthPrefix](buf []byte, v int64) {
	var zero L
	switch any(zero).(type) {
	case int32:
		binary.LittleEndian.PutUint32(buf, uint32(int32(v)))
	default:
		binary.LittleEndian.PutUint64(buf, uint64(v))
	}
}
