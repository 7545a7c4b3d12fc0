package vect

import "sync"

// radixScratchPool recycles the scratch buffers used by radixSortAsc,
// the same sync.Pool-of-reusable-buffers shape the vm package uses for
// its argument/string-builder pools, since this kernel runs over
// millions of rows per commit (spec.md §1) and repeated multi-megabyte
// allocations on the hot path would dominate. The original C
// implementation's malloc/free pair leaks on the panic/exception path;
// acquireScratch's caller always defers release, closing that gap per
// spec.md §9.
var radixScratchPool sync.Pool

func acquireScratch(n int) []Index {
	if v, ok := radixScratchPool.Get().([]Index); ok && cap(v) >= n {
		return v[:n]
	}
	return make([]Index, n)
}

func releaseScratch(buf []Index) {
	radixScratchPool.Put(buf[:0])
}

// radixSortAsc sorts index ascending by Ts using an 8-pass LSD radix
// sort over the bytes of Ts (little-endian byte significance), per
// spec.md §4.2. Each pass computes nothing itself; histograms for all
// eight byte lanes are built in a single linear scan up front and
// converted to exclusive-prefix-sum offset tables before the shuffle
// passes run.
func radixSortAsc(index []Index) {
	n := len(index)
	if n == 0 {
		return
	}

	var counts [8][256]int
	for i := 0; i < n; i++ {
		ts := index[i].Ts
		for byteIdx := 0; byteIdx < 8; byteIdx++ {
			digit := (ts >> (8 * byteIdx)) & 0xff
			counts[byteIdx][digit]++
		}
	}

	for byteIdx := 0; byteIdx < 8; byteIdx++ {
		offset := 0
		for digit := 0; digit < 256; digit++ {
			c := counts[byteIdx][digit]
			counts[byteIdx][digit] = offset
			offset += c
		}
	}

	scratch := acquireScratch(n)
	defer releaseScratch(scratch)

	src, dst := index, scratch
	for byteIdx := 0; byteIdx < 8; byteIdx++ {
		shift := uint(8 * byteIdx)
		c := &counts[byteIdx]
		for x := 0; x < n; x++ {
			digit := (src[x].Ts >> shift) & 0xff
			dst[c[digit]] = src[x]
			c[digit]++
		}
		src, dst = dst, src
	}
	// 8 (even) passes always land the result back in index.
}
