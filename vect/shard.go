package vect

import (
	"encoding/binary"
	"hash/maphash"
)

// shardSeed is fixed for the process lifetime; ShardOf only needs
// repeatable results within one run, not a stable hash across restarts.
var shardSeed = maphash.MakeSeed()

// ShardOf deterministically assigns a source row to one of nshards
// partitions by hashing (sourceOrdinal, row) with hash/maphash — no repo
// in the retrieved pack does keyed hash-mod-n routing with a library, so
// this uses the standard library's own hash primitive rather than
// reaching for an unexercised one. Spec.md §5 leaves "any outer
// parallelism across partitions" to the host; this is the host-side
// helper this module supplies for splitting an OOO batch across
// independent MakeTimestampIndex/Sort/Merge calls that can run on
// separate goroutines, since the kernel itself performs no concurrency
// control of its own.
func ShardOf(sourceOrdinal int, row uint64, nshards int) int {
	if nshards <= 1 {
		return 0
	}
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(sourceOrdinal))
	binary.LittleEndian.PutUint64(buf[8:16], row)
	h := maphash.Bytes(shardSeed, buf[:])
	return int(h % uint64(nshards))
}
