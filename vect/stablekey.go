package vect

// StableKey folds sourceOrdinal and row into the low 8 bits of ts,
// giving callers a way to make Sort/Merge behave as if they were stable
// despite neither being stable (Merge breaks ties by tree position)
// (spec.md §9's open question on merge tie-breaking). Among records that
// share their original ts, the result orders earlier runs before later
// ones, and earlier rows within a run before later ones, because the
// packed low byte preserves the (sourceOrdinal, row) ordering directly
// rather than scrambling it through a hash.
//
// sourceOrdinal and row must each fit in 4 bits (0-15); callers needing
// more headroom should widen the split or reserve more low bits of ts
// for it before sorting. This is an opt-in helper — Sort and Merge never
// call it themselves.
func StableKey(ts uint64, sourceOrdinal int, row uint64) uint64 {
	packed := (uint64(sourceOrdinal&0xf) << 4) | (row & 0xf)
	return (ts &^ 0xff) | packed
}
