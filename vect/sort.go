package vect

// radixDispatchThreshold is the array size at or above which Sort uses
// radix sort instead of quicksort. Overridable only for benchmarking via
// SortWithThreshold; production callers should use Sort.
const radixDispatchThreshold = 600

// Sort sorts index in place, ascending by Ts, treating Ts as unsigned.
// The sort is not stable: records with equal Ts may end up in either
// relative order. Dispatches to quicksort below 600 elements, 8-pass LSD
// radix sort at or above it, per spec.md §4.2.
func Sort(index []Index) {
	SortWithThreshold(index, radixDispatchThreshold)
}

// SortWithThreshold is Sort with an overridable quicksort/radix dispatch
// threshold, exposed for testing the dispatch-equivalence property
// (spec.md §8 item 2) and for cmd/mergebench experimentation.
func SortWithThreshold(index []Index, threshold int) {
	if len(index) < 2 {
		return
	}
	if len(index) < threshold {
		quicksortAsc(index, 0, len(index)-1)
	} else {
		radixSortAsc(index)
	}
}
