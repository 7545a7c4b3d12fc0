package vect

// insertionThreshold is the sub-range size at or below which quicksort falls
// back to insertion sort instead of recursing further; see spec.md §9's
// design note recommending this for robustness on adversarial inputs.
const insertionThreshold = 32

// quicksortRange is a pending (left, right) interval, used to make the
// partition loop iterative instead of recursive (spec.md §9: "prefer an
// iterative quicksort ... for robustness" over the original's unbounded
// recursion).
type quicksortRange struct {
	left, right int
}

// quicksortAsc sorts index[left:right] (inclusive both ends) in place,
// ascending by Ts, using Lomuto partitioning on the last element as
// pivot, the same partition/recurse shape as original_source's
// partition/quick_sort_long_index_asc_in_place pair, but replacing the
// original's unbounded recursion with an explicit work stack plus an
// insertion-sort floor.
func quicksortAsc(index []Index, left, right int) {
	stack := []quicksortRange{{left, right}}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		left, right = r.left, r.right

		for right-left+1 > insertionThreshold {
			pi := lomutoPartitionAsc(index, left, right)
			// recurse into the smaller side first to bound stack depth,
			// push the larger side for the next iteration
			if pi-left < right-pi {
				if pi+1 < right {
					stack = append(stack, quicksortRange{pi + 1, right})
				}
				right = pi - 1
			} else {
				if left < pi-1 {
					stack = append(stack, quicksortRange{left, pi - 1})
				}
				left = pi + 1
			}
		}
		insertionSortAsc(index, left, right)
	}
}

// lomutoPartitionAsc partitions index[low:high] around index[high].Ts,
// returning the pivot's final position.
func lomutoPartitionAsc(index []Index, low, high int) int {
	pivot := index[high].Ts
	i := low - 1
	for j := low; j < high; j++ {
		if index[j].Ts <= pivot {
			i++
			index[i], index[j] = index[j], index[i]
		}
	}
	index[i+1], index[high] = index[high], index[i+1]
	return i + 1
}

// insertionSortAsc sorts index[low:high] (inclusive) in place; used both
// as quicksort's recursion floor and directly for small arrays.
func insertionSortAsc(index []Index, low, high int) {
	for i := low + 1; i <= high; i++ {
		cur := index[i]
		j := i - 1
		for j >= low && index[j].Ts > cur.Ts {
			index[j+1] = index[j]
			j--
		}
		index[j+1] = cur
	}
}
