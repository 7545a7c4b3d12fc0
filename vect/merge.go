package vect

// loserNode is one node of the tournament tree: the current head value
// of the winning leaf beneath it, and which leaf that winner is.
type loserNode struct {
	value     uint64
	leafIndex int
}

// Merge k-way merges the pre-sorted runs in set into a single ascending
// Index slice, via a tournament loser tree (so named in the literature;
// per spec.md's glossary, this implementation is actually a winner
// tree — each node stores the winner of its subtree).
//
// Degenerate cases, per spec.md §4.3 and §6 item 3:
//   - Count == 0 returns nil.
//   - Count == 1 returns the single run's own slice, unmodified and
//     un-copied; it aliases the caller's run (see FreeMergedIndex).
func Merge(set MergeInputSet) []Index {
	if set.Count < 1 {
		return nil
	}
	if set.Count == 1 {
		return set.Entries[0].Index
	}

	size := len(set.Entries)
	total := 0
	live := 0
	for i := 0; i < set.Count; i++ {
		total += len(set.Entries[i].Index)
		if len(set.Entries[i].Index) > 0 {
			live++
		}
	}

	dest := make([]Index, total)
	pos := 0

	tree := make([]loserNode, 2*size)
	for i := 0; i < size; i++ {
		e := &set.Entries[i]
		leaf := size + i
		if !e.Sentinel && len(e.Index) > 0 {
			tree[leaf] = loserNode{value: e.Index[0].Ts, leafIndex: leaf}
		} else {
			tree[leaf] = loserNode{value: LMax, leafIndex: leaf}
		}
	}
	for i := 2*size - 1; i > 1; i -= 2 {
		winner := i
		if tree[i-1].value < tree[i].value {
			winner = i - 1
		}
		tree[i/2] = tree[winner]
	}

	// empty runs start as LMax leaves and are never exhausted by the loop,
	// so only non-empty runs count toward termination.
	sentinelsLeft := live
	winnerLeaf := tree[1].leafIndex
	winner := &set.Entries[winnerLeaf-size]
	if winner.pos < len(winner.Index) {
		dest[pos] = winner.Index[winner.pos]
		pos++
	} else {
		sentinelsLeft--
	}

	for sentinelsLeft > 0 {
		winner.pos++
		if winner.pos < len(winner.Index) {
			tree[winnerLeaf].value = winner.Index[winner.pos].Ts
		} else {
			tree[winnerLeaf].value = LMax
			sentinelsLeft--
		}

		if sentinelsLeft == 0 {
			break
		}

		for winnerLeaf > 1 {
			sibling := winnerLeaf + 1
			if winnerLeaf%2 == 1 {
				sibling = winnerLeaf - 1
			}
			target := winnerLeaf / 2
			if tree[winnerLeaf].value < tree[sibling].value {
				tree[target] = tree[winnerLeaf]
			} else {
				tree[target] = tree[sibling]
			}
			winnerLeaf = target
		}
		winnerLeaf = tree[1].leafIndex
		winner = &set.Entries[winnerLeaf-size]
		dest[pos] = winner.Index[winner.pos]
		pos++
	}

	return dest[:pos]
}

// FreeMergedIndex releases the buffer returned by Merge. It is a no-op
// in Go — the slice is reclaimed by the garbage collector once
// unreferenced — and is provided only so callers porting the C ABI
// (spec.md §6 item 3) have a symmetrical call to make. It must not be
// called on the result of a Count==1 merge in the original C ABI (that
// result aliases caller-owned memory); calling it here is harmless since
// it does nothing, but callers should still track Count to match the
// documented contract.
func FreeMergedIndex(_ []Index) {}
