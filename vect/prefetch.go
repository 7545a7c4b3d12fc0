package vect

import "golang.org/x/sys/cpu"

// prefetchDistance is how many Index records ahead Reshuffle and
// MergeCopyVarColumn/MergeCopyVarColumnTop touch, mirroring the original C kernel's _mm_prefetch(index+64, T0)
// hints over the same scan. Go has no portable prefetch intrinsic, so
// touchAhead approximates the hint by reading the target cache line a
// little early instead of issuing a real non-blocking prefetch.
var prefetchDistance = 64

func init() {
	if cpu.X86.HasAVX512F {
		prefetchDistance = 128
	}
}

// touchAhead reads index[i].Ts to coax it into cache ahead of the loop
// iteration that actually needs it, a software approximation of the
// original kernel's per-element _mm_prefetch call.
func touchAhead(index []Index, i int) {
	if i < len(index) {
		_ = index[i].Ts
	}
}
