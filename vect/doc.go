/*
Package vect implements the out-of-order merge kernel: the set of
low-level procedures that incorporate late-arriving, timestamp-keyed rows
into an already time-sorted columnar partition.

Overview

The kernel's currency is Index, a (timestamp, tagged row reference) pair.
A typical ingest commit:

 1. builds an Index array over the new (out-of-order) rows with
    MakeTimestampIndex,
 2. sorts it in place with Sort,
 3. k-way merges it against the previously-sorted runs with Merge,
 4. applies the resulting Index to every column of the partition with
    Reshuffle, MergeShuffle, MergeShuffleTop, or MergeCopyVarColumn,
    depending on whether the column is fixed- or variable-width and
    whether it has a "top" (a late-added column whose storage begins
    partway through the partition).

None of these functions allocate resources the caller must track, except
Merge, whose returned buffer must be released with FreeMergedIndex. Neither
Sort nor Merge is stable: Merge breaks ties by tree position, not input
order, and Sort leaves equal timestamps in no defined order. Callers
that need a stable merge should fold a secondary key into the low bits of
Ts before sorting — see StableKey.

This package is deliberately allocation-light and single-threaded per
call; the host is responsible for serializing or partitioning work across
threads.
*/
package vect
