package vect

import "testing"

func TestReshuffleAppliesPermutation(t *testing.T) {
	src := []int64{100, 200, 300, 400}
	index := []Index{{I: 2}, {I: 0}, {I: 3}, {I: 1}}
	dst := make([]int64, 4)
	Reshuffle(src, dst, index, 4)

	want := []int64{300, 100, 400, 200}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestMergeShuffleSelectsBySelectorBit(t *testing.T) {
	// spec.md §8 scenario S4: gather from two sources by the tagged
	// reference's selector bit.
	data := []int32{10, 20, 30}
	ooo := []int32{91, 92}

	index := []Index{
		{I: OOORef(1)},  // ooo[1] = 92
		{I: DataRef(0)}, // data[0] = 10
		{I: OOORef(0)},  // ooo[0] = 91
		{I: DataRef(2)}, // data[2] = 30
	}
	dst := make([]int32, 4)
	MergeShuffle(data, ooo, dst, index, 4)

	want := []int32{92, 10, 91, 30}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestMergeShuffleTopShiftsDataSideOnly(t *testing.T) {
	data := []int64{0, 0, 700, 800} // column top: real data starts at index 2
	ooo := []int64{91, 92}

	index := []Index{
		{I: DataRef(0)}, // logical row 0 -> physical row 2 (shift=2)
		{I: OOORef(1)},  // ooo[1], not shifted
		{I: DataRef(1)}, // logical row 1 -> physical row 3
	}
	dst := make([]int64, 3)
	MergeShuffleTop(data, ooo, dst, index, 3, 16) // topOffset=16 bytes / 8 = shift of 2

	want := []int64{700, 92, 800}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestSelectorRoundTripAcrossShuffle(t *testing.T) {
	for row := uint64(0); row < 10; row++ {
		d := DataRef(row)
		o := OOORef(row)
		if Selector(d) != 1 || Row(d) != row {
			t.Fatalf("DataRef(%d): selector=%d row=%d", row, Selector(d), Row(d))
		}
		if Selector(o) != 0 || Row(o) != row {
			t.Fatalf("OOORef(%d): selector=%d row=%d", row, Selector(o), Row(o))
		}
	}
}
