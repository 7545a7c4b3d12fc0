package ffi

import (
	"errors"
	"testing"
	"unsafe"
)

func TestBindRejectsNilPointer(t *testing.T) {
	_, err := Bind[int64](nil, 4)
	if !errors.Is(err, ErrNilPointer) {
		t.Fatalf("got %v, want ErrNilPointer", err)
	}
}

func TestBindRejectsNegativeLength(t *testing.T) {
	var x int64
	_, err := Bind[int64](unsafe.Pointer(&x), -1)
	if !errors.Is(err, ErrNegativeLength) {
		t.Fatalf("got %v, want ErrNegativeLength", err)
	}
}

func TestBindZeroLengthIsNilNoError(t *testing.T) {
	s, err := Bind[int64](nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != nil {
		t.Fatalf("expected nil slice for n=0, got %v", s)
	}
}

func TestBindRejectsMisalignedPointer(t *testing.T) {
	buf := make([]byte, 16)
	// Find a byte offset guaranteed misaligned for int64 (align 8).
	base := unsafe.Pointer(&buf[0])
	misaligned := unsafe.Add(base, 1)
	_, err := Bind[int64](misaligned, 1)
	if !errors.Is(err, ErrMisaligned) {
		t.Fatalf("got %v, want ErrMisaligned", err)
	}
}

func TestBindAcceptsValidAlignedPointer(t *testing.T) {
	data := []int64{1, 2, 3, 4}
	got, err := Bind[int64](unsafe.Pointer(&data[0]), len(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 || got[2] != 3 {
		t.Fatalf("got %v, want [1 2 3 4]", got)
	}
}
