package ffi

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/vectdb/oomerge/vect"
)

// SetMemoryLong fills count int64 elements at ptr with value, mirroring
// Java_io_questdb_std_Vect_setMemoryLong.
func SetMemoryLong(ctx context.Context, ptr unsafe.Pointer, value int64, count int) error {
	buf, err := Bind[int64](ptr, count)
	if err != nil {
		return fmt.Errorf("SetMemoryLong: %w", err)
	}
	vect.SetMemory(buf, value)
	logCall(ctx, "SetMemoryLong", count)
	return nil
}

// SetMemoryInt is SetMemoryLong for int32 elements, mirroring
// Java_io_questdb_std_Vect_setMemoryInt. The kernel's SetMemory is
// defined over int16/32/64 and float32/64 (spec.md §4.1); int32 here
// satisfies that constraint directly.
func SetMemoryInt(ctx context.Context, ptr unsafe.Pointer, value int32, count int) error {
	buf, err := Bind[int32](ptr, count)
	if err != nil {
		return fmt.Errorf("SetMemoryInt: %w", err)
	}
	vect.SetMemory(buf, value)
	logCall(ctx, "SetMemoryInt", count)
	return nil
}

// SetMemoryShort is SetMemoryLong for int16 elements, mirroring
// Java_io_questdb_std_Vect_setMemoryShort.
func SetMemoryShort(ctx context.Context, ptr unsafe.Pointer, value int16, count int) error {
	buf, err := Bind[int16](ptr, count)
	if err != nil {
		return fmt.Errorf("SetMemoryShort: %w", err)
	}
	vect.SetMemory(buf, value)
	logCall(ctx, "SetMemoryShort", count)
	return nil
}

// SetMemoryDouble is SetMemoryLong for float64 elements, mirroring
// Java_io_questdb_std_Vect_setMemoryDouble.
func SetMemoryDouble(ctx context.Context, ptr unsafe.Pointer, value float64, count int) error {
	buf, err := Bind[float64](ptr, count)
	if err != nil {
		return fmt.Errorf("SetMemoryDouble: %w", err)
	}
	vect.SetMemory(buf, value)
	logCall(ctx, "SetMemoryDouble", count)
	return nil
}

// SetMemoryFloat is SetMemoryLong for float32 elements, mirroring
// Java_io_questdb_std_Vect_setMemoryFloat.
func SetMemoryFloat(ctx context.Context, ptr unsafe.Pointer, value float32, count int) error {
	buf, err := Bind[float32](ptr, count)
	if err != nil {
		return fmt.Errorf("SetMemoryFloat: %w", err)
	}
	vect.SetMemory(buf, value)
	logCall(ctx, "SetMemoryFloat", count)
	return nil
}

// SetVarColumnRefs32Bit writes the initial int32-length-prefixed offsets
// table for an empty variable column, mirroring
// Java_io_questdb_std_Vect_setVarColumnRefs32Bit.
func SetVarColumnRefs32Bit(ctx context.Context, ptr unsafe.Pointer, offset int64, count int) error {
	addr, err := Bind[int64](ptr, count)
	if err != nil {
		return fmt.Errorf("SetVarColumnRefs32Bit: %w", err)
	}
	vect.SetVarRefs[int32](addr, offset, count)
	logCall(ctx, "SetVarColumnRefs32Bit", count)
	return nil
}

// SetVarColumnRefs64Bit is SetVarColumnRefs32Bit for int64 length
// prefixes, mirroring Java_io_questdb_std_Vect_setVarColumnRefs64Bit.
func SetVarColumnRefs64Bit(ctx context.Context, ptr unsafe.Pointer, offset int64, count int) error {
	addr, err := Bind[int64](ptr, count)
	if err != nil {
		return fmt.Errorf("SetVarColumnRefs64Bit: %w", err)
	}
	vect.SetVarRefs[int64](addr, offset, count)
	logCall(ctx, "SetVarColumnRefs64Bit", count)
	return nil
}
