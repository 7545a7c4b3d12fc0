package ffi

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/vectdb/oomerge/vect"
)

// VarColumnArgs groups the pointer/length arguments shared by all four
// merge-copy entry points below, so each wrapper only has to bind and
// name its own operation.
type VarColumnArgs struct {
	MergeIndexPtr unsafe.Pointer
	N             int
	DataFixPtr    unsafe.Pointer
	DataVarPtr    unsafe.Pointer
	DataVarLen    int
	OOOFixPtr     unsafe.Pointer
	OOOVarPtr     unsafe.Pointer
	OOOVarLen     int
	DestFixPtr    unsafe.Pointer
	DestVarPtr    unsafe.Pointer
	DestVarLen    int
	DestVarOffset int64
}

func (a VarColumnArgs) bind(op string) (mergeIndex []vect.Index, dataFix []int64, dataVar []byte, oooFix []int64, oooVar []byte, destFix []int64, destVar []byte, err error) {
	if mergeIndex, err = Bind[vect.Index](a.MergeIndexPtr, a.N); err != nil {
		return nil, nil, nil, nil, nil, nil, nil, fmt.Errorf("%s: mergeIndex: %w", op, err)
	}
	if dataFix, err = Bind[int64](a.DataFixPtr, a.N); err != nil {
		return nil, nil, nil, nil, nil, nil, nil, fmt.Errorf("%s: dataFix: %w", op, err)
	}
	if dataVar, err = Bind[byte](a.DataVarPtr, a.DataVarLen); err != nil {
		return nil, nil, nil, nil, nil, nil, nil, fmt.Errorf("%s: dataVar: %w", op, err)
	}
	if oooFix, err = Bind[int64](a.OOOFixPtr, a.N); err != nil {
		return nil, nil, nil, nil, nil, nil, nil, fmt.Errorf("%s: oooFix: %w", op, err)
	}
	if oooVar, err = Bind[byte](a.OOOVarPtr, a.OOOVarLen); err != nil {
		return nil, nil, nil, nil, nil, nil, nil, fmt.Errorf("%s: oooVar: %w", op, err)
	}
	if destFix, err = Bind[int64](a.DestFixPtr, a.N); err != nil {
		return nil, nil, nil, nil, nil, nil, nil, fmt.Errorf("%s: destFix: %w", op, err)
	}
	if destVar, err = Bind[byte](a.DestVarPtr, a.DestVarLen); err != nil {
		return nil, nil, nil, nil, nil, nil, nil, fmt.Errorf("%s: destVar: %w", op, err)
	}
	return mergeIndex, dataFix, dataVar, oooFix, oooVar, destFix, destVar, nil
}

// OooMergeCopyStrColumn merge-copies a UTF-16 string column (int32 length
// prefix, mult=2), mirroring Java_io_questdb_std_Vect_oooMergeCopyStrColumn.
func OooMergeCopyStrColumn(ctx context.Context, a VarColumnArgs) (int64, error) {
	mergeIndex, dataFix, dataVar, oooFix, oooVar, destFix, destVar, err := a.bind("OooMergeCopyStrColumn")
	if err != nil {
		return 0, err
	}
	end := vect.MergeCopyVarColumn[int32](mergeIndex, a.N, dataFix, dataVar, oooFix, oooVar, destFix, destVar, a.DestVarOffset, 2)
	logCall(ctx, "OooMergeCopyStrColumn", a.N)
	return end, nil
}

// OooMergeCopyStrColumnWithTop is OooMergeCopyStrColumn with a
// column-top row shift on the data side, mirroring
// Java_io_questdb_std_Vect_oooMergeCopyStrColumnWithTop.
func OooMergeCopyStrColumnWithTop(ctx context.Context, a VarColumnArgs, dataFixOffset int64) (int64, error) {
	mergeIndex, dataFix, dataVar, oooFix, oooVar, destFix, destVar, err := a.bind("OooMergeCopyStrColumnWithTop")
	if err != nil {
		return 0, err
	}
	end := vect.MergeCopyVarColumnTop[int32](mergeIndex, a.N, dataFix, dataFixOffset, dataVar, oooFix, oooVar, destFix, destVar, a.DestVarOffset, 2)
	logCall(ctx, "OooMergeCopyStrColumnWithTop", a.N)
	return end, nil
}

// OooMergeCopyBinColumn merge-copies a binary column (int64 length
// prefix, mult=1), mirroring Java_io_questdb_std_Vect_oooMergeCopyBinColumn.
func OooMergeCopyBinColumn(ctx context.Context, a VarColumnArgs) (int64, error) {
	mergeIndex, dataFix, dataVar, oooFix, oooVar, destFix, destVar, err := a.bind("OooMergeCopyBinColumn")
	if err != nil {
		return 0, err
	}
	end := vect.MergeCopyVarColumn[int64](mergeIndex, a.N, dataFix, dataVar, oooFix, oooVar, destFix, destVar, a.DestVarOffset, 1)
	logCall(ctx, "OooMergeCopyBinColumn", a.N)
	return end, nil
}

// OooMergeCopyBinColumnWithTop is OooMergeCopyBinColumn with a
// column-top row shift on the data side, mirroring
// Java_io_questdb_std_Vect_oooMergeCopyBinColumnWithTop.
func OooMergeCopyBinColumnWithTop(ctx context.Context, a VarColumnArgs, dataFixOffset int64) (int64, error) {
	mergeIndex, dataFix, dataVar, oooFix, oooVar, destFix, destVar, err := a.bind("OooMergeCopyBinColumnWithTop")
	if err != nil {
		return 0, err
	}
	end := vect.MergeCopyVarColumnTop[int64](mergeIndex, a.N, dataFix, dataFixOffset, dataVar, oooFix, oooVar, destFix, destVar, a.DestVarOffset, 1)
	logCall(ctx, "OooMergeCopyBinColumnWithTop", a.N)
	return end, nil
}
