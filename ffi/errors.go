package ffi

import "errors"

// Sentinel errors a host can distinguish via errors.Is, wrapped with
// call-specific detail by fmt.Errorf at each call site.
var (
	// ErrNilPointer is returned when a required pointer argument is nil.
	ErrNilPointer = errors.New("ffi: nil pointer")
	// ErrMisaligned is returned when a pointer is not aligned to its
	// element type's natural alignment.
	ErrMisaligned = errors.New("ffi: misaligned pointer")
	// ErrNegativeLength is returned when a length or count argument is
	// negative, or when a low/high row range is empty or out of bounds.
	ErrNegativeLength = errors.New("ffi: negative length")
	// ErrInvalidScanDir is returned when a scan direction argument is
	// something other than +1 or -1.
	ErrInvalidScanDir = errors.New("ffi: scan direction must be +1 or -1")
	// ErrRunCountMismatch is returned when the number of run pointers and
	// run lengths passed to MergeLongIndexesAsc disagree.
	ErrRunCountMismatch = errors.New("ffi: mismatched run pointer/length counts")
)
