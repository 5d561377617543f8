package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStep is returned when a strided operation gets a non-positive step.
	ErrInvalidStep = errors.New("step must be positive")

	// ErrInvalidText is returned when text holds a byte other than '0' or '1'.
	ErrInvalidText = errors.New("invalid bit character")
)

// ErrIndexOutOfRange indicates a bit index outside [0, Size).
type ErrIndexOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("bit index %d out of range [0, %d)", e.Index, e.Size)
}

// ErrBlockOutOfRange indicates a block index outside [0, StorageSize).
type ErrBlockOutOfRange struct {
	Index       int
	StorageSize int
}

func (e *ErrBlockOutOfRange) Error() string {
	return fmt.Sprintf("block index %d out of range [0, %d)", e.Index, e.StorageSize)
}

// ErrInvalidRange indicates a range [Begin, End) that is reversed or exceeds Size.
type ErrInvalidRange struct {
	Begin int
	End   int
	Size  int
}

func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid range [%d, %d) for size %d", e.Begin, e.End, e.Size)
}

// ErrSizeMismatch indicates an input whose length does not match the bitset.
type ErrSizeMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("size mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrCapacityExceeded indicates a bitset too large for the target representation.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrCapacityExceeded struct {
	Size  int
	Limit uint64
	cause error
}

func (e *ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("capacity exceeded: %d bits, limit %d", e.Size, e.Limit)
}

func (e *ErrCapacityExceeded) Unwrap() error { return e.cause }

func checkIndex(i, size int) error {
	if i < 0 || i >= size {
		return &ErrIndexOutOfRange{Index: i, Size: size}
	}
	return nil
}

func checkBlock(i, storage int) error {
	if i < 0 || i >= storage {
		return &ErrBlockOutOfRange{Index: i, StorageSize: storage}
	}
	return nil
}

func checkRange(begin, end, size int) error {
	if begin < 0 || begin > end || end > size {
		return &ErrInvalidRange{Begin: begin, End: end, Size: size}
	}
	return nil
}
