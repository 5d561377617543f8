package mem

import (
	"unsafe"

	"github.com/hupe1980/bitvec/internal/blocks"
)

// Alignment is the byte alignment of block storage (one cache line).
const Alignment = 64

// AllocAligned allocates a zeroed byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Allocate size + alignment to ensure we can find an aligned offset
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// AllocBlocks allocates n zeroed elements of an integer block type with 64-byte alignment.
// Returns nil for n <= 0.
func AllocBlocks[B blocks.Block](n int) []B {
	if n <= 0 {
		return nil
	}
	var zero B
	byteSlice := AllocAligned(n * int(unsafe.Sizeof(zero)))

	// 64-byte alignment satisfies the alignment of every block type.
	ptr := unsafe.Pointer(&byteSlice[0]) //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*B)(ptr), n)    //nolint:gosec // unsafe is required for memory alignment
}

// Realloc returns a new aligned buffer of n blocks holding the first
// min(len(old), n) blocks of old. Blocks past len(old) are zero.
// Returns nil for n <= 0.
func Realloc[B blocks.Block](old []B, n int) []B {
	buf := AllocBlocks[B](n)
	copy(buf, old)
	return buf
}
