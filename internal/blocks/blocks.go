package blocks

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Block is the unsigned integer type a bitset packs its bits into.
type Block interface {
	constraints.Unsigned
}

// Width returns the number of bits held by one block of type B.
func Width[B Block]() int {
	return bits.Len64(uint64(^B(0)))
}

// Ones returns the all-set block value.
func Ones[B Block]() B {
	return ^B(0)
}

// Index returns the block holding bit i.
func Index(i, w int) int {
	return i / w
}

// Offset returns the position of bit i inside its block.
func Offset(i, w int) int {
	return i % w
}

// Mask returns the single-bit mask for the given offset.
func Mask[B Block](offset int) B {
	return B(1) << uint(offset)
}

// LowMask returns a block with the low n bits set. n must be in [0, Width].
func LowMask[B Block](n int) B {
	if n >= Width[B]() {
		return ^B(0)
	}
	return B(1)<<uint(n) - 1
}

// RangeMask returns a block with bits [lo, hi) set.
func RangeMask[B Block](lo, hi int) B {
	return LowMask[B](hi) &^ LowMask[B](lo)
}

// StorageSize returns the number of blocks needed for size bits.
func StorageSize(size, w int) int {
	n := size / w
	if size%w != 0 {
		n++
	}
	return n
}

// PartialSize returns the number of meaningful bits in the last block,
// or 0 if the last block is fully utilized.
func PartialSize(size, w int) int {
	return size % w
}

// FullStorageSize returns the number of fully utilized blocks.
func FullStorageSize(size, w int) int {
	return size / w
}
