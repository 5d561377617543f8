package bitops

import (
	"github.com/hupe1980/bitvec/internal/blocks"
	"github.com/hupe1980/bitvec/internal/kernel"
)

// Test reports whether bit i is set.
func Test[B blocks.Block](d []B, i int) bool {
	w := blocks.Width[B]()
	return d[i/w]&blocks.Mask[B](i%w) != 0
}

// Set sets bit i.
func Set[B blocks.Block](d []B, i int) {
	w := blocks.Width[B]()
	d[i/w] |= blocks.Mask[B](i % w)
}

// Clear clears bit i.
func Clear[B blocks.Block](d []B, i int) {
	w := blocks.Width[B]()
	d[i/w] &^= blocks.Mask[B](i % w)
}

// SetTo sets bit i to v.
func SetTo[B blocks.Block](d []B, i int, v bool) {
	if v {
		Set(d, i)
		return
	}
	Clear(d, i)
}

// Flip toggles bit i.
func Flip[B blocks.Block](d []B, i int) {
	w := blocks.Width[B]()
	d[i/w] ^= blocks.Mask[B](i % w)
}

// Swap exchanges bits i and j.
func Swap[B blocks.Block](d []B, i, j int) {
	vi := Test(d, i)
	SetTo(d, i, Test(d, j))
	SetTo(d, j, vi)
}

// Fill writes v to every bit of every block, padding included.
func Fill[B blocks.Block](d []B, v bool) {
	kernel.FillBlocks(d, fillValue[B](v))
}

// FlipAll complements every block.
func FlipAll[B blocks.Block](d []B) {
	kernel.NotBlocks(d)
}

// All reports whether all size bits are set. An empty bitset is all set.
func All[B blocks.Block](d []B, size int) bool {
	w := blocks.Width[B]()
	full := blocks.FullStorageSize(size, w)
	ones := blocks.Ones[B]()
	for _, v := range d[:full] {
		if v != ones {
			return false
		}
	}
	if p := blocks.PartialSize(size, w); p != 0 {
		m := blocks.LowMask[B](p)
		return d[full]&m == m
	}
	return true
}

// Any reports whether at least one of the size bits is set.
func Any[B blocks.Block](d []B, size int) bool {
	w := blocks.Width[B]()
	full := blocks.FullStorageSize(size, w)
	for _, v := range d[:full] {
		if v != 0 {
			return true
		}
	}
	if p := blocks.PartialSize(size, w); p != 0 {
		return d[full]&blocks.LowMask[B](p) != 0
	}
	return false
}

// None reports whether none of the size bits is set.
func None[B blocks.Block](d []B, size int) bool {
	return !Any(d, size)
}

// Count returns the number of set bits among the first size bits.
func Count[B blocks.Block](d []B, size int) int {
	w := blocks.Width[B]()
	full := blocks.FullStorageSize(size, w)
	n := kernel.Popcount(d[:full])
	if p := blocks.PartialSize(size, w); p != 0 {
		n += kernel.PopcountBlock(d[full] & blocks.LowMask[B](p))
	}
	return n
}

// Equal reports whether the first size bits of a and b match.
func Equal[B blocks.Block](a, b []B, size int) bool {
	w := blocks.Width[B]()
	full := blocks.FullStorageSize(size, w)
	for i := range full {
		if a[i] != b[i] {
			return false
		}
	}
	if p := blocks.PartialSize(size, w); p != 0 {
		m := blocks.LowMask[B](p)
		return a[full]&m == b[full]&m
	}
	return true
}

// ClearPadding zeroes the bits of the last block at positions >= size.
func ClearPadding[B blocks.Block](d []B, size int) {
	w := blocks.Width[B]()
	if p := blocks.PartialSize(size, w); p != 0 {
		d[size/w] &= blocks.LowMask[B](p)
	}
}

func fillValue[B blocks.Block](v bool) B {
	if v {
		return blocks.Ones[B]()
	}
	return 0
}

func apply[B blocks.Block](b *B, mask B, v bool) {
	if v {
		*b |= mask
	} else {
		*b &^= mask
	}
}
