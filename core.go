package bitvec

import (
	"fmt"
	"slices"

	"github.com/hupe1980/bitvec/internal/bitops"
	"github.com/hupe1980/bitvec/internal/blocks"
	"github.com/hupe1980/bitvec/internal/kernel"
)

// core holds the block storage and bit count shared by Fixed and Dynamic.
// Every query and mutation that does not change the size lives here; the
// front-ends only decide how storage is obtained.
type core[B Block] struct {
	data []B
	size int
}

func (c *core[B]) width() int { return blocks.Width[B]() }

// Len returns the number of bits.
func (c *core[B]) Len() int { return c.size }

// StorageSize returns the number of blocks backing the bits.
func (c *core[B]) StorageSize() int { return len(c.data) }

// PartialSize returns the number of bits used in the last block,
// or 0 if the last block is fully utilized.
func (c *core[B]) PartialSize() int { return blocks.PartialSize(c.size, c.width()) }

// FullStorageSize returns the number of fully utilized blocks.
func (c *core[B]) FullStorageSize() int { return blocks.FullStorageSize(c.size, c.width()) }

// Capacity returns the number of bits the current storage can hold.
func (c *core[B]) Capacity() int { return len(c.data) * c.width() }

// Empty reports whether the bitset holds no bits.
func (c *core[B]) Empty() bool { return c.size == 0 }

// BlockWidth returns the number of bits per block.
func (c *core[B]) BlockWidth() int { return c.width() }

// Data returns the underlying blocks. Writes through the slice are visible
// to the bitset; the slice is replaced when a Dynamic reallocates.
func (c *core[B]) Data() []B { return c.data }

// Test reports whether bit i is set.
func (c *core[B]) Test(i int) bool {
	blocks.AssertIndex(i, c.size)
	return bitops.Test(c.data, i)
}

// Set sets bit i.
func (c *core[B]) Set(i int) {
	blocks.AssertIndex(i, c.size)
	bitops.Set(c.data, i)
}

// SetTo sets bit i to v.
func (c *core[B]) SetTo(i int, v bool) {
	blocks.AssertIndex(i, c.size)
	bitops.SetTo(c.data, i, v)
}

// Clear clears bit i.
func (c *core[B]) Clear(i int) {
	blocks.AssertIndex(i, c.size)
	bitops.Clear(c.data, i)
}

// Flip toggles bit i.
func (c *core[B]) Flip(i int) {
	blocks.AssertIndex(i, c.size)
	bitops.Flip(c.data, i)
}

// Swap exchanges bits i and j.
func (c *core[B]) Swap(i, j int) {
	blocks.AssertIndex(i, c.size)
	blocks.AssertIndex(j, c.size)
	bitops.Swap(c.data, i, j)
}

// Fill sets every bit to v.
func (c *core[B]) Fill(v bool) { bitops.Fill(c.data, v) }

// SetAll sets every bit.
func (c *core[B]) SetAll() { bitops.Fill(c.data, true) }

// ClearAll clears every bit.
func (c *core[B]) ClearAll() { bitops.Fill(c.data, false) }

// Reset clears every bit. The size is unchanged.
func (c *core[B]) Reset() { bitops.Fill(c.data, false) }

// FlipAll toggles every bit.
func (c *core[B]) FlipAll() { bitops.FlipAll(c.data) }

// All reports whether every bit is set. An empty bitset reports true.
func (c *core[B]) All() bool { return bitops.All(c.data, c.size) }

// Any reports whether at least one bit is set.
func (c *core[B]) Any() bool { return bitops.Any(c.data, c.size) }

// None reports whether no bit is set.
func (c *core[B]) None() bool { return bitops.None(c.data, c.size) }

// Count returns the number of set bits.
func (c *core[B]) Count() int { return bitops.Count(c.data, c.size) }

// Equal reports whether o holds the same number of bits with the same values.
// Padding bits are ignored.
func (c *core[B]) Equal(o Storage[B]) bool {
	if o.Len() != c.size {
		return false
	}
	return bitops.Equal(c.data, o.Data(), c.size)
}

// FillRange sets bits [begin, end) to v.
func (c *core[B]) FillRange(begin, end int, v bool) {
	blocks.AssertRange(begin, end, c.size)
	bitops.FillRange(c.data, begin, end, v)
}

// SetRange sets bits [begin, end).
func (c *core[B]) SetRange(begin, end int) { c.FillRange(begin, end, true) }

// ClearRange clears bits [begin, end).
func (c *core[B]) ClearRange(begin, end int) { c.FillRange(begin, end, false) }

// FlipRange toggles bits [begin, end).
func (c *core[B]) FlipRange(begin, end int) {
	blocks.AssertRange(begin, end, c.size)
	bitops.FlipRange(c.data, begin, end)
}

// FillRangeStep sets bits begin, begin+step, ... below end to v.
// A non-positive step does nothing.
func (c *core[B]) FillRangeStep(begin, end, step int, v bool) {
	blocks.AssertRange(begin, end, c.size)
	bitops.FillStride(c.data, begin, end, step, v)
}

// SetRangeStep sets bits begin, begin+step, ... below end.
func (c *core[B]) SetRangeStep(begin, end, step int) { c.FillRangeStep(begin, end, step, true) }

// ClearRangeStep clears bits begin, begin+step, ... below end.
func (c *core[B]) ClearRangeStep(begin, end, step int) { c.FillRangeStep(begin, end, step, false) }

// FlipRangeStep toggles bits begin, begin+step, ... below end.
func (c *core[B]) FlipRangeStep(begin, end, step int) {
	blocks.AssertRange(begin, end, c.size)
	bitops.FlipStride(c.data, begin, end, step)
}

// Block returns block i.
func (c *core[B]) Block(i int) B {
	blocks.AssertIndex(i, len(c.data))
	return c.data[i]
}

// SetBlock overwrites block i with b.
func (c *core[B]) SetBlock(i int, b B) {
	blocks.AssertIndex(i, len(c.data))
	c.data[i] = b
}

// ClearBlock zeroes block i.
func (c *core[B]) ClearBlock(i int) {
	blocks.AssertIndex(i, len(c.data))
	c.data[i] = 0
}

// FlipBlock complements block i.
func (c *core[B]) FlipBlock(i int) {
	blocks.AssertIndex(i, len(c.data))
	c.data[i] = ^c.data[i]
}

// FillBlock writes b to every block.
func (c *core[B]) FillBlock(b B) { kernel.FillBlocks(c.data, b) }

// FillBlockRange writes b to blocks [begin, end).
func (c *core[B]) FillBlockRange(begin, end int, b B) {
	blocks.AssertRange(begin, end, len(c.data))
	bitops.FillBlockRange(c.data, begin, end, 1, b)
}

// FillBlockRangeStep writes b to blocks begin, begin+step, ... below end.
func (c *core[B]) FillBlockRangeStep(begin, end, step int, b B) {
	blocks.AssertRange(begin, end, len(c.data))
	bitops.FillBlockRange(c.data, begin, end, step, b)
}

// FlipBlockRange complements blocks [begin, end).
func (c *core[B]) FlipBlockRange(begin, end int) {
	blocks.AssertRange(begin, end, len(c.data))
	bitops.FlipBlockRange(c.data, begin, end, 1)
}

// FlipBlockRangeStep complements blocks begin, begin+step, ... below end.
func (c *core[B]) FlipBlockRangeStep(begin, end, step int) {
	blocks.AssertRange(begin, end, len(c.data))
	bitops.FlipBlockRange(c.data, begin, end, step)
}

// Reverse mirrors the bits so bit i trades places with bit Len()-1-i.
func (c *core[B]) Reverse() { bitops.Reverse(c.data, c.size) }

// Rotate moves the bit at (i+shift) mod Len() to position i.
// Negative shifts rotate the other way.
func (c *core[B]) Rotate(shift int) { bitops.Rotate(c.data, c.size, shift) }

// ShiftLeft moves every bit i to i+n, towards higher indices.
// The low n bits become clear and bits shifted past Len() are lost.
func (c *core[B]) ShiftLeft(n int) { bitops.ShiftUp(c.data, c.size, n) }

// ShiftRight moves every bit i to i-n, towards lower indices.
// The high n bits become clear and the low n bits are lost.
func (c *core[B]) ShiftRight(n int) { bitops.ShiftDown(c.data, c.size, n) }

// And clears every bit that is not set in o.
// Bits past o.Len() are treated as clear.
func (c *core[B]) And(o Storage[B]) { c.combine(o, opAnd) }

// Or sets every bit that is set in o.
func (c *core[B]) Or(o Storage[B]) { c.combine(o, opOr) }

// Xor toggles every bit that is set in o.
func (c *core[B]) Xor(o Storage[B]) { c.combine(o, opXor) }

// AndNot clears every bit that is set in o.
func (c *core[B]) AndNot(o Storage[B]) { c.combine(o, opAndNot) }

// NextSet returns the index of the first set bit at or after from, or -1.
func (c *core[B]) NextSet(from int) int { return bitops.NextSet(c.data, c.size, from) }

type blockOp uint8

const (
	opAnd blockOp = iota
	opOr
	opXor
	opAndNot
)

// combine applies op block-wise. Full blocks of o go through the kernels;
// the partial last block of o is masked so its padding never leaks in.
func (c *core[B]) combine(o Storage[B], op blockOp) {
	w := c.width()
	src := o.Data()
	full := min(blocks.FullStorageSize(o.Len(), w), len(src))
	n := min(full, len(c.data))

	dst := c.data[:n]
	switch op {
	case opAnd:
		kernel.AndBlocks(dst, src)
	case opOr:
		kernel.OrBlocks(dst, src)
	case opXor:
		kernel.XorBlocks(dst, src)
	case opAndNot:
		kernel.AndNotBlocks(dst, src)
	}

	rest := c.data[n:]
	if len(rest) == 0 {
		return
	}
	var tail B
	if p := blocks.PartialSize(o.Len(), w); p != 0 && full < len(src) {
		tail = src[full] & blocks.LowMask[B](p)
	}
	switch op {
	case opAnd:
		rest[0] &= tail
		clear(rest[1:])
	case opOr:
		rest[0] |= tail
	case opXor:
		rest[0] ^= tail
	case opAndNot:
		rest[0] &^= tail
	}
}

// String renders the bits with '1' and '0', bit 0 first.
func (c *core[B]) String() string { return bitops.Format(c.data, c.size, '1', '0') }

// FormatString renders the bits with the given set and clear characters.
func (c *core[B]) FormatString(set, clr byte) string {
	return bitops.Format(c.data, c.size, set, clr)
}

// ParseString sets bit i when s[i] == set and clears it otherwise.
// Parsing stops at a NUL byte or after Len() characters; the remaining bits
// keep their values. It returns the number of bits written.
func (c *core[B]) ParseString(s string, set byte) int {
	return bitops.Parse(c.data, c.size, s, set)
}

// Bools returns the bits as a newly allocated bool slice.
func (c *core[B]) Bools() []bool { return bitops.Bools(c.data, c.size) }

// Blocks returns a copy of the underlying blocks.
func (c *core[B]) Blocks() []B { return slices.Clone(c.data) }

// LoadBools writes src[i] to bit i for the first min(len(src), Len()) bits
// and returns how many were written.
func (c *core[B]) LoadBools(src []bool) int { return bitops.LoadBools(c.data, c.size, src) }

// LoadBlocks copies src over the underlying blocks and returns the number
// of blocks copied.
func (c *core[B]) LoadBlocks(src []B) int { return copy(c.data, src) }

// MarshalText implements encoding.TextMarshaler.
func (c *core[B]) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// parseText validates text as '0'/'1' characters and loads it into the
// first len(text) bits.
func (c *core[B]) parseText(text []byte) error {
	for i, ch := range text {
		if ch != '0' && ch != '1' {
			return fmt.Errorf("%w %q at position %d", ErrInvalidText, ch, i)
		}
	}
	bitops.Parse(c.data, c.size, string(text), '1')
	return nil
}

// At returns a reference to bit i.
func (c *core[B]) At(i int) Ref[B] {
	blocks.AssertIndex(i, c.size)
	return Ref[B]{c: c, i: i}
}

// Begin returns an iterator at bit 0.
func (c *core[B]) Begin() Iterator[B] { return Iterator[B]{c: c} }

// End returns an iterator one past the last bit.
func (c *core[B]) End() Iterator[B] { return Iterator[B]{c: c, i: c.size} }

// RBegin returns a reverse iterator at the last bit.
func (c *core[B]) RBegin() ReverseIterator[B] { return ReverseIterator[B]{c: c, i: c.size - 1} }

// REnd returns a reverse iterator one before bit 0.
func (c *core[B]) REnd() ReverseIterator[B] { return ReverseIterator[B]{c: c, i: -1} }

// Checked returns a view whose methods validate their arguments and
// report violations as errors.
func (c *core[B]) Checked() Checked[B] { return Checked[B]{c: c} }
