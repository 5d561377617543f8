package bitvec

import "github.com/hupe1980/bitvec/internal/bitops"

// Checked is a bounds-checked view of a Fixed or Dynamic bitset.
// Each method validates its arguments before touching storage and returns
// *ErrIndexOutOfRange, *ErrBlockOutOfRange, *ErrInvalidRange,
// *ErrSizeMismatch or ErrInvalidStep instead of corrupting memory.
type Checked[B Block] struct {
	c *core[B]
}

// Test reports whether bit i is set.
func (v Checked[B]) Test(i int) (bool, error) {
	if err := checkIndex(i, v.c.size); err != nil {
		return false, err
	}
	return bitops.Test(v.c.data, i), nil
}

// Set sets bit i.
func (v Checked[B]) Set(i int) error {
	return v.SetTo(i, true)
}

// SetTo sets bit i to val.
func (v Checked[B]) SetTo(i int, val bool) error {
	if err := checkIndex(i, v.c.size); err != nil {
		return err
	}
	bitops.SetTo(v.c.data, i, val)
	return nil
}

// Clear clears bit i.
func (v Checked[B]) Clear(i int) error {
	return v.SetTo(i, false)
}

// Flip toggles bit i.
func (v Checked[B]) Flip(i int) error {
	if err := checkIndex(i, v.c.size); err != nil {
		return err
	}
	bitops.Flip(v.c.data, i)
	return nil
}

// FillRange sets bits [begin, end) to val.
func (v Checked[B]) FillRange(begin, end int, val bool) error {
	if err := checkRange(begin, end, v.c.size); err != nil {
		return err
	}
	bitops.FillRange(v.c.data, begin, end, val)
	return nil
}

// FlipRange toggles bits [begin, end).
func (v Checked[B]) FlipRange(begin, end int) error {
	if err := checkRange(begin, end, v.c.size); err != nil {
		return err
	}
	bitops.FlipRange(v.c.data, begin, end)
	return nil
}

// FillRangeStep sets bits begin, begin+step, ... below end to val.
func (v Checked[B]) FillRangeStep(begin, end, step int, val bool) error {
	if err := checkRange(begin, end, v.c.size); err != nil {
		return err
	}
	if step <= 0 {
		return ErrInvalidStep
	}
	bitops.FillStride(v.c.data, begin, end, step, val)
	return nil
}

// FlipRangeStep toggles bits begin, begin+step, ... below end.
func (v Checked[B]) FlipRangeStep(begin, end, step int) error {
	if err := checkRange(begin, end, v.c.size); err != nil {
		return err
	}
	if step <= 0 {
		return ErrInvalidStep
	}
	bitops.FlipStride(v.c.data, begin, end, step)
	return nil
}

// Block returns block i.
func (v Checked[B]) Block(i int) (B, error) {
	if err := checkBlock(i, len(v.c.data)); err != nil {
		return 0, err
	}
	return v.c.data[i], nil
}

// SetBlock overwrites block i with b.
func (v Checked[B]) SetBlock(i int, b B) error {
	if err := checkBlock(i, len(v.c.data)); err != nil {
		return err
	}
	v.c.data[i] = b
	return nil
}

// LoadBlocks copies src over the underlying blocks. src must hold at least
// StorageSize() blocks; extra blocks are ignored.
func (v Checked[B]) LoadBlocks(src []B) error {
	if len(src) < len(v.c.data) {
		return &ErrSizeMismatch{Expected: len(v.c.data), Actual: len(src)}
	}
	copy(v.c.data, src)
	return nil
}
