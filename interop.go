package bitvec

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/bitvec/internal/bitops"
	"github.com/hupe1980/bitvec/internal/conv"
)

// roaringLimit is the number of positions a 32-bit roaring bitmap can address.
const roaringLimit uint64 = 1 << 32

// ToRoaring returns a roaring bitmap holding the indices of the set bits of s.
// Runs of set bits are added as ranges.
func ToRoaring[B Block](s Storage[B]) (*roaring.Bitmap, error) {
	if s.Len() > 0 {
		if _, err := conv.ToUint32(s.Len() - 1); err != nil {
			return nil, &ErrCapacityExceeded{Size: s.Len(), Limit: roaringLimit, cause: err}
		}
	}

	bm := roaring.New()
	data, size := s.Data(), s.Len()
	for start := bitops.NextSet(data, size, 0); start >= 0; {
		end := start + 1
		for end < size && bitops.Test(data, end) {
			end++
		}
		bm.AddRange(uint64(start), uint64(end))
		if end >= size {
			break
		}
		start = bitops.NextSet(data, size, end)
	}
	return bm, nil
}

// FromRoaring clears s and sets the bits listed in bm. It fails without
// modifying s when bm holds a position >= s.Len().
func FromRoaring[B Block](s Storage[B], bm *roaring.Bitmap) error {
	if !bm.IsEmpty() {
		top, err := conv.FromUint32(bm.Maximum())
		if err != nil {
			return err
		}
		if top >= s.Len() {
			return &ErrIndexOutOfRange{Index: top, Size: s.Len()}
		}
	}

	data := s.Data()
	clear(data)
	it := bm.Iterator()
	for it.HasNext() {
		bitops.Set(data, int(it.Next()))
	}
	return nil
}

// DynamicFromRoaring returns a bitset just large enough for the highest
// position in bm, with exactly those positions set.
func DynamicFromRoaring[B Block](bm *roaring.Bitmap, optFns ...Option) (*Dynamic[B], error) {
	if bm.IsEmpty() {
		return NewDynamic[B](0, optFns...), nil
	}
	top, err := conv.FromUint32(bm.Maximum())
	if err != nil {
		return nil, err
	}
	d := NewDynamic[B](top+1, optFns...)
	if err := FromRoaring[B](d, bm); err != nil {
		return nil, err
	}
	return d, nil
}

// ToBitSet returns a bits-and-blooms bitset of length s.Len() with the same bits set.
// uint64 storage is handed over as words; other block types are copied bit by bit.
func ToBitSet[B Block](s Storage[B]) *bitset.BitSet {
	data, size := s.Data(), s.Len()
	if words, ok := any(data).([]uint64); ok {
		words = slices.Clone(words)
		bitops.ClearPadding(words, size)
		return bitset.FromWithLength(uint(size), words)
	}

	out := bitset.New(uint(size))
	for i := bitops.NextSet(data, size, 0); i >= 0; i = bitops.NextSet(data, size, i+1) {
		out.Set(uint(i))
	}
	return out
}

// FromBitSet clears s and sets the bits set in b. It fails without
// modifying s when b has a set bit at a position >= s.Len().
func FromBitSet[B Block](s Storage[B], b *bitset.BitSet) error {
	if b.Any() {
		last, err := lastSet(b)
		if err != nil {
			return err
		}
		if last >= s.Len() {
			return &ErrIndexOutOfRange{Index: last, Size: s.Len()}
		}
	}

	data := s.Data()
	clear(data)
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		bitops.Set(data, int(i))
	}
	return nil
}

// DynamicFromBitSet returns a bitset of length b.Len() with the same bits set.
func DynamicFromBitSet[B Block](b *bitset.BitSet, optFns ...Option) (*Dynamic[B], error) {
	n, err := conv.FromUint(b.Len())
	if err != nil {
		return nil, err
	}
	d := NewDynamic[B](n, optFns...)
	if err := FromBitSet[B](d, b); err != nil {
		return nil, err
	}
	return d, nil
}

func lastSet(b *bitset.BitSet) (int, error) {
	last := -1
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		idx, err := conv.FromUint(i)
		if err != nil {
			return 0, err
		}
		last = idx
	}
	return last, nil
}
