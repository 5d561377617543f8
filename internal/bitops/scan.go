package bitops

import (
	"math/bits"

	"github.com/hupe1980/bitvec/internal/blocks"
)

// NextSet returns the index of the first set bit at or after from, or -1.
func NextSet[B blocks.Block](d []B, size, from int) int {
	if from < 0 {
		from = 0
	}
	if from >= size {
		return -1
	}
	w := blocks.Width[B]()
	n := blocks.StorageSize(size, w)
	bi := from / w
	v := d[bi] &^ blocks.LowMask[B](from%w)
	for {
		if v != 0 {
			idx := bi*w + bits.TrailingZeros64(uint64(v))
			if idx >= size {
				return -1
			}
			return idx
		}
		bi++
		if bi >= n {
			return -1
		}
		v = d[bi]
	}
}

// ShiftUp moves every bit i to i+n. Bits pushed past size are dropped and
// bits [0, n) become clear.
func ShiftUp[B blocks.Block](d []B, size, n int) {
	if n <= 0 || size == 0 {
		return
	}
	w := blocks.Width[B]()
	nb := blocks.StorageSize(size, w)
	d = d[:nb]
	if n >= size {
		clear(d)
		return
	}
	k, r := n/w, uint(n%w)
	for i := nb - 1; i >= k; i-- {
		src := i - k
		v := d[src] << r
		if r != 0 && src > 0 {
			v |= d[src-1] >> (uint(w) - r)
		}
		d[i] = v
	}
	clear(d[:k])
}

// ShiftDown moves every bit i to i-n. Bits below n are dropped and
// bits [size-n, size) become clear.
func ShiftDown[B blocks.Block](d []B, size, n int) {
	if n <= 0 || size == 0 {
		return
	}
	w := blocks.Width[B]()
	nb := blocks.StorageSize(size, w)
	d = d[:nb]
	if n >= size {
		clear(d)
		return
	}
	// Padding would otherwise shift into meaningful positions.
	ClearPadding(d, size)
	k, r := n/w, uint(n%w)
	for i := 0; i < nb-k; i++ {
		src := i + k
		v := d[src] >> r
		if r != 0 && src+1 < nb {
			v |= d[src+1] << (uint(w) - r)
		}
		d[i] = v
	}
	clear(d[nb-k:])
}

// InsertGap moves bits [index, size-1) up by one position, iterating from the
// top so nothing is overwritten before it is read. Bit index keeps its old value.
func InsertGap[B blocks.Block](d []B, size, index int) {
	for i := size - 1; i > index; i-- {
		SetTo(d, i, Test(d, i-1))
	}
}

// Reverse mirrors the first size bits so bit i trades places with bit size-1-i.
func Reverse[B blocks.Block](d []B, size int) {
	ReverseRange(d, 0, size)
}

// ReverseRange mirrors bits [lo, hi) in place.
func ReverseRange[B blocks.Block](d []B, lo, hi int) {
	for i, j := lo, hi-1; i < j; i, j = i+1, j-1 {
		Swap(d, i, j)
	}
}

// Rotate moves the bit at (i+shift) mod size to position i for every i.
// It works in place with three reversals.
func Rotate[B blocks.Block](d []B, size, shift int) {
	if size == 0 {
		return
	}
	shift %= size
	if shift < 0 {
		shift += size
	}
	if shift == 0 {
		return
	}
	ReverseRange(d, 0, shift)
	ReverseRange(d, shift, size)
	ReverseRange(d, 0, size)
}
