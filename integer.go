package bitvec

import (
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/bitvec/internal/blocks"
)

// ToInteger returns the low min(bits(T), s.Len()) bits of s as a T, bit 0
// of s landing in bit 0 of the result. Higher result bits are zero.
func ToInteger[T constraints.Unsigned, B Block](s Storage[B]) T {
	tw, w := blocks.Width[T](), blocks.Width[B]()
	n := min(tw, s.Len())
	data := s.Data()

	var v T
	for k := 0; k*w < n; k++ {
		v |= T(data[k]) << uint(k*w)
	}
	return v & blocks.LowMask[T](n)
}

// FromInteger clears s and writes the low min(bits(T), s.Len()) bits of v
// into it, bit 0 of v landing in bit 0 of s.
func FromInteger[T constraints.Unsigned, B Block](s Storage[B], v T) {
	tw, w := blocks.Width[T](), blocks.Width[B]()
	n := min(tw, s.Len())
	data := s.Data()

	clear(data)
	for k := 0; k*w < n; k++ {
		data[k] = B(v >> uint(k*w))
	}
	// Bits of v past n must not leak into the bitset.
	if p := n % w; p != 0 {
		data[n/w] &= blocks.LowMask[B](p)
	}
}
