package bitops

import (
	"github.com/hupe1980/bitvec/internal/blocks"
)

// Format renders the first size bits, bit 0 first, using set and clr.
func Format[B blocks.Block](d []B, size int, set, clr byte) string {
	buf := make([]byte, size)
	for i := range size {
		if Test(d, i) {
			buf[i] = set
		} else {
			buf[i] = clr
		}
	}
	return string(buf)
}

// Parse writes s[i] == set into bit i. Scanning stops at the first NUL byte
// or after size characters; bits past the scanned prefix are left untouched.
// It returns the number of bits written.
func Parse[B blocks.Block](d []B, size int, s string, set byte) int {
	n := min(len(s), size)
	for i := range n {
		c := s[i]
		if c == 0 {
			return i
		}
		SetTo(d, i, c == set)
	}
	return n
}

// Bools expands the first size bits into a bool slice.
func Bools[B blocks.Block](d []B, size int) []bool {
	out := make([]bool, size)
	for i := range out {
		out[i] = Test(d, i)
	}
	return out
}

// LoadBools writes src[i] into bit i for i < min(len(src), size).
func LoadBools[B blocks.Block](d []B, size int, src []bool) int {
	n := min(len(src), size)
	for i := range n {
		SetTo(d, i, src[i])
	}
	return n
}
