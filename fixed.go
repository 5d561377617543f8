package bitvec

import (
	"fmt"

	"github.com/hupe1980/bitvec/internal/blocks"
	"github.com/hupe1980/bitvec/internal/mem"
)

// Fixed is a bitset whose size is chosen at construction.
// Its storage is allocated once and never reallocated. The size is a
// constructor argument rather than a type parameter, and the blocks live on
// the heap in one aligned buffer.
//
// Fixed has reference semantics like any Go pointer; use Clone for an
// independent copy.
type Fixed[B Block] struct {
	core[B]
}

// NewFixed returns a bitset of n clear bits. It panics if n is negative.
func NewFixed[B Block](n int) *Fixed[B] {
	if n < 0 {
		panic(fmt.Sprintf("bitvec: negative size %d", n))
	}
	return &Fixed[B]{core: core[B]{
		data: mem.AllocBlocks[B](blocks.StorageSize(n, blocks.Width[B]())),
		size: n,
	}}
}

// ParseFixed returns an n-bit bitset with bit i set where s[i] == '1'.
// Characters past n or past a NUL byte are ignored and the bits they
// would have covered stay clear.
func ParseFixed[B Block](n int, s string) *Fixed[B] {
	f := NewFixed[B](n)
	f.ParseString(s, '1')
	return f
}

// FixedFromBools returns a bitset with one bit per element of src.
func FixedFromBools[B Block](src []bool) *Fixed[B] {
	f := NewFixed[B](len(src))
	f.LoadBools(src)
	return f
}

// FixedFromBlocks returns an n-bit bitset initialized from src.
// Missing blocks stay zero and extra blocks are ignored.
func FixedFromBlocks[B Block](n int, src []B) *Fixed[B] {
	f := NewFixed[B](n)
	f.LoadBlocks(src)
	return f
}

// Clone returns an independent copy.
func (f *Fixed[B]) Clone() *Fixed[B] {
	out := NewFixed[B](f.size)
	copy(out.data, f.data)
	return out
}

// UnmarshalText implements encoding.TextUnmarshaler. The text must hold
// exactly Len() characters, each '0' or '1'.
func (f *Fixed[B]) UnmarshalText(text []byte) error {
	if len(text) != f.size {
		return &ErrSizeMismatch{Expected: f.size, Actual: len(text)}
	}
	return f.parseText(text)
}

// GoString renders the bitset for %#v.
func (f *Fixed[B]) GoString() string {
	return fmt.Sprintf("%T(%d, %q)", f, f.size, f.String())
}

// Both variants satisfy Storage, so conversions accept either.
var (
	_ Storage[uint64] = (*Fixed[uint64])(nil)
	_ Storage[uint8]  = (*Dynamic[uint8])(nil)
)
