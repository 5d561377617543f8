package bitvec

import "github.com/hupe1980/bitvec/internal/blocks"

// Block is the unsigned integer type bits are packed into.
type Block = blocks.Block

// Storage is the read side shared by Fixed, Dynamic and any other
// block-packed bit container with the same layout.
//
// Data must return at least ceil(Len()/W) blocks.
type Storage[B Block] interface {
	// Len returns the number of bits.
	Len() int
	// Data returns the underlying blocks.
	Data() []B
}

// BlockWidth returns the number of bits held by one block of type B.
func BlockWidth[B Block]() int {
	return blocks.Width[B]()
}

// StorageSizeFor returns the number of B blocks needed to hold n bits.
func StorageSizeFor[B Block](n int) int {
	return blocks.StorageSize(n, blocks.Width[B]())
}
