// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Block storage is allocated on 64-byte (cache line) boundaries so that a
// bitset's first block never shares a line with unrelated data.
//
// # Reallocation
//
// Realloc is the single growth/shrink primitive behind dynamic bitsets: it
// allocates a fresh buffer, copies the surviving prefix and zeroes new blocks.
// The returned slice is length-paired and owned by the garbage collector.
package mem
