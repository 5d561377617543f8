// Package blocks maps logical bit indices onto block storage.
//
// A bitset of size n stores its bits in StorageSize(n, W) blocks of width W.
// Bit i lives in block Index(i, W) at offset Offset(i, W):
//
//	bit index:    0 1 2 ... 7 | 8 9 ... 15 | 16 17 ...
//	block index:  0           | 1          | 2
//	offset:       0 1 2 ... 7 | 0 1 ... 7  | 0  1  ...   (W = 8)
//
// When n is not a multiple of W the last block is partial: only its low
// PartialSize(n, W) bits are meaningful, the remaining padding bits may hold
// any value and must be masked with LowMask before they are compared or counted.
package blocks
