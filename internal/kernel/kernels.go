package kernel

import (
	"math/bits"

	"github.com/hupe1980/bitvec/internal/blocks"
)

// FillBlocks sets every block of dst to v.
// Zero uses the runtime memclr; other values are broadcast by copy doubling.
func FillBlocks[B blocks.Block](dst []B, v B) {
	if len(dst) == 0 {
		return
	}
	if v == 0 {
		clear(dst)
		return
	}
	dst[0] = v
	for n := 1; n < len(dst); n *= 2 {
		copy(dst[n:], dst[:n])
	}
}

// NotBlocks performs dst[i] = ^dst[i] for all blocks.
func NotBlocks[B blocks.Block](dst []B) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = ^dst[i]
		dst[i+1] = ^dst[i+1]
		dst[i+2] = ^dst[i+2]
		dst[i+3] = ^dst[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] = ^dst[i]
	}
}

// AndBlocks performs dst[i] &= src[i] for the common prefix.
func AndBlocks[B blocks.Block](dst, src []B) {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] &= src[i]
		dst[i+1] &= src[i+1]
		dst[i+2] &= src[i+2]
		dst[i+3] &= src[i+3]
	}
	for ; i < n; i++ {
		dst[i] &= src[i]
	}
}

// AndNotBlocks performs dst[i] &^= src[i] for the common prefix.
func AndNotBlocks[B blocks.Block](dst, src []B) {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] &^= src[i]
		dst[i+1] &^= src[i+1]
		dst[i+2] &^= src[i+2]
		dst[i+3] &^= src[i+3]
	}
	for ; i < n; i++ {
		dst[i] &^= src[i]
	}
}

// OrBlocks performs dst[i] |= src[i] for the common prefix.
func OrBlocks[B blocks.Block](dst, src []B) {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] |= src[i]
		dst[i+1] |= src[i+1]
		dst[i+2] |= src[i+2]
		dst[i+3] |= src[i+3]
	}
	for ; i < n; i++ {
		dst[i] |= src[i]
	}
}

// XorBlocks performs dst[i] ^= src[i] for the common prefix.
func XorBlocks[B blocks.Block](dst, src []B) {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] ^= src[i]
		dst[i+1] ^= src[i+1]
		dst[i+2] ^= src[i+2]
		dst[i+3] ^= src[i+3]
	}
	for ; i < n; i++ {
		dst[i] ^= src[i]
	}
}

// Popcount counts all set bits across blocks using the active mode.
func Popcount[B blocks.Block](src []B) int {
	if activeMode == Hardware {
		return PopcountHardware(src)
	}
	return PopcountKernighan(src)
}

// PopcountKernighan counts set bits by repeatedly clearing the lowest one.
func PopcountKernighan[B blocks.Block](src []B) int {
	count := 0
	for _, v := range src {
		for v != 0 {
			v &= v - 1
			count++
		}
	}
	return count
}

// PopcountHardware counts set bits with math/bits.
func PopcountHardware[B blocks.Block](src []B) int {
	count := 0
	for _, v := range src {
		count += bits.OnesCount64(uint64(v))
	}
	return count
}

// PopcountBlock counts the set bits of a single block.
func PopcountBlock[B blocks.Block](v B) int {
	return bits.OnesCount64(uint64(v))
}
