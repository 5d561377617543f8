package mem

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocAligned(t *testing.T) {
	sizes := []int{1, 10, 63, 64, 65, 100, 1024}

	for _, size := range sizes {
		buf := AllocAligned(size)
		assert.Len(t, buf, size)

		ptr := unsafe.Pointer(&buf[0])
		addr := uintptr(ptr)
		assert.Equal(t, uintptr(0), addr%Alignment, "Address %d should be aligned to %d for size %d", addr, Alignment, size)
	}

	assert.Nil(t, AllocAligned(0))
	assert.Nil(t, AllocAligned(-1))
}

func TestAllocBlocks(t *testing.T) {
	sizes := []int{1, 2, 7, 8, 9, 100}

	for _, size := range sizes {
		u8 := AllocBlocks[uint8](size)
		u32 := AllocBlocks[uint32](size)
		u64 := AllocBlocks[uint64](size)
		assert.Len(t, u8, size)
		assert.Len(t, u32, size)
		assert.Len(t, u64, size)

		addr := uintptr(unsafe.Pointer(&u64[0]))
		assert.Equal(t, uintptr(0), addr%Alignment, "Address %d should be aligned to %d for size %d", addr, Alignment, size)
		for _, v := range u64 {
			assert.Zero(t, v)
		}
	}

	assert.Nil(t, AllocBlocks[uint16](0))
	assert.Nil(t, AllocBlocks[uint16](-3))
}

func TestRealloc(t *testing.T) {
	t.Run("grow zeroes new blocks", func(t *testing.T) {
		old := []uint16{0x1111, 0x2222}
		got := Realloc(old, 4)
		require.Len(t, got, 4)
		assert.Equal(t, []uint16{0x1111, 0x2222, 0, 0}, got)

		// The new buffer does not alias the old one.
		got[0] = 0
		assert.Equal(t, uint16(0x1111), old[0])
	})

	t.Run("shrink keeps prefix", func(t *testing.T) {
		got := Realloc([]uint32{1, 2, 3}, 2)
		assert.Equal(t, []uint32{1, 2}, got)
	})

	t.Run("from nil", func(t *testing.T) {
		got := Realloc[uint8](nil, 1)
		assert.Equal(t, []uint8{0}, got)
	})

	t.Run("to zero", func(t *testing.T) {
		assert.Nil(t, Realloc([]uint64{1}, 0))
	})
}

func BenchmarkAllocAligned(b *testing.B) {
	sizes := []int{64, 256, 1024, 4096}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = AllocAligned(size)
			}
		})
	}
}

func BenchmarkRealloc(b *testing.B) {
	old := AllocBlocks[uint64](1024)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Realloc(old, 1025)
	}
}
