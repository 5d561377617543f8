package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidth(t *testing.T) {
	assert.Equal(t, 8, Width[uint8]())
	assert.Equal(t, 16, Width[uint16]())
	assert.Equal(t, 32, Width[uint32]())
	assert.Equal(t, 64, Width[uint64]())
}

func TestIndexOffset(t *testing.T) {
	tests := []struct {
		i, w       int
		idx, shift int
	}{
		{0, 8, 0, 0},
		{7, 8, 0, 7},
		{8, 8, 1, 0},
		{13, 8, 1, 5},
		{32, 32, 1, 0},
		{130, 64, 2, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.idx, Index(tt.i, tt.w), "Index(%d, %d)", tt.i, tt.w)
		assert.Equal(t, tt.shift, Offset(tt.i, tt.w), "Offset(%d, %d)", tt.i, tt.w)
	}
}

func TestMasks(t *testing.T) {
	assert.Equal(t, uint8(0x20), Mask[uint8](5))
	assert.Equal(t, uint64(1)<<63, Mask[uint64](63))

	assert.Equal(t, uint8(0), LowMask[uint8](0))
	assert.Equal(t, uint8(0x03), LowMask[uint8](2))
	assert.Equal(t, uint8(0xFF), LowMask[uint8](8))
	assert.Equal(t, ^uint64(0), LowMask[uint64](64))
	assert.Equal(t, uint32(0x7FFFFFFF), LowMask[uint32](31))

	assert.Equal(t, uint8(0x38), RangeMask[uint8](3, 6))
	assert.Equal(t, uint8(0xF8), RangeMask[uint8](3, 8))
	assert.Equal(t, uint16(0), RangeMask[uint16](4, 4))
	assert.Equal(t, uint8(0xFF), Ones[uint8]())
}

func TestSizes(t *testing.T) {
	tests := []struct {
		name                   string
		size, w                int
		storage, partial, full int
	}{
		{"empty", 0, 8, 0, 0, 0},
		{"one bit", 1, 8, 1, 1, 0},
		{"aligned", 16, 8, 2, 0, 2},
		{"partial", 10, 8, 2, 2, 1},
		{"33 in 32", 33, 32, 2, 1, 1},
		{"65 in 64", 65, 64, 2, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.storage, StorageSize(tt.size, tt.w))
			assert.Equal(t, tt.partial, PartialSize(tt.size, tt.w))
			assert.Equal(t, tt.full, FullStorageSize(tt.size, tt.w))
		})
	}
}
