package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec/testutil"
)

func TestToInteger(t *testing.T) {
	bs := ParseFixed[uint8](10, "1001000001")
	assert.Equal(t, uint16(521), ToInteger[uint16, uint8](bs))
	assert.Equal(t, uint8(9), ToInteger[uint8, uint8](bs))
	assert.Equal(t, uint64(521), ToInteger[uint64, uint8](bs))

	// Padding above Len must not show up.
	bs.SetBlock(1, 0xFE)
	assert.Equal(t, uint32(521), ToInteger[uint32, uint8](bs))
	bs.SetBlock(1, 0xFC)
	assert.Equal(t, uint32(9), ToInteger[uint32, uint8](bs))

	wide := FixedFromBlocks[uint64](100, []uint64{0x1122334455667788, 0x99})
	assert.Equal(t, uint32(0x55667788), ToInteger[uint32, uint64](wide))
	assert.Equal(t, uint8(0x88), ToInteger[uint8, uint64](wide))

	var empty Dynamic[uint16]
	assert.Zero(t, ToInteger[uint64, uint16](&empty))
}

func TestFromInteger(t *testing.T) {
	bs := NewFixed[uint8](12)
	bs.SetAll()
	FromInteger[uint32, uint8](bs, 0xABCD)
	assert.Equal(t, "101100111101", bs.String())
	assert.Equal(t, uint32(0xBCD), ToInteger[uint32, uint8](bs))

	narrow := NewFixed[uint64](3)
	FromInteger[uint8, uint64](narrow, 0xFF)
	assert.Equal(t, 3, narrow.Count())
	assert.Equal(t, uint64(7), narrow.Block(0))

	// Bits past bits(T) are cleared.
	big := NewDynamic[uint16](40)
	big.SetAll()
	FromInteger[uint8, uint16](big, 0x81)
	assert.Equal(t, 2, big.Count())
	assert.True(t, big.Test(7))
}

func TestIntegerRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(13)
	for _, n := range []int{1, 5, 8, 13, 31, 32} {
		src := FixedFromBools[uint8](rng.Bools(n, 0.5))
		v := ToInteger[uint32, uint8](src)

		dst := NewFixed[uint8](n)
		FromInteger[uint32, uint8](dst, v)
		require.True(t, dst.Equal(src), "n=%d", n)
	}
}
