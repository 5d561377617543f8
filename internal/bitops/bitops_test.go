package bitops

import (
	"strings"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec/internal/blocks"
	"github.com/hupe1980/bitvec/testutil"
)

// load packs a model into freshly allocated blocks, leaving padding set so
// that tests notice when an operation reads it.
func load[B blocks.Block](m testutil.Model) []B {
	w := blocks.Width[B]()
	d := make([]B, blocks.StorageSize(len(m), w))
	Fill(d, true)
	for i, v := range m {
		SetTo(d, i, v)
	}
	return d
}

func requireMatches[B blocks.Block](t *testing.T, m testutil.Model, d []B, msgAndArgs ...any) {
	t.Helper()
	require.Equal(t, m.String(), Format(d, len(m), '1', '0'), msgAndArgs...)
}

func TestSingleBit(t *testing.T) {
	d := make([]uint8, 2)

	Set(d, 0)
	Set(d, 9)
	assert.Equal(t, []uint8{0x01, 0x02}, d)
	assert.True(t, Test(d, 9))
	assert.False(t, Test(d, 8))

	Flip(d, 8)
	assert.Equal(t, uint8(0x03), d[1])

	Clear(d, 9)
	SetTo(d, 3, true)
	SetTo(d, 0, false)
	assert.Equal(t, []uint8{0x08, 0x01}, d)

	Swap(d, 3, 4)
	assert.Equal(t, uint8(0x10), d[0])
}

func TestPartialBlockMasking(t *testing.T) {
	// 10 bits in uint8 blocks: storage 2, partial 2, padding bits 2..7 of block 1.
	d := []uint8{0xFF, 0xFC}
	assert.False(t, All(d, 10))
	assert.False(t, Any(d[1:], 2))
	assert.Equal(t, 8, Count(d, 10))

	d[1] = 0x03
	assert.True(t, All(d, 10))
	d[1] = 0xFF
	assert.True(t, All(d, 10))
	assert.Equal(t, 10, Count(d, 10))

	d = []uint8{0x00, 0xFC}
	assert.False(t, Any(d, 10))
	assert.True(t, None(d, 10))

	assert.True(t, Equal([]uint8{0x12, 0x01}, []uint8{0x12, 0xF1}, 10))
	assert.False(t, Equal([]uint8{0x12, 0x01}, []uint8{0x12, 0x02}, 10))

	ClearPadding(d, 10)
	assert.Equal(t, uint8(0x00), d[1])

	assert.True(t, All[uint8](nil, 0))
	assert.False(t, Any[uint8](nil, 0))
	assert.Zero(t, Count[uint8](nil, 0))
}

func TestScenarioSetBits(t *testing.T) {
	d := make([]uint8, 2)
	for _, i := range []int{0, 3, 9} {
		Set(d, i)
	}
	assert.Equal(t, "1001000001", Format(d, 10, '1', '0'))
	assert.Equal(t, 3, Count(d, 10))
	assert.False(t, All(d, 10))
	assert.True(t, Any(d, 10))
	assert.False(t, None(d, 10))
}

func TestFillRangeExhaustive(t *testing.T) {
	rng := testutil.NewRNG(7)
	for size := 0; size <= 40; size++ {
		for begin := 0; begin <= size; begin++ {
			for end := begin; end <= size; end++ {
				base := testutil.Model(rng.Bools(size, 0.5))
				for _, v := range []bool{true, false} {
					m := base.Clone()
					m.FillRange(begin, end, v)

					d8 := load[uint8](base)
					FillRange(d8, begin, end, v)
					requireMatches(t, m, d8, "uint8 size=%d [%d,%d) v=%v", size, begin, end, v)

					d16 := load[uint16](base)
					FillRange(d16, begin, end, v)
					requireMatches(t, m, d16, "uint16 size=%d [%d,%d) v=%v", size, begin, end, v)
				}

				m := base.Clone()
				m.FlipRange(begin, end)
				d8 := load[uint8](base)
				FlipRange(d8, begin, end)
				requireMatches(t, m, d8, "flip uint8 size=%d [%d,%d)", size, begin, end)
			}
		}
	}
}

func TestFillRangeBoundaryCases(t *testing.T) {
	tests := []struct {
		name       string
		begin, end int
	}{
		{"mid to mid across blocks", 3, 13},
		{"aligned begin same block", 8, 13},
		{"aligned both", 8, 16},
		{"mid begin aligned end", 5, 16},
		{"within one block", 2, 5},
		{"full", 0, 24},
		{"empty", 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := strings.Repeat("0", tt.begin) +
				strings.Repeat("1", tt.end-tt.begin) +
				strings.Repeat("0", 24-tt.end)

			d := make([]uint8, 3)
			FillRange(d, tt.begin, tt.end, true)
			assert.Equal(t, want, Format(d, 24, '1', '0'))
			assert.Equal(t, tt.end-tt.begin, Count(d, 24))

			FlipRange(d, 0, 24)
			assert.Equal(t, 24-(tt.end-tt.begin), Count(d, 24))
		})
	}
}

func TestFlipRangeMatchesBitset(t *testing.T) {
	rng := testutil.NewRNG(99)
	const size = 1000
	for range 200 {
		begin, end := rng.Range(size)

		ref := bitset.New(size)
		d := make([]uint64, blocks.StorageSize(size, 64))
		for i, v := range rng.Bools(size, 0.3) {
			if v {
				ref.Set(uint(i))
				Set(d, i)
			}
		}

		ref.FlipRange(uint(begin), uint(end))
		FlipRange(d, begin, end)

		require.Equal(t, int(ref.Count()), Count(d, size), "flip [%d,%d)", begin, end)
		for i := 0; i < size; i++ {
			require.Equal(t, ref.Test(uint(i)), Test(d, i), "bit %d after flip [%d,%d)", i, begin, end)
		}
	}
}

func TestStride(t *testing.T) {
	rng := testutil.NewRNG(3)
	for _, step := range []int{1, 2, 3, 7, 8, 9, 17} {
		base := testutil.Model(rng.Bools(50, 0.5))
		begin, end := 2, 47

		m := base.Clone()
		m.FillStride(begin, end, step, true)
		d := load[uint8](base)
		FillStride(d, begin, end, step, true)
		requireMatches(t, m, d, "fill step=%d", step)

		m = base.Clone()
		m.FlipStride(begin, end, step)
		d = load[uint8](base)
		FlipStride(d, begin, end, step)
		requireMatches(t, m, d, "flip step=%d", step)
	}

	d := []uint8{0xAA}
	FillStride(d, 0, 8, 0, true)
	FlipStride(d, 0, 8, -1)
	assert.Equal(t, uint8(0xAA), d[0])
}

func TestBlockRanges(t *testing.T) {
	d := make([]uint16, 6)
	FillBlockRange(d, 1, 4, 1, 0x00FF)
	assert.Equal(t, []uint16{0, 0x00FF, 0x00FF, 0x00FF, 0, 0}, d)

	FillBlockRange(d, 0, 6, 2, 0xF000)
	assert.Equal(t, []uint16{0xF000, 0x00FF, 0xF000, 0x00FF, 0xF000, 0}, d)

	FlipBlockRange(d, 4, 6, 1)
	assert.Equal(t, []uint16{0xF000, 0x00FF, 0xF000, 0x00FF, 0x0FFF, 0xFFFF}, d)

	FlipBlockRange(d, 1, 4, 2)
	assert.Equal(t, []uint16{0xF000, 0xFF00, 0xF000, 0xFF00, 0x0FFF, 0xFFFF}, d)
}

func TestFillAndFlipAll(t *testing.T) {
	d := make([]uint32, 3)
	Fill(d, true)
	assert.True(t, All(d, 70))
	FlipAll(d)
	assert.True(t, None(d, 70))
	FlipAll(d)
	FlipAll(d)
	assert.True(t, None(d, 70))
}
