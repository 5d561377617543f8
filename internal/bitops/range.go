package bitops

import (
	"github.com/hupe1980/bitvec/internal/blocks"
	"github.com/hupe1980/bitvec/internal/kernel"
)

// FillRange sets bits [begin, end) to v.
//
// A begin block entered mid-block and an end block left mid-block are masked;
// every block strictly between them is written by one bulk fill.
func FillRange[B blocks.Block](d []B, begin, end int, v bool) {
	if begin >= end {
		return
	}
	w := blocks.Width[B]()
	bb, eb := begin/w, end/w
	bo, eo := begin%w, end%w

	first := bb
	if bo != 0 {
		hi := w
		if bb == eb {
			hi = eo
		}
		apply(&d[bb], blocks.RangeMask[B](bo, hi), v)
		first = bb + 1
	}
	// The end block still needs work unless the begin step already covered it.
	if eo != 0 && (bb != eb || bo == 0) {
		apply(&d[eb], blocks.LowMask[B](eo), v)
	}
	if first < eb {
		kernel.FillBlocks(d[first:eb], fillValue[B](v))
	}
}

// FlipRange toggles bits [begin, end) using the same boundary split as FillRange.
func FlipRange[B blocks.Block](d []B, begin, end int) {
	if begin >= end {
		return
	}
	w := blocks.Width[B]()
	bb, eb := begin/w, end/w
	bo, eo := begin%w, end%w

	first := bb
	if bo != 0 {
		hi := w
		if bb == eb {
			hi = eo
		}
		d[bb] ^= blocks.RangeMask[B](bo, hi)
		first = bb + 1
	}
	if eo != 0 && (bb != eb || bo == 0) {
		d[eb] ^= blocks.LowMask[B](eo)
	}
	if first < eb {
		kernel.NotBlocks(d[first:eb])
	}
}

// FillStride sets bits begin, begin+step, begin+2*step, ... below end to v.
// A non-positive step is a no-op.
func FillStride[B blocks.Block](d []B, begin, end, step int, v bool) {
	if step <= 0 {
		return
	}
	if step == 1 {
		FillRange(d, begin, end, v)
		return
	}
	for i := begin; i < end; i += step {
		SetTo(d, i, v)
	}
}

// FlipStride toggles bits begin, begin+step, ... below end.
// A non-positive step is a no-op.
func FlipStride[B blocks.Block](d []B, begin, end, step int) {
	if step <= 0 {
		return
	}
	if step == 1 {
		FlipRange(d, begin, end)
		return
	}
	for i := begin; i < end; i += step {
		Flip(d, i)
	}
}

// FillBlockRange writes v to blocks begin, begin+step, ... below end.
// Blocks are the unit here, so no masking happens.
func FillBlockRange[B blocks.Block](d []B, begin, end, step int, v B) {
	if step <= 0 || begin >= end {
		return
	}
	if step == 1 {
		kernel.FillBlocks(d[begin:end], v)
		return
	}
	for i := begin; i < end; i += step {
		d[i] = v
	}
}

// FlipBlockRange complements blocks begin, begin+step, ... below end.
func FlipBlockRange[B blocks.Block](d []B, begin, end, step int) {
	if step <= 0 || begin >= end {
		return
	}
	if step == 1 {
		kernel.NotBlocks(d[begin:end])
		return
	}
	for i := begin; i < end; i += step {
		d[i] = ^d[i]
	}
}
