// Package bitvec provides dense bit vectors packed into unsigned integer blocks.
//
// Two variants share one algorithm core:
//
//   - Fixed: the bit count is chosen at construction and never changes.
//     Storage is allocated once.
//   - Dynamic: the bit count changes through Resize, PushBack, PopBack,
//     Insert and their block-sized counterparts. Storage is reallocated
//     on every change of the block count.
//
// Bit i lives in block i/W at offset i%W, where W is the width of the block
// type (8, 16, 32 or 64 bits). Bits of the last block at positions >= Len()
// are padding: they may hold any value and no query ever reports them.
//
// # Quick Start
//
//	bs := bitvec.NewFixed[uint8](10)
//	bs.Set(0)
//	bs.Set(3)
//	bs.Set(9)
//	fmt.Println(bs.String(), bs.Count()) // 1001000001 3
//
//	dyn := bitvec.NewDynamic[uint32](0, bitvec.WithLogLevel(slog.LevelDebug))
//	for range 33 {
//	    dyn.PushBack(true)
//	}
//	fmt.Println(dyn.StorageSize(), dyn.PartialSize()) // 2 1
//
// # Range Operations
//
// FillRange, FlipRange and their Set/Clear shorthands operate on [begin, end).
// Blocks strictly inside the range are written in bulk and only the two
// boundary blocks are masked. The Step variants touch begin, begin+step, ...
// one bit at a time.
//
// # Bounds Checking
//
// Methods on Fixed and Dynamic do not check their arguments. Building with
// -tags bitvec_debug turns index and range violations into panics with a
// descriptive message. Callers that need recoverable errors use the view
// returned by Checked:
//
//	if err := bs.Checked().Set(42); err != nil {
//	    var oor *bitvec.ErrIndexOutOfRange
//	    if errors.As(err, &oor) { ... }
//	}
//
// # Iteration
//
// Bits, Backward and Ones return range functions:
//
//	for i := range bs.Ones() {
//	    fmt.Println(i)
//	}
//
// Iterator, ReverseIterator and Ref are lightweight (bitset, index) views.
// They hold no storage of their own. A Ref or iterator into a Dynamic must
// not be used past a PopBack, PopBackBlock or shrinking Resize that drops its index.
//
// # Memory Budget
//
// A MemoryBudget caps the storage bytes of every Dynamic sharing it:
//
//	budget := bitvec.NewMemoryBudget(1 << 20)
//	dyn := bitvec.NewDynamic[uint64](0, bitvec.WithMemoryBudget(budget))
//	if err := dyn.TryResize(1 << 24); err != nil {
//	    // *ErrCapacityExceeded wrapping ErrMemoryLimitExceeded
//	}
//
// TryResize and TryPushBack return the error; other growing methods panic with it.
//
// # Interoperability
//
// ToRoaring/FromRoaring exchange bits with github.com/RoaringBitmap/roaring/v2 and
// ToBitSet/FromBitSet with github.com/bits-and-blooms/bitset. ToInteger and
// FromInteger reinterpret the low bits as an unsigned integer. Convert copies
// between bitsets of different block types.
//
// # Thread Safety
//
// Bitsets are not safe for concurrent mutation. Guard shared instances with a
// mutex. MetricsCollector implementations must be safe for concurrent use when
// shared between bitsets. MemoryBudget and BasicMetricsCollector are.
package bitvec
