package bitvec

import (
	"fmt"
	"strings"
	"time"

	"github.com/hupe1980/bitvec/internal/bitops"
	"github.com/hupe1980/bitvec/internal/blocks"
	"github.com/hupe1980/bitvec/internal/mem"
)

// Dynamic is a bitset whose size changes at run time.
//
// Storage always holds exactly ceil(Len()/W) blocks and is nil when Len()
// is 0. Every change of the block count reallocates: a new buffer is
// allocated, the surviving blocks are copied and the old buffer is dropped.
// The zero value is an empty bitset ready to use.
type Dynamic[B Block] struct {
	core[B]
	opts options
}

// NewDynamic returns a bitset of n clear bits. It panics if n is negative or
// if a memory budget set by WithMemoryBudget cannot cover n bits.
func NewDynamic[B Block](n int, optFns ...Option) *Dynamic[B] {
	if n < 0 {
		panic(fmt.Sprintf("bitvec: negative size %d", n))
	}
	d := &Dynamic[B]{opts: applyOptions(optFns)}
	d.opts.logger = d.opts.logger.WithBlockWidth(d.width())
	d.Resize(n)
	return d
}

// ParseDynamic returns a bitset sized to s up to its first NUL byte,
// with bit i set where s[i] == '1'.
func ParseDynamic[B Block](s string, optFns ...Option) *Dynamic[B] {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	d := NewDynamic[B](len(s), optFns...)
	d.ParseString(s, '1')
	return d
}

// DynamicFromBools returns a bitset with one bit per element of src.
func DynamicFromBools[B Block](src []bool, optFns ...Option) *Dynamic[B] {
	d := NewDynamic[B](len(src), optFns...)
	d.LoadBools(src)
	return d
}

// DynamicFromBlocks returns an n-bit bitset initialized from src.
// Missing blocks stay zero and extra blocks are ignored.
func DynamicFromBlocks[B Block](n int, src []B, optFns ...Option) *Dynamic[B] {
	d := NewDynamic[B](n, optFns...)
	d.LoadBlocks(src)
	return d
}

// Resize changes the number of bits to n. Surviving bits keep their values
// and new bits are clear. Resize(0) releases the storage.
func (d *Dynamic[B]) Resize(n int) {
	mustRealloc(d.TryResize(n))
}

// TryResize is Resize reporting a memory budget failure as
// *ErrCapacityExceeded instead of panicking. On error the bitset is unchanged.
func (d *Dynamic[B]) TryResize(n int) error {
	if n < 0 {
		panic(fmt.Sprintf("bitvec: negative size %d", n))
	}
	if n == d.size {
		return nil
	}
	if n > d.size && len(d.data) > 0 {
		// Padding of the old last block becomes live.
		bitops.FillRange(d.data, d.size, min(n, d.Capacity()), false)
	}
	return d.realloc("resize", blocks.StorageSize(n, d.width()), n)
}

// PushBack appends one bit with value v.
func (d *Dynamic[B]) PushBack(v bool) {
	mustRealloc(d.TryPushBack(v))
}

// TryPushBack is PushBack reporting a memory budget failure as
// *ErrCapacityExceeded instead of panicking.
func (d *Dynamic[B]) TryPushBack(v bool) error {
	if err := d.realloc("push_back", blocks.StorageSize(d.size+1, d.width()), d.size+1); err != nil {
		return err
	}
	bitops.SetTo(d.data, d.size-1, v)
	return nil
}

// PopBack removes the last bit. It does nothing on an empty bitset.
func (d *Dynamic[B]) PopBack() {
	if d.size == 0 {
		return
	}
	mustRealloc(d.realloc("pop_back", blocks.StorageSize(d.size-1, d.width()), d.size-1))
}

// Insert places a bit with value v at index i and moves bits [i, Len())
// up by one. Inserting at Len() is PushBack.
func (d *Dynamic[B]) Insert(i int, v bool) {
	blocks.AssertIndex(i, d.size+1)
	if i == d.size {
		d.PushBack(v)
		return
	}
	mustRealloc(d.realloc("insert", blocks.StorageSize(d.size+1, d.width()), d.size+1))
	bitops.InsertGap(d.data, d.size, i)
	bitops.SetTo(d.data, i, v)
}

// PushBackBlock appends one whole block.
//
// A partial last block is completed first: its padding bits become live
// (cleared) and b lands in the following block, so Len() becomes
// (StorageSize()+1)*W. For a 65-bit bitset of uint64 blocks the size
// goes to 192, not 129.
func (d *Dynamic[B]) PushBackBlock(b B) {
	bitops.ClearPadding(d.data, d.size)
	n := len(d.data) + 1
	mustRealloc(d.realloc("push_back_block", n, n*d.width()))
	d.data[n-1] = b
}

// PopBackBlock removes the last block, partial or not, leaving
// (StorageSize()-1)*W bits. It does nothing on an empty bitset.
func (d *Dynamic[B]) PopBackBlock() {
	if len(d.data) == 0 {
		return
	}
	n := len(d.data) - 1
	mustRealloc(d.realloc("pop_back_block", n, n*d.width()))
}

// InsertBlock places block b at block index i and moves blocks [i, StorageSize())
// up by one. Len() grows by W and PartialSize() is unchanged. Inserting at
// StorageSize() is PushBackBlock.
func (d *Dynamic[B]) InsertBlock(i int, b B) {
	blocks.AssertIndex(i, len(d.data)+1)
	if i == len(d.data) {
		d.PushBackBlock(b)
		return
	}
	mustRealloc(d.realloc("insert_block", len(d.data)+1, d.size+d.width()))
	copy(d.data[i+1:], d.data[i:])
	d.data[i] = b
}

// Clone returns a deep copy sharing the receiver's options.
func (d *Dynamic[B]) Clone() *Dynamic[B] {
	out := &Dynamic[B]{opts: d.opts}
	mustRealloc(out.realloc("clone", len(d.data), d.size))
	copy(out.data, d.data)
	return out
}

// Take moves the storage into a new bitset and leaves the receiver empty.
func (d *Dynamic[B]) Take() *Dynamic[B] {
	out := &Dynamic[B]{core: d.core, opts: d.opts}
	d.core = core[B]{}
	return out
}

// UnmarshalText implements encoding.TextUnmarshaler. The bitset is resized
// to len(text); every byte must be '0' or '1'.
func (d *Dynamic[B]) UnmarshalText(text []byte) error {
	for i, ch := range text {
		if ch != '0' && ch != '1' {
			return fmt.Errorf("%w %q at position %d", ErrInvalidText, ch, i)
		}
	}
	if err := d.TryResize(len(text)); err != nil {
		return err
	}
	bitops.Parse(d.data, d.size, string(text), '1')
	return nil
}

// GoString renders the bitset for %#v.
func (d *Dynamic[B]) GoString() string {
	return fmt.Sprintf("%T(%q)", d, d.String())
}

// realloc replaces the storage with n blocks holding the surviving prefix
// and sets the size to size. Growth is reserved against the memory budget
// before allocating; on failure nothing changes.
func (d *Dynamic[B]) realloc(op string, n, size int) error {
	old := len(d.data)
	if n == old {
		d.size = size
		return nil
	}

	budget := d.opts.budget.budget()
	blockBytes := int64(d.width() / 8)
	if n > old {
		if err := budget.TryAcquire(int64(n-old) * blockBytes); err != nil {
			return &ErrCapacityExceeded{
				Size:  size,
				Limit: uint64(budget.Limit()) * 8,
				cause: err,
			}
		}
	}

	start := time.Now()
	d.data = mem.Realloc(d.data, n)
	elapsed := time.Since(start)
	if n < old {
		budget.Release(int64(old-n) * blockBytes)
	}
	d.size = size

	mc, logger := d.opts.metricsCollector, d.opts.logger
	if mc != nil {
		if n > old {
			mc.RecordGrow(old, n, elapsed)
		} else {
			mc.RecordShrink(old, n, elapsed)
		}
	}
	if logger != nil {
		logger.LogRealloc(op, old, n, size)
	}
	return nil
}

func mustRealloc(err error) {
	if err != nil {
		panic(err)
	}
}
