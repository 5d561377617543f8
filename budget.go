package bitvec

import (
	"context"

	"github.com/hupe1980/bitvec/internal/resource"
)

// ErrMemoryLimitExceeded is the cause of an *ErrCapacityExceeded returned
// when a MemoryBudget cannot cover a reallocation.
var ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded

// MemoryBudget caps the storage bytes held by the Dynamic bitsets sharing it.
//
// A bitset configured with WithMemoryBudget reserves the bytes it gains
// before each growing reallocation and returns the bytes it loses after each
// shrinking one. Storage still held when a bitset is dropped stays reserved;
// call Resize(0) to hand it back.
type MemoryBudget struct {
	b *resource.Budget
}

// NewMemoryBudget returns a budget of limit bytes. A limit <= 0 only tracks usage.
func NewMemoryBudget(limit int64) *MemoryBudget {
	return &MemoryBudget{b: resource.NewBudget(limit)}
}

// Reserve blocks until n bytes fit in the budget or ctx is done. Bytes
// reserved here are not tied to a bitset and must be returned with Release.
func (m *MemoryBudget) Reserve(ctx context.Context, n int64) error {
	return m.b.Acquire(ctx, n)
}

// Release returns n bytes obtained with Reserve.
func (m *MemoryBudget) Release(n int64) { m.b.Release(n) }

// Usage returns the number of reserved bytes.
func (m *MemoryBudget) Usage() int64 { return m.b.Usage() }

// Peak returns the highest usage observed.
func (m *MemoryBudget) Peak() int64 { return m.b.Peak() }

// Limit returns the limit in bytes, 0 when unlimited.
func (m *MemoryBudget) Limit() int64 { return m.b.Limit() }

func (m *MemoryBudget) budget() *resource.Budget {
	if m == nil {
		return nil
	}
	return m.b
}
