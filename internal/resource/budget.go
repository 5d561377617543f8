package resource

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// ErrMemoryLimitExceeded is returned when a reservation would exceed the limit.
var ErrMemoryLimitExceeded = errors.New("memory limit exceeded")

// Budget reserves bytes against an optional hard limit.
type Budget struct {
	limit int64
	sem   *semaphore.Weighted // nil if unlimited
	used  atomic.Int64
	peak  atomic.Int64
}

// NewBudget returns a budget of limit bytes. A limit <= 0 only tracks usage.
func NewBudget(limit int64) *Budget {
	if limit < 0 {
		limit = 0
	}
	b := &Budget{limit: limit}
	if limit > 0 {
		b.sem = semaphore.NewWeighted(limit)
	}
	return b
}

// TryAcquire reserves n bytes without blocking.
// Returns ErrMemoryLimitExceeded if the limit would be exceeded.
func (b *Budget) TryAcquire(n int64) error {
	if b == nil || n <= 0 {
		return nil
	}
	if b.sem != nil && !b.sem.TryAcquire(n) {
		return ErrMemoryLimitExceeded
	}
	b.add(n)
	return nil
}

// Acquire reserves n bytes, waiting for releases until ctx is done.
// A request larger than the limit fails immediately.
func (b *Budget) Acquire(ctx context.Context, n int64) error {
	if b == nil || n <= 0 {
		return nil
	}
	if b.sem != nil {
		if n > b.limit {
			return ErrMemoryLimitExceeded
		}
		if err := b.sem.Acquire(ctx, n); err != nil {
			return err
		}
	}
	b.add(n)
	return nil
}

// Release returns n previously reserved bytes.
func (b *Budget) Release(n int64) {
	if b == nil || n <= 0 {
		return
	}
	b.used.Add(-n)
	if b.sem != nil {
		b.sem.Release(n)
	}
}

// Usage returns the number of reserved bytes.
func (b *Budget) Usage() int64 {
	if b == nil {
		return 0
	}
	return b.used.Load()
}

// Peak returns the highest usage observed.
func (b *Budget) Peak() int64 {
	if b == nil {
		return 0
	}
	return b.peak.Load()
}

// Limit returns the configured limit in bytes (0 if unlimited).
func (b *Budget) Limit() int64 {
	if b == nil {
		return 0
	}
	return b.limit
}

func (b *Budget) add(n int64) {
	used := b.used.Add(n)
	for {
		p := b.peak.Load()
		if used <= p || b.peak.CompareAndSwap(p, used) {
			return
		}
	}
}
