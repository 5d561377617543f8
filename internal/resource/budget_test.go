package resource

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestBudget_TryAcquire(t *testing.T) {
	b := NewBudget(100)

	require.NoError(t, b.TryAcquire(50))
	require.NoError(t, b.TryAcquire(40))
	assert.Equal(t, int64(90), b.Usage())

	assert.ErrorIs(t, b.TryAcquire(20), ErrMemoryLimitExceeded)
	assert.Equal(t, int64(90), b.Usage())

	b.Release(50)
	assert.Equal(t, int64(40), b.Usage())

	require.NoError(t, b.TryAcquire(20))
	assert.Equal(t, int64(60), b.Usage())
	assert.Equal(t, int64(90), b.Peak())
	assert.Equal(t, int64(100), b.Limit())
}

func TestBudget_Unlimited(t *testing.T) {
	for _, limit := range []int64{0, -5} {
		b := NewBudget(limit)
		require.NoError(t, b.TryAcquire(1000))
		require.NoError(t, b.Acquire(context.Background(), 1000))
		assert.Equal(t, int64(2000), b.Usage())

		b.Release(500)
		assert.Equal(t, int64(1500), b.Usage())
		assert.Zero(t, b.Limit())
	}
}

func TestBudget_AcquireBlocks(t *testing.T) {
	b := NewBudget(100)
	require.NoError(t, b.Acquire(context.Background(), 100))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, b.Acquire(ctx, 1), context.DeadlineExceeded)

	assert.ErrorIs(t, b.Acquire(context.Background(), 101), ErrMemoryLimitExceeded)

	done := make(chan error, 1)
	go func() { done <- b.Acquire(context.Background(), 10) }()
	b.Release(10)
	require.NoError(t, <-done)
	assert.Equal(t, int64(100), b.Usage())
}

func TestBudget_Concurrent(t *testing.T) {
	b := NewBudget(64)

	g := new(errgroup.Group)
	for range 16 {
		g.Go(func() error {
			for range 100 {
				if err := b.Acquire(context.Background(), 8); err != nil {
					return err
				}
				b.Release(8)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Zero(t, b.Usage())
	assert.LessOrEqual(t, b.Peak(), int64(64))
}

func TestBudget_Nil(t *testing.T) {
	var b *Budget
	assert.NoError(t, b.TryAcquire(10))
	assert.NoError(t, b.Acquire(context.Background(), 10))
	b.Release(10)
	assert.Zero(t, b.Usage())
	assert.Zero(t, b.Peak())
	assert.Zero(t, b.Limit())
}
