// Package resource tracks and limits the heap held by bitset storage.
//
// A Budget is shared by any number of bitsets. A growing reallocation
// reserves the bytes it adds before allocating and a shrinking one releases
// the bytes it drops afterwards:
//
//	b := resource.NewBudget(1 << 20) // 1MiB
//
//	if err := b.TryAcquire(4096); err != nil {
//	    // ErrMemoryLimitExceeded, nothing was reserved
//	}
//	defer b.Release(4096)
//
// TryAcquire never blocks. Acquire waits until enough bytes are released or
// ctx is done.
//
// A limit of 0 disables enforcement and only tracks usage. All methods are
// safe for concurrent use and are no-ops on a nil Budget.
package resource
