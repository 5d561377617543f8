package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Range returns a random half-open range [begin, end) with 0 <= begin <= end <= n.
func (r *RNG) Range(n int) (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, b := r.rand.Intn(n+1), r.rand.Intn(n+1)
	if a > b {
		a, b = b, a
	}
	return a, b
}

// Bools generates n booleans where each is true with probability density.
func (r *RNG) Bools(n int, density float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]bool, n)
	for i := range n {
		out[i] = r.rand.Float64() < density
	}
	return out
}

// Model is a brute-force bitset: one bool per bit, no packing.
type Model []bool

// NewModel returns an all-clear model of n bits.
func NewModel(n int) Model {
	return make(Model, n)
}

// Clone returns a copy of the model.
func (m Model) Clone() Model {
	out := make(Model, len(m))
	copy(out, m)
	return out
}

// FillRange sets bits [begin, end) to v.
func (m Model) FillRange(begin, end int, v bool) {
	for i := begin; i < end; i++ {
		m[i] = v
	}
}

// FlipRange flips bits [begin, end).
func (m Model) FlipRange(begin, end int) {
	for i := begin; i < end; i++ {
		m[i] = !m[i]
	}
}

// FillStride sets bits begin, begin+step, ... below end to v.
func (m Model) FillStride(begin, end, step int, v bool) {
	for i := begin; i < end; i += step {
		m[i] = v
	}
}

// FlipStride flips bits begin, begin+step, ... below end.
func (m Model) FlipStride(begin, end, step int) {
	for i := begin; i < end; i += step {
		m[i] = !m[i]
	}
}

// Count returns the number of set bits.
func (m Model) Count() int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}

// String renders the model with '1' for set and '0' for clear bits, index 0 first.
func (m Model) String() string {
	buf := make([]byte, len(m))
	for i, v := range m {
		if v {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// Ones returns the indices of set bits in ascending order.
func (m Model) Ones() []int {
	var out []int
	for i, v := range m {
		if v {
			out = append(out, i)
		}
	}
	return out
}
