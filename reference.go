package bitvec

// Ref is a writable handle to one bit of a Fixed or Dynamic bitset.
//
// A Ref does not own storage. It stays valid while its index is below the
// bitset's Len(); a Dynamic that shrinks past the index invalidates it.
type Ref[B Block] struct {
	c *core[B]
	i int
}

// Index returns the referenced bit index.
func (r Ref[B]) Index() int { return r.i }

// Value reports whether the referenced bit is set.
func (r Ref[B]) Value() bool { return r.c.Test(r.i) }

// Assign sets the referenced bit to v.
func (r Ref[B]) Assign(v bool) { r.c.SetTo(r.i, v) }

// And sets the referenced bit to bit && v.
func (r Ref[B]) And(v bool) {
	if !v {
		r.c.Clear(r.i)
	}
}

// Or sets the referenced bit to bit || v.
func (r Ref[B]) Or(v bool) {
	if v {
		r.c.Set(r.i)
	}
}

// Xor sets the referenced bit to bit != v.
func (r Ref[B]) Xor(v bool) {
	if v {
		r.c.Flip(r.i)
	}
}

// Flip toggles the referenced bit.
func (r Ref[B]) Flip() { r.c.Flip(r.i) }

// Set sets the referenced bit.
func (r Ref[B]) Set() { r.c.Set(r.i) }

// Clear clears the referenced bit.
func (r Ref[B]) Clear() { r.c.Clear(r.i) }
