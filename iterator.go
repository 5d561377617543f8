package bitvec

import "iter"

// Iterator is a cursor over bit indices [0, Len()]. Comparisons look at the
// index only; Value and Ref access the bit under the cursor.
type Iterator[B Block] struct {
	c *core[B]
	i int
}

// Index returns the cursor position.
func (it Iterator[B]) Index() int { return it.i }

// Value reports whether the bit under the cursor is set.
func (it Iterator[B]) Value() bool { return it.c.Test(it.i) }

// Ref returns a writable reference to the bit under the cursor.
func (it Iterator[B]) Ref() Ref[B] { return Ref[B]{c: it.c, i: it.i} }

// Inc advances the cursor by one bit.
func (it *Iterator[B]) Inc() { it.i++ }

// Dec moves the cursor back by one bit.
func (it *Iterator[B]) Dec() { it.i-- }

// Add returns a cursor n bits further on.
func (it Iterator[B]) Add(n int) Iterator[B] { return Iterator[B]{c: it.c, i: it.i + n} }

// Sub returns a cursor n bits back.
func (it Iterator[B]) Sub(n int) Iterator[B] { return Iterator[B]{c: it.c, i: it.i - n} }

// Mul returns a cursor at index*n.
func (it Iterator[B]) Mul(n int) Iterator[B] { return Iterator[B]{c: it.c, i: it.i * n} }

// Div returns a cursor at index/n. It panics if n is 0.
func (it Iterator[B]) Div(n int) Iterator[B] { return Iterator[B]{c: it.c, i: it.i / n} }

// Distance returns the number of bits from o to it.
func (it Iterator[B]) Distance(o Iterator[B]) int { return it.i - o.i }

// Equal reports whether both cursors sit at the same index.
func (it Iterator[B]) Equal(o Iterator[B]) bool { return it.i == o.i }

// Less reports whether it sits before o.
func (it Iterator[B]) Less(o Iterator[B]) bool { return it.i < o.i }

// ReverseIterator walks from the last bit towards bit 0. Inc moves to a
// lower index and Dec to a higher one; REnd sits at index -1.
type ReverseIterator[B Block] struct {
	c *core[B]
	i int
}

// Index returns the cursor position.
func (it ReverseIterator[B]) Index() int { return it.i }

// Value reports whether the bit under the cursor is set.
func (it ReverseIterator[B]) Value() bool { return it.c.Test(it.i) }

// Ref returns a writable reference to the bit under the cursor.
func (it ReverseIterator[B]) Ref() Ref[B] { return Ref[B]{c: it.c, i: it.i} }

// Inc moves the cursor one bit towards bit 0.
func (it *ReverseIterator[B]) Inc() { it.i-- }

// Dec moves the cursor one bit towards the last bit.
func (it *ReverseIterator[B]) Dec() { it.i++ }

// Add returns a cursor n steps further in reverse order.
func (it ReverseIterator[B]) Add(n int) ReverseIterator[B] {
	return ReverseIterator[B]{c: it.c, i: it.i - n}
}

// Sub returns a cursor n steps back in reverse order.
func (it ReverseIterator[B]) Sub(n int) ReverseIterator[B] {
	return ReverseIterator[B]{c: it.c, i: it.i + n}
}

// Distance returns the number of reverse steps from o to it.
func (it ReverseIterator[B]) Distance(o ReverseIterator[B]) int { return o.i - it.i }

// Equal reports whether both cursors sit at the same index.
func (it ReverseIterator[B]) Equal(o ReverseIterator[B]) bool { return it.i == o.i }

// Less reports whether it comes before o in reverse order.
func (it ReverseIterator[B]) Less(o ReverseIterator[B]) bool { return it.i > o.i }

// Bits returns an iterator over (index, value) pairs from bit 0 upwards.
func (c *core[B]) Bits() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := 0; i < c.size; i++ {
			if !yield(i, c.Test(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over (index, value) pairs from the last bit down.
func (c *core[B]) Backward() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := c.size - 1; i >= 0; i-- {
			if !yield(i, c.Test(i)) {
				return
			}
		}
	}
}

// Ones returns an iterator over the indices of set bits in ascending order.
func (c *core[B]) Ones() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := c.NextSet(0); i >= 0; i = c.NextSet(i + 1) {
			if !yield(i) {
				return
			}
		}
	}
}
