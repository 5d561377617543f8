//go:build bitvec_debug

package blocks

import "fmt"

// Debug reports whether index assertions are compiled in.
const Debug = true

// AssertIndex panics if i is not a valid index for size elements.
func AssertIndex(i, size int) {
	if i < 0 || i >= size {
		panic(fmt.Sprintf("bitvec: index out of range [%d] with size %d", i, size))
	}
}

// AssertRange panics if [begin, end) is not a valid range for size elements.
func AssertRange(begin, end, size int) {
	if begin < 0 || begin > end || end > size {
		panic(fmt.Sprintf("bitvec: invalid range [%d, %d) with size %d", begin, end, size))
	}
}
