//go:build !bitvec_debug

package blocks

// Debug reports whether index assertions are compiled in.
const Debug = false

// AssertIndex is a no-op unless built with the bitvec_debug tag.
func AssertIndex(i, size int) {}

// AssertRange is a no-op unless built with the bitvec_debug tag.
func AssertRange(begin, end, size int) {}
