// Package conv converts bit indices and sizes between Go's int and the
// fixed-width integer types used by external bitmap containers.
//
// Roaring bitmaps address bits with uint32 and bits-and-blooms bitsets with
// uint. Each conversion checks its bounds and wraps ErrOverflow when the value
// cannot be represented.
package conv
