// Package bitops is the bit-packing engine shared by the fixed and dynamic
// bitsets.
//
// Every function operates on a block slice d and, where padding matters, on the
// logical bit size. No function checks bounds: callers guarantee that bit
// indices are below size and block indices are below len(d).
//
// Range operations touch at most two boundary blocks with masks and hand the
// fully covered interior to the bulk kernels:
//
//	       begin                                  end
//	         v                                     v
//	|....####|########|########|########|###.....|
//	 boundary    interior (bulk fill/complement)   boundary
package bitops
