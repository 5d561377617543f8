// Package kernel provides the bulk block operations behind bitset range and
// whole-set operations.
//
// Every kernel works on plain block slices and has no notion of bit size or
// padding; callers mask boundary blocks themselves.
//
// # Popcount selection
//
// Two population count strategies exist:
//   - Kernighan: clears the lowest set bit until the block is zero. Portable,
//     cost proportional to the number of set bits.
//   - Hardware: math/bits.OnesCount64, which the compiler lowers to POPCNT
//     (amd64) or CNT (arm64).
//
// The mode is chosen once at init from CPU features. Set BITVEC_POPCOUNT to
// "kernighan" or "hardware" to override the detection.
package kernel
