// Package testutil provides testing utilities for bitvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source and a brute-force reference model
// that every bitset operation can be checked against.
//
// # Random Patterns
//
//	rng := testutil.NewRNG(seed)
//	bools := rng.Bools(100, 0.3) // ~30% set
//
// # Reference Model
//
//	m := testutil.NewModel(100)
//	m.FillRange(3, 13, true)
//	assert.Equal(t, m.Count(), b.Count())
package testutil
