// Package testutil provides testing utilities for recid.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, goroutine-safe RNG and helpers for generating random
// names and plugin files.
//
//	rng := testutil.NewRNG(seed)
//	name := rng.Word(3, 12)
//	plugin := rng.PluginName()
package testutil
