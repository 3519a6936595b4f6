// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package rnd implements the process-wide seeded random-number generator
// exposed for reproducibility, built directly on math/rand in the same
// thin-wrapper style github.com/cpmech/gosl/rnd uses over Go's standard
// generator.
package rnd

import "math/rand"

var gen = rand.New(rand.NewSource(1))

// Reseed resets the process-wide generator. Subsequent Next*/Value calls
// form a sequence that is a pure function of seed and call order, so a
// given seed reproduces an identical generation run.
func Reseed(seed int64) {
	gen = rand.New(rand.NewSource(seed))
}

// Value returns the next value in [0,1)
func Value() float64 {
	return gen.Float64()
}

// Next returns a float uniformly distributed in [lo, hi)
func Next(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + gen.Float64()*(hi-lo)
}

// NextInt returns an integer uniformly distributed in [lo, hi) (exclusive
// upper bound).
func NextInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + gen.Intn(hi-lo)
}

// RandomElement returns a uniformly-picked element of a non-empty slice.
func RandomElement[T any](xs []T) T {
	return xs[NextInt(0, len(xs))]
}

// Bool returns true with probability p (p in [0,1]).
func Bool(p float64) bool {
	return gen.Float64() < p
}
