// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rnd

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_rnd01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rnd01: reproducibility under fixed seed and call schedule")

	Reseed(42)
	a := []float64{Value(), Next(0, 10), float64(NextInt(0, 100))}

	Reseed(42)
	b := []float64{Value(), Next(0, 10), float64(NextInt(0, 100))}

	for i := range a {
		chk.Scalar(tst, "seq", 1e-15, a[i], b[i])
	}
}

func Test_rnd02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rnd02: bounds")

	Reseed(7)
	for i := 0; i < 100; i++ {
		v := Next(5, 6)
		if v < 5 || v >= 6 {
			tst.Fatalf("Next out of bounds: %v", v)
		}
		n := NextInt(2, 4)
		if n < 2 || n >= 4 {
			tst.Fatalf("NextInt out of bounds: %v", n)
		}
	}
}
