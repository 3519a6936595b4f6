// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_tensor01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tensor01: Major perpendicular to Minor")

	t := New(1, math.Pi/6)
	maj := t.Major()
	min := t.Minor()
	chk.Scalar(tst, "maj.min", 1e-12, maj.Dot(min), 0)
}

func Test_tensor02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tensor02: zero tensor has zero Major/Minor")

	maj := Zero.Major()
	min := Zero.Minor()
	chk.Scalar(tst, "maj.x", 1e-15, maj.X, 0)
	chk.Scalar(tst, "maj.y", 1e-15, maj.Y, 0)
	chk.Scalar(tst, "min.x", 1e-15, min.X, 0)
	chk.Scalar(tst, "min.y", 1e-15, min.Y, 0)
	chk.Scalar(tst, "theta", 1e-15, Zero.Theta(), 0)
}

func Test_tensor03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tensor03: non-smooth weighted sum fixes R=2")

	a := New(1, 0)
	b := New(1, 0)
	sum := WeightedSum(false, []float64{1, 1}, []Tensor{a, b})
	chk.Scalar(tst, "R", 1e-12, sum.R, 2)
}

func Test_tensor04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tensor04: smooth weighted sum renormalises R to matrix magnitude")

	a := New(3, 0)
	sum := WeightedSum(true, []float64{1}, []Tensor{a})
	chk.Scalar(tst, "R", 1e-9, sum.R, 3)
}
