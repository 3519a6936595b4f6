// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrate

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/citygen/field"
	"github.com/cpmech/citygen/geom"
	"github.com/cpmech/citygen/tsr"
)

func constantField() *field.TensorField {
	f := field.New(1, false, field.NoiseParams{})
	f.AddBasis(tsr.NewGrid(geom.Zero, 1e9, 0, 0, false))
	return f
}

func Test_integrate01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("integrate01: Euler step length along constant field")

	f := constantField()
	step := Euler(f, geom.NewVector(10, 10), true, 2.5)
	chk.Scalar(tst, "length", 1e-9, step.Length(), 2.5)
}

func Test_integrate02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("integrate02: RK4 reduces to Euler on a uniform field")

	f := constantField()
	p := geom.NewVector(3, 4)
	e := Euler(f, p, true, 1.0)
	r := RK4(f, p, true, 1.0)
	chk.Scalar(tst, "x", 1e-9, r.X, e.X)
	chk.Scalar(tst, "y", 1e-9, r.Y, e.Y)
}
