// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/citygen/geom"
	"github.com/cpmech/citygen/tsr"
)

func Test_field01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("field01: no basis fields returns default grid tensor")

	f := New(1, true, NoiseParams{})
	got := f.Sample(geom.NewVector(5, 5))
	chk.Scalar(tst, "R", 1e-15, got.R, 1)
	chk.Scalar(tst, "cos2t", 1e-15, got.Cos2T, 0)
	chk.Scalar(tst, "sin2t", 1e-15, got.Sin2T, 0)
}

func Test_field02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("field02: sampling in the sea returns the zero tensor")

	f := New(1, true, NoiseParams{})
	f.AddBasis(tsr.NewGrid(geom.Zero, 1000, 0, 0, true))
	f.Sea = geom.NewPolygon([]geom.Vector{
		geom.NewVector(-10, -10), geom.NewVector(10, -10), geom.NewVector(10, 10), geom.NewVector(-10, 10),
	})
	got := f.Sample(geom.NewVector(0, 0))
	chk.Scalar(tst, "R", 1e-15, got.R, 0)
}

func Test_field03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("field03: park noise rotates the accumulated tensor")

	f := New(1, true, NoiseParams{ParkSize: 10, ParkAngle: 0.5})
	f.AddBasis(tsr.NewGrid(geom.Zero, 1000, 0, 0, true))
	f.Parks = []*geom.Polygon{geom.NewPolygon([]geom.Vector{
		geom.NewVector(-5, -5), geom.NewVector(5, -5), geom.NewVector(5, 5), geom.NewVector(-5, 5),
	})}
	inPark := f.Sample(geom.NewVector(-1, -1))
	outPark := f.Sample(geom.NewVector(100, 100))
	if inPark.Theta() == outPark.Theta() {
		tst.Fatal("expected park rotational noise to change theta")
	}
}
