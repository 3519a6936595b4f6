// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/citygen/geom"
)

func Test_grid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid01: insert and neighbourhood")

	g := New(geom.Zero, 10)
	g.Insert(geom.NewVector(1, 1))
	g.Insert(geom.NewVector(25, 25))
	chk.IntAssert(len(g.Neighbourhood(geom.NewVector(2, 2))), 1)
	chk.IntAssert(g.Len(), 2)
}

func Test_grid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid02: density validity")

	g := New(geom.Zero, 10)
	g.Insert(geom.NewVector(5, 5))
	if g.IsValidSample(geom.NewVector(5.1, 5.1), 4) {
		tst.Fatal("point too close to existing sample should be invalid")
	}
	if !g.IsValidSample(geom.NewVector(50, 50), 4) {
		tst.Fatal("far point should be valid")
	}
}

func Test_grid03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid03: negative coordinates cell mapping")

	g := New(geom.Zero, 10)
	i, j := g.CellOf(geom.NewVector(-1, -1))
	chk.IntAssert(i, -1)
	chk.IntAssert(j, -1)
}
