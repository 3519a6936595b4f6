// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package island

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/citygen/geom"
	"github.com/cpmech/citygen/rnd"
	"github.com/cpmech/citygen/voronoi"
)

func Test_island01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("island01: radial shape contains near-centre points and excludes far ones")

	shape := NewRadial(geom.NewVector(0, 0), 6)
	if !shape.Contains(geom.NewVector(1, 1)) {
		tst.Fatal("expected point near centre to be inside the disk")
	}
	if shape.Contains(geom.NewVector(20, 20)) {
		tst.Fatal("expected far point to be outside the disk")
	}
}

func Test_island02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("island02: union is true if any part contains the point")

	u := NewUnion(NewRadial(geom.NewVector(-10, 0), 2), NewRadial(geom.NewVector(10, 0), 2))
	if !u.Contains(geom.NewVector(10, 1)) {
		tst.Fatal("expected union to contain point inside second disk")
	}
	if u.Contains(geom.NewVector(0, 0)) {
		tst.Fatal("expected union to exclude point outside both disks")
	}
}

func Test_island03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("island03: coastline extraction produces a closed, non-empty boundary")

	rnd.Reseed(7)
	sites := voronoi.GeneratePoints(geom.NewVector(-20, -20), geom.NewVector(20, 20), 25, 1.5)
	v, err := voronoi.Build(sites)
	if err != nil {
		tst.Fatalf("voronoi build failed: %v", err)
	}
	shape := NewRadial(geom.NewVector(0, 0), 12)
	coast := Coastline(v, shape)
	if len(coast) < 3 {
		tst.Fatalf("expected a non-trivial coastline, got %d points", len(coast))
	}

	refined := Refine(coast)
	if len(refined) < len(coast) {
		tst.Fatal("refine should never remove vertices")
	}
}
