// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/citygen/geom"
)

func Test_basis01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("basis01: grid field is constant everywhere (scenario B)")

	g := NewGrid(geom.Zero, 1e12, 0, 0, false)
	for _, p := range []geom.Vector{geom.NewVector(1, 0), geom.NewVector(0, 1), geom.NewVector(-1, 0)} {
		tt := g.Tensor(p)
		maj := tt.Major()
		if !maj.ApproxEqual(geom.NewVector(1, 0), 1e-9) {
			tst.Fatalf("expected constant Major (1,0) at %v, got %v", p, maj)
		}
	}
}

func Test_basis02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("basis02: radial field eigenvector at (1,0) (scenario C)")

	r := NewRadial(geom.Zero, 1, 1, false)
	t := r.Tensor(geom.NewVector(1, 0))
	maj := t.Major()
	// row at (1,0): (0-1, 0) = (-1,0) normalised -> theta = pi/2 -> Major along (0,+-1)
	if math.Abs(maj.X) > 1e-9 {
		tst.Fatalf("expected Major along y-axis, got %v", maj)
	}
}
