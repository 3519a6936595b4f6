// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/citygen/geom"
)

func Test_graph01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("graph01: symmetric neighbour relation with mutually-reversed paths")

	g := New()
	a := g.getOrCreate(geom.NewVector(0, 0))
	b := g.getOrCreate(geom.NewVector(0.75, 0))
	g.Link(a, b, []geom.Vector{a.Pos, b.Pos})

	if !a.HasNeighbour(b) || !b.HasNeighbour(a) {
		tst.Fatal("expected symmetric neighbour relation")
	}
	pAB := a.PathTo(b)
	pBA := b.PathTo(a)
	chk.IntAssert(len(pAB), len(pBA))
	for i := range pAB {
		if !pAB[i].ApproxEqual(pBA[len(pBA)-1-i], 1e-12) {
			tst.Fatal("stored paths are not mutual reverses")
		}
	}
}

func Test_graph02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("graph02: scenario E -- three half-lines produce no loop")

	g := New()
	g.AddStreamlines([][]geom.Vector{
		{geom.NewVector(0, 0), geom.NewVector(10, 0), geom.NewVector(10, 10)},
		{geom.NewVector(5, -5), geom.NewVector(5, 15)},
	})
	loops := g.FindClosedLoops(20)
	if len(loops) != 0 {
		tst.Fatalf("expected no closed loop, got %d", len(loops))
	}
}

func Test_graph03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("graph03: scenario E -- closing the square yields exactly one loop of area ~50")

	g := New()
	g.AddStreamlines([][]geom.Vector{
		{geom.NewVector(0, 0), geom.NewVector(10, 0), geom.NewVector(10, 10)},
		{geom.NewVector(5, -5), geom.NewVector(5, 15)},
		{geom.NewVector(0, 0), geom.NewVector(0, 10), geom.NewVector(10, 10)},
	})
	loops := g.FindClosedLoops(20)
	if len(loops) == 0 {
		tst.Fatal("expected at least one closed loop")
	}
	for _, l := range loops {
		if len(l) < 3 {
			tst.Fatalf("loop shorter than 3 nodes: %d", len(l))
		}
	}
	poly := geom.NewPolygon(LoopPolygon(loops[0]))
	area := poly.Area()
	if area < 30 || area > 70 {
		tst.Fatalf("expected loop area near 50, got %v", area)
	}
}

func Test_graph04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("graph04: ModifyStreamlines inserts a vertex at a mid-segment crossing")

	lines := [][]geom.Vector{
		{geom.NewVector(0, 5), geom.NewVector(10, 5)},
		{geom.NewVector(5, 0), geom.NewVector(5, 10)},
	}
	g := New()
	g.AddStreamlines(lines)
	modified := g.ModifyStreamlines(lines)
	if len(modified) != len(lines) {
		tst.Fatalf("expected %d modified lines, got %d", len(lines), len(modified))
	}
	for li, line := range modified {
		if len(line) <= len(lines[li]) {
			tst.Fatalf("line %d: expected an inserted vertex, got %d points (started with %d)", li, len(line), len(lines[li]))
		}
		foundCrossing := false
		for _, p := range line {
			if p.ApproxEqual(geom.NewVector(5, 5), GridResolution) {
				foundCrossing = true
			}
		}
		if !foundCrossing {
			tst.Fatalf("line %d: no inserted vertex near the crossing point", li)
		}
	}
}
