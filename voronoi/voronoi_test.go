// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voronoi

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/citygen/geom"
)

func Test_voronoi01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("voronoi01: scenario F -- four-corner square refines to four single-site cells")

	sites := []geom.Vector{
		geom.NewVector(0, 0),
		geom.NewVector(10, 0),
		geom.NewVector(0, 10),
		geom.NewVector(10, 10),
	}
	d, err := Build(sites)
	if err != nil {
		tst.Fatalf("build failed: %v", err)
	}
	r, err := d.Refine()
	if err != nil {
		tst.Fatalf("refine failed: %v", err)
	}
	if len(r.Polygons) != 4 {
		tst.Fatalf("expected 4 polygons, got %d", len(r.Polygons))
	}
	for _, poly := range r.Polygons {
		count := 0
		for _, s := range sites {
			if poly.Contains(s) {
				count++
			}
		}
		if count != 1 {
			tst.Fatalf("expected polygon to contain exactly one site, got %d", count)
		}
	}
}

func Test_voronoi02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("voronoi02: every cell polygon contains its own site")

	sites := []geom.Vector{
		geom.NewVector(0, 0),
		geom.NewVector(5, 2),
		geom.NewVector(-3, 4),
		geom.NewVector(2, -5),
		geom.NewVector(6, 6),
	}
	d, err := Build(sites)
	if err != nil {
		tst.Fatalf("build failed: %v", err)
	}
	if len(d.Polygons) == 0 {
		tst.Fatal("expected at least one polygon")
	}
	for _, poly := range d.Polygons {
		found := false
		for _, s := range sites {
			if poly.Contains(s) {
				found = true
				break
			}
		}
		if !found {
			tst.Fatal("polygon contains no generator site")
		}
	}
}

func Test_voronoi04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("voronoi04: no site is closer to a point in another site's polygon, within tolerance")

	sites := []geom.Vector{
		geom.NewVector(0, 0),
		geom.NewVector(5, 2),
		geom.NewVector(-3, 4),
		geom.NewVector(2, -5),
		geom.NewVector(6, 6),
	}
	d, err := Build(sites)
	if err != nil {
		tst.Fatalf("build failed: %v", err)
	}
	for pi, poly := range d.Polygons {
		var owner int = -1
		for si, s := range sites {
			if poly.Contains(s) {
				owner = si
				break
			}
		}
		if owner < 0 {
			tst.Fatal("polygon contains no generator site")
		}
		dOwner := sites[owner].DistTo(poly.Centroid())
		for si, s := range sites {
			if si == owner {
				continue
			}
			if s.DistTo(poly.Centroid()) < dOwner-bisectorTolerance {
				tst.Fatalf("polygon %d: site %d is closer to the centroid than its owner %d", pi, si, owner)
			}
		}
	}
}

func Test_voronoi03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("voronoi03: GeneratePoints respects minimum distance")

	pts := GeneratePoints(geom.NewVector(0, 0), geom.NewVector(50, 50), 20, 2)
	if len(pts) != 20 {
		tst.Fatalf("expected 20 points, got %d", len(pts))
	}
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			if pts[i].DistTo(pts[j]) < 2-1e-9 {
				tst.Fatalf("points %v and %v closer than minDist", pts[i], pts[j])
			}
		}
	}
}
