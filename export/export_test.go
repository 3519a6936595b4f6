// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"encoding/json"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/citygen/citymap"
	"github.com/cpmech/citygen/geom"
)

func Test_export01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("export01: Build assembles one feature per road, park, and the coastline")

	m := &citymap.Map{
		Roads: []citymap.Road{
			{Type: "Main", Points: []geom.Vector{geom.NewVector(0, 0), geom.NewVector(10, 0)}},
		},
		Parks:     []*geom.Polygon{geom.NewPolygon([]geom.Vector{geom.NewVector(0, 0), geom.NewVector(1, 0), geom.NewVector(0, 1)})},
		CityShape: geom.NewPolygon([]geom.Vector{geom.NewVector(0, 0), geom.NewVector(100, 0), geom.NewVector(100, 100), geom.NewVector(0, 100)}),
	}

	fc := Build(m)
	if len(fc.Features) != 3 {
		tst.Fatalf("expected 3 features, got %d", len(fc.Features))
	}

	buf, err := json.Marshal(fc)
	if err != nil {
		tst.Fatalf("marshal failed: %v", err)
	}
	var decoded FeatureCollection
	if err := json.Unmarshal(buf, &decoded); err != nil {
		tst.Fatalf("unmarshal failed: %v", err)
	}
	if len(decoded.Features) != 3 {
		tst.Fatal("roundtrip lost features")
	}
}

func Test_export02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("export02: closedRing closes an open ring and leaves a closed one untouched")

	open := []geom.Vector{geom.NewVector(0, 0), geom.NewVector(1, 0), geom.NewVector(0, 1)}
	closed := closedRing(open)
	if closed[0] != closed[len(closed)-1] {
		tst.Fatal("expected closedRing to repeat the first point")
	}
	again := closedRing(closed)
	if len(again) != len(closed) {
		tst.Fatal("expected closedRing to be idempotent on an already-closed ring")
	}
}
