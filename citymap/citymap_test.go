// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package citymap

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/citygen/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Seed: 7, Size: 400, Smooth: true, RandomRadialFields: 1,
		ParkAreaPercentage: 0.1, MinDistanceBetweenParks: 40,
		RoadParameters: []config.RoadParams{
			{
				Name: "Main", Type: "road", DSep: 60, DTest: 30, DStep: 1, DCircleJoin: 5,
				DLookahead: 80, RoadJoinAngle: 0.2, PathIntegrationLimit: 400, MaxSeedTries: 60,
				SimplificationTolerance: 1, CulDeSacProbability: 0.1, CulDeSacRadiusMin: 3, CulDeSacRadiusMax: 8,
			},
			{
				Name: "Minor", Type: "road", DSep: 25, DTest: 12, DStep: 1, DCircleJoin: 3,
				DLookahead: 40, RoadJoinAngle: 0.3, PathIntegrationLimit: 400, MaxSeedTries: 60,
				SimplificationTolerance: 0.5, CulDeSacProbability: 0.1, CulDeSacRadiusMin: 2, CulDeSacRadiusMax: 5,
			},
			{
				Name: "Path", Type: "path", DSep: 10, DTest: 5, DStep: 1, DCircleJoin: 2,
				DLookahead: 20, RoadJoinAngle: 0.3, PathIntegrationLimit: 200, MaxSeedTries: 40,
				SimplificationTolerance: 0.3, CulDeSacProbability: 0.1, CulDeSacRadiusMin: 1, CulDeSacRadiusMax: 3,
			},
		},
	}
}

func Test_citymap01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("citymap01: end-to-end generation produces a coastline, roads, and a graph")

	cfg := testConfig()
	m, err := Build(cfg)
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}
	if m.CityShape == nil || len(m.CityShape.Points) < 3 {
		tst.Fatal("expected a non-trivial city shape")
	}
	if m.Graph == nil {
		tst.Fatal("expected a non-nil graph")
	}
	// dangling-end joins and cul-de-sacs (§4.C.5) are not themselves
	// bounds-checked, so allow generous slack beyond the world rectangle.
	slack := cfg.Size
	for _, r := range m.Roads {
		for _, p := range r.Points {
			if p.X < -slack || p.X > cfg.Size+slack || p.Y < -slack || p.Y > cfg.Size+slack {
				tst.Fatalf("road point %v wildly outside world bounds", p)
			}
		}
	}
}

func Test_citymap02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("citymap02: identical seeds produce identical road counts")

	cfg1 := testConfig()
	cfg2 := testConfig()
	m1, err := Build(cfg1)
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}
	m2, err := Build(cfg2)
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}
	if len(m1.Roads) != len(m2.Roads) {
		tst.Fatalf("expected deterministic road count, got %d vs %d", len(m1.Roads), len(m2.Roads))
	}
}
