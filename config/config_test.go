// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

const sample = `{
	"seed": 42,
	"size": 2000,
	"smooth": true,
	"randomRadialFields": 2,
	"parkAreaPercentage": 0.1,
	"minDistanceBetweenParks": 300,
	"roadParameters": [
		{"name": "Main", "type": "road", "dsep": 400, "dtest": 200, "dstep": 1, "dCircleJoin": 5,
		 "dlookahead": 500, "roadJoinAngle": 0.1, "pathIntegrationLimit": 2688, "maxSeedTries": 300,
		 "earlyCollisionProbability": 0, "simplificationTolerance": 0.5, "culDeSacProbability": 0,
		 "culDeSacRadiusMin": 10, "culDeSacRadiusMax": 20},
		{"name": "Path", "type": "path", "dsep": 50, "dtest": 25, "dstep": 1, "dCircleJoin": 2,
		 "dlookahead": 60, "roadJoinAngle": 0.2, "pathIntegrationLimit": 500, "maxSeedTries": 100,
		 "earlyCollisionProbability": 0.1, "simplificationTolerance": 0.2, "culDeSacProbability": 0.2,
		 "culDeSacRadiusMin": 2, "culDeSacRadiusMax": 5}
	]
}`

func Test_config01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config01: read and validate a configuration file")

	dir := tst.TempDir()
	path := filepath.Join(dir, "city.json")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		tst.Fatalf("cannot write temp config: %v", err)
	}

	cfg, err := Read(path)
	if err != nil {
		tst.Fatalf("Read failed: %v", err)
	}
	if cfg.Seed != 42 || cfg.Size != 2000 {
		tst.Fatal("parsed fields do not match input")
	}
	if len(cfg.RoadParameters) != 2 {
		tst.Fatalf("expected 2 road parameter records, got %d", len(cfg.RoadParameters))
	}
	main := cfg.RoadParameters[0].ToParams()
	if main.PathMode {
		tst.Fatal("expected Main tier to not be PathMode")
	}
	path1 := cfg.RoadParameters[1].ToParams()
	if !path1.PathMode {
		tst.Fatal("expected Path tier to be PathMode")
	}
}

func Test_config02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config02: roundtrip encode/decode of RoadParams")

	rp := RoadParams{Name: "Major", Type: "road", DSep: 100, DStep: 1}
	buf, err := json.Marshal(rp)
	if err != nil {
		tst.Fatalf("marshal failed: %v", err)
	}
	var back RoadParams
	if err := json.Unmarshal(buf, &back); err != nil {
		tst.Fatalf("unmarshal failed: %v", err)
	}
	if back != rp {
		tst.Fatal("roundtrip mismatch")
	}
}
