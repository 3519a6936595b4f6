// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package config implements the JSON configuration loader, consumed by
// the CLI driver but kept outside the core generation pipeline. Grounded
// directly on inp/sim.go's struct-tag style and its read-then-validate
// ReadSim flow.
package config

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/citygen/streamline"
)

// RoadParams mirrors streamline.Params' external JSON shape, with "type"
// as the wire field ("road" or "path") instead of streamline.Params'
// internal PathMode bool.
type RoadParams struct {
	Name                      string  `json:"name"`
	Type                      string  `json:"type"` // "road" or "path"
	DSep                      float64 `json:"dsep"`
	DTest                     float64 `json:"dtest"`
	DStep                     float64 `json:"dstep"`
	DCircleJoin               float64 `json:"dCircleJoin"`
	DLookahead                float64 `json:"dlookahead"`
	RoadJoinAngle             float64 `json:"roadJoinAngle"`
	PathIntegrationLimit      int     `json:"pathIntegrationLimit"`
	MaxSeedTries              int     `json:"maxSeedTries"`
	EarlyCollisionProbability float64 `json:"earlyCollisionProbability"`
	SimplificationTolerance   float64 `json:"simplificationTolerance"`
	CulDeSacProbability       float64 `json:"culDeSacProbability"`
	CulDeSacRadiusMin         float64 `json:"culDeSacRadiusMin"`
	CulDeSacRadiusMax         float64 `json:"culDeSacRadiusMax"`
}

// ToParams converts the wire record to streamline.Params, translating
// Type into PathMode.
func (o RoadParams) ToParams() streamline.Params {
	return streamline.Params{
		Name:                      o.Name,
		PathMode:                  o.Type == "path",
		DSep:                      o.DSep,
		DTest:                     o.DTest,
		DStep:                     o.DStep,
		DCircleJoin:               o.DCircleJoin,
		DLookahead:                o.DLookahead,
		RoadJoinAngle:             o.RoadJoinAngle,
		PathIntegrationLimit:      o.PathIntegrationLimit,
		MaxSeedTries:              o.MaxSeedTries,
		EarlyCollisionProbability: o.EarlyCollisionProbability,
		SimplificationTolerance:   o.SimplificationTolerance,
		CulDeSacProbability:       o.CulDeSacProbability,
		CulDeSacRadiusMin:         o.CulDeSacRadiusMin,
		CulDeSacRadiusMax:         o.CulDeSacRadiusMax,
	}
}

// Config holds the Map configuration record.
type Config struct {
	Seed                    int64        `json:"seed"`
	Size                    float64      `json:"size"`
	Smooth                  bool         `json:"smooth"`
	RandomRadialFields      int          `json:"randomRadialFields"`
	ParkAreaPercentage      float64      `json:"parkAreaPercentage"`
	MinDistanceBetweenParks float64      `json:"minDistanceBetweenParks"`
	RoadParameters          []RoadParams `json:"roadParameters"`
}

// Read loads and validates a Config from a JSON file at path. A read or
// parse failure aborts the current generation.
func Read(path string) (cfg *Config, err error) {
	buf, errRead := io.ReadFile(path)
	if errRead != nil {
		return nil, chk.Err("config: cannot read file %q: %v", path, errRead)
	}
	cfg = new(Config)
	if errJSON := json.Unmarshal(buf, cfg); errJSON != nil {
		return nil, chk.Err("config: cannot parse file %q: %v", path, errJSON)
	}
	cfg.validate()
	return cfg, nil
}

// validate enforces the structural preconditions: a positive world size,
// at least one road tier, and a sane park-area fraction.
func (o *Config) validate() {
	if o.Size <= 0 {
		chk.Panic("config: size must be positive, got %v", o.Size)
	}
	if len(o.RoadParameters) == 0 {
		chk.Panic("config: roadParameters must not be empty")
	}
	if o.ParkAreaPercentage < 0 || o.ParkAreaPercentage > 1 {
		chk.Panic("config: parkAreaPercentage must be in [0,1], got %v", o.ParkAreaPercentage)
	}
}
