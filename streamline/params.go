// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package streamline implements the seed -> integrate -> collide -> join ->
// cul-de-sac pipeline that traces one road tier's network of streamlines
// through a tensor field, grounded on fem/domain.go's stage-driven,
// id-indexed collection bookkeeping style (parallel slices plus lookup
// maps).
package streamline

import "github.com/cpmech/gosl/chk"

// Params holds the per-tier road parameters read from configuration.
type Params struct {
	Name                      string  `json:"name"`
	PathMode                  bool    `json:"pathMode"` // true for park Paths, false for roads
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

// Engine-internal constants, not exposed through configuration but needed
// by the tracing algorithm.
const (
	// seedAtEndpoints enables preferentially seeding new streamlines from
	// the dangling endpoints of previously-accepted streamlines.
	seedAtEndpoints = true
	// minDiscardLen is the point-count threshold at or below which a
	// freshly traced streamline is discarded silently.
	minDiscardLen = 5
	// minCulDeSacDistance is the floor subtracted from half the distance
	// to the join candidate when bounding the cul-de-sac radius. Not
	// named by the external configuration table; fixed at a small
	// constant so a cul-de-sac never crowds directly against its join
	// candidate.
	minCulDeSacDistance = 1.0
	// culDeSacStepSizeRad is the angular step used when emitting points
	// around a cul-de-sac circle.
	culDeSacStepSizeRad = 0.3
)

// Normalize applies the parameter invariants: dstep < dsep is required
// (fatal if violated), and dtest is clamped to dsep.
func (p *Params) Normalize() {
	if p.DStep >= p.DSep {
		chk.Panic("road parameters %q: dstep (%v) must be < dsep (%v)", p.Name, p.DStep, p.DSep)
	}
	if p.DTest > p.DSep {
		p.DTest = p.DSep
	}
}
