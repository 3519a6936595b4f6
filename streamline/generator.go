// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package streamline

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/citygen/field"
	"github.com/cpmech/citygen/geom"
	"github.com/cpmech/citygen/grid"
	"github.com/cpmech/citygen/integrate"
	"github.com/cpmech/citygen/rnd"
)

// Streamline is a single traced polyline plus its simplified form and
// whether it closed on itself (loop closure).
type Streamline struct {
	Raw        []geom.Vector
	Simplified []geom.Vector
	Looped     bool
}

// Generator owns two spatial grids (major and minor), two candidate-seed
// stacks, and the streamlines produced for one road tier.
type Generator struct {
	Params     Params
	Field      *field.TensorField
	Integrator integrate.Operator
	WorldMin   geom.Vector
	WorldMax   geom.Vector
	Bound      *geom.Polygon // non-nil for park-path mode; restricts seeding/tracing

	MajorGrid *grid.Grid
	MinorGrid *grid.Grid

	Streamlines []*Streamline

	seedsForMajor []geom.Vector
	seedsForMinor []geom.Vector

	dsepSq, dtestSq, dCircleJoinSq float64
}

// New returns a Generator for one road tier. worldMin is also the origin
// of both spatial grids; worldMin/worldMax bound the trace region.
func New(p Params, f *field.TensorField, integrator integrate.Operator, worldMin, worldMax geom.Vector, bound *geom.Polygon) *Generator {
	p.Normalize()
	return &Generator{
		Params:        p,
		Field:         f,
		Integrator:    integrator,
		WorldMin:      worldMin,
		WorldMax:      worldMax,
		Bound:         bound,
		MajorGrid:     grid.New(worldMin, p.DSep),
		MinorGrid:     grid.New(worldMin, p.DSep),
		dsepSq:        p.DSep * p.DSep,
		dtestSq:       p.DTest * p.DTest,
		dCircleJoinSq: p.DCircleJoin * p.DCircleJoin,
	}
}

// AddExistingStreamlines copies another generator's samples into this
// generator's grids to honour existing density, so a later tier's roads
// keep their distance from an earlier tier's. After this call the two
// generators' grids are independent.
func (o *Generator) AddExistingStreamlines(other *Generator) {
	o.MajorGrid.AddExisting(other.MajorGrid)
	o.MinorGrid.AddExisting(other.MinorGrid)
}

func (o *Generator) gridFor(major bool) *grid.Grid {
	if major {
		return o.MajorGrid
	}
	return o.MinorGrid
}

func (o *Generator) siblingGridFor(major bool) *grid.Grid {
	if major {
		return o.MinorGrid
	}
	return o.MajorGrid
}

func (o *Generator) seedsFor(major bool) *[]geom.Vector {
	if major {
		return &o.seedsForMajor
	}
	return &o.seedsForMinor
}

// inBounds reports whether p lies within the world rectangle and, when
// tracing park paths, within the bounding polygon.
func (o *Generator) inBounds(p geom.Vector) bool {
	if p.X < o.WorldMin.X || p.X > o.WorldMax.X || p.Y < o.WorldMin.Y || p.Y > o.WorldMax.Y {
		return false
	}
	if o.Bound != nil {
		return o.Bound.Contains(p)
	}
	return true
}

// validSample reports whether p is a valid sample against distSq: on land
// and >= sqrt(distSq) from every other stored sample in the surrounding
// 3x3 cell neighbourhood of its own direction grid, and (when checkSibling
// is set) of the sibling grid too.
func (o *Generator) validSample(p geom.Vector, major bool, distSq float64, checkSibling bool) bool {
	if !o.Field.OnLand(p) {
		return false
	}
	if !o.gridFor(major).IsValidSample(p, distSq) {
		return false
	}
	if checkSibling && !o.siblingGridFor(major).IsValidSample(p, distSq) {
		return false
	}
	return true
}

// randomPointInWorld samples a uniform point in the world rectangle, or
// within the bounding polygon when tracing park paths.
func (o *Generator) randomPointInWorld() geom.Vector {
	if o.Bound != nil {
		return o.Bound.RandomPoint(500, rnd.Next)
	}
	return geom.NewVector(rnd.Next(o.WorldMin.X, o.WorldMax.X), rnd.Next(o.WorldMin.Y, o.WorldMax.Y))
}

// nextSeed implements the seeding policy: prefer a candidate-endpoint
// seed when available and enabled, otherwise sample uniformly at random.
// Returns ok=false when MaxSeedTries is exhausted; the caller treats this
// as a recoverable local failure and stops seeding that direction.
func (o *Generator) nextSeed(major bool) (seed geom.Vector, ok bool) {
	stack := o.seedsFor(major)
	if seedAtEndpoints {
		for len(*stack) > 0 {
			n := len(*stack)
			cand := (*stack)[n-1]
			*stack = (*stack)[:n-1]
			if o.validSample(cand, major, o.dsepSq, false) {
				return cand, true
			}
		}
	}
	for i := 0; i < o.Params.MaxSeedTries; i++ {
		cand := o.randomPointInWorld()
		if o.validSample(cand, major, o.dsepSq, false) {
			return cand, true
		}
	}
	return geom.Zero, false
}

// CreateAllStreamlines alternates major/minor, producing at most max
// streamlines per direction. Each accepted streamline's raw points are
// registered in the appropriate grid; its simplified form is computed
// immediately (a final recomputation pass happens again after
// dangling-end joining, see Resimplify).
func (o *Generator) CreateAllStreamlines(max int) {
	majorExhausted, minorExhausted := false, false
	for i := 0; i < max; i++ {
		if !majorExhausted {
			if !o.createOneStreamline(true) {
				majorExhausted = true
				io.Pf("> %s: major-direction seeding exhausted after %d streamlines\n", o.Params.Name, i)
			}
		}
		if !minorExhausted {
			if !o.createOneStreamline(false) {
				minorExhausted = true
				io.Pf("> %s: minor-direction seeding exhausted after %d streamlines\n", o.Params.Name, i)
			}
		}
		if majorExhausted && minorExhausted {
			break
		}
	}
}

// createOneStreamline attempts one streamline in the given direction.
// Returns false when seeding failed outright (direction should stop); an
// attempt that succeeds at seeding but produces a too-short streamline
// still counts (returns true) and is silently discarded.
func (o *Generator) createOneStreamline(major bool) bool {
	seed, ok := o.nextSeed(major)
	if !ok {
		return false
	}
	checkSibling := rnd.Bool(o.Params.EarlyCollisionProbability)
	raw, looped := o.integrateStreamline(seed, major, checkSibling)
	if len(raw) <= minDiscardLen {
		return true
	}
	g := o.gridFor(major)
	for _, p := range raw {
		g.Insert(p)
	}
	sl := &Streamline{Raw: raw, Looped: looped}
	sl.Simplified = geom.Simplify(raw, o.Params.SimplificationTolerance)
	o.Streamlines = append(o.Streamlines, sl)

	if !looped {
		otherSeeds := o.seedsFor(!major)
		*otherSeeds = append(*otherSeeds, raw[0], raw[len(raw)-1])
	}
	return true
}

// Resimplify recomputes every streamline's simplified form; used after
// dangling-end joining mutates the raw point lists.
func (o *Generator) Resimplify() {
	for _, sl := range o.Streamlines {
		sl.Simplified = geom.Simplify(sl.Raw, o.Params.SimplificationTolerance)
	}
}
