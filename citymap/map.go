// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package citymap implements the Map facade: it orchestrates the tensor
// field, streamline tracing, planar graph, and coastline/park stages
// under a fixed control flow and exposes the resulting output
// collections. Grounded on fem.FEM/fem.Domain's own "assemble from
// sub-components, expose a stable output struct" shape (FEM.Sim,
// .Domains, .Solver) and FEM.Run's staged, logged control flow.
package citymap

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/citygen/config"
	"github.com/cpmech/citygen/field"
	"github.com/cpmech/citygen/geom"
	"github.com/cpmech/citygen/graph"
	"github.com/cpmech/citygen/integrate"
	"github.com/cpmech/citygen/island"
	"github.com/cpmech/citygen/rnd"
	"github.com/cpmech/citygen/streamline"
	"github.com/cpmech/citygen/tsr"
	"github.com/cpmech/citygen/voronoi"
)

// maxStreamlinesPerDirection bounds streamline.Generator.CreateAllStreamlines;
// it is not exposed through configuration, so a generous fixed constant
// is used and MaxSeedTries governs the real termination condition, per
// streamline.Params' own precedent for internal, unexposed constants.
const maxStreamlinesPerDirection = 2000

// maxLoopSize bounds graph.FindClosedLoops' face-walk length.
const maxLoopSize = 64

// Road is one entry of the Map's Roads output: a generation-ordered
// (type, polyline) pair.
type Road struct {
	Type   string
	Points []geom.Vector
}

// Map is the generated city: roads, parks, the planar graph, and the
// refined coastline.
type Map struct {
	Roads     []Road
	Parks     []*geom.Polygon
	Graph     *graph.Graph
	CityShape *geom.Polygon
}

// Build runs one full generation from cfg. A *RestartError from the
// Voronoi stage is retried with the seed advanced by one.
func Build(cfg *config.Config) (*Map, error) {
	rnd.Reseed(cfg.Seed)
	worldMin := geom.NewVector(0, 0)
	worldMax := geom.NewVector(cfg.Size, cfg.Size)

	cityShape, err := buildCityShape(cfg, worldMin, worldMax)
	if err != nil {
		return nil, err
	}
	io.Pf("> city boundary drawn: %d coastline vertices\n", len(cityShape.Points))

	tf := buildField(cfg, worldMin, worldMax)

	m := &Map{CityShape: cityShape}

	var roadGens []*streamline.Generator
	var pathParams []streamline.Params
	for _, rp := range cfg.RoadParameters {
		if rp.Type == "path" {
			pathParams = append(pathParams, rp.ToParams())
			continue
		}
		p := rp.ToParams()
		integrator := integrate.RK4
		gen := streamline.New(p, tf, integrator, worldMin, worldMax, cityShape)
		for _, prev := range roadGens {
			gen.AddExistingStreamlines(prev)
		}
		gen.CreateAllStreamlines(maxStreamlinesPerDirection)
		io.Pf("> %s: %d streamlines\n", p.Name, len(gen.Streamlines))
		roadGens = append(roadGens, gen)
	}

	g := graph.New()
	var roadLines []*streamline.Streamline
	for _, gen := range roadGens {
		for _, sl := range gen.Streamlines {
			roadLines = append(roadLines, sl)
		}
	}
	rawLines := make([][]geom.Vector, len(roadLines))
	for i, sl := range roadLines {
		rawLines[i] = sl.Raw
	}
	g.AddStreamlines(rawLines)
	for i, modified := range g.ModifyStreamlines(rawLines) {
		roadLines[i].Raw = modified
	}
	loops := g.FindClosedLoops(maxLoopSize)
	io.Pf("> graph: %d nodes, %d closed loops\n", len(g.Nodes()), len(loops))
	m.Graph = g

	m.Parks = selectParks(cfg, loops)
	tf.Parks = m.Parks
	io.Pf("> parks: %d selected\n", len(m.Parks))

	var pathGens []*streamline.Generator
	if len(pathParams) > 0 {
		pathGens = tracePaths(cfg, tf, pathParams[0], m, roadGens)
	}

	// Dangling ends are joined last, once every road tier and every park
	// path has been traced, so a join candidate can come from any of them.
	allGens := append(append([]*streamline.Generator{}, roadGens...), pathGens...)
	for i, gen := range allGens {
		var other *streamline.Generator
		if i > 0 {
			other = allGens[i-1]
		}
		gen.JoinDanglingEnds(other)
		gen.Resimplify()
		for _, sl := range gen.Streamlines {
			m.Roads = append(m.Roads, Road{Type: gen.Params.Name, Points: sl.Simplified})
		}
	}

	return m, nil
}

// buildCityShape draws an organic boundary (island.Shape), builds a
// Voronoi diagram over the world rectangle, and extracts + refines its
// coastline.
func buildCityShape(cfg *config.Config, worldMin, worldMax geom.Vector) (*geom.Polygon, error) {
	const maxRestarts = 8
	for attempt := 0; attempt < maxRestarts; attempt++ {
		shape := drawBoundaryShape(cfg.Size, worldMin, worldMax)

		n := 400
		minDist := cfg.Size / 50
		sites := voronoi.GeneratePoints(worldMin, worldMax, n, minDist)
		d, err := voronoi.Build(sites)
		if err != nil {
			rnd.Reseed(cfg.Seed + int64(attempt) + 1)
			continue
		}
		refined, err := d.Refine()
		if err != nil {
			rnd.Reseed(cfg.Seed + int64(attempt) + 1)
			continue
		}

		coast := island.Coastline(refined, shape)
		if len(coast) < 3 {
			rnd.Reseed(cfg.Seed + int64(attempt) + 1)
			continue
		}
		refinedCoast := island.Refine(coast)
		return geom.NewPolygon(refinedCoast), nil
	}
	chk.Panic("citymap: could not build a city boundary after %d restarts", maxRestarts)
	return nil, nil
}

// drawBoundaryShape picks a union of 1-3 disks covering a random portion
// of the world, giving the coastline its organic, non-rectangular shape.
func drawBoundaryShape(size float64, worldMin, worldMax geom.Vector) island.Shape {
	n := rnd.NextInt(1, 4)
	parts := make([]island.Shape, n)
	for i := range parts {
		c := geom.NewVector(rnd.Next(worldMin.X+size*0.15, worldMax.X-size*0.15), rnd.Next(worldMin.Y+size*0.15, worldMax.Y-size*0.15))
		r := rnd.Next(size*0.25, size*0.45)
		parts[i] = island.NewRadial(c, r)
	}
	if n == 1 {
		return parts[0]
	}
	return island.NewUnion(parts...)
}

// buildField registers four corner grid basis fields plus
// cfg.RandomRadialFields random radial fields.
func buildField(cfg *config.Config, worldMin, worldMax geom.Vector) *field.TensorField {
	noise := field.NoiseParams{
		ParkSize: cfg.Size / 20, ParkAngle: 0.5,
		GlobalSize: cfg.Size / 10, GlobalAngle: 0.2, GlobalEnabled: cfg.RandomRadialFields > 0,
	}
	tf := field.New(cfg.Seed, cfg.Smooth, noise)

	corners := []struct {
		pos    geom.Vector
		theta0 float64
	}{
		{worldMin, 0},
		{geom.NewVector(worldMax.X, worldMin.Y), math.Pi / 2},
		{geom.NewVector(worldMin.X, worldMax.Y), math.Pi / 2},
		{worldMax, 0},
	}
	for _, c := range corners {
		tf.AddBasis(tsr.NewGrid(c.pos, cfg.Size, 2, c.theta0, cfg.Smooth))
	}
	for i := 0; i < cfg.RandomRadialFields; i++ {
		c := geom.NewVector(rnd.Next(worldMin.X, worldMax.X), rnd.Next(worldMin.Y, worldMax.Y))
		tf.AddBasis(tsr.NewRadial(c, cfg.Size*rnd.Next(0.2, 0.6), rnd.Next(0.5, 2), cfg.Smooth))
	}
	return tf
}
