// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package citymap

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/citygen/config"
	"github.com/cpmech/citygen/field"
	"github.com/cpmech/citygen/geom"
	"github.com/cpmech/citygen/graph"
	"github.com/cpmech/citygen/integrate"
	"github.com/cpmech/citygen/rnd"
	"github.com/cpmech/citygen/streamline"
)

// selectParks greedily picks graph faces as park polygons until the
// accumulated area reaches cfg.ParkAreaPercentage of the world area,
// rejecting any candidate whose centroid is closer than
// cfg.MinDistanceBetweenParks to an already-selected park. Shuffling
// candidates with the process-wide RNG before the greedy pass keeps
// selection a pure function of the seed, rather than an artifact of
// graph traversal order.
func selectParks(cfg *config.Config, loops [][]*graph.Node) []*geom.Polygon {
	var candidates []*geom.Polygon
	for _, loop := range loops {
		if len(loop) < 3 {
			continue
		}
		pts := graph.LoopPolygon(loop)
		if len(pts) < 3 {
			continue
		}
		candidates = append(candidates, geom.NewPolygon(pts))
	}
	shufflePolygons(candidates)

	targetArea := cfg.ParkAreaPercentage * cfg.Size * cfg.Size
	var selected []*geom.Polygon
	var total float64
	for _, poly := range candidates {
		if total >= targetArea {
			break
		}
		c := poly.Centroid()
		tooClose := false
		for _, s := range selected {
			if c.DistTo(s.Centroid()) < cfg.MinDistanceBetweenParks {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}
		selected = append(selected, poly)
		total += poly.Area()
	}
	return selected
}

func shufflePolygons(xs []*geom.Polygon) {
	for i := len(xs) - 1; i > 0; i-- {
		j := rnd.NextInt(0, i+1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// tracePaths runs the streamline tracer once per selected park, routed
// through the same tensor field as the road network, bounding the trace
// region to the park polygon via Generator.Bound. Dangling-end joining is
// left to the caller, which runs it once over every generator (road and
// path alike) after every tier and every park has been traced.
func tracePaths(cfg *config.Config, tf *field.TensorField, p streamline.Params, m *Map, roadGens []*streamline.Generator) []*streamline.Generator {
	var pathGens []*streamline.Generator
	for _, park := range m.Parks {
		min, max := park.BBox()
		gen := streamline.New(p, tf, integrate.RK4, min, max, park)
		for _, rg := range roadGens {
			gen.AddExistingStreamlines(rg)
		}
		gen.CreateAllStreamlines(maxStreamlinesPerDirection)
		io.Pf("> %s: %d path streamlines in park\n", p.Name, len(gen.Streamlines))
		pathGens = append(pathGens, gen)
	}
	return pathGens
}
