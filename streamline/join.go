// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package streamline

import (
	"math"

	"github.com/cpmech/citygen/geom"
	"github.com/cpmech/citygen/rnd"
)

// JoinDanglingEnds resolves, for every non-looping streamline, the start
// and end endpoints independently by either joining them to a nearby
// streamline or emitting a cul-de-sac. other is a different generator's
// grids (e.g. a prior road tier's) so lookahead can gather candidates
// from outside this generator's own major/minor grids too.
func (o *Generator) JoinDanglingEnds(other *Generator) {
	for _, sl := range o.Streamlines {
		if sl.Looped || len(sl.Raw) < 2 {
			continue
		}
		sl.Raw = o.resolveEndpoint(sl.Raw, true, other)
		sl.Raw = o.resolveEndpoint(sl.Raw, false, other)
	}
}

// resolveEndpoint handles one end (start if isStart, else end) of pts.
func (o *Generator) resolveEndpoint(pts []geom.Vector, isStart bool, other *Generator) []geom.Vector {
	e, penult, prev, ok := endpointContext(pts, isStart)
	if !ok {
		return pts
	}

	candidate, hasCandidate := o.bestJoinCandidate(e, penult, other)

	rMax := o.Params.CulDeSacRadiusMax
	if hasCandidate {
		rMax = math.Max(math.Min(e.DistTo(candidate)/2-minCulDeSacDistance, o.Params.CulDeSacRadiusMax), 0)
	}

	if rnd.Bool(o.Params.CulDeSacProbability) && rMax >= o.Params.CulDeSacRadiusMin {
		extra := o.emitCulDeSac(e, prev, rMax)
		o.registerInGrid(extra)
		return insertAt(pts, extra, isStart)
	}

	if hasCandidate {
		extra := o.emitPointsBetween(e, candidate)
		o.registerInGrid(extra)
		return insertAt(pts, extra, isStart)
	}
	return pts
}

// registerInGrid inserts newly-emitted join/cul-de-sac points into both of
// this generator's grids so later streamlines respect their density too.
func (o *Generator) registerInGrid(pts []geom.Vector) {
	for _, p := range pts {
		o.MajorGrid.Insert(p)
		o.MinorGrid.Insert(p)
	}
}

// endpointContext returns the endpoint e, the point 4 steps back from it
// (used to compute dir), and the point immediately before it (used as the
// cul-de-sac centre direction).
func endpointContext(pts []geom.Vector, isStart bool) (e, penult, prev geom.Vector, ok bool) {
	n := len(pts)
	if isStart {
		e = pts[0]
		back := 4
		if back >= n {
			back = n - 1
		}
		penult = pts[back]
		prev = pts[minInt(1, n-1)]
	} else {
		e = pts[n-1]
		back := n - 1 - 4
		if back < 0 {
			back = 0
		}
		penult = pts[back]
		prev = pts[n-1-minInt(1, n-1)]
	}
	return e, penult, prev, true
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// bestJoinCandidate searches for a join candidate: gather points within
// dlookahead from both grids, reject any behind dir, accept the first
// near-field candidate, else the nearest candidate within RoadJoinAngle
// of dir.
func (o *Generator) bestJoinCandidate(e, penult geom.Vector, other *Generator) (geom.Vector, bool) {
	dir := e.Sub(penult)
	if dir.LengthSq() < 1e-18 {
		return geom.Zero, false
	}
	dirN := dir.Normalized()

	pool := append(append([]geom.Vector{}, o.MajorGrid.Neighbourhood(e)...), o.MinorGrid.Neighbourhood(e)...)
	if other != nil {
		pool = append(pool, other.MajorGrid.Neighbourhood(e)...)
		pool = append(pool, other.MinorGrid.Neighbourhood(e)...)
	}

	dlaSq := o.Params.DLookahead * o.Params.DLookahead
	nearSq := 2 * o.Params.DStep * o.Params.DStep

	var best geom.Vector
	bestDSq := math.Inf(1)
	found := false

	for _, c := range pool {
		if c.ApproxEqual(e, 1e-9) {
			continue
		}
		dSq := e.DistSqTo(c)
		if dSq > dlaSq {
			continue
		}
		disp := c.Sub(e)
		if disp.Dot(dirN) < 0 {
			continue
		}
		if dSq <= nearSq {
			return applyJoinOffset(c, dirN, o.Params.SimplificationTolerance), true
		}
		angle := math.Abs(dirN.AngleTo(disp.Normalized()))
		if angle < o.Params.RoadJoinAngle && dSq < bestDSq {
			bestDSq = dSq
			best = c
			found = true
		}
	}
	if !found {
		return geom.Zero, false
	}
	return applyJoinOffset(best, dirN, o.Params.SimplificationTolerance), true
}

func applyJoinOffset(candidate, dirN geom.Vector, simplificationTolerance float64) geom.Vector {
	return candidate.Add(dirN.Scale(4 * simplificationTolerance))
}

// emitCulDeSac returns the circle of points appended for a cul-de-sac at
// endpoint e.
func (o *Generator) emitCulDeSac(e, prev geom.Vector, rMax float64) []geom.Vector {
	radius := rnd.Next(o.Params.CulDeSacRadiusMin, math.Min(rMax, o.Params.CulDeSacRadiusMax))
	dir := e.Sub(prev).Normalized()
	if dir == geom.Zero {
		dir = geom.NewVector(1, 0)
	}
	centre := e.Add(dir.Scale(radius))

	toE := e.Sub(centre)
	angle0 := math.Atan2(toE.X, toE.Y) // angle measured from the y-axis

	var pts []geom.Vector
	for a := angle0; a < angle0+2*math.Pi; a += culDeSacStepSizeRad {
		pts = append(pts, geom.NewVector(centre.X+radius*math.Sin(a), centre.Y+radius*math.Cos(a)))
	}
	if len(pts) == 0 || !pts[len(pts)-1].ApproxEqual(e, 1e-6) {
		pts = append(pts, e)
	}
	return pts
}

// emitPointsBetween steps from e toward candidate at DStep spacing,
// skipping any point where the integrator returns a degenerate direction.
func (o *Generator) emitPointsBetween(e, candidate geom.Vector) []geom.Vector {
	dist := e.DistTo(candidate)
	if dist < 1e-12 {
		return nil
	}
	n := int(math.Ceil(dist / o.Params.DStep))
	var pts []geom.Vector
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		p := e.Lerp(candidate, t)
		step := o.Integrator(o.Field, p, true, o.Params.DStep)
		if step.LengthSq() < 0.01 {
			continue
		}
		pts = append(pts, p)
	}
	return pts
}

// insertAt inserts extra at the start (reversed, so it reads outward-in)
// or the end of pts.
func insertAt(pts []geom.Vector, extra []geom.Vector, atStart bool) []geom.Vector {
	if len(extra) == 0 {
		return pts
	}
	if atStart {
		rev := make([]geom.Vector, len(extra))
		for i, p := range extra {
			rev[len(extra)-1-i] = p
		}
		return append(rev, pts...)
	}
	return append(pts, extra...)
}
