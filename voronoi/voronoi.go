// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package voronoi implements an approximate half-plane-clipping Voronoi
// diagram, used downstream for island-shape generation. Grounded on
// gofem's own invariant-checking discipline (chk.Panic on
// internal inconsistency, e.g. fem/domain.go's partition-count check) for
// the critical-point-count invariant that triggers an algorithmic restart.
package voronoi

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/citygen/geom"
	"github.com/cpmech/citygen/rnd"
)

// bisectorTolerance is the tolerance used when classifying a point's side
// of a perpendicular bisector.
const bisectorTolerance = 0.001

// RestartError is returned by Build when an internal consistency
// invariant fails (critical-point count outside {0,2}). The caller
// should advance the seed by 1 and retry.
type RestartError struct{ Reason string }

func (e *RestartError) Error() string { return "voronoi: algorithmic restart needed: " + e.Reason }

// edge is a half-plane-clipped Voronoi edge, with the owning site on its
// "right" (near) side by construction.
type edge struct {
	Start, End geom.Vector
	siteA      int // index into Diagram.Sites; -1 for sentinel cells
	siteB      int
}

// cell is the polygon of edges currently bounding one site's region.
type cell struct {
	site    geom.Vector
	siteIdx int // -1 for sentinel
	edges   []*edge
}

// Diagram is a Voronoi diagram: sites, a deduplicated edge set, and the
// enclosed polygons.
type Diagram struct {
	Sites    []geom.Vector
	Edges    []geom.Vector // flattened (Start,End) pairs via EdgeAt
	edgeList []*edge
	Polygons []*geom.Polygon
	Size     float64
}

// EdgeAt returns the i-th edge as (start, end).
func (o *Diagram) EdgeAt(i int) (geom.Vector, geom.Vector) {
	e := o.edgeList[i]
	return e.Start, e.End
}

// NumEdges returns the number of deduplicated edges.
func (o *Diagram) NumEdges() int { return len(o.edgeList) }

// Build constructs the Voronoi diagram for the given sites. A non-nil
// error is a *RestartError; the caller should increment the seed and
// retry.
func Build(sites []geom.Vector) (d *Diagram, err error) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(*RestartError); ok {
				err = re
				return
			}
			panic(r)
		}
	}()

	if len(sites) == 0 {
		chk.Panic("voronoi: at least one site is required")
	}
	for i := 0; i < len(sites); i++ {
		for j := i + 1; j < len(sites); j++ {
			if sites[i].ApproxEqual(sites[j], 1e-9) {
				chk.Panic("voronoi: duplicate site at %v", sites[i])
			}
		}
	}

	size := diagramSize(sites)
	cells := sentinelCells(size)

	var allEdges []*edge
	for si, s := range sites {
		c := &cell{site: s, siteIdx: si}
		for _, other := range cells {
			clipPair(c, other, &allEdges)
		}
		cells = append(cells, c)
	}

	d = &Diagram{Sites: sites, Size: size}
	d.edgeList = dedupeEdges(allEdges)
	d.clipToBorder(size)
	for _, e := range d.edgeList {
		d.Edges = append(d.Edges, e.Start, e.End)
	}
	d.buildPolygons()
	return d, nil
}

// diagramSize returns 0.51x the bounding-box dimensions of the sites.
func diagramSize(sites []geom.Vector) float64 {
	min := geom.Vector{X: math.Inf(1), Y: math.Inf(1)}
	max := geom.Vector{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, s := range sites {
		min.X = math.Min(min.X, s.X)
		min.Y = math.Min(min.Y, s.Y)
		max.X = math.Max(max.X, s.X)
		max.Y = math.Max(max.Y, s.Y)
	}
	dx, dy := max.X-min.X, max.Y-min.Y
	if dx <= 0 {
		dx = 1
	}
	if dy <= 0 {
		dy = 1
	}
	return 0.51 * math.Max(dx, dy)
}

// sentinelCells bounds the plane with four rectangular cells at +-2.5x
// the diagram size, giving every real site a cell to clip against even
// at the outer edge of the diagram.
func sentinelCells(size float64) []*cell {
	r := size * 2.5
	mk := func(c geom.Vector, pts []geom.Vector) *cell {
		cl := &cell{site: c, siteIdx: -1}
		for i := 0; i < len(pts); i++ {
			a, b := pts[i], pts[(i+1)%len(pts)]
			cl.edges = append(cl.edges, &edge{Start: a, End: b, siteA: -1, siteB: -1})
		}
		return cl
	}
	north := mk(geom.NewVector(0, 3*r), []geom.Vector{
		{X: -2 * r, Y: 2 * r}, {X: 2 * r, Y: 2 * r}, {X: 2 * r, Y: 4 * r}, {X: -2 * r, Y: 4 * r},
	})
	south := mk(geom.NewVector(0, -3*r), []geom.Vector{
		{X: -2 * r, Y: -4 * r}, {X: 2 * r, Y: -4 * r}, {X: 2 * r, Y: -2 * r}, {X: -2 * r, Y: -2 * r},
	})
	east := mk(geom.NewVector(3*r, 0), []geom.Vector{
		{X: 2 * r, Y: -2 * r}, {X: 4 * r, Y: -2 * r}, {X: 4 * r, Y: 2 * r}, {X: 2 * r, Y: 2 * r},
	})
	west := mk(geom.NewVector(-3*r, 0), []geom.Vector{
		{X: -4 * r, Y: -2 * r}, {X: -2 * r, Y: -2 * r}, {X: -2 * r, Y: 2 * r}, {X: -4 * r, Y: 2 * r},
	})
	return []*cell{north, south, east, west}
}

// bisector is the perpendicular bisector of (s, other), represented as a
// point on the line (the midpoint) and a direction vector.
type bisector struct {
	Origin geom.Vector
	Dir    geom.Vector
}

func bisectorOf(s, other geom.Vector) bisector {
	mid := s.Add(other).Div(2)
	return bisector{Origin: mid, Dir: other.Sub(s).PerpCW()}
}

// side classifies p relative to b: positive means on s's (right/near) side.
func (b bisector) side(p geom.Vector, rightPreferred bool) float64 {
	v := p.Sub(b.Origin).Cross(b.Dir)
	if math.Abs(v) <= bisectorTolerance {
		if rightPreferred {
			return 1
		}
		return -1
	}
	return v
}

// intersect returns the intersection of segment (a,b) with the bisector
// line, and whether it exists (non-parallel).
func (b bisector) intersect(a, bb geom.Vector) (geom.Vector, bool) {
	seg := bb.Sub(a)
	denom := b.Dir.Cross(seg)
	if math.Abs(denom) < 1e-15 {
		return geom.Zero, false
	}
	t := b.Dir.Cross(a.Sub(b.Origin)) / -denom
	return a.Add(seg.Scale(t)), true
}

// clipPair clips c's edges against the bisector of (s, c.site),
// recording the shared boundary edge between s's new cell and c when
// exactly two critical points are found.
func clipPair(sCell, c *cell, allEdges *[]*edge) {
	bis := bisectorOf(sCell.site, c.site)

	var critical []geom.Vector
	var kept []*edge
	for _, e := range c.edges {
		sideA := bis.side(e.Start, true)
		sideB := bis.side(e.End, true)
		sNearA := sideOfSign(sideA) > 0
		sNearB := sideOfSign(sideB) > 0

		if sNearA == sNearB {
			if sNearA {
				// fully on s's side: deleted from c, contributes nothing to c
				continue
			}
			// fully on c's own side: kept unchanged
			kept = append(kept, e)
			continue
		}

		// opposite sides: split at the bisector
		ip, ok := bis.intersect(e.Start, e.End)
		if !ok {
			kept = append(kept, e)
			continue
		}
		critical = append(critical, ip)
		if sNearA {
			kept = append(kept, &edge{Start: ip, End: e.End, siteA: e.siteA, siteB: e.siteB})
		} else {
			kept = append(kept, &edge{Start: e.Start, End: ip, siteA: e.siteA, siteB: e.siteB})
		}
	}
	c.edges = kept

	switch len(critical) {
	case 0:
		return
	case 2:
		shared := &edge{Start: critical[0], End: critical[1], siteA: sCell.siteIdx, siteB: c.siteIdx}
		sCell.edges = append(sCell.edges, shared)
		c.edges = append(c.edges, shared)
		*allEdges = append(*allEdges, shared)
	default:
		panic(&RestartError{Reason: "critical-point count outside {0,2}"})
	}
}

func sideOfSign(v float64) float64 {
	if v > 0 {
		return 1
	}
	return -1
}

// dedupeEdges snaps endpoints through an edge-resolution grid and removes
// duplicates, placing the lexicographically smaller endpoint as Start.
func dedupeEdges(edges []*edge) []*edge {
	const res = 0.01
	snap := func(p geom.Vector) geom.Vector {
		return geom.NewVector(math.Round(p.X/res)*res, math.Round(p.Y/res)*res)
	}
	seen := map[[2]geom.Vector]bool{}
	var out []*edge
	for _, e := range edges {
		a, b := snap(e.Start), snap(e.End)
		if a.DistSqTo(b) < 1e-12 {
			continue
		}
		if !a.Less(b) {
			a, b = b, a
		}
		key := [2]geom.Vector{a, b}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, &edge{Start: a, End: b, siteA: e.siteA, siteB: e.siteB})
	}
	return out
}

// clipToBorder clips with each of the four actual border segments,
// replacing each with a fresh chain of border-hugging edges built from
// the sorted critical points along it.
func (o *Diagram) clipToBorder(size float64) {
	r := size * 2.5
	border := []struct{ a, b geom.Vector }{
		{geom.NewVector(-r, r), geom.NewVector(r, r)},
		{geom.NewVector(r, r), geom.NewVector(r, -r)},
		{geom.NewVector(r, -r), geom.NewVector(-r, -r)},
		{geom.NewVector(-r, -r), geom.NewVector(-r, r)},
	}
	var kept []*edge
	for _, e := range o.edgeList {
		if onBorder(e, r) {
			continue
		}
		kept = append(kept, e)
	}
	for _, side := range border {
		var pts []geom.Vector
		dir := side.b.Sub(side.a).Normalized()
		for _, e := range o.edgeList {
			if pointOnSegment(e.Start, side.a, side.b) {
				pts = append(pts, e.Start)
			}
			if pointOnSegment(e.End, side.a, side.b) {
				pts = append(pts, e.End)
			}
		}
		pts = append(pts, side.a, side.b)
		sort.Slice(pts, func(i, j int) bool {
			return pts[i].Sub(side.a).Dot(dir) < pts[j].Sub(side.a).Dot(dir)
		})
		for i := 1; i < len(pts); i++ {
			if pts[i].DistSqTo(pts[i-1]) < 1e-9 {
				continue
			}
			kept = append(kept, &edge{Start: pts[i-1], End: pts[i], siteA: -1, siteB: -1})
		}
	}
	o.edgeList = kept
}

func onBorder(e *edge, r float64) bool {
	onB := func(p geom.Vector) bool {
		return math.Abs(math.Abs(p.X)-r) < 1e-6 || math.Abs(math.Abs(p.Y)-r) < 1e-6
	}
	return onB(e.Start) && onB(e.End)
}

func pointOnSegment(p, a, b geom.Vector) bool {
	ab := b.Sub(a)
	ap := p.Sub(a)
	cross := ab.Cross(ap)
	if math.Abs(cross) > 1e-6 {
		return false
	}
	t := ap.Dot(ab) / ab.LengthSq()
	return t >= -1e-6 && t <= 1+1e-6
}

// buildPolygons builds a graph over the edge set with node tolerance
// 0.01, finds closed loops, and keeps the ones whose polygon contains at
// least one generator site. The Voronoi edge
// set is already a clean planar straight-line graph (no streamline
// resampling needed, unlike graph.AddStreamlines), so a small local
// node-and-rightmost-turn graph is built here directly rather than
// reusing the streamline-oriented citygen/graph package.
func (o *Diagram) buildPolygons() {
	ng := newNodeGraph()
	for _, e := range o.edgeList {
		ng.link(e.Start, e.End)
	}
	loops := ng.findLoops()
	for _, loop := range loops {
		if len(loop) < 3 {
			continue
		}
		poly := geom.NewPolygon(loop)
		for _, s := range o.Sites {
			if poly.Contains(s) {
				o.Polygons = append(o.Polygons, poly)
				break
			}
		}
	}
}

// Refine returns a new Voronoi diagram whose sites are the centroids of
// the current polygons (one step of Lloyd relaxation).
func (o *Diagram) Refine() (*Diagram, error) {
	sites := make([]geom.Vector, len(o.Polygons))
	for i, p := range o.Polygons {
		sites[i] = p.Centroid()
	}
	return Build(sites)
}

// GeneratePoints returns n points drawn uniformly from [min,max]^2, no two
// closer than minDist, by retrying rejected draws against the O(n)
// set of points already accepted.
func GeneratePoints(min, max geom.Vector, n int, minDist float64) []geom.Vector {
	pts := make([]geom.Vector, 0, n)
	minDistSq := minDist * minDist
	for len(pts) < n {
		p := geom.NewVector(rnd.Next(min.X, max.X), rnd.Next(min.Y, max.Y))
		ok := true
		for _, q := range pts {
			if p.DistSqTo(q) < minDistSq {
				ok = false
				break
			}
		}
		if ok {
			pts = append(pts, p)
		}
	}
	return pts
}
