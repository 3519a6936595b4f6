// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package island

import (
	"math"

	"github.com/cpmech/citygen/geom"
	"github.com/cpmech/citygen/rnd"
	"github.com/cpmech/citygen/voronoi"
)

// matchTolerance is the endpoint-equality tolerance used to match a land
// cell's edge against a sea cell's edge.
const matchTolerance = 0.1

type segment struct {
	A, B geom.Vector
	used bool
}

func cellEdges(poly *geom.Polygon) []segment {
	n := len(poly.Points)
	edges := make([]segment, n)
	for i := 0; i < n; i++ {
		edges[i] = segment{A: poly.Points[i], B: poly.Points[(i+1)%n]}
	}
	return edges
}

func endpointsMatch(a segment, b segment) bool {
	same := a.A.ApproxEqual(b.A, matchTolerance) && a.B.ApproxEqual(b.B, matchTolerance)
	swapped := a.A.ApproxEqual(b.B, matchTolerance) && a.B.ApproxEqual(b.A, matchTolerance)
	return same || swapped
}

// Classify splits a Voronoi diagram's polygons into land and sea edge
// sets: a cell is Land if shape contains its centroid, else Sea.
func Classify(v *voronoi.Diagram, shape Shape) (landEdges, seaEdges []segment) {
	for _, poly := range v.Polygons {
		edges := cellEdges(poly)
		if shape.Contains(poly.Centroid()) {
			landEdges = append(landEdges, edges...)
		} else {
			seaEdges = append(seaEdges, edges...)
		}
	}
	return
}

// Coastline extracts the unordered coastline edge set (edges where a
// land cell borders a sea cell) and returns it ordered into a closed
// polygon.
func Coastline(v *voronoi.Diagram, shape Shape) []geom.Vector {
	landEdges, seaEdges := Classify(v, shape)

	var coast []segment
	for _, le := range landEdges {
		for _, se := range seaEdges {
			if endpointsMatch(le, se) {
				coast = append(coast, le)
				break
			}
		}
	}
	if len(coast) == 0 {
		return nil
	}
	return orderEdges(coast)
}

// orderEdges walks the coastline edge set into a single closed polygon:
// start at the lexicographic leftmost-lowest vertex with initial
// direction (0,1); repeatedly pick the next edge minimising the
// directional turn angle from the current direction; bridge when stuck.
func orderEdges(edges []segment) []geom.Vector {
	maxLen := 0.0
	for _, e := range edges {
		if l := e.A.DistTo(e.B); l > maxLen {
			maxLen = l
		}
	}
	if maxLen == 0 {
		maxLen = 1
	}

	start := edges[0].A
	for _, e := range edges {
		if e.A.Less(start) {
			start = e.A
		}
		if e.B.Less(start) {
			start = e.B
		}
	}

	remaining := make([]segment, len(edges))
	copy(remaining, edges)

	path := []geom.Vector{start}
	current := start
	prevDir := geom.NewVector(0, 1)

	for {
		bestIdx := -1
		bestOther := geom.Zero
		bestAngle := math.Inf(1)
		for i := range remaining {
			e := remaining[i]
			if e.used {
				continue
			}
			if e.A.ApproxEqual(current, 1e-9) {
				a := directionalAngle(e.B.Sub(current), prevDir)
				if a < bestAngle {
					bestAngle, bestIdx, bestOther = a, i, e.B
				}
			} else if e.B.ApproxEqual(current, 1e-9) {
				a := directionalAngle(e.A.Sub(current), prevDir)
				if a < bestAngle {
					bestAngle, bestIdx, bestOther = a, i, e.A
				}
			}
		}

		if bestIdx < 0 {
			bestIdx, bestOther = bridge(remaining, current, prevDir, maxLen)
			if bestIdx < 0 {
				break
			}
		}

		remaining[bestIdx].used = true
		prevDir = bestOther.Sub(current)
		current = bestOther
		path = append(path, current)

		if current.ApproxEqual(start, matchTolerance) {
			break
		}
		if allUsed(remaining) {
			break
		}
	}
	return path
}

// directionalAngle returns the turn (in [0, 2*pi)) from prevDir to v.
func directionalAngle(v, prevDir geom.Vector) float64 {
	angle := math.Atan2(prevDir.Cross(v), prevDir.Dot(v))
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// bridge synthesises a connecting edge when no unused edge touches
// current, minimising angle + (distance/maxEdgeLength)*2*pi over every
// unused edge endpoint, with angle measured the same way the primary
// walk measures it: the directional turn from prevDir, so a bridge never
// doubles back against the direction of travel.
func bridge(remaining []segment, current, prevDir geom.Vector, maxEdgeLength float64) (idx int, other geom.Vector) {
	best := -1
	bestScore := math.Inf(1)
	var bestPoint geom.Vector
	for i, e := range remaining {
		if e.used {
			continue
		}
		for _, p := range [2]geom.Vector{e.A, e.B} {
			d := p.Sub(current)
			if d.LengthSq() < 1e-12 {
				continue
			}
			dist := d.Length()
			angle := directionalAngle(d, prevDir)
			score := angle + (dist/maxEdgeLength)*2*math.Pi
			if score < bestScore {
				bestScore, best, bestPoint = score, i, p
			}
		}
	}
	return best, bestPoint
}

func allUsed(edges []segment) bool {
	for _, e := range edges {
		if !e.used {
			return false
		}
	}
	return true
}

// Refine subdivides long coastline edges and perturbs the new interior
// points perpendicular to the edge. The perturbation magnitude scales
// with the longest edge in the unrefined coastline, keeping Refine
// self-contained rather than threading an external size constant.
func Refine(coastline []geom.Vector) []geom.Vector {
	if len(coastline) < 2 {
		return coastline
	}
	n := len(coastline)
	total, maxEdge := 0.0, 0.0
	for i := 0; i < n; i++ {
		l := coastline[i].DistTo(coastline[(i+1)%n])
		total += l
		if l > maxEdge {
			maxEdge = l
		}
	}
	avg := total / float64(n)
	threshold := (avg * 3) * (avg * 3)
	if maxEdge == 0 {
		maxEdge = 1
	}

	var out []geom.Vector
	for i := 0; i < n; i++ {
		a, b := coastline[i], coastline[(i+1)%n]
		out = append(out, a)
		lenSq := a.DistSqTo(b)
		if lenSq <= threshold {
			continue
		}
		steps := int(math.Ceil(lenSq / threshold))
		perp := b.Sub(a).Normalized().PerpCW()
		side := 1.0
		for k := 1; k < steps; k++ {
			t := float64(k) / float64(steps)
			p := a.Lerp(b, t)
			mag := rnd.Next(0.05, 0.20) * maxEdge
			if rnd.Bool(0.2) {
				side = -side
			}
			out = append(out, p.Add(perp.Scale(mag*side)))
		}
	}
	return out
}
