// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import "github.com/cpmech/citygen/geom"

// sampledStreamline holds the snapped, deduplicated grid points visited by
// one input streamline, in order.
type sampledStreamline struct {
	points []geom.Vector
}

// sampleStreamline walks every segment of a streamline every
// HalfGridResolution, snapping each sample to the grid and skipping
// consecutive duplicates. The first and last segments use the index range
// -1..steps+1, with every sample clamped onto the segment, so the
// streamline's own first and last points are always sampled; interior
// segments are sampled 0..steps, avoiding double-sampling shared vertices.
func sampleStreamline(line []geom.Vector) sampledStreamline {
	var pts []geom.Vector
	push := func(p geom.Vector) {
		s := Snap(p)
		if len(pts) == 0 || !pts[len(pts)-1].ApproxEqual(s, 1e-9) {
			pts = append(pts, s)
		}
	}
	for i := 1; i < len(line); i++ {
		a, b := line[i-1], line[i]
		seg := b.Sub(a)
		length := seg.Length()
		if length < 1e-12 {
			continue
		}
		dir := seg.Div(length)
		steps := int(length / HalfGridResolution)

		lo, hi := 0, steps
		if i == 1 {
			lo = -1
		}
		if i == len(line)-1 {
			hi = steps + 1
		}
		for k := lo; k <= hi; k++ {
			d := float64(k) * HalfGridResolution
			if d < 0 {
				d = 0
			}
			if d > length {
				d = length
			}
			push(a.Add(dir.Scale(d)))
		}
	}
	return sampledStreamline{points: pts}
}

// AddStreamlines snap-samples every streamline, creates a node at every
// grid point visited by two or more distinct streamlines, and links each
// node to its nearest node neighbour along every streamline passing
// through it.
func (o *Graph) AddStreamlines(streamlines [][]geom.Vector) {
	sampled := make([]sampledStreamline, len(streamlines))
	visitCount := map[geom.Vector]map[int]bool{}

	for si, line := range streamlines {
		sampled[si] = sampleStreamline(line)
		for _, p := range sampled[si].points {
			set, ok := visitCount[p]
			if !ok {
				set = map[int]bool{}
				visitCount[p] = set
			}
			set[si] = true
		}
	}

	for _, s := range sampled {
		for _, p := range s.points {
			if len(visitCount[p]) >= 2 {
				o.getOrCreate(p)
			}
		}
	}

	for _, n := range o.order {
		for si, s := range sampled {
			if !visitCount[n.Pos][si] {
				continue
			}
			for idx, p := range s.points {
				if !p.ApproxEqual(n.Pos, 1e-9) {
					continue
				}
				if path, hit, ok := walkToNode(o, s.points, idx, -1); ok {
					o.Link(n, hit, path)
				}
				if path, hit, ok := walkToNode(o, s.points, idx, +1); ok {
					o.Link(n, hit, path)
				}
			}
		}
	}
}

// walkToNode walks s.points from idx in the given direction (-1 or +1)
// until it reaches another existing node's position, returning the
// inclusive path from s.points[idx] to that node.
func walkToNode(g *Graph, points []geom.Vector, idx, direction int) (path []geom.Vector, hit *Node, ok bool) {
	path = []geom.Vector{points[idx]}
	k := idx + direction
	for k >= 0 && k < len(points) {
		path = append(path, points[k])
		if n := g.NodeAt(points[k]); n != nil && !points[k].ApproxEqual(points[idx], 1e-9) {
			return path, n, true
		}
		k += direction
	}
	return nil, nil, false
}

// ModifyStreamlines inserts a vertex at every grid intersection (a cell
// visited by >= 2 streamlines) found along a segment, at the segment's
// original source index, shifted by prior insertions.
// Returns the modified copies; the receiver graph is unaffected (the
// intersections it names are taken from its own node set, already built
// by AddStreamlines).
func (o *Graph) ModifyStreamlines(streamlines [][]geom.Vector) [][]geom.Vector {
	out := make([][]geom.Vector, len(streamlines))
	for li, line := range streamlines {
		modified := append([]geom.Vector{}, line[0])
		shift := 0
		for i := 1; i < len(line); i++ {
			a, b := line[i-1], line[i]
			seg := b.Sub(a)
			length := seg.Length()
			if length > 1e-12 {
				dir := seg.Div(length)
				steps := int(length / HalfGridResolution)
				for k := 1; k < steps; k++ {
					p := a.Add(dir.Scale(float64(k) * HalfGridResolution))
					if n := o.NodeAt(Snap(p)); n != nil {
						idx := i + shift
						modified = append(modified[:idx], append([]geom.Vector{p}, modified[idx:]...)...)
						shift++
					}
				}
			}
			modified = append(modified, b)
		}
		out[li] = modified
	}
	return out
}
