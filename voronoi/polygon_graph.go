// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voronoi

import (
	"math"

	"github.com/cpmech/citygen/geom"
)

// nodeTolerance is the point-position tolerance used to merge edge
// endpoints into shared nodes.
const nodeTolerance = 0.01

// pgraph is a minimal planar node graph built directly over the
// dedupeEdges-cleaned Voronoi edge set, used only to enumerate minimal
// faces (cell polygons).
type pgraph struct {
	pos   []geom.Vector
	adj   [][]int
	index map[geom.Vector]int
}

func newNodeGraph() *pgraph {
	return &pgraph{index: map[geom.Vector]int{}}
}

func (o *pgraph) nodeFor(p geom.Vector) int {
	key := geom.NewVector(round(p.X, nodeTolerance), round(p.Y, nodeTolerance))
	if i, ok := o.index[key]; ok {
		return i
	}
	i := len(o.pos)
	o.pos = append(o.pos, p)
	o.adj = append(o.adj, nil)
	o.index[key] = i
	return i
}

func round(x, tol float64) float64 {
	return math.Round(x/tol) * tol
}

func (o *pgraph) link(a, b geom.Vector) {
	ia, ib := o.nodeFor(a), o.nodeFor(b)
	if ia == ib {
		return
	}
	for _, n := range o.adj[ia] {
		if n == ib {
			return
		}
	}
	o.adj[ia] = append(o.adj[ia], ib)
	o.adj[ib] = append(o.adj[ib], ia)
}

// findLoops enumerates minimal faces via the rightmost-turn walk, the
// same discipline as graph.FindClosedLoops, deduplicating by rounded
// centroid.
func (o *pgraph) findLoops() [][]geom.Vector {
	var loops [][]geom.Vector
	seen := map[geom.Vector]bool{}

	for a := range o.pos {
		for _, b := range o.adj[a] {
			baseDir := o.pos[b].Sub(o.pos[a])
			idx, ok := o.walkRightmost(a, b, baseDir, 64)
			if !ok {
				continue
			}
			var pts []geom.Vector
			for _, i := range idx {
				pts = append(pts, o.pos[i])
			}
			c := centroid(pts)
			key := geom.NewVector(round(c.X, nodeTolerance), round(c.Y, nodeTolerance))
			if seen[key] {
				continue
			}
			seen[key] = true
			loops = append(loops, pts)
		}
	}
	return loops
}

func (o *pgraph) walkRightmost(start, next int, baseDir geom.Vector, maxSize int) ([]int, bool) {
	visited := map[int]bool{start: true}
	loop := []int{start}
	current := next

	for {
		visited[current] = true
		loop = append(loop, current)
		if len(loop) >= maxSize {
			return nil, false
		}

		best := -1
		bestAngle := -1.0
		closesHere := false
		for _, cand := range o.adj[current] {
			if cand == start && len(loop) > 2 {
				closesHere = true
				continue
			}
			if visited[cand] {
				continue
			}
			angle := baseDir.AngleTo(o.pos[cand].Sub(o.pos[current]))
			if angle <= 0 {
				angle += 2 * math.Pi
			}
			if angle > bestAngle {
				bestAngle = angle
				best = cand
			}
		}
		if closesHere {
			return loop, true
		}
		if best < 0 {
			return nil, false
		}
		baseDir = o.pos[best].Sub(o.pos[current])
		current = best
	}
}

func centroid(pts []geom.Vector) geom.Vector {
	var c geom.Vector
	for _, p := range pts {
		c = c.Add(p)
	}
	return c.Div(float64(len(pts)))
}
