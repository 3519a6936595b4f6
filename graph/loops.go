// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import "github.com/cpmech/citygen/geom"

// FindClosedLoops enumerates minimal faces via a rightmost-turn walk from
// every directed edge, deduplicating rotations/reflections of the same
// face via a tolerance-0.01 centroid set.
func (o *Graph) FindClosedLoops(maxSize int) [][]*Node {
	var found [][]*Node
	seenCentroids := map[geom.Vector]bool{}

	for _, b := range o.order {
		for _, n := range b.Neighbours() {
			baseDir := n.Pos.Sub(b.Pos)
			loop, ok := walkRightmost(b, n, baseDir, maxSize)
			if !ok {
				continue
			}
			c := centroidOf(loop)
			key := roundVec(c, 0.01)
			if seenCentroids[key] {
				continue
			}
			seenCentroids[key] = true
			found = append(found, loop)
		}
	}
	o.loops = found
	return found
}

// walkRightmost performs the rightmost-turn walk starting at b -> n.
func walkRightmost(b, n *Node, baseDir geom.Vector, maxSize int) ([]*Node, bool) {
	visited := map[*Node]bool{b: true}
	loop := []*Node{b}
	current := n

	for {
		visited[current] = true
		loop = append(loop, current)
		if len(loop) >= maxSize {
			return nil, false
		}

		var next *Node
		bestAngle := -1.0
		closesHere := false
		for _, cand := range current.Neighbours() {
			if cand == b && len(loop) > 2 {
				closesHere = true
				continue
			}
			if visited[cand] {
				continue
			}
			angle := baseDir.AngleTo(cand.Pos.Sub(current.Pos))
			if angle <= 0 {
				angle += 2 * 3.141592653589793
			}
			if angle > 0 && angle < 2*3.141592653589793 && angle > bestAngle {
				bestAngle = angle
				next = cand
			}
		}
		if closesHere {
			return loop, true
		}
		if next == nil {
			return nil, false
		}
		baseDir = next.Pos.Sub(current.Pos)
		current = next
	}
}

func centroidOf(nodes []*Node) geom.Vector {
	var c geom.Vector
	for _, n := range nodes {
		c = c.Add(n.Pos)
	}
	return c.Div(float64(len(nodes)))
}

func roundVec(v geom.Vector, tol float64) geom.Vector {
	return geom.NewVector(roundTo(v.X, tol), roundTo(v.Y, tol))
}

func roundTo(x, tol float64) float64 {
	return float64(int64(x/tol+0.5)) * tol
}

// LoopPolygon concatenates the connecting paths between consecutive nodes
// of a closed loop, traversed in order.
func LoopPolygon(loop []*Node) []geom.Vector {
	var pts []geom.Vector
	for i := 0; i < len(loop); i++ {
		a := loop[i]
		b := loop[(i+1)%len(loop)]
		path := a.PathTo(b)
		if len(pts) > 0 && len(path) > 0 {
			path = path[1:]
		}
		pts = append(pts, path...)
	}
	return pts
}
