// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Simplify runs the two-stage polyline reduction used by the streamline
// generator: a radial-distance filter followed by Douglas-Peucker, both
// driven by the same squared tolerance. tolerance is the linear (not
// squared) distance threshold.
func Simplify(pts []Vector, tolerance float64) []Vector {
	t2 := tolerance * tolerance
	return DouglasPeucker(SimplifyRadialDistance(pts, t2), t2)
}

// SimplifyRadialDistance keeps the first point, then walks the polyline
// appending any point whose squared distance from the last kept point
// exceeds tolSq. The true final input point is always retained even if it
// falls within tolerance of the last accepted point: the exact last
// vertex matters to downstream joining, so it is never dropped.
func SimplifyRadialDistance(pts []Vector, tolSq float64) []Vector {
	if len(pts) < 3 {
		return pts
	}
	out := make([]Vector, 0, len(pts))
	out = append(out, pts[0])
	last := pts[0]
	for i := 1; i < len(pts); i++ {
		if pts[i].DistSqTo(last) > tolSq {
			out = append(out, pts[i])
			last = pts[i]
		}
	}
	final := pts[len(pts)-1]
	if len(out) == 0 || !out[len(out)-1].ApproxEqual(final, 1e-12) {
		out = append(out, final)
	}
	return out
}

// DouglasPeucker recursively simplifies pts, preserving the first and last
// points exactly. No retained interior point is within sqrt(tolSq) of the
// segment joining its neighbours.
func DouglasPeucker(pts []Vector, tolSq float64) []Vector {
	if len(pts) < 3 {
		return pts
	}
	first, last := pts[0], pts[len(pts)-1]
	maxDistSq := -1.0
	maxIdx := -1
	for i := 1; i < len(pts)-1; i++ {
		d := perpDistSq(pts[i], first, last)
		if d > maxDistSq {
			maxDistSq = d
			maxIdx = i
		}
	}
	if maxDistSq <= tolSq || maxIdx < 0 {
		return []Vector{first, last}
	}
	left := DouglasPeucker(pts[:maxIdx+1], tolSq)
	right := DouglasPeucker(pts[maxIdx:], tolSq)
	out := make([]Vector, 0, len(left)+len(right)-1)
	out = append(out, left[:len(left)-1]...)
	out = append(out, right...)
	return out
}

// perpDistSq returns the squared distance from p to the segment [a,b],
// clamped so the projection parameter stays within [0,1].
func perpDistSq(p, a, b Vector) float64 {
	ab := b.Sub(a)
	l2 := ab.LengthSq()
	if l2 < 1e-18 {
		return p.DistSqTo(a)
	}
	t := p.Sub(a).Dot(ab) / l2
	t = math.Max(0, math.Min(1, t))
	proj := a.Add(ab.Scale(t))
	return p.DistSqTo(proj)
}
