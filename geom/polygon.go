// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Polygon is an array of >= 3 Vectors, implicitly closed. Area and the
// axis-aligned bounding box are computed once and cached.
type Polygon struct {
	Points []Vector

	area   float64
	areaOk bool
	min    Vector
	max    Vector
	bboxOk bool
}

// NewPolygon validates and wraps a vertex list. A precondition violation
// (fewer than 3 points) aborts the caller, per the "Invalid polygon"
// fatal-error class in the error-handling design.
func NewPolygon(pts []Vector) *Polygon {
	if len(pts) < 3 {
		chk.Panic("polygon requires at least 3 points; got %d", len(pts))
	}
	return &Polygon{Points: pts}
}

// Area returns the absolute value of the signed Shoelace sum. Invariant:
// independent of winding order or the starting vertex.
func (o *Polygon) Area() float64 {
	if o.areaOk {
		return o.area
	}
	sum := 0.0
	n := len(o.Points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += o.Points[i].X*o.Points[j].Y - o.Points[j].X*o.Points[i].Y
	}
	o.area = math.Abs(sum) / 2
	o.areaOk = true
	return o.area
}

// BBox returns the cached axis-aligned bounding box (min, max)
func (o *Polygon) BBox() (min, max Vector) {
	if o.bboxOk {
		return o.min, o.max
	}
	min = Vector{math.Inf(1), math.Inf(1)}
	max = Vector{math.Inf(-1), math.Inf(-1)}
	for _, p := range o.Points {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	o.min, o.max = min, max
	o.bboxOk = true
	return min, max
}

// Contains reports whether p lies inside o using the classical ray-cast
// (even-odd) rule.
func (o *Polygon) Contains(p Vector) bool {
	n := len(o.Points)
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := o.Points[i], o.Points[j]
		if ((pi.Y > p.Y) != (pj.Y > p.Y)) &&
			(p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X) {
			inside = !inside
		}
	}
	return inside
}

// Centroid returns the arithmetic mean of the vertices. Invariant: invariant
// under cyclic rotation of the vertex list.
func (o *Polygon) Centroid() Vector {
	var c Vector
	for _, p := range o.Points {
		c = c.Add(p)
	}
	return c.Div(float64(len(o.Points)))
}

// ScaleAbout scales every vertex by s about the polygon's own centroid and
// returns a new Polygon; the receiver is unchanged.
func (o *Polygon) ScaleAbout(s float64) *Polygon {
	c := o.Centroid()
	pts := make([]Vector, len(o.Points))
	for i, p := range o.Points {
		pts[i] = c.Add(p.Sub(c).Scale(s))
	}
	return NewPolygon(pts)
}

// RandomPoint returns a uniform-random interior point via rejection
// sampling over the bounding box. If maxTries is exhausted (recoverable
// local failure, per the error-handling design) the first vertex is
// returned instead of failing the caller.
func (o *Polygon) RandomPoint(maxTries int, next func(lo, hi float64) float64) Vector {
	min, max := o.BBox()
	for i := 0; i < maxTries; i++ {
		p := Vector{next(min.X, max.X), next(min.Y, max.Y)}
		if o.Contains(p) {
			return p
		}
	}
	return o.Points[0]
}
