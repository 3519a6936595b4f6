// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package island builds the city's coastline polygon from a Voronoi
// diagram and a boundary-shape predicate. Grounded on gofem's own
// tagged-dispatch idiom for closed variant sets (the same pattern as
// tsr.BasisField), used here in place of dynamic inheritance because the
// set of boundary-shape variants is closed and small.
package island

import "github.com/cpmech/citygen/geom"

// Kind tags a Shape's variant: Radial (a disk, centre+radius), Polygon,
// or Union (any-of over nested shapes).
type Kind int

const (
	Radial Kind = iota
	Polygon
	Union
)

// Shape is a closed tagged union implementing a boundary-containment
// predicate. Only the fields relevant to Kind are set.
type Shape struct {
	Kind   Kind
	Center geom.Vector
	Radius float64
	Poly   *geom.Polygon
	Parts  []Shape
}

// NewRadial returns a disk-shaped boundary centred at c with radius r.
func NewRadial(c geom.Vector, r float64) Shape {
	return Shape{Kind: Radial, Center: c, Radius: r}
}

// NewPolygon returns a boundary whose interior is the given polygon.
func NewPolygon(p *geom.Polygon) Shape {
	return Shape{Kind: Polygon, Poly: p}
}

// NewUnion returns a boundary that is the union of the given parts.
func NewUnion(parts ...Shape) Shape {
	return Shape{Kind: Union, Parts: parts}
}

// Contains dispatches the point-in-shape test on the Kind tag.
func (o Shape) Contains(p geom.Vector) bool {
	switch o.Kind {
	case Radial:
		return p.DistSqTo(o.Center) <= o.Radius*o.Radius
	case Polygon:
		return o.Poly.Contains(p)
	case Union:
		for _, part := range o.Parts {
			if part.Contains(p) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
