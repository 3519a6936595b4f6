// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geom implements 2D vector and polygon primitives used by the
// city road-network generator: vector arithmetic, polygon containment and
// area, convex hull, and polyline simplification.
package geom

import "math"

// Vector is an immutable pair (X, Y) of finite real numbers.
type Vector struct {
	X, Y float64
}

// NewVector returns a new Vector
func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Zero is the additive identity
var Zero = Vector{}

// Add returns o+p
func (o Vector) Add(p Vector) Vector {
	return Vector{o.X + p.X, o.Y + p.Y}
}

// Sub returns o-p
func (o Vector) Sub(p Vector) Vector {
	return Vector{o.X - p.X, o.Y - p.Y}
}

// Scale returns o*s
func (o Vector) Scale(s float64) Vector {
	return Vector{o.X * s, o.Y * s}
}

// Div returns o/s
func (o Vector) Div(s float64) Vector {
	return Vector{o.X / s, o.Y / s}
}

// Dot returns the dot product o.p
func (o Vector) Dot(p Vector) float64 {
	return o.X*p.X + o.Y*p.Y
}

// Cross returns the standard 2D cross product x*p.Y - p.X*y. The
// Voronoi half-plane clipping in this module depends on this sign
// convention; flipping it flips which side of a bisector is "inside".
func (o Vector) Cross(p Vector) float64 {
	return o.X*p.Y - p.X*o.Y
}

// Length returns the Euclidean magnitude of o
func (o Vector) Length() float64 {
	return math.Sqrt(o.X*o.X + o.Y*o.Y)
}

// LengthSq returns the squared magnitude, avoiding the sqrt
func (o Vector) LengthSq() float64 {
	return o.X*o.X + o.Y*o.Y
}

// DistTo returns the distance between o and p
func (o Vector) DistTo(p Vector) float64 {
	return o.Sub(p).Length()
}

// DistSqTo returns the squared distance between o and p
func (o Vector) DistSqTo(p Vector) float64 {
	return o.Sub(p).LengthSq()
}

// Normalized returns o/|o|, or the zero vector if o is (near) zero
func (o Vector) Normalized() Vector {
	l := o.Length()
	if l < 1e-12 {
		return Zero
	}
	return Vector{o.X / l, o.Y / l}
}

// PerpCW returns the clockwise perpendicular of o: (y, -x)
func (o Vector) PerpCW() Vector {
	return Vector{o.Y, -o.X}
}

// PerpCCW returns the counter-clockwise perpendicular of o: (-y, x)
func (o Vector) PerpCCW() Vector {
	return Vector{-o.Y, o.X}
}

// AngleTo returns the signed angle from o to p in (-pi, pi]
func (o Vector) AngleTo(p Vector) float64 {
	return math.Atan2(o.Cross(p), o.Dot(p))
}

// RotateAbout rotates o by angle radians about centre c
func (o Vector) RotateAbout(c Vector, angle float64) Vector {
	s, cs := math.Sin(angle), math.Cos(angle)
	d := o.Sub(c)
	return Vector{
		X: c.X + d.X*cs - d.Y*s,
		Y: c.Y + d.X*s + d.Y*cs,
	}
}

// ApproxEqual reports whether o and p are within tol of each other
func (o Vector) ApproxEqual(p Vector, tol float64) bool {
	return math.Abs(o.X-p.X) <= tol && math.Abs(o.Y-p.Y) <= tol
}

// Less implements a lexicographic ordering (X then Y), used for
// deterministic tie-breaking (e.g. Voronoi edge endpoint canonicalisation).
func (o Vector) Less(p Vector) bool {
	if o.X != p.X {
		return o.X < p.X
	}
	return o.Y < p.Y
}

// Lerp linearly interpolates between o and p at parameter t in [0,1]
func (o Vector) Lerp(p Vector, t float64) Vector {
	return Vector{o.X + (p.X-o.X)*t, o.Y + (p.Y-o.Y)*t}
}
