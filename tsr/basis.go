// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/citygen/geom"
)

// Kind tags the two basis-field variants. A closed tagged union is used
// here rather than gofem's open model-registry pattern
// (mdl/solid/elasticity.go's kgcfactory) because exactly two kinds exist
// and no caller ever needs to register a third.
type Kind int

const (
	// KindGrid is a constant-direction field at angle Theta0.
	KindGrid Kind = iota
	// KindRadial is a field that curls around Center.
	KindRadial
)

// BasisField is a single weighted tensor contribution, parameterised by
// centre C, size S (> 0) and decay D (>= 0).
type BasisField struct {
	Kind   Kind
	Center geom.Vector
	Size   float64
	Decay  float64
	Theta0 float64 // used only when Kind == KindGrid
	Smooth bool
}

// NewGrid returns a grid basis field at angle theta0.
func NewGrid(center geom.Vector, size, decay, theta0 float64, smooth bool) BasisField {
	mustBeValid(size)
	return BasisField{Kind: KindGrid, Center: center, Size: size, Decay: decay, Theta0: theta0, Smooth: smooth}
}

// NewRadial returns a radial basis field curling around center.
func NewRadial(center geom.Vector, size, decay float64, smooth bool) BasisField {
	mustBeValid(size)
	return BasisField{Kind: KindRadial, Center: center, Size: size, Decay: decay, Smooth: smooth}
}

func mustBeValid(size float64) {
	if size <= 0 {
		chk.Panic("basis field size must be > 0; got %v", size)
	}
}

// Weight returns the scalar weight of the field at point p.
func (o BasisField) Weight(p geom.Vector) float64 {
	d := p.DistTo(o.Center) / o.Size
	if o.Smooth {
		return math.Pow(d, -o.Decay)
	}
	if o.Decay == 0 && d >= 1 {
		return 0
	}
	return math.Pow(math.Max(0, 1-d), o.Decay)
}

// Tensor returns the unweighted tensor contribution of the field at p.
func (o BasisField) Tensor(p geom.Vector) Tensor {
	switch o.Kind {
	case KindGrid:
		return New(1, o.Theta0)
	case KindRadial:
		d := p.Sub(o.Center)
		r := math.Hypot(d.X, d.Y)
		if r < 1e-12 {
			return Zero
		}
		// (dy^2-dx^2, -2*dx*dy) normalised to a unit matrix row.
		a := d.Y*d.Y - d.X*d.X
		b := -2 * d.X * d.Y
		mag := math.Hypot(a, b)
		if mag < 1e-15 {
			return Zero
		}
		return FromRow(1, a/mag, b/mag)
	}
	return Zero
}

// WeightedTensor returns Weight(p) * Tensor(p) worth of contribution for
// use directly with WeightedSum (weight already folds R=1 in).
func (o BasisField) WeightedTensor(p geom.Vector) (weight float64, t Tensor) {
	return o.Weight(p), o.Tensor(p)
}
