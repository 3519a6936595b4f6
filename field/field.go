// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package field composes weighted basis fields, rotational simplex noise,
// and water-mask exclusion into the tensor field streamlines are traced
// through. Grounded on gofem's model-composition style (ele/porous
// composing several mdl sub-models at a single point).
package field

import (
	"github.com/cpmech/citygen/geom"
	"github.com/cpmech/citygen/tsr"
)

// NoiseParams holds the rotational-noise configuration.
type NoiseParams struct {
	ParkSize, ParkAngle     float64
	GlobalSize, GlobalAngle float64
	GlobalEnabled           bool
}

// TensorField is a list of basis fields plus noise parameters, a park
// polygon list, optional sea/river polygons, and a smooth flag.
type TensorField struct {
	Basis  []tsr.BasisField
	Noise  NoiseParams
	Parks  []*geom.Polygon
	Sea    *geom.Polygon
	River  *geom.Polygon
	Smooth bool

	noise *noiseSampler
}

// New returns a TensorField seeded with a deterministic noise sampler.
func New(seed int64, smooth bool, noise NoiseParams) *TensorField {
	return &TensorField{Noise: noise, Smooth: smooth, noise: newNoiseSampler(seed)}
}

// AddBasis registers a basis field; ownership of basis fields belongs to
// the TensorField.
func (o *TensorField) AddBasis(b tsr.BasisField) {
	o.Basis = append(o.Basis, b)
}

// OnLand reports whether p is outside the sea and river exclusion polygons.
func (o *TensorField) OnLand(p geom.Vector) bool {
	return o.onLand(p)
}

// onLand reports whether p is outside the sea and river exclusion polygons.
func (o *TensorField) onLand(p geom.Vector) bool {
	if o.Sea != nil && o.Sea.Contains(p) {
		return false
	}
	if o.River != nil && o.River.Contains(p) {
		return false
	}
	return true
}

// inPark reports whether p lies in any registered park polygon.
func (o *TensorField) inPark(p geom.Vector) bool {
	for _, park := range o.Parks {
		if park.Contains(p) {
			return true
		}
	}
	return false
}

// Sample returns the tensor at point p, following a five-step procedure:
//  1. sea/river mask -> zero tensor
//  2. no basis fields -> default grid tensor (1, (0,0))
//  3. weighted accumulation of basis fields (smooth/non-smooth per o.Smooth)
//  4. park rotational noise
//  5. global rotational noise, if enabled
func (o *TensorField) Sample(p geom.Vector) tsr.Tensor {
	if !o.onLand(p) {
		return tsr.Zero
	}
	if len(o.Basis) == 0 {
		return tsr.FromRow(1, 0, 0)
	}

	weights := make([]float64, len(o.Basis))
	tensors := make([]tsr.Tensor, len(o.Basis))
	for i, b := range o.Basis {
		weights[i], tensors[i] = b.WeightedTensor(p)
	}
	t := tsr.WeightedSum(o.Smooth, weights, tensors)

	if o.inPark(p) {
		t = t.Rotate(o.noise.angleAt(p, o.Noise.ParkSize, o.Noise.ParkAngle))
	}
	if o.Noise.GlobalEnabled {
		t = t.Rotate(o.noise.angleAt(p, o.Noise.GlobalSize, o.Noise.GlobalAngle))
	}
	return t
}
