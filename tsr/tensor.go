// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tsr implements the symmetric traceless 2x2 tensor used to steer
// road streamlines, in the algebraic idiom of github.com/cpmech/gosl/tsr
// (gofem's own tensor package) specialised to a 2D double-angle
// representation.
package tsr

import (
	"math"

	"github.com/cpmech/citygen/geom"
)

// Tensor is a symmetric traceless 2x2 matrix represented by a nonnegative
// magnitude R and the unit matrix row (Cos2T, Sin2T) = (cos 2theta, sin
// 2theta). Invariant: when R == 0 the matrix is the zero vector and theta
// is defined to be 0.
type Tensor struct {
	R            float64
	Cos2T, Sin2T float64
}

// Zero is the zero tensor (R=0, theta=0).
var Zero = Tensor{}

// New builds a Tensor from magnitude R and angle theta.
func New(r, theta float64) Tensor {
	if r == 0 {
		return Zero
	}
	return Tensor{R: r, Cos2T: math.Cos(2 * theta), Sin2T: math.Sin(2 * theta)}
}

// FromRow builds a Tensor directly from magnitude and unit matrix row.
func FromRow(r, cos2t, sin2t float64) Tensor {
	if r == 0 {
		return Zero
	}
	return Tensor{R: r, Cos2T: cos2t, Sin2T: sin2t}
}

// Theta returns the angle encoded by the unit row; 0 when R == 0.
func (o Tensor) Theta() float64 {
	if o.R == 0 {
		return 0
	}
	return math.Atan2(o.Sin2T, o.Cos2T) / 2
}

// Scale multiplies the magnitude by s, leaving the angle unchanged.
func (o Tensor) Scale(s float64) Tensor {
	if o.R == 0 {
		return Zero
	}
	return Tensor{R: o.R * s, Cos2T: o.Cos2T, Sin2T: o.Sin2T}
}

// Rotate returns a copy of o with its angle advanced by delta radians.
func (o Tensor) Rotate(delta float64) Tensor {
	if o.R == 0 {
		return Zero
	}
	return New(o.R, o.Theta()+delta)
}

// WeightedSum combines a set of (weight, tensor) pairs. In smooth mode the
// resulting magnitude is renormalised to the magnitude of the summed unit
// matrix; in non-smooth mode the magnitude is fixed at 2.
func WeightedSum(smooth bool, weights []float64, tensors []Tensor) Tensor {
	var sumCos, sumSin float64
	for i, w := range weights {
		t := tensors[i]
		sumCos += w * t.R * t.Cos2T
		sumSin += w * t.R * t.Sin2T
	}
	mag := math.Hypot(sumCos, sumSin)
	if mag < 1e-15 {
		return Zero
	}
	cos2t, sin2t := sumCos/mag, sumSin/mag
	if smooth {
		return FromRow(mag, cos2t, sin2t)
	}
	return FromRow(2, cos2t, sin2t)
}

// Major returns the principal eigenvector direction (cos theta, sin theta);
// the zero vector when R == 0.
func (o Tensor) Major() geom.Vector {
	if o.R == 0 {
		return geom.Zero
	}
	th := o.Theta()
	return geom.NewVector(math.Cos(th), math.Sin(th))
}

// Minor returns the secondary eigenvector direction, perpendicular to
// Major; the zero vector when R == 0.
func (o Tensor) Minor() geom.Vector {
	if o.R == 0 {
		return geom.Zero
	}
	th := o.Theta() + math.Pi/2
	return geom.NewVector(math.Cos(th), math.Sin(th))
}
