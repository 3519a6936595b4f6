// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package integrate implements the two field-integration operators used
// to trace streamlines through a tensor field. gosl/ode's adaptive
// multi-step IVP solver does not fit this single-shot, fixed-step,
// eigenvector-sampling use case (see DESIGN.md), so both operators are
// hand-written directly against citygen/field.
package integrate

import (
	"github.com/cpmech/citygen/field"
	"github.com/cpmech/citygen/geom"
)

// degenerateThresholdSq is the squared-magnitude floor below which an
// eigenvector is considered degenerate (|v| < sqrt(0.01)).
const degenerateThresholdSq = 0.01

// Operator maps (point, major) -> step vector of length ~= dstep.
type Operator func(f *field.TensorField, p geom.Vector, major bool, dstep float64) geom.Vector

// eigenvector returns the Major or Minor eigenvector of f sampled at p.
func eigenvector(f *field.TensorField, p geom.Vector, major bool) geom.Vector {
	t := f.Sample(p)
	if major {
		return t.Major()
	}
	return t.Minor()
}

func isDegenerate(v geom.Vector) bool {
	return v.LengthSq() < degenerateThresholdSq
}

// Euler returns field.Sample(p).{Major|Minor} * dstep, or the zero vector
// at a degenerate point.
func Euler(f *field.TensorField, p geom.Vector, major bool, dstep float64) geom.Vector {
	v := eigenvector(f, p, major)
	if isDegenerate(v) {
		return geom.Zero
	}
	return v.Scale(dstep)
}

// RK4 returns (k1 + 4*k23 + k4) * (dstep/6), sampling the eigenvector at p,
// p+(dstep/2,dstep/2), and p+(dstep,dstep). Degenerate at any of the
// three sample points yields the zero vector for the whole step
// (consistent with Euler's degenerate handling: a degenerate eigenvector
// carries no usable direction).
func RK4(f *field.TensorField, p geom.Vector, major bool, dstep float64) geom.Vector {
	k1 := eigenvector(f, p, major)
	mid := p.Add(geom.NewVector(dstep/2, dstep/2))
	k23 := eigenvector(f, mid, major)
	end := p.Add(geom.NewVector(dstep, dstep))
	k4 := eigenvector(f, end, major)

	if isDegenerate(k1) || isDegenerate(k23) || isDegenerate(k4) {
		return geom.Zero
	}

	sum := k1.Add(k23.Scale(4)).Add(k4)
	return sum.Scale(dstep / 6)
}

// IsDegenerate exposes the degeneracy test to callers (the streamline
// generator needs it on the *result* direction, not just inputs).
func IsDegenerate(v geom.Vector) bool {
	return isDegenerate(v)
}
