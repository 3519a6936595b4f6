// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package streamline

import "github.com/cpmech/citygen/geom"

// half is one direction (forward or backward) of a paired streamline
// integration.
type half struct {
	points []geom.Vector
	dir    geom.Vector
	valid  bool
	seed   geom.Vector
	dir0   geom.Vector // original (first-step) direction, for turn detection
}

// integrateStreamline produces a single streamline starting from seed,
// following the major or minor eigenvector. It advances forward and
// backward halves in lockstep and closes the streamline into a loop once
// the two ends, having first separated beyond the join distance, come
// back within it.
func (o *Generator) integrateStreamline(seed geom.Vector, major bool, checkSibling bool) (pts []geom.Vector, looped bool) {

	fwdDir0 := o.Integrator(o.Field, seed, major, o.Params.DStep)
	bwdDir0 := fwdDir0.Scale(-1)

	fwd := &half{points: []geom.Vector{seed}, dir: fwdDir0, valid: true, seed: seed, dir0: fwdDir0}
	bwd := &half{points: []geom.Vector{seed}, dir: bwdDir0, valid: true, seed: seed, dir0: bwdDir0}

	escaped := false

	for iter := 0; iter < o.Params.PathIntegrationLimit; iter++ {
		if !fwd.valid && !bwd.valid {
			break
		}
		if fwd.valid {
			o.stepHalf(fwd, major, checkSibling)
		}
		if bwd.valid {
			o.stepHalf(bwd, major, checkSibling)
		}

		fEnd := fwd.points[len(fwd.points)-1]
		bEnd := bwd.points[len(bwd.points)-1]
		dSq := fEnd.DistSqTo(bEnd)
		if !escaped && dSq > o.dCircleJoinSq {
			escaped = true
		} else if escaped && dSq <= o.dCircleJoinSq {
			return concatenate(bwd.points, fwd.points), true
		}
	}

	return concatenate(bwd.points, fwd.points), false
}

// stepHalf advances one half-streamline by a single iteration, applying
// the monotone-direction flip, degeneracy check, bounds check, density
// check, and turn check in that order.
func (o *Generator) stepHalf(h *half, major bool, checkSibling bool) {
	cur := h.points[len(h.points)-1]
	dPrime := o.Integrator(o.Field, cur, major, o.Params.DStep)

	if dPrime.Dot(h.dir) < 0 {
		dPrime = dPrime.Scale(-1)
	}

	if dPrime.LengthSq() < 0.01 {
		h.valid = false
		return
	}

	candidate := cur.Add(dPrime)

	if !o.inBounds(candidate) {
		h.valid = false
		return
	}

	if !o.validSample(candidate, major, o.dtestSq, checkSibling) {
		h.valid = false
		return
	}

	if turned(h.seed, h.dir0, candidate, dPrime) {
		h.valid = false
		return
	}

	h.points = append(h.points, candidate)
	h.dir = dPrime
}

// turned reports a disallowed sharp reversal relative to the initial
// step direction d0: perp is always built from d0, regardless of whether
// the streamline is following the major or minor eigenvector.
func turned(s, d0 geom.Vector, p, d geom.Vector) bool {
	perp := geom.NewVector(d0.Y, -d0.X)
	return d0.Dot(d) < 0 && p.Sub(s).Dot(perp) < 0 && d.Dot(perp) > 0
}

// concatenate builds reversed(backward) ++ forward, dropping the
// duplicated seed point shared by both halves.
func concatenate(backward, forward []geom.Vector) []geom.Vector {
	out := make([]geom.Vector, 0, len(backward)+len(forward)-1)
	for i := len(backward) - 1; i >= 1; i-- {
		out = append(out, backward[i])
	}
	out = append(out, forward...)
	return out
}
