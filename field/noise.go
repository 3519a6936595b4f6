// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/cpmech/citygen/geom"
)

// noiseSampler wraps a deterministic simplex-noise generator seeded at
// field construction. The ecosystem's opensimplex-go package is used
// instead of hand-rolling a permutation table (see DESIGN.md).
type noiseSampler struct {
	n opensimplex.Noise
}

func newNoiseSampler(seed int64) *noiseSampler {
	return &noiseSampler{n: opensimplex.New(seed)}
}

// angleAt returns simplex-noise(floor(p/size)) * angle, the rotational
// perturbation formula used for both the park-local and global noise
// layers.
func (o *noiseSampler) angleAt(p geom.Vector, size, angle float64) float64 {
	gx := math.Floor(p.X / size)
	gy := math.Floor(p.Y / size)
	return o.n.Eval2(gx, gy) * angle
}
