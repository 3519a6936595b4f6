// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements the uniform 2D spatial index used to enforce
// minimum-distance sampling during streamline generation, in the spirit of
// gosl/gm's bucket-grid (gm.Bins), specialised to 2D point sets keyed by an
// explicit cell size dsep rather than a fixed bin count.
package grid

import (
	"math"

	"github.com/cpmech/citygen/geom"
)

type cellKey struct{ I, J int }

// Grid is a uniform 2D array of cells of side DSep, each holding the
// sample points registered in it.
type Grid struct {
	Origin geom.Vector
	DSep   float64
	cells  map[cellKey][]geom.Vector
}

// New returns a Grid with the given cell size and coordinate origin.
func New(origin geom.Vector, dsep float64) *Grid {
	return &Grid{Origin: origin, DSep: dsep, cells: make(map[cellKey][]geom.Vector)}
}

// CellOf returns the integer cell coordinate of world point p.
func (o *Grid) CellOf(p geom.Vector) (i, j int) {
	d := p.Sub(o.Origin)
	return int(math.Floor(d.X / o.DSep)), int(math.Floor(d.Y / o.DSep))
}

// Insert registers p in the cell it falls into.
func (o *Grid) Insert(p geom.Vector) {
	k := o.keyOf(p)
	o.cells[k] = append(o.cells[k], p)
}

func (o *Grid) keyOf(p geom.Vector) cellKey {
	i, j := o.CellOf(p)
	return cellKey{i, j}
}

// Neighbourhood returns every sample stored in the 3x3 block of cells
// surrounding p's cell (including p's own cell).
func (o *Grid) Neighbourhood(p geom.Vector) []geom.Vector {
	ci, cj := o.CellOf(p)
	var out []geom.Vector
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			if pts, ok := o.cells[cellKey{ci + di, cj + dj}]; ok {
				out = append(out, pts...)
			}
		}
	}
	return out
}

// IsValidSample reports whether p is at least sqrt(distSq) away from every
// other point already stored in the surrounding 3x3 neighbourhood.
func (o *Grid) IsValidSample(p geom.Vector, distSq float64) bool {
	for _, q := range o.Neighbourhood(p) {
		if q.ApproxEqual(p, 1e-12) {
			continue
		}
		if p.DistSqTo(q) < distSq {
			return false
		}
	}
	return true
}

// AddExisting copies every sample from another grid into this one,
// decoupling the two grids from that point on (§5: "another generator may
// ingest a snapshot ... after ingestion the two generators' grids are
// independent").
func (o *Grid) AddExisting(other *Grid) {
	for _, pts := range other.cells {
		for _, p := range pts {
			o.Insert(p)
		}
	}
}

// Len returns the total number of stored samples, for diagnostics/tests.
func (o *Grid) Len() int {
	n := 0
	for _, pts := range o.cells {
		n += len(pts)
	}
	return n
}
