// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package export writes a citymap.Map as a minimal GeoJSON-like
// FeatureCollection. A raster renderer is deliberately out of scope; the
// CLI driver needs to write something for a generation run to be useful
// end to end, and GeoJSON needs no drawing code of its own. This walks
// the Map's already-public fields and performs no geometry of its own.
package export

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/citygen/citymap"
	"github.com/cpmech/citygen/geom"
)

// Feature is one GeoJSON-like feature: a geometry plus a flat property
// bag ("kind" is "road", "park" or "coastline"; roads add their tier,
// parks their index).
type Feature struct {
	Type       string            `json:"type"`
	Geometry   Geometry          `json:"geometry"`
	Properties map[string]string `json:"properties"`
}

// Geometry is a LineString or Polygon coordinate array, tagged by Kind.
type Geometry struct {
	Kind        string      `json:"kind"` // "LineString" or "Polygon"
	Coordinates [][]float64 `json:"coordinates"`
}

// FeatureCollection is the top-level document written to disk.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

func lineString(pts []geom.Vector, kind string, props map[string]string) Feature {
	coords := make([][]float64, len(pts))
	for i, p := range pts {
		coords[i] = []float64{p.X, p.Y}
	}
	return Feature{Type: "Feature", Geometry: Geometry{Kind: kind, Coordinates: coords}, Properties: props}
}

// Build assembles a FeatureCollection from a generated Map: one
// LineString feature per road/path, one Polygon feature per park, one
// Polygon feature for the coastline.
func Build(m *citymap.Map) *FeatureCollection {
	fc := &FeatureCollection{Type: "FeatureCollection"}

	for _, r := range m.Roads {
		fc.Features = append(fc.Features, lineString(r.Points, "LineString", map[string]string{"kind": "road", "tier": r.Type}))
	}
	for i, park := range m.Parks {
		fc.Features = append(fc.Features, lineString(closedRing(park.Points), "Polygon", map[string]string{"kind": "park", "index": itoa(i)}))
	}
	if m.CityShape != nil {
		fc.Features = append(fc.Features, lineString(closedRing(m.CityShape.Points), "Polygon", map[string]string{"kind": "coastline"}))
	}
	return fc
}

func closedRing(pts []geom.Vector) []geom.Vector {
	if len(pts) == 0 || pts[0] == pts[len(pts)-1] {
		return pts
	}
	return append(append([]geom.Vector{}, pts...), pts[0])
}

func itoa(i int) string {
	return io.Sf("%d", i)
}

// WriteFile marshals fc as indented JSON and writes it to path.
func WriteFile(path string, fc *FeatureCollection) {
	buf, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		chk.Panic("export: cannot marshal feature collection: %v", err)
	}
	io.WriteFileSD(filepath.Dir(path), filepath.Base(path), string(buf))
}
