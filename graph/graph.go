// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package graph builds the planar graph derived from a set of streamlines:
// grid snapping, intersection extraction, and minimal-face enumeration.
// Grounded on fem/domain.go's Vid2node []*Node (a stable-id-indexed node
// table) and the insertion-order discipline gofem's equation numbering
// requires (Domain.SetEqs).
package graph

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/citygen/geom"
)

// GridResolution and HalfGridResolution are the snap-grid constants used
// to quantise streamline samples into graph nodes.
const (
	GridResolution     = 0.75
	HalfGridResolution = 0.375
)

// Snap quantises p onto the grid of side GridResolution.
func Snap(p geom.Vector) geom.Vector {
	return geom.NewVector(snap1(p.X), snap1(p.Y))
}

func snap1(x float64) float64 {
	return floor(x/GridResolution) * GridResolution
}

func floor(x float64) float64 {
	i := int64(x)
	if x < 0 && float64(i) != x {
		i--
	}
	return float64(i)
}

// Node is a graph vertex with a stable insertion-order ID, its snapped
// position, and an insertion-ordered map of neighbour -> connecting path.
type Node struct {
	ID        int
	Pos       geom.Vector
	neighOrd  []*Node
	neighIdx  map[*Node]int
	neighPath map[*Node][]geom.Vector
}

func newNode(id int, pos geom.Vector) *Node {
	return &Node{ID: id, Pos: pos, neighIdx: map[*Node]int{}, neighPath: map[*Node][]geom.Vector{}}
}

// Neighbours returns this node's neighbours in insertion order.
func (o *Node) Neighbours() []*Node {
	return o.neighOrd
}

// PathTo returns the stored path to neighbour n, or nil if n is not a
// neighbour.
func (o *Node) PathTo(n *Node) []geom.Vector {
	return o.neighPath[n]
}

// HasNeighbour reports whether n is a neighbour of o.
func (o *Node) HasNeighbour(n *Node) bool {
	_, ok := o.neighIdx[n]
	return ok
}

// addNeighbour links o -> n with the given path (o's own copy, starting at
// o.Pos). A node must never be its own neighbour.
func (o *Node) addNeighbour(n *Node, path []geom.Vector) {
	if n == o {
		chk.Panic("node %d cannot be its own neighbour", o.ID)
	}
	if o.HasNeighbour(n) {
		return
	}
	o.neighIdx[n] = len(o.neighOrd)
	o.neighOrd = append(o.neighOrd, n)
	o.neighPath[n] = path
}

// Graph is an insertion-ordered collection of Nodes keyed by snap-grid
// position, with symmetric neighbour edges.
type Graph struct {
	order []*Node
	byPos map[geom.Vector]*Node
	loops [][]*Node
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{byPos: map[geom.Vector]*Node{}}
}

// Nodes returns every node in insertion order.
func (o *Graph) Nodes() []*Node {
	return o.order
}

// NodeAt returns the node at grid position p (already snapped), or nil.
func (o *Graph) NodeAt(p geom.Vector) *Node {
	return o.byPos[p]
}

// getOrCreate returns the node at snapped position p, creating it (with
// the next insertion-order ID) if absent.
func (o *Graph) getOrCreate(p geom.Vector) *Node {
	if n, ok := o.byPos[p]; ok {
		return n
	}
	n := newNode(len(o.order), p)
	o.order = append(o.order, n)
	o.byPos[p] = n
	return n
}

// Link adds a symmetric edge between the nodes at snapped positions a and
// b, with path being the ordered list of grid points from a to b
// (inclusive). The stored paths are each endpoint's own copy, reversed for
// the other endpoint, never a shared mutable slice.
func (o *Graph) Link(a, b *Node, path []geom.Vector) {
	if a == b {
		return
	}
	a.addNeighbour(b, append([]geom.Vector{}, path...))
	rev := make([]geom.Vector, len(path))
	for i, p := range path {
		rev[len(path)-1-i] = p
	}
	b.addNeighbour(a, rev)
}

// Loops returns the closed loops found by the last FindClosedLoops call.
func (o *Graph) Loops() [][]*Node {
	return o.loops
}
