// seehuhn.de/go/ink - pressure sensitive ink for stylus input
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package stroke holds the ink model: vertices, strokes and the store
// which owns all committed strokes.
package stroke

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ink/geometry"
)

// Vertex is one point of a stroke.
type Vertex struct {
	Location  vec.Vec2
	Thickness float64
}

// Stroke is an append-only polyline with per-vertex thickness.
// A stroke always has at least one vertex.
type Stroke struct {
	vertices     []Vertex
	maxThickness float64
	maxSegment   float64
	bounds       rect.Rect
}

// New starts a stroke at the given vertex.
func New(first Vertex) *Stroke {
	return &Stroke{
		vertices:     []Vertex{first},
		maxThickness: first.Thickness,
		bounds:       geometry.PointRect(first.Location),
	}
}

// Append adds a vertex at the end of the stroke.
func (s *Stroke) Append(v Vertex) {
	last := s.vertices[len(s.vertices)-1]
	s.vertices = append(s.vertices, v)
	s.maxThickness = max(s.maxThickness, v.Thickness)
	s.maxSegment = max(s.maxSegment, geometry.Distance(last.Location, v.Location))
	s.bounds = geometry.Union(s.bounds, geometry.PointRect(v.Location))
}

// Len returns the number of vertices.
func (s *Stroke) Len() int {
	return len(s.vertices)
}

// At returns vertex i.
func (s *Stroke) At(i int) Vertex {
	return s.vertices[i]
}

// Last returns the most recently appended vertex.
func (s *Stroke) Last() Vertex {
	return s.vertices[len(s.vertices)-1]
}

// Vertices returns the vertices of the stroke. The slice is shared with
// the stroke and must not be modified.
func (s *Stroke) Vertices() []Vertex {
	return s.vertices
}

// MaxThickness returns the largest thickness of any vertex.
func (s *Stroke) MaxThickness() float64 {
	return s.maxThickness
}

// MaxSegment returns the length of the longest segment.
func (s *Stroke) MaxSegment() float64 {
	return s.maxSegment
}

// Bounds returns the bounding box of the vertex locations.
func (s *Stroke) Bounds() rect.Rect {
	return s.bounds
}

// Frame returns the area covered by the painted stroke: the bounding box
// of the vertex locations, grown by half the maximal thickness.
func (s *Stroke) Frame() rect.Rect {
	return geometry.Grow(s.bounds, max(s.maxThickness, 0)/2)
}

// Overlaps reports whether p is within the given distance of the stroke.
// A stroke with a single vertex is treated as a point.
func (s *Stroke) Overlaps(p vec.Vec2, radius float64) bool {
	if len(s.vertices) == 1 {
		return geometry.Distance(p, s.vertices[0].Location) <= radius
	}
	for i := 1; i < len(s.vertices); i++ {
		a := s.vertices[i-1].Location
		b := s.vertices[i].Location
		if geometry.DistanceToSegment(p, a, b) <= radius {
			return true
		}
	}
	return false
}

// Crosses reports whether the segment a-b intersects the stroke.
func (s *Stroke) Crosses(a, b vec.Vec2) bool {
	if len(s.vertices) == 1 {
		v := s.vertices[0].Location
		return geometry.SegmentsIntersect(a, b, v, v)
	}
	for i := 1; i < len(s.vertices); i++ {
		if geometry.SegmentsIntersect(a, b, s.vertices[i-1].Location, s.vertices[i].Location) {
			return true
		}
	}
	return false
}
