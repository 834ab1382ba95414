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

// Package geometry implements distance, intersection and rectangle helpers
// for ink processing.
//
// All functions are total: degenerate input such as zero-length segments
// gives finite results.
package geometry

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Quadrance returns the squared distance between a and b.
func Quadrance(a, b vec.Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b vec.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// DistanceToLine returns the distance of p from the infinite line through
// a and b. If a and b coincide, the distance from p to a is returned.
func DistanceToLine(p, a, b vec.Vec2) float64 {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return Distance(p, a)
	}
	return math.Abs(cross(d, p.Sub(a))) / l
}

// DistanceToSegment returns the distance of p from the closed segment a-b.
func DistanceToSegment(p, a, b vec.Vec2) float64 {
	d := b.Sub(a)
	l2 := d.Dot(d)
	if l2 == 0 {
		return Distance(p, a)
	}
	t := p.Sub(a).Dot(d) / l2
	t = max(0, min(1, t))
	return Distance(p, a.Add(d.Mul(t)))
}

// SegmentsIntersect reports whether the closed segments a0-a1 and b0-b1
// have at least one point in common. Touching endpoints and overlapping
// collinear segments count as intersecting.
func SegmentsIntersect(a0, a1, b0, b1 vec.Vec2) bool {
	if max(a0.X, a1.X) < min(b0.X, b1.X) || max(b0.X, b1.X) < min(a0.X, a1.X) ||
		max(a0.Y, a1.Y) < min(b0.Y, b1.Y) || max(b0.Y, b1.Y) < min(a0.Y, a1.Y) {
		return false
	}

	d1 := orientation(b0, b1, a0)
	d2 := orientation(b0, b1, a1)
	d3 := orientation(a0, a1, b0)
	d4 := orientation(a0, a1, b1)

	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}

	return d1 == 0 && onSegment(b0, b1, a0) ||
		d2 == 0 && onSegment(b0, b1, a1) ||
		d3 == 0 && onSegment(a0, a1, b0) ||
		d4 == 0 && onSegment(a0, a1, b1)
}

// orientation returns the sign of the turn a→b→c: +1 for counter-clockwise,
// -1 for clockwise and 0 for collinear points.
func orientation(a, b, c vec.Vec2) int {
	v := cross(b.Sub(a), c.Sub(a))
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// onSegment reports whether p, known to be collinear with a-b, lies within
// the bounding box of the segment.
func onSegment(a, b, p vec.Vec2) bool {
	return min(a.X, b.X) <= p.X && p.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= p.Y && p.Y <= max(a.Y, b.Y)
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}
