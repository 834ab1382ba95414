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

package geometry

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Ink coordinates have the origin at the top left with y growing
// downwards. In a rect.Rect, LLx/LLy hold the minimum and URx/URy the
// maximum coordinates.

// PointRect returns the zero-size rectangle at p.
func PointRect(p vec.Vec2) rect.Rect {
	return rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
}

// Union returns the smallest rectangle containing a and b.
func Union(a, b rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: min(a.LLx, b.LLx),
		LLy: min(a.LLy, b.LLy),
		URx: max(a.URx, b.URx),
		URy: max(a.URy, b.URy),
	}
}

// Grow returns r enlarged by d on every side.
func Grow(r rect.Rect, d float64) rect.Rect {
	return rect.Rect{LLx: r.LLx - d, LLy: r.LLy - d, URx: r.URx + d, URy: r.URy + d}
}

// Intersect returns the common part of a and b. The second return value is
// false if the rectangles do not overlap in a region of positive area.
func Intersect(a, b rect.Rect) (rect.Rect, bool) {
	r := rect.Rect{
		LLx: max(a.LLx, b.LLx),
		LLy: max(a.LLy, b.LLy),
		URx: min(a.URx, b.URx),
		URy: min(a.URy, b.URy),
	}
	if r.LLx >= r.URx || r.LLy >= r.URy {
		return rect.Rect{}, false
	}
	return r, true
}

// Bounds accumulates a bounding rectangle. The zero value is empty.
type Bounds struct {
	Rect  rect.Rect
	Valid bool
}

// AddPoint extends the bounds to include p.
func (b *Bounds) AddPoint(p vec.Vec2) {
	b.AddRect(PointRect(p))
}

// AddRect extends the bounds to include r.
func (b *Bounds) AddRect(r rect.Rect) {
	if !b.Valid {
		b.Rect = r
		b.Valid = true
		return
	}
	b.Rect = Union(b.Rect, r)
}

// Merge extends the bounds to include other.
func (b *Bounds) Merge(other Bounds) {
	if other.Valid {
		b.AddRect(other.Rect)
	}
}
