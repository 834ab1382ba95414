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

package canvas

import (
	"image"
	"image/color"
	"iter"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ink/geometry"
	"seehuhn.de/go/ink/raster"
	"seehuhn.de/go/ink/stroke"
)

// PaintIncremental paints the part of s which starts at vertex start, on
// top of the existing bitmap. With PainterInk this is every segment
// ending at a vertex >= start; vertices before start are never repainted.
// A stroke consisting of a single vertex is left to PaintCommitted.
//
// The returned rectangle covers all painted pixels and has been added to
// the dirty area. The second return value is false if nothing was painted.
func (c *Canvas) PaintIncremental(s *stroke.Stroke, start int) (rect.Rect, bool) {
	b := c.paintFrom(s, start, c.ink)
	if b.Valid {
		c.markDirty(b.Rect)
	}
	return b.Rect, b.Valid
}

// PaintCommitted completes the painting of a finished stroke. Only a
// stroke with a single vertex needs this: it is painted as a dot, as
// RedrawAll would.
func (c *Canvas) PaintCommitted(s *stroke.Stroke) (rect.Rect, bool) {
	if s.Len() != 1 || c.painter == PainterDot {
		return rect.Rect{}, false
	}
	b := c.paintLone(s.At(0), c.ink)
	if b.Valid {
		c.markDirty(b.Rect)
	}
	return b.Rect, b.Valid
}

// Highlight repaints s in the given colour, on top of the bitmap.
func (c *Canvas) Highlight(s *stroke.Stroke, col color.Color) (rect.Rect, bool) {
	rgba := toRGBA(col)
	b := c.paintFrom(s, 0, rgba)
	if s.Len() == 1 && c.painter == PainterInk {
		b.Merge(c.paintLone(s.At(0), rgba))
	}
	if b.Valid {
		c.markDirty(b.Rect)
	}
	return b.Rect, b.Valid
}

// RedrawAll clears the bitmap and paints all strokes in order.
// The whole canvas becomes dirty.
func (c *Canvas) RedrawAll(strokes iter.Seq[*stroke.Stroke]) {
	clear(c.img.Pix)
	for s := range strokes {
		c.paintFrom(s, 0, c.ink)
		if s.Len() == 1 && c.painter == PainterInk {
			c.paintLone(s.At(0), c.ink)
		}
	}
	c.dirty = geometry.Bounds{}
	c.markDirty(c.Bounds())
}

// paintFrom paints the vertices of s from start on and returns the
// affected area.
func (c *Canvas) paintFrom(s *stroke.Stroke, start int, col color.RGBA) geometry.Bounds {
	var b geometry.Bounds
	switch c.painter {
	case PainterDot:
		for i := max(start, 0); i < s.Len(); i++ {
			b.Merge(c.paintDot(s.At(i).Location, c.dotRadius, col))
		}
	default:
		var maxThickness float64
		for i := max(start, 1); i < s.Len(); i++ {
			v0, v1 := s.At(i-1), s.At(i)
			if c.paintSegment(v0.Location, v1.Location, v1.Thickness, col) {
				b.AddPoint(v0.Location)
				b.AddPoint(v1.Location)
				maxThickness = max(maxThickness, v1.Thickness)
			}
		}
		if b.Valid {
			b.Rect = geometry.Grow(b.Rect, maxThickness/2)
		}
	}
	return b
}

// paintLone paints a stroke consisting of the single vertex v.
func (c *Canvas) paintLone(v stroke.Vertex, col color.RGBA) geometry.Bounds {
	return c.paintDot(v.Location, v.Thickness/2, col)
}

// paintSegment draws a round-capped line from a to b. It reports whether
// anything was drawn.
func (c *Canvas) paintSegment(a, b vec.Vec2, thickness float64, col color.RGBA) bool {
	if !(thickness > 0) {
		return false
	}
	c.seg[0], c.seg[1] = a, b
	c.r.Width = thickness
	c.r.Stroke(c.seg[:], compositor(c.img, col))
	return true
}

func (c *Canvas) paintDot(center vec.Vec2, radius float64, col color.RGBA) geometry.Bounds {
	if !(radius > 0) {
		return geometry.Bounds{}
	}
	c.r.Width = 2 * radius
	c.r.Dot(center, compositor(c.img, col))
	return geometry.Bounds{Rect: geometry.Grow(geometry.PointRect(center), radius), Valid: true}
}

// compositor returns an emit function which blends col into dst using the
// source-over operator, with the coverage as mask.
func compositor(dst *image.RGBA, col color.RGBA) raster.EmitFunc {
	sr, sg, sb, sa := float32(col.R), float32(col.G), float32(col.B), float32(col.A)
	return func(y, xMin int, coverage []float32) {
		row := dst.Pix[y*dst.Stride+4*xMin:]
		for i, cov := range coverage {
			p := row[4*i : 4*i+4 : 4*i+4]
			k := 1 - sa*cov/255
			p[0] = blend(sr*cov, p[0], k)
			p[1] = blend(sg*cov, p[1], k)
			p[2] = blend(sb*cov, p[2], k)
			p[3] = blend(sa*cov, p[3], k)
		}
	}
}

func blend(src float32, dst uint8, k float32) uint8 {
	v := src + float32(dst)*k + 0.5
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
