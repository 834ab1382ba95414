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

// Package canvas keeps the bitmap which shows all ink.
//
// Strokes are painted incrementally while they are drawn: each new segment
// is composited on top of the existing pixels. The whole bitmap is only
// repainted from the model after strokes have been removed.
//
// Positions are given in logical units with the origin in the top left
// corner and y growing downwards. The bitmap has Scale pixels per logical
// unit.
package canvas

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/ink/geometry"
	"seehuhn.de/go/ink/raster"
)

// Painter selects how strokes are rendered.
type Painter int

const (
	// PainterInk draws each segment as a round-capped line, using the
	// thickness of the segment's second vertex.
	PainterInk Painter = iota

	// PainterDot draws a disk of fixed radius at every vertex.
	PainterDot
)

func (p Painter) String() string {
	switch p {
	case PainterInk:
		return "ink"
	case PainterDot:
		return "dot"
	default:
		return "unknown"
	}
}

// Config holds the rendering settings of a Canvas.
type Config struct {
	// Scale is the number of pixels per logical unit. Values <= 0 mean 1.
	Scale float64

	Painter Painter

	// DotRadius is the disk radius used by PainterDot.
	DotRadius float64

	// Ink is the colour of the strokes. Nil means black.
	Ink color.Color
}

// Canvas is the bitmap holding the rendered strokes.
type Canvas struct {
	width, height float64
	scale         float64

	painter   Painter
	dotRadius float64
	ink       color.RGBA

	img   *image.RGBA
	r     *raster.Rasterizer
	dirty geometry.Bounds

	seg [2]vec.Vec2
}

// New allocates an empty canvas of the given logical size.
func New(width, height float64, cfg Config) *Canvas {
	scale := cfg.Scale
	if !(scale > 0) {
		scale = 1
	}
	ink := cfg.Ink
	if ink == nil {
		ink = colornames.Black
	}
	c := &Canvas{
		width:     width,
		height:    height,
		scale:     scale,
		painter:   cfg.Painter,
		dotRadius: cfg.DotRadius,
		ink:       toRGBA(ink),
	}
	c.img = image.NewRGBA(image.Rect(0, 0, c.pixels(width), c.pixels(height)))
	c.r = raster.NewRasterizer(rect.Rect{})
	c.r.Cap = graphics.LineCapRound
	c.r.Join = graphics.LineJoinRound
	c.resetClip()
	return c
}

func toRGBA(col color.Color) color.RGBA {
	return color.RGBAModel.Convert(col).(color.RGBA)
}

// pixels converts a logical length to a whole number of pixels.
func (c *Canvas) pixels(l float64) int {
	return max(int(math.Ceil(l*c.scale)), 0)
}

func (c *Canvas) resetClip() {
	b := c.img.Bounds()
	c.r.Reset(rect.Rect{URx: float64(b.Dx()), URy: float64(b.Dy())})
	c.r.CTM = matrix.Scale(c.scale, c.scale)
}

// Size returns the logical size of the canvas.
func (c *Canvas) Size() vec.Vec2 {
	return vec.Vec2{X: c.width, Y: c.height}
}

// Bounds returns the canvas area in logical units.
func (c *Canvas) Bounds() rect.Rect {
	return rect.Rect{URx: c.width, URy: c.height}
}

// Scale returns the number of pixels per logical unit.
func (c *Canvas) Scale() float64 {
	return c.scale
}

// Image returns the bitmap. It is owned by the canvas and must not be
// modified.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Dirty returns the area painted since the last call to Present.
func (c *Canvas) Dirty() (rect.Rect, bool) {
	return c.dirty.Rect, c.dirty.Valid
}

func (c *Canvas) markDirty(r rect.Rect) {
	if clipped, ok := geometry.Intersect(r, c.Bounds()); ok {
		c.dirty.AddRect(clipped)
	}
}

// Resize changes the logical height of the canvas. Existing pixels keep
// their position; on shrinking, the bottom of the bitmap is cut off.
// Non-positive and unchanged heights are ignored. The return value
// reports whether the canvas changed.
func (c *Canvas) Resize(height float64) bool {
	if !(height > 0) || height == c.height {
		return false
	}
	old := c.img
	c.img = image.NewRGBA(image.Rect(0, 0, old.Bounds().Dx(), c.pixels(height)))
	draw.Copy(c.img, image.Point{}, old, old.Bounds(), draw.Src, nil)
	c.height = height
	c.resetClip()

	c.dirty = geometry.Bounds{}
	c.markDirty(c.Bounds())
	return true
}

// Present returns a copy of the part of the canvas inside r, at the given
// resolution in pixels per logical unit. If scale differs from the canvas
// scale, the pixels are resampled. The result is nil if r does not
// overlap the canvas; otherwise the dirty area is cleared.
func (c *Canvas) Present(r rect.Rect, scale float64) *image.RGBA {
	area, ok := geometry.Intersect(r, c.Bounds())
	if !ok {
		return nil
	}
	if !(scale > 0) {
		scale = c.scale
	}

	src := image.Rect(
		int(math.Floor(area.LLx*c.scale)), int(math.Floor(area.LLy*c.scale)),
		int(math.Ceil(area.URx*c.scale)), int(math.Ceil(area.URy*c.scale)),
	).Intersect(c.img.Bounds())
	if src.Empty() {
		return nil
	}

	var out *image.RGBA
	if scale == c.scale {
		out = image.NewRGBA(image.Rect(0, 0, src.Dx(), src.Dy()))
		draw.Copy(out, image.Point{}, c.img, src, draw.Src, nil)
	} else {
		f := scale / c.scale
		w := max(int(math.Ceil(float64(src.Dx())*f)), 1)
		h := max(int(math.Ceil(float64(src.Dy())*f)), 1)
		out = image.NewRGBA(image.Rect(0, 0, w, h))
		draw.ApproxBiLinear.Scale(out, out.Bounds(), c.img, src, draw.Src, nil)
	}

	c.dirty = geometry.Bounds{}
	return out
}
