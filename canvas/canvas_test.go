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
	"bytes"
	"fmt"
	"image/color"
	"math"
	"slices"
	"testing"

	"golang.org/x/image/colornames"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ink/stroke"
)

func vtx(x, y, thickness float64) stroke.Vertex {
	return stroke.Vertex{Location: vec.Vec2{X: x, Y: y}, Thickness: thickness}
}

// wave returns a stroke with n vertices and varying thickness.
func wave(x0, y0 float64, n int) *stroke.Stroke {
	s := stroke.New(vtx(x0, y0, 2))
	for i := 1; i < n; i++ {
		t := float64(i)
		s.Append(vtx(x0+3*t, y0+10*math.Sin(t/4), 2+math.Sin(t/3)))
	}
	return s
}

// TestRoundTrip checks that painting strokes incrementally, in uneven
// batches, gives the same pixels as RedrawAll.
func TestRoundTrip(t *testing.T) {
	var strokes []*stroke.Stroke
	strokes = append(strokes,
		wave(10, 30, 40),
		wave(20, 40, 25), // crosses the first one
		stroke.New(vtx(100, 100, 6)),
		wave(5, 150, 2),
	)

	for _, painter := range []Painter{PainterInk, PainterDot} {
		for _, scale := range []float64{1, 2, 1.5} {
			t.Run(fmt.Sprintf("%s-%g", painter, scale), func(t *testing.T) {
				cfg := Config{Scale: scale, Painter: painter, DotRadius: 3}
				inc := New(200, 200, cfg)
				for _, s := range strokes {
					// replay the stroke as it was drawn: batches of growing size
					partial := stroke.New(s.At(0))
					inc.PaintIncremental(partial, 0)
					for i, step := 1, 1; i < s.Len(); i, step = i+step, step+1 {
						start := partial.Len()
						for j := i; j < min(i+step, s.Len()); j++ {
							partial.Append(s.At(j))
						}
						inc.PaintIncremental(partial, start)
					}
					inc.PaintCommitted(partial)
				}

				full := New(200, 200, cfg)
				full.RedrawAll(slices.Values(strokes))

				if !bytes.Equal(inc.Image().Pix, full.Image().Pix) {
					t.Error("incremental painting differs from RedrawAll")
				}
				if nonZero(full.Image().Pix) == 0 {
					t.Error("nothing was painted")
				}
			})
		}
	}
}

func nonZero(pix []byte) int {
	n := 0
	for _, b := range pix {
		if b != 0 {
			n++
		}
	}
	return n
}

func TestPaintIncrementalDirty(t *testing.T) {
	c := New(100, 80, Config{})
	s := stroke.New(vtx(10, 10, 2))
	s.Append(vtx(30, 10, 4))

	r, ok := c.PaintIncremental(s, 0)
	want := rect.Rect{LLx: 8, LLy: 8, URx: 32, URy: 12}
	if !ok || r != want {
		t.Fatalf("PaintIncremental = %v, %t, want %v", r, ok, want)
	}
	if d, ok := c.Dirty(); !ok || d != want {
		t.Errorf("dirty %v, want %v", d, want)
	}

	// nothing new to paint
	if _, ok := c.PaintIncremental(s, 2); ok {
		t.Error("PaintIncremental without new vertices painted")
	}

	s.Append(vtx(30, 50, 2))
	r, _ = c.PaintIncremental(s, 2)
	if want := (rect.Rect{LLx: 29, LLy: 9, URx: 31, URy: 51}); r != want {
		t.Errorf("second batch rect %v, want %v", r, want)
	}
	if d, _ := c.Dirty(); d != (rect.Rect{LLx: 8, LLy: 8, URx: 32, URy: 51}) {
		t.Errorf("accumulated dirty %v", d)
	}

	// pixel on the first segment is black and opaque
	if got := c.Image().RGBAAt(20, 10); got != (color.RGBA{A: 255}) {
		t.Errorf("pixel (20,10) = %v", got)
	}
}

func TestPaintNonPositiveThickness(t *testing.T) {
	c := New(50, 50, Config{})
	s := stroke.New(vtx(10, 10, -1))
	s.Append(vtx(40, 40, -1))
	if _, ok := c.PaintIncremental(s, 0); ok {
		t.Error("negative thickness painted")
	}
	if _, ok := c.PaintCommitted(stroke.New(vtx(5, 5, 0))); ok {
		t.Error("zero thickness dot painted")
	}
	if nonZero(c.Image().Pix) != 0 {
		t.Error("bitmap changed")
	}
}

func TestPaintCommitted(t *testing.T) {
	c := New(50, 50, Config{})
	dot := stroke.New(vtx(20, 20, 4))
	if _, ok := c.PaintIncremental(dot, 0); ok {
		t.Error("lone vertex painted incrementally")
	}
	r, ok := c.PaintCommitted(dot)
	if want := (rect.Rect{LLx: 18, LLy: 18, URx: 22, URy: 22}); !ok || r != want {
		t.Errorf("PaintCommitted = %v, %t", r, ok)
	}

	line := stroke.New(vtx(1, 1, 2))
	line.Append(vtx(5, 1, 2))
	if _, ok := c.PaintCommitted(line); ok {
		t.Error("PaintCommitted repainted a line")
	}
}

func TestHighlight(t *testing.T) {
	c := New(60, 60, Config{})
	s := stroke.New(vtx(10, 30, 4))
	s.Append(vtx(50, 30, 4))
	c.PaintIncremental(s, 0)

	c.Highlight(s, colornames.Red)
	if got := c.Image().RGBAAt(30, 30); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("highlighted pixel %v", got)
	}

	c.RedrawAll(slices.Values([]*stroke.Stroke{s}))
	if got := c.Image().RGBAAt(30, 30); got != (color.RGBA{A: 255}) {
		t.Errorf("pixel after redraw %v", got)
	}
}

func TestRedrawAllClears(t *testing.T) {
	c := New(60, 60, Config{})
	s := stroke.New(vtx(10, 30, 4))
	s.Append(vtx(50, 30, 4))
	c.PaintIncremental(s, 0)
	c.Present(c.Bounds(), 1)

	c.RedrawAll(slices.Values([]*stroke.Stroke(nil)))
	if nonZero(c.Image().Pix) != 0 {
		t.Error("RedrawAll without strokes left pixels")
	}
	if d, ok := c.Dirty(); !ok || d != c.Bounds() {
		t.Errorf("dirty %v, %t, want whole canvas", d, ok)
	}
}

func TestResize(t *testing.T) {
	c := New(40, 80, Config{Scale: 2})
	s := stroke.New(vtx(5, 70, 4))
	s.Append(vtx(35, 70, 4))
	c.PaintIncremental(s, 0)
	before := c.Image().RGBAAt(40, 140)
	if before.A != 255 {
		t.Fatalf("stroke not painted: %v", before)
	}

	if !c.Resize(160) {
		t.Fatal("grow failed")
	}
	if b := c.Image().Bounds(); b.Dx() != 80 || b.Dy() != 320 {
		t.Errorf("bitmap %v after grow", b)
	}
	if got := c.Image().RGBAAt(40, 140); got != before {
		t.Errorf("content moved: %v", got)
	}
	if c.Size() != (vec.Vec2{X: 40, Y: 160}) {
		t.Errorf("size %v", c.Size())
	}

	for _, h := range []float64{160, 0, -40, math.NaN()} {
		if c.Resize(h) {
			t.Errorf("Resize(%g) succeeded", h)
		}
	}

	if !c.Resize(40) {
		t.Fatal("shrink failed")
	}
	if b := c.Image().Bounds(); b.Dy() != 80 {
		t.Errorf("bitmap %v after shrink", b)
	}
	if nonZero(c.Image().Pix) != 0 {
		t.Error("stroke below the new height survived")
	}

	// painting after a resize uses the new clip rectangle
	s2 := stroke.New(vtx(5, 35, 2))
	s2.Append(vtx(35, 35, 2))
	c.PaintIncremental(s2, 0)
	if got := c.Image().RGBAAt(40, 70); got.A == 0 {
		t.Error("no ink after resize")
	}
}

func TestPresent(t *testing.T) {
	c := New(100, 80, Config{})
	s := stroke.New(vtx(10, 10, 4))
	s.Append(vtx(90, 70, 4))
	c.PaintIncremental(s, 0)

	if img := c.Present(rect.Rect{LLx: 200, LLy: 0, URx: 300, URy: 80}, 1); img != nil {
		t.Error("Present outside the canvas returned an image")
	}
	if _, ok := c.Dirty(); !ok {
		t.Error("empty Present cleared the dirty area")
	}

	img := c.Present(rect.Rect{LLx: -10, LLy: -10, URx: 50, URy: 40}, 1)
	if img == nil || img.Bounds().Dx() != 50 || img.Bounds().Dy() != 40 {
		t.Fatalf("Present returned %v", img)
	}
	if _, ok := c.Dirty(); ok {
		t.Error("dirty area not cleared")
	}
	for y := range 40 {
		for x := range 50 {
			if img.RGBAAt(x, y) != c.Image().RGBAAt(x, y) {
				t.Fatalf("pixel (%d,%d) differs", x, y)
			}
		}
	}

	img = c.Present(c.Bounds(), 2)
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 160 {
		t.Errorf("scaled image %v", b)
	}
	if got := img.RGBAAt(100, 80); got.A < 250 {
		t.Errorf("scaled image: centre pixel %v", got)
	}
}

func TestHeightPolicy(t *testing.T) {
	// a vertex five units above the bottom edge
	h, ok := GrowHeight(400, 395, 20, 40)
	if !ok || h != 440 {
		t.Errorf("GrowHeight = %g, %t, want 440, true", h, ok)
	}
	if h, ok := GrowHeight(400, 300, 20, 40); ok || h != 400 {
		t.Errorf("GrowHeight = %g, %t, want 400, false", h, ok)
	}
	if h, ok := GrowHeight(400, 380, 20, 40); ok || h != 400 {
		t.Errorf("GrowHeight at the margin = %g, %t, want 400, false", h, ok)
	}

	cases := []struct {
		bottom     float64
		hasContent bool
		want       float64
	}{
		{0, false, 40},
		{0, true, 40},
		{10, true, 40},
		{20, true, 40},
		{21, true, 80},
		{395, true, 440},
	}
	for _, tc := range cases {
		if got := FitHeight(tc.bottom, tc.hasContent, 20, 40); got != tc.want {
			t.Errorf("FitHeight(%g, %t) = %g, want %g", tc.bottom, tc.hasContent, got, tc.want)
		}
	}
}

// TestResizeMonotonicity grows the canvas for a stroke below the margin and
// shrinks it again after the stroke is gone.
func TestResizeMonotonicity(t *testing.T) {
	const margin, lh = 20.0, 40.0
	for bottom := 0.0; bottom < 300; bottom += 7 {
		h0 := FitHeight(bottom, true, margin, lh)
		for y := h0 - margin; y < h0+100; y += 11 {
			h1, _ := GrowHeight(h0, max(y, bottom), margin, lh)
			if h1 < h0 || math.Mod(h1, lh) != 0 {
				t.Fatalf("GrowHeight(%g, %g) = %g", h0, y, h1)
			}
			if h2 := FitHeight(bottom, true, margin, lh); h2 != h0 {
				t.Fatalf("bottom %g, y %g: height %g after shrink, want %g", bottom, y, h2, h0)
			}
		}
	}
}

func TestPage(t *testing.T) {
	c := New(80, 80, Config{})
	s := stroke.New(vtx(10, 20, 4))
	s.Append(vtx(70, 20, 4))
	c.PaintIncremental(s, 0)

	page := c.Page(40, colornames.White, RuleColor)
	if got := page.RGBAAt(40, 10); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("paper pixel %v", got)
	}
	if got := page.RGBAAt(40, 20); got != (color.RGBA{A: 255}) {
		t.Errorf("ink pixel %v", got)
	}
	// the rule covers half of pixel row 38 in each line
	for _, y := range []int{38, 78} {
		got := page.RGBAAt(40, y)
		if got.A != 255 || got.R >= 255 || got.R <= RuleColor.R || got.B < got.R {
			t.Errorf("rule pixel (40,%d) = %v", y, got)
		}
	}

	plain := c.Page(40, colornames.White, nil)
	if got := plain.RGBAAt(40, 38); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("unruled page pixel %v", got)
	}
}
