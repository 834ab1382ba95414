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

package ink

import (
	"image"
	"image/color"
	"iter"
	"math"

	"golang.org/x/image/colornames"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ink/canvas"
	"seehuhn.de/go/ink/capture"
	"seehuhn.de/go/ink/erase"
	"seehuhn.de/go/ink/geometry"
	"seehuhn.de/go/ink/grid"
	"seehuhn.de/go/ink/stroke"
)

// Update describes the effect of one event on a Surface.
type Update struct {
	// Dirty is the area, in logical units, which must be repainted.
	// Only valid if HasDirty is set.
	Dirty    rect.Rect
	HasDirty bool

	// ContentSize is the size the view showing the drawing should have.
	// CanvasSize is the size of the bitmap, a whole number of lines high.
	ContentSize vec.Vec2
	CanvasSize  vec.Vec2

	// Resized is set if ContentSize or CanvasSize changed.
	Resized bool

	// HeightCommitted is set when a gesture which changed the height has
	// finished, so that the final height can be recorded.
	HeightCommitted bool

	// Erased is the number of strokes removed by the event.
	Erased int

	// Committed is the handle of the stroke finished by the event, or 0.
	Committed stroke.Handle
}

// Surface is a drawing area for stylus input.
type Surface struct {
	cfg   Config
	ready bool

	store  stroke.Store
	grid   *grid.Grid
	canvas *canvas.Canvas
	filter capture.Filter
	eraser *erase.Engine

	eraserMode bool

	// state of the current gesture
	erasing bool
	pointer int
	grew    bool

	contentHeight float64
	minHeight     float64
}

// New creates a Surface. If cfg.Width is zero, the surface is set up
// when the first event arrives, using the view size of that event.
func New(cfg Config) *Surface {
	s := &Surface{cfg: cfg.withDefaults()}
	s.filter = capture.Filter{
		MinQuadrance: s.cfg.MinQuadrance,
		Thickness: capture.Thickness{
			Base:      s.cfg.BaseThickness,
			Reference: s.cfg.ReferencePressure,
			Weight:    s.cfg.PressureWeight,
		},
	}
	if s.cfg.Width > 0 {
		s.init(vec.Vec2{})
	}
	return s
}

// init allocates the canvas and the grid. It fails if no width is known.
func (s *Surface) init(view vec.Vec2) bool {
	width := s.cfg.Width
	if !(width > 0) {
		width = view.X
	}
	if !(width > 0) || math.IsInf(width, 0) {
		return false
	}
	height := s.cfg.Height
	if !(height > 0) {
		height = view.Y
	}
	lh := s.cfg.LineHeight
	lines := math.Ceil(height / lh)
	if !(lines >= 1) || math.IsInf(lines, 0) {
		lines = 1
	}
	height = lines * lh

	s.cfg.Width = width
	s.minHeight = height
	s.contentHeight = height
	s.grid = grid.New(width, height, lh)
	s.canvas = canvas.New(width, height, canvas.Config{
		Scale:     s.cfg.Scale,
		Painter:   s.cfg.Painter,
		DotRadius: s.cfg.DotRadius,
		Ink:       s.cfg.Ink,
	})
	s.eraser = erase.New(&s.store, s.grid, erase.Options{
		Radius:       s.cfg.EraseRadius,
		MinQuadrance: s.cfg.MinQuadrance,
		Linear:       s.cfg.LinearErase,
	})
	s.ready = true

	Logger().Debug("ink: surface ready",
		"width", width, "height", height,
		"rows", s.grid.Rows(), "cols", s.grid.Cols())
	return true
}

// SetEraserMode selects between drawing and erasing. The mode is read when
// a gesture begins; a gesture in progress keeps its mode.
func (s *Surface) SetEraserMode(on bool) {
	s.eraserMode = on
}

// EraserMode reports whether new gestures erase.
func (s *Surface) EraserMode() bool {
	return s.eraserMode
}

func (s *Surface) busy() bool {
	return s.filter.Active() || s.eraser.Active()
}

// Handle processes one batch of pointer input.
func (s *Surface) Handle(ev capture.Event) Update {
	var u Update
	if !s.ready && !s.init(ev.ViewSize) {
		Logger().Debug("ink: event ignored, view has no size", "phase", ev.Phase)
		return u
	}

	if ev.Phase == capture.Began && !s.busy() {
		s.erasing = s.eraserMode
		s.grew = false
	}

	var dirty geometry.Bounds
	if s.erasing {
		s.handleErase(&ev, &u, &dirty)
	} else {
		s.handleDraw(&ev, &u, &dirty)
	}

	if dirty.Valid {
		u.Dirty, u.HasDirty = geometry.Intersect(dirty.Rect, s.canvas.Bounds())
	}
	u.CanvasSize = s.canvas.Size()
	u.ContentSize = vec.Vec2{X: s.cfg.Width, Y: s.contentHeight}
	return u
}

func (s *Surface) handleDraw(ev *capture.Event, u *Update, dirty *geometry.Bounds) {
	res := s.filter.Handle(ev)
	st := res.Stroke
	if st == nil {
		Logger().Debug("ink: event ignored", "phase", ev.Phase, "pointer", ev.Pointer)
		return
	}
	if res.Began {
		Logger().Debug("ink: stroke begins", "pointer", ev.Pointer, "at", st.At(0).Location)
	}

	// The canvas must be large enough before the new vertices are painted.
	if res.HasBounds && s.grow(res.Bounds.URy, u) {
		dirty.AddRect(s.canvas.Bounds())
	}
	if r, ok := s.canvas.PaintIncremental(st, res.Start); ok {
		dirty.AddRect(r)
	}

	if res.Committed {
		h := s.store.Add(st)
		s.grid.Insert(h, st)
		if r, ok := s.canvas.PaintCommitted(st); ok {
			dirty.AddRect(r)
		}
		u.Committed = h
		u.HeightCommitted = s.grew
		s.grew = false
		Logger().Debug("ink: stroke committed",
			"handle", h, "vertices", st.Len(), "cancelled", ev.Phase == capture.Cancelled)
	}
}

func (s *Surface) handleErase(ev *capture.Event, u *Update, dirty *geometry.Bounds) {
	samples := ev.Samples()
	points := make([]vec.Vec2, len(samples))
	for i, sample := range samples {
		points[i] = sample.Location
	}

	if ev.Phase == capture.Began {
		if s.eraser.Active() || len(points) == 0 {
			Logger().Debug("ink: eraser event ignored", "phase", ev.Phase, "pointer", ev.Pointer)
			return
		}
		s.pointer = ev.Pointer
		Logger().Debug("ink: eraser begins", "pointer", ev.Pointer, "at", points[0])
		s.erased(s.eraser.Begin(points[0]), u, dirty)
		s.erased(s.eraser.Erase(points[1:]), u, dirty)
		return
	}

	if !s.eraser.Active() || ev.Pointer != s.pointer {
		Logger().Debug("ink: eraser event ignored", "phase", ev.Phase, "pointer", ev.Pointer)
		return
	}
	s.erased(s.eraser.Erase(points), u, dirty)

	switch ev.Phase {
	case capture.Ended, capture.Cancelled:
		total := s.eraser.End()
		Logger().Debug("ink: eraser ends", "erased", len(total.Erased))
		if !total.ErasedAny {
			return
		}
		s.shrink(u)
		s.canvas.RedrawAll(s.store.Strokes())
		dirty.AddRect(s.canvas.Bounds())
	}
}

// erased accounts for strokes removed by the eraser.
func (s *Surface) erased(res erase.Result, u *Update, dirty *geometry.Bounds) {
	if !res.ErasedAny {
		return
	}
	u.Erased += len(res.Erased)
	// without highlighting, the pixels only change when the gesture ends
	if s.cfg.HighlightErased {
		for _, st := range res.Strokes {
			if r, ok := s.canvas.Highlight(st, s.cfg.Highlight); ok {
				dirty.AddRect(r)
			}
		}
	}
	Logger().Debug("ink: strokes erased", "handles", res.Erased)
}

// grow enlarges the drawing so that there is room for ink down to y.
// The return value reports whether the canvas was reallocated.
func (s *Surface) grow(y float64, u *Update) bool {
	margin := s.cfg.Margin
	resized := false
	if h, ok := canvas.GrowHeight(s.canvas.Size().Y, y, margin, s.cfg.LineHeight); ok {
		resized = s.resize(h)
	}
	if bottom := y + margin; bottom > s.contentHeight && bottom <= s.canvas.Size().Y {
		s.contentHeight = bottom
		u.Resized = true
		s.grew = true
	}
	if resized {
		u.Resized = true
		s.grew = true
	}
	return resized
}

// shrink fits the drawing to the remaining strokes, but never below the
// initial height.
func (s *Surface) shrink(u *Update) {
	b := s.store.Bounds()
	lh, margin := s.cfg.LineHeight, s.cfg.Margin
	h := max(canvas.FitHeight(b.Rect.URy, b.Valid, margin, lh), s.minHeight)
	content := s.minHeight
	if b.Valid {
		content = max(content, b.Rect.URy+margin)
	}

	resized := s.resize(h)
	if resized || content != s.contentHeight {
		s.contentHeight = content
		u.Resized = true
		u.HeightCommitted = true
	}
}

// resize changes the height of the canvas and the grid together.
func (s *Surface) resize(height float64) bool {
	if math.IsInf(height, 0) {
		return false
	}
	old := s.canvas.Size().Y
	if !s.canvas.Resize(height) {
		return false
	}
	s.grid.SetHeight(height)
	Logger().Debug("ink: canvas resized", "from", old, "to", height, "rows", s.grid.Rows())
	return true
}

// Present returns the pixels of the canvas inside r at the given number of
// pixels per logical unit, and clears the dirty area. The result is nil if
// r does not overlap the canvas or the surface has no size yet.
func (s *Surface) Present(r rect.Rect, scale float64) *image.RGBA {
	if !s.ready {
		return nil
	}
	return s.canvas.Present(r, scale)
}

// Dirty returns the area painted since the last call to Present.
func (s *Surface) Dirty() (rect.Rect, bool) {
	if !s.ready {
		return rect.Rect{}, false
	}
	return s.canvas.Dirty()
}

// Size returns the logical size of the canvas.
func (s *Surface) Size() vec.Vec2 {
	if !s.ready {
		return vec.Vec2{}
	}
	return s.canvas.Size()
}

// Snapshot renders the drawing on white paper, with ruling lines if ruled
// is set. The result is nil if the surface has no size yet.
func (s *Surface) Snapshot(ruled bool) *image.RGBA {
	if !s.ready {
		return nil
	}
	var rule color.Color
	if ruled {
		rule = canvas.RuleColor
	}
	return s.canvas.Page(s.cfg.LineHeight, colornames.White, rule)
}

// StrokeCount returns the number of strokes on the surface. The stroke
// being drawn is not included.
func (s *Surface) StrokeCount() int {
	return s.store.Len()
}

// Strokes iterates over the committed strokes in the order they were
// drawn.
func (s *Surface) Strokes() iter.Seq2[stroke.Handle, *stroke.Stroke] {
	return s.store.All()
}
