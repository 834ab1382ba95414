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

// Package erase removes whole strokes touched by an eraser gesture.
package erase

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ink/geometry"
	"seehuhn.de/go/ink/grid"
	"seehuhn.de/go/ink/stroke"
)

// DefaultRadius is the default eraser radius.
const DefaultRadius = 10

// Options configure an Engine.
type Options struct {
	// Radius is the distance within which a stroke is hit.
	Radius float64

	// MinQuadrance is the squared distance the eraser must move before
	// the next point is tested.
	MinQuadrance float64

	// Linear tests every stroke in the store instead of querying the
	// grid.
	Linear bool
}

// Result describes the strokes removed by one call.
type Result struct {
	ErasedAny bool

	// Region is the union of the frames of the removed strokes.
	// Only valid if ErasedAny is set.
	Region rect.Rect

	// Erased lists the handles of the removed strokes, in the order in
	// which they were hit. Strokes holds the corresponding strokes.
	Erased  []stroke.Handle
	Strokes []*stroke.Stroke
}

func (r *Result) add(h stroke.Handle, s *stroke.Stroke) {
	if r.ErasedAny {
		r.Region = geometry.Union(r.Region, s.Frame())
	} else {
		r.Region = s.Frame()
		r.ErasedAny = true
	}
	r.Erased = append(r.Erased, h)
	r.Strokes = append(r.Strokes, s)
}

func (r *Result) merge(other Result) {
	for i, h := range other.Erased {
		r.add(h, other.Strokes[i])
	}
}

// Engine removes strokes from a store and its grid.
//
// Hit strokes are removed immediately, so sweeping over the same place
// twice during a gesture erases nothing more.
type Engine struct {
	store *stroke.Store
	grid  *grid.Grid
	opts  Options

	active  bool
	last    vec.Vec2
	gesture Result
}

// New returns an engine operating on the given store and grid.
// A non-positive radius is replaced by DefaultRadius.
func New(store *stroke.Store, g *grid.Grid, opts Options) *Engine {
	if !(opts.Radius > 0) {
		opts.Radius = DefaultRadius
	}
	return &Engine{store: store, grid: g, opts: opts}
}

// Active reports whether an eraser gesture is in progress.
func (e *Engine) Active() bool {
	return e.active
}

// Begin starts an eraser gesture at p and erases there.
func (e *Engine) Begin(p vec.Vec2) Result {
	e.active = true
	e.gesture = Result{}
	e.last = p
	res := e.eraseMove(p, p)
	e.gesture.merge(res)
	return res
}

// Erase moves the eraser through the given points. Points closer to the
// previously used one than allowed by MinQuadrance are skipped. Without
// an active gesture, Erase does nothing.
func (e *Engine) Erase(points []vec.Vec2) Result {
	var res Result
	if !e.active {
		return res
	}
	for _, p := range points {
		if geometry.Quadrance(e.last, p) < e.opts.MinQuadrance {
			continue
		}
		res.merge(e.eraseMove(e.last, p))
		e.last = p
	}
	e.gesture.merge(res)
	return res
}

// End finishes the gesture and returns all strokes it removed.
func (e *Engine) End() Result {
	if !e.active {
		return Result{}
	}
	e.active = false
	res := e.gesture
	e.gesture = Result{}
	return res
}

// eraseMove removes all strokes hit by the eraser moving from a to b.
// A stroke is hit if it comes within Radius of b or crosses the segment
// a-b.
func (e *Engine) eraseMove(a, b vec.Vec2) Result {
	var res Result
	moved := a != b
	for _, h := range e.candidates(a, b) {
		s := e.store.Get(h)
		if s == nil {
			continue
		}
		if s.Overlaps(b, e.opts.Radius) || moved && s.Crosses(a, b) {
			e.store.Remove(h)
			if e.grid != nil {
				e.grid.Remove(h)
			}
			res.add(h, s)
		}
	}
	return res
}

// candidates returns the strokes which may be hit by the eraser moving
// from a to b, in increasing handle order.
func (e *Engine) candidates(a, b vec.Vec2) []stroke.Handle {
	if e.opts.Linear || e.grid == nil {
		var all []stroke.Handle
		for h := range e.store.All() {
			all = append(all, h)
		}
		return all
	}
	mid := a.Add(b).Mul(0.5)
	return e.grid.Near(mid, e.opts.Radius+geometry.Distance(a, b)/2)
}
