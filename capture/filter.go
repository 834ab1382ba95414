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

package capture

import (
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/ink/geometry"
	"seehuhn.de/go/ink/stroke"
)

// Filter builds one stroke at a time from pointer events.
//
// A sample is accepted only if its squared distance from the previously
// accepted sample is at least MinQuadrance. This suppresses events which
// carry a pressure change but no real movement. The first and the last
// sample of a batch are exempt, so that consecutive batches join up, but a
// batch in which no sample moves away from the stroke is dropped as a
// whole.
//
// Only one gesture is tracked. Events from other pointers are ignored
// while a gesture is in progress.
type Filter struct {
	MinQuadrance float64
	Thickness    Thickness

	current *stroke.Stroke
	pointer int
}

// Result describes the effect of one event.
type Result struct {
	// Stroke is the stroke the event contributed to, or nil if the event
	// was ignored.
	Stroke *stroke.Stroke

	// Start is the index of the first vertex appended by this event.
	// If Start == Stroke.Len(), nothing was appended.
	Start int

	// Bounds is the bounding box of the appended vertex locations and
	// the vertex preceding them. Only valid if HasBounds is set.
	Bounds    rect.Rect
	HasBounds bool

	// Began is set if the event started the stroke.
	Began bool

	// Committed is set if the event finished the stroke.
	Committed bool
}

// Appended returns the number of vertices appended by the event.
func (r *Result) Appended() int {
	if r.Stroke == nil {
		return 0
	}
	return r.Stroke.Len() - r.Start
}

// Active reports whether a gesture is in progress.
func (f *Filter) Active() bool {
	return f.current != nil
}

// Current returns the stroke being built, or nil.
func (f *Filter) Current() *stroke.Stroke {
	return f.current
}

// Handle processes one event.
func (f *Filter) Handle(ev *Event) Result {
	samples := ev.Samples()

	if ev.Phase == Began {
		if f.current != nil || len(samples) == 0 {
			return Result{}
		}
		f.current = stroke.New(f.vertex(samples[0]))
		f.pointer = ev.Pointer
		if n := len(samples); n > 1 && f.anyMoves(f.current, samples[1:]) {
			f.appendFiltered(f.current, samples[1:n-1])
			f.current.Append(f.vertex(samples[n-1]))
		}
		res := Result{Stroke: f.current, Start: 0, Began: true}
		res.Bounds, res.HasBounds = boundsFrom(f.current, 0)
		return res
	}

	if f.current == nil || ev.Pointer != f.pointer {
		return Result{}
	}
	s := f.current
	res := Result{Stroke: s, Start: s.Len()}

	switch ev.Phase {
	case Moved:
		f.appendBatch(s, samples)
	case Ended, Cancelled:
		if n := len(samples); n > 0 {
			f.appendFiltered(s, samples[:n-1])
			s.Append(f.vertex(samples[n-1]))
		}
		f.current = nil
		res.Committed = true
	default:
		return Result{}
	}

	res.Bounds, res.HasBounds = boundsFrom(s, res.Start)
	return res
}

// appendBatch appends the samples of a batch, always keeping the first and
// the last sample unless no sample of the batch moves away from the end of
// the stroke.
func (f *Filter) appendBatch(s *stroke.Stroke, samples []Sample) {
	n := len(samples)
	if !f.anyMoves(s, samples) {
		return
	}
	s.Append(f.vertex(samples[0]))
	if n == 1 {
		return
	}
	f.appendFiltered(s, samples[1:n-1])
	s.Append(f.vertex(samples[n-1]))
}

// moves reports whether sample is far enough from the end of s to be
// accepted.
func (f *Filter) moves(s *stroke.Stroke, sample Sample) bool {
	return geometry.Quadrance(s.Last().Location, sample.Location) >= f.MinQuadrance
}

// anyMoves reports whether at least one of the samples is far enough from
// the end of s to be accepted.
func (f *Filter) anyMoves(s *stroke.Stroke, samples []Sample) bool {
	for _, sample := range samples {
		if f.moves(s, sample) {
			return true
		}
	}
	return false
}

// appendFiltered appends the samples which moved far enough from the
// previously accepted one.
func (f *Filter) appendFiltered(s *stroke.Stroke, samples []Sample) {
	for _, sample := range samples {
		if f.moves(s, sample) {
			s.Append(f.vertex(sample))
		}
	}
}

func (f *Filter) vertex(sample Sample) stroke.Vertex {
	return stroke.Vertex{
		Location:  sample.Location,
		Thickness: f.Thickness.FromPressure(sample.Pressure),
	}
}

// boundsFrom returns the bounding box of the vertices of s from start on,
// together with the vertex before start. The second return value is false
// if no vertices were appended.
func boundsFrom(s *stroke.Stroke, start int) (rect.Rect, bool) {
	if start >= s.Len() {
		return rect.Rect{}, false
	}
	var b geometry.Bounds
	for i := max(start-1, 0); i < s.Len(); i++ {
		b.AddPoint(s.At(i).Location)
	}
	return b.Rect, true
}
