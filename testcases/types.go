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

// Package testcases contains recorded pointer gestures for tests,
// benchmarks and tools.
package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ink/capture"
)

// Trace is a sequence of pointer events delivered to one drawing surface.
type Trace struct {
	Name   string  // lowercase a-z and _ only
	Width  float64 // view width
	Height float64 // initial view height
	Steps  []Step  // events, in delivery order
}

// Step is one event, together with the eraser mode selected when the
// event is delivered.
type Step struct {
	Eraser bool
	Event  capture.Event
}

// gesture returns the steps of one complete gesture. The first batch
// begins the gesture, the last batch ends it and the batches in between
// are moves. A single batch gives a tap.
func gesture(eraser bool, batches ...[]capture.Sample) []Step {
	res := make([]Step, 0, len(batches)+1)
	for i, b := range batches {
		phase := capture.Moved
		switch {
		case i == 0:
			phase = capture.Began
		case i == len(batches)-1:
			phase = capture.Ended
		}
		res = append(res, Step{Eraser: eraser, Event: capture.Event{Phase: phase, Coalesced: b}})
	}
	if len(batches) == 1 {
		res = append(res, Step{Eraser: eraser, Event: capture.Event{Phase: capture.Ended}})
	}
	return res
}

// draw and erase are gestures in drawing and eraser mode.
func draw(batches ...[]capture.Sample) []Step  { return gesture(false, batches...) }
func erase(batches ...[]capture.Sample) []Step { return gesture(true, batches...) }

// cancelled turns the final event of a gesture into a cancellation.
func cancelled(steps []Step) []Step {
	steps[len(steps)-1].Event.Phase = capture.Cancelled
	return steps
}

// line samples the segment from a to b at n+1 evenly spaced points, with
// the pressure changing linearly from p0 to p1.
func line(a, b vec.Vec2, n int, p0, p1 float64) []capture.Sample {
	samples := make([]capture.Sample, n+1)
	for i := range samples {
		t := float64(i) / float64(max(n, 1))
		samples[i] = capture.Sample{
			Location: a.Add(b.Sub(a).Mul(t)),
			Pressure: p0 + (p1-p0)*t,
		}
	}
	return samples
}

// wave samples a sine curve from x0 to x1 around the line y.
func wave(x0, x1, y, amplitude, period float64, n int) []capture.Sample {
	samples := make([]capture.Sample, n+1)
	for i := range samples {
		x := x0 + (x1-x0)*float64(i)/float64(n)
		s, _ := math.Sincos(2 * math.Pi * (x - x0) / period)
		samples[i] = capture.Sample{
			Location: pt(x, y+amplitude*s),
			Pressure: 1 + 0.8*s,
		}
	}
	return samples
}

// batches splits samples into batches of at most size samples each.
// Consecutive batches do not share samples.
func batches(samples []capture.Sample, size int) [][]capture.Sample {
	var res [][]capture.Sample
	for len(samples) > size {
		res = append(res, samples[:size])
		samples = samples[size:]
	}
	return append(res, samples)
}

// at returns a single sample batch.
func at(x, y, pressure float64) []capture.Sample {
	return []capture.Sample{{Location: pt(x, y), Pressure: pressure}}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
