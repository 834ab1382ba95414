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

// Package ink turns stylus input into pressure sensitive ink on a bitmap.
//
// A [Surface] receives batches of pointer samples, one [capture.Event] per
// call. In drawing mode the samples are filtered and appended to the
// current stroke, which is painted incrementally onto the canvas. In
// eraser mode every stroke touched by the eraser is removed as a whole.
// The canvas grows by whole lines when ink approaches its bottom edge and
// shrinks again after strokes have been erased.
//
// Each call returns an [Update] describing the area which must be
// repainted and the current size of the drawing. The pixels are read
// back with [Surface.Present].
//
// A Surface is not safe for concurrent use.
package ink
