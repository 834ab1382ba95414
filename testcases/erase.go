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

package testcases

import (
	"slices"
)

// eraseCases contain eraser gestures.
var eraseCases = []Trace{
	{
		Name:   "erase_line",
		Width:  320,
		Height: 40,
		Steps: slices.Concat(
			draw(batches(line(pt(20, 20), pt(300, 20), 40, 1, 1), 8)...),
			erase(at(150, 25, 1)),
		),
	},
	{
		// The eraser moves fast; its samples never come near the
		// strokes, but its path crosses them.
		Name:   "erase_sweep",
		Width:  320,
		Height: 200,
		Steps: slices.Concat(
			writeLines(5),
			erase(at(160, 0, 1), at(160, 90, 1), at(160, 190, 1)),
		),
	},
	{
		Name:   "erase_shrink",
		Width:  320,
		Height: 40,
		Steps: slices.Concat(
			draw(batches(line(pt(20, 20), pt(300, 20), 20, 1, 1), 5)...),
			draw(batches(line(pt(20, 300), pt(300, 300), 20, 1, 1), 5)...),
			erase(batches(line(pt(100, 280), pt(200, 305), 10, 1, 1), 3)...),
		),
	},
	{
		Name:   "erase_miss",
		Width:  320,
		Height: 80,
		Steps: slices.Concat(
			draw(batches(line(pt(20, 20), pt(300, 20), 20, 1, 1), 5)...),
			erase(batches(line(pt(20, 60), pt(300, 60), 20, 1, 1), 5)...),
		),
	},
	{
		Name:   "erase_dots",
		Width:  320,
		Height: 40,
		Steps: slices.Concat(
			draw(at(40, 20, 1)),
			draw(at(80, 20, 1)),
			draw(at(120, 20, 1)),
			erase(batches(line(pt(30, 22), pt(90, 22), 12, 1, 1), 4)...),
		),
	},
	{
		Name:   "erase_then_draw",
		Width:  320,
		Height: 80,
		Steps: slices.Concat(
			draw(batches(wave(20, 300, 40, 15, 70, 60), 10)...),
			cancelled(erase(batches(line(pt(160, 10), pt(160, 70), 6, 1, 1), 2)...)),
			draw(batches(line(pt(20, 40), pt(300, 40), 30, 1, 1), 6)...),
		),
	},
}
