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

	"seehuhn.de/go/ink/capture"
)

// drawCases contains single strokes on a surface which does not need to
// grow.
var drawCases = []Trace{
	{
		Name:   "tap",
		Width:  320,
		Height: 40,
		Steps:  draw(at(100, 20, 1)),
	},
	{
		Name:   "line",
		Width:  320,
		Height: 40,
		Steps:  draw(batches(line(pt(20, 20), pt(300, 20), 40, 1, 1), 8)...),
	},
	{
		Name:   "pressure_ramp",
		Width:  320,
		Height: 40,
		Steps:  draw(batches(line(pt(20, 20), pt(300, 20), 56, 0.2, 3), 8)...),
	},
	{
		Name:   "wave",
		Width:  320,
		Height: 80,
		Steps:  draw(batches(wave(20, 300, 40, 15, 70, 120), 10)...),
	},
	{
		// Pressure changes without movement must not add vertices.
		Name:   "pressure_jitter",
		Width:  320,
		Height: 40,
		Steps: draw(
			[]capture.Sample{
				{Location: pt(100, 20), Pressure: 1},
				{Location: pt(100, 20), Pressure: 1.4},
				{Location: pt(100, 20.01), Pressure: 1.8},
			},
			[]capture.Sample{
				{Location: pt(100.02, 20), Pressure: 2.2},
				{Location: pt(140, 22), Pressure: 2},
			},
			[]capture.Sample{
				{Location: pt(140, 22), Pressure: 1},
				{Location: pt(140, 22.001), Pressure: 0.5},
			},
		),
	},
	{
		Name:   "single_batches",
		Width:  320,
		Height: 40,
		Steps:  draw(batches(line(pt(40, 10), pt(280, 30), 24, 1, 2), 1)...),
	},
	{
		Name:   "cancelled",
		Width:  320,
		Height: 40,
		Steps:  cancelled(draw(batches(line(pt(20, 30), pt(200, 10), 20, 1.5, 1.5), 5)...)),
	},
	{
		Name:   "handwriting",
		Width:  320,
		Height: 40,
		Steps: slices.Concat(
			draw(batches(slices.Concat(
				line(pt(20, 30), pt(30, 8), 6, 0.8, 1.6),
				line(pt(30, 8), pt(40, 30), 6, 1.6, 0.8),
			), 4)...),
			draw(line(pt(24, 20), pt(36, 20), 4, 1, 1)),
			draw(batches(slices.Concat(
				line(pt(50, 8), pt(50, 30), 6, 1, 1.4),
				line(pt(50, 30), pt(62, 24), 4, 1.4, 1.2),
				line(pt(62, 24), pt(50, 19), 4, 1.2, 1),
			), 4)...),
			draw(at(70, 28, 1.2)),
		),
	},
}
