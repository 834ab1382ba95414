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

// growCases contain ink which comes close to the bottom of the surface,
// so that the canvas has to grow.
var growCases = []Trace{
	{
		Name:   "write_down",
		Width:  320,
		Height: 40,
		Steps:  writeLines(8),
	},
	{
		Name:   "diagonal",
		Width:  320,
		Height: 40,
		Steps:  draw(batches(line(pt(10, 10), pt(300, 500), 80, 1, 2.5), 6)...),
	},
	{
		// The canvas grows while the stroke is in progress, then the
		// stroke turns back up.
		Name:   "grow_and_return",
		Width:  320,
		Height: 120,
		Steps: draw(batches(slices.Concat(
			line(pt(20, 20), pt(100, 150), 20, 1, 1),
			line(pt(100, 150), pt(180, 20), 20, 1, 1),
		), 5)...),
	},
}

// writeLines draws one wavy stroke in each of the first n lines.
func writeLines(n int) []Step {
	var res []Step
	for i := range n {
		y := 20 + 40*float64(i)
		res = append(res, draw(batches(wave(20, 300, y, 6, 30, 80), 10)...)...)
	}
	return res
}
