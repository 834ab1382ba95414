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

import "math"

// The canvas height is always a whole number of ruling lines.

// GrowHeight returns the height the canvas needs so that content reaching
// down to bottomY keeps margin units of space below it. The result is the
// smallest multiple of lineHeight covering bottomY+margin. The second
// return value is false, and current is returned, if current is already
// large enough.
func GrowHeight(current, bottomY, margin, lineHeight float64) (float64, bool) {
	need := bottomY + margin
	if !(need > current) || !(lineHeight > 0) {
		return current, false
	}
	return roundUp(need, lineHeight), true
}

// FitHeight returns the height for a canvas after content was removed:
// the smallest multiple of lineHeight covering contentBottom+margin, but at
// least one line. Without content the result is one line.
func FitHeight(contentBottom float64, hasContent bool, margin, lineHeight float64) float64 {
	if !hasContent {
		return lineHeight
	}
	return max(roundUp(contentBottom+margin, lineHeight), lineHeight)
}

func roundUp(y, unit float64) float64 {
	return math.Ceil(y/unit) * unit
}
