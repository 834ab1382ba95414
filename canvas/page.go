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
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Ruling lines are drawn ruleOffset units below the top of each line, with
// a width of ruleWidth units.
const (
	ruleOffset = 1.5
	ruleWidth  = 0.5
)

// RuleColor is the default colour of the ruling lines.
var RuleColor = color.RGBA{R: 179, G: 223, B: 251, A: 255}

// Page renders the canvas on ruled paper: a paper coloured background, one
// ruling line per lineHeight units and the ink on top. A nil rule colour
// omits the ruling.
func (c *Canvas) Page(lineHeight float64, paper, rule color.Color) *image.RGBA {
	page := image.NewRGBA(c.img.Bounds())
	draw.Draw(page, page.Bounds(), image.NewUniform(paper), image.Point{}, draw.Src)

	if rule != nil && lineHeight > 0 {
		p := &path.Data{}
		for top := 0.0; top < c.height; top += lineHeight {
			y := top + lineHeight - ruleOffset
			p.MoveTo(vec.Vec2{X: 0, Y: y}).
				LineTo(vec.Vec2{X: c.width, Y: y}).
				LineTo(vec.Vec2{X: c.width, Y: y + ruleWidth}).
				LineTo(vec.Vec2{X: 0, Y: y + ruleWidth}).
				Close()
		}

		c.r.FillNonZero(p, compositor(page, toRGBA(rule)))
	}

	draw.Draw(page, page.Bounds(), c.img, image.Point{}, draw.Over)
	return page
}
