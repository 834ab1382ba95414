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

package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func BenchmarkRasterizerO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{LLx: 0, LLy: 0, URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			center := float64(size) / 2
			oPath := &path.Data{}
			addCircleToPath(oPath, center, center, float64(size)*0.45, false)
			addCircleToPath(oPath, center, center, float64(size)*0.30, true)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(clip)
				r.FillEvenOdd(oPath, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorO benchmarks x/image/vector drawing an "O" shape.
func BenchmarkVectorO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float32(size) / 2
			outerR := float32(size) * 0.45
			innerR := float32(size) * 0.30

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, center, center, outerR, false)
				addCircleToVector(r, center, center, innerR, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkStrokeInk paints a handwriting-like polyline one segment at a
// time, the way ink is painted while the pen moves.
func BenchmarkStrokeInk(b *testing.B) {
	const size = 400
	clip := rect.Rect{URx: size, URy: size}
	r := NewRasterizer(clip)

	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	pts := scribble(size, 500)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		for i := 1; i < len(pts); i++ {
			r.Width = 2 + 0.5*math.Sin(float64(i)/10)
			r.Stroke(pts[i-1:i+1], func(y, xMin int, coverage []float32) {
				row := dst.Pix[y*dst.Stride+xMin:]
				for i, c := range coverage {
					row[i] = max(row[i], uint8(c*255))
				}
			})
		}
	}
}

// BenchmarkVectorInk draws the same polyline with x/image/vector, using one
// quadrilateral per segment.
func BenchmarkVectorInk(b *testing.B) {
	const size = 400
	r := vector.NewRasterizer(size, size)

	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	src := image.NewUniform(color.Alpha{255})
	pts := scribble(size, 500)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		for i := 1; i < len(pts); i++ {
			d := (2 + 0.5*math.Sin(float64(i)/10)) / 2
			a, c := pts[i-1], pts[i]
			t := c.Sub(a)
			n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d / t.Length())

			r.Reset(size, size)
			r.MoveTo(float32(a.X+n.X), float32(a.Y+n.Y))
			r.LineTo(float32(c.X+n.X), float32(c.Y+n.Y))
			r.LineTo(float32(c.X-n.X), float32(c.Y-n.Y))
			r.LineTo(float32(a.X-n.X), float32(a.Y-n.Y))
			r.ClosePath()
			r.Draw(dst, dst.Bounds(), src, image.Point{})
		}
	}
}

// scribble returns n points on a looping curve inside a size×size square.
func scribble(size float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		t := float64(i) / float64(n) * 6 * math.Pi
		pts[i] = vec.Vec2{
			X: size/2 + size*0.4*math.Sin(t)*math.Cos(t/3),
			Y: size/2 + size*0.4*math.Sin(1.5*t+0.3),
		}
	}
	return pts
}

// addCircleToPath appends a circle made of four cubic Bézier curves.
func addCircleToPath(p *path.Data, cx, cy, r float64, clockwise bool) {
	// control point distance for circular arcs
	const k = 0.5522847498
	kr := k * r

	sx := 1.0
	if clockwise {
		sx = -1
	}
	pt := func(dx, dy float64) vec.Vec2 {
		return vec.Vec2{X: cx + sx*dx, Y: cy + dy}
	}

	p.Cmds = append(p.Cmds, path.CmdMoveTo)
	p.Coords = append(p.Coords, pt(0, -r))
	p.Cmds = append(p.Cmds, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo)
	p.Coords = append(p.Coords,
		pt(kr, -r), pt(r, -kr), pt(r, 0),
		pt(r, kr), pt(kr, r), pt(0, r),
		pt(-kr, r), pt(-r, kr), pt(-r, 0),
		pt(-r, -kr), pt(-kr, -r), pt(0, -r),
	)
	p.Cmds = append(p.Cmds, path.CmdClose)
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius

	if clockwise {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}
