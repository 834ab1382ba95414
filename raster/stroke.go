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
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// segment is one piece of a polyline in user coordinates.
type segment struct {
	A, B vec.Vec2 // endpoints
	T    vec.Vec2 // unit tangent, A→B
	N    vec.Vec2 // unit normal, 90° CCW from T
}

// Stroke renders the open polyline through pts using Width, Cap, Join and
// MiterLimit. Repeated points are ignored. If all points coincide, the
// result depends on the cap style: a disk for round caps, an axis aligned
// square for square caps, and nothing for butt caps.
//
// Nothing is drawn for an empty polyline or a non-positive width.
func (r *Rasterizer) Stroke(pts []vec.Vec2, emit EmitFunc) {
	if len(pts) == 0 || !(r.Width > 0) {
		return
	}

	r.segs = r.segs[:0]
	for i := 1; i < len(pts); i++ {
		r.addSegment(pts[i-1], pts[i])
	}

	r.outline = r.outline[:0]
	r.outlineStarts = r.outlineStarts[:0]
	d := r.Width / 2
	if len(r.segs) == 0 {
		switch r.Cap {
		case graphics.LineCapRound:
			r.addArc(pts[0], d, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, true)
		case graphics.LineCapSquare:
			r.addSquare(pts[0], vec.Vec2{X: 1, Y: 0}, d)
		}
	} else {
		r.strokeSegments(r.segs, d)
	}
	if len(r.outline) >= 3 {
		r.outlineStarts = append(r.outlineStarts, 0)
	}

	r.fillOutlines(emit)
}

// Dot renders a disk of diameter Width around center. This is the shape
// of a zero-length round-capped stroke.
func (r *Rasterizer) Dot(center vec.Vec2, emit EmitFunc) {
	if !(r.Width > 0) {
		return
	}
	r.outline = r.outline[:0]
	r.outlineStarts = r.outlineStarts[:0]
	r.addArc(center, r.Width/2, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, true)
	r.outlineStarts = append(r.outlineStarts, 0)
	r.fillOutlines(emit)
}

// addSegment appends the segment a→b, unless it has zero length.
func (r *Rasterizer) addSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}
	r.segs = append(r.segs, segment{A: a, B: b, T: t, N: n})
}

// strokeSegments builds the outline of an open polyline as one closed
// polygon: the +N side forwards, the end cap, the -N side backwards and
// finally the start cap. Joins are added on the outer side of each corner,
// the inner side is cut at the intersection of the offset lines.
func (r *Rasterizer) strokeSegments(segs []segment, d float64) {
	first := &segs[0]
	last := &segs[len(segs)-1]

	r.addCap(first.A, first.T.Mul(-1), d)

	// +N side
	skipA := false
	for i := range segs {
		seg := &segs[i]
		if !skipA {
			r.outline = append(r.outline, seg.A.Add(seg.N.Mul(d)))
		}
		skipA = false
		if i == len(segs)-1 {
			r.outline = append(r.outline, seg.B.Add(seg.N.Mul(d)))
			break
		}
		next := &segs[i+1]
		sinTheta := seg.T.X*next.T.Y - seg.T.Y*next.T.X
		switch {
		case math.Abs(sinTheta) < collinearityThreshold:
			r.outline = append(r.outline, seg.B.Add(seg.N.Mul(d)))
		case sinTheta > 0: // +N is the inner side
			skipA = r.addInner(seg.B, seg.T, next.T, seg.N, next.N, d, true)
		default:
			r.outline = append(r.outline, seg.B.Add(seg.N.Mul(d)))
			r.addJoin(seg.B, seg.T, next.T, d, true)
		}
	}

	r.addCap(last.B, last.T, d)

	// -N side
	skipB := false
	for i := len(segs) - 1; i >= 0; i-- {
		seg := &segs[i]
		if !skipB {
			r.outline = append(r.outline, seg.B.Sub(seg.N.Mul(d)))
		}
		skipB = false
		if i == 0 {
			r.outline = append(r.outline, seg.A.Sub(seg.N.Mul(d)))
			break
		}
		prev := &segs[i-1]
		sinTheta := prev.T.X*seg.T.Y - prev.T.Y*seg.T.X
		switch {
		case math.Abs(sinTheta) < collinearityThreshold:
			r.outline = append(r.outline, seg.A.Sub(seg.N.Mul(d)))
		case sinTheta > 0:
			r.outline = append(r.outline, seg.A.Sub(seg.N.Mul(d)))
			r.addJoin(seg.A, prev.T, seg.T, d, false)
		default: // -N is the inner side
			skipB = r.addInner(seg.A, prev.T, seg.T, prev.N, seg.N, d, false)
		}
	}
}

// addCap adds a line cap at P. T points away from the line, d is half the
// stroke width. A butt cap needs no extra points.
func (r *Rasterizer) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}

	switch r.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.outline = append(r.outline, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		// half circle from N through T to -N
		r.addArc(P, d, N, -math.Pi, true)
	}
}

// innerIntersection returns the point where the two offset lines on the
// inner side of a corner at P meet.
func innerIntersection(P, T1, T2 vec.Vec2, d float64, positive bool) (vec.Vec2, bool) {
	cosTheta := T1.Dot(T2)
	if cosTheta > 1-1e-9 {
		return vec.Vec2{}, false
	}
	halfAngle := math.Sqrt((1 + cosTheta) / 2)
	if halfAngle < 1e-9 {
		return vec.Vec2{}, false
	}

	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
	N2 := vec.Vec2{X: -T2.Y, Y: T2.X}
	dir := N1.Add(N2)
	if !positive {
		dir = dir.Mul(-1)
	}
	l := dir.Length()
	if l < 1e-9 {
		return vec.Vec2{}, false
	}
	return P.Add(dir.Mul(d / (l * halfAngle))), true
}

// addInner adds the inner side of a corner. It reports whether the
// intersection point was used, in which case the caller must skip the
// offset point of the following segment.
//
// The intersection is only used if it lies within both segments' reach;
// for the short segments of freehand ink the offset points are safer.
func (r *Rasterizer) addInner(P, T1, T2, N1, N2 vec.Vec2, d float64, positive bool) bool {
	if pt, ok := innerIntersection(P, T1, T2, d, positive); ok && pt.Sub(P).Length() <= 2*d {
		r.outline = append(r.outline, pt)
		return true
	}
	if positive {
		r.outline = append(r.outline, P.Add(N1.Mul(d)), P.Add(N2.Mul(d)))
	} else {
		r.outline = append(r.outline, P.Sub(N1.Mul(d)), P.Sub(N2.Mul(d)))
	}
	return false
}

// addJoin adds the outer part of a line join at P, where the tangent
// changes from T1 to T2.
func (r *Rasterizer) addJoin(P, T1, T2 vec.Vec2, d float64, positive bool) {
	cosTheta := T1.Dot(T2)
	sinTheta := T1.X*T2.Y - T1.Y*T2.X
	if sinTheta > -collinearityThreshold && sinTheta < collinearityThreshold {
		return
	}

	if cosTheta < cuspCosineThreshold {
		// the polyline doubles back: two caps instead of a join
		r.addCap(P, T1, d)
		r.addCap(P, T2.Mul(-1), d)
		return
	}

	switch r.Join {
	case graphics.LineJoinMiter:
		// miter length ratio is 1/cos(θ/2), θ the angle between tangents
		sinHalf := math.Sqrt((1 + cosTheta) / 2)
		const miterEpsilon = 1e-10
		if sinHalf > 0 && 1/sinHalf <= r.MiterLimit+miterEpsilon {
			N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
			N2 := vec.Vec2{X: -T2.Y, Y: T2.X}
			bisector := N1.Add(N2)
			if !positive {
				bisector = bisector.Mul(-1)
			}
			if l := bisector.Length(); l > zeroLengthThreshold {
				r.outline = append(r.outline, P.Add(bisector.Mul(d/(l*sinHalf))))
			}
		}
		// beyond the limit the miter degrades to a bevel

	case graphics.LineJoinBevel:
		// the offset points added by the caller form the bevel

	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cosTheta)))
		if positive {
			N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
			if sinTheta > 0 {
				r.addArc(P, d, N1, angle, false)
			} else {
				r.addArc(P, d, N1, -angle, false)
			}
		} else {
			N2 := vec.Vec2{X: T2.Y, Y: -T2.X}
			if sinTheta > 0 {
				r.addArc(P, d, N2, -angle, false)
			} else {
				r.addArc(P, d, N2, angle, false)
			}
		}
	}
}

// addArc appends points on the circle around center. startDir is the unit
// vector pointing to the start of the arc and sweep is the signed angle in
// radians (positive is CCW). The number of points is chosen so that the
// chords stay within Flatness of the circle in device space.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length(),
	)

	n := 1
	if devRadius >= r.Flatness {
		// a chord spanning angle θ deviates r(1-cos(θ/2)) from the circle
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step <= 0 || math.IsNaN(step) {
			step = math.Pi / 4
		}
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}
	if math.Abs(sweep) >= 2*math.Pi {
		// a full circle needs at least a triangle
		n = max(n, 3)
	}

	dt := sweep / float64(n)
	i0 := 0
	if !includeStart {
		i0 = 1
	}
	for i := i0; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}

// addSquare appends an axis-aligned square of side 2d around center,
// oriented along T.
func (r *Rasterizer) addSquare(center, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	r.outline = append(r.outline,
		center.Add(T.Mul(d)).Add(N.Mul(d)),
		center.Add(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Add(N.Mul(d)),
	)
}

// fillOutlines fills the collected outline polygons with the nonzero
// winding rule, so that self-overlapping parts are painted once.
func (r *Rasterizer) fillOutlines(emit EmitFunc) {
	if len(r.outlineStarts) == 0 {
		return
	}
	r.beginEdges()
	for i, start := range r.outlineStarts {
		end := len(r.outline)
		if i+1 < len(r.outlineStarts) {
			end = r.outlineStarts[i+1]
		}
		poly := r.outline[start:end]
		if len(poly) < 2 {
			continue
		}
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}
	r.rasterizeEdges(fillNonZero, emit)
}
