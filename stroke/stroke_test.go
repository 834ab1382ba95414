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

package stroke

import (
	"slices"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func vtx(x, y, thickness float64) Vertex {
	return Vertex{Location: vec.Vec2{X: x, Y: y}, Thickness: thickness}
}

func TestStrokeCaches(t *testing.T) {
	s := New(vtx(10, 10, 2))
	if s.Len() != 1 || s.MaxThickness() != 2 || s.MaxSegment() != 0 {
		t.Fatalf("new stroke: len %d, max thickness %g, max segment %g",
			s.Len(), s.MaxThickness(), s.MaxSegment())
	}
	if want := (rect.Rect{LLx: 9, LLy: 9, URx: 11, URy: 11}); s.Frame() != want {
		t.Errorf("frame %v, want %v", s.Frame(), want)
	}

	s.Append(vtx(13, 14, 3))
	s.Append(vtx(13, 20, 1))
	if s.Len() != 3 {
		t.Errorf("len %d, want 3", s.Len())
	}
	if s.MaxThickness() != 3 {
		t.Errorf("max thickness %g, want 3", s.MaxThickness())
	}
	if s.MaxSegment() != 6 {
		t.Errorf("max segment %g, want 6", s.MaxSegment())
	}
	if want := (rect.Rect{LLx: 10, LLy: 10, URx: 13, URy: 20}); s.Bounds() != want {
		t.Errorf("bounds %v, want %v", s.Bounds(), want)
	}
	if want := (rect.Rect{LLx: 8.5, LLy: 8.5, URx: 14.5, URy: 21.5}); s.Frame() != want {
		t.Errorf("frame %v, want %v", s.Frame(), want)
	}
	if s.Last() != vtx(13, 20, 1) || s.At(1) != vtx(13, 14, 3) {
		t.Error("wrong vertices")
	}
}

func TestNegativeThicknessFrame(t *testing.T) {
	s := New(vtx(5, 5, -1))
	if want := (rect.Rect{LLx: 5, LLy: 5, URx: 5, URy: 5}); s.Frame() != want {
		t.Errorf("frame %v, want %v", s.Frame(), want)
	}
}

func TestOverlaps(t *testing.T) {
	line := New(vtx(0, 0, 2))
	line.Append(vtx(100, 0, 2))

	dot := New(vtx(50, 50, 2))

	type testCase struct {
		name   string
		s      *Stroke
		p      vec.Vec2
		radius float64
		want   bool
	}
	cases := []testCase{
		{"near middle", line, vec.Vec2{X: 50, Y: 5}, 10, true},
		{"on boundary", line, vec.Vec2{X: 50, Y: 10}, 10, true},
		{"too far", line, vec.Vec2{X: 50, Y: 10.5}, 10, false},
		{"beyond end", line, vec.Vec2{X: 108, Y: 0}, 10, true},
		{"far beyond end", line, vec.Vec2{X: 108, Y: 8}, 10, false},
		{"dot hit", dot, vec.Vec2{X: 53, Y: 54}, 5, true},
		{"dot miss", dot, vec.Vec2{X: 54, Y: 54}, 5, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.s.Overlaps(tc.p, tc.radius); got != tc.want {
				t.Errorf("Overlaps(%v, %g) = %t, want %t", tc.p, tc.radius, got, tc.want)
			}
		})
	}
}

func TestCrosses(t *testing.T) {
	s := New(vtx(0, 0, 1))
	s.Append(vtx(10, 0, 1))
	s.Append(vtx(10, 10, 1))

	if !s.Crosses(vec.Vec2{X: 5, Y: -5}, vec.Vec2{X: 5, Y: 5}) {
		t.Error("crossing of first segment not detected")
	}
	if !s.Crosses(vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 15, Y: 5}) {
		t.Error("crossing of second segment not detected")
	}
	if s.Crosses(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 9, Y: 9}) {
		t.Error("unexpected crossing")
	}

	dot := New(vtx(5, 5, 1))
	if !dot.Crosses(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 10}) {
		t.Error("segment through a dot not detected")
	}
}

func TestStore(t *testing.T) {
	var st Store
	if st.Get(0) != nil || st.Get(1) != nil || st.Remove(1) {
		t.Fatal("empty store returned a stroke")
	}
	if st.Bounds().Valid {
		t.Error("empty store has valid bounds")
	}

	a := New(vtx(0, 0, 1))
	b := New(vtx(10, 20, 1))
	c := New(vtx(5, 5, 1))
	ha := st.Add(a)
	hb := st.Add(b)
	hc := st.Add(c)
	if ha == 0 || !(ha < hb && hb < hc) {
		t.Fatalf("handles %d, %d, %d not increasing", ha, hb, hc)
	}
	if st.Get(hb) != b || st.Len() != 3 {
		t.Fatal("Get failed")
	}

	if !st.Remove(hb) {
		t.Fatal("Remove failed")
	}
	if st.Remove(hb) {
		t.Error("second Remove succeeded")
	}
	if st.Get(hb) != nil || st.Len() != 2 {
		t.Error("stroke still present after Remove")
	}

	hd := st.Add(New(vtx(1, 1, 1)))
	if hd <= hc {
		t.Errorf("handle %d reused or out of order", hd)
	}

	var handles []Handle
	for h := range st.All() {
		handles = append(handles, h)
	}
	if want := []Handle{ha, hc, hd}; !slices.Equal(handles, want) {
		t.Errorf("All yields %v, want %v", handles, want)
	}
	if n := len(slices.Collect(st.Strokes())); n != 3 {
		t.Errorf("Strokes yields %d strokes, want 3", n)
	}

	bounds := st.Bounds()
	if want := (rect.Rect{LLx: 0, LLy: 0, URx: 5, URy: 5}); !bounds.Valid || bounds.Rect != want {
		t.Errorf("bounds %v, want %v", bounds.Rect, want)
	}
}
