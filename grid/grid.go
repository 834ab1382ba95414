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

// Package grid implements a uniform spatial index over the canvas.
//
// Each cell holds the handles of all strokes which have at least one vertex
// inside the cell. A vertex on a cell boundary belongs to the cell with the
// larger index only. Queries make up for the coarse membership by searching
// all cells within a radius, widened by half the longest registered
// segment, so that a segment passing close to the query point is found even
// when both of its vertices are further away. Strokes with a vertex
// outside the grid are also kept in an overflow set which every query
// returns.
package grid

import (
	"maps"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ink/stroke"
)

// Cell addresses one grid cell.
type Cell struct {
	Row, Col int
}

type cellSet map[stroke.Handle]struct{}

// Grid is a rows × cols array of square cells.
// The number of columns is fixed, rows are added and removed at the bottom
// as the canvas changes height.
type Grid struct {
	size    float64
	cols    int
	rows    [][]cellSet
	outside cellSet

	// spans holds half the longest segment of every registered stroke;
	// reach is the maximum of these values.
	spans map[stroke.Handle]float64
	reach float64
}

// New returns a grid covering a canvas of the given size in cells of side
// cell. The grid has int(width/cell)+1 columns and enough rows to cover
// height, but at least one.
func New(width, height, cell float64) *Grid {
	g := &Grid{
		size:    cell,
		cols:    int(width/cell) + 1,
		outside: make(cellSet),
		spans:   make(map[stroke.Handle]float64),
	}
	g.SetRows(rowsFor(height, cell))
	return g
}

func rowsFor(height, cell float64) int {
	n := math.Ceil(height / cell)
	if !(n >= 1) {
		return 1
	}
	return int(n)
}

// Rows returns the current number of rows.
func (g *Grid) Rows() int {
	return len(g.rows)
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// CellSize returns the side length of a cell.
func (g *Grid) CellSize() float64 {
	return g.size
}

// Reach returns the distance by which queries are widened.
func (g *Grid) Reach() float64 {
	return g.reach
}

// Cell returns the cell containing p. The second return value is false if
// p lies outside the grid.
func (g *Grid) Cell(p vec.Vec2) (Cell, bool) {
	row := math.Floor(p.Y / g.size)
	col := math.Floor(p.X / g.size)
	if !(row >= 0 && row < float64(len(g.rows)) && col >= 0 && col < float64(g.cols)) {
		return Cell{}, false
	}
	return Cell{Row: int(row), Col: int(col)}, true
}

// Insert registers stroke s under handle h in the cell of every vertex.
// If a vertex lies outside the grid, h goes to the overflow set instead.
// Inserting a stroke again has no further effect.
func (g *Grid) Insert(h stroke.Handle, s *stroke.Stroke) {
	for _, v := range s.Vertices() {
		c, ok := g.Cell(v.Location)
		if !ok {
			g.outside[h] = struct{}{}
			continue
		}
		set := g.rows[c.Row][c.Col]
		if set == nil {
			set = make(cellSet)
			g.rows[c.Row][c.Col] = set
		}
		set[h] = struct{}{}
	}
	span := s.MaxSegment() / 2
	g.spans[h] = span
	g.reach = max(g.reach, span)
}

// Remove erases h from every cell. This scans the whole grid.
func (g *Grid) Remove(h stroke.Handle) {
	for _, row := range g.rows {
		for _, set := range row {
			delete(set, h)
		}
	}
	delete(g.outside, h)

	span, ok := g.spans[h]
	if !ok {
		return
	}
	delete(g.spans, h)
	if span >= g.reach {
		g.reach = 0
		for _, other := range g.spans {
			g.reach = max(g.reach, other)
		}
	}
}

// Outside reports whether h is in the overflow set.
func (g *Grid) Outside(h stroke.Handle) bool {
	_, ok := g.outside[h]
	return ok
}

// Contains reports whether cell c holds h.
func (g *Grid) Contains(c Cell, h stroke.Handle) bool {
	if !g.valid(c) {
		return false
	}
	_, ok := g.rows[c.Row][c.Col][h]
	return ok
}

// At returns the handles registered in cell c, in increasing order.
func (g *Grid) At(c Cell) []stroke.Handle {
	if !g.valid(c) {
		return nil
	}
	return slices.Sorted(maps.Keys(g.rows[c.Row][c.Col]))
}

func (g *Grid) valid(c Cell) bool {
	return c.Row >= 0 && c.Row < len(g.rows) && c.Col >= 0 && c.Col < g.cols
}

// CellsNear returns all cells intersecting the square of half side radius
// around p, in row major order.
func (g *Grid) CellsNear(p vec.Vec2, radius float64) []Cell {
	radius = max(radius, 0)
	r0 := max(int(math.Floor((p.Y-radius)/g.size)), 0)
	r1 := min(int(math.Floor((p.Y+radius)/g.size)), len(g.rows)-1)
	c0 := max(int(math.Floor((p.X-radius)/g.size)), 0)
	c1 := min(int(math.Floor((p.X+radius)/g.size)), g.cols-1)

	var cells []Cell
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cells = append(cells, Cell{Row: row, Col: col})
		}
	}
	return cells
}

// Near returns the handles of all strokes which may pass within radius of
// p, in increasing order. The result is a superset: callers apply an exact
// distance test.
func (g *Grid) Near(p vec.Vec2, radius float64) []stroke.Handle {
	seen := maps.Clone(g.outside)
	for _, c := range g.CellsNear(p, radius+g.reach) {
		for h := range g.rows[c.Row][c.Col] {
			seen[h] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// GrowRows appends n empty rows.
func (g *Grid) GrowRows(n int) {
	for range max(n, 0) {
		g.rows = append(g.rows, make([]cellSet, g.cols))
	}
}

// ShrinkRows removes up to n rows from the bottom, keeping at least one.
// Handles in the removed rows move to the overflow set.
func (g *Grid) ShrinkRows(n int) {
	keep := max(len(g.rows)-max(n, 0), 1)
	for _, row := range g.rows[keep:] {
		for _, set := range row {
			maps.Copy(g.outside, set)
		}
	}
	clear(g.rows[keep:])
	g.rows = g.rows[:keep]
}

// SetRows grows or shrinks the grid to n rows, but at least one.
func (g *Grid) SetRows(n int) {
	n = max(n, 1)
	if n > len(g.rows) {
		g.GrowRows(n - len(g.rows))
	} else {
		g.ShrinkRows(len(g.rows) - n)
	}
}

// SetHeight adjusts the number of rows to cover a canvas of the given
// height.
func (g *Grid) SetHeight(height float64) {
	g.SetRows(rowsFor(height, g.size))
}
