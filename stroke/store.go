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
	"iter"

	"seehuhn.de/go/ink/geometry"
)

// Handle identifies a stroke in a Store. The zero Handle is never issued.
type Handle uint32

// Store owns the committed strokes. Handles are issued in increasing order
// and are never reused, so handle order is creation order.
type Store struct {
	strokes []*Stroke // strokes[h-1], nil once removed
	live    int
}

// Add stores s and returns its handle.
func (st *Store) Add(s *Stroke) Handle {
	st.strokes = append(st.strokes, s)
	st.live++
	return Handle(len(st.strokes))
}

// Get returns the stroke for h, or nil if h is unknown or was removed.
func (st *Store) Get(h Handle) *Stroke {
	if h == 0 || int(h) > len(st.strokes) {
		return nil
	}
	return st.strokes[h-1]
}

// Remove deletes the stroke for h and reports whether it was present.
func (st *Store) Remove(h Handle) bool {
	if st.Get(h) == nil {
		return false
	}
	st.strokes[h-1] = nil
	st.live--
	return true
}

// Len returns the number of strokes in the store.
func (st *Store) Len() int {
	return st.live
}

// All iterates over the strokes in creation order.
func (st *Store) All() iter.Seq2[Handle, *Stroke] {
	return func(yield func(Handle, *Stroke) bool) {
		for i, s := range st.strokes {
			if s == nil {
				continue
			}
			if !yield(Handle(i+1), s) {
				return
			}
		}
	}
}

// Strokes iterates over the strokes in creation order, without handles.
func (st *Store) Strokes() iter.Seq[*Stroke] {
	return func(yield func(*Stroke) bool) {
		for _, s := range st.All() {
			if !yield(s) {
				return
			}
		}
	}
}

// Bounds returns the bounding box of all vertex locations in the store.
func (st *Store) Bounds() geometry.Bounds {
	var b geometry.Bounds
	for _, s := range st.All() {
		b.AddRect(s.Bounds())
	}
	return b
}
