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

// Package capture turns batches of pointer samples into ink strokes.
package capture

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Phase is the stage of a pointer gesture an event belongs to.
type Phase int

// These are the gesture phases.
const (
	Began Phase = iota
	Moved
	Ended
	Cancelled
)

func (p Phase) String() string {
	switch p {
	case Began:
		return "began"
	case Moved:
		return "moved"
	case Ended:
		return "ended"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// ParsePhase returns the phase with the given name, as returned by
// Phase.String.
func ParsePhase(name string) (Phase, error) {
	for p := Began; p <= Cancelled; p++ {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown phase %q", name)
}

// Sample is one pointer reading.
type Sample struct {
	Location vec.Vec2
	Pressure float64
}

// Event is one batch of pointer input.
type Event struct {
	Phase Phase

	// Pointer identifies the pointer (finger or pen) which produced the
	// event.
	Pointer int

	// Primary is the main sample of the event. May be nil if Coalesced
	// is non-empty.
	Primary *Sample

	// Coalesced holds the high frequency readings collected since the
	// previous event, oldest first. When present, its last entry
	// corresponds to Primary.
	Coalesced []Sample

	// ViewSize is the size of the drawing view in input coordinates.
	ViewSize vec.Vec2
}

// Samples returns the samples of the event in order: the coalesced
// samples if there are any, otherwise the primary sample alone.
// The result is empty for a malformed event without samples.
func (ev *Event) Samples() []Sample {
	if len(ev.Coalesced) > 0 {
		return ev.Coalesced
	}
	if ev.Primary != nil {
		return []Sample{*ev.Primary}
	}
	return nil
}

// Thickness maps pen pressure to stroke thickness using
//
//	thickness = Base + (pressure - Reference) * Weight
//
// The result is not clamped. A Weight of zero gives constant width ink.
type Thickness struct {
	Base      float64
	Reference float64
	Weight    float64
}

// FromPressure returns the thickness for the given pressure.
func (t Thickness) FromPressure(pressure float64) float64 {
	return t.Base + (pressure-t.Reference)*t.Weight
}
