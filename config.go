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

package ink

import (
	"image/color"

	"golang.org/x/image/colornames"

	"seehuhn.de/go/ink/canvas"
)

// Config holds the settings of a Surface. Start from [DefaultConfig] and
// change the fields as needed.
//
// LineHeight, EraseRadius, Scale and DotRadius are replaced by their
// default values when they are zero. All other fields are used as given,
// so that for example a zero PressureWeight gives constant width ink.
type Config struct {
	// Width is the logical width of the drawing area. If zero, the width
	// is taken from the ViewSize of the first event.
	Width float64

	// Height is the initial logical height. It is rounded up to a whole
	// number of lines and the canvas never shrinks below it. If zero,
	// the height of the first event's view is used, and one line if that
	// is zero as well.
	Height float64

	// LineHeight is the distance between ruling lines. The canvas height
	// is always a multiple of it, and it is the cell size of the spatial
	// grid.
	LineHeight float64

	// Margin is the space kept free below the lowest ink.
	Margin float64

	// MinQuadrance is the squared distance a sample must move away from
	// the previous one to be used.
	MinQuadrance float64

	// Stroke thickness is BaseThickness + (pressure -
	// ReferencePressure) * PressureWeight.
	BaseThickness     float64
	ReferencePressure float64
	PressureWeight    float64

	EraseRadius float64

	// Scale is the number of canvas pixels per logical unit.
	Scale float64

	Painter   canvas.Painter
	DotRadius float64

	// Ink is the stroke colour. Nil means black.
	Ink color.Color

	// HighlightErased paints erased strokes in the Highlight colour while
	// the eraser gesture is in progress. They vanish when it ends.
	HighlightErased bool
	Highlight       color.Color

	// LinearErase tests every stroke during erasing instead of using the
	// spatial grid.
	LinearErase bool
}

// DefaultConfig returns the default settings.
func DefaultConfig() Config {
	return Config{
		LineHeight:        40,
		Margin:            20,
		MinQuadrance:      0.003,
		BaseThickness:     2,
		ReferencePressure: 1,
		PressureWeight:    0.5,
		EraseRadius:       10,
		Scale:             1,
		Painter:           canvas.PainterInk,
		DotRadius:         5,
		Ink:               colornames.Black,
		Highlight:         colornames.Red,
	}
}

// withDefaults returns a copy of cfg with unset fields filled in. Only
// fields for which zero is not a usable value are replaced.
func (cfg Config) withDefaults() Config {
	def := DefaultConfig()
	fill := func(v *float64, d float64) {
		if *v == 0 {
			*v = d
		}
	}
	fill(&cfg.LineHeight, def.LineHeight)
	fill(&cfg.EraseRadius, def.EraseRadius)
	fill(&cfg.Scale, def.Scale)
	fill(&cfg.DotRadius, def.DotRadius)
	if cfg.Ink == nil {
		cfg.Ink = def.Ink
	}
	if cfg.Highlight == nil {
		cfg.Highlight = def.Highlight
	}
	return cfg
}
