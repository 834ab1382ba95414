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

package main

import (
	"fmt"

	"golang.org/x/image/colornames"
	"gopkg.in/ini.v1"

	"seehuhn.de/go/ink"
	"seehuhn.de/go/ink/canvas"
)

// loadConfig returns the default surface settings, updated from the INI
// file fname if it is not empty.
func loadConfig(fname string) (ink.Config, error) {
	cfg := ink.DefaultConfig()
	if fname == "" {
		return cfg, nil
	}

	f, err := ini.Load(fname)
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}

	sec := f.Section("surface")
	cfg.LineHeight = sec.Key("LINE_HEIGHT").MustFloat64(cfg.LineHeight)
	cfg.Margin = sec.Key("MARGIN").MustFloat64(cfg.Margin)
	cfg.Scale = sec.Key("SCALE").MustFloat64(cfg.Scale)
	cfg.EraseRadius = sec.Key("ERASE_RADIUS").MustFloat64(cfg.EraseRadius)
	cfg.MinQuadrance = sec.Key("MIN_QUADRANCE").MustFloat64(cfg.MinQuadrance)
	cfg.HighlightErased = sec.Key("HIGHLIGHT_ERASED").MustBool(cfg.HighlightErased)
	cfg.LinearErase = sec.Key("LINEAR_ERASE").MustBool(cfg.LinearErase)

	sec = f.Section("ink")
	cfg.BaseThickness = sec.Key("BASE_THICKNESS").MustFloat64(cfg.BaseThickness)
	cfg.ReferencePressure = sec.Key("REFERENCE_PRESSURE").MustFloat64(cfg.ReferencePressure)
	cfg.PressureWeight = sec.Key("PRESSURE_WEIGHT").MustFloat64(cfg.PressureWeight)
	cfg.DotRadius = sec.Key("DOT_RADIUS").MustFloat64(cfg.DotRadius)

	switch p := sec.Key("PAINTER").MustString(canvas.PainterInk.String()); p {
	case canvas.PainterInk.String():
		cfg.Painter = canvas.PainterInk
	case canvas.PainterDot.String():
		cfg.Painter = canvas.PainterDot
	default:
		return cfg, fmt.Errorf("%s: unknown painter %q", fname, p)
	}

	if name := sec.Key("COLOR").String(); name != "" {
		col, ok := colornames.Map[name]
		if !ok {
			return cfg, fmt.Errorf("%s: unknown colour %q", fname, name)
		}
		cfg.Ink = col
	}
	return cfg, nil
}
