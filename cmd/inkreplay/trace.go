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
	"image"
	"image/png"
	"os"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ink"
	"seehuhn.de/go/ink/testcases"
)

// loadTrace returns the trace called name, read from the JSON file fname
// or, if fname is empty, from the built-in collection.
func loadTrace(fname, name string) (testcases.Trace, error) {
	if fname == "" {
		tr, ok := testcases.Find(name)
		if !ok {
			return tr, fmt.Errorf("no built-in trace %q", name)
		}
		return tr, nil
	}

	f, err := os.Open(fname)
	if err != nil {
		return testcases.Trace{}, err
	}
	defer f.Close()

	traces, err := testcases.ReadJSON(f)
	if err != nil {
		return testcases.Trace{}, fmt.Errorf("%s: %w", fname, err)
	}
	for _, tr := range traces {
		if tr.Name == name {
			return tr, nil
		}
	}
	return testcases.Trace{}, fmt.Errorf("%s: no trace %q", fname, name)
}

// replay delivers the events of tr to a new surface. The surface takes
// its size from the view size attached to the events.
func replay(tr testcases.Trace, cfg ink.Config) *ink.Surface {
	cfg.Width = 0
	cfg.Height = 0
	s := ink.New(cfg)
	view := vec.Vec2{X: tr.Width, Y: tr.Height}
	for i, step := range tr.Steps {
		s.SetEraserMode(step.Eraser)
		ev := step.Event
		ev.ViewSize = view
		u := s.Handle(ev)
		ink.Logger().Debug("event",
			"step", i, "phase", ev.Phase, "dirty", u.Dirty, "canvas", u.CanvasSize,
			"resized", u.Resized, "erased", u.Erased, "committed", u.Committed)
	}
	return s
}

func writePNG(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", fname, err)
	}
	return f.Close()
}
