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

package testcases

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"seehuhn.de/go/ink/capture"
)

type jsonFile struct {
	Traces []jsonTrace `json:"traces"`
}

type jsonTrace struct {
	Name   string      `json:"name"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Events []jsonEvent `json:"events"`
}

type jsonEvent struct {
	Phase   string      `json:"phase"`
	Eraser  bool        `json:"eraser,omitempty"`
	Pointer int         `json:"pointer,omitempty"`
	Samples [][]float64 `json:"samples"` // x, y, pressure
}

// WriteJSON writes all traces to w. Each trace is named by its category
// and its name, joined by an underscore.
func WriteJSON(w io.Writer) error {
	var out jsonFile
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tr := range All[category] {
			out.Traces = append(out.Traces, toJSON(category+"_"+tr.Name, tr))
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ReadJSON reads traces in the format written by WriteJSON.
func ReadJSON(r io.Reader) ([]Trace, error) {
	var in jsonFile
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("decoding traces: %w", err)
	}

	traces := make([]Trace, 0, len(in.Traces))
	for _, jt := range in.Traces {
		tr := Trace{Name: jt.Name, Width: jt.Width, Height: jt.Height}
		for i, je := range jt.Events {
			phase, err := capture.ParsePhase(je.Phase)
			if err != nil {
				return nil, fmt.Errorf("trace %s, event %d: %w", jt.Name, i, err)
			}
			ev := capture.Event{Phase: phase, Pointer: je.Pointer}
			for _, s := range je.Samples {
				if len(s) != 3 {
					return nil, fmt.Errorf("trace %s, event %d: sample has %d values, want 3",
						jt.Name, i, len(s))
				}
				ev.Coalesced = append(ev.Coalesced, capture.Sample{
					Location: pt(s[0], s[1]),
					Pressure: s[2],
				})
			}
			tr.Steps = append(tr.Steps, Step{Eraser: je.Eraser, Event: ev})
		}
		traces = append(traces, tr)
	}
	return traces, nil
}

func toJSON(name string, tr Trace) jsonTrace {
	jt := jsonTrace{
		Name:   name,
		Width:  tr.Width,
		Height: tr.Height,
	}
	for _, step := range tr.Steps {
		ev := step.Event
		je := jsonEvent{
			Phase:   ev.Phase.String(),
			Eraser:  step.Eraser,
			Pointer: ev.Pointer,
			Samples: [][]float64{},
		}
		for _, s := range ev.Samples() {
			je.Samples = append(je.Samples, []float64{s.Location.X, s.Location.Y, s.Pressure})
		}
		jt.Events = append(jt.Events, je)
	}
	return jt
}
