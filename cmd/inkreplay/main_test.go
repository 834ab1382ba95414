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
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/colornames"

	"seehuhn.de/go/ink"
	"seehuhn.de/go/ink/canvas"
	"seehuhn.de/go/ink/testcases"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "ink.ini")
	data := "[surface]\nLINE_HEIGHT = 32\nSCALE = 2\nLINEAR_ERASE = true\n\n" +
		"[ink]\nPAINTER = dot\nCOLOR = navy\nPRESSURE_WEIGHT = 0.25\n"
	if err := os.WriteFile(fname, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(fname)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LineHeight != 32 || cfg.Scale != 2 || !cfg.LinearErase {
		t.Errorf("surface section not applied: %+v", cfg)
	}
	if cfg.Painter != canvas.PainterDot || cfg.PressureWeight != 0.25 {
		t.Errorf("ink section not applied: %+v", cfg)
	}
	if cfg.Ink != color.Color(colornames.Navy) {
		t.Errorf("ink colour %v", cfg.Ink)
	}
	if cfg.Margin != ink.DefaultConfig().Margin {
		t.Errorf("margin %g, want default", cfg.Margin)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	for i, data := range []string{
		"[ink]\nPAINTER = brush\n",
		"[ink]\nCOLOR = notacolour\n",
	} {
		fname := filepath.Join(dir, "bad.ini")
		if err := os.WriteFile(fname, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := loadConfig(fname); err == nil {
			t.Errorf("%d: invalid config accepted", i)
		}
	}
	if _, err := loadConfig(filepath.Join(dir, "missing.ini")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestReplay(t *testing.T) {
	tr, ok := testcases.Find("grow_write_down")
	if !ok {
		t.Fatal("trace not found")
	}
	s := replay(tr, ink.DefaultConfig())
	if s.StrokeCount() != 8 {
		t.Errorf("%d strokes, want 8", s.StrokeCount())
	}
	if got := s.Size(); got.X != tr.Width || got.Y <= tr.Height {
		t.Errorf("surface size %v, want width %g and grown height", got, tr.Width)
	}

	fname := filepath.Join(t.TempDir(), "out.png")
	if err := writePNG(fname, s.Snapshot(true)); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != int(tr.Width) {
		t.Errorf("image width %d", img.Bounds().Dx())
	}
}

func TestLoadTrace(t *testing.T) {
	if _, err := loadTrace("", "no_such_trace"); err == nil {
		t.Error("unknown built-in trace accepted")
	}

	fname := filepath.Join(t.TempDir(), "traces.json")
	f, err := os.Create(fname)
	if err != nil {
		t.Fatal(err)
	}
	if err := testcases.WriteJSON(f); err != nil {
		t.Fatal(err)
	}
	f.Close()

	tr, err := loadTrace(fname, "erase_erase_dots")
	if err != nil {
		t.Fatal(err)
	}
	s := replay(tr, ink.DefaultConfig())
	if s.StrokeCount() != 1 {
		t.Errorf("%d strokes left, want 1", s.StrokeCount())
	}
}

func TestConstantWidthConfig(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "ink.ini")
	data := "[surface]\nMARGIN = 0\n\n[ink]\nPRESSURE_WEIGHT = 0\nBASE_THICKNESS = 3\n"
	if err := os.WriteFile(fname, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(fname)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PressureWeight != 0 || cfg.Margin != 0 {
		t.Fatalf("zero values not loaded: %+v", cfg)
	}

	tr, ok := testcases.Find("draw_pressure_ramp")
	if !ok {
		t.Fatal("trace not found")
	}
	s := replay(tr, cfg)
	for h, st := range s.Strokes() {
		for i, v := range st.Vertices() {
			if v.Thickness != 3 {
				t.Fatalf("stroke %d, vertex %d: thickness %g, want 3", h, i, v.Thickness)
			}
		}
	}
	if s.StrokeCount() != 1 {
		t.Errorf("%d strokes, want 1", s.StrokeCount())
	}
}
