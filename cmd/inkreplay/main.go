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

// Command inkreplay replays a recorded gesture trace and writes the
// resulting drawing as a PNG image.
//
// Traces are taken either from a JSON file written by
// seehuhn.de/go/ink/testcases/export, or from the built-in collection.
// The surface settings can be adjusted with an INI file:
//
//	[surface]
//	LINE_HEIGHT = 40
//	MARGIN = 20
//	SCALE = 2
//	ERASE_RADIUS = 10
//	HIGHLIGHT_ERASED = false
//	LINEAR_ERASE = false
//	MIN_QUADRANCE = 0.003
//
//	[ink]
//	PAINTER = ink
//	COLOR = navy
//	BASE_THICKNESS = 2
//	REFERENCE_PRESSURE = 1
//	PRESSURE_WEIGHT = 0.5
//	DOT_RADIUS = 5
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"seehuhn.de/go/ink"
)

func main() {
	app := &cli.App{
		Name:  "inkreplay",
		Usage: "replay a gesture trace and save the drawing",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "trace",
				Usage: "JSON trace file; the built-in traces are used if empty",
			},
			&cli.StringFlag{
				Name:     "name",
				Usage:    "name of the trace to replay, e.g. draw_wave",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "INI file with surface settings",
			},
			&cli.StringFlag{
				Name:  "out",
				Value: "out.png",
				Usage: "output PNG file",
			},
			&cli.Float64Flag{
				Name:  "scale",
				Usage: "pixels per logical unit (overrides the config file)",
			},
			&cli.BoolFlag{
				Name:  "ruled",
				Usage: "draw ruling lines below the ink",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log every event",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "inkreplay: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	level := slog.LevelInfo
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ink.SetLogger(logger)

	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("scale") {
		cfg.Scale = c.Float64("scale")
	}

	tr, err := loadTrace(c.String("trace"), c.String("name"))
	if err != nil {
		return err
	}

	s := replay(tr, cfg)
	img := s.Snapshot(c.Bool("ruled"))
	if img == nil {
		return fmt.Errorf("trace %s has no size", tr.Name)
	}

	out := c.String("out")
	if err := writePNG(out, img); err != nil {
		return err
	}
	logger.Info("drawing saved",
		"file", out, "trace", tr.Name, "strokes", s.StrokeCount(),
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}
