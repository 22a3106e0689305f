// seehuhn.de/go/bezier - Bézier curve rasterization
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

// Command bezier draws a cubic Bézier curve from four control points and
// writes the result as a PNG image.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/kpango/glg"
	"golang.org/x/image/colornames"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/bezier"
)

// Flags holds the command line configuration.
// The same fields can be loaded from a JSON preset file.
type Flags struct {
	Points  string
	Width   int
	Height  int
	Step    float64
	Channel string
	Naive   bool
	Markers bool
	Output  string

	MarkerColor string

	preset     string
	makePreset bool
	debug      bool
}

const defaultPoints = "108,473 232,188 485,113 561,381"

func main() {
	var f Flags
	flag.StringVar(&f.Points, "points", defaultPoints, "four control points \"x,y x,y x,y x,y\"")
	flag.IntVar(&f.Width, "width", 700, "canvas width in pixels")
	flag.IntVar(&f.Height, "height", 700, "canvas height in pixels")
	flag.Float64Var(&f.Step, "step", 1e-4, "curve parameter step")
	flag.StringVar(&f.Channel, "channel", "", "output channel: red, green or blue (default green, red with -naive)")
	flag.BoolVar(&f.Naive, "naive", false, "draw with the closed-form evaluator, without anti-aliasing")
	flag.BoolVar(&f.Markers, "markers", true, "draw rings around the control points")
	flag.StringVar(&f.MarkerColor, "marker-color", "white", "marker colour, as an SVG colour name")
	flag.StringVar(&f.Output, "o", "bezier_curve.png", "output file path")
	flag.StringVar(&f.preset, "preset", "", "JSON preset file path. This will override all other flags")
	flag.BoolVar(&f.makePreset, "make-preset", false, "print a preset for the current flags and exit")
	flag.BoolVar(&f.debug, "debug", false, "enable debug logging")
	flag.Parse()

	if f.makePreset {
		out, err := json.MarshalIndent(f, "", "\t")
		if err != nil {
			glg.Fatalf("Unable to generate preset: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	if f.preset != "" {
		data, err := os.ReadFile(f.preset)
		if err != nil {
			glg.Fatalf("Unable to read preset from %s: %v", f.preset, err)
		}
		if err := json.Unmarshal(data, &f); err != nil {
			glg.Fatalf("Unable to parse preset from %s: %v", f.preset, err)
		}
	}

	if f.debug {
		bezier.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(&f); err != nil {
		glg.Fatal(err)
	}
}

func run(f *Flags) error {
	points, err := parsePoints(f.Points)
	if err != nil {
		return err
	}
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", f.Width, f.Height)
	}

	r := bezier.NewRasterizer()
	r.Step = f.Step
	switch {
	case f.Channel != "":
		ch, err := bezier.ParseChannel(f.Channel)
		if err != nil {
			return err
		}
		r.Channel = ch
	case f.Naive:
		r.Channel = bezier.Red
	}

	style := bezier.DefaultMarkerStyle
	if f.MarkerColor != "" {
		col, ok := colornames.Map[strings.ToLower(f.MarkerColor)]
		if !ok {
			return fmt.Errorf("unknown marker colour %q", f.MarkerColor)
		}
		style.Color = col
	}

	canvas := bezier.NewCanvas(f.Width, f.Height)
	if f.Markers {
		bezier.DrawMarkers(canvas, points, style)
	}

	if f.Naive {
		err = r.RasterizeNaive(points, canvas)
	} else {
		err = r.Rasterize(points, canvas)
	}
	if err != nil {
		return fmt.Errorf("cannot draw curve: %w", err)
	}
	glg.Infof("curve drawn on %s channel", r.Channel)

	out, err := os.Create(f.Output)
	if err != nil {
		return err
	}
	if err := canvas.WritePNG(out); err != nil {
		out.Close()
		return fmt.Errorf("cannot write %s: %w", f.Output, err)
	}
	if err := out.Close(); err != nil {
		return err
	}
	glg.Infof("image written to %s", f.Output)
	return nil
}

// parsePoints parses control points written as "x,y" pairs separated by
// white space or semicolons.
func parsePoints(s string) ([]vec.Vec2, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == ' ' || r == '\t' || r == '\n'
	})

	points := make([]vec.Vec2, 0, len(fields))
	for _, field := range fields {
		xs, ys, ok := strings.Cut(field, ",")
		if !ok {
			return nil, fmt.Errorf("invalid point %q: expected x,y", field)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", field, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", field, err)
		}
		points = append(points, vec.Vec2{X: x, Y: y})
	}

	if len(points) != 4 {
		return nil, fmt.Errorf("need 4 control points, got %d", len(points))
	}
	return points, nil
}
