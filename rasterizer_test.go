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

package bezier

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/bezier/testcases"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestRasterizeInvalid(t *testing.T) {
	good := testcases.Reference.ControlPoints()

	cases := []struct {
		name   string
		points []vec.Vec2
		modify func(r *Rasterizer)
	}{
		{"no_points", nil, nil},
		{"one_point", good[:1], nil},
		{"three_points", good[:3], nil},
		{"five_points", append(good[:4:4], good[0]), nil},
		{"zero_step", good, func(r *Rasterizer) { r.Step = 0 }},
		{"negative_step", good, func(r *Rasterizer) { r.Step = -0.01 }},
		{"nan_step", good, func(r *Rasterizer) { r.Step = math.NaN() }},
		{"inf_step", good, func(r *Rasterizer) { r.Step = math.Inf(1) }},
		{"tiny_step", good, func(r *Rasterizer) { r.Step = 1e-12 }},
		{"bad_channel", good, func(r *Rasterizer) { r.Channel = Channel(5) }},
	}

	for _, c := range cases {
		for _, naive := range []bool{false, true} {
			name := c.name
			if naive {
				name += "_naive"
			}
			t.Run(name, func(t *testing.T) {
				r := NewRasterizer()
				if c.modify != nil {
					c.modify(r)
				}
				canvas := NewCanvas(700, 700)
				for i := range canvas.Pix {
					canvas.Pix[i] = uint8(i % 7)
				}
				before := bytes.Clone(canvas.Pix)

				var err error
				if naive {
					err = r.RasterizeNaive(c.points, canvas)
				} else {
					err = r.Rasterize(c.points, canvas)
				}
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("error = %v, want ErrInvalidInput", err)
				}
				if !bytes.Equal(before, canvas.Pix) {
					t.Error("canvas modified on invalid input")
				}
			})
		}
	}

	r := NewRasterizer()
	if err := r.Rasterize(good, nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("nil canvas: error = %v, want ErrInvalidInput", err)
	}
	short := &Canvas{Width: 10, Height: 10, Pix: make([]uint8, 10)}
	if err := r.Rasterize(good, short); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("short canvas: error = %v, want ErrInvalidInput", err)
	}
}

func TestRasterizeReference(t *testing.T) {
	tc := testcases.Reference
	points := tc.ControlPoints()

	render := func() *Canvas {
		c := NewCanvas(tc.Width, tc.Height)
		if err := NewRasterizer().Rasterize(points, c); err != nil {
			t.Fatal(err)
		}
		return c
	}
	first := render()
	second := render()

	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("rasterization is not deterministic")
	}
	if m := maxOf(first, Green); m != 255 {
		t.Errorf("max intensity = %d, want 255", m)
	}
	// the end points have integer coordinates
	for _, p := range []vec.Vec2{points[0], points[3]} {
		if v := first.Value(int(p.X), int(p.Y), Green); v != 255 {
			t.Errorf("end point %v has intensity %d, want 255", p, v)
		}
	}
	if n := nonZero(first, Red) + nonZero(first, Blue); n != 0 {
		t.Errorf("%d values written outside the green channel", n)
	}
	if n := nonZero(first, Green); n < 500 {
		t.Errorf("only %d pixels drawn", n)
	}
}

func TestRasterizeIdempotent(t *testing.T) {
	points := testcases.Reference.ControlPoints()
	r := NewRasterizer()

	once := NewCanvas(700, 700)
	if err := r.Rasterize(points, once); err != nil {
		t.Fatal(err)
	}

	twice := NewCanvas(700, 700)
	for range 2 {
		if err := r.Rasterize(points, twice); err != nil {
			t.Fatal(err)
		}
	}
	if !bytes.Equal(once.Pix, twice.Pix) {
		t.Error("drawing a curve twice changed the result")
	}
}

func TestRasterizeGapFree(t *testing.T) {
	// consecutive samples must be less than one pixel apart, so every
	// pixel containing a curve point is lit
	tc := testcases.Reference
	points := tc.ControlPoints()
	c := NewCanvas(tc.Width, tc.Height)
	if err := NewRasterizer().Rasterize(points, c); err != nil {
		t.Fatal(err)
	}

	for i := 0; i <= 997; i++ {
		tt := float64(i) / 997
		p, err := Evaluate(points, tt)
		if err != nil {
			t.Fatal(err)
		}
		lit := false
		for dy := 0; dy <= 1; dy++ {
			for dx := 0; dx <= 1; dx++ {
				if c.Value(int(p.X)+dx, int(p.Y)+dy, Green) > 0 {
					lit = true
				}
			}
		}
		if !lit {
			t.Errorf("no pixel lit near curve point %v (t=%g)", p, tt)
		}
	}
}

func TestRasterizePoint(t *testing.T) {
	type pixel struct {
		x, y int
		v    uint8
	}
	cases := []struct {
		name string
		p    vec.Vec2
		want []pixel
	}{
		{
			name: "integer",
			p:    vec.Vec2{X: 32, Y: 32},
			want: []pixel{{32, 32, 255}},
		},
		{
			name: "fractional",
			p:    vec.Vec2{X: 20.25, Y: 40.75},
			want: []pixel{
				{20, 41, 143}, // left, bottom: 0.75*0.75
				{20, 40, 48},  // left, top: 0.75*0.25
				{21, 41, 48},  // right, bottom: 0.25*0.75
				{21, 40, 16},  // right, top: 0.25*0.25
			},
		},
		{
			name: "half_x_integer_y",
			p:    vec.Vec2{X: 10.5, Y: 3},
			want: []pixel{{10, 3, 128}, {11, 3, 128}},
		},
		{
			name: "origin",
			p:    vec.Vec2{X: 0, Y: 0},
			want: []pixel{{0, 0, 255}},
		},
		{
			name: "partly_outside",
			p:    vec.Vec2{X: -0.5, Y: -0.5},
			want: []pixel{{0, 0, 64}},
		},
		{
			name: "bottom_right",
			p:    vec.Vec2{X: 63.5, Y: 63.5},
			want: []pixel{{63, 63, 64}},
		},
		{
			name: "outside",
			p:    vec.Vec2{X: 100, Y: -7},
			want: nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			canvas := NewCanvas(64, 64)
			points := []vec.Vec2{c.p, c.p, c.p, c.p}
			if err := NewRasterizer().Rasterize(points, canvas); err != nil {
				t.Fatal(err)
			}

			want := NewCanvas(64, 64)
			for _, px := range c.want {
				want.SetValue(px.x, px.y, Green, px.v)
			}
			diff(t, want.Pix, canvas.Pix)
		})
	}
}

func TestRasterizeMaxCombine(t *testing.T) {
	// A horizontal line half way between two pixel rows.  Many samples
	// hit each pixel, each with weight at most 1/2.
	points := pts(5, 10.5, 20, 10.5, 40, 10.5, 59, 10.5)
	c := NewCanvas(64, 64)
	if err := NewRasterizer().Rasterize(points, c); err != nil {
		t.Fatal(err)
	}

	for y := range c.Height {
		for x := range c.Width {
			v := c.Value(x, y, Green)
			switch {
			case y != 10 && y != 11 && v != 0:
				t.Errorf("pixel (%d, %d) = %d, want 0", x, y, v)
			case v > 128:
				t.Errorf("pixel (%d, %d) = %d, exceeds single sample maximum", x, y, v)
			}
		}
	}
	for x := 6; x < 59; x++ {
		if v := c.Value(x, 10, Green); v < 120 {
			t.Errorf("pixel (%d, 10) = %d, want about 128", x, v)
		}
	}

	// existing brighter values are kept
	c = NewCanvas(64, 64)
	c.SetValue(30, 10, Green, 200)
	c.SetValue(30, 20, Green, 50)
	if err := NewRasterizer().Rasterize(points, c); err != nil {
		t.Fatal(err)
	}
	if v := c.Value(30, 10, Green); v != 200 {
		t.Errorf("pixel (30, 10) = %d, want 200", v)
	}
	if v := c.Value(30, 20, Green); v != 50 {
		t.Errorf("pixel (30, 20) = %d, want 50", v)
	}
}

func TestRasterizeIntegerRow(t *testing.T) {
	// floor and ceil coincide for every sample: only row 10 is touched
	points := pts(5, 10, 20, 10, 40, 10, 59, 10)
	c := NewCanvas(64, 64)
	if err := NewRasterizer().Rasterize(points, c); err != nil {
		t.Fatal(err)
	}
	for y := range c.Height {
		for x := range c.Width {
			v := c.Value(x, y, Green)
			if y != 10 && v != 0 {
				t.Errorf("pixel (%d, %d) = %d, want 0", x, y, v)
			}
			if y == 10 && x >= 5 && x <= 59 && v == 0 {
				t.Errorf("pixel (%d, 10) not drawn", x)
			}
		}
	}
}

func TestRasterizeKeepsOtherChannels(t *testing.T) {
	points := testcases.Reference.ControlPoints()
	c := NewCanvas(700, 700)
	for y := range c.Height {
		for x := range c.Width {
			c.SetValue(x, y, Red, uint8(x))
			c.SetValue(x, y, Blue, uint8(y))
		}
	}
	if err := NewRasterizer().Rasterize(points, c); err != nil {
		t.Fatal(err)
	}
	for y := range c.Height {
		for x := range c.Width {
			if c.Value(x, y, Red) != uint8(x) || c.Value(x, y, Blue) != uint8(y) {
				t.Fatalf("pixel (%d, %d) changed outside the green channel", x, y)
			}
		}
	}
}

func TestRasterizeChannel(t *testing.T) {
	points := testcases.Reference.ControlPoints()
	r := NewRasterizer()
	r.Channel = Blue
	c := NewCanvas(700, 700)
	if err := r.Rasterize(points, c); err != nil {
		t.Fatal(err)
	}
	if nonZero(c, Blue) == 0 {
		t.Error("nothing drawn on the blue channel")
	}
	if n := nonZero(c, Red) + nonZero(c, Green); n != 0 {
		t.Errorf("%d values written outside the blue channel", n)
	}
}

func TestRasterizeClip(t *testing.T) {
	points := testcases.Reference.ControlPoints()

	full := NewCanvas(700, 700)
	if err := NewRasterizer().Rasterize(points, full); err != nil {
		t.Fatal(err)
	}

	r := NewRasterizer()
	r.Clip = rect.Rect{LLx: 0, LLy: 0, URx: 350, URy: 700}
	clipped := NewCanvas(700, 700)
	if err := r.Rasterize(points, clipped); err != nil {
		t.Fatal(err)
	}

	for y := range full.Height {
		for x := range full.Width {
			got := clipped.Value(x, y, Green)
			want := full.Value(x, y, Green)
			if x >= 350 {
				want = 0
			}
			if got != want {
				t.Fatalf("pixel (%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestRasterizeCTM(t *testing.T) {
	points := pts(0, 20, 5, 0, 15, 0, 20, 20)
	moved := make([]vec.Vec2, len(points))
	for i, p := range points {
		moved[i] = vec.Vec2{X: 2*p.X + 12, Y: 2*p.Y + 12}
	}

	want := NewCanvas(64, 64)
	if err := NewRasterizer().Rasterize(moved, want); err != nil {
		t.Fatal(err)
	}

	r := NewRasterizer()
	r.CTM = matrix.Matrix{2, 0, 0, 2, 12, 12}
	got := NewCanvas(64, 64)
	if err := r.Rasterize(points, got); err != nil {
		t.Fatal(err)
	}
	diff(t, want.Pix, got.Pix)

	// the zero matrix means no transformation
	r.CTM = matrix.Matrix{}
	plain := NewCanvas(64, 64)
	if err := r.Rasterize(moved, plain); err != nil {
		t.Fatal(err)
	}
	diff(t, want.Pix, plain.Pix)
}

func TestRasterizeCoarseStep(t *testing.T) {
	// a step larger than one samples only the two end points
	points := testcases.Reference.ControlPoints()
	r := NewRasterizer()
	r.Step = 2
	c := NewCanvas(700, 700)
	if err := r.Rasterize(points, c); err != nil {
		t.Fatal(err)
	}
	if n := nonZero(c, Green); n != 2 {
		t.Errorf("%d pixels drawn, want 2", n)
	}
	if c.Value(108, 473, Green) != 255 || c.Value(561, 381, Green) != 255 {
		t.Error("end points not drawn")
	}
}

func TestRasterizeNaive(t *testing.T) {
	tc := testcases.Reference
	points := tc.ControlPoints()

	r := NewRasterizer()
	r.Channel = Red
	c := NewCanvas(tc.Width, tc.Height)
	if err := r.RasterizeNaive(points, c); err != nil {
		t.Fatal(err)
	}
	r.Channel = Green
	if err := r.Rasterize(points, c); err != nil {
		t.Fatal(err)
	}

	if c.Value(108, 473, Red) != 255 {
		t.Error("start point not drawn")
	}
	count := 0
	for y := range c.Height {
		for x := range c.Width {
			v := c.Value(x, y, Red)
			if v == 0 {
				continue
			}
			count++
			if v != 255 {
				t.Fatalf("pixel (%d, %d) = %d, want 255", x, y, v)
			}
			// both renderings must be visually indistinguishable
			near := false
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if c.Value(x+dx, y+dy, Green) > 0 {
						near = true
					}
				}
			}
			if !near {
				t.Errorf("naive pixel (%d, %d) is far from the anti-aliased curve", x, y)
			}
		}
	}
	if count < 500 {
		t.Errorf("only %d pixels drawn", count)
	}
}

func TestRasterizerEval(t *testing.T) {
	points := testcases.Reference.ControlPoints()
	r := NewRasterizer()
	if _, err := r.prepare(points, NewCanvas(1, 1)); err != nil {
		t.Fatal(err)
	}
	for i := 0; i <= 100; i++ {
		tt := float64(i) / 100
		want, err := Evaluate(points, tt)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, want, r.eval(tt), approxVec(1e-9))
	}
}

func TestRasterizerReset(t *testing.T) {
	r := NewRasterizer()
	r.CTM = matrix.Matrix{2, 0, 0, 2, 0, 0}
	r.Clip = rect.Rect{URx: 10, URy: 10}
	r.Step = 0.5
	r.Channel = Blue
	r.Reset()
	diff(t, NewRasterizer(), r, cmp.AllowUnexported(Rasterizer{}))
}

func TestTestCases(t *testing.T) {
	for category, cases := range testcases.All {
		for _, tc := range cases {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				r := NewRasterizer()
				if tc.CTM != (matrix.Matrix{}) {
					r.CTM = tc.CTM
				}
				a := NewCanvas(tc.Width, tc.Height)
				b := NewCanvas(tc.Width, tc.Height)
				if err := r.Rasterize(tc.ControlPoints(), a); err != nil {
					t.Fatal(err)
				}
				if err := r.Rasterize(tc.ControlPoints(), b); err != nil {
					t.Fatal(err)
				}
				if !bytes.Equal(a.Pix, b.Pix) {
					t.Error("rasterization is not deterministic")
				}
				if n := nonZero(a, Red) + nonZero(a, Blue); n != 0 {
					t.Errorf("%d values written outside the green channel", n)
				}
			})
		}
	}
}
