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

package testcases

var cubicCases = []TestCase{
	Reference,
	{
		Name:   "arch",
		Points: cubic(10, 50, 20, 10, 44, 10, 54, 50),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "s_shape",
		Points: cubic(8, 56, 8, 8, 56, 56, 56, 8),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "loop",
		Points: cubic(10, 40, 70, 10, -6, 10, 54, 40),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cusp",
		Points: cubic(10, 50, 54, 10, 10, 10, 54, 50),
		Width:  64,
		Height: 64,
	},
	{
		// control points on the chord: a straight line
		Name:   "straight",
		Points: cubic(5.5, 10.5, 20.5, 25.5, 35.5, 40.5, 50.5, 55.5),
		Width:  64,
		Height: 64,
	},
	{
		// control polygon doubles back along the chord
		Name:   "overshoot",
		Points: cubic(10, 32, 80, 32, -16, 32, 54, 32),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "wide",
		Points: cubic(20, 380, 200, -100, 600, 600, 780, 20),
		Width:  800,
		Height: 400,
	},
}

var precisionCases = []TestCase{
	// Section 1: horizontal lines at sub-pixel offsets
	{
		Name:   "horizontal_y_integer",
		Points: cubic(5, 10, 20, 10, 40, 10, 59, 10),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "horizontal_y_quarter",
		Points: cubic(5, 10.25, 20, 10.25, 40, 10.25, 59, 10.25),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "horizontal_y_half",
		Points: cubic(5, 10.5, 20, 10.5, 40, 10.5, 59, 10.5),
		Width:  64,
		Height: 64,
	},

	// Section 2: vertical lines at sub-pixel offsets
	{
		Name:   "vertical_x_integer",
		Points: cubic(32, 5, 32, 20, 32, 40, 32, 59),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "vertical_x_half",
		Points: cubic(32.5, 5, 32.5, 20, 32.5, 40, 32.5, 59),
		Width:  64,
		Height: 64,
	},

	// Section 3: diagonal through pixel corners
	{
		Name:   "diagonal_corners",
		Points: cubic(4, 4, 20, 20, 40, 40, 60, 60),
		Width:  64,
		Height: 64,
	},
}

var edgeCases = []TestCase{
	{
		// touches the canvas border at both ends
		Name:   "border_endpoints",
		Points: cubic(0, 0, 20, 63, 44, 0, 63, 63),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "leaves_canvas",
		Points: cubic(-20, 32, 20, -40, 44, 104, 84, 32),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "outside",
		Points: cubic(-50, -50, -20, -80, 120, -90, 150, -40),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "right_bottom_edge",
		Points: cubic(63.5, 10, 63.9, 30, 63.9, 50, 10, 63.5),
		Width:  64,
		Height: 64,
	},
}

var degenerateCases = []TestCase{
	{
		Name:   "point_integer",
		Points: cubic(32, 32, 32, 32, 32, 32, 32, 32),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "point_fractional",
		Points: cubic(20.25, 40.75, 20.25, 40.75, 20.25, 40.75, 20.25, 40.75),
		Width:  64,
		Height: 64,
	},
	{
		// endpoints coincide, the curve is a closed teardrop
		Name:   "closed",
		Points: cubic(32, 54, 4, 4, 60, 4, 32, 54),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "corner_pixel",
		Points: cubic(0, 0, 0, 0, 0, 0, 0, 0),
		Width:  64,
		Height: 64,
	},
}
