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

import (
	"seehuhn.de/go/geom/matrix"
)

var ctmCases = []TestCase{
	// ========================================
	// Section 1: Uniform Scaling
	// ========================================
	{
		Name:   "scale_2x",
		Points: cubic(0, 20, 5, 0, 15, 0, 20, 20),
		Width:  64,
		Height: 64,
		CTM:    matrix.Scale(2, 2).Translate(12, 12),
	},
	{
		Name:   "scale_half",
		Points: cubic(0, 80, 20, 0, 60, 0, 80, 80),
		Width:  64,
		Height: 64,
		CTM:    matrix.Scale(0.5, 0.5).Translate(12, 12),
	},

	// ========================================
	// Section 2: Rotation
	// ========================================
	{
		Name:   "rotate_90deg",
		Points: cubic(-20, 10, -10, -20, 10, -20, 20, 10),
		Width:  64,
		Height: 64,
		CTM:    matrix.RotateDeg(90).Translate(32, 32),
	},

	// ========================================
	// Section 3: Non-uniform scaling
	// ========================================
	{
		Name:   "stretch_x",
		Points: cubic(0, 50, 5, 10, 15, 10, 20, 50),
		Width:  64,
		Height: 64,
		CTM:    matrix.Scale(3, 1).Translate(2, 0),
	},
}
