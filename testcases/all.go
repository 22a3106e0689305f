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

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference image filenames.
var All = map[string][]TestCase{
	"cubic":      cubicCases,
	"precision":  precisionCases,
	"edge":       edgeCases,
	"degenerate": degenerateCases,
	"ctm":        ctmCases,
}

// Reference is the curve used as the default example: four control
// points on a 700x700 canvas.
var Reference = TestCase{
	Name:   "reference",
	Points: cubic(108, 473, 232, 188, 485, 113, 561, 381),
	Width:  700,
	Height: 700,
}
