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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single curve rendering test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Points [4]vec.Vec2   // control points, in user space
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	CTM    matrix.Matrix // user space to canvas (zero-value means no transform)
}

// ControlPoints returns the control points as a freshly allocated slice.
func (tc TestCase) ControlPoints() []vec.Vec2 {
	pts := tc.Points
	return pts[:]
}

// Path returns the curve as a single open cubic segment, in user space.
func (tc TestCase) Path() path.Path {
	p := tc.Points
	return func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, p[:1]) &&
			yield(path.CmdCubeTo, p[1:])
	}
}

// cubic is a helper to build the control points of a cubic curve.
func cubic(x0, y0, x1, y1, x2, y2, x3, y3 float64) [4]vec.Vec2 {
	return [4]vec.Vec2{pt(x0, y0), pt(x1, y1), pt(x2, y2), pt(x3, y3)}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
