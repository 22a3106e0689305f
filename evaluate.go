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
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Evaluate returns the point at parameter t on the Bézier curve with the
// given control points, using de Casteljau's algorithm.
//
// Any number of control points is accepted; a single point is returned
// unchanged.  The parameter is used as an interpolation weight and is not
// clamped, so values outside [0, 1] extrapolate the curve.
// An empty point list results in an error wrapping [ErrInvalidInput].
func Evaluate(points []vec.Vec2, t float64) (vec.Vec2, error) {
	switch len(points) {
	case 0:
		return vec.Vec2{}, fmt.Errorf("%w: no control points", ErrInvalidInput)
	case 1:
		return points[0], nil
	}

	next := make([]vec.Vec2, len(points)-1)
	for i := range next {
		next[i] = lerp(points[i], points[i+1], t)
	}
	return Evaluate(next, t)
}

// EvaluateCubic returns the point at parameter t on the cubic Bézier curve
// with control points p0, p1, p2, p3, using the Bernstein form
//
//	B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3.
//
// The result agrees with [Evaluate] up to rounding.
func EvaluateCubic(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	omt := 1 - t
	omt2 := omt * omt
	omt3 := omt2 * omt
	t2 := t * t
	t3 := t2 * t
	return p0.Mul(omt3).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t3))
}

// lerp returns (1-t)·a + t·b.
// The result is exactly a for t = 0 and exactly b for t = 1.
func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Mul(1 - t).Add(b.Mul(t))
}
