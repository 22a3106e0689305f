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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approxVec compares vec.Vec2 values coordinate-wise with the given
// absolute tolerance.
func approxVec(eps float64) cmp.Option {
	return cmp.Comparer(func(a, b vec.Vec2) bool {
		return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
	})
}

// nonZero returns the number of non-zero values in channel ch.
func nonZero(c *Canvas, ch Channel) int {
	n := 0
	for y := range c.Height {
		for x := range c.Width {
			if c.Value(x, y, ch) != 0 {
				n++
			}
		}
	}
	return n
}

// maxOf returns the largest value in channel ch.
func maxOf(c *Canvas, ch Channel) uint8 {
	var m uint8
	for y := range c.Height {
		for x := range c.Width {
			m = max(m, c.Value(x, y, ch))
		}
	}
	return m
}

func pts(xy ...float64) []vec.Vec2 {
	res := make([]vec.Vec2, len(xy)/2)
	for i := range res {
		res[i] = vec.Vec2{X: xy[2*i], Y: xy[2*i+1]}
	}
	return res
}
