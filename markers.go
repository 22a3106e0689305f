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
	"image"
	"image/color"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"
)

// MarkerStyle describes the rings drawn by [DrawMarkers].
type MarkerStyle struct {
	Radius float64     // radius of the ring centre line, in pixels
	Width  float64     // ring thickness, in pixels
	Color  color.Color // ring colour; nil means white
}

// DefaultMarkerStyle draws white rings of radius 3 and thickness 3.
var DefaultMarkerStyle = MarkerStyle{
	Radius: 3,
	Width:  3,
	Color:  color.White,
}

// DrawMarkers draws an anti-aliased ring around each point onto dst.
// Unlike [Rasterizer.Rasterize], this writes all channels of the affected
// pixels.  Markers are normally drawn first, so that a curve rasterized
// afterwards composites over them.
func DrawMarkers(dst *Canvas, points []vec.Vec2, style MarkerStyle) {
	if dst == nil || dst.Width <= 0 || dst.Height <= 0 || len(points) == 0 {
		return
	}
	if style.Width <= 0 {
		return
	}
	col := style.Color
	if col == nil {
		col = color.White
	}

	outer := style.Radius + style.Width/2
	inner := style.Radius - style.Width/2

	z := vector.NewRasterizer(dst.Width, dst.Height)
	for _, p := range points {
		if !finite(p) {
			continue
		}
		// The vector rasterizer accumulates signed area, so the hole is
		// cut by tracing the inner circle in the opposite direction.
		addCircle(z, p, outer, false)
		if inner > 0 {
			addCircle(z, p, inner, true)
		}
	}
	z.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{})
}

// kappa for cubic Bézier approximation of a quarter circle
const kappa = 0.5522847498307936

// addCircle appends a circle made of four cubic segments to z.
func addCircle(z *vector.Rasterizer, c vec.Vec2, r float64, clockwise bool) {
	k := r * kappa
	cx, cy := c.X, c.Y
	if !clockwise {
		z.MoveTo(f32(cx+r), f32(cy))
		z.CubeTo(f32(cx+r), f32(cy-k), f32(cx+k), f32(cy-r), f32(cx), f32(cy-r))
		z.CubeTo(f32(cx-k), f32(cy-r), f32(cx-r), f32(cy-k), f32(cx-r), f32(cy))
		z.CubeTo(f32(cx-r), f32(cy+k), f32(cx-k), f32(cy+r), f32(cx), f32(cy+r))
		z.CubeTo(f32(cx+k), f32(cy+r), f32(cx+r), f32(cy+k), f32(cx+r), f32(cy))
	} else {
		z.MoveTo(f32(cx+r), f32(cy))
		z.CubeTo(f32(cx+r), f32(cy+k), f32(cx+k), f32(cy+r), f32(cx), f32(cy+r))
		z.CubeTo(f32(cx-k), f32(cy+r), f32(cx-r), f32(cy+k), f32(cx-r), f32(cy))
		z.CubeTo(f32(cx-r), f32(cy-k), f32(cx-k), f32(cy-r), f32(cx), f32(cy-r))
		z.CubeTo(f32(cx+k), f32(cy-r), f32(cx+r), f32(cy-k), f32(cx+r), f32(cy))
	}
	z.ClosePath()
}

func f32(x float64) float32 {
	return float32(x)
}
