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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Rasterizer draws cubic Bézier curves into one channel of a [Canvas].
// Create one instance and reuse it for multiple curves.
//
// A Rasterizer is not safe for concurrent use, and the canvas must not be
// written by anybody else while a curve is being drawn.
type Rasterizer struct {
	// CTM transforms control points from user space to canvas pixel
	// coordinates.  The zero matrix is treated as the identity.
	CTM matrix.Matrix

	// Clip, if non-empty, restricts writes to this rectangle in canvas
	// pixel coordinates.  Writes outside the canvas are always skipped.
	Clip rect.Rect

	// Step is the distance between consecutive curve parameters.
	// Must be positive.  The curve is always sampled at t = 0 and t = 1.
	Step float64

	// Channel is the canvas channel which receives the curve intensity.
	Channel Channel

	pts  [4]vec.Vec2 // control points in device space
	work [4]vec.Vec2 // de Casteljau scratch space
}

// NewRasterizer returns a Rasterizer with the default parameters:
// identity CTM, no clip, a parameter step of 1e-4 and the green channel.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{
		CTM:     matrix.Identity,
		Step:    defaultStep,
		Channel: Green,
	}
}

// Reset restores the default parameters.
func (r *Rasterizer) Reset() {
	r.CTM = matrix.Identity
	r.Clip = rect.Rect{}
	r.Step = defaultStep
	r.Channel = Green
}

// Rasterize draws the cubic Bézier curve with the given four control
// points into r.Channel of dst.
//
// Every sampled curve point distributes its intensity over the four
// surrounding pixels with bilinear weights.  A pixel channel is only ever
// raised, to the largest intensity any single sample assigns to it; the
// other channels of dst are left untouched.  Pixels outside the canvas
// (or outside r.Clip) are skipped.
//
// If the arguments or the rasterizer parameters are invalid, an error
// wrapping [ErrInvalidInput] is returned and dst is not modified.
func (r *Rasterizer) Rasterize(points []vec.Vec2, dst *Canvas) error {
	n, err := r.prepare(points, dst)
	if err != nil {
		return err
	}

	changed := 0
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		changed += r.splat(r.eval(t), dst)
	}

	Logger().Debug("rasterized cubic",
		"samples", n+1,
		"changed", changed,
		"channel", r.Channel)
	return nil
}

// RasterizeNaive draws the curve without anti-aliasing, using the
// closed-form Bernstein polynomial.  Every sample sets the pixel which
// contains it to full intensity.  This is intended for visual comparison
// with [Rasterizer.Rasterize].
//
// Validation and clipping work as for Rasterize.
func (r *Rasterizer) RasterizeNaive(points []vec.Vec2, dst *Canvas) error {
	n, err := r.prepare(points, dst)
	if err != nil {
		return err
	}

	changed := 0
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		p := EvaluateCubic(r.pts[0], r.pts[1], r.pts[2], r.pts[3], t)
		if !finite(p) {
			continue
		}
		x := int(math.Floor(p.X))
		y := int(math.Floor(p.Y))
		if r.writable(dst, x, y) && dst.maxValue(x, y, r.Channel, 255) {
			changed++
		}
	}

	Logger().Debug("rasterized cubic (naive)",
		"samples", n+1,
		"changed", changed,
		"channel", r.Channel)
	return nil
}

// prepare validates the arguments, stores the device-space control
// points and returns the number of parameter intervals.
func (r *Rasterizer) prepare(points []vec.Vec2, dst *Canvas) (int, error) {
	if len(points) != 4 {
		return 0, fmt.Errorf("%w: need 4 control points, got %d", ErrInvalidInput, len(points))
	}
	if dst == nil {
		return 0, fmt.Errorf("%w: nil canvas", ErrInvalidInput)
	}
	if !dst.complete() {
		return 0, fmt.Errorf("%w: canvas buffer too short for %dx%d",
			ErrInvalidInput, dst.Width, dst.Height)
	}
	if !(r.Step > 0) || math.IsInf(r.Step, 0) {
		return 0, fmt.Errorf("%w: parameter step %g", ErrInvalidInput, r.Step)
	}
	n := math.Ceil(1 / r.Step)
	if n > maxSamples {
		return 0, fmt.Errorf("%w: parameter step %g is too small", ErrInvalidInput, r.Step)
	}
	if !r.Channel.valid() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidInput, r.Channel)
	}

	ctm := r.CTM
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}
	for i, p := range points {
		r.pts[i] = vec.Vec2{
			X: ctm[0]*p.X + ctm[2]*p.Y + ctm[4],
			Y: ctm[1]*p.X + ctm[3]*p.Y + ctm[5],
		}
	}
	return int(n), nil
}

// eval is the allocation-free form of [Evaluate] for the four device-space
// control points: it reduces the control polygon in place in r.work.
func (r *Rasterizer) eval(t float64) vec.Vec2 {
	w := r.work[:]
	copy(w, r.pts[:])
	for n := len(w) - 1; n > 0; n-- {
		for i := range n {
			w[i] = lerp(w[i], w[i+1], t)
		}
	}
	return w[0]
}

// splat distributes the intensity of the curve point p over the four
// surrounding pixels and returns the number of pixels which changed.
//
// When a coordinate of p is an integer, floor and ceil coincide and two
// corners address the same pixel; the max rule then keeps the weight-1
// contribution, so no special case is needed.
func (r *Rasterizer) splat(p vec.Vec2, dst *Canvas) int {
	if !finite(p) {
		return 0
	}

	left := math.Floor(p.X)
	right := math.Ceil(p.X)
	top := math.Floor(p.Y)
	bottom := math.Ceil(p.Y)

	rightWeight := p.X - left
	leftWeight := 1 - rightWeight
	bottomWeight := p.Y - top
	topWeight := 1 - bottomWeight

	xl, xr := int(left), int(right)
	yt, yb := int(top), int(bottom)

	changed := 0
	for _, c := range [4]struct {
		x, y int
		w    float64
	}{
		{xl, yb, leftWeight * bottomWeight},
		{xl, yt, leftWeight * topWeight},
		{xr, yb, rightWeight * bottomWeight},
		{xr, yt, rightWeight * topWeight},
	} {
		if !r.writable(dst, c.x, c.y) {
			continue
		}
		if dst.maxValue(c.x, c.y, r.Channel, intensity(c.w)) {
			changed++
		}
	}
	return changed
}

// writable reports whether the pixel (x, y) lies inside both the canvas
// and the clip rectangle.
func (r *Rasterizer) writable(dst *Canvas, x, y int) bool {
	if !dst.InBounds(x, y) {
		return false
	}
	clip := r.Clip
	if clip.URx <= clip.LLx || clip.URy <= clip.LLy {
		return true
	}
	fx, fy := float64(x), float64(y)
	return fx >= clip.LLx && fx+1 <= clip.URx && fy >= clip.LLy && fy+1 <= clip.URy
}

// intensity converts a weight in [0, 1] to an 8-bit channel value.
func intensity(w float64) uint8 {
	return uint8(max(0, min(255, math.Round(255*w))))
}

// finite reports whether p can be converted to pixel indices.
// Points further than maxCoord from the origin are never inside a canvas.
func finite(p vec.Vec2) bool {
	return p.X > -maxCoord && p.X < maxCoord && p.Y > -maxCoord && p.Y < maxCoord
}

// Default values for rasterizer parameters.
const (
	// defaultStep gives consecutive samples less than a pixel apart for
	// curves of a few thousand pixels in length.
	defaultStep = 1e-4

	// maxSamples limits the work done by a single call.
	maxSamples = 1 << 26

	// maxCoord bounds the sample coordinates converted to int.
	maxCoord = 1 << 30
)
