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
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"
)

// Channel selects one of the three colour channels of a [Canvas].
type Channel int

// The channels of a [Canvas], in memory order.
const (
	Red Channel = iota
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// ParseChannel converts a channel name ("red", "green" or "blue", case
// insensitive) to a Channel.
func ParseChannel(s string) (Channel, error) {
	switch strings.ToLower(s) {
	case "red", "r":
		return Red, nil
	case "green", "g":
		return Green, nil
	case "blue", "b":
		return Blue, nil
	}
	return 0, fmt.Errorf("%w: unknown channel %q", ErrInvalidInput, s)
}

func (c Channel) valid() bool {
	return c >= Red && c <= Blue
}

// Canvas is a fixed-size raster of 8-bit RGB pixels.
// Pixels are stored in row-major order, three bytes per pixel.
//
// Canvas implements [draw.Image], so that markers, text or other overlays
// can be drawn with the image/draw ecosystem before or after a curve is
// rasterized.  The alpha component is ignored: every pixel is opaque.
type Canvas struct {
	Width  int
	Height int

	// Pix holds the pixel data.  The channel ch of the pixel at (x, y)
	// is at Pix[3*(y*Width+x)+int(ch)].
	Pix []uint8
}

var _ draw.Image = (*Canvas)(nil)

// NewCanvas allocates a black canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	return &Canvas{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, 3*width*height),
	}
}

// Clear sets all pixels to black.
func (c *Canvas) Clear() {
	clear(c.Pix)
}

// InBounds reports whether (x, y) lies inside the canvas.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// Value returns one channel of the pixel at (x, y).
// Pixels outside the canvas read as 0.
func (c *Canvas) Value(x, y int, ch Channel) uint8 {
	if !c.addressable(x, y) || !ch.valid() {
		return 0
	}
	return c.Pix[c.offset(x, y)+int(ch)]
}

// SetValue sets one channel of the pixel at (x, y).
// Pixels outside the canvas are ignored.
func (c *Canvas) SetValue(x, y int, ch Channel, v uint8) {
	if !c.addressable(x, y) || !ch.valid() {
		return
	}
	c.Pix[c.offset(x, y)+int(ch)] = v
}

// maxValue raises one channel of an in-bounds pixel to v, if v is larger
// than the stored value.  It reports whether the pixel changed.
func (c *Canvas) maxValue(x, y int, ch Channel, v uint8) bool {
	i := c.offset(x, y) + int(ch)
	if v <= c.Pix[i] {
		return false
	}
	c.Pix[i] = v
	return true
}

// addressable reports whether (x, y) lies inside the canvas and Pix is
// large enough to hold it.
func (c *Canvas) addressable(x, y int) bool {
	return c.InBounds(x, y) && c.complete()
}

// complete reports whether Pix holds all Width*Height pixels.
func (c *Canvas) complete() bool {
	return len(c.Pix) >= 3*c.Width*c.Height
}

func (c *Canvas) offset(x, y int) int {
	return 3 * (y*c.Width + x)
}

// ColorModel implements [image.Image].
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements [image.Image].
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.Width, c.Height)
}

// At implements [image.Image].
func (c *Canvas) At(x, y int) color.Color {
	if !c.addressable(x, y) {
		return color.RGBA{}
	}
	i := c.offset(x, y)
	return color.RGBA{R: c.Pix[i], G: c.Pix[i+1], B: c.Pix[i+2], A: 0xff}
}

// Set implements [draw.Image].
func (c *Canvas) Set(x, y int, col color.Color) {
	if !c.addressable(x, y) {
		return
	}
	rgba := color.RGBAModel.Convert(col).(color.RGBA)
	i := c.offset(x, y)
	c.Pix[i] = rgba.R
	c.Pix[i+1] = rgba.G
	c.Pix[i+2] = rgba.B
}

// WritePNG encodes the canvas as an 8-bit RGB PNG image.
// If Pix is too short for the canvas size, an error wrapping
// [ErrInvalidInput] is returned and nothing is written.
func (c *Canvas) WritePNG(w io.Writer) error {
	if !c.complete() {
		return fmt.Errorf("%w: canvas buffer too short for %dx%d",
			ErrInvalidInput, c.Width, c.Height)
	}
	img := image.NewRGBA(c.Bounds())
	for y := range c.Height {
		src := c.Pix[c.offset(0, y):c.offset(c.Width, y)]
		dst := img.Pix[y*img.Stride:]
		for x := range c.Width {
			dst[4*x] = src[3*x]
			dst[4*x+1] = src[3*x+1]
			dst[4*x+2] = src[3*x+2]
			dst[4*x+3] = 0xff
		}
	}
	return png.Encode(w, img)
}
