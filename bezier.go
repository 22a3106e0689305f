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

// Package bezier evaluates cubic Bézier curves and rasterizes them onto
// an 8-bit RGB canvas.
//
// Curve points are computed with de Casteljau's algorithm. Each sample is
// splatted onto the four surrounding pixels with bilinear weights, and the
// resulting intensities are merged into one colour channel of the canvas
// using a max rule, so that overlapping samples never brighten a pixel
// beyond its brightest contribution.
package bezier

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
