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

import "errors"

// ErrInvalidInput is returned when a control-point set, a canvas or a
// rasterizer parameter cannot be used.  Returned errors wrap this value,
// use [errors.Is] to test for it.
var ErrInvalidInput = errors.New("invalid input")
