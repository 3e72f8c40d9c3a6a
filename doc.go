// seehuhn.de/go/cglab - computer graphics lab algorithms
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

// Package cglab implements the classic raster algorithms of an
// introductory computer graphics course.
//
// The package itself contains the line rasterisers (DDA, Bresenham in
// floating-point, integer and antialiased form, and Xiaolin Wu's
// algorithm) and the circle and ellipse rasterisers (canonical equation,
// parametric equation, Bresenham and midpoint).  All of these write
// pixels into a [Canvas].  [Draw] selects an algorithm by value, so that
// callers can switch between algorithms without hard-coding function
// names.
//
// Related functionality lives in sub-packages:
//   - plane: points, implicit lines, triangles and polygons
//   - transform: affine transformations and transformation chains
//   - fill: scan-line polygon filling, seed filling and antialiased
//     coverage filling
//   - clip: Cohen-Sutherland, Cyrus-Beck and Sutherland-Hodgman clipping
//
// Coordinates are screen coordinates: x grows to the right and y grows
// downwards.
package cglab

//go:generate go run ./testcases/export
