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

package testcases

var precisionCases = []TestCase{
	// subpixel positioning of antialiased fills
	{
		Name:   "subpixel_offset_00",
		Width:  64,
		Height: 64,
		Items:  []Item{offsetRectangle(20, 20, 24, 24, 0.0)},
	},
	{
		Name:   "subpixel_offset_25",
		Width:  64,
		Height: 64,
		Items:  []Item{offsetRectangle(20, 20, 24, 24, 0.25)},
	},
	{
		Name:   "subpixel_offset_50",
		Width:  64,
		Height: 64,
		Items:  []Item{offsetRectangle(20, 20, 24, 24, 0.5)},
	},
	{
		Name:   "subpixel_offset_75",
		Width:  64,
		Height: 64,
		Items:  []Item{offsetRectangle(20, 20, 24, 24, 0.75)},
	},

	// degenerate shapes
	{
		Name:   "zero_length",
		Width:  16,
		Height: 16,
		Items: []Item{
			{Op: OpLine, Algorithm: "dda", Points: [][2]float64{{3, 3}, {3, 3}}},
			{Op: OpLine, Algorithm: "bresenham-float", Points: [][2]float64{{6, 3}, {6, 3}}},
			{Op: OpLine, Algorithm: "bresenham-int", Points: [][2]float64{{9, 3}, {9, 3}}},
			{Op: OpLine, Algorithm: "bresenham-aa", Points: [][2]float64{{12, 3}, {12, 3}}},
			{Op: OpLine, Algorithm: "wu", Points: [][2]float64{{3, 8}, {3, 8}}},
		},
	},
	{
		Name:   "tiny_circles",
		Width:  32,
		Height: 16,
		Items: []Item{
			{Op: OpCircle, Center: [2]float64{4, 8}, Radius: 0},
			{Op: OpCircle, Center: [2]float64{10, 8}, Radius: 1},
			{Op: OpCircle, Center: [2]float64{17, 8}, Radius: 2},
			{Op: OpCircle, Center: [2]float64{26, 8}, Radius: 3},
		},
	},
	{
		Name:   "flat_ellipses",
		Width:  64,
		Height: 16,
		Items: []Item{
			{Op: OpEllipse, Algorithm: "bresenham", Center: [2]float64{32, 4}, A: 30, B: 0},
			{Op: OpEllipse, Algorithm: "midpoint", Center: [2]float64{32, 10}, A: 30, B: 2},
		},
	},

	// shallow slopes, where the tie-breaks of the line algorithms show
	{
		Name:   "shallow_slopes",
		Width:  64,
		Height: 32,
		Items: []Item{
			{Op: OpLine, Algorithm: "dda", Points: [][2]float64{{2, 2}, {62, 4}}},
			{Op: OpLine, Algorithm: "bresenham-float", Points: [][2]float64{{2, 8}, {62, 10}}},
			{Op: OpLine, Algorithm: "bresenham-int", Points: [][2]float64{{2, 14}, {62, 16}}},
			{Op: OpLine, Algorithm: "bresenham-aa", Points: [][2]float64{{2, 20}, {62, 22}}},
			{Op: OpLine, Algorithm: "wu", Points: [][2]float64{{2, 26}, {62, 28}}},
		},
	},
}

// offsetRectangle returns an antialiased w×h rectangle, shifted by offset
// pixels in both directions.
func offsetRectangle(x, y, w, h, offset float64) Item {
	return Item{
		Op:        OpPolygon,
		Algorithm: ModeNonZero,
		Points:    rectangle(x+offset, y+offset, x+w+offset, y+h+offset),
	}
}
