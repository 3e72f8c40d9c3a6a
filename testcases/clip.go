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

import "math"

var clipCases = []TestCase{
	{
		Name:   "rect_sun",
		Width:  64,
		Height: 64,
		Items: []Item{
			{Op: OpLine, Color: "#c0c0c0", Points: spokes(32, 32, 30, 16)},
			{
				Op: OpClipRect, Color: "#d02020", Boundary: "#2020d0",
				Window: [][2]float64{{16, 20}, {48, 44}}, Points: spokes(32, 32, 30, 16),
			},
		},
	},
	{
		Name:   "rect_crossing",
		Width:  64,
		Height: 64,
		Items: []Item{
			{
				Op: OpClipRect, Boundary: "#2020d0",
				Window: [][2]float64{{10, 10}, {54, 54}},
				Points: [][2]float64{
					{0, 0}, {63, 63},
					{0, 32}, {63, 40},
					{20, 0}, {20, 63},
					{0, 60}, {60, 0},
					{-10, 5}, {70, 5}, // above the window
				},
			},
		},
	},
	{
		Name:   "convex_sun",
		Width:  64,
		Height: 64,
		Items: []Item{
			{Op: OpLine, Color: "#c0c0c0", Points: spokes(32, 32, 30, 16)},
			{
				Op: OpClipConvex, Color: "#d02020", Boundary: "#2020d0",
				Window: hexagon(32, 32, 20), Points: spokes(32, 32, 30, 16),
			},
		},
	},
	{
		Name:   "convex_clockwise",
		Width:  64,
		Height: 64,
		Items: []Item{
			{
				Op: OpClipConvex, Color: "#d02020", Boundary: "#2020d0",
				Window: reversed(hexagon(32, 32, 20)),
				Points: [][2]float64{{2, 8}, {62, 56}, {2, 56}, {62, 8}},
			},
		},
	},
	{
		Name:   "polygon_star",
		Width:  64,
		Height: 64,
		Items: []Item{
			{Op: OpPolygon, Algorithm: ModeOutline, Color: "#c0c0c0", Points: fivePointStar(32, 32, 30)},
			{
				Op: OpClipPolygon, Color: "#d02020", Boundary: "#2020d0",
				Window: hexagon(32, 32, 18), Points: rectangle(4, 24, 60, 58),
			},
		},
	},
	{
		Name:   "polygon_outside",
		Width:  64,
		Height: 64,
		Items: []Item{
			{
				Op: OpClipPolygon, Color: "#d02020", Boundary: "#2020d0",
				Window: rectangle(4, 4, 28, 28), Points: triangle(36, 36, 60, 40, 44, 60),
			},
		},
	},
}

// hexagon returns a regular hexagon with vertices rounded to whole pixels.
func hexagon(cx, cy, r float64) [][2]float64 {
	res := make([][2]float64, 6)
	for i := range res {
		phi := float64(i) * math.Pi / 3
		res[i] = [2]float64{math.Round(cx + r*math.Cos(phi)), math.Round(cy + r*math.Sin(phi))}
	}
	return res
}

// reversed returns the points in reverse order.
func reversed(ps [][2]float64) [][2]float64 {
	res := make([][2]float64, len(ps))
	for i, p := range ps {
		res[len(ps)-1-i] = p
	}
	return res
}
