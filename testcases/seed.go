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

var seedCases = []TestCase{
	{
		Name:   "disk",
		Width:  64,
		Height: 64,
		Items: []Item{
			{Op: OpCircle, Center: [2]float64{32, 32}, Radius: 25},
			{Op: OpSeed, Color: "#e04040", Boundary: "#000", Points: [][2]float64{{32, 32}}},
		},
	},
	{
		Name:   "annulus",
		Width:  64,
		Height: 64,
		Items: []Item{
			{Op: OpCircle, Center: [2]float64{32, 32}, Radius: 28},
			{Op: OpCircle, Center: [2]float64{32, 32}, Radius: 12},
			{Op: OpSeed, Color: "#40a040", Boundary: "#000", Points: [][2]float64{{32, 10}}},
		},
	},
	{
		Name:   "ellipse_inside",
		Width:  64,
		Height: 64,
		Items: []Item{
			{Op: OpEllipse, Algorithm: "bresenham", Center: [2]float64{32, 32}, A: 29, B: 14},
			{Op: OpSeed, Color: "#4040e0", Boundary: "#000", Points: [][2]float64{{32, 32}}},
		},
	},
	{
		Name:   "comb_outline",
		Width:  64,
		Height: 64,
		Items: []Item{
			{Op: OpPolygon, Algorithm: ModeOutline, Points: comb(6, 58, 52, 4)},
			{Op: OpSeed, Color: "#f0c000", Boundary: "#000", Points: [][2]float64{{30, 50}}},
		},
	},
	{
		Name:   "outside",
		Width:  64,
		Height: 64,
		Items: []Item{
			{Op: OpPolygon, Algorithm: ModeOutline, Points: diamond(32, 32, 20)},
			{Op: OpSeed, Color: "#808080", Boundary: "#000", Points: [][2]float64{{2, 2}}},
		},
	},
}
