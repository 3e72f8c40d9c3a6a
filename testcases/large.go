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

// largeCases contains scenes on a larger canvas, where the fill algorithms
// handle many scan lines.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Width:  512,
		Height: 512,
		Items: []Item{
			{Op: OpPolygon, Points: rectangle(50, 50, 462, 462)},
		},
	},
	{
		Name:   "large_diamond",
		Width:  512,
		Height: 512,
		Items: []Item{
			{Op: OpPolygon, Algorithm: ModeNonZero, Points: diamond(256, 256, 180)},
		},
	},
	{
		Name:   "large_star_evenodd",
		Width:  512,
		Height: 512,
		Items: []Item{
			{Op: OpPolygon, Algorithm: ModeEvenOdd, Points: fivePointStar(256, 256, 240)},
		},
	},
	{
		Name:   "large_disk",
		Width:  512,
		Height: 512,
		Items: []Item{
			{Op: OpCircle, Center: [2]float64{256, 256}, Radius: 240},
			{Op: OpSeed, Color: "#2080c0", Boundary: "#000", Points: [][2]float64{{256, 256}}},
		},
	},
}
