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

var transformCases = []TestCase{
	{
		Name:   "figure",
		Width:  96,
		Height: 96,
		Items: []Item{
			{Op: OpFigure},
		},
	},
	{
		Name:   "figure_rotated",
		Width:  96,
		Height: 96,
		Items: []Item{
			{Op: OpFigure, Color: "#c0c0c0"},
			{Op: OpFigure, Color: "#d02020", Steps: []Step{
				{Kind: "rotate", Angle: 30},
			}},
		},
	},
	{
		Name:   "figure_scaled",
		Width:  96,
		Height: 96,
		Items: []Item{
			{Op: OpFigure, Color: "#c0c0c0"},
			{Op: OpFigure, Color: "#d02020", Steps: []Step{
				{Kind: "scale", X: 0.5, Y: 1.5, Center: [2]float64{0, 0}},
			}},
		},
	},
	{
		Name:   "figure_chain",
		Width:  96,
		Height: 96,
		Items: []Item{
			{Op: OpFigure, Color: "#c0c0c0", Algorithm: "wu"},
			{Op: OpFigure, Color: "#2020d0", Algorithm: "wu", Steps: []Step{
				{Kind: "translate", X: 2, Y: 1},
				{Kind: "rotate", Angle: -45, Center: [2]float64{2, 1}},
				{Kind: "scale", X: 0.8, Y: 0.8, Center: [2]float64{2, 1}},
			}},
		},
	},
}
