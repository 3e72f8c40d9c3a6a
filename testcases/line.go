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

import (
	"math"

	"seehuhn.de/go/cglab"
)

var lineCases = lineAlgorithmCases()

// lineAlgorithmCases returns one "sun" of segments in all directions for
// every line algorithm.
func lineAlgorithmCases() []TestCase {
	var res []TestCase
	for _, alg := range cglab.LineAlgorithms {
		res = append(res, TestCase{
			Name:   "sun_" + identifier(alg.String()),
			Width:  64,
			Height: 64,
			Items: []Item{
				{Op: OpLine, Algorithm: alg.String(), Points: spokes(32, 32, 28, 24)},
			},
		})
	}
	res = append(res,
		TestCase{
			Name:   "axis_parallel",
			Width:  64,
			Height: 64,
			Items: []Item{
				{Op: OpLine, Algorithm: "dda", Points: [][2]float64{
					{4, 10}, {59, 10}, // horizontal
					{59, 20}, {4, 20}, // horizontal, reversed
					{10, 30}, {10, 59}, // vertical
					{20, 59}, {20, 30}, // vertical, reversed
				}},
			},
		},
		TestCase{
			Name:   "wu_over_background",
			Width:  64,
			Height: 64,
			Items: []Item{
				{Op: OpPolygon, Color: "#3060c0", Points: [][2]float64{{0, 0}, {63, 0}, {63, 31}, {0, 31}}},
				{Op: OpLine, Algorithm: "wu", Color: "#ffd000", Points: spokes(32, 32, 28, 12)},
			},
		},
	)
	return res
}

// spokes returns n segments from (cx, cy) to points on a circle of
// radius r, as consecutive pairs of points.
func spokes(cx, cy, r float64, n int) [][2]float64 {
	res := make([][2]float64, 0, 2*n)
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		res = append(res,
			[2]float64{cx, cy},
			[2]float64{math.Round(cx + r*math.Cos(phi)), math.Round(cy + r*math.Sin(phi))})
	}
	return res
}

// identifier maps an algorithm name to a test case name component.
func identifier(name string) string {
	b := []byte(name)
	for i, c := range b {
		if c == '-' {
			b[i] = '_'
		}
	}
	return string(b)
}
