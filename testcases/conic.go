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

import "seehuhn.de/go/cglab"

var conicCases = conicAlgorithmCases()

// conicAlgorithmCases returns concentric circles and a family of ellipses
// for every conic algorithm.
func conicAlgorithmCases() []TestCase {
	var res []TestCase
	for _, alg := range cglab.ConicAlgorithms {
		name := identifier(alg.String())

		circles := TestCase{Name: "circles_" + name, Width: 64, Height: 64}
		for r := 0; r <= 30; r += 5 {
			circles.Items = append(circles.Items, Item{
				Op: OpCircle, Algorithm: alg.String(), Center: [2]float64{32, 32}, Radius: r,
			})
		}
		res = append(res, circles)

		ellipses := TestCase{Name: "ellipses_" + name, Width: 64, Height: 64}
		for k := 0; k <= 6; k++ {
			ellipses.Items = append(ellipses.Items, Item{
				Op: OpEllipse, Algorithm: alg.String(), Center: [2]float64{32, 32},
				A: 30 - 4*k, B: 4 * k,
			})
		}
		res = append(res, ellipses)
	}
	return res
}
