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

var fillCases = []TestCase{
	{
		Name:   "triangle_scanline",
		Width:  64,
		Height: 64,
		Items: []Item{
			{Op: OpPolygon, Points: triangle(10, 50, 32, 10, 54, 50)},
		},
	},
	{
		Name:   "triangle_nonzero",
		Width:  64,
		Height: 64,
		Items: []Item{
			{Op: OpPolygon, Algorithm: ModeNonZero, Points: triangle(10, 50, 32, 10, 54, 50)},
		},
	},
	{
		Name:   "star_scanline",
		Width:  64,
		Height: 64,
		Items: []Item{
			{Op: OpPolygon, Points: fivePointStar(32, 32, 25)},
		},
	},
	{
		Name:   "star_nonzero",
		Width:  64,
		Height: 64,
		Items: []Item{
			{Op: OpPolygon, Algorithm: ModeNonZero, Points: fivePointStar(32, 32, 25)},
		},
	},
	{
		Name:   "star_evenodd",
		Width:  64,
		Height: 64,
		Items: []Item{
			{Op: OpPolygon, Algorithm: ModeEvenOdd, Points: fivePointStar(32, 32, 25)},
		},
	},
	{
		Name:   "rectangle",
		Width:  64,
		Height: 64,
		Items: []Item{
			{Op: OpPolygon, Points: rectangle(10, 10, 44, 44)},
		},
	},
	{
		Name:   "concave_outline",
		Width:  64,
		Height: 64,
		Items: []Item{
			{Op: OpPolygon, Color: "#a0a0a0", Points: comb(6, 58, 52, 4)},
			{Op: OpPolygon, Algorithm: ModeOutline, Points: comb(6, 58, 52, 4)},
		},
	},
}

// triangle returns the vertices of a triangle.
func triangle(x1, y1, x2, y2, x3, y3 float64) [][2]float64 {
	return [][2]float64{{x1, y1}, {x2, y2}, {x3, y3}}
}

// fivePointStar returns a five-pointed star (self-intersecting), with
// vertices rounded to whole pixels.
func fivePointStar(cx, cy, r float64) [][2]float64 {
	var corners [5][2]float64
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		corners[i] = [2]float64{
			math.Round(cx + r*math.Cos(angle)),
			math.Round(cy + r*math.Sin(angle)),
		}
	}

	// connect every second point: 0 -> 2 -> 4 -> 1 -> 3
	res := make([][2]float64, 0, 5)
	for _, i := range []int{0, 2, 4, 1, 3} {
		res = append(res, corners[i])
	}
	return res
}

// rectangle returns the vertices of an axis-aligned rectangle.
func rectangle(x1, y1, x2, y2 float64) [][2]float64 {
	return [][2]float64{{x1, y1}, {x2, y1}, {x2, y2}, {x1, y2}}
}

// diamond returns the vertices of a square rotated by 45°.
func diamond(cx, cy, r float64) [][2]float64 {
	return [][2]float64{{cx, cy - r}, {cx + r, cy}, {cx, cy + r}, {cx - r, cy}}
}

// comb returns a concave polygon with n teeth pointing upwards, standing
// on the base line y = bottom between x0 and x1.
func comb(x0, bottom, x1 float64, n int) [][2]float64 {
	w := (x1 - x0) / float64(2*n-1)
	top := bottom - 4*w
	res := [][2]float64{{x0, bottom}, {x1, bottom}}
	for i := n - 1; i >= 0; i-- {
		l := math.Round(x0 + float64(2*i)*w)
		r := math.Round(x0 + float64(2*i+1)*w)
		res = append(res,
			[2]float64{r, bottom - 2*w},
			[2]float64{r, top},
			[2]float64{l, top},
			[2]float64{l, bottom - 2*w})
	}
	return res
}
