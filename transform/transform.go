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

// Package transform implements affine transformations of the plane.
//
// Transformations are represented by [matrix.Matrix] values, which store
// the six variable entries of a 3×3 homogeneous matrix in PDF order:
// a point (x, y) is mapped to (M[0]·x + M[2]·y + M[4], M[1]·x + M[3]·y + M[5]).
package transform

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Translate returns the transformation which moves every point by (dx, dy).
func Translate(dx, dy float64) matrix.Matrix {
	return matrix.Matrix{1, 0, 0, 1, dx, dy}
}

// Scale returns the transformation which scales by kx horizontally and
// by ky vertically, keeping center fixed.
func Scale(kx, ky float64, center vec.Vec2) matrix.Matrix {
	return matrix.Matrix{
		kx, 0,
		0, ky,
		center.X - kx*center.X, center.Y - ky*center.Y,
	}
}

// Rotate returns the rotation by phi radians around center.  For positive
// phi, the x-axis is turned towards the y-axis.
func Rotate(phi float64, center vec.Vec2) matrix.Matrix {
	sin, cos := math.Sincos(phi)
	return matrix.Matrix{
		cos, sin,
		-sin, cos,
		center.X - cos*center.X + sin*center.Y,
		center.Y - sin*center.X - cos*center.Y,
	}
}

// Combine returns the transformation which first applies first and then
// applies then.
func Combine(first, then matrix.Matrix) matrix.Matrix {
	return matrix.Matrix{
		then[0]*first[0] + then[2]*first[1],
		then[1]*first[0] + then[3]*first[1],
		then[0]*first[2] + then[2]*first[3],
		then[1]*first[2] + then[3]*first[3],
		then[0]*first[4] + then[2]*first[5] + then[4],
		then[1]*first[4] + then[3]*first[5] + then[5],
	}
}

// Apply maps the point p through m.
func Apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// ApplyAll maps every point of pts through m and returns the results in
// a new slice.
func ApplyAll(m matrix.Matrix, pts []vec.Vec2) []vec.Vec2 {
	res := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		res[i] = Apply(m, p)
	}
	return res
}

// Equal reports whether all matrix entries of a and b differ by less than
// eps.
func Equal(a, b matrix.Matrix, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) >= eps {
			return false
		}
	}
	return true
}
