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

// Package plane implements the vector and line geometry used by the
// rasterisation and clipping algorithms.
//
// Points are represented by [vec.Vec2]. All equality and collinearity
// tests use the fixed tolerance [Epsilon].
package plane

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Epsilon is the tolerance for geometric equality and collinearity tests.
const Epsilon = 1e-9

// Sub returns the difference a - b, i.e. the vector from b to a.
func Sub(a, b vec.Vec2) vec.Vec2 {
	return a.Sub(b)
}

// Dot returns the dot product of a and b.
func Dot(a, b vec.Vec2) float64 {
	return a.Dot(b)
}

// Skew returns the skew (2D cross) product of a and b.
// The result is positive if b is counter-clockwise from a in a
// y-up coordinate system.
func Skew(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Norm returns the Euclidean length of v.
func Norm(v vec.Vec2) float64 {
	return v.Length()
}

// Angle returns the polar angle of v, in the range [-π, π].
func Angle(v vec.Vec2) float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleOf returns the angle from direction a to direction b, computed as
// the difference of their polar angles.
func AngleOf(a, b vec.Vec2) float64 {
	return Angle(b) - Angle(a)
}

// Perpendicular returns v rotated by 90° clockwise (in a y-up system).
func Perpendicular(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: v.Y, Y: -v.X}
}

// Unit returns the unit vector in the direction of v.
// The result for the zero vector has NaN components.
func Unit(v vec.Vec2) vec.Vec2 {
	n := Norm(v)
	return vec.Vec2{X: v.X / n, Y: v.Y / n}
}

// Equal reports whether a and b coincide up to [Epsilon] in both coordinates.
func Equal(a, b vec.Vec2) bool {
	return math.Abs(a.X-b.X) < Epsilon && math.Abs(a.Y-b.Y) < Epsilon
}

// Collinear reports whether the three points lie on one line.
func Collinear(a, b, c vec.Vec2) bool {
	return math.Abs(Skew(b.Sub(a), c.Sub(a))) < Epsilon
}

// Degrees converts an angle from radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// sign returns -1, 0 or +1, treating values within Epsilon of zero as zero.
func sign(x float64) int {
	switch {
	case x > Epsilon:
		return 1
	case x < -Epsilon:
		return -1
	default:
		return 0
	}
}
