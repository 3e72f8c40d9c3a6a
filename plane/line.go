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

package plane

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Line is a straight line in implicit form A·x + B·y + C = 0.
// At least one of A and B is non-zero.
type Line struct {
	A, B, C float64
}

// LineThrough returns the line through p1 and p2.
// The points must be distinct.
func LineThrough(p1, p2 vec.Vec2) Line {
	l := Line{
		A: p1.Y - p2.Y,
		B: p2.X - p1.X,
		C: Skew(p1, p2),
	}
	if l.A == 0 && l.B == 0 {
		panic("plane: line through coincident points")
	}
	return l
}

// Normal returns the normal vector (A, B) of the line.
func (l Line) Normal() vec.Vec2 {
	return vec.Vec2{X: l.A, Y: l.B}
}

// Direction returns a vector along the line.
func (l Line) Direction() vec.Vec2 {
	return Perpendicular(l.Normal())
}

// PerpendicularAt returns the line through p which is perpendicular to l.
func (l Line) PerpendicularAt(p vec.Vec2) Line {
	d := l.Direction()
	return Line{A: d.X, B: d.Y, C: -(d.X*p.X + d.Y*p.Y)}
}

// Contains reports whether p lies on the line.
func (l Line) Contains(p vec.Vec2) bool {
	return math.Abs(l.A*p.X+l.B*p.Y+l.C) < Epsilon*math.Hypot(l.A, l.B)
}

// Parallel reports whether the lines a and b are parallel (or coincide).
func Parallel(a, b Line) bool {
	return math.Abs(a.A*b.B-a.B*b.A) < Epsilon
}

// Intersection returns the intersection point of a and b.
// The second return value is false if the lines are parallel.
func Intersection(a, b Line) (vec.Vec2, bool) {
	det := a.A*b.B - a.B*b.A
	if math.Abs(det) < Epsilon {
		return vec.Vec2{}, false
	}
	dx := -a.C*b.B + a.B*b.C
	dy := -a.A*b.C + a.C*b.A
	return vec.Vec2{X: dx / det, Y: dy / det}, true
}

// AngleBetween returns the acute angle between the lines a and b, in the
// range [0, π/2]. Parallel lines give 0.
func AngleBetween(a, b Line) float64 {
	if Parallel(a, b) {
		return 0
	}
	na, nb := a.Normal(), b.Normal()
	cos := math.Abs(Dot(na, nb)) / (Norm(na) * Norm(nb))
	phi := math.Acos(min(cos, 1))
	if phi > math.Pi/2 {
		phi = math.Pi - phi
	}
	return phi
}
