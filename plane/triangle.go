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

import "seehuhn.de/go/geom/vec"

// Triangle is a triangle with non-collinear vertices.
type Triangle struct {
	A, B, C vec.Vec2
}

// NewTriangle returns the triangle ABC.
// If the points are collinear, [ErrCollinear] is returned.
func NewTriangle(a, b, c vec.Vec2) (Triangle, error) {
	if Collinear(a, b, c) {
		return Triangle{}, ErrCollinear
	}
	return Triangle{A: a, B: b, C: c}, nil
}

// Orthocenter returns the intersection point of the altitudes.
func (t Triangle) Orthocenter() vec.Vec2 {
	ha := LineThrough(t.B, t.C).PerpendicularAt(t.A)
	hb := LineThrough(t.C, t.A).PerpendicularAt(t.B)
	h, ok := Intersection(ha, hb)
	if !ok {
		// only possible for degenerate triangles
		panic("plane: altitudes do not intersect")
	}
	return h
}

// Contains reports whether p lies inside the triangle or on its boundary.
// Both vertex orders are accepted.
func (t Triangle) Contains(p vec.Vec2) bool {
	sa := Skew(t.C.Sub(t.B), p.Sub(t.B))
	sb := Skew(t.A.Sub(t.C), p.Sub(t.C))
	sc := Skew(t.B.Sub(t.A), p.Sub(t.A))

	return (sa >= 0 && sb >= 0 && sc >= 0) ||
		(sa <= 0 && sb <= 0 && sc <= 0)
}

// OrthocenterResult describes the outcome of [MaxOrthocenterAngle].
type OrthocenterResult struct {
	Indices     [3]int   // vertex indices into the input slice
	Triangle    Triangle // the selected triangle
	Orthocenter vec.Vec2
	Angle       float64 // angle between line(orthocenter, origin) and the y-axis
}

// MaxOrthocenterAngle searches all triangles formed by three of the given
// points and returns the one whose orthocenter H maximises the angle
// between the line through H and the origin, and the y-axis.
// If H coincides with the origin, the angle is taken to be 0.
// The second return value is false if all triples are collinear.
func MaxOrthocenterAngle(points []vec.Vec2) (OrthocenterResult, bool) {
	yAxis := Line{A: 1, B: 0, C: 0}
	origin := vec.Vec2{}

	best := OrthocenterResult{Angle: -1}
	for i := 0; i < len(points)-2; i++ {
		for j := i + 1; j < len(points)-1; j++ {
			for k := j + 1; k < len(points); k++ {
				t, err := NewTriangle(points[i], points[j], points[k])
				if err != nil {
					continue
				}
				h := t.Orthocenter()
				angle := 0.0
				if !Equal(h, origin) {
					angle = AngleBetween(LineThrough(h, origin), yAxis)
				}
				if angle > best.Angle {
					best = OrthocenterResult{
						Indices:     [3]int{i, j, k},
						Triangle:    t,
						Orthocenter: h,
						Angle:       angle,
					}
				}
			}
		}
	}
	if best.Angle < 0 {
		return OrthocenterResult{}, false
	}
	return best, true
}
