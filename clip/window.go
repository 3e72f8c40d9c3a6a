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

package clip

import (
	"math"

	"github.com/pkg/errors"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/cglab"
	"seehuhn.de/go/cglab/plane"
)

// Window is a convex clip polygon.
type Window struct {
	vertices []vec.Vec2

	// direction is the turn direction of the polygon, +1 for
	// counter-clockwise and -1 for clockwise in a y-up system.
	direction int
}

// NewWindow returns a clip window with the given vertices.
// The polygon must be convex, and it must have at least three vertices.
// Otherwise, an error wrapping [plane.ErrNotConvex] or
// [plane.ErrTooFewVertices] is returned.
func NewWindow(vertices []vec.Vec2) (*Window, error) {
	dir, err := plane.Orientation(vertices)
	if err != nil {
		return nil, errors.Wrap(err, "clip window")
	}
	return NewWindowOriented(vertices, dir), nil
}

// NewWindowOriented returns a clip window with the given vertices and turn
// direction, without checking for convexity.  The direction must be +1 or
// -1, and must match the actual orientation of the polygon.  Otherwise all
// clip results are undefined.
func NewWindowOriented(vertices []vec.Vec2, direction int) *Window {
	return &Window{
		vertices:  append([]vec.Vec2(nil), vertices...),
		direction: direction,
	}
}

// WindowFromRect returns the clip window covering r.
func WindowFromRect(r rect.Rect) *Window {
	return NewWindowOriented([]vec.Vec2{
		{X: r.LLx, Y: r.LLy},
		{X: r.URx, Y: r.LLy},
		{X: r.URx, Y: r.URy},
		{X: r.LLx, Y: r.URy},
	}, 1)
}

// Vertices returns a copy of the window's vertices.
func (w *Window) Vertices() []vec.Vec2 {
	return append([]vec.Vec2(nil), w.vertices...)
}

// Direction returns the turn direction of the window polygon.
func (w *Window) Direction() int {
	return w.direction
}

// edge returns the start point of clip edge i and its inward normal.
func (w *Window) edge(i int) (vec.Vec2, vec.Vec2) {
	a := w.vertices[i]
	b := w.vertices[(i+1)%len(w.vertices)]
	e := b.Sub(a)
	d := float64(w.direction)
	return a, vec.Vec2{X: -d * e.Y, Y: d * e.X}
}

// Line clips the segment from p1 to p2 against the window, using the
// Cyrus-Beck algorithm.
//
// The visible part of the segment is returned, oriented like the input,
// together with true.  If no part of the segment is visible, the result
// is false.
func (w *Window) Line(p1, p2 vec.Vec2) (vec.Vec2, vec.Vec2, bool) {
	d := p2.Sub(p1)

	// The segment is p1 + t*d for t in [tb, tu].
	tb := 0.0
	tu := 1.0
	for i := range w.vertices {
		a, n := w.edge(i)
		dn := d.Dot(n)
		wn := p1.Sub(a).Dot(n)

		if math.Abs(dn) < plane.Epsilon {
			if wn < -plane.Epsilon {
				cglab.Logger().Debug("clip: segment outside parallel edge",
					"p1", p1, "p2", p2, "edge", i)
				return vec.Vec2{}, vec.Vec2{}, false
			}
			continue
		}

		t := -wn / dn
		if dn > 0 {
			// entering
			if t > 1 {
				return vec.Vec2{}, vec.Vec2{}, false
			}
			tb = max(tb, t)
		} else {
			// leaving
			if t < 0 {
				return vec.Vec2{}, vec.Vec2{}, false
			}
			tu = min(tu, t)
		}
	}

	if tb > tu {
		cglab.Logger().Debug("clip: segment misses window",
			"p1", p1, "p2", p2, "tb", tb, "tu", tu)
		return vec.Vec2{}, vec.Vec2{}, false
	}
	return pointAt(p1, d, tb), pointAt(p1, d, tu), true
}

func pointAt(p, d vec.Vec2, t float64) vec.Vec2 {
	switch t {
	case 0:
		return p
	case 1:
		return p.Add(d)
	}
	return p.Add(d.Mul(t))
}

// Polygon clips the subject polygon against the window, using the
// Sutherland-Hodgman algorithm, and returns the vertices of the clipped
// polygon.
//
// Subject vertices on a window edge count as inside.  Consecutive
// duplicate vertices are removed from the result.  If fewer than three
// vertices remain, the result is nil.
func (w *Window) Polygon(subject []vec.Vec2) []vec.Vec2 {
	poly := dedup(subject)
	for i := range w.vertices {
		if len(poly) < 3 {
			break
		}
		a, n := w.edge(i)
		poly = dedup(clipHalfPlane(poly, a, n))
	}
	if len(poly) < 3 {
		cglab.Logger().Debug("clip: polygon outside window",
			"vertices", len(subject))
		return nil
	}
	return poly
}

// clipHalfPlane clips the closed polygon poly against the half plane
// {p : (p-a)·n >= 0}.
func clipHalfPlane(poly []vec.Vec2, a, n vec.Vec2) []vec.Vec2 {
	side := func(p vec.Vec2) float64 {
		s := p.Sub(a).Dot(n)
		if math.Abs(s) < plane.Epsilon {
			return 0
		}
		return s
	}

	var res []vec.Vec2
	k := len(poly)
	s := poly[k-1]
	sSide := side(s)
	for _, p := range poly {
		pSide := side(p)
		if sSide*pSide < 0 {
			// strict crossing
			t := sSide / (sSide - pSide)
			res = append(res, pointAt(s, p.Sub(s), t))
		}
		if pSide >= 0 {
			res = append(res, p)
		}
		s, sSide = p, pSide
	}
	return res
}

// dedup removes consecutive duplicate vertices from the closed polygon
// poly, including a last vertex equal to the first one.
func dedup(poly []vec.Vec2) []vec.Vec2 {
	res := make([]vec.Vec2, 0, len(poly))
	for _, p := range poly {
		if len(res) > 0 && plane.Equal(res[len(res)-1], p) {
			continue
		}
		res = append(res, p)
	}
	for len(res) > 1 && plane.Equal(res[len(res)-1], res[0]) {
		res = res[:len(res)-1]
	}
	return res
}
