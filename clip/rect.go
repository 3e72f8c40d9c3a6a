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

// Package clip implements line and polygon clipping.
//
// [Rectangle] clips a segment against an axis-aligned window, using the
// Cohen-Sutherland outcode algorithm.  A [Window] is a convex clip polygon;
// it clips segments with the Cyrus-Beck parametric algorithm and polygons
// with the Sutherland-Hodgman algorithm.
//
// Coordinates are screen coordinates: y grows downwards, so the top edge of
// a rectangle window is at LLy and the bottom edge at URy.
package clip

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/cglab"
	"seehuhn.de/go/cglab/plane"
)

// Outcode bits.  A point inside the window has outcode 0.
const (
	codeTop    = 1 << iota // y < LLy
	codeBottom             // y > URy
	codeRight              // x > URx
	codeLeft               // x < LLx
)

// Outcode returns the Cohen-Sutherland outcode of p with respect to win.
func Outcode(win rect.Rect, p vec.Vec2) int {
	code := 0
	if p.X < win.LLx {
		code |= codeLeft
	}
	if p.X > win.URx {
		code |= codeRight
	}
	if p.Y > win.URy {
		code |= codeBottom
	}
	if p.Y < win.LLy {
		code |= codeTop
	}
	return code
}

// Rectangle clips the segment from p1 to p2 against the window win.
//
// If some part of the segment is inside the window, the end points of
// this part are returned, in the same order as p1 and p2, together with
// true.  Points on the window boundary count as inside.  If the segment
// misses the window, the function returns false.
func Rectangle(win rect.Rect, p1, p2 vec.Vec2) (vec.Vec2, vec.Vec2, bool) {
	c1 := Outcode(win, p1)
	c2 := Outcode(win, p2)
	for range maxMoves {
		if c1|c2 == 0 {
			return p1, p2, true
		}
		if c1&c2 != 0 {
			cglab.Logger().Debug("clip: segment outside window",
				"p1", p1, "p2", p2, "code1", c1, "code2", c2)
			return vec.Vec2{}, vec.Vec2{}, false
		}

		// move one outside end point onto the window boundary
		code := c1
		if code == 0 {
			code = c2
		}
		p, ok := boundaryPoint(win, p1, p2, code)
		if !ok {
			cglab.Logger().Debug("clip: degenerate segment", "p1", p1, "p2", p2)
			return vec.Vec2{}, vec.Vec2{}, false
		}
		if code == c1 {
			p1 = p
			c1 = Outcode(win, p1)
		} else {
			p2 = p
			c2 = Outcode(win, p2)
		}
	}
	return vec.Vec2{}, vec.Vec2{}, false
}

// maxMoves bounds the number of end point moves in [Rectangle].  Every
// move clears at least one outcode bit, except for rounding noise.
const maxMoves = 16

// boundaryPoint returns the intersection of the line through p1 and p2
// with the window edge selected by the highest bit of code.
// The result is false if the line is parallel to that edge.
//
// A free coordinate within [plane.Epsilon] of a window corner is snapped
// onto the corner, so that segments touching only the corner are kept.
func boundaryPoint(win rect.Rect, p1, p2 vec.Vec2, code int) (vec.Vec2, bool) {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	switch {
	case code&codeLeft != 0:
		if dx == 0 {
			return vec.Vec2{}, false
		}
		return vec.Vec2{X: win.LLx, Y: snap(p1.Y+dy*(win.LLx-p1.X)/dx, win.LLy, win.URy)}, true
	case code&codeRight != 0:
		if dx == 0 {
			return vec.Vec2{}, false
		}
		return vec.Vec2{X: win.URx, Y: snap(p1.Y+dy*(win.URx-p1.X)/dx, win.LLy, win.URy)}, true
	case code&codeBottom != 0:
		if dy == 0 {
			return vec.Vec2{}, false
		}
		return vec.Vec2{X: snap(p1.X+dx*(win.URy-p1.Y)/dy, win.LLx, win.URx), Y: win.URy}, true
	default:
		if dy == 0 {
			return vec.Vec2{}, false
		}
		return vec.Vec2{X: snap(p1.X+dx*(win.LLy-p1.Y)/dy, win.LLx, win.URx), Y: win.LLy}, true
	}
}

// snap returns lo or hi if x is within [plane.Epsilon] of it, and x
// otherwise.
func snap(x, lo, hi float64) float64 {
	switch {
	case math.Abs(x-lo) < plane.Epsilon:
		return lo
	case math.Abs(x-hi) < plane.Epsilon:
		return hi
	}
	return x
}
