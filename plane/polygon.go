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
	"image"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// SnapMode selects how a new polygon vertex is aligned with the
// previous one.
type SnapMode int

// These are the supported snap modes.
const (
	SnapNone       SnapMode = iota
	SnapHorizontal          // keep the y coordinate of the previous vertex
	SnapVertical            // keep the x coordinate of the previous vertex
	SnapDiagonal            // move onto the nearest 45° diagonal through the previous vertex
)

func (m SnapMode) String() string {
	switch m {
	case SnapNone:
		return "none"
	case SnapHorizontal:
		return "horizontal"
	case SnapVertical:
		return "vertical"
	case SnapDiagonal:
		return "diagonal"
	default:
		return "SnapMode(?)"
	}
}

// Snap returns p, aligned with prev according to mode.
func Snap(prev, p vec.Vec2, mode SnapMode) vec.Vec2 {
	switch mode {
	case SnapHorizontal:
		p.Y = prev.Y
	case SnapVertical:
		p.X = prev.X
	case SnapDiagonal:
		dx := p.X - prev.X
		dy := p.Y - prev.Y
		if dx*dy >= 0 {
			d := (dx + dy) / 2
			p = vec.Vec2{X: prev.X + d, Y: prev.Y + d}
		} else {
			d := (dx - dy) / 2
			p = vec.Vec2{X: prev.X + d, Y: prev.Y - d}
		}
	}
	return p
}

// Polygon is an ordered list of vertices. Once closed, the last vertex
// is connected to the first one.
//
// The zero value is an empty, open polygon.
type Polygon struct {
	Vertices []vec.Vec2
	closed   bool
}

// Add appends a vertex. The vertex is snapped relative to the previous
// vertex according to mode. Adding a vertex to a closed polygon discards
// the old vertices and starts a new polygon.
func (p *Polygon) Add(v vec.Vec2, mode SnapMode) {
	if p.closed {
		p.Reset()
	}
	if n := len(p.Vertices); n > 0 {
		v = Snap(p.Vertices[n-1], v, mode)
	}
	p.Vertices = append(p.Vertices, v)
}

// Close closes the polygon.
func (p *Polygon) Close() error {
	if p.closed {
		return ErrAlreadyClosed
	}
	if len(p.Vertices) < 3 {
		return ErrTooFewVertices
	}
	p.closed = true
	return nil
}

// Closed reports whether the polygon has been closed.
func (p *Polygon) Closed() bool {
	return p.closed
}

// Reset removes all vertices and re-opens the polygon.
func (p *Polygon) Reset() {
	p.Vertices = nil
	p.closed = false
}

// Edges returns the polygon edges as pairs of points. For a closed
// polygon this includes the edge from the last vertex back to the first.
func (p *Polygon) Edges() [][2]vec.Vec2 {
	n := len(p.Vertices)
	if n < 2 {
		return nil
	}
	edges := make([][2]vec.Vec2, 0, n)
	for i := 1; i < n; i++ {
		edges = append(edges, [2]vec.Vec2{p.Vertices[i-1], p.Vertices[i]})
	}
	if p.closed {
		edges = append(edges, [2]vec.Vec2{p.Vertices[n-1], p.Vertices[0]})
	}
	return edges
}

// Path returns the polygon outline as a path.
// The path is closed if and only if the polygon is closed.
func (p *Polygon) Path() *path.Data {
	res := &path.Data{}
	if len(p.Vertices) == 0 {
		return res
	}
	res = res.MoveTo(p.Vertices[0])
	for _, v := range p.Vertices[1:] {
		res = res.LineTo(v)
	}
	if p.closed {
		res = res.Close()
	}
	return res
}

// Turn returns the turn direction at curr, when walking from prev via
// curr to next: +1 for a counter-clockwise turn in a y-up coordinate
// system, -1 for a clockwise turn, and 0 if the points are collinear.
func Turn(prev, curr, next vec.Vec2) int {
	return sign(Skew(curr.Sub(prev), next.Sub(curr)))
}

// Orientation checks that the closed polygon with the given vertices is
// convex, and returns its turn direction (+1 or -1).
// Collinear vertices are allowed, but at least one corner must turn.
func Orientation(vertices []vec.Vec2) (int, error) {
	n := len(vertices)
	if n < 3 {
		return 0, ErrTooFewVertices
	}

	dir := 0
	total := 0.0
	for i := range n {
		prev := vertices[(i+n-1)%n]
		curr := vertices[i]
		next := vertices[(i+1)%n]

		t := Turn(prev, curr, next)
		if t == 0 {
			continue
		}
		if dir == 0 {
			dir = t
		} else if t != dir {
			return 0, ErrNotConvex
		}
		total += math.Abs(turnAngle(curr.Sub(prev), next.Sub(curr)))
	}
	if dir == 0 {
		return 0, ErrNotConvex
	}

	// self-intersecting star shapes turn more than once around
	if total > 2*math.Pi+1e-6 {
		return 0, ErrNotConvex
	}
	return dir, nil
}

// turnAngle returns the signed angle from a to b, in the range (-π, π].
// Unlike [AngleOf], the result is not affected by the wrap-around of the
// polar angle at ±π.
func turnAngle(a, b vec.Vec2) float64 {
	return math.Atan2(Skew(a, b), Dot(a, b))
}

// SnapPoint is like Snap, but for integer pixel coordinates.
// The diagonal offset is truncated toward zero.
func SnapPoint(prev, p image.Point, mode SnapMode) image.Point {
	switch mode {
	case SnapHorizontal:
		p.Y = prev.Y
	case SnapVertical:
		p.X = prev.X
	case SnapDiagonal:
		dx := p.X - prev.X
		dy := p.Y - prev.Y
		if dx*dy >= 0 {
			d := (dx + dy) / 2
			p = image.Point{X: prev.X + d, Y: prev.Y + d}
		} else {
			d := (dx - dy) / 2
			p = image.Point{X: prev.X + d, Y: prev.Y - d}
		}
	}
	return p
}
