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

package transform

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Figure is the sample drawing used to demonstrate transformations:
// a rhombus together with a closed curve.
type Figure struct {
	Rhombus []vec.Vec2
	Curve   []vec.Vec2
}

// SampleFigure returns the rhombus with vertices (±8, 0), (0, ±3) and the
// curve
//
//	x(t) = a·cos²t + b·cos t - a + b
//	y(t) = a·cos t·sin t + b·sin t
//
// sampled at n equidistant values of t in [0, 2π).
func SampleFigure(a, b float64, n int) Figure {
	f := Figure{
		Rhombus: []vec.Vec2{
			{X: 8, Y: 0},
			{X: 0, Y: 3},
			{X: -8, Y: 0},
			{X: 0, Y: -3},
		},
		Curve: make([]vec.Vec2, n),
	}
	for i := range n {
		t := 2 * math.Pi * float64(i) / float64(n)
		sin, cos := math.Sincos(t)
		f.Curve[i] = vec.Vec2{
			X: a*cos*cos + b*cos - a + b,
			Y: a*cos*sin + b*sin,
		}
	}
	return f
}

// Transform returns a copy of the figure mapped through m.
func (f Figure) Transform(m matrix.Matrix) Figure {
	return Figure{
		Rhombus: ApplyAll(m, f.Rhombus),
		Curve:   ApplyAll(m, f.Curve),
	}
}

// Bounds returns the bounding box of all points of the figure.
func (f Figure) Bounds() rect.Rect {
	b := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, pts := range [][]vec.Vec2{f.Rhombus, f.Curve} {
		for _, p := range pts {
			b.LLx = min(b.LLx, p.X)
			b.LLy = min(b.LLy, p.Y)
			b.URx = max(b.URx, p.X)
			b.URy = max(b.URy, p.Y)
		}
	}
	return b
}

// FitView returns the transformation which maps the region bounds, given
// in mathematical coordinates with the y-axis pointing up, into the centre
// of a width×height screen area with the y-axis pointing down.  The aspect
// ratio is preserved and a margin (in pixels) is kept free on all sides.
func FitView(bounds rect.Rect, width, height, margin float64) matrix.Matrix {
	bw := bounds.URx - bounds.LLx
	bh := bounds.URy - bounds.LLy
	k := 1.0
	if bw > 0 || bh > 0 {
		k = math.Inf(1)
		if bw > 0 {
			k = (width - 2*margin) / bw
		}
		if bh > 0 {
			k = min(k, (height-2*margin)/bh)
		}
	}
	cx := (bounds.LLx + bounds.URx) / 2
	cy := (bounds.LLy + bounds.URy) / 2

	flip := matrix.Matrix{k, 0, 0, -k, 0, 0}
	m := Combine(Translate(-cx, -cy), flip)
	return Combine(m, Translate(width/2, height/2))
}
