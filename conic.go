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

package cglab

import (
	"image"
	"math"
)

// plot4 writes (x, y) relative to the centre, mirrored across both axes.
func plot4(c Canvas, center image.Point, x, y int) {
	c.Plot(center.X+x, center.Y+y, 255)
	if x != 0 {
		c.Plot(center.X-x, center.Y+y, 255)
	}
	if y != 0 {
		c.Plot(center.X+x, center.Y-y, 255)
		if x != 0 {
			c.Plot(center.X-x, center.Y-y, 255)
		}
	}
}

// plot8 writes (x, y) relative to the centre, mirrored across both axes
// and both diagonals.
func plot8(c Canvas, center image.Point, x, y int) {
	plot4(c, center, x, y)
	if x != y {
		plot4(c, center, y, x)
	}
}

// orbits records the symmetry classes already handed to plot4 or plot8.
// Different samples of the sampling algorithms can round to the same
// pixel, and every pixel must be written once.
type orbits map[image.Point]bool

// first reports whether the class with the given key has not been seen
// before, and marks it as seen.
func (o orbits) first(key image.Point) bool {
	if o[key] {
		return false
	}
	o[key] = true
	return true
}

// octant returns the key of the plot8 class of (x, y).
func octant(x, y int) image.Point {
	return image.Pt(min(x, y), max(x, y))
}

func checkRadius(r ...int) {
	for _, ri := range r {
		if ri < 0 {
			panic("cglab: negative radius")
		}
	}
}

// CircleCanonical draws a circle using the equation x² + y² = r².
// For x between 0 and r/√2 the corresponding y is computed and rounded;
// the remaining octants are obtained by symmetry.
func CircleCanonical(c Canvas, center image.Point, r int) {
	checkRadius(r)

	r2 := float64(r) * float64(r)
	xMax := int(math.Round(float64(r) / math.Sqrt2))
	seen := make(orbits, xMax+1)
	for x := 0; x <= xMax; x++ {
		y := int(math.Round(math.Sqrt(r2 - float64(x*x))))
		if seen.first(octant(x, y)) {
			plot8(c, center, x, y)
		}
	}
}

// CircleParametric draws a circle using x = r·cos t, y = r·sin t.
// The parameter t runs from 0 to π/4 in steps of 1/r, so that
// consecutive points are about one pixel apart.
func CircleParametric(c Canvas, center image.Point, r int) {
	checkRadius(r)
	if r == 0 {
		c.Plot(center.X, center.Y, 255)
		return
	}

	rf := float64(r)
	dt := 1 / rf
	n := int(math.Ceil(math.Pi / 4 / dt))
	seen := make(orbits, n+1)
	for i := 0; i <= n; i++ {
		t := min(float64(i)*dt, math.Pi/4)
		x := int(math.Round(rf * math.Cos(t)))
		y := int(math.Round(rf * math.Sin(t)))
		if seen.first(octant(x, y)) {
			plot8(c, center, x, y)
		}
	}
}

// CircleBresenham draws a circle using Bresenham's algorithm.
//
// Starting at (0, r), the decision variable d is the squared distance
// deficit of the diagonal neighbour.  Depending on its sign, the
// horizontal, vertical or diagonal neighbour is chosen next.  One
// quadrant is computed, the rest is obtained by symmetry.
func CircleBresenham(c Canvas, center image.Point, r int) {
	checkRadius(r)

	x, y := 0, r
	d := 2 * (1 - r)
	for y >= 0 {
		plot4(c, center, x, y)
		switch {
		case d < 0:
			if 2*(d+y)-1 <= 0 {
				x++
				d += 2*x + 1
				continue
			}
		case d > 0:
			if 2*(d-x)-1 > 0 {
				y--
				d += 1 - 2*y
				continue
			}
		}
		x++
		y--
		d += 2*(x-y) + 2
	}
}

// CircleMidpoint draws a circle using the midpoint algorithm.
// One octant is computed, the rest is obtained by symmetry.
func CircleMidpoint(c Canvas, center image.Point, r int) {
	checkRadius(r)

	x, y := 0, r
	d := 1 - r
	for x <= y {
		plot8(c, center, x, y)
		x++
		if d < 0 {
			d += 2*x + 1
		} else {
			y--
			d += 2*(x-y) + 1
		}
	}
}

// degenerateEllipse handles ellipses where at least one semi-axis is
// zero.  The result is an axis-aligned segment (or a single pixel).
func degenerateEllipse(c Canvas, center image.Point, a, b int) bool {
	if a != 0 && b != 0 {
		return false
	}
	for x := -a; x <= a; x++ {
		for y := -b; y <= b; y++ {
			c.Plot(center.X+x, center.Y+y, 255)
		}
	}
	return true
}

// EllipseCanonical draws an ellipse with semi-axes a (horizontal) and
// b (vertical) using the equation x²/a² + y²/b² = 1.
//
// The quadrant is drawn in two passes.  The first pass steps x up to the
// point where the slope is -1, the second pass steps y up to the same
// point from the other side.
func EllipseCanonical(c Canvas, center image.Point, a, b int) {
	checkRadius(a, b)
	if degenerateEllipse(c, center, a, b) {
		return
	}

	af, bf := float64(a), float64(b)
	a2, b2 := af*af, bf*bf
	den := math.Sqrt(a2 + b2)

	xMax := int(math.Round(a2 / den))
	yMax := int(math.Round(b2 / den))
	seen := make(orbits, xMax+yMax+2)
	for x := 0; x <= xMax; x++ {
		xf := float64(x)
		y := int(math.Round(bf * math.Sqrt(max(0, 1-xf*xf/a2))))
		if seen.first(image.Pt(x, y)) {
			plot4(c, center, x, y)
		}
	}

	// the two passes meet near the slope -1 point
	for y := 0; y <= yMax; y++ {
		yf := float64(y)
		x := int(math.Round(af * math.Sqrt(max(0, 1-yf*yf/b2))))
		if seen.first(image.Pt(x, y)) {
			plot4(c, center, x, y)
		}
	}
}

// EllipseParametric draws an ellipse using x = a·cos t, y = b·sin t.
// The parameter t runs from 0 to π/2 in steps of 1/max(a, b).
func EllipseParametric(c Canvas, center image.Point, a, b int) {
	checkRadius(a, b)
	if degenerateEllipse(c, center, a, b) {
		return
	}

	af, bf := float64(a), float64(b)
	dt := 1 / max(af, bf)
	n := int(math.Ceil(math.Pi / 2 / dt))
	seen := make(orbits, n+1)
	for i := 0; i <= n; i++ {
		t := min(float64(i)*dt, math.Pi/2)
		x := int(math.Round(af * math.Cos(t)))
		y := int(math.Round(bf * math.Sin(t)))
		if seen.first(image.Pt(x, y)) {
			plot4(c, center, x, y)
		}
	}
}

// EllipseBresenham draws an ellipse using Bresenham's algorithm.
// This works like [CircleBresenham], but the error updates are weighted
// by a² and b².
func EllipseBresenham(c Canvas, center image.Point, a, b int) {
	checkRadius(a, b)
	if degenerateEllipse(c, center, a, b) {
		return
	}

	a2, b2 := a*a, b*b
	x, y := 0, b
	d := a2 + b2 - 2*a2*y
	for y > 0 {
		plot4(c, center, x, y)
		switch {
		case d < 0:
			if 2*d+2*a2*y-a2 <= 0 {
				x++
				d += b2 * (2*x + 1)
				continue
			}
		case d > 0:
			if 2*d-2*b2*x-b2 > 0 {
				y--
				d += a2 * (1 - 2*y)
				continue
			}
		}
		x++
		y--
		d += b2*(2*x+1) + a2*(1-2*y)
	}

	// flat ellipses may reach the major axis before x = a
	for ; x <= a; x++ {
		plot4(c, center, x, 0)
	}
}

// EllipseMidpoint draws an ellipse using the midpoint algorithm.
//
// In the first region, where the slope is between 0 and -1, x is stepped
// and the sign of the ellipse equation at (x+1, y-½) decides whether y
// decreases.  In the second region y is stepped and the midpoint
// (x+½, y-1) decides whether x increases.  All decision variables are
// scaled by 4 to stay integer.
func EllipseMidpoint(c Canvas, center image.Point, a, b int) {
	checkRadius(a, b)
	if degenerateEllipse(c, center, a, b) {
		return
	}

	a2, b2 := a*a, b*b
	x, y := 0, b

	p := 4*b2 - 4*a2*b + a2
	for b2*x < a2*y {
		plot4(c, center, x, y)
		x++
		if p < 0 {
			p += 4 * b2 * (2*x + 1)
		} else {
			y--
			p += 4*b2*(2*x+1) - 8*a2*y
		}
	}

	q := b2*(2*x+1)*(2*x+1) + 4*a2*(y-1)*(y-1) - 4*a2*b2
	for y > 0 {
		plot4(c, center, x, y)
		if q > 0 {
			y--
			q += 4 * a2 * (1 - 2*y)
		} else {
			x++
			y--
			q += 8*b2*x + 4*a2*(1-2*y)
		}
	}

	for ; x <= a; x++ {
		plot4(c, center, x, 0)
	}
}
