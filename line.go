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

// Segment is a line segment between two pixel centres.
// Both end points are included in the rasterised line.
type Segment struct {
	P1, P2 image.Point
}

// Steps returns the number of steps along the driving axis,
// i.e. max(|Δx|, |Δy|).  A line drawn for s consists of
// s.Steps()+1 pixels.
func (s Segment) Steps() int {
	return max(abs(s.P2.X-s.P1.X), abs(s.P2.Y-s.P1.Y))
}

// bresenhamSetup holds the state shared by the Bresenham variants.
// The field dx is the delta along the driving axis and dy the delta
// along the other axis.  If swapped is true, the driving axis is y.
type bresenhamSetup struct {
	x, y    int
	sx, sy  int
	dx, dy  int
	swapped bool
}

func newBresenham(s Segment) bresenhamSetup {
	b := bresenhamSetup{
		x:  s.P1.X,
		y:  s.P1.Y,
		sx: sign(s.P2.X - s.P1.X),
		sy: sign(s.P2.Y - s.P1.Y),
		dx: abs(s.P2.X - s.P1.X),
		dy: abs(s.P2.Y - s.P1.Y),
	}
	if b.dy > b.dx {
		b.dx, b.dy = b.dy, b.dx
		b.swapped = true
	}
	return b
}

// stepDriving advances the point along the driving axis.
func (b *bresenhamSetup) stepDriving() {
	if b.swapped {
		b.y += b.sy
	} else {
		b.x += b.sx
	}
}

// stepOther advances the point along the non-driving axis.
func (b *bresenhamSetup) stepOther() {
	if b.swapped {
		b.x += b.sx
	} else {
		b.y += b.sy
	}
}

// DDA draws a line using the digital differential analyser.
//
// The position along the line is computed in floating point and rounded
// to the nearest pixel.  Exact half-way positions are rounded in the
// direction of travel, so that a line and its reverse cover the same
// pixels up to the choice at ties.
func DDA(c Canvas, s Segment) {
	step := s.Steps()
	if step == 0 {
		c.Plot(s.P1.X, s.P1.Y, 255)
		return
	}

	xInc := float64(s.P2.X-s.P1.X) / float64(step)
	yInc := float64(s.P2.Y-s.P1.Y) / float64(step)
	x0 := float64(s.P1.X)
	y0 := float64(s.P1.Y)
	for i := 0; i <= step; i++ {
		t := float64(i)
		c.Plot(roundToward(x0+t*xInc, xInc), roundToward(y0+t*yInc, yInc), 255)
	}
}

// roundToward rounds v to the nearest integer.  Ties are broken towards
// +∞ if inc ≥ 0 and towards -∞ otherwise.
func roundToward(v, inc float64) int {
	if inc >= 0 {
		return int(math.Floor(v + 0.5))
	}
	return int(math.Ceil(v - 0.5))
}

// bresenhamTolerance absorbs the rounding error of the floating point
// error term, so that a mathematically zero error is treated like the
// integer variant treats it.
const bresenhamTolerance = 1e-9

// BresenhamFloat draws a line using Bresenham's algorithm with a
// floating point error term.
//
// The error is initialised to m-0.5, where m is the slope relative to the
// driving axis.  An error of zero steps the non-driving axis, which makes
// the output identical to [BresenhamInteger].
func BresenhamFloat(c Canvas, s Segment) {
	b := newBresenham(s)
	if b.dx == 0 {
		c.Plot(b.x, b.y, 255)
		return
	}

	m := float64(b.dy) / float64(b.dx)
	e := m - 0.5
	for range b.dx + 1 {
		c.Plot(b.x, b.y, 255)
		if e >= -bresenhamTolerance {
			b.stepOther()
			e--
		}
		b.stepDriving()
		e += m
	}
}

// BresenhamInteger draws a line using Bresenham's algorithm with an
// integer error term.
//
// The error term is the floating point error scaled by 2·dx, initialised
// to 2·dy-dx.  An error of zero steps the non-driving axis.
func BresenhamInteger(c Canvas, s Segment) {
	b := newBresenham(s)

	dx2 := 2 * b.dx
	dy2 := 2 * b.dy
	e := dy2 - b.dx
	for range b.dx + 1 {
		c.Plot(b.x, b.y, 255)
		if e >= 0 {
			b.stepOther()
			e -= dx2
		}
		b.stepDriving()
		e += dy2
	}
}

// maxIntensity is the intensity scale used by BresenhamAntialiased.
const maxIntensity = 255

// BresenhamAntialiased draws a line using Bresenham's algorithm with
// intensity correction.
//
// Only one pixel is written per step.  The error term tracks the area of
// the current pixel which lies on one side of the ideal line, scaled to
// [0, 255], and the pixel is drawn with alpha 255-e.
func BresenhamAntialiased(c Canvas, s Segment) {
	b := newBresenham(s)
	if b.dx == 0 {
		c.Plot(b.x, b.y, maxIntensity)
		return
	}

	m := maxIntensity * float64(b.dy) / float64(b.dx)
	w := maxIntensity - m
	e := maxIntensity / 2.0
	for range b.dx + 1 {
		c.Plot(b.x, b.y, uint8(maxIntensity-e))
		if e <= w {
			b.stepDriving()
			e += m
		} else {
			b.stepDriving()
			b.stepOther()
			e -= w
		}
	}
}

// Wu draws an antialiased line using Xiaolin Wu's algorithm.
//
// For every step along the driving axis, two adjacent pixels across the
// line are written.  Their alpha values always add up to 255.  Writes
// with alpha zero are omitted.
func Wu(c Canvas, s Segment) {
	x0, y0 := s.P1.X, s.P1.Y
	x1, y1 := s.P2.X, s.P2.Y

	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	plot := func(x, y int, alpha uint8) {
		if alpha == 0 {
			return
		}
		if steep {
			c.Plot(y, x, alpha)
		} else {
			c.Plot(x, y, alpha)
		}
	}

	dx := x1 - x0
	if dx == 0 {
		plot(x0, y0, 255)
		return
	}
	gradient := float64(y1-y0) / float64(dx)

	for i := 0; i <= dx; i++ {
		y := float64(y0) + float64(i)*gradient
		ip := math.Floor(y)
		a1 := uint8(math.Round(255 * (y - ip)))
		plot(x0+i, int(ip), 255-a1)
		plot(x0+i, int(ip)+1, a1)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
