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

package fill

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/cglab"
)

// Rule selects how the winding number of a point determines whether the
// point is inside a path.
type Rule int

// These are the supported fill rules.
const (
	NonZero Rule = iota
	EvenOdd
)

func (r Rule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "Rule(?)"
	}
}

// coverEdge is a non-horizontal edge in device coordinates.
type coverEdge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // inverse slope
	dir    float32 // +1 if the edge points down, -1 if it points up
}

func (e *coverEdge) yMin() float64 { return min(e.y0, e.y1) }
func (e *coverEdge) yMax() float64 { return max(e.y0, e.y1) }

// xAt returns the x coordinate of the edge at height y.
func (e *coverEdge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Coverager computes the exact area coverage of polygon outlines.
//
// For every pixel, the fraction of the pixel area covered by the path is
// computed.  This gives antialiased polygon edges without supersampling.
// Only straight path segments are supported; quadratic and cubic curve
// segments are replaced by the straight line to their end point.
//
// A Coverager can be reused for many paths.  Internal buffers grow as
// needed and are kept between calls.  A Coverager must not be used
// concurrently.
type Coverager struct {
	// CTM maps path coordinates to device (pixel) coordinates.
	CTM matrix.Matrix

	// Clip is the output region in device coordinates.  The corners
	// must have integer coordinates.
	Clip rect.Rect

	edges     []coverEdge
	active    []int
	cover     []float32 // signed height of edge pieces in each pixel column
	area      []float32 // cover, weighted by the uncovered part of the pixel
	crossings []float64

	bbox    rect.Rect
	hasBBox bool
}

// NewCoverager returns a Coverager with the identity CTM and the given
// clip rectangle.
func NewCoverager(clip rect.Rect) *Coverager {
	return &Coverager{
		CTM:  matrix.Identity,
		Clip: clip,
	}
}

// Reset restores the identity CTM and sets a new clip rectangle.
// Buffer capacity is preserved.
func (r *Coverager) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.edges = r.edges[:0]
	r.active = r.active[:0]
}

// Draw fills the path onto c.  Each pixel is plotted with alpha equal to
// its coverage, scaled to [0, 255].  Pixels with zero coverage are not
// plotted.
func (r *Coverager) Draw(c cglab.Canvas, p *path.Data, rule Rule) {
	pixels := 0
	r.Fill(p, rule, func(y, xMin int, coverage []float32) {
		for i, cov := range coverage {
			alpha := uint8(math.Round(float64(cov) * 255))
			if alpha == 0 {
				continue
			}
			c.Plot(xMin+i, y, alpha)
			pixels++
		}
	})
	cglab.Logger().Debug("coverage fill", "rule", rule.String(), "pixels", pixels)
}

// Fill computes the coverage of the path under the given fill rule.
//
// The coverage is reported one row at a time via emit, for rows which
// contain at least one non-zero value.  Coverage values are in [0, 1],
// coverage[i] belongs to pixel (xMin+i, y).  The slice is only valid
// during the call to emit.
func (r *Coverager) Fill(p *path.Data, rule Rule, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(p)
	if !ok {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b coverEdge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bottom := float64(y + 1)

		for next < len(r.edges) && r.edges[next].yMin() < bottom {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if r.accumulate(e, top, bottom, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// collectEdges transforms the path to device space and stores its
// non-horizontal edges.  The returned pixel range is the bounding box of
// the path, clipped to r.Clip.
func (r *Coverager) collectEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.hasBBox = false

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.addEdge(current, p.Coords[k+1])
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.addEdge(current, p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// horizontalThreshold is the minimum height of an edge in device space.
// Flatter edges do not change the coverage and are dropped.
const horizontalThreshold = 1e-10

func (r *Coverager) addEdge(from, to vec.Vec2) {
	m := r.CTM
	x0 := m[0]*from.X + m[2]*from.Y + m[4]
	y0 := m[1]*from.X + m[3]*from.Y + m[5]
	x1 := m[0]*to.X + m[2]*to.Y + m[4]
	y1 := m[1]*to.X + m[3]*to.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalThreshold {
		return
	}
	dir := float32(1)
	if dy < 0 {
		dir = -1
	}
	r.edges = append(r.edges, coverEdge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / dy,
		dir:  dir,
	})

	b := rect.Rect{LLx: min(x0, x1), LLy: min(y0, y1), URx: max(x0, x1), URy: max(y0, y1)}
	if !r.hasBBox {
		r.bbox = b
		r.hasBBox = true
		return
	}
	r.bbox.LLx = min(r.bbox.LLx, b.LLx)
	r.bbox.LLy = min(r.bbox.LLy, b.LLy)
	r.bbox.URx = max(r.bbox.URx, b.URx)
	r.bbox.URy = max(r.bbox.URy, b.URy)
}

// accumulate adds the part of e between the heights top and bottom to the
// cover and area buffers of the current row.  The buffers cover the pixel
// columns [xMin, xMax).  Pieces left of xMin are attributed to the first
// column in full, pieces right of the buffer are dropped.
// The return value reports whether e intersects the row.
func (r *Coverager) accumulate(e *coverEdge, top, bottom float64, xMin, xMax int) bool {
	top = max(top, e.yMin())
	bottom = min(bottom, e.yMax())
	if bottom <= top {
		return false
	}

	xTop := e.xAt(top)
	xBottom := e.xAt(bottom)
	left, right := min(xTop, xBottom), max(xTop, xBottom)
	colLeft := int(math.Floor(left))
	colRight := int(math.Floor(right))

	if colLeft == colRight {
		r.addPiece(e, top, bottom, colLeft, xMin, xMax)
		return true
	}

	// split the edge where it crosses vertical pixel boundaries
	r.crossings = append(r.crossings[:0], top, bottom)
	for x := colLeft + 1; x <= colRight; x++ {
		y := e.y0 + (float64(x)-e.x0)/e.dxdy
		if y > top && y < bottom {
			r.crossings = append(r.crossings, y)
		}
	}
	slices.Sort(r.crossings)

	for i := 1; i < len(r.crossings); i++ {
		y0, y1 := r.crossings[i-1], r.crossings[i]
		if y1 <= y0 {
			continue
		}
		col := int(math.Floor(e.xAt((y0 + y1) / 2)))
		r.addPiece(e, y0, y1, col, xMin, xMax)
	}
	return true
}

// addPiece records a piece of e which lies within the pixel column col.
func (r *Coverager) addPiece(e *coverEdge, y0, y1 float64, col, xMin, xMax int) {
	h := e.dir * float32(y1-y0)
	switch {
	case col < xMin:
		r.cover[0] += h
		r.area[0] += h
	case col < xMax:
		frac := e.xAt((y0+y1)/2) - float64(col)
		i := col - xMin
		r.cover[i] += h
		r.area[i] += h * float32(1-frac)
	}
}

// integrate turns the accumulated values of one row into coverage.
// The result overwrites cover.
func integrate(cover, area []float32, rule Rule) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]

		if raw < 0 {
			raw = -raw
		}
		switch rule {
		case EvenOdd:
			mod := raw - 2*float32(int(raw/2))
			cover[i] = 1 - abs32(1-mod)
		default:
			cover[i] = min(raw, 1)
		}
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros returns the part of row between the first and the last
// non-zero entry, together with the index of the first non-zero entry.
func trimZeros(row []float32) ([]float32, int) {
	lo := 0
	for lo < len(row) && row[lo] == 0 {
		lo++
	}
	if lo == len(row) {
		return nil, 0
	}
	hi := len(row)
	for row[hi-1] == 0 {
		hi--
	}
	return row[lo:hi], lo
}
