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
	"image"
	"slices"

	"github.com/pkg/errors"

	"seehuhn.de/go/cglab"
	"seehuhn.de/go/cglab/plane"
)

// ScanLine fills the closed polygon with the given vertices, using the
// ordered edge list algorithm.
//
// Every edge which is not horizontal is intersected with the scan lines
// strictly between its end points.  Vertices are added to the list of
// intersections once, or twice if they are a local extremum in y.  The
// intersections are sorted by decreasing y and then by increasing x, and
// the pixels between consecutive pairs are filled.  Horizontal edges add no
// intersections, but their pixels are written, so that the result covers
// the closed polygon including its boundary.
//
// All pixels are written with alpha 255.
func ScanLine(c cglab.Canvas, vertices []image.Point) error {
	n := len(vertices)
	if n < 3 {
		return errors.Wrap(plane.ErrTooFewVertices, "scan line fill")
	}

	edges := make([]scanEdge, n)
	for i := range n {
		edges[i] = scanEdge{vertices[i], vertices[(i+1)%n]}
	}

	var xs []image.Point
	for _, e := range edges {
		if e.horizontal() {
			continue
		}
		xs = e.crossings(xs)
	}
	xs = addVertices(xs, edges)

	slices.SortFunc(xs, func(a, b image.Point) int {
		if a.Y != b.Y {
			return cmp.Compare(b.Y, a.Y)
		}
		return cmp.Compare(a.X, b.X)
	})

	spans := 0
	for start := 0; start < len(xs); {
		end := start + 1
		for end < len(xs) && xs[end].Y == xs[start].Y {
			end++
		}
		row := xs[start:end]
		for k := 0; k+1 < len(row); k += 2 {
			span(c, row[k].Y, row[k].X, row[k+1].X)
			spans++
		}
		start = end
	}

	for _, e := range edges {
		if e.horizontal() {
			span(c, e.p1.Y, min(e.p1.X, e.p2.X), max(e.p1.X, e.p2.X))
		}
	}

	cglab.Logger().Debug("scan line fill",
		"vertices", n,
		"intersections", len(xs),
		"spans", spans)
	return nil
}

type scanEdge struct {
	p1, p2 image.Point
}

func (e scanEdge) horizontal() bool {
	return e.p1.Y == e.p2.Y
}

// crossings appends the intersections of e with all scan lines strictly
// between the end points.  The x coordinates are rounded to the nearest
// integer, with ties rounded up.
func (e scanEdge) crossings(xs []image.Point) []image.Point {
	top, bottom := e.p1, e.p2
	if top.Y > bottom.Y {
		top, bottom = bottom, top
	}
	dx := bottom.X - top.X
	dy := bottom.Y - top.Y
	for y := top.Y + 1; y < bottom.Y; y++ {
		x := top.X + floorDiv(2*(y-top.Y)*dx+dy, 2*dy)
		xs = append(xs, image.Point{X: x, Y: y})
	}
	return xs
}

// addVertices appends the end point of every non-horizontal edge.  If the
// polygon turns around in y at that vertex, the vertex is added twice.
// Horizontal edges following the vertex are skipped when determining the
// direction of the next edge.
func addVertices(xs []image.Point, edges []scanEdge) []image.Point {
	n := len(edges)
	for i, e := range edges {
		if e.horizontal() {
			continue
		}
		xs = append(xs, e.p2)

		j := (i + 1) % n
		for edges[j].horizontal() {
			j = (j + 1) % n
		}
		next := edges[j]
		if sign(e.p1.Y-e.p2.Y) == sign(next.p2.Y-next.p1.Y) {
			xs = append(xs, e.p2)
		}
	}
	return xs
}

func span(c cglab.Canvas, y, x0, x1 int) {
	for x := x0; x <= x1; x++ {
		c.Plot(x, y, 255)
	}
}

// floorDiv returns ⌊a/b⌋ for b > 0.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
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
