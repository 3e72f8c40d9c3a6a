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
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/cglab"
	"seehuhn.de/go/cglab/plane"
)

func polygonPath(pts ...vec.Vec2) *path.Data {
	var poly plane.Polygon
	for _, p := range pts {
		poly.Add(p, plane.SnapNone)
	}
	if err := poly.Close(); err != nil {
		panic(err)
	}
	return poly.Path()
}

// coverageMap collects the coverage values of a fill, indexed by pixel.
func coverageMap(r *Coverager, p *path.Data, rule Rule) map[image.Point]float32 {
	res := make(map[image.Point]float32)
	r.Fill(p, rule, func(y, xMin int, coverage []float32) {
		for i, c := range coverage {
			if c != 0 {
				res[image.Pt(xMin+i, y)] = c
			}
		}
	})
	return res
}

func TestCoverageSquare(t *testing.T) {
	r := NewCoverager(rect.Rect{URx: 10, URy: 10})
	square := polygonPath(
		vec.Vec2{X: 2, Y: 1}, vec.Vec2{X: 5, Y: 1},
		vec.Vec2{X: 5, Y: 4}, vec.Vec2{X: 2, Y: 4})

	for _, rule := range []Rule{NonZero, EvenOdd} {
		got := coverageMap(r, square, rule)
		assert.Len(t, got, 9, rule)
		for p, c := range got {
			assert.True(t, p.In(image.Rect(2, 1, 5, 4)), "%v", p)
			assert.Equal(t, float32(1), c, "%v", p)
		}
	}
}

func TestCoverageHalfPixel(t *testing.T) {
	r := NewCoverager(rect.Rect{URx: 10, URy: 10})
	p := polygonPath(
		vec.Vec2{X: 2.5, Y: 1}, vec.Vec2{X: 4, Y: 1},
		vec.Vec2{X: 4, Y: 2}, vec.Vec2{X: 2.5, Y: 2})

	got := coverageMap(r, p, NonZero)
	assert.Equal(t, map[image.Point]float32{{2, 1}: 0.5, {3, 1}: 1}, got)

	rec := &cglab.Recorder{}
	r.Draw(rec, p, NonZero)
	assert.Equal(t, []cglab.Pixel{{X: 2, Y: 1, Alpha: 128}, {X: 3, Y: 1, Alpha: 255}}, rec.Writes)
}

func TestCoverageArea(t *testing.T) {
	r := NewCoverager(rect.Rect{URx: 40, URy: 40})
	tri := polygonPath(
		vec.Vec2{X: 3.2, Y: 1.7}, vec.Vec2{X: 35.1, Y: 9.3}, vec.Vec2{X: 12.6, Y: 31.4})

	total := 0.0
	for _, c := range coverageMap(r, tri, NonZero) {
		total += float64(c)
	}
	want := math.Abs((35.1-3.2)*(31.4-1.7)-(12.6-3.2)*(9.3-1.7)) / 2
	assert.InDelta(t, want, total, 1e-2)
}

func TestCoverageRules(t *testing.T) {
	r := NewCoverager(rect.Rect{URx: 20, URy: 20})

	// two overlapping squares with the same orientation
	p := polygonPath(
		vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 7, Y: 1},
		vec.Vec2{X: 7, Y: 7}, vec.Vec2{X: 1, Y: 7})
	q := polygonPath(
		vec.Vec2{X: 4, Y: 4}, vec.Vec2{X: 10, Y: 4},
		vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 4, Y: 10})
	both := &path.Data{
		Cmds:   append(append([]path.Command{}, p.Cmds...), q.Cmds...),
		Coords: append(append([]vec.Vec2{}, p.Coords...), q.Coords...),
	}

	nonZero := coverageMap(r, both, NonZero)
	evenOdd := coverageMap(r, both, EvenOdd)

	overlap := image.Pt(5, 5)
	assert.Equal(t, float32(1), nonZero[overlap])
	assert.NotContains(t, evenOdd, overlap)
	assert.Len(t, nonZero, 36+36-9)
	assert.Len(t, evenOdd, 36+36-18)
}

func TestCoverageCTMAndClip(t *testing.T) {
	r := NewCoverager(rect.Rect{URx: 3, URy: 10})
	r.CTM = matrix.Matrix{4, 0, 0, 4, 1, 1}
	unit := polygonPath(
		vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 0},
		vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 0, Y: 1})

	got := coverageMap(r, unit, NonZero)
	assert.Len(t, got, 2*4)
	for p := range got {
		assert.True(t, p.In(image.Rect(1, 1, 3, 5)), "%v", p)
	}

	r.Reset(rect.Rect{URx: 10, URy: 10})
	assert.Equal(t, matrix.Identity, r.CTM)
	assert.Len(t, coverageMap(r, unit, NonZero), 1)
}

func TestCoverageEmpty(t *testing.T) {
	r := NewCoverager(rect.Rect{URx: 10, URy: 10})
	called := false
	emit := func(int, int, []float32) { called = true }

	r.Fill(&path.Data{}, NonZero, emit)
	flat := polygonPath(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 5, Y: 1}, vec.Vec2{X: 8, Y: 1})
	r.Fill(flat, NonZero, emit)
	outside := polygonPath(vec.Vec2{X: 20, Y: 20}, vec.Vec2{X: 30, Y: 20}, vec.Vec2{X: 25, Y: 30})
	r.Fill(outside, NonZero, emit)

	assert.False(t, called)
}

// TestCoverageMatchesVector compares the coverage against the rasteriser
// from golang.org/x/image/vector, which also computes exact area coverage.
func TestCoverageMatchesVector(t *testing.T) {
	const size = 48
	pts := []vec.Vec2{
		{X: 4.3, Y: 2.1}, {X: 40.7, Y: 8.8}, {X: 30.2, Y: 44.5},
		{X: 22.0, Y: 20.0}, {X: 6.6, Y: 38.9},
	}

	r := NewCoverager(rect.Rect{URx: size, URy: size})
	got := image.NewAlpha(image.Rect(0, 0, size, size))
	r.Fill(polygonPath(pts...), NonZero, func(y, xMin int, coverage []float32) {
		for i, c := range coverage {
			got.SetAlpha(xMin+i, y, color.Alpha{A: uint8(math.Round(float64(c) * 255))})
		}
	})

	z := vector.NewRasterizer(size, size)
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	want := image.NewAlpha(image.Rect(0, 0, size, size))
	z.Draw(want, want.Bounds(), image.Opaque, image.Point{})

	for y := range size {
		for x := range size {
			a := int(got.AlphaAt(x, y).A)
			b := int(want.AlphaAt(x, y).A)
			assert.InDelta(t, b, a, 2, "pixel (%d,%d)", x, y)
		}
	}
}
