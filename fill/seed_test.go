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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/cglab"
)

var (
	wallColor = color.NRGBA{A: 255}
	fillColor = color.NRGBA{R: 255, A: 255}
	bgColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func newCanvas(w, h int) *cglab.Image {
	img := cglab.NewImage(w, h, bgColor)
	img.Color = wallColor
	return img
}

func polyline(img *cglab.Image, pts ...image.Point) {
	for i := 1; i < len(pts); i++ {
		cglab.BresenhamInteger(img, cglab.Segment{P1: pts[i-1], P2: pts[i]})
	}
}

// referenceFill returns the pixels a 4-connected flood fill from seed
// would change, computed with a breadth-first search.
func referenceFill(img *image.NRGBA, seed image.Point) map[image.Point]bool {
	clean := func(p image.Point) bool {
		if !p.In(img.Rect) {
			return false
		}
		c := img.NRGBAAt(p.X, p.Y)
		return c != wallColor && c != fillColor
	}
	res := map[image.Point]bool{}
	if !clean(seed) {
		return res
	}
	res[seed] = true
	queue := []image.Point{seed}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range []image.Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			q := p.Add(d)
			if !res[q] && clean(q) {
				res[q] = true
				queue = append(queue, q)
			}
		}
	}
	return res
}

// checkSeedFill runs Seed and compares the result against referenceFill.
func checkSeedFill(t *testing.T, img *cglab.Image, seed image.Point) int {
	t.Helper()

	want := referenceFill(img.NRGBA, seed)
	before := make(map[image.Point]color.NRGBA)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			before[image.Pt(x, y)] = img.NRGBAAt(x, y)
		}
	}

	n, err := Seed(img, seed, wallColor, fillColor)
	require.NoError(t, err)
	assert.Equal(t, len(want), n)

	for p, old := range before {
		got := img.NRGBAAt(p.X, p.Y)
		if want[p] {
			assert.Equal(t, fillColor, got, "%v not filled", p)
		} else {
			assert.Equal(t, old, got, "%v changed", p)
		}
	}
	return n
}

func TestSeedBox(t *testing.T) {
	img := newCanvas(20, 20)
	polyline(img, image.Pt(2, 2), image.Pt(11, 2), image.Pt(11, 11), image.Pt(2, 11), image.Pt(2, 2))

	n := checkSeedFill(t, img, image.Pt(5, 5))
	assert.Equal(t, 8*8, n)

	// a second fill finds nothing left to do
	n, err := Seed(img, image.Pt(5, 5), wallColor, fillColor)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSeedAnnulus(t *testing.T) {
	img := newCanvas(61, 61)
	center := image.Pt(30, 30)
	cglab.CircleMidpoint(img, center, 25)
	cglab.CircleMidpoint(img, center, 10)

	n := checkSeedFill(t, img, image.Pt(30, 12))
	assert.Positive(t, n)

	for y := 0; y < 61; y++ {
		for x := 0; x < 61; x++ {
			if img.NRGBAAt(x, y) != fillColor {
				continue
			}
			d := image.Pt(x, y).Sub(center)
			r2 := d.X*d.X + d.Y*d.Y
			assert.Greater(t, r2, 9*9, "(%d,%d) inside the hole", x, y)
			assert.Less(t, r2, 26*26, "(%d,%d) outside the ring", x, y)
		}
	}
}

func TestSeedUShape(t *testing.T) {
	img := newCanvas(30, 30)
	polyline(img,
		image.Pt(2, 2), image.Pt(8, 2), image.Pt(8, 20), image.Pt(20, 20),
		image.Pt(20, 2), image.Pt(26, 2), image.Pt(26, 26), image.Pt(2, 26),
		image.Pt(2, 2))

	// seed in the right arm, the fill must flow around the bottom
	n := checkSeedFill(t, img, image.Pt(23, 4))
	assert.Equal(t, img.NRGBAAt(4, 4), fillColor, "left arm")
	assert.Equal(t, img.NRGBAAt(14, 10), bgColor, "gap between the arms")
	assert.Positive(t, n)
}

func TestSeedSpiral(t *testing.T) {
	img := newCanvas(50, 50)
	pts := []image.Point{{24, 24}}
	dirs := []image.Point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	p := pts[0]
	for i := range 20 {
		length := 2 * (i/2 + 1)
		p = p.Add(dirs[i%4].Mul(length))
		pts = append(pts, p)
	}
	polyline(img, pts...)

	n := checkSeedFill(t, img, image.Pt(25, 25))
	assert.Positive(t, n)
}

func TestSeedCorridors(t *testing.T) {
	// a serpentine maze of 1-pixel corridors
	img := newCanvas(21, 21)
	for y := range 21 {
		for x := range 21 {
			img.Set(x, y, wallColor)
		}
	}
	free := 0
	carve := func(x, y int) {
		if img.NRGBAAt(x, y) == wallColor {
			img.Set(x, y, bgColor)
			free++
		}
	}
	for row := 1; row < 20; row += 2 {
		for x := 1; x < 20; x++ {
			carve(x, row)
		}
		if row+2 < 20 {
			if (row/2)%2 == 0 {
				carve(19, row+1)
			} else {
				carve(1, row+1)
			}
		}
	}

	n := checkSeedFill(t, img, image.Pt(1, 1))
	assert.Equal(t, free, n)
}

func TestSeedBlockedByFillColor(t *testing.T) {
	img := newCanvas(10, 3)
	img.Set(5, 0, fillColor)
	img.Set(5, 1, fillColor)
	img.Set(5, 2, fillColor)

	n := checkSeedFill(t, img, image.Pt(1, 1))
	assert.Equal(t, 5*3, n)
	assert.Equal(t, bgColor, img.NRGBAAt(7, 1))
}

func TestSeedErrors(t *testing.T) {
	img := newCanvas(10, 10)

	_, err := Seed(img, image.Pt(3, 3), wallColor, wallColor)
	assert.ErrorIs(t, err, ErrSameColor)

	_, err = Seed(img, image.Pt(10, 3), wallColor, fillColor)
	assert.ErrorIs(t, err, ErrSeedOutside)

	img.Set(3, 3, wallColor)
	n, err := Seed(img, image.Pt(3, 3), wallColor, fillColor)
	require.NoError(t, err)
	assert.Zero(t, n)
}
