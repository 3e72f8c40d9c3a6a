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
	"image/draw"

	"seehuhn.de/go/cglab"
)

// Seed fills the 4-connected region around seed, using the scan line
// seed fill algorithm, and returns the number of pixels changed.
//
// Pixels are classified as boundary pixels (colour boundary), filled pixels
// (colour fill) and clean pixels (any other colour).  Only clean pixels are
// changed, and the region ends at the first non-clean pixel or at the edge
// of the image.  If the seed itself is not clean, nothing is filled.
//
// Colours are compared after conversion to the colour model of img.
func Seed(img draw.Image, seed image.Point, boundary, fill color.Color) (int, error) {
	if !seed.In(img.Bounds()) {
		return 0, ErrSeedOutside
	}

	model := img.ColorModel()
	s := &seedFiller{
		img:      img,
		bounds:   img.Bounds(),
		boundary: model.Convert(boundary),
		fill:     model.Convert(fill),
	}
	if sameColor(s.boundary, s.fill) {
		return 0, ErrSameColor
	}

	stack := []image.Point{seed}
	pushes := 1
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !s.clean(p.X, p.Y) {
			// already filled via another seed
			continue
		}

		x := p.X
		for ; s.clean(x, p.Y); x++ {
			s.set(x, p.Y)
		}
		xRight := x - 1
		for x = p.X - 1; s.clean(x, p.Y); x-- {
			s.set(x, p.Y)
		}
		xLeft := x + 1

		before := len(stack)
		stack = s.pushSeeds(stack, p.Y+1, xLeft, xRight)
		stack = s.pushSeeds(stack, p.Y-1, xLeft, xRight)
		pushes += len(stack) - before
	}

	cglab.Logger().Debug("seed fill",
		"seed", seed,
		"pixels", s.count,
		"seeds", pushes)
	return s.count, nil
}

type seedFiller struct {
	img      draw.Image
	bounds   image.Rectangle
	boundary color.Color
	fill     color.Color
	count    int
}

// clean reports whether the pixel is inside the image and neither a
// boundary pixel nor already filled.
func (s *seedFiller) clean(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(s.bounds) {
		return false
	}
	c := s.img.At(x, y)
	return !sameColor(c, s.boundary) && !sameColor(c, s.fill)
}

func (s *seedFiller) set(x, y int) {
	s.img.Set(x, y, s.fill)
	s.count++
}

// pushSeeds scans row y over [xLeft, xRight] and pushes one seed for every
// maximal run of clean pixels.  A run which reaches xRight is followed to
// its end, and the right-most pixel of each run is used as the seed.
func (s *seedFiller) pushSeeds(stack []image.Point, y, xLeft, xRight int) []image.Point {
	if y < s.bounds.Min.Y || y >= s.bounds.Max.Y {
		return stack
	}

	x := xLeft
	for x <= xRight {
		inRun := false
		for s.clean(x, y) {
			inRun = true
			x++
		}
		if inRun {
			stack = append(stack, image.Point{X: x - 1, Y: y})
		}

		// skip the non-clean pixels up to the next run
		for x <= xRight && !s.clean(x, y) {
			x++
		}
	}
	return stack
}

func sameColor(a, b color.Color) bool {
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}
