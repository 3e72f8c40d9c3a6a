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
	"image/color"
)

// Canvas is the pixel sink written to by the rasterisers.
//
// Plot sets the pixel (x, y) to the current drawing colour of the canvas,
// with the given opacity.  An alpha value of 255 means the pixel is fully
// covered.  Coordinates outside the canvas must be ignored.
type Canvas interface {
	Plot(x, y int, alpha uint8)
}

// Image is a Canvas backed by an in-memory image.
// Pixels are composited onto the image using [Over].
type Image struct {
	*image.NRGBA

	// Color is the drawing colour used by Plot.
	Color color.NRGBA
}

// NewImage allocates a w×h image filled with the background colour.
// The drawing colour is set to opaque black.
func NewImage(w, h int, background color.Color) *Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	bg := color.NRGBAModel.Convert(background).(color.NRGBA)
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = bg.R
		img.Pix[i+1] = bg.G
		img.Pix[i+2] = bg.B
		img.Pix[i+3] = bg.A
	}
	return &Image{
		NRGBA: img,
		Color: color.NRGBA{A: 255},
	}
}

// Plot implements the [Canvas] interface.
func (img *Image) Plot(x, y int, alpha uint8) {
	if !(image.Point{X: x, Y: y}.In(img.Rect)) || alpha == 0 {
		return
	}
	i := img.PixOffset(x, y)
	p := img.Pix[i : i+4 : i+4]
	dst := color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
	out := Over(WithAlpha(img.Color, alpha), dst)
	p[0] = out.R
	p[1] = out.G
	p[2] = out.B
	p[3] = out.A
}

// Pixel is a single write recorded by a [Recorder].
type Pixel struct {
	X, Y  int
	Alpha uint8
}

// Recorder is a Canvas which remembers all writes.
// The zero value is ready to use.
type Recorder struct {
	Writes []Pixel
}

// Plot implements the [Canvas] interface.
func (r *Recorder) Plot(x, y int, alpha uint8) {
	r.Writes = append(r.Writes, Pixel{X: x, Y: y, Alpha: alpha})
}

// Pixels returns the set of pixels written to.  If a pixel was written
// more than once, the largest alpha value is reported.
func (r *Recorder) Pixels() map[image.Point]uint8 {
	res := make(map[image.Point]uint8, len(r.Writes))
	for _, w := range r.Writes {
		p := image.Point{X: w.X, Y: w.Y}
		if a, seen := res[p]; !seen || w.Alpha > a {
			res[p] = w.Alpha
		}
	}
	return res
}

// Bounds returns the smallest rectangle containing all written pixels.
func (r *Recorder) Bounds() image.Rectangle {
	var b image.Rectangle
	for i, w := range r.Writes {
		px := image.Rect(w.X, w.Y, w.X+1, w.Y+1)
		if i == 0 {
			b = px
		} else {
			b = b.Union(px)
		}
	}
	return b
}

// Reset discards all recorded writes.
func (r *Recorder) Reset() {
	r.Writes = r.Writes[:0]
}

// DrawTo replays the recorded writes onto c, shifted by offset.
func (r *Recorder) DrawTo(c Canvas, offset image.Point) {
	for _, w := range r.Writes {
		c.Plot(w.X+offset.X, w.Y+offset.Y, w.Alpha)
	}
}
