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

package testcases

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/cglab"
	"seehuhn.de/go/cglab/clip"
	"seehuhn.de/go/cglab/fill"
	"seehuhn.de/go/cglab/plane"
	"seehuhn.de/go/cglab/transform"
)

// ErrInvalidItem is returned when a scene item cannot be drawn.
var ErrInvalidItem = errors.New("testcases: invalid scene item")

// Render draws all items of tc onto a new canvas with the given background.
func Render(tc TestCase, background color.Color) (*cglab.Image, error) {
	if tc.Width <= 0 || tc.Height <= 0 {
		return nil, errors.Wrapf(ErrInvalidItem, "%s: canvas size %dx%d", tc.Name, tc.Width, tc.Height)
	}
	img := cglab.NewImage(tc.Width, tc.Height, background)
	for i, item := range tc.Items {
		if err := item.Draw(img); err != nil {
			return nil, errors.WithMessagef(err, "%s: item %d", tc.Name, i)
		}
	}
	return img, nil
}

// Draw draws the item onto img.
func (it Item) Draw(img *cglab.Image) error {
	col, err := ParseColor(it.Color)
	if err != nil {
		return err
	}
	img.Color = col

	switch it.Op {
	case OpLine, OpClipRect, OpClipConvex:
		if err := it.drawWindow(img); err != nil {
			return err
		}
		segs, err := it.Segments()
		if err != nil {
			return err
		}
		return it.drawSegments(img, segs, cglab.AlgBresenhamInteger)
	case OpCircle:
		alg, err := it.algorithm(cglab.AlgMidpoint)
		if err != nil {
			return err
		}
		return cglab.Draw(img, alg, cglab.Circle{Center: pixel(it.Center), R: it.Radius})
	case OpEllipse:
		alg, err := it.algorithm(cglab.AlgMidpoint)
		if err != nil {
			return err
		}
		return cglab.Draw(img, alg, cglab.Ellipse{Center: pixel(it.Center), A: it.A, B: it.B})
	case OpPolygon, OpClipPolygon:
		if err := it.drawWindow(img); err != nil {
			return err
		}
		vertices, err := it.PolygonVertices()
		if err != nil || vertices == nil {
			return err
		}
		return it.drawPolygon(img, vertices)
	case OpSeed:
		return it.seed(img)
	case OpFigure:
		size := img.Bounds().Size()
		fig, err := it.Figure(size.X, size.Y)
		if err != nil {
			return err
		}
		var segs [][2]vec.Vec2
		for _, poly := range [][]vec.Vec2{fig.Rhombus, fig.Curve} {
			for i, p := range poly {
				segs = append(segs, [2]vec.Vec2{p, poly[(i+1)%len(poly)]})
			}
		}
		return it.drawSegments(img, segs, cglab.AlgBresenhamInteger)
	default:
		return errors.Wrapf(ErrInvalidItem, "unknown op %q", it.Op)
	}
}

// algorithm parses the Algorithm field, using def if the field is empty.
func (it Item) algorithm(def cglab.Algorithm) (cglab.Algorithm, error) {
	if it.Algorithm == "" {
		return def, nil
	}
	return cglab.ParseAlgorithm(it.Algorithm)
}

// Segments returns the visible parts of the segments of a line, clip-rect
// or clip-convex item.  The segments are given by consecutive pairs of
// points.
func (it Item) Segments() ([][2]vec.Vec2, error) {
	if len(it.Points)%2 != 0 {
		return nil, errors.Wrapf(ErrInvalidItem, "%s: odd number of points", it.Op)
	}

	var clipFn func(p1, p2 vec.Vec2) (vec.Vec2, vec.Vec2, bool)
	switch it.Op {
	case OpLine:
		clipFn = func(p1, p2 vec.Vec2) (vec.Vec2, vec.Vec2, bool) {
			return p1, p2, true
		}
	case OpClipRect:
		win, err := it.rectWindow()
		if err != nil {
			return nil, err
		}
		clipFn = func(p1, p2 vec.Vec2) (vec.Vec2, vec.Vec2, bool) {
			return clip.Rectangle(win, p1, p2)
		}
	case OpClipConvex:
		win, err := clip.NewWindow(pts(it.Window))
		if err != nil {
			return nil, err
		}
		clipFn = win.Line
	default:
		return nil, errors.Wrapf(ErrInvalidItem, "%s has no segments", it.Op)
	}

	var res [][2]vec.Vec2
	for i := 0; i < len(it.Points); i += 2 {
		p1, p2, ok := clipFn(pt(it.Points[i]), pt(it.Points[i+1]))
		if ok {
			res = append(res, [2]vec.Vec2{p1, p2})
		}
	}
	return res, nil
}

// WindowVertices returns the clip window of a clip item as a polygon.
// For other items the result is nil.
func (it Item) WindowVertices() ([]vec.Vec2, error) {
	switch it.Op {
	case OpClipRect:
		win, err := it.rectWindow()
		if err != nil {
			return nil, err
		}
		return clip.WindowFromRect(win).Vertices(), nil
	case OpClipConvex, OpClipPolygon:
		win, err := clip.NewWindow(pts(it.Window))
		if err != nil {
			return nil, err
		}
		return win.Vertices(), nil
	}
	return nil, nil
}

func (it Item) rectWindow() (rect.Rect, error) {
	if len(it.Window) != 2 {
		return rect.Rect{}, errors.Wrap(ErrInvalidItem, "clip-rect window needs two corners")
	}
	return rect.Rect{
		LLx: min(it.Window[0][0], it.Window[1][0]),
		LLy: min(it.Window[0][1], it.Window[1][1]),
		URx: max(it.Window[0][0], it.Window[1][0]),
		URy: max(it.Window[0][1], it.Window[1][1]),
	}, nil
}

// PolygonVertices returns the vertices of a polygon item, or the clipped
// polygon of a clip-polygon item.  The result is nil if the clipped
// polygon is empty.
func (it Item) PolygonVertices() ([]vec.Vec2, error) {
	switch it.Op {
	case OpPolygon:
		return pts(it.Points), nil
	case OpClipPolygon:
		win, err := clip.NewWindow(pts(it.Window))
		if err != nil {
			return nil, err
		}
		return win.Polygon(pts(it.Points)), nil
	}
	return nil, errors.Wrapf(ErrInvalidItem, "%s is not a polygon", it.Op)
}

// Figure returns the sample figure of a figure item, mapped through the
// item's steps and then fitted into a w×h canvas.  Points[0] gives the
// curve parameters a and b (default 3 and 5) and Radius the number of
// curve samples (default 96).
func (it Item) Figure(w, h int) (transform.Figure, error) {
	a, b := 3.0, 5.0
	if len(it.Points) > 0 {
		a, b = it.Points[0][0], it.Points[0][1]
	}
	n := it.Radius
	if n <= 0 {
		n = 96
	}
	fig := transform.SampleFigure(a, b, n)

	var chain transform.Chain
	for _, s := range it.Steps {
		center := pt(s.Center)
		switch s.Kind {
		case "translate":
			chain.Push(transform.Translate(s.X, s.Y))
		case "scale":
			chain.Push(transform.Scale(s.X, s.Y, center))
		case "rotate":
			chain.Push(transform.Rotate(s.Angle*math.Pi/180, center))
		default:
			return transform.Figure{}, errors.Wrapf(ErrInvalidItem, "unknown transformation %q", s.Kind)
		}
	}

	// The view is fitted to the untransformed figure, so that the effect
	// of the steps stays visible.
	view := transform.FitView(fig.Bounds(), float64(w), float64(h), 0.25*float64(min(w, h)))
	return fig.Transform(transform.Combine(chain.Matrix(), view)), nil
}

// drawSegments draws segments with the item's line algorithm.
func (it Item) drawSegments(img *cglab.Image, segs [][2]vec.Vec2, def cglab.Algorithm) error {
	alg, err := it.algorithm(def)
	if err != nil {
		return err
	}
	for _, s := range segs {
		seg := cglab.Segment{P1: pixelOf(s[0]), P2: pixelOf(s[1])}
		if err := cglab.Draw(img, alg, seg); err != nil {
			return err
		}
	}
	return nil
}

// drawWindow outlines the clip window in the boundary colour, if one is
// set.
func (it Item) drawWindow(img *cglab.Image) error {
	if it.Boundary == "" {
		return nil
	}
	vertices, err := it.WindowVertices()
	if err != nil || vertices == nil {
		return err
	}
	col, err := ParseColor(it.Boundary)
	if err != nil {
		return err
	}
	save := img.Color
	img.Color = col
	outline(img, vertices)
	img.Color = save
	return nil
}

func (it Item) drawPolygon(img *cglab.Image, vertices []vec.Vec2) error {
	switch it.Algorithm {
	case "", ModeScanLine:
		corners := make([]image.Point, len(vertices))
		for i, v := range vertices {
			corners[i] = pixelOf(v)
		}
		return fill.ScanLine(img, corners)
	case ModeOutline:
		if len(vertices) < 2 {
			return errors.Wrap(plane.ErrTooFewVertices, "outline")
		}
		outline(img, vertices)
		return nil
	case ModeNonZero, ModeEvenOdd:
		var poly plane.Polygon
		for _, v := range vertices {
			poly.Add(v, plane.SnapNone)
		}
		if err := poly.Close(); err != nil {
			return err
		}
		b := img.Bounds()
		clipRect := rect.Rect{
			LLx: float64(b.Min.X), LLy: float64(b.Min.Y),
			URx: float64(b.Max.X), URy: float64(b.Max.Y),
		}
		fill.NewCoverager(clipRect).Draw(img, poly.Path(), it.Rule())
		return nil
	default:
		return errors.Wrapf(ErrInvalidItem, "unknown polygon mode %q", it.Algorithm)
	}
}

// Rule returns the fill rule of an antialiased polygon item.
func (it Item) Rule() fill.Rule {
	if it.Algorithm == ModeEvenOdd {
		return fill.EvenOdd
	}
	return fill.NonZero
}

func (it Item) seed(img *cglab.Image) error {
	if len(it.Points) != 1 {
		return errors.Wrap(ErrInvalidItem, "seed needs exactly one point")
	}
	boundary, err := ParseColor(it.Boundary)
	if err != nil {
		return err
	}
	_, err = fill.Seed(img, pixel(it.Points[0]), boundary, img.Color)
	return err
}

// outline draws the closed polygon outline with the integer Bresenham
// algorithm.
func outline(c cglab.Canvas, vertices []vec.Vec2) {
	for i, p := range vertices {
		q := vertices[(i+1)%len(vertices)]
		cglab.BresenhamInteger(c, cglab.Segment{P1: pixelOf(p), P2: pixelOf(q)})
	}
}

func pixelOf(v vec.Vec2) image.Point {
	return pixel([2]float64{v.X, v.Y})
}

// ParseColor parses a colour of the form "#rgb", "#rrggbb" or "#rrggbbaa".
// The empty string is opaque black.
func ParseColor(s string) (color.NRGBA, error) {
	if s == "" {
		return color.NRGBA{A: 255}, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.NRGBA{}, errors.Errorf("color %q: missing '#'", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, errors.Errorf("color %q: wrong length", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, errors.Wrapf(err, "color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
