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
	"fmt"
	"image"
	"strings"

	"github.com/pkg/errors"
)

// Algorithm selects one of the rasterisation algorithms.
type Algorithm int

// These are the supported algorithms.  The first group applies to line
// segments, the second group to circles and ellipses.
const (
	AlgDDA Algorithm = iota + 1
	AlgBresenhamFloat
	AlgBresenhamInteger
	AlgBresenhamAntialiased
	AlgWu

	AlgCanonical
	AlgParametric
	AlgBresenham
	AlgMidpoint
)

var algorithmNames = map[Algorithm]string{
	AlgDDA:                  "dda",
	AlgBresenhamFloat:       "bresenham-float",
	AlgBresenhamInteger:     "bresenham-int",
	AlgBresenhamAntialiased: "bresenham-aa",
	AlgWu:                   "wu",
	AlgCanonical:            "canonical",
	AlgParametric:           "parametric",
	AlgBresenham:            "bresenham",
	AlgMidpoint:             "midpoint",
}

// LineAlgorithms lists the algorithms which can draw a [Segment].
var LineAlgorithms = []Algorithm{
	AlgDDA, AlgBresenhamFloat, AlgBresenhamInteger, AlgBresenhamAntialiased, AlgWu,
}

// ConicAlgorithms lists the algorithms which can draw a [Circle] or an
// [Ellipse].
var ConicAlgorithms = []Algorithm{
	AlgCanonical, AlgParametric, AlgBresenham, AlgMidpoint,
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm returns the algorithm with the given name.
// Names are matched case-insensitively.  The name "bresenham" refers to
// the integer line algorithm when used with a segment, see [Draw].
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for alg, n := range algorithmNames {
		if n == name {
			return alg, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

var (
	// ErrUnsupported indicates that an algorithm cannot draw a shape.
	ErrUnsupported = errors.New("cglab: algorithm does not support this shape")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm for unknown names.
	ErrUnknownAlgorithm = errors.New("cglab: unknown algorithm")
)

// Shape is one of [Segment], [Circle] or [Ellipse].
type Shape interface {
	isShape()
}

// Circle is a circle with integer centre and radius.
type Circle struct {
	Center image.Point
	R      int
}

// Ellipse is an axis-aligned ellipse with horizontal semi-axis A and
// vertical semi-axis B.
type Ellipse struct {
	Center image.Point
	A, B   int
}

func (Segment) isShape() {}
func (Circle) isShape()  {}
func (Ellipse) isShape() {}

// Draw rasterises shape into c, using the algorithm alg.
//
// For a Segment, [AlgBresenham] is an alias for [AlgBresenhamInteger].
// If the algorithm does not apply to the shape, ErrUnsupported is
// returned and nothing is drawn.
func Draw(c Canvas, alg Algorithm, shape Shape) error {
	switch s := shape.(type) {
	case Segment:
		f := lineFunc(alg)
		if f == nil {
			return errors.Wrapf(ErrUnsupported, "%s for segment", alg)
		}
		f(c, s)
	case Circle:
		f := circleFunc(alg)
		if f == nil {
			return errors.Wrapf(ErrUnsupported, "%s for circle", alg)
		}
		f(c, s.Center, s.R)
	case Ellipse:
		f := ellipseFunc(alg)
		if f == nil {
			return errors.Wrapf(ErrUnsupported, "%s for ellipse", alg)
		}
		f(c, s.Center, s.A, s.B)
	default:
		return errors.Wrapf(ErrUnsupported, "shape %T", shape)
	}
	return nil
}

func lineFunc(alg Algorithm) func(Canvas, Segment) {
	switch alg {
	case AlgDDA:
		return DDA
	case AlgBresenhamFloat:
		return BresenhamFloat
	case AlgBresenhamInteger, AlgBresenham:
		return BresenhamInteger
	case AlgBresenhamAntialiased:
		return BresenhamAntialiased
	case AlgWu:
		return Wu
	}
	return nil
}

func circleFunc(alg Algorithm) func(Canvas, image.Point, int) {
	switch alg {
	case AlgCanonical:
		return CircleCanonical
	case AlgParametric:
		return CircleParametric
	case AlgBresenham:
		return CircleBresenham
	case AlgMidpoint:
		return CircleMidpoint
	}
	return nil
}

func ellipseFunc(alg Algorithm) func(Canvas, image.Point, int, int) {
	switch alg {
	case AlgCanonical:
		return EllipseCanonical
	case AlgParametric:
		return EllipseParametric
	case AlgBresenham:
		return EllipseBresenham
	case AlgMidpoint:
		return EllipseMidpoint
	}
	return nil
}

// Trace draws shape into a new [Recorder] and returns the recorder.
func Trace(alg Algorithm, shape Shape) (*Recorder, error) {
	rec := &Recorder{}
	err := Draw(rec, alg, shape)
	if err != nil {
		return nil, err
	}
	Logger().Debug("traced shape",
		"algorithm", alg.String(),
		"shape", fmt.Sprintf("%T", shape),
		"writes", len(rec.Writes))
	return rec, nil
}
