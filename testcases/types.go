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

// Package testcases holds a catalogue of drawing scenes, grouped by
// category, which exercise the rasterisation, fill and clipping
// algorithms.  The same scene format is used by scene files of the
// cglab command.
package testcases

import (
	"image"
	"math"

	"seehuhn.de/go/geom/vec"
)

// TestCase describes a single scene.
type TestCase struct {
	Name   string `json:"name" yaml:"name" toml:"name"`       // lowercase a-z, 0-9 and _ only
	Width  int    `json:"width" yaml:"width" toml:"width"`    // canvas width in pixels
	Height int    `json:"height" yaml:"height" toml:"height"` // canvas height in pixels
	Items  []Item `json:"items" yaml:"items" toml:"items"`    // drawn in order
}

// Op is the kind of a scene item.
type Op string

// These are the supported scene items.
const (
	OpLine        Op = "line"         // segments between pairs of Points
	OpCircle      Op = "circle"       // circle around Center with Radius
	OpEllipse     Op = "ellipse"      // axis-aligned ellipse with semi-axes A and B
	OpPolygon     Op = "polygon"      // filled or outlined polygon with vertices Points
	OpSeed        Op = "seed"         // seed fill from Points[0] up to Boundary
	OpClipRect    Op = "clip-rect"    // segments clipped to the rectangle spanned by Window
	OpClipConvex  Op = "clip-convex"  // segments clipped to the convex polygon Window
	OpClipPolygon Op = "clip-polygon" // polygon Points clipped to the convex polygon Window
	OpFigure      Op = "figure"       // transformed sample figure
)

// Polygon drawing modes, used in the Algorithm field of polygon items.
const (
	ModeScanLine = "scanline" // ordered edge list fill (default)
	ModeOutline  = "outline"  // closed outline, drawn with integer Bresenham
	ModeNonZero  = "nonzero"  // antialiased fill, nonzero winding rule
	ModeEvenOdd  = "evenodd"  // antialiased fill, even-odd rule
)

// Item is a single drawing instruction in a scene.
// Which fields are used depends on Op.
type Item struct {
	Op        Op           `json:"op" yaml:"op" toml:"op"`
	Algorithm string       `json:"algorithm,omitempty" yaml:"algorithm,omitempty" toml:"algorithm,omitempty"`
	Color     string       `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`          // "#rgb", "#rrggbb" or "#rrggbbaa"; default black
	Boundary  string       `json:"boundary,omitempty" yaml:"boundary,omitempty" toml:"boundary,omitempty"` // seed boundary colour, or clip window outline colour
	Points    [][2]float64 `json:"points,omitempty" yaml:"points,omitempty" toml:"points,omitempty"`
	Window    [][2]float64 `json:"window,omitempty" yaml:"window,omitempty" toml:"window,omitempty"`
	Center    [2]float64   `json:"center,omitzero" yaml:"center,omitempty" toml:"center,omitempty"`
	Radius    int          `json:"radius,omitempty" yaml:"radius,omitempty" toml:"radius,omitempty"`
	A         int          `json:"a,omitempty" yaml:"a,omitempty" toml:"a,omitempty"`
	B         int          `json:"b,omitempty" yaml:"b,omitempty" toml:"b,omitempty"`
	Steps     []Step       `json:"steps,omitempty" yaml:"steps,omitempty" toml:"steps,omitempty"` // figure transformations, applied in order
}

// Step is one transformation of a figure item.
//
// Kind is "translate" (by X, Y), "scale" (by factors X, Y about Center) or
// "rotate" (by Angle degrees about Center).
type Step struct {
	Kind   string     `json:"kind" yaml:"kind" toml:"kind"`
	X      float64    `json:"x,omitempty" yaml:"x,omitempty" toml:"x,omitempty"`
	Y      float64    `json:"y,omitempty" yaml:"y,omitempty" toml:"y,omitempty"`
	Angle  float64    `json:"angle,omitempty" yaml:"angle,omitempty" toml:"angle,omitempty"`
	Center [2]float64 `json:"center,omitzero" yaml:"center,omitempty" toml:"center,omitempty"`
}

// pt is a helper to create a vec.Vec2 from a coordinate pair.
func pt(p [2]float64) vec.Vec2 {
	return vec.Vec2{X: p[0], Y: p[1]}
}

// pixel rounds a coordinate pair to the nearest pixel.
func pixel(p [2]float64) image.Point {
	return image.Pt(int(math.Round(p[0])), int(math.Round(p[1])))
}

// pts converts coordinate pairs to vectors.
func pts(ps [][2]float64) []vec.Vec2 {
	res := make([]vec.Vec2, len(ps))
	for i, p := range ps {
		res[i] = pt(p)
	}
	return res
}
