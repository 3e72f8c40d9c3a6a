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

// Command genpdf generates vector reference images for the scene
// catalogue.  It writes one PDF per scene and renders it to PNG using
// Ghostscript, for visual comparison with the rasterised scenes.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/cglab/testcases"
)

const refDir = "testdata/reference"

// kappa is the control point distance for a quarter circle of radius 1
// approximated by a cubic Bézier curve.
const kappa = 0.5522847498307936

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// White geometry on a black background, so that grey levels can be
	// read as coverage values.
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; scenes use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))
	page.SetLineWidth(1)

	for _, item := range tc.Items {
		if err := drawItem(page, tc, item); err != nil {
			return err
		}
	}

	return page.Close()
}

// drawItem adds the vector geometry of a scene item to the page.
// Pixel coordinates refer to pixel centres, which are offset by half a
// unit from the pixel corners used by the antialiased fills.
func drawItem(page *document.Page, tc testcases.TestCase, item testcases.Item) error {
	centre := func(v vec.Vec2) vec.Vec2 {
		return vec.Vec2{X: v.X + 0.5, Y: v.Y + 0.5}
	}

	if item.Boundary != "" {
		win, err := item.WindowVertices()
		if err != nil {
			return err
		}
		if win != nil {
			polyline(page, win, centre)
			page.ClosePath()
			page.Stroke()
		}
	}

	switch item.Op {
	case testcases.OpLine, testcases.OpClipRect, testcases.OpClipConvex:
		segs, err := item.Segments()
		if err != nil {
			return err
		}
		if len(segs) == 0 {
			return nil
		}
		for _, s := range segs {
			polyline(page, s[:], centre)
		}
		page.Stroke()

	case testcases.OpCircle:
		ellipse(page, item.Center, float64(item.Radius), float64(item.Radius))
		page.Stroke()

	case testcases.OpEllipse:
		ellipse(page, item.Center, float64(item.A), float64(item.B))
		page.Stroke()

	case testcases.OpPolygon, testcases.OpClipPolygon:
		vertices, err := item.PolygonVertices()
		if err != nil {
			return err
		}
		if len(vertices) == 0 {
			return nil
		}
		switch item.Algorithm {
		case testcases.ModeNonZero, testcases.ModeEvenOdd:
			polyline(page, vertices, func(v vec.Vec2) vec.Vec2 { return v })
			page.ClosePath()
			if item.Algorithm == testcases.ModeEvenOdd {
				page.FillEvenOdd()
			} else {
				page.Fill()
			}
		case testcases.ModeOutline:
			polyline(page, vertices, centre)
			page.ClosePath()
			page.Stroke()
		default:
			polyline(page, vertices, centre)
			page.ClosePath()
			page.Fill()
		}

	case testcases.OpFigure:
		fig, err := item.Figure(tc.Width, tc.Height)
		if err != nil {
			return err
		}
		for _, poly := range [][]vec.Vec2{fig.Rhombus, fig.Curve} {
			polyline(page, poly, centre)
			page.ClosePath()
		}
		page.Stroke()

	case testcases.OpSeed:
		// seed fills depend on the pixels drawn so far and have no
		// vector form
	}
	return nil
}

// polyline appends an open polyline through pts to the current path.
func polyline(page *document.Page, pts []vec.Vec2, m func(vec.Vec2) vec.Vec2) {
	for i, p := range pts {
		q := m(p)
		if i == 0 {
			page.MoveTo(q.X, q.Y)
		} else {
			page.LineTo(q.X, q.Y)
		}
	}
}

// ellipse appends an axis-aligned ellipse, made of four cubic Bézier
// curves, to the current path.
func ellipse(page *document.Page, center [2]float64, a, b float64) {
	cx, cy := center[0]+0.5, center[1]+0.5
	if a == 0 || b == 0 {
		page.MoveTo(cx-a, cy-b)
		page.LineTo(cx+a, cy+b)
		return
	}
	ka, kb := kappa*a, kappa*b
	page.MoveTo(cx+a, cy)
	page.CurveTo(cx+a, cy+kb, cx+ka, cy+b, cx, cy+b)
	page.CurveTo(cx-ka, cy+b, cx-a, cy+kb, cx-a, cy)
	page.CurveTo(cx-a, cy-kb, cx-ka, cy-b, cx, cy-b)
	page.CurveTo(cx+ka, cy-b, cx+a, cy-kb, cx+a, cy)
	page.ClosePath()
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
