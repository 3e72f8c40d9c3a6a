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

// Command export writes the scene catalogue to testdata/testcases.json,
// for use by external reference renderers.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"image/color"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/cglab/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string           `json:"name"`
	Category string           `json:"category"`
	Width    int              `json:"width"`
	Height   int              `json:"height"`
	Items    []testcases.Item `json:"items"`

	// Painted is the number of pixels which differ from the white
	// background after rendering.
	Painted int `json:"painted"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	img, err := testcases.Render(tc, color.White)
	if err != nil {
		return jsonTestCase{}, err
	}

	painted := 0
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y) != white {
				painted++
			}
		}
	}

	return jsonTestCase{
		Name:     category + "_" + tc.Name,
		Category: category,
		Width:    tc.Width,
		Height:   tc.Height,
		Items:    tc.Items,
		Painted:  painted,
	}, nil
}
