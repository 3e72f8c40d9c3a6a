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

// Package fill implements polygon and region filling.
//
// [ScanLine] fills a polygon given by its vertices using the ordered edge
// list algorithm.  [Seed] floods a region bounded by pixels of a given
// colour, starting from a seed pixel.  [Coverager] computes exact,
// antialiased pixel coverage for polygon outlines.
package fill

import "github.com/pkg/errors"

var (
	// ErrSameColor is returned by Seed if the boundary and fill colours
	// coincide.
	ErrSameColor = errors.New("fill: boundary and fill colour are the same")

	// ErrSeedOutside is returned by Seed if the seed pixel lies outside
	// the image.
	ErrSeedOutside = errors.New("fill: seed outside the image")
)
