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

package plane

import "github.com/pkg/errors"

// Errors reported by the polygon and triangle constructors.
var (
	ErrCollinear      = errors.New("plane: points are collinear")
	ErrTooFewVertices = errors.New("plane: polygon needs at least 3 vertices")
	ErrAlreadyClosed  = errors.New("plane: polygon is already closed")
	ErrNotConvex      = errors.New("plane: polygon is not convex")
)
