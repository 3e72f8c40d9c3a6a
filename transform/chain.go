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

package transform

import (
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Chain is a sequence of transformations, applied in the order in which
// they were pushed.  The most recent transformation can be undone.
//
// The zero value is an empty chain, representing the identity.
type Chain struct {
	steps []matrix.Matrix
}

// Push appends m to the chain.  It is applied after all transformations
// already in the chain.
func (c *Chain) Push(m matrix.Matrix) {
	c.steps = append(c.steps, m)
}

// Undo removes the most recently pushed transformation.
// It returns false if the chain is empty.
func (c *Chain) Undo() bool {
	if len(c.steps) == 0 {
		return false
	}
	c.steps = c.steps[:len(c.steps)-1]
	return true
}

// Clear removes all transformations from the chain.
func (c *Chain) Clear() {
	c.steps = c.steps[:0]
}

// Len returns the number of transformations in the chain.
func (c *Chain) Len() int {
	return len(c.steps)
}

// Steps returns a copy of the transformations in the chain, in push order.
func (c *Chain) Steps() []matrix.Matrix {
	return slices.Clone(c.steps)
}

// Matrix returns the composition of all transformations in the chain.
// The result is recomputed from the identity on every call, so that
// removing a step with Undo never accumulates rounding errors.
func (c *Chain) Matrix() matrix.Matrix {
	m := matrix.Identity
	for _, step := range c.steps {
		m = Combine(m, step)
	}
	return m
}

// Apply maps p through the composed chain.
func (c *Chain) Apply(p vec.Vec2) vec.Vec2 {
	return Apply(c.Matrix(), p)
}

// ApplyAll maps all points through the composed chain.
func (c *Chain) ApplyAll(pts []vec.Vec2) []vec.Vec2 {
	return ApplyAll(c.Matrix(), pts)
}
