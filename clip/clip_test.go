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

package clip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/cglab/plane"
)

func v(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

var square = []vec.Vec2{v(0, 0), v(10, 0), v(10, 10), v(0, 10)}

func TestOutcode(t *testing.T) {
	win := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}
	assert.Equal(t, 0, Outcode(win, v(5, 5)))
	assert.Equal(t, 0, Outcode(win, v(10, 0)))
	assert.Equal(t, codeLeft|codeTop, Outcode(win, v(-1, -1)))
	assert.Equal(t, codeRight|codeBottom, Outcode(win, v(11, 11)))
	assert.Equal(t, 8, codeLeft)
	assert.Equal(t, 4, codeRight)
	assert.Equal(t, 2, codeBottom)
	assert.Equal(t, 1, codeTop)
}

func TestRectangle(t *testing.T) {
	win := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}
	cases := []struct {
		name         string
		p1, p2       vec.Vec2
		visible      bool
		want1, want2 vec.Vec2
	}{
		{"inside", v(1, 2), v(8, 9), true, v(1, 2), v(8, 9)},
		{"diagonal", v(-5, -5), v(15, 15), true, v(0, 0), v(10, 10)},
		{"one boundary", v(5, 5), v(15, 5), true, v(5, 5), v(10, 5)},
		{"reversed", v(15, 5), v(5, 5), true, v(10, 5), v(5, 5)},
		{"horizontal", v(-5, 5), v(15, 5), true, v(0, 5), v(10, 5)},
		{"vertical", v(3, -5), v(3, 15), true, v(3, 0), v(3, 10)},
		{"left", v(-5, 0), v(-1, 20), false, vec.Vec2{}, vec.Vec2{}},
		{"above", v(-5, -1), v(15, -1), false, vec.Vec2{}, vec.Vec2{}},
		{"corner miss", v(-5, 3), v(3, -5), false, vec.Vec2{}, vec.Vec2{}},
		{"corner touch", v(11, -12), v(-11, 12), true, v(0, 0), v(0, 0)},
		{"corner touch reversed", v(-11, 12), v(11, -12), true, v(0, 0), v(0, 0)},
		{"far corner touch", v(16, 4), v(4, 16), true, v(10, 10), v(10, 10)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q1, q2, ok := Rectangle(win, tc.p1, tc.p2)
			require.Equal(t, tc.visible, ok)
			if !ok {
				return
			}
			assert.InDelta(t, tc.want1.X, q1.X, 1e-9)
			assert.InDelta(t, tc.want1.Y, q1.Y, 1e-9)
			assert.InDelta(t, tc.want2.X, q2.X, 1e-9)
			assert.InDelta(t, tc.want2.Y, q2.Y, 1e-9)
		})
	}
}

func TestNewWindow(t *testing.T) {
	w, err := NewWindow(square)
	require.NoError(t, err)
	assert.Equal(t, 1, w.Direction())
	assert.Equal(t, square, w.Vertices())

	rev := []vec.Vec2{v(0, 0), v(0, 10), v(10, 10), v(10, 0)}
	w, err = NewWindow(rev)
	require.NoError(t, err)
	assert.Equal(t, -1, w.Direction())

	_, err = NewWindow(square[:2])
	assert.ErrorIs(t, err, plane.ErrTooFewVertices)

	arrow := []vec.Vec2{v(0, 0), v(10, 0), v(5, 3), v(10, 10)}
	_, err = NewWindow(arrow)
	assert.ErrorIs(t, err, plane.ErrNotConvex)
}

func TestWindowLine(t *testing.T) {
	ccw, err := NewWindow(square)
	require.NoError(t, err)
	cw, err := NewWindow([]vec.Vec2{v(0, 0), v(0, 10), v(10, 10), v(10, 0)})
	require.NoError(t, err)
	tri, err := NewWindow([]vec.Vec2{v(0, 0), v(10, 0), v(0, 10)})
	require.NoError(t, err)

	cases := []struct {
		name         string
		win          *Window
		p1, p2       vec.Vec2
		visible      bool
		want1, want2 vec.Vec2
	}{
		{"diagonal", ccw, v(-5, -5), v(15, 15), true, v(0, 0), v(10, 10)},
		{"diagonal cw", cw, v(-5, -5), v(15, 15), true, v(0, 0), v(10, 10)},
		{"horizontal", ccw, v(-5, 5), v(15, 5), true, v(0, 5), v(10, 5)},
		{"reversed", cw, v(15, 5), v(-5, 5), true, v(10, 5), v(0, 5)},
		{"inside", ccw, v(1, 1), v(2, 3), true, v(1, 1), v(2, 3)},
		{"parallel outside", ccw, v(-5, -1), v(15, -1), false, vec.Vec2{}, vec.Vec2{}},
		{"on edge", ccw, v(-5, 0), v(15, 0), true, v(0, 0), v(10, 0)},
		{"ends before", ccw, v(-9, 5), v(-1, 5), false, vec.Vec2{}, vec.Vec2{}},
		{"triangle", tri, v(-2, 2), v(10, 2), true, v(0, 2), v(8, 2)},
		{"triangle miss", tri, v(6, 6), v(12, 0), false, vec.Vec2{}, vec.Vec2{}},
		{"point inside", ccw, v(4, 4), v(4, 4), true, v(4, 4), v(4, 4)},
		{"corner touch", ccw, v(11, -12), v(-11, 12), true, v(0, 0), v(0, 0)},
		{"exit only", ccw, v(5, 5), v(5, 20), true, v(5, 5), v(5, 10)},
		{"enter only", cw, v(-4, 7), v(3, 7), true, v(0, 7), v(3, 7)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q1, q2, ok := tc.win.Line(tc.p1, tc.p2)
			require.Equal(t, tc.visible, ok)
			if !ok {
				return
			}
			assert.InDelta(t, tc.want1.X, q1.X, 1e-9)
			assert.InDelta(t, tc.want1.Y, q1.Y, 1e-9)
			assert.InDelta(t, tc.want2.X, q2.X, 1e-9)
			assert.InDelta(t, tc.want2.Y, q2.Y, 1e-9)
		})
	}
}

// TestWindowLineMatchesRectangle checks that both line clippers agree on
// rectangular windows.
func TestWindowLineMatchesRectangle(t *testing.T) {
	r := rect.Rect{LLx: 2, LLy: 3, URx: 12, URy: 9}
	w := WindowFromRect(r)
	var ends []vec.Vec2
	for x := -2.0; x <= 16; x += 3 {
		for y := -1.0; y <= 13; y += 2.5 {
			ends = append(ends, v(x, y))
		}
	}
	for _, p1 := range ends {
		for _, p2 := range ends {
			a1, a2, ok1 := Rectangle(r, p1, p2)
			b1, b2, ok2 := w.Line(p1, p2)
			if ok1 && ok2 {
				assert.InDelta(t, a1.X, b1.X, 1e-6, "%v %v", p1, p2)
				assert.InDelta(t, a1.Y, b1.Y, 1e-6, "%v %v", p1, p2)
				assert.InDelta(t, a2.X, b2.X, 1e-6, "%v %v", p1, p2)
				assert.InDelta(t, a2.Y, b2.Y, 1e-6, "%v %v", p1, p2)
			} else if ok1 != ok2 {
				// the clippers may only disagree on segments touching
				// the window in a single point
				q1, q2 := a1, a2
				if ok2 {
					q1, q2 = b1, b2
				}
				assert.InDelta(t, q1.X, q2.X, 1e-6, "%v %v", p1, p2)
				assert.InDelta(t, q1.Y, q2.Y, 1e-6, "%v %v", p1, p2)
			}
		}
	}
}

// TestWindowLineOnSegment checks, for a triangular window, that the
// clipped segment is a sub-segment of the input with the same
// orientation, lies inside the window, and keeps end points which are
// already inside.
func TestWindowLineOnSegment(t *testing.T) {
	tri := []vec.Vec2{v(0, 0), v(10, 0), v(0, 10)}
	w, err := NewWindow(tri)
	require.NoError(t, err)

	inside := func(p vec.Vec2) bool {
		for i, a := range tri {
			b := tri[(i+1)%len(tri)]
			if plane.Skew(b.Sub(a), p.Sub(a)) < -1e-9 {
				return false
			}
		}
		return true
	}

	var ends []vec.Vec2
	for x := -4.0; x <= 14; x += 3 {
		for y := -3.0; y <= 13; y += 4 {
			ends = append(ends, v(x, y))
		}
	}
	for _, p1 := range ends {
		for _, p2 := range ends {
			q1, q2, ok := w.Line(p1, p2)
			mid := p1.Add(p2).Mul(0.5)
			if !ok {
				assert.False(t, inside(p1) || inside(p2) || inside(mid),
					"%v %v", p1, p2)
				continue
			}

			d := p2.Sub(p1)
			for _, q := range []vec.Vec2{q1, q2} {
				assert.True(t, inside(q), "%v %v: %v", p1, p2, q)
				assert.InDelta(t, 0, plane.Skew(d, q.Sub(p1)), 1e-6, "%v %v: %v", p1, p2, q)
			}
			assert.GreaterOrEqual(t, q2.Sub(q1).Dot(d), -1e-9, "%v %v", p1, p2)
			if inside(p1) {
				assert.True(t, plane.Equal(p1, q1), "%v %v: %v", p1, p2, q1)
			}
			if inside(p2) {
				assert.True(t, plane.Equal(p2, q2), "%v %v: %v", p1, p2, q2)
			}
		}
	}
}

func TestWindowPolygon(t *testing.T) {
	ccw, err := NewWindow(square)
	require.NoError(t, err)

	t.Run("self", func(t *testing.T) {
		assert.Equal(t, square, ccw.Polygon(square))
	})

	t.Run("contained", func(t *testing.T) {
		tri := []vec.Vec2{v(1, 1), v(8, 2), v(3, 7)}
		assert.Equal(t, tri, ccw.Polygon(tri))
	})

	t.Run("outside", func(t *testing.T) {
		far := []vec.Vec2{v(20, 20), v(30, 20), v(25, 30)}
		assert.Nil(t, ccw.Polygon(far))
	})

	t.Run("touching edge", func(t *testing.T) {
		next := []vec.Vec2{v(10, 0), v(20, 0), v(20, 10), v(10, 10)}
		assert.Nil(t, ccw.Polygon(next))
	})

	t.Run("overlap", func(t *testing.T) {
		shifted := []vec.Vec2{v(5, 5), v(15, 5), v(15, 15), v(5, 15)}
		want := []vec.Vec2{v(5, 10), v(5, 5), v(10, 5), v(10, 10)}
		assert.Equal(t, want, ccw.Polygon(shifted))
	})

	t.Run("clockwise window", func(t *testing.T) {
		cw, err := NewWindow([]vec.Vec2{v(0, 0), v(0, 10), v(10, 10), v(10, 0)})
		require.NoError(t, err)
		shifted := []vec.Vec2{v(5, 5), v(15, 5), v(15, 15), v(5, 15)}
		want := []vec.Vec2{v(5, 5), v(10, 5), v(10, 10), v(5, 10)}
		assert.ElementsMatch(t, want, cw.Polygon(shifted))
	})

	t.Run("duplicates", func(t *testing.T) {
		tri := []vec.Vec2{v(1, 1), v(1, 1), v(8, 2), v(3, 7), v(1, 1)}
		assert.Equal(t, []vec.Vec2{v(1, 1), v(8, 2), v(3, 7)}, ccw.Polygon(tri))
	})

	t.Run("too few", func(t *testing.T) {
		assert.Nil(t, ccw.Polygon([]vec.Vec2{v(1, 1), v(2, 2)}))
	})

	t.Run("triangle corner", func(t *testing.T) {
		big := []vec.Vec2{v(-10, -10), v(30, -10), v(-10, 30)}
		assert.ElementsMatch(t, square[:3], dropCorner(ccw.Polygon(big), v(0, 10)))
		assert.Len(t, ccw.Polygon(big), 4)
	})
}

// dropCorner removes p from poly.
func dropCorner(poly []vec.Vec2, p vec.Vec2) []vec.Vec2 {
	var res []vec.Vec2
	for _, q := range poly {
		if !plane.Equal(p, q) {
			res = append(res, q)
		}
	}
	return res
}
