// seehuhn.de/go/grid - fixed-size grids and line rasterisation
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


package grid

import (
	"cmp"
	"iter"
)

// neighbourOffsets lists the orthogonal neighbours in the order left, up,
// right, down.
var neighbourOffsets = [4]Point{{X: -1}, {Y: -1}, {X: 1}, {Y: 1}}

// Neighbours4 iterates over the orthogonal neighbours of (x, y) which lie
// inside g, in the order left, up, right, down.
func Neighbours4[T any](g *Grid[T], x, y int) iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		p := Point{X: x, Y: y}
		for _, d := range neighbourOffsets {
			q := p.Add(d)
			v, ok := g.GetChecked(q.X, q.Y)
			if !ok {
				continue
			}
			if !yield(q, v) {
				return
			}
		}
	}
}

// LowPoints returns the cells of g which are strictly lower than all of
// their orthogonal neighbours, in row-major order.  Neighbours outside the
// grid are ignored.
func LowPoints[T cmp.Ordered](g *Grid[T]) []Point {
	var res []Point
	for p, v := range g.Cells() {
		low := true
		for _, w := range Neighbours4(g, p.X, p.Y) {
			if w <= v {
				low = false
				break
			}
		}
		if low {
			res = append(res, p)
		}
	}
	Logger().Debug("found low points", "count", len(res))
	return res
}
