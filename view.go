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
	"fmt"
	"iter"
)

// View is a row or column of a [Grid].  A View does not copy the cells:
// it describes them by a start offset, a stride and a length, and reads
// through to the grid on every access.  Changes made to the grid after
// the View was obtained are visible through the View.
type View[T any] struct {
	g      *Grid[T]
	start  int // index of the first element in g.cells
	stride int // 1 for rows, width for columns
	n      int // number of elements
}

// Len returns the number of cells in the view.
func (v View[T]) Len() int { return v.n }

// At returns the i-th cell of the view.
func (v View[T]) At(i int) T {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("grid: view index %d out of range [0,%d)", i, v.n))
	}
	return v.g.cells[v.start+i*v.stride]
}

// All iterates over the cells of the view in order.
func (v View[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range v.n {
			if !yield(v.g.cells[v.start+i*v.stride]) {
				return
			}
		}
	}
}

// Values returns the cells of the view as a newly allocated slice.
func (v View[T]) Values() []T {
	res := make([]T, v.n)
	for i := range v.n {
		res[i] = v.g.cells[v.start+i*v.stride]
	}
	return res
}
