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


// Package grid implements fixed-size two-dimensional grids and the
// rasterisation of horizontal, vertical and 45° line segments onto them.
//
// A [Grid] stores its cells in a single row-major slice.  Rows and columns
// are exposed as [View] values which share storage with the grid.  The
// [Rasteriser] expands a [Segment] into the cells it covers, and
// [Accumulate] uses this to count how many segments pass through each
// cell.
package grid

import (
	"fmt"
	"iter"
	"strings"

	"seehuhn.de/go/geom/rect"
)

// Grid is a rectangular field of values of type T, stored in row-major
// order.  The cell at (x, y) is located at index x + y*width.
//
// The dimensions of a Grid are fixed at creation time.
// A Grid is not safe for concurrent use.
type Grid[T any] struct {
	width  int
	height int
	cells  []T
}

// New returns a width×height grid with every cell set to the zero value
// of T.
func New[T any](width, height int) *Grid[T] {
	checkDims(width, height)
	return &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}
}

// NewSquare returns a size×size grid with every cell set to the zero value
// of T.
func NewSquare[T any](size int) *Grid[T] {
	return New[T](size, size)
}

// NewFrom returns a grid which uses values as its backing storage.
// The values must be given in row-major order, and len(values) must equal
// width*height.  The grid takes ownership of the slice.
func NewFrom[T any](width, height int, values []T) *Grid[T] {
	checkDims(width, height)
	if len(values) != width*height {
		panic(fmt.Sprintf("grid: %d values for a %dx%d grid", len(values), width, height))
	}
	return &Grid[T]{
		width:  width,
		height: height,
		cells:  values,
	}
}

func checkDims(width, height int) {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("grid: invalid dimensions %dx%d", width, height))
	}
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Len returns the number of cells, width*height.
func (g *Grid[T]) Len() int { return len(g.cells) }

// Rect returns the area covered by the grid, with one unit per cell.
func (g *Grid[T]) Rect() rect.Rect {
	return rect.Rect{
		URx: float64(g.width),
		URy: float64(g.height),
	}
}

// In reports whether (x, y) is a valid cell position.
func (g *Grid[T]) In(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// index maps (x, y) to a position in g.cells.
// Coordinates outside the grid cause a panic, even if the computed index
// would fall inside the backing slice.
func (g *Grid[T]) index(x, y int) int {
	if !g.In(x, y) {
		panic(fmt.Sprintf("grid: (%d,%d) outside %dx%d grid", x, y, g.width, g.height))
	}
	return x + y*g.width
}

// Get returns the value of the cell at (x, y).
// The coordinates must be inside the grid.
func (g *Grid[T]) Get(x, y int) T {
	return g.cells[g.index(x, y)]
}

// GetChecked returns the value of the cell at (x, y).  If the coordinates
// are outside the grid, the zero value and false are returned.
// This is the safe way to look up neighbours at the edge of the grid.
func (g *Grid[T]) GetChecked(x, y int) (T, bool) {
	if !g.In(x, y) {
		var zero T
		return zero, false
	}
	return g.cells[x+y*g.width], true
}

// Set overwrites the cell at (x, y).
// The coordinates must be inside the grid.
func (g *Grid[T]) Set(x, y int, v T) {
	g.cells[g.index(x, y)] = v
}

// Ptr returns a pointer to the cell at (x, y), for in-place updates like
// *g.Ptr(x, y) += 1.  The pointer remains valid for the lifetime of the
// grid.
func (g *Grid[T]) Ptr(x, y int) *T {
	return &g.cells[g.index(x, y)]
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Clone returns a copy of g which does not share storage with g.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{width: g.width, height: g.height, cells: cells}
}

// All iterates over the cell values in row-major order.
func (g *Grid[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.cells {
			if !yield(v) {
				return
			}
		}
	}
}

// Cells iterates over the cells in row-major order, together with their
// positions.
func (g *Grid[T]) Cells() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for i, v := range g.cells {
			p := Point{X: i % g.width, Y: i / g.width}
			if !yield(p, v) {
				return
			}
		}
	}
}

// Count returns the number of cells for which pred returns true.
func (g *Grid[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range g.cells {
		if pred(v) {
			n++
		}
	}
	return n
}

// Row returns a view of row y, ordered from left to right.
func (g *Grid[T]) Row(y int) View[T] {
	if y < 0 || y >= g.height {
		panic(fmt.Sprintf("grid: row %d outside %dx%d grid", y, g.width, g.height))
	}
	return View[T]{g: g, start: y * g.width, stride: 1, n: g.width}
}

// Column returns a view of column x, ordered from top to bottom.
func (g *Grid[T]) Column(x int) View[T] {
	if x < 0 || x >= g.width {
		panic(fmt.Sprintf("grid: column %d outside %dx%d grid", x, g.width, g.height))
	}
	return View[T]{g: g, start: x, stride: g.width, n: g.height}
}

// Rows iterates over the rows of the grid, from top to bottom.
func (g *Grid[T]) Rows() iter.Seq[View[T]] {
	return func(yield func(View[T]) bool) {
		for y := range g.height {
			if !yield(g.Row(y)) {
				return
			}
		}
	}
}

// Columns iterates over the columns of the grid, from left to right.
func (g *Grid[T]) Columns() iter.Seq[View[T]] {
	return func(yield func(View[T]) bool) {
		for x := range g.width {
			if !yield(g.Column(x)) {
				return
			}
		}
	}
}

// String formats the grid one row per line, with cells separated by
// spaces.
func (g *Grid[T]) String() string {
	var b strings.Builder
	for y := range g.height {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := range g.width {
			if x > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprint(&b, g.cells[x+y*g.width])
		}
	}
	return b.String()
}
