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
	"errors"
	"iter"
	"strconv"

	"golang.org/x/exp/constraints"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var (
	// ErrUnsupportedSegment is returned for segments which are neither
	// horizontal, vertical, nor at exactly 45°.
	ErrUnsupportedSegment = errors.New("unsupported segment geometry")

	// ErrOutOfBounds is returned when a segment leaves the clip area.
	ErrOutOfBounds = errors.New("segment outside clip area")
)

// Point is a cell position.  X grows to the right and Y grows downwards.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// String formats p as "x,y".
func (p Point) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// Kind classifies the geometry of a [Segment].
type Kind int

const (
	Unsupported Kind = iota
	Dot              // start and end coincide
	Horizontal
	Vertical
	Diagonal // |dx| == |dy| > 0
)

func (k Kind) String() string {
	switch k {
	case Dot:
		return "dot"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	default:
		return "unsupported"
	}
}

// Segment is a straight line between two cells, including both end points.
type Segment struct {
	Start, End Point
}

// Kind returns the geometry class of s.
func (s Segment) Kind() Kind {
	dx := s.End.X - s.Start.X
	dy := s.End.Y - s.Start.Y
	switch {
	case dx == 0 && dy == 0:
		return Dot
	case dy == 0:
		return Horizontal
	case dx == 0:
		return Vertical
	case abs(dx) == abs(dy):
		return Diagonal
	default:
		return Unsupported
	}
}

// String formats s as "x1,y1 -> x2,y2", the same format [ParseSegment]
// reads.
func (s Segment) String() string {
	return s.Start.String() + " -> " + s.End.String()
}

// Len returns the number of cells covered by s, or 0 if the geometry of s
// is unsupported.
func (s Segment) Len() int {
	if s.Kind() == Unsupported {
		return 0
	}
	return max(abs(s.End.X-s.Start.X), abs(s.End.Y-s.Start.Y)) + 1
}

// Points iterates over the cells covered by s, in order from s.Start to
// s.End, both included.  For segments of unsupported geometry nothing is
// yielded; use [Segment.Kind] or a [Rasteriser] to detect this case.
func (s Segment) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		switch s.Kind() {
		case Dot, Vertical:
			for y := range Span(s.Start.Y, s.End.Y) {
				if !yield(Point{X: s.Start.X, Y: y}) {
					return
				}
			}
		case Horizontal:
			for x := range Span(s.Start.X, s.End.X) {
				if !yield(Point{X: x, Y: s.Start.Y}) {
					return
				}
			}
		case Diagonal:
			step := Point{X: sign(s.End.X - s.Start.X), Y: sign(s.End.Y - s.Start.Y)}
			p := s.Start
			for {
				if !yield(p) || p == s.End {
					return
				}
				p = p.Add(step)
			}
		}
	}
}

// Path returns s as a geometric path through the cell centres.
func (s Segment) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{cellCentre(s.Start)}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{cellCentre(s.End)})
	}
}

func cellCentre(p Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X) + 0.5, Y: float64(p.Y) + 0.5}
}

// Span iterates over the integers from a to b, both included.  If b < a
// the values are produced in decreasing order.
func Span[T constraints.Integer](a, b T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if a <= b {
			for i := a; ; i++ {
				if !yield(i) || i == b {
					return
				}
			}
		}
		for i := a; ; i-- {
			if !yield(i) || i == b {
				return
			}
		}
	}
}

// Extent returns the size of the smallest grid, anchored at the origin,
// which contains all end points of the given segments.
func Extent(segs []Segment) (width, height int) {
	for _, s := range segs {
		width = max(width, s.Start.X+1, s.End.X+1)
		height = max(height, s.Start.Y+1, s.End.Y+1)
	}
	return width, height
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
