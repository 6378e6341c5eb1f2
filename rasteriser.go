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

	"golang.org/x/exp/constraints"
	"seehuhn.de/go/geom/rect"
)

// Rasteriser converts segments into the sequence of cells they cover.
// Create one instance and reuse it for many segments: the internal point
// buffer grows as needed but never shrinks.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// Clip restricts the cells a segment may cover.  Segments leaving the
	// clip area are rejected with [ErrOutOfBounds].  Coordinates must be
	// integer-aligned.  The zero rectangle disables clipping.
	Clip rect.Rect

	// Diagonals selects whether 45° segments are drawn.  If false,
	// diagonal segments are silently skipped.
	Diagonals bool

	pts []Point // reused by Points
}

// NewRasteriser returns a Rasteriser with the given clip rectangle which
// draws diagonal segments.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		Clip:      clip,
		Diagonals: true,
	}
}

// Reset restores the default settings with the given clip rectangle,
// keeping the capacity of internal buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.Clip = clip
	r.Diagonals = true
	r.pts = r.pts[:0]
}

// check validates s.  If s should be skipped, skip is true and err is nil.
func (r *Rasteriser) check(s Segment) (skip bool, err error) {
	switch s.Kind() {
	case Unsupported:
		Logger().Debug("rejecting segment", "segment", s)
		return false, fmt.Errorf("segment %s: %w", s, ErrUnsupportedSegment)
	case Diagonal:
		if !r.Diagonals {
			Logger().Debug("skipping diagonal segment", "segment", s)
			return true, nil
		}
	}

	// All supported segments are convex, so checking the end points is
	// enough.
	if r.Clip != (rect.Rect{}) && !(r.inClip(s.Start) && r.inClip(s.End)) {
		Logger().Debug("segment leaves clip area", "segment", s, "clip", r.Clip)
		return false, fmt.Errorf("segment %s: %w", s, ErrOutOfBounds)
	}
	return false, nil
}

func (r *Rasteriser) inClip(p Point) bool {
	x, y := float64(p.X), float64(p.Y)
	return x >= r.Clip.LLx && x+1 <= r.Clip.URx &&
		y >= r.Clip.LLy && y+1 <= r.Clip.URy
}

// Draw calls emit for every cell covered by s, in order from s.Start to
// s.End.  If s is neither horizontal, vertical nor diagonal, an error
// wrapping [ErrUnsupportedSegment] is returned and emit is not called.
func (r *Rasteriser) Draw(s Segment, emit func(p Point)) error {
	skip, err := r.check(s)
	if err != nil || skip {
		return err
	}
	for p := range s.Points() {
		emit(p)
	}
	return nil
}

// AppendPoints appends the cells covered by s to dst and returns the
// extended slice.  On error, dst is returned unchanged.
func (r *Rasteriser) AppendPoints(dst []Point, s Segment) ([]Point, error) {
	skip, err := r.check(s)
	if err != nil || skip {
		return dst, err
	}
	for p := range s.Points() {
		dst = append(dst, p)
	}
	return dst, nil
}

// Points returns the cells covered by s.  The returned slice is only valid
// until the next call to a method of r.
func (r *Rasteriser) Points(s Segment) ([]Point, error) {
	var err error
	r.pts, err = r.AppendPoints(r.pts[:0], s)
	return r.pts, err
}

// Accumulate increments the cell counter of g once for every segment
// covering the cell.  If r is nil, a Rasteriser clipped to g is used.
//
// All segments are checked before g is modified, so that on error g is
// left unchanged.  Segments must lie inside g.
func Accumulate[T constraints.Integer](g *Grid[T], r *Rasteriser, segs []Segment) error {
	if r == nil {
		r = NewRasteriser(g.Rect())
	}

	drawn := 0
	for _, s := range segs {
		skip, err := r.check(s)
		if err != nil {
			return err
		}
		if skip {
			continue
		}
		if !g.In(s.Start.X, s.Start.Y) || !g.In(s.End.X, s.End.Y) {
			return fmt.Errorf("segment %s: %w", s, ErrOutOfBounds)
		}
		drawn++
	}

	cells := 0
	for _, s := range segs {
		if s.Kind() == Diagonal && !r.Diagonals {
			continue
		}
		for p := range s.Points() {
			*g.Ptr(p.X, p.Y)++
			cells++
		}
	}
	Logger().Debug("accumulated segments",
		"segments", len(segs), "drawn", drawn, "cells", cells)
	return nil
}

// Overlaps returns the number of cells of g with a count of at least
// threshold.
func Overlaps[T constraints.Integer](g *Grid[T], threshold T) int {
	return g.Count(func(n T) bool { return n >= threshold })
}

// CountOverlaps rasterises segs onto a new grid just large enough to hold
// them and returns the number of cells covered by at least threshold
// segments.  If diagonals is false, only horizontal and vertical segments
// are drawn.
func CountOverlaps(segs []Segment, diagonals bool, threshold int) (int, error) {
	w, h := Extent(segs)
	g := New[int](w, h)
	r := NewRasteriser(g.Rect())
	r.Diagonals = diagonals
	if err := Accumulate(g, r, segs); err != nil {
		return 0, err
	}
	return Overlaps(g, threshold), nil
}
