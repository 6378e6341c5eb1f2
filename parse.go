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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrSyntax is returned when a point or segment cannot be parsed.
var ErrSyntax = errors.New("invalid syntax")

// ParsePoint parses a point written as "x,y".
func ParsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Point{}, fmt.Errorf("point %q: %w", s, ErrSyntax)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Point{}, fmt.Errorf("point %q: %w", s, ErrSyntax)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Point{}, fmt.Errorf("point %q: %w", s, ErrSyntax)
	}
	return Point{X: x, Y: y}, nil
}

// ParseSegment parses a segment written as "x1,y1 -> x2,y2".
// The geometry of the segment is not checked.
func ParseSegment(s string) (Segment, error) {
	from, to, ok := strings.Cut(s, "->")
	if !ok {
		return Segment{}, fmt.Errorf("segment %q: %w", s, ErrSyntax)
	}
	start, err := ParsePoint(from)
	if err != nil {
		return Segment{}, err
	}
	end, err := ParsePoint(to)
	if err != nil {
		return Segment{}, err
	}
	return Segment{Start: start, End: end}, nil
}

// ReadSegments reads one segment per line from r.  Empty lines are
// skipped.
func ReadSegments(r io.Reader) ([]Segment, error) {
	var segs []Segment
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		s, err := ParseSegment(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		segs = append(segs, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return segs, nil
}

// ParseDigits reads a grid of single decimal digits, one row per line,
// as used for height maps.  All rows must have the same length.
func ParseDigits(r io.Reader) (*Grid[uint8], error) {
	var cells []uint8
	width, height := -1, 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if width < 0 {
			width = len(line)
		} else if len(line) != width {
			return nil, fmt.Errorf("row %d has length %d, expected %d: %w",
				height+1, len(line), width, ErrSyntax)
		}
		for _, c := range []byte(line) {
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("row %d: unexpected %q: %w", height+1, c, ErrSyntax)
			}
			cells = append(cells, c-'0')
		}
		height++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if height == 0 {
		return New[uint8](0, 0), nil
	}
	return NewFrom(width, height, cells), nil
}
