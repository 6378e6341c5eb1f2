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
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func pts(xy ...int) []Point {
	res := make([]Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, Point{X: xy[i], Y: xy[i+1]})
	}
	return res
}

func seg(x1, y1, x2, y2 int) Segment {
	return Segment{Start: Point{X: x1, Y: y1}, End: Point{X: x2, Y: y2}}
}

func TestSegmentPoints(t *testing.T) {
	cases := []struct {
		name string
		s    Segment
		want []Point
	}{
		{"vertical", seg(1, 1, 1, 3), pts(1, 1, 1, 2, 1, 3)},
		{"vertical_desc", seg(1, 3, 1, 1), pts(1, 3, 1, 2, 1, 1)},
		{"horizontal", seg(1, 1, 4, 1), pts(1, 1, 2, 1, 3, 1, 4, 1)},
		{"horizontal_desc", seg(4, 1, 1, 1), pts(4, 1, 3, 1, 2, 1, 1, 1)},
		{"diagonal", seg(1, 3, 3, 1), pts(1, 3, 2, 2, 3, 1)},
		{"diagonal_down", seg(0, 0, 2, 2), pts(0, 0, 1, 1, 2, 2)},
		{"diagonal_back", seg(5, 5, 3, 7), pts(5, 5, 4, 6, 3, 7)},
		{"dot", seg(2, 2, 2, 2), pts(2, 2)},
		{"unsupported", seg(0, 0, 2, 1), nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := slices.Collect(c.s.Points())
			if d := cmp.Diff(c.want, got); d != "" {
				t.Errorf("%s (-want +got):\n%s", c.s, d)
			}
			if c.s.Len() != len(c.want) {
				t.Errorf("Len() = %d, want %d", c.s.Len(), len(c.want))
			}
		})
	}
}

func TestSegmentPointsStop(t *testing.T) {
	var got []Point
	for p := range seg(0, 0, 9, 9).Points() {
		got = append(got, p)
		if len(got) == 2 {
			break
		}
	}
	if d := cmp.Diff(pts(0, 0, 1, 1), got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestSegmentKind(t *testing.T) {
	cases := []struct {
		s    Segment
		want Kind
	}{
		{seg(3, 3, 3, 3), Dot},
		{seg(0, 1, 5, 1), Horizontal},
		{seg(2, 9, 2, 0), Vertical},
		{seg(8, 0, 0, 8), Diagonal},
		{seg(0, 0, 3, 1), Unsupported},
	}
	for _, c := range cases {
		if got := c.s.Kind(); got != c.want {
			t.Errorf("%s: Kind() = %s, want %s", c.s, got, c.want)
		}
	}
}

func TestSpan(t *testing.T) {
	cases := []struct {
		a, b int
		want []int
	}{
		{1, 10, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{10, 1, []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}},
		{5, 2, []int{5, 4, 3, 2}},
		{3, 3, []int{3}},
		{-1, 1, []int{-1, 0, 1}},
	}
	for _, c := range cases {
		got := slices.Collect(Span(c.a, c.b))
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("Span(%d, %d) (-want +got):\n%s", c.a, c.b, d)
		}
	}
}

func TestSpanUnsignedLimits(t *testing.T) {
	got := slices.Collect(Span[uint8](2, 0))
	if d := cmp.Diff([]uint8{2, 1, 0}, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	got = slices.Collect(Span[uint8](254, 255))
	if d := cmp.Diff([]uint8{254, 255}, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestSegmentPath(t *testing.T) {
	var cmds []path.Command
	var coords []vec.Vec2
	for cmd, p := range seg(0, 0, 2, 0).Path() {
		cmds = append(cmds, cmd)
		coords = append(coords, p...)
	}
	if d := cmp.Diff([]path.Command{path.CmdMoveTo, path.CmdLineTo}, cmds); d != "" {
		t.Errorf("commands (-want +got):\n%s", d)
	}
	want := []vec.Vec2{{X: 0.5, Y: 0.5}, {X: 2.5, Y: 0.5}}
	if d := cmp.Diff(want, coords); d != "" {
		t.Errorf("coordinates (-want +got):\n%s", d)
	}
}

func TestExtent(t *testing.T) {
	w, h := Extent([]Segment{seg(0, 9, 5, 9), seg(8, 0, 0, 8), seg(9, 4, 3, 4)})
	if w != 10 || h != 10 {
		t.Errorf("Extent = %dx%d, want 10x10", w, h)
	}
	w, h = Extent(nil)
	if w != 0 || h != 0 {
		t.Errorf("Extent(nil) = %dx%d", w, h)
	}
}

func TestSegmentString(t *testing.T) {
	if got, want := seg(0, 9, 5, 9).String(), "0,9 -> 5,9"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
