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


// Package testcases holds named inputs with known results, shared by the
// tests of the grid package and by the commands which export or visualise
// them.
package testcases

// VentCase defines a set of segments together with the expected overlap
// counts.
type VentCase struct {
	Name      string // lowercase a-z and _ only
	Input     string // one "x1,y1 -> x2,y2" segment per line
	Threshold int    // count cells covered by at least this many segments

	Straight int // expected result using horizontal and vertical segments only
	All      int // expected result including diagonal segments
}

// HeightCase defines a height map of single digits together with its
// expected low points.
type HeightCase struct {
	Name  string
	Input string // one row of digits per line

	Low [][2]int // expected low points (x, y), in row-major order
}
