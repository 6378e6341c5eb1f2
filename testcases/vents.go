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


package testcases

import (
	"fmt"
	"strings"
)

// sample is the classic ten-segment example.
const sample = `0,9 -> 5,9
8,0 -> 0,8
9,4 -> 3,4
2,2 -> 2,1
7,0 -> 7,4
6,4 -> 2,0
0,9 -> 2,9
3,4 -> 1,4
0,0 -> 8,8
5,5 -> 8,2
`

var basicCases = []VentCase{
	{
		Name:      "sample",
		Input:     sample,
		Threshold: 2,
		Straight:  5,
		All:       12,
	},
	{
		Name:      "cross",
		Input:     "0,1 -> 2,1\n1,0 -> 1,2\n",
		Threshold: 2,
		Straight:  1,
		All:       1,
	},
	{
		Name:      "x_shape",
		Input:     "0,0 -> 2,2\n2,0 -> 0,2\n",
		Threshold: 2,
		Straight:  0,
		All:       1,
	},
	{
		Name:      "reversed_duplicate",
		Input:     "3,0 -> 0,0\n0,0 -> 3,0\n",
		Threshold: 2,
		Straight:  4,
		All:       4,
	},
	{
		// (2,0) is covered by all three segments
		Name:      "triple",
		Input:     "0,0 -> 4,0\n2,0 -> 2,3\n0,2 -> 2,0\n",
		Threshold: 3,
		Straight:  0,
		All:       1,
	},
}

var edgeCases = []VentCase{
	{
		Name:      "dots",
		Input:     "2,2 -> 2,2\n2,2 -> 2,2\n0,0 -> 0,0\n",
		Threshold: 2,
		Straight:  1,
		All:       1,
	},
	{
		Name:      "square_border",
		Input:     "0,0 -> 0,4\n0,4 -> 4,4\n4,4 -> 4,0\n4,0 -> 0,0\n",
		Threshold: 2,
		Straight:  4,
		All:       4,
	},
	{
		Name:      "threshold_one",
		Input:     "0,0 -> 3,0\n0,3 -> 3,0\n",
		Threshold: 1,
		Straight:  4,
		All:       7,
	},
}

var largeCases = []VentCase{
	{
		// 10 horizontal and 10 vertical lines cross in 100 cells.  The main
		// diagonal only meets them at existing crossings, the anti-diagonal
		// adds 20 new ones.
		Name:      "lattice",
		Input:     lattice(100, 10) + "0,0 -> 99,99\n99,0 -> 0,99\n",
		Threshold: 2,
		Straight:  100,
		All:       120,
	},
}

// lattice returns horizontal and vertical lines across a size×size area,
// spaced step cells apart.
func lattice(size, step int) string {
	var b strings.Builder
	for i := 0; i < size; i += step {
		fmt.Fprintf(&b, "0,%d -> %d,%d\n", i, size-1, i)
		fmt.Fprintf(&b, "%d,0 -> %d,%d\n", i, i, size-1)
	}
	return b.String()
}
