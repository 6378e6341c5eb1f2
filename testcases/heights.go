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

var heightCases = []HeightCase{
	{
		Name: "sample",
		Input: `2199943210
3987894921
9856789892
8767896789
9899965678
`,
		Low: [][2]int{{1, 0}, {9, 0}, {2, 2}, {6, 4}},
	},
	{
		Name:  "plateau",
		Input: "111\n111\n",
		Low:   nil,
	},
	{
		Name:  "single",
		Input: "5\n",
		Low:   [][2]int{{0, 0}},
	},
	{
		Name:  "corner",
		Input: "09\n99\n",
		Low:   [][2]int{{0, 0}},
	},
}
