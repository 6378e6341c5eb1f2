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
	"image"

	"golang.org/x/exp/constraints"
	"golang.org/x/image/draw"
)

// Image renders g as a grayscale image with one scale×scale block of
// pixels per cell.  The shade function maps cell values to gray levels.
func Image[T any](g *Grid[T], scale int, shade func(T) uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.width, g.height))
	for y := range g.height {
		row := img.Pix[y*img.Stride:]
		for x := range g.width {
			row[x] = shade(g.cells[x+y*g.width])
		}
	}
	if scale <= 1 {
		return img
	}

	big := image.NewGray(image.Rect(0, 0, g.width*scale, g.height*scale))
	draw.NearestNeighbor.Scale(big, big.Bounds(), img, img.Bounds(), draw.Src, nil)
	return big
}

// CountShade returns a shade function for [Image] which maps 0 to black
// and values of limit or more to white, linearly in between.
func CountShade[T constraints.Integer](limit T) func(T) uint8 {
	return func(n T) uint8 {
		if n <= 0 || limit <= 0 {
			return 0
		}
		if n >= limit {
			return 255
		}
		return uint8(int64(n) * 255 / int64(limit))
	}
}
