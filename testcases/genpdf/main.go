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


// Command genpdf draws every vent test case, as a PDF heat map of the
// occupancy grid with the segments overlaid, and as a PNG of the grid.
// Run from the module root directory.
package main

import (
	"fmt"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/grid"
	"seehuhn.de/go/grid/testcases"
)

const outDir = "testdata/vents"

// pageSize is the approximate size of the longer page side, in points.
const pageSize = 400

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.Vents)) {
		for _, tc := range testcases.Vents[category] {
			name := category + "_" + tc.Name

			segs, err := grid.ReadSegments(strings.NewReader(tc.Input))
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			w, h := grid.Extent(segs)
			g := grid.New[int](w, h)
			if err := grid.Accumulate(g, nil, segs); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := generatePDF(g, segs, filepath.Join(outDir, name+".pdf")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := writePNG(g, filepath.Join(outDir, name+".png")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(g *grid.Grid[int], segs []grid.Segment, pdfPath string) error {
	cell := max(1, float64(pageSize)/float64(max(g.Width(), g.Height())))
	paper := &pdf.Rectangle{
		URx: cell * float64(g.Width()),
		URy: cell * float64(g.Height()),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, paper.URx, paper.URy)
	page.Fill()

	// PDF origin is bottom-left, grid origin is top-left.
	// After this, one unit is one cell.
	page.Transform(matrix.Matrix{cell, 0, 0, -cell, 0, paper.URy})

	maxCount := 0
	for n := range g.All() {
		maxCount = max(maxCount, n)
	}
	for p, n := range g.Cells() {
		if n == 0 {
			continue
		}
		page.SetFillColor(color.DeviceGray(0.2 + 0.8*float64(n)/float64(maxCount)))
		page.Rectangle(float64(p.X), float64(p.Y), 1, 1)
		page.Fill()
	}

	page.SetStrokeColor(color.DeviceGray(0.5))
	page.SetLineWidth(0.15)
	page.SetLineCap(graphics.LineCapRound)
	for _, s := range segs {
		for cmd, pts := range s.Path() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			}
		}
		page.Stroke()
	}

	return page.Close()
}

func writePNG(g *grid.Grid[int], pngPath string) error {
	maxCount := 0
	for n := range g.All() {
		maxCount = max(maxCount, n)
	}
	scale := max(1, pageSize/max(g.Width(), g.Height()))
	img := grid.Image(g, scale, grid.CountShade(maxCount))

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
