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


// Command overlap reads line segments, one "x1,y1 -> x2,y2" per line,
// and prints the number of grid cells covered by at least two of them.
//
// Usage:
//
//	overlap [-diagonals] [-threshold n] [-png file] [-scale n] [-v] [file]
//
// If no file is given, segments are read from standard input.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"

	"seehuhn.de/go/grid"
)

func main() {
	diagonals := flag.Bool("diagonals", false, "include 45° segments")
	threshold := flag.Int("threshold", 2, "minimum number of segments per cell")
	pngFile := flag.String("png", "", "write the occupancy grid to this PNG file")
	scale := flag.Int("scale", 1, "pixels per cell in the PNG output")
	verbose := flag.Bool("v", false, "log debug messages to stderr")
	flag.Parse()

	if *verbose {
		grid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var in io.Reader = os.Stdin
	switch flag.NArg() {
	case 0:
		// use stdin
	case 1:
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	default:
		flag.Usage()
		os.Exit(2)
	}

	n, err := run(in, *diagonals, *threshold, *pngFile, *scale)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(n)
}

func run(in io.Reader, diagonals bool, threshold int, pngFile string, scale int) (int, error) {
	segs, err := grid.ReadSegments(in)
	if err != nil {
		return 0, err
	}

	w, h := grid.Extent(segs)
	g := grid.New[int](w, h)
	r := grid.NewRasteriser(g.Rect())
	r.Diagonals = diagonals
	if err := grid.Accumulate(g, r, segs); err != nil {
		return 0, err
	}
	n := grid.Overlaps(g, threshold)

	if pngFile != "" {
		if err := writePNG(g, pngFile, threshold, scale); err != nil {
			return 0, err
		}
	}
	return n, nil
}

// writePNG shows cells reaching the threshold in white.
func writePNG(g *grid.Grid[int], fname string, threshold, scale int) error {
	img := grid.Image(g, scale, grid.CountShade(threshold))

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	return f.Close()
}
