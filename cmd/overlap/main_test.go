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


package main

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/grid"
	"seehuhn.de/go/grid/testcases"
)

func TestRun(t *testing.T) {
	input := testcases.Vents["basic"][0].Input

	n, err := run(strings.NewReader(input), false, 2, "", 1)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = run(strings.NewReader(input), true, 2, "", 1)
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}

func TestRunPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "vents.png")
	_, err := run(strings.NewReader("0,0 -> 2,0\n1,0 -> 1,1\n"), false, 2, out, 4)
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	b := img.Bounds()
	assert.Equal(t, 12, b.Dx())
	assert.Equal(t, 8, b.Dy())
}

func TestRunErrors(t *testing.T) {
	_, err := run(strings.NewReader("0,0 -> 2,1\n"), true, 2, "", 1)
	assert.ErrorIs(t, err, grid.ErrUnsupportedSegment)

	_, err = run(strings.NewReader("0,0 -> 2\n"), true, 2, "", 1)
	assert.ErrorIs(t, err, grid.ErrSyntax)
}
