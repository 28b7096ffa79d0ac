// seehuhn.de/go/outlines - remove overlapping contours from TrueType fonts
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

package glyf

import (
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/outlines/sfnt"
)

// flags used in the binary representation of composite glyphs
const (
	flagArg1And2AreWords   = 0x0001
	flagArgsAreXYValues    = 0x0002
	flagWeHaveAScale       = 0x0008
	flagMoreComponents     = 0x0020
	flagWeHaveAnXAndYScale = 0x0040
	flagWeHaveATwoByTwo    = 0x0080
	flagWeHaveInstructions = 0x0100
)

// Transform returns the affine transformation which places the component
// within the composite glyph.  Components which are positioned by matching
// points instead of x/y offsets are not supported.
func (c GlyphComponent) Transform() (matrix.Matrix, error) {
	if c.Flags&flagArgsAreXYValues == 0 {
		return matrix.Matrix{}, &sfnt.NotSupportedError{
			SubSystem: "sfnt/glyf",
			Feature:   "point-aligned glyph components",
		}
	}

	args := c.Args
	var dx, dy float64
	if c.Flags&flagArg1And2AreWords != 0 {
		dx = float64(int16(args[0])<<8 | int16(args[1]))
		dy = float64(int16(args[2])<<8 | int16(args[3]))
		args = args[4:]
	} else {
		dx = float64(int8(args[0]))
		dy = float64(int8(args[1]))
		args = args[2:]
	}

	m := matrix.Matrix{1, 0, 0, 1, dx, dy}
	switch {
	case c.Flags&flagWeHaveAScale != 0:
		s := f2dot14(args[0], args[1])
		m[0] = s
		m[3] = s
	case c.Flags&flagWeHaveAnXAndYScale != 0:
		m[0] = f2dot14(args[0], args[1])
		m[3] = f2dot14(args[2], args[3])
	case c.Flags&flagWeHaveATwoByTwo != 0:
		m[0] = f2dot14(args[0], args[1])
		m[1] = f2dot14(args[2], args[3])
		m[2] = f2dot14(args[4], args[5])
		m[3] = f2dot14(args[6], args[7])
	}
	return m, nil
}

func f2dot14(hi, lo byte) float64 {
	return float64(int16(hi)<<8|int16(lo)) / 16384
}
