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

// Package maxp reads and writes the "maxp" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/maxp
package maxp

import (
	"encoding/binary"
	"fmt"
)

const ttfLength = 32

// Info contains the fields of the "maxp" table which depend on the glyph
// outlines.  The table is kept as raw bytes, so that the hinting-related
// maxima survive a Read/Encode cycle unchanged.
type Info struct {
	// NumGlyphs is the number of glyphs in the font, in the range 1, ..., 65535.
	NumGlyphs int

	// MaxPoints and MaxContours are the per-glyph maxima over all simple
	// glyphs.  Both are zero for CFF-based fonts.
	MaxPoints   uint16
	MaxContours uint16

	data []byte
}

// Read decodes the "maxp" table.
func Read(data []byte) (*Info, error) {
	if len(data) < 6 {
		return nil, fmt.Errorf("sfnt/maxp: table too short")
	}
	version := binary.BigEndian.Uint32(data[0:4])
	if version != 0x00005000 && version != 0x00010000 {
		return nil, fmt.Errorf("sfnt/maxp: unknown version 0x%08x", version)
	}
	numGlyphs := int(binary.BigEndian.Uint16(data[4:6]))
	if numGlyphs == 0 {
		return nil, fmt.Errorf("sfnt/maxp: numGlyphs is zero")
	}

	info := &Info{
		NumGlyphs: numGlyphs,
		data:      data,
	}
	if version == 0x00010000 {
		if len(data) < ttfLength {
			return nil, fmt.Errorf("sfnt/maxp: table too short")
		}
		info.MaxPoints = binary.BigEndian.Uint16(data[6:8])
		info.MaxContours = binary.BigEndian.Uint16(data[8:10])
	}
	return info, nil
}

// IsTTF reports whether the table carries the TrueType glyph maxima.
func (info *Info) IsTTF() bool {
	return len(info.data) >= ttfLength &&
		binary.BigEndian.Uint32(info.data) == 0x00010000
}

// Encode returns the binary representation of the table.  For TrueType
// fonts the maxPoints and maxContours fields are taken from Info; all other
// fields are copied unchanged.
func (info *Info) Encode() []byte {
	out := make([]byte, len(info.data))
	copy(out, info.data)
	if info.IsTTF() {
		binary.BigEndian.PutUint16(out[6:8], info.MaxPoints)
		binary.BigEndian.PutUint16(out[8:10], info.MaxContours)
	}
	return out
}
