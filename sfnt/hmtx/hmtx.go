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

// Package hmtx reads and writes the "hhea" and "hmtx" tables.
// https://docs.microsoft.com/en-us/typography/opentype/spec/hhea
// https://docs.microsoft.com/en-us/typography/opentype/spec/hmtx
package hmtx

import (
	"encoding/binary"
	"fmt"

	"seehuhn.de/go/postscript/funit"
)

const hheaLength = 36

// Info contains the glyph metrics from the "hhea" and "hmtx" tables.
// The hhea table is kept as raw bytes, so that fields which this library
// never touches survive a Decode/Encode cycle unchanged.
type Info struct {
	Widths []uint16
	LSBs   []int16

	numLong int
	hhea    []byte
}

// Decode extracts the glyph metrics from the "hhea" and "hmtx" tables.
func Decode(hheaData, hmtxData []byte) (*Info, error) {
	if len(hheaData) < hheaLength {
		return nil, fmt.Errorf("sfnt/hmtx: hhea table too short")
	}
	version := binary.BigEndian.Uint32(hheaData[0:4])
	if version != 0x00010000 {
		return nil, fmt.Errorf("sfnt/hmtx: unsupported hhea version 0x%08x", version)
	}
	metricDataFormat := int16(binary.BigEndian.Uint16(hheaData[32:34]))
	if metricDataFormat != 0 {
		return nil, fmt.Errorf("sfnt/hmtx: unsupported metric data format %d", metricDataFormat)
	}
	numLong := int(binary.BigEndian.Uint16(hheaData[34:36]))

	prevWidth := uint16(0)
	var widths []uint16
	var lsbs []int16
	for i := 0; len(hmtxData) > 0; i++ {
		width := prevWidth
		if i < numLong {
			if len(hmtxData) < 2 {
				return nil, fmt.Errorf("sfnt/hmtx: hmtx table too short")
			}
			width = uint16(hmtxData[0])<<8 | uint16(hmtxData[1])
			hmtxData = hmtxData[2:]
			prevWidth = width
		}
		widths = append(widths, width)

		if len(hmtxData) < 2 {
			return nil, fmt.Errorf("sfnt/hmtx: hmtx table too short")
		}
		lsb := int16(hmtxData[0])<<8 | int16(hmtxData[1])
		hmtxData = hmtxData[2:]
		lsbs = append(lsbs, lsb)
	}
	if len(widths) < numLong {
		return nil, fmt.Errorf("sfnt/hmtx: hmtx table too short")
	}

	info := &Info{
		Widths:  widths,
		LSBs:    lsbs,
		numLong: numLong,
		hhea:    hheaData,
	}
	return info, nil
}

// Encode creates the "hhea" and "hmtx" tables.  The extents give the
// bounding box of each glyph and are used to update the side bearing
// summary fields in the hhea table; glyphs with a zero extent are ignored.
func (info *Info) Encode(extents []funit.Rect16) (hheaData, hmtxData []byte) {
	numGlyphs := len(info.Widths)
	if len(info.LSBs) != numGlyphs {
		panic("sfnt/hmtx: lsb length mismatch")
	}
	if extents != nil && len(extents) != numGlyphs {
		panic("sfnt/hmtx: extents length mismatch")
	}

	hheaData = make([]byte, len(info.hhea))
	copy(hheaData, info.hhea)

	var advanceWidthMax uint16
	for _, w := range info.Widths {
		if w > advanceWidthMax {
			advanceWidthMax = w
		}
	}
	binary.BigEndian.PutUint16(hheaData[10:12], advanceWidthMax)

	if extents != nil {
		var minLSB, minRSB, xMaxExtent int16
		first := true
		for i, bbox := range extents {
			if bbox.IsZero() {
				continue
			}
			lsb := info.LSBs[i]
			rsb := int16(info.Widths[i]) - int16(bbox.URx-bbox.LLx) - lsb
			xExt := lsb + int16(bbox.URx-bbox.LLx)
			if first || lsb < minLSB {
				minLSB = lsb
			}
			if first || rsb < minRSB {
				minRSB = rsb
			}
			if first || xExt > xMaxExtent {
				xMaxExtent = xExt
			}
			first = false
		}
		binary.BigEndian.PutUint16(hheaData[12:14], uint16(minLSB))
		binary.BigEndian.PutUint16(hheaData[14:16], uint16(minRSB))
		binary.BigEndian.PutUint16(hheaData[16:18], uint16(xMaxExtent))
	}

	numLong := info.numLong
	hmtxData = make([]byte, 0, 2*numLong+2*numGlyphs)
	for i := 0; i < numGlyphs; i++ {
		if i < numLong {
			hmtxData = append(hmtxData,
				byte(info.Widths[i]>>8), byte(info.Widths[i]))
		}
		hmtxData = append(hmtxData,
			byte(uint16(info.LSBs[i])>>8), byte(info.LSBs[i]))
	}

	return hheaData, hmtxData
}
