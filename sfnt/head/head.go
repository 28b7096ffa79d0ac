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

// Package head reads and writes the "head" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/head
package head

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"seehuhn.de/go/postscript/funit"
)

const headLength = 54

// Info represents the information in the "head" table.  All fields are
// preserved across a Read/Encode cycle, so that patching individual fields
// does not disturb the rest of the table.
type Info struct {
	FontRevision       uint32 // 16.16 fixed point
	CheckSumAdjustment uint32
	Flags              uint16
	UnitsPerEm         uint16
	Created            int64 // seconds since 1904-01-01
	Modified           int64
	FontBBox           funit.Rect16
	MacStyle           uint16
	LowestRecPPEM      uint16
	FontDirectionHint  int16
	IndexToLocFormat   int16
	GlyphDataFormat    int16
}

// Read decodes the binary representation of the "head" table.
func Read(data []byte) (*Info, error) {
	enc := &binaryHead{}
	err := binary.Read(bytes.NewReader(data), binary.BigEndian, enc)
	if err != nil {
		return nil, err
	}

	if enc.Version != 0x00010000 {
		return nil, fmt.Errorf("sfnt/head: unsupported table version 0x%08x", enc.Version)
	}
	if enc.MagicNumber != 0x5F0F3CF5 {
		return nil, fmt.Errorf("sfnt/head: invalid magic number 0x%08x", enc.MagicNumber)
	}

	info := &Info{
		FontRevision:       enc.FontRevision,
		CheckSumAdjustment: enc.CheckSumAdjustment,
		Flags:              enc.Flags,
		UnitsPerEm:         enc.UnitsPerEm,
		Created:            enc.Created,
		Modified:           enc.Modified,
		FontBBox: funit.Rect16{
			LLx: funit.Int16(enc.XMin),
			LLy: funit.Int16(enc.YMin),
			URx: funit.Int16(enc.XMax),
			URy: funit.Int16(enc.YMax),
		},
		MacStyle:          enc.MacStyle,
		LowestRecPPEM:     enc.LowestRecPPEM,
		FontDirectionHint: enc.FontDirectionHint,
		IndexToLocFormat:  enc.IndexToLocFormat,
		GlyphDataFormat:   enc.GlyphDataFormat,
	}
	return info, nil
}

// Encode returns the binary representation of the "head" table.
func (info *Info) Encode() []byte {
	enc := &binaryHead{
		Version:            0x00010000,
		FontRevision:       info.FontRevision,
		CheckSumAdjustment: info.CheckSumAdjustment,
		MagicNumber:        0x5F0F3CF5,
		Flags:              info.Flags,
		UnitsPerEm:         info.UnitsPerEm,
		Created:            info.Created,
		Modified:           info.Modified,
		XMin:               int16(info.FontBBox.LLx),
		YMin:               int16(info.FontBBox.LLy),
		XMax:               int16(info.FontBBox.URx),
		YMax:               int16(info.FontBBox.URy),
		MacStyle:           info.MacStyle,
		LowestRecPPEM:      info.LowestRecPPEM,
		FontDirectionHint:  info.FontDirectionHint,
		IndexToLocFormat:   info.IndexToLocFormat,
		GlyphDataFormat:    info.GlyphDataFormat,
	}

	buf := bytes.NewBuffer(make([]byte, 0, headLength))
	_ = binary.Write(buf, binary.BigEndian, enc)
	return buf.Bytes()
}

type binaryHead struct {
	Version            uint32
	FontRevision       uint32
	CheckSumAdjustment uint32
	MagicNumber        uint32
	Flags              uint16
	UnitsPerEm         uint16
	Created            int64
	Modified           int64

	XMin int16
	YMin int16
	XMax int16
	YMax int16

	MacStyle uint16

	LowestRecPPEM     uint16
	FontDirectionHint int16

	IndexToLocFormat int16
	GlyphDataFormat  int16
}
