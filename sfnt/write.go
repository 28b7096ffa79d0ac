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

package sfnt

import (
	"bytes"
	"encoding/binary"
	"io"
	"math/bits"
	"os"
	"sort"
)

// Write writes the font as an sfnt file.  Tables are laid out in the order
// recommended by the OpenType specification.  If a "head" table is present,
// its checksum adjustment field is updated in place.
func (f *Font) Write(w io.Writer) (int64, error) {
	numTables := len(f.tables)

	tableNames := f.TableNames()

	// bring the table bodies into the recommended order
	sort.SliceStable(tableNames, func(i, j int) bool {
		iPrio := ttTableOrder[tableNames[i]]
		jPrio := ttTableOrder[tableNames[j]]
		return iPrio > jPrio
	})

	entrySelector := bits.Len(uint(numTables)) - 1
	header := &offsets{
		ScalerType:    f.ScalerType,
		NumTables:     uint16(numTables),
		SearchRange:   1 << (entrySelector + 4),
		EntrySelector: uint16(entrySelector),
		RangeShift:    uint16(16 * (numTables - 1<<entrySelector)),
	}

	// temporarily clear the checksum in the "head" table
	if headData, ok := f.tables["head"]; ok && len(headData) >= 12 {
		binary.BigEndian.PutUint32(headData[8:12], 0)
	}

	var totalSum uint32
	offset := uint32(12 + 16*numTables)
	records := make([]rawRecord, numTables)
	for i, name := range tableNames {
		body := f.tables[name]
		length := uint32(len(body))
		sum := checksum(body)

		records[i].Tag = tag{name[0], name[1], name[2], name[3]}
		records[i].CheckSum = sum
		records[i].Offset = offset
		records[i].Length = length

		totalSum += sum
		offset += 4 * ((length + 3) / 4)
	}
	sort.Slice(records, func(i, j int) bool {
		return bytes.Compare(records[i].Tag[:], records[j].Tag[:]) < 0
	})

	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.BigEndian, header)
	_ = binary.Write(buf, binary.BigEndian, records)
	headerBytes := buf.Bytes()
	totalSum += checksum(headerBytes)

	// set the final checksum in the "head" table
	if headData, ok := f.tables["head"]; ok && len(headData) >= 12 {
		binary.BigEndian.PutUint32(headData[8:12], 0xB1B0AFBA-totalSum)
	}

	var totalSize int64
	n, err := w.Write(headerBytes)
	totalSize += int64(n)
	if err != nil {
		return totalSize, err
	}
	var pad [3]byte
	for _, name := range tableNames {
		body := f.tables[name]
		n, err := w.Write(body)
		totalSize += int64(n)
		if err != nil {
			return totalSize, err
		}
		if k := n % 4; k != 0 {
			l, err := w.Write(pad[:4-k])
			totalSize += int64(l)
			if err != nil {
				return totalSize, err
			}
		}
	}
	return totalSize, nil
}

// WriteFile writes the font to the named file.
func (f *Font) WriteFile(name string) error {
	fd, err := os.Create(name)
	if err != nil {
		return err
	}
	_, err = f.Write(fd)
	if err2 := fd.Close(); err == nil {
		err = err2
	}
	return err
}

// The offsets sub-table forms the first part of the file header.
type offsets struct {
	ScalerType    uint32
	NumTables     uint16
	SearchRange   uint16
	EntrySelector uint16
	RangeShift    uint16
}

type tag [4]byte

// A rawRecord is a table directory entry in the file header.
type rawRecord struct {
	Tag      tag
	CheckSum uint32
	Offset   uint32
	Length   uint32
}

// https://docs.microsoft.com/en-us/typography/opentype/spec/recom#optimized-table-ordering
var ttTableOrder = map[string]int{
	"head": 95,
	"hhea": 90,
	"maxp": 85,
	"OS/2": 80,
	"hmtx": 75,
	"LTSH": 70,
	"VDMX": 65,
	"hdmx": 60,
	"cmap": 55,
	"fpgm": 50,
	"prep": 45,
	"cvt ": 40,
	"loca": 35,
	"glyf": 30,
	"kern": 25,
	"name": 20,
	"post": 15,
	"gasp": 10,
	"DSIG": 5,
}
