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
	"fmt"
	"io"
	"os"
	"sort"
)

// Read reads an sfnt font file.  All tables are read into memory, byte for
// byte.
func Read(r io.ReaderAt) (*Font, error) {
	var buf [16]byte
	_, err := r.ReadAt(buf[:6], 0)
	if err != nil {
		return nil, err
	}
	scalerType := uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])
	numTables := int(buf[4])<<8 | int(buf[5])

	if scalerType != ScalerTypeTrueType &&
		scalerType != ScalerTypeCFF &&
		scalerType != ScalerTypeApple {
		return nil, &NotSupportedError{
			SubSystem: "sfnt/header",
			Feature:   fmt.Sprintf("scaler type 0x%08x", scalerType),
		}
	}
	if numTables > 280 {
		// the largest value observed in the wild is around 30
		return nil, &InvalidFontError{
			SubSystem: "sfnt/header",
			Reason:    "too many tables",
		}
	}

	type record struct {
		name   string
		offset uint32
		length uint32
	}
	var records []record
	for i := 0; i < numTables; i++ {
		_, err := r.ReadAt(buf[:], int64(12+i*16))
		if err != nil {
			return nil, err
		}
		name := string(buf[:4])
		if !isASCII(name) {
			return nil, &InvalidFontError{
				SubSystem: "sfnt/header",
				Reason:    fmt.Sprintf("invalid table tag %q", name),
			}
		}
		records = append(records, record{
			name:   name,
			offset: uint32(buf[8])<<24 | uint32(buf[9])<<16 | uint32(buf[10])<<8 | uint32(buf[11]),
			length: uint32(buf[12])<<24 | uint32(buf[13])<<16 | uint32(buf[14])<<8 | uint32(buf[15]),
		})
	}
	if len(records) == 0 {
		return nil, &InvalidFontError{
			SubSystem: "sfnt/header",
			Reason:    "no tables found",
		}
	}

	// perform some sanity checks
	sorted := make([]record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].offset != sorted[j].offset {
			return sorted[i].offset < sorted[j].offset
		}
		return sorted[i].offset+sorted[i].length < sorted[j].offset+sorted[j].length
	})
	if sorted[0].offset < uint32(12+16*numTables) {
		return nil, &InvalidFontError{
			SubSystem: "sfnt/header",
			Reason:    "invalid table offset",
		}
	}
	for i := 1; i < len(sorted); i++ {
		prevEnd := sorted[i-1].offset + sorted[i-1].length
		if prevEnd > sorted[i].offset {
			return nil, &InvalidFontError{
				SubSystem: "sfnt/header",
				Reason:    "overlapping tables",
			}
		}
	}

	f := &Font{
		ScalerType: scalerType,
		tables:     make(map[string][]byte),
	}
	for _, rec := range records {
		data := make([]byte, rec.length)
		n, err := r.ReadAt(data, int64(rec.offset))
		if n < len(data) {
			if err == io.EOF {
				return nil, &InvalidFontError{
					SubSystem: "sfnt/header",
					Reason:    "table extends beyond EOF",
				}
			}
			return nil, err
		}
		f.tables[rec.name] = data
	}

	return f, nil
}

// ReadFile reads an sfnt font from the named file.
func ReadFile(name string) (*Font, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return Read(fd)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
