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

// Package sfnt reads and writes sfnt font files at the level of whole
// tables.  Table contents are kept as raw bytes, so that tables which are
// not modified survive a read/write cycle unchanged.
package sfnt

import "sort"

// Scaler types for sfnt font files.
const (
	ScalerTypeTrueType = 0x00010000
	ScalerTypeCFF      = 0x4F54544F
	ScalerTypeApple    = 0x74727565
)

// GlyphID identifies a glyph within a font.
type GlyphID uint16

// Font holds the tables of an sfnt font file.
type Font struct {
	ScalerType uint32
	tables     map[string][]byte
}

// Has reports whether all of the given tables are present.
func (f *Font) Has(names ...string) bool {
	for _, name := range names {
		if _, ok := f.tables[name]; !ok {
			return false
		}
	}
	return true
}

// Table returns the contents of the named table, or nil if the table is not
// present.
func (f *Font) Table(name string) []byte {
	return f.tables[name]
}

// SetTable replaces the contents of the named table.
func (f *Font) SetTable(name string, data []byte) {
	if f.tables == nil {
		f.tables = make(map[string][]byte)
	}
	f.tables[name] = data
}

// TableNames returns the names of all tables in the font, in alphabetical
// order.
func (f *Font) TableNames() []string {
	names := make([]string, 0, len(f.tables))
	for name := range f.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InvalidFontError indicates a malformed font file.
type InvalidFontError struct {
	SubSystem string
	Reason    string
}

func (err *InvalidFontError) Error() string {
	return err.SubSystem + ": invalid font: " + err.Reason
}

// NotSupportedError indicates that a font uses a feature which this
// library does not implement.
type NotSupportedError struct {
	SubSystem string
	Feature   string
}

func (err *NotSupportedError) Error() string {
	return err.SubSystem + ": " + err.Feature + " not supported"
}
