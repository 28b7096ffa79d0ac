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

package hmtx

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/outlines/sfnt"
	"seehuhn.de/go/outlines/sfnt/maxp"
)

func TestRoundTrip(t *testing.T) {
	font, err := sfnt.Read(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatal(err)
	}
	hheaData := font.Table("hhea")
	hmtxData := font.Table("hmtx")
	if hheaData == nil || hmtxData == nil {
		t.Fatal("metrics tables missing")
	}

	info, err := Decode(hheaData, hmtxData)
	if err != nil {
		t.Fatal(err)
	}

	maxpInfo, err := maxp.Read(font.Table("maxp"))
	if err != nil {
		t.Fatal(err)
	}
	if len(info.Widths) != maxpInfo.NumGlyphs {
		t.Errorf("got %d widths for %d glyphs",
			len(info.Widths), maxpInfo.NumGlyphs)
	}
	if len(info.LSBs) != len(info.Widths) {
		t.Errorf("got %d left side bearings for %d widths",
			len(info.LSBs), len(info.Widths))
	}

	hheaOut, hmtxOut := info.Encode(nil)
	if d := cmp.Diff(hheaData, hheaOut); d != "" {
		t.Errorf("hhea table differs (-orig +encoded):\n%s", d)
	}
	if d := cmp.Diff(hmtxData, hmtxOut); d != "" {
		t.Errorf("hmtx table differs (-orig +encoded):\n%s", d)
	}
}

func TestDecodeInvalid(t *testing.T) {
	hhea := make([]byte, hheaLength)
	hhea[1] = 1 // version 0x00010000
	hhea[35] = 2

	if _, err := Decode(hhea[:10], nil); err == nil {
		t.Error("short hhea not detected")
	}
	if _, err := Decode(hhea, []byte{0, 100, 0, 1, 0}); err == nil {
		t.Error("truncated hmtx not detected")
	}

	bad := make([]byte, hheaLength)
	if _, err := Decode(bad, nil); err == nil {
		t.Error("bad hhea version not detected")
	}
}
