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

package head

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/outlines/sfnt"
)

func TestRoundTrip(t *testing.T) {
	font, err := sfnt.Read(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatal(err)
	}
	headData := font.Table("head")
	if headData == nil {
		t.Fatal("no head table")
	}

	info, err := Read(headData)
	if err != nil {
		t.Fatal(err)
	}
	if info.UnitsPerEm != 2048 {
		t.Errorf("wrong unitsPerEm %d", info.UnitsPerEm)
	}
	if info.IndexToLocFormat != 0 && info.IndexToLocFormat != 1 {
		t.Errorf("wrong indexToLocFormat %d", info.IndexToLocFormat)
	}

	out := info.Encode()
	if d := cmp.Diff(headData[:headLength], out); d != "" {
		t.Errorf("head table differs (-orig +encoded):\n%s", d)
	}

	info2, err := Read(out)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(info, info2); d != "" {
		t.Error(d)
	}
}

func TestReadInvalid(t *testing.T) {
	info := &Info{UnitsPerEm: 1000}
	data := info.Encode()

	broken := make([]byte, len(data))

	copy(broken, data)
	broken[0] = 99 // version
	if _, err := Read(broken); err == nil {
		t.Error("bad version not detected")
	}

	copy(broken, data)
	broken[12] ^= 0xFF // magic number
	if _, err := Read(broken); err == nil {
		t.Error("bad magic number not detected")
	}

	if _, err := Read(data[:20]); err == nil {
		t.Error("truncated table not detected")
	}
}
