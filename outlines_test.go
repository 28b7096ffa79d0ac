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

package outlines

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/postscript/funit"
	extsfnt "seehuhn.de/go/sfnt"

	"seehuhn.de/go/outlines/outline"
	"seehuhn.de/go/outlines/sfnt"
	"seehuhn.de/go/outlines/sfnt/glyf"
	"seehuhn.de/go/outlines/sfnt/head"
	"seehuhn.de/go/outlines/sfnt/hmtx"
	"seehuhn.de/go/outlines/sfnt/maxp"
)

// makeFont assembles a minimal TrueType font around the given glyphs.
func makeFont(gg glyf.Glyphs) *sfnt.Font {
	enc := gg.Encode()

	var bbox funit.Rect16
	first := true
	for _, g := range gg {
		if g == nil || g.Rect16.IsZero() {
			continue
		}
		if first {
			bbox = g.Rect16
			first = false
		} else {
			bbox.Extend(g.Rect16)
		}
	}

	headInfo := &head.Info{
		UnitsPerEm:       1000,
		FontBBox:         bbox,
		LowestRecPPEM:    8,
		IndexToLocFormat: enc.LocaFormat,
	}

	n := len(gg)
	maxpData := make([]byte, 32)
	maxpData[1] = 1 // maxp version 1.0
	binary.BigEndian.PutUint16(maxpData[4:6], uint16(n))
	hheaData := make([]byte, 36)
	hheaData[1] = 1 // hhea version 1.0
	binary.BigEndian.PutUint16(hheaData[34:36], uint16(n))
	hmtxData := make([]byte, 4*n)
	for i := 0; i < n; i++ {
		binary.BigEndian.PutUint16(hmtxData[4*i:], 500)
	}

	f := &sfnt.Font{ScalerType: sfnt.ScalerTypeTrueType}
	f.SetTable("glyf", enc.GlyfData)
	f.SetTable("loca", enc.LocaData)
	f.SetTable("head", headInfo.Encode())
	f.SetTable("maxp", maxpData)
	f.SetTable("hhea", hheaData)
	f.SetTable("hmtx", hmtxData)
	return f
}

// squareGlyph returns a glyph filled inside the given rectangle.
func squareGlyph(x0, y0, x1, y1 funit.Int16) *glyf.Glyph {
	return glyf.NewSimple(&glyf.GlyphInfo{
		Contours: []glyf.Contour{squareContour(x0, y0, x1, y1)},
	})
}

func squareContour(x0, y0, x1, y1 funit.Int16) glyf.Contour {
	return glyf.Contour{
		{X: x0, Y: y0, OnCurve: true},
		{X: x0, Y: y1, OnCurve: true},
		{X: x1, Y: y1, OnCurve: true},
		{X: x1, Y: y0, OnCurve: true},
	}
}

func copyTables(f *sfnt.Font) map[string][]byte {
	res := make(map[string][]byte)
	for _, name := range f.TableNames() {
		data := f.Table(name)
		res[name] = append([]byte{}, data...)
	}
	return res
}

func TestNoOverlaps(t *testing.T) {
	gg := glyf.Glyphs{
		nil,
		squareGlyph(0, 0, 700, 700),
		glyf.NewSimple(&glyf.GlyphInfo{ // two disjoint squares
			Contours: []glyf.Contour{
				squareContour(0, 0, 300, 300),
				squareContour(400, 400, 700, 700),
			},
		}),
	}
	f := makeFont(gg)
	before := copyTables(f)

	err := RemoveOverlaps(f)
	if err != nil {
		t.Fatal(err)
	}

	for name, data := range before {
		if d := cmp.Diff(data, f.Table(name)); d != "" {
			t.Errorf("table %q modified (-orig +new):\n%s", name, d)
		}
	}
}

func TestOverlapsRemoved(t *testing.T) {
	gg := glyf.Glyphs{
		nil,
		glyf.NewSimple(&glyf.GlyphInfo{ // two overlapping squares
			Contours: []glyf.Contour{
				squareContour(100, 100, 400, 400),
				squareContour(250, 250, 600, 600),
			},
		}),
		squareGlyph(0, 0, 700, 700),
	}
	f := makeFont(gg)

	err := RemoveOverlaps(f)
	if err != nil {
		t.Fatal(err)
	}

	headInfo, err := head.Read(f.Table("head"))
	if err != nil {
		t.Fatal(err)
	}
	gg2, err := glyf.Decode(&glyf.Encoded{
		GlyfData:   f.Table("glyf"),
		LocaData:   f.Table("loca"),
		LocaFormat: headInfo.IndexToLocFormat,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(gg2) != 3 {
		t.Fatalf("got %d glyphs, want 3", len(gg2))
	}

	// the overlapping squares merge into a single contour
	info, err := gg2[1].Data.(glyf.SimpleGlyph).Decode()
	if err != nil {
		t.Fatal(err)
	}
	if len(info.Contours) != 1 {
		t.Fatalf("got %d contours, want 1", len(info.Contours))
	}
	if len(info.Contours[0]) != 8 {
		t.Errorf("got %d points, want 8", len(info.Contours[0]))
	}
	want := funit.Rect16{LLx: 100, LLy: 100, URx: 600, URy: 600}
	if gg2[1].Rect16 != want {
		t.Errorf("wrong glyph bounding box %v", gg2[1].Rect16)
	}

	// the plain square is not modified
	info2, err := gg2[2].Data.(glyf.SimpleGlyph).Decode()
	if err != nil {
		t.Fatal(err)
	}
	wantSquare := []glyf.Contour{squareContour(0, 0, 700, 700)}
	if d := cmp.Diff(wantSquare, info2.Contours); d != "" {
		t.Errorf("square glyph modified (-orig +new):\n%s", d)
	}

	// summary tables follow the new outlines
	wantBBox := funit.Rect16{LLx: 0, LLy: 0, URx: 700, URy: 700}
	if headInfo.FontBBox != wantBBox {
		t.Errorf("wrong font bounding box %v", headInfo.FontBBox)
	}
	hmtxInfo, err := hmtx.Decode(f.Table("hhea"), f.Table("hmtx"))
	if err != nil {
		t.Fatal(err)
	}
	if hmtxInfo.LSBs[1] != 100 {
		t.Errorf("wrong left side bearing %d", hmtxInfo.LSBs[1])
	}
	maxpInfo, err := maxp.Read(f.Table("maxp"))
	if err != nil {
		t.Fatal(err)
	}
	if maxpInfo.MaxPoints != 8 {
		t.Errorf("wrong maxPoints %d", maxpInfo.MaxPoints)
	}
	if maxpInfo.MaxContours != 1 {
		t.Errorf("wrong maxContours %d", maxpInfo.MaxContours)
	}
}

func TestIdempotent(t *testing.T) {
	gg := glyf.Glyphs{
		nil,
		glyf.NewSimple(&glyf.GlyphInfo{
			Contours: []glyf.Contour{
				squareContour(100, 100, 400, 400),
				squareContour(250, 250, 600, 600),
			},
		}),
	}
	f := makeFont(gg)

	err := RemoveOverlaps(f)
	if err != nil {
		t.Fatal(err)
	}
	after := copyTables(f)

	err = RemoveOverlaps(f)
	if err != nil {
		t.Fatal(err)
	}
	for name, data := range after {
		if d := cmp.Diff(data, f.Table(name)); d != "" {
			t.Errorf("table %q not stable (-first +second):\n%s", name, d)
		}
	}
}

func TestCompositeGlyphs(t *testing.T) {
	// two copies of a square, overlapping each other
	composite := &glyf.Glyph{
		Rect16: funit.Rect16{LLx: 0, LLy: 0, URx: 450, URy: 450},
		Data: glyf.CompositeGlyph{
			Components: []glyf.GlyphComponent{
				{Flags: 0x0023, GlyphIndex: 1, Args: []byte{0, 0, 0, 0}},
				{Flags: 0x0003, GlyphIndex: 1, Args: []byte{0, 150, 0, 150}},
			},
		},
	}
	gg := glyf.Glyphs{
		nil,
		squareGlyph(0, 0, 300, 300),
		composite,
	}
	f := makeFont(gg)

	err := RemoveOverlaps(f)
	if err != nil {
		t.Fatal(err)
	}

	headInfo, err := head.Read(f.Table("head"))
	if err != nil {
		t.Fatal(err)
	}
	gg2, err := glyf.Decode(&glyf.Encoded{
		GlyfData:   f.Table("glyf"),
		LocaData:   f.Table("loca"),
		LocaFormat: headInfo.IndexToLocFormat,
	})
	if err != nil {
		t.Fatal(err)
	}

	simple, ok := gg2[2].Data.(glyf.SimpleGlyph)
	if !ok {
		t.Fatal("composite glyph not decomposed")
	}
	info, err := simple.Decode()
	if err != nil {
		t.Fatal(err)
	}
	if len(info.Contours) != 1 {
		t.Fatalf("got %d contours, want 1", len(info.Contours))
	}
	want := funit.Rect16{LLx: 0, LLy: 0, URx: 450, URy: 450}
	if gg2[2].Rect16 != want {
		t.Errorf("wrong glyph bounding box %v", gg2[2].Rect16)
	}

	// the component glyph itself has no overlaps and stays simple
	info1, err := gg2[1].Data.(glyf.SimpleGlyph).Decode()
	if err != nil {
		t.Fatal(err)
	}
	wantSquare := []glyf.Contour{squareContour(0, 0, 300, 300)}
	if d := cmp.Diff(wantSquare, info1.Contours); d != "" {
		t.Errorf("component glyph modified (-orig +new):\n%s", d)
	}
}

func TestUnsupportedFonts(t *testing.T) {
	f := &sfnt.Font{ScalerType: sfnt.ScalerTypeCFF}
	f.SetTable("CFF ", []byte{1, 0, 4, 1})
	if err := RemoveOverlaps(f); err == nil {
		t.Error("CFF-based font not rejected")
	}

	f = &sfnt.Font{ScalerType: sfnt.ScalerTypeTrueType}
	f.SetTable("glyf", nil)
	if err := RemoveOverlaps(f); err == nil {
		t.Error("missing tables not detected")
	}
}

// TestNoResidualOverlaps checks that every rewritten glyph is a fixed point
// of the overlap removal.  Rounding the simplified outline to integer font
// units can make nearly parallel segments cross again, so a single
// simplification pass is not enough for some glyphs.
func TestNoResidualOverlaps(t *testing.T) {
	f, err := sfnt.Read(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatal(err)
	}
	err = RemoveOverlaps(f)
	if err != nil {
		t.Fatal(err)
	}

	headInfo, err := head.Read(f.Table("head"))
	if err != nil {
		t.Fatal(err)
	}
	gg, err := glyf.Decode(&glyf.Encoded{
		GlyfData:   f.Table("glyf"),
		LocaData:   f.Table("loca"),
		LocaFormat: headInfo.IndexToLocFormat,
	})
	if err != nil {
		t.Fatal(err)
	}

	for gid, g := range gg {
		if g == nil {
			continue
		}
		d, ok := g.Data.(glyf.SimpleGlyph)
		if !ok {
			continue
		}
		info, err := d.Decode()
		if err != nil {
			t.Fatal(err)
		}
		_, changed := outline.Simplify(outline.FromContours(info.Contours))
		if changed {
			t.Errorf("glyph %d still has overlapping contours", gid)
		}
	}
}

func TestRealFont(t *testing.T) {
	f, err := sfnt.Read(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatal(err)
	}
	maxpInfo, err := maxp.Read(f.Table("maxp"))
	if err != nil {
		t.Fatal(err)
	}

	err = RemoveOverlaps(f)
	if err != nil {
		t.Fatal(err)
	}

	buf1 := &bytes.Buffer{}
	_, err = f.Write(buf1)
	if err != nil {
		t.Fatal(err)
	}

	// the result must still be a valid font
	ttf, err := extsfnt.Read(bytes.NewReader(buf1.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if !ttf.IsGlyf() {
		t.Error("no TrueType outlines in output")
	}
	if ttf.NumGlyphs() != maxpInfo.NumGlyphs {
		t.Errorf("got %d glyphs, want %d", ttf.NumGlyphs(), maxpInfo.NumGlyphs)
	}

	// processing the output again must not change anything
	f2, err := sfnt.Read(bytes.NewReader(buf1.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	err = RemoveOverlaps(f2)
	if err != nil {
		t.Fatal(err)
	}
	buf2 := &bytes.Buffer{}
	_, err = f2.Write(buf2)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf1.Bytes(), buf2.Bytes()) {
		t.Error("removing overlaps is not idempotent")
	}
}
