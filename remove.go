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

// Package outlines removes overlapping contours from the glyph outlines of
// TrueType fonts.
//
// Each glyph outline is replaced by the boundary of the region it fills
// under the nonzero winding rule.  Glyphs whose outlines do not overlap are
// left untouched, and fonts without any overlaps are not modified at all.
package outlines

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/outlines/outline"
	"seehuhn.de/go/outlines/sfnt"
	"seehuhn.de/go/outlines/sfnt/glyf"
	"seehuhn.de/go/outlines/sfnt/head"
	"seehuhn.de/go/outlines/sfnt/hmtx"
	"seehuhn.de/go/outlines/sfnt/maxp"
)

const maxCompositeDepth = 8

// maxSimplifyRounds bounds the number of simplification passes per glyph.
const maxSimplifyRounds = 8

// RemoveOverlaps rewrites the glyph outlines of f so that no contours
// overlap.  Composite glyphs with overlapping components are decomposed
// into simple glyphs.  All tables which do not depend on the outlines are
// left byte for byte unchanged.
func RemoveOverlaps(f *sfnt.Font) error {
	if f.Has("CFF ") {
		return &sfnt.NotSupportedError{
			SubSystem: "outlines",
			Feature:   "CFF-based fonts",
		}
	}
	for _, name := range []string{"glyf", "loca", "head", "hhea", "hmtx", "maxp"} {
		if !f.Has(name) {
			return &sfnt.InvalidFontError{
				SubSystem: "outlines",
				Reason:    fmt.Sprintf("missing %q table", name),
			}
		}
	}

	headInfo, err := head.Read(f.Table("head"))
	if err != nil {
		return err
	}
	maxpInfo, err := maxp.Read(f.Table("maxp"))
	if err != nil {
		return err
	}
	hmtxInfo, err := hmtx.Decode(f.Table("hhea"), f.Table("hmtx"))
	if err != nil {
		return err
	}
	glyphs, err := glyf.Decode(&glyf.Encoded{
		GlyfData:   f.Table("glyf"),
		LocaData:   f.Table("loca"),
		LocaFormat: headInfo.IndexToLocFormat,
	})
	if err != nil {
		return err
	}

	newGlyphs := make(glyf.Glyphs, len(glyphs))
	changedGid := make([]bool, len(glyphs))
	numChanged := 0
	for gid := range glyphs {
		g, changed, err := simplifyGlyph(glyphs, sfnt.GlyphID(gid))
		if err != nil {
			return fmt.Errorf("glyph %d: %w", gid, err)
		}
		newGlyphs[gid] = g
		if changed {
			changedGid[gid] = true
			numChanged++
		}
	}
	if numChanged == 0 {
		return nil
	}

	enc := newGlyphs.Encode()
	f.SetTable("glyf", enc.GlyfData)
	f.SetTable("loca", enc.LocaData)

	// the font bounding box and the loca format live in the head table
	var bbox funit.Rect16
	first := true
	for _, g := range newGlyphs {
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
	headInfo.FontBBox = bbox
	headInfo.IndexToLocFormat = enc.LocaFormat
	f.SetTable("head", headInfo.Encode())

	// left side bearings of rewritten glyphs follow the new outlines
	var extents []funit.Rect16
	if len(hmtxInfo.Widths) == len(newGlyphs) {
		extents = make([]funit.Rect16, len(newGlyphs))
		for gid, g := range newGlyphs {
			if g == nil {
				continue
			}
			extents[gid] = g.Rect16
			if changedGid[gid] {
				hmtxInfo.LSBs[gid] = int16(g.LLx)
			}
		}
	}
	hheaData, hmtxData := hmtxInfo.Encode(extents)
	f.SetTable("hhea", hheaData)
	f.SetTable("hmtx", hmtxData)

	// per-glyph maxima for the re-encoded simple glyphs
	if maxpInfo.IsTTF() {
		var maxPoints, maxContours int
		for _, g := range newGlyphs {
			if g == nil {
				continue
			}
			d, ok := g.Data.(glyf.SimpleGlyph)
			if !ok {
				continue
			}
			info, err := d.Decode()
			if err != nil {
				return err
			}
			numPoints := 0
			for _, c := range info.Contours {
				numPoints += len(c)
			}
			if numPoints > maxPoints {
				maxPoints = numPoints
			}
			if len(info.Contours) > maxContours {
				maxContours = len(info.Contours)
			}
		}
		maxpInfo.MaxPoints = uint16(maxPoints)
		maxpInfo.MaxContours = uint16(maxContours)
		f.SetTable("maxp", maxpInfo.Encode())
	}

	return nil
}

// simplifyGlyph returns the glyph with overlaps removed.  The second return
// value reports whether the glyph was modified; unmodified glyphs are
// returned as is, so that their binary representation survives unchanged.
func simplifyGlyph(gg glyf.Glyphs, gid sfnt.GlyphID) (*glyf.Glyph, bool, error) {
	g := gg[gid]
	if g == nil {
		return nil, false, nil
	}

	switch d := g.Data.(type) {
	case glyf.SimpleGlyph:
		info, err := d.Decode()
		if err != nil {
			return nil, false, err
		}
		cc, changed := simplifyContours(info.Contours)
		if !changed {
			return g, false, nil
		}
		return glyf.NewSimple(&glyf.GlyphInfo{Contours: cc}), true, nil

	case glyf.CompositeGlyph:
		cc, err := flattenGlyph(gg, gid, matrix.Matrix{1, 0, 0, 1, 0, 0}, 0)
		if err != nil {
			var notSupported *sfnt.NotSupportedError
			if errors.As(err, &notSupported) {
				// leave exotic composites untouched
				return g, false, nil
			}
			return nil, false, err
		}
		cc, changed := simplifyContours(cc)
		if !changed {
			return g, false, nil
		}
		return glyf.NewSimple(&glyf.GlyphInfo{Contours: cc}), true, nil

	default:
		panic("unexpected glyph type")
	}
}

// simplifyContours removes overlaps from the contours of one glyph.
// Rounding the result back to integer font units can introduce new
// crossings between nearly parallel segments, so simplification is repeated
// until the rounded contours are a fixed point.
func simplifyContours(cc []glyf.Contour) ([]glyf.Contour, bool) {
	changed := false
	for i := 0; i < maxSimplifyRounds; i++ {
		p, c := outline.Simplify(outline.FromContours(cc))
		if !c {
			break
		}
		cc = p.Contours()
		changed = true
	}
	return cc, changed
}

// flattenGlyph resolves a glyph into plain contours, recursively applying
// the placement transforms of composite components.
func flattenGlyph(gg glyf.Glyphs, gid sfnt.GlyphID, m matrix.Matrix, depth int) ([]glyf.Contour, error) {
	if depth > maxCompositeDepth {
		return nil, &sfnt.InvalidFontError{
			SubSystem: "outlines",
			Reason:    "composite glyph nesting too deep",
		}
	}
	if int(gid) >= len(gg) {
		return nil, &sfnt.InvalidFontError{
			SubSystem: "outlines",
			Reason:    fmt.Sprintf("invalid glyph index %d", gid),
		}
	}
	g := gg[gid]
	if g == nil {
		return nil, nil
	}

	switch d := g.Data.(type) {
	case glyf.SimpleGlyph:
		info, err := d.Decode()
		if err != nil {
			return nil, err
		}
		res := make([]glyf.Contour, 0, len(info.Contours))
		for _, c := range info.Contours {
			c2 := make(glyf.Contour, len(c))
			for i, p := range c {
				x := m[0]*float64(p.X) + m[2]*float64(p.Y) + m[4]
				y := m[1]*float64(p.X) + m[3]*float64(p.Y) + m[5]
				c2[i] = glyf.Point{
					X:       clampRound(x),
					Y:       clampRound(y),
					OnCurve: p.OnCurve,
				}
			}
			res = append(res, c2)
		}
		return res, nil

	case glyf.CompositeGlyph:
		var res []glyf.Contour
		for _, comp := range d.Components {
			cm, err := comp.Transform()
			if err != nil {
				return nil, err
			}
			sub, err := flattenGlyph(gg, comp.GlyphIndex, cm.Mul(m), depth+1)
			if err != nil {
				return nil, err
			}
			res = append(res, sub...)
		}
		return res, nil

	default:
		panic("unexpected glyph type")
	}
}

func clampRound(v float64) funit.Int16 {
	x := math.Round(v)
	if x < -32768 {
		x = -32768
	} else if x > 32767 {
		x = 32767
	}
	return funit.Int16(x)
}
