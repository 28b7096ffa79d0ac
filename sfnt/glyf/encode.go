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

package glyf

import "seehuhn.de/go/postscript/funit"

// NewSimple builds a simple glyph from the given contours.  Empty contours
// are discarded.  The result is nil if there are no points left.
func NewSimple(info *GlyphInfo) *Glyph {
	var pts []Point
	var endPts []uint16
	for _, cc := range info.Contours {
		if len(cc) == 0 {
			continue
		}
		pts = append(pts, cc...)
		endPts = append(endPts, uint16(len(pts)-1))
	}
	if len(pts) == 0 {
		return nil
	}

	bbox := funit.Rect16{
		LLx: pts[0].X,
		LLy: pts[0].Y,
		URx: pts[0].X,
		URy: pts[0].Y,
	}
	for _, p := range pts[1:] {
		if p.X < bbox.LLx {
			bbox.LLx = p.X
		}
		if p.Y < bbox.LLy {
			bbox.LLy = p.Y
		}
		if p.X > bbox.URx {
			bbox.URx = p.X
		}
		if p.Y > bbox.URy {
			bbox.URy = p.Y
		}
	}

	// encode the point coordinates as deltas
	flags := make([]byte, len(pts))
	var xData, yData []byte
	var prev Point
	for i, p := range pts {
		var f byte
		if p.OnCurve {
			f |= flagOnCurve
		}

		dx := int(p.X) - int(prev.X)
		switch {
		case dx == 0:
			f |= flagXSamePositive
		case dx > 0 && dx <= 255:
			f |= flagXShort | flagXSamePositive
			xData = append(xData, byte(dx))
		case dx < 0 && dx >= -255:
			f |= flagXShort
			xData = append(xData, byte(-dx))
		default:
			xData = append(xData, byte(dx>>8), byte(dx))
		}

		dy := int(p.Y) - int(prev.Y)
		switch {
		case dy == 0:
			f |= flagYSamePositive
		case dy > 0 && dy <= 255:
			f |= flagYShort | flagYSamePositive
			yData = append(yData, byte(dy))
		case dy < 0 && dy >= -255:
			f |= flagYShort
			yData = append(yData, byte(-dy))
		default:
			yData = append(yData, byte(dy>>8), byte(dy))
		}

		flags[i] = f
		prev = p
	}

	// compress runs of equal flag bytes
	var fData []byte
	for i := 0; i < len(flags); {
		f := flags[i]
		j := i + 1
		for j < len(flags) && flags[j] == f && j-i < 256 {
			j++
		}
		if j-i >= 3 {
			fData = append(fData, f|flagRepeat, byte(j-i-1))
		} else {
			for k := i; k < j; k++ {
				fData = append(fData, f)
			}
		}
		i = j
	}

	instrLen := len(info.Instructions)
	tail := make([]byte, 0,
		2*len(endPts)+2+instrLen+len(fData)+len(xData)+len(yData))
	for _, e := range endPts {
		tail = append(tail, byte(e>>8), byte(e))
	}
	tail = append(tail, byte(instrLen>>8), byte(instrLen))
	tail = append(tail, info.Instructions...)
	tail = append(tail, fData...)
	tail = append(tail, xData...)
	tail = append(tail, yData...)

	return &Glyph{
		Rect16: bbox,
		Data: SimpleGlyph{
			NumContours: int16(len(endPts)),
			tail:        tail,
		},
	}
}
