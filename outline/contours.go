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

package outline

import (
	"math"

	"honnef.co/go/curve"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/outlines/sfnt/glyf"
)

// FromContours converts decoded glyph contours into a Path.  On-curve
// points implied between two consecutive off-curve points are inserted.
func FromContours(cc []glyf.Contour) Path {
	var res Path
	for _, c := range cc {
		if len(c) < 2 {
			continue
		}

		// rotate the contour so that it starts with an on-curve point
		var start curve.Point
		first := -1
		for i, p := range c {
			if p.OnCurve {
				first = i
				break
			}
		}
		if first >= 0 {
			start = pt(c[first])
		} else {
			// no on-curve point at all, start at an implied midpoint
			start = midpoint(pt(c[len(c)-1]), pt(c[0]))
			first = len(c) - 1
		}

		var contour Contour
		cur := start
		var ctrl *curve.Point
		for i := 0; i < len(c); i++ {
			p := c[(first+1+i)%len(c)]
			q := pt(p)
			if p.OnCurve {
				if ctrl != nil {
					contour = append(contour, Quad(cur, *ctrl, q))
					ctrl = nil
				} else if q != cur {
					contour = append(contour, Line(cur, q))
				}
				cur = q
			} else {
				if ctrl != nil {
					mid := midpoint(*ctrl, q)
					contour = append(contour, Quad(cur, *ctrl, mid))
					cur = mid
				}
				ctrl = &q
			}
		}
		// close the contour
		if ctrl != nil {
			contour = append(contour, Quad(cur, *ctrl, start))
		} else if cur != start {
			contour = append(contour, Line(cur, start))
		}

		if len(contour) >= 2 {
			res = append(res, contour)
		}
	}
	return res
}

// Contours converts the path back into glyph contours, rounding all
// coordinates to integer font units.  On-curve points which lie exactly
// between two off-curve points are dropped again.
func (p Path) Contours() []glyf.Contour {
	var res []glyf.Contour
	for _, c := range p {
		var pts []glyf.Point
		for _, s := range c {
			on := roundPt(s.Start, true)
			if n := len(pts); n == 0 || pts[n-1] != on {
				pts = append(pts, on)
			}
			if s.IsQuad {
				off := roundPt(s.Ctrl, false)
				if n := len(pts); pts[n-1].X != off.X || pts[n-1].Y != off.Y {
					pts = append(pts, off)
				}
			}
		}
		if len(pts) >= 2 {
			first := pts[0]
			if last := pts[len(pts)-1]; last.OnCurve && last.X == first.X && last.Y == first.Y {
				pts = pts[:len(pts)-1]
			}
		}
		if len(pts) < 3 {
			continue
		}

		res = append(res, dropImpliedMidpoints(pts))
	}
	return res
}

func dropImpliedMidpoints(pts []glyf.Point) glyf.Contour {
	n := len(pts)
	keep := make([]bool, n)
	kept := 0
	for i, p := range pts {
		keep[i] = true
		if !p.OnCurve {
			kept++
			continue
		}
		prev := pts[(i+n-1)%n]
		next := pts[(i+1)%n]
		if !prev.OnCurve && !next.OnCurve &&
			2*p.X == prev.X+next.X && 2*p.Y == prev.Y+next.Y {
			keep[i] = false
		} else {
			kept++
		}
	}

	out := make(glyf.Contour, 0, kept)
	for i, p := range pts {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out
}

func pt(p glyf.Point) curve.Point {
	return curve.Point{X: float64(p.X), Y: float64(p.Y)}
}

func midpoint(a, b curve.Point) curve.Point {
	return curve.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func roundPt(p curve.Point, onCurve bool) glyf.Point {
	return glyf.Point{
		X:       roundCoord(p.X),
		Y:       roundCoord(p.Y),
		OnCurve: onCurve,
	}
}

func roundCoord(v float64) funit.Int16 {
	x := math.Round(v)
	if x < -32768 {
		x = -32768
	} else if x > 32767 {
		x = 32767
	}
	return funit.Int16(x)
}
