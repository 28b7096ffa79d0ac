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

// Package outline implements boolean union of TrueType glyph outlines.
//
// Outlines are closed contours made of line segments and quadratic Bézier
// curves, filled using the nonzero winding rule.  Contours follow the
// TrueType convention: with the y axis pointing up, the filled region lies
// to the right of the direction of travel.
package outline

import "honnef.co/go/curve"

// A Segment is one piece of a closed contour, either a straight line from
// Start to End or a quadratic Bézier with control point Ctrl.
type Segment struct {
	Start, Ctrl, End curve.Point
	IsQuad           bool
}

// A Contour is a closed sequence of segments, each starting where the
// previous one ends.  The last segment ends at the start of the first.
type Contour []Segment

// A Path is a set of closed contours.
type Path []Contour

// Line returns a straight line segment.
func Line(p0, p1 curve.Point) Segment {
	return Segment{Start: p0, End: p1}
}

// Quad returns a quadratic Bézier segment.
func Quad(p0, p1, p2 curve.Point) Segment {
	return Segment{Start: p0, Ctrl: p1, End: p2, IsQuad: true}
}

// point returns the point at parameter t.
func (s Segment) point(t float64) curve.Point {
	if s.IsQuad {
		return curve.QuadBez{P0: s.Start, P1: s.Ctrl, P2: s.End}.Eval(t)
	}
	return curve.Line{P0: s.Start, P1: s.End}.Eval(t)
}

// sub returns the part of the segment between parameters t0 and t1.
func (s Segment) sub(t0, t1 float64) Segment {
	if !s.IsQuad {
		return Line(s.point(t0), s.point(t1))
	}
	// control point of the sub-curve, from the blossom of the quadratic
	u, v := t0, t1
	ctrl := curve.Point{
		X: (1-u)*(1-v)*s.Start.X + (u+v-2*u*v)*s.Ctrl.X + u*v*s.End.X,
		Y: (1-u)*(1-v)*s.Start.Y + (u+v-2*u*v)*s.Ctrl.Y + u*v*s.End.Y,
	}
	return Quad(s.point(t0), ctrl, s.point(t1))
}

// reverse returns the segment with the direction of travel flipped.
func (s Segment) reverse() Segment {
	return Segment{Start: s.End, Ctrl: s.Ctrl, End: s.Start, IsQuad: s.IsQuad}
}

// bounds returns a bounding box of the segment, computed from the control
// polygon.
func (s Segment) bounds() (xMin, yMin, xMax, yMax float64) {
	xMin, xMax = minMax(s.Start.X, s.End.X)
	yMin, yMax = minMax(s.Start.Y, s.End.Y)
	if s.IsQuad {
		if s.Ctrl.X < xMin {
			xMin = s.Ctrl.X
		} else if s.Ctrl.X > xMax {
			xMax = s.Ctrl.X
		}
		if s.Ctrl.Y < yMin {
			yMin = s.Ctrl.Y
		} else if s.Ctrl.Y > yMax {
			yMax = s.Ctrl.Y
		}
	}
	return xMin, yMin, xMax, yMax
}

func minMax(a, b float64) (float64, float64) {
	if a <= b {
		return a, b
	}
	return b, a
}

// BezPath converts the path into a curve.BezPath.
func (p Path) BezPath() curve.BezPath {
	var bp curve.BezPath
	for _, c := range p {
		if len(c) == 0 {
			continue
		}
		bp = append(bp, curve.MoveTo(c[0].Start))
		for _, s := range c {
			if s.IsQuad {
				bp = append(bp, curve.QuadTo(s.Ctrl, s.End))
			} else {
				bp = append(bp, curve.LineTo(s.End))
			}
		}
		bp = append(bp, curve.ClosePath())
	}
	return bp
}
