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
	"sort"

	"honnef.co/go/curve"
)

// sampleDist is the distance, in font design units, at which winding numbers
// are sampled on either side of a segment.
const sampleDist = 0.125

// snapDist is the distance below which two points are considered the same
// when sub-segments are chained back into contours.
const snapDist = 0.5

// Simplify returns the outline of the region filled by p under the nonzero
// winding rule.  Overlapping and degenerate contours are merged, and all
// contours of the result are oriented with the filled region to their
// right.  The second return value reports whether the result differs
// from p; if it is false, p is returned unchanged.
func Simplify(p Path) (Path, bool) {
	var segs []Segment
	for _, c := range p {
		for _, s := range c {
			if segLength(s) < 1e-9 {
				continue
			}
			segs = append(segs, s)
		}
	}
	if len(segs) == 0 {
		return p, false
	}

	changed := false

	// split all segments where they cross each other
	cuts := make([][]float64, len(segs))
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			ta, tb := intersections(segs[i], segs[j])
			for k := range ta {
				if interiorCut(segs[i], ta[k]) {
					cuts[i] = append(cuts[i], ta[k])
				}
				if interiorCut(segs[j], tb[k]) {
					cuts[j] = append(cuts[j], tb[k])
				}
			}
		}
	}
	var pieces []Segment
	for i, s := range segs {
		ts := cuts[i]
		if len(ts) == 0 {
			pieces = append(pieces, s)
			continue
		}
		sort.Float64s(ts)
		prev := 0.0
		for _, t := range ts {
			if t-prev > 1e-9 {
				pieces = append(pieces, s.sub(prev, t))
			}
			prev = t
		}
		if 1-prev > 1e-9 {
			pieces = append(pieces, s.sub(prev, 1))
		}
	}

	// classify each piece by the winding numbers on its two sides
	bp := p.BezPath()
	var kept []Segment
	for _, piece := range pieces {
		dx := piece.End.X - piece.Start.X
		dy := piece.End.Y - piece.Start.Y
		norm := math.Hypot(dx, dy)
		if norm < 1e-9 {
			continue
		}
		// for a quadratic, the tangent at t=1/2 is parallel to the chord
		mid := piece.point(0.5)
		nx, ny := dy/norm, -dx/norm
		right := bp.Winding(curve.Point{X: mid.X + sampleDist*nx, Y: mid.Y + sampleDist*ny})
		left := bp.Winding(curve.Point{X: mid.X - sampleDist*nx, Y: mid.Y - sampleDist*ny})
		switch {
		case right != 0 && left == 0:
			kept = append(kept, piece)
		case left != 0 && right == 0:
			kept = append(kept, piece.reverse())
			changed = true
		default:
			changed = true
		}
	}

	// coincident contours leave duplicate boundary pieces behind
	kept, dropped := dedupeSegments(kept)
	if dropped {
		changed = true
	}

	if !changed {
		return p, false
	}
	return chain(kept), true
}

// interiorCut reports whether the point at parameter t is in the interior
// of the segment.  Cuts at segment joints are no-ops and only add noise.
func interiorCut(s Segment, t float64) bool {
	pt := s.point(t)
	return dist(pt, s.Start) > snapDist && dist(pt, s.End) > snapDist
}

func segLength(s Segment) float64 {
	l := dist(s.Start, s.End)
	if s.IsQuad {
		l = math.Max(l, dist(s.Start, s.Ctrl)+dist(s.Ctrl, s.End))
	}
	return l
}

func dist(a, b curve.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func dedupeSegments(segs []Segment) ([]Segment, bool) {
	type key struct {
		x0, y0, x1, y1, x2, y2 int32
		quad                   bool
	}
	quant := func(v float64) int32 {
		return int32(math.Round(v * 8))
	}
	seen := make(map[key]bool, len(segs))
	out := segs[:0]
	dropped := false
	for _, s := range segs {
		k := key{
			x0: quant(s.Start.X), y0: quant(s.Start.Y),
			x1: quant(s.Ctrl.X), y1: quant(s.Ctrl.Y),
			x2: quant(s.End.X), y2: quant(s.End.Y),
			quad: s.IsQuad,
		}
		if seen[k] {
			dropped = true
			continue
		}
		seen[k] = true
		out = append(out, s)
	}
	return out, dropped
}

// chain connects the kept pieces end to start into closed contours.
func chain(segs []Segment) Path {
	used := make([]bool, len(segs))
	var res Path
	for i := range segs {
		if used[i] {
			continue
		}
		used[i] = true
		contour := Contour{segs[i]}
		start := segs[i].Start
		for {
			cur := contour[len(contour)-1]
			if dist(cur.End, start) <= snapDist {
				contour[len(contour)-1].End = start
				break
			}
			next := pickNext(segs, used, cur)
			if next < 0 {
				// numerical gap; close the contour as well as we can
				contour[len(contour)-1].End = start
				break
			}
			used[next] = true
			s := segs[next]
			s.Start = cur.End
			contour = append(contour, s)
		}
		if len(contour) >= 2 {
			res = append(res, contour)
		}
	}
	return res
}

// pickNext selects the unused piece starting at the end of cur.  Where
// several pieces meet in one point, the one turning most to the left is
// chosen, so that the walk keeps following the outside of the filled
// region.
func pickNext(segs []Segment, used []bool, cur Segment) int {
	inX, inY := outDir(cur)
	best := -1
	bestAngle := 0.0
	for j, s := range segs {
		if used[j] || dist(s.Start, cur.End) > snapDist {
			continue
		}
		ox, oy := inDir(s)
		angle := math.Atan2(inX*oy-inY*ox, inX*ox+inY*oy)
		if best < 0 || angle > bestAngle {
			best = j
			bestAngle = angle
		}
	}
	return best
}

// inDir returns the direction of travel at the start of the segment.
func inDir(s Segment) (float64, float64) {
	p := s.End
	if s.IsQuad && dist(s.Start, s.Ctrl) > 1e-9 {
		p = s.Ctrl
	}
	return p.X - s.Start.X, p.Y - s.Start.Y
}

// outDir returns the direction of travel at the end of the segment.
func outDir(s Segment) (float64, float64) {
	p := s.Start
	if s.IsQuad && dist(s.End, s.Ctrl) > 1e-9 {
		p = s.Ctrl
	}
	return s.End.X - p.X, s.End.Y - p.Y
}
