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
)

// intersectTol is the spatial resolution, in font design units, at which
// curve intersections are located.
const intersectTol = 1.0 / 256

const maxIntersectDepth = 40

// intersections returns the parameter values at which a and b cross, as
// pairs (ta[i], tb[i]).  Crossings at shared endpoints are included; callers
// filter them out.
func intersections(a, b Segment) (ta, tb []float64) {
	if !a.IsQuad && !b.IsQuad {
		t, u, ok := lineLine(a, b)
		if !ok {
			return nil, nil
		}
		return []float64{t}, []float64{u}
	}

	intersectRec(a, b, 0, 1, 0, 1, maxIntersectDepth, &ta, &tb)
	ta, tb = dedupePairs(ta, tb)
	return ta, tb
}

// lineLine computes the crossing of two line segments directly.
func lineLine(a, b Segment) (float64, float64, bool) {
	d1x := a.End.X - a.Start.X
	d1y := a.End.Y - a.Start.Y
	d2x := b.End.X - b.Start.X
	d2y := b.End.Y - b.Start.Y

	den := d1x*d2y - d1y*d2x
	if math.Abs(den) < 1e-12 {
		// parallel or degenerate
		return 0, 0, false
	}

	wx := b.Start.X - a.Start.X
	wy := b.Start.Y - a.Start.Y
	t := (wx*d2y - wy*d2x) / den
	u := (wx*d1y - wy*d1x) / den
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return 0, 0, false
	}
	return t, u, true
}

func intersectRec(a, b Segment, a0, a1, b0, b1 float64, depth int, ta, tb *[]float64) {
	axMin, ayMin, axMax, ayMax := a.bounds()
	bxMin, byMin, bxMax, byMax := b.bounds()
	if axMin > bxMax || bxMin > axMax || ayMin > byMax || byMin > ayMax {
		return
	}

	aSmall := axMax-axMin <= intersectTol && ayMax-ayMin <= intersectTol
	bSmall := bxMax-bxMin <= intersectTol && byMax-byMin <= intersectTol
	if depth <= 0 || (aSmall && bSmall) {
		*ta = append(*ta, (a0+a1)/2)
		*tb = append(*tb, (b0+b1)/2)
		return
	}

	am := (a0 + a1) / 2
	bm := (b0 + b1) / 2
	switch {
	case aSmall:
		intersectRec(a, b.sub(0, 0.5), a0, a1, b0, bm, depth-1, ta, tb)
		intersectRec(a, b.sub(0.5, 1), a0, a1, bm, b1, depth-1, ta, tb)
	case bSmall:
		intersectRec(a.sub(0, 0.5), b, a0, am, b0, b1, depth-1, ta, tb)
		intersectRec(a.sub(0.5, 1), b, am, a1, b0, b1, depth-1, ta, tb)
	default:
		aLo, aHi := a.sub(0, 0.5), a.sub(0.5, 1)
		bLo, bHi := b.sub(0, 0.5), b.sub(0.5, 1)
		intersectRec(aLo, bLo, a0, am, b0, bm, depth-1, ta, tb)
		intersectRec(aLo, bHi, a0, am, bm, b1, depth-1, ta, tb)
		intersectRec(aHi, bLo, am, a1, b0, bm, depth-1, ta, tb)
		intersectRec(aHi, bHi, am, a1, bm, b1, depth-1, ta, tb)
	}
}

// dedupePairs merges clusters of nearby parameter pairs which all describe
// the same crossing.
func dedupePairs(ta, tb []float64) ([]float64, []float64) {
	if len(ta) < 2 {
		return ta, tb
	}

	idx := make([]int, len(ta))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		return ta[idx[i]] < ta[idx[j]]
	})

	const gap = 4e-3
	var outA, outB []float64
	for _, i := range idx {
		n := len(outA)
		if n > 0 && ta[i]-outA[n-1] < gap && math.Abs(tb[i]-outB[n-1]) < gap {
			continue
		}
		outA = append(outA, ta[i])
		outB = append(outB, tb[i])
	}
	return outA, outB
}
