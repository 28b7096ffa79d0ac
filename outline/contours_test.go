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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/outlines/sfnt/glyf"
)

func TestContoursRoundTrip(t *testing.T) {
	cases := [][]glyf.Contour{
		{ // plain polygon
			{
				{X: 0, Y: 0, OnCurve: true},
				{X: 100, Y: 0, OnCurve: true},
				{X: 100, Y: 100, OnCurve: true},
				{X: 0, Y: 100, OnCurve: true},
			},
		},
		{ // single off-curve point
			{
				{X: 0, Y: 0, OnCurve: true},
				{X: 100, Y: 0, OnCurve: false},
				{X: 100, Y: 100, OnCurve: true},
			},
		},
		{ // consecutive off-curve points with an implied midpoint
			{
				{X: 0, Y: 0, OnCurve: true},
				{X: 100, Y: 0, OnCurve: false},
				{X: 100, Y: 100, OnCurve: false},
				{X: 0, Y: 100, OnCurve: true},
			},
		},
		{ // no on-curve point at all
			{
				{X: 0, Y: 0, OnCurve: false},
				{X: 100, Y: 0, OnCurve: false},
				{X: 100, Y: 100, OnCurve: false},
				{X: 0, Y: 100, OnCurve: false},
			},
		},
		{ // two contours
			{
				{X: 0, Y: 0, OnCurve: true},
				{X: 100, Y: 0, OnCurve: true},
				{X: 100, Y: 100, OnCurve: true},
			},
			{
				{X: 10, Y: 10, OnCurve: true},
				{X: 20, Y: 10, OnCurve: false},
				{X: 20, Y: 20, OnCurve: true},
			},
		},
	}

	for i, cc := range cases {
		p := FromContours(cc)
		out := p.Contours()
		if d := cmp.Diff(cc, out); d != "" {
			t.Errorf("case %d: contours differ (-orig +converted):\n%s", i, d)
		}
	}
}

func TestFromContoursSegments(t *testing.T) {
	cc := []glyf.Contour{
		{
			{X: 0, Y: 0, OnCurve: true},
			{X: 100, Y: 0, OnCurve: false},
			{X: 100, Y: 100, OnCurve: false},
			{X: 0, Y: 100, OnCurve: true},
		},
	}
	p := FromContours(cc)
	if len(p) != 1 {
		t.Fatalf("got %d contours, want 1", len(p))
	}
	c := p[0]
	if len(c) != 3 {
		t.Fatalf("got %d segments, want 3", len(c))
	}

	// the two off-curve points are joined by an implied on-curve point
	if !c[0].IsQuad || !c[1].IsQuad {
		t.Error("missing quadratic segments")
	}
	mid := c[0].End
	if mid.X != 100 || mid.Y != 50 {
		t.Errorf("wrong implied midpoint %v", mid)
	}
	if c[2].IsQuad {
		t.Error("closing segment should be a line")
	}
	if c[2].End != c[0].Start {
		t.Error("contour not closed")
	}
}

func TestFromContoursDegenerate(t *testing.T) {
	cc := []glyf.Contour{
		{}, // empty
		{ // single point
			{X: 10, Y: 10, OnCurve: true},
		},
	}
	if p := FromContours(cc); len(p) != 0 {
		t.Errorf("degenerate contours not dropped: %v", p)
	}
}
