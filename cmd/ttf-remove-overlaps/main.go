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

// Ttf-remove-overlaps removes overlapping contours from the glyph outlines
// of a TrueType font.
//
// Usage:
//
//	ttf-remove-overlaps input.ttf output.ttf
//
// The input font is not modified.  Glyphs without overlapping contours,
// and all font tables which do not depend on the glyph outlines, are
// copied to the output unchanged.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"seehuhn.de/go/outlines"
	"seehuhn.de/go/outlines/sfnt"
)

func main() {
	os.Exit(realMain(os.Args))
}

func realMain(args []string) int {
	if len(args) != 3 {
		fmt.Printf("Usage: %s <input_ttf> <output_ttf>\n", filepath.Base(args[0]))
		return 1
	}

	err := run(args[1], args[2])
	if err != nil {
		fmt.Printf("Error processing font: %v\n", err)
		return 1
	}
	return 0
}

func run(inName, outName string) error {
	fmt.Printf("-- Loading font: %s\n", inName)
	font, err := sfnt.ReadFile(inName)
	if err != nil {
		return err
	}

	fmt.Println("-- Removing overlaps (this may take a moment)...")
	err = outlines.RemoveOverlaps(font)
	if err != nil {
		return err
	}

	fmt.Printf("-- Saving to: %s\n", outName)
	err = font.WriteFile(outName)
	if err != nil {
		return err
	}

	fmt.Println("-- Done.")
	return nil
}
