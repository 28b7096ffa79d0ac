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

import "seehuhn.de/go/outlines/sfnt"

// ProcessFile reads the font from inName, removes overlapping contours and
// writes the result to outName.  The output file is only created once the
// font has been read and processed successfully.
func ProcessFile(inName, outName string) error {
	f, err := sfnt.ReadFile(inName)
	if err != nil {
		return err
	}
	err = RemoveOverlaps(f)
	if err != nil {
		return err
	}
	return f.WriteFile(outName)
}
