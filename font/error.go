// github.com/evildmp/pdfwrite - a low-level PDF writer
// Copyright (C) 2026  The pdfwrite authors
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

package font

import "fmt"

// GlyphNotFoundError indicates that a glyph name was requested which is not
// present in the font's metrics.
type GlyphNotFoundError struct {
	Font  string
	Glyph string
}

func (err *GlyphNotFoundError) Error() string {
	return fmt.Sprintf("font %s: no glyph %q", err.Font, err.Glyph)
}

// NotCoreError indicates an attempt to register a font which is not one of
// the 14 standard PDF fonts.  Embedding other fonts is not supported.
type NotCoreError struct {
	Name string
}

func (err *NotCoreError) Error() string {
	return fmt.Sprintf("font %s is not a standard PDF font", err.Name)
}
