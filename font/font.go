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

// Package font provides the glyph metrics consumed by the content-stream
// canvas: for every glyph name a character code and a horizontal advance
// width in glyph space (1000 units per em).
//
// Metrics for the built-in PDF fonts are loaded from Adobe Font Metrics
// files with [ReadAFM].  The layout layer is expected to request only glyph
// names which exist in the metrics; a missing glyph indicates an upstream
// inconsistency and is reported as an error, never substituted.
package font

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Glyph holds the metrics of one named glyph.
type Glyph struct {
	// Code is the character code of the glyph in the font's built-in
	// encoding, or -1 if the glyph is not encoded.
	Code int

	// Width is the horizontal advance in glyph space units.
	Width float64
}

// Font provides glyph metrics for one font.
//
// Two pages using the same *Font share a single font resource in the
// document; the pointer is the cache key.
type Font struct {
	// Name is the PostScript name of the font, used as BaseFont in the
	// font dictionary.
	Name string

	glyphs map[string]Glyph
}

// New creates a font from an explicit glyph table.
func New(name string, glyphs map[string]Glyph) *Font {
	return &Font{Name: name, glyphs: glyphs}
}

// Glyph returns the metrics for the named glyph.
func (f *Font) Glyph(name string) (Glyph, error) {
	g, ok := f.glyphs[name]
	if !ok {
		return Glyph{}, &GlyphNotFoundError{Font: f.Name, Glyph: name}
	}
	return g, nil
}

// GlyphNames returns the names of all glyphs in the font, sorted.
func (f *Font) GlyphNames() []string {
	names := maps.Keys(f.glyphs)
	slices.Sort(names)
	return names
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return len(f.glyphs)
}

// IsCore reports whether the font is one of the built-in PDF fonts.  Only
// core fonts can be used by this writer, since font embedding is not
// supported.
func (f *Font) IsCore() bool {
	return IsCoreName(f.Name)
}
