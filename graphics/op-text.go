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

package graphics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/evildmp/pdfwrite/font"
)

// This file implements glyph-positioned text showing.

// ShowGlyphs places a run of glyphs starting at (x, y).
//
// The glyphs are given by name and are paired positionally with
// xDisplacements, the horizontal advance of each glyph as decided by the
// layout layer, in text space units.  The difference between a glyph's
// nominal width and its displacement becomes the inter-glyph adjustment of
// the emitted "TJ" array, after conversion to glyph space (1000 units per em,
// so scaled by 1000/size).
//
// The font is registered with the page and the document on first use.  A
// glyph name missing from the font's metrics is an error: the layout layer
// must only request glyphs the metrics cover.
func (c *Canvas) ShowGlyphs(x, y float64, f *font.Font, size float64, glyphs []string, xDisplacements []float64) {
	if c.Err != nil {
		return
	}
	if len(glyphs) != len(xDisplacements) {
		c.Err = fmt.Errorf("ShowGlyphs: %d glyphs but %d displacements",
			len(glyphs), len(xDisplacements))
		return
	}
	if c.fonts == nil {
		c.Err = errors.New("ShowGlyphs: canvas has no font registry")
		return
	}

	run := &strings.Builder{}
	for i, name := range glyphs {
		g, err := f.Glyph(name)
		if err != nil {
			c.Err = err
			return
		}
		displacement := xDisplacements[i] * 1000 / size
		run.WriteByte('(')
		writeGlyphChar(run, g.Code)
		run.WriteString(") ")
		fmt.Fprintf(run, "%d ", int(g.Width-displacement))
	}

	alias, err := c.fonts.RegisterFont(f)
	if err != nil {
		c.Err = err
		return
	}

	fmt.Fprintln(&c.buf, "BT")
	fmt.Fprintf(&c.buf, "/%s %s Tf\n", alias, coord(size))
	fmt.Fprintf(&c.buf, "%s %s Td\n", coord(x), coord(y))
	fmt.Fprintf(&c.buf, "[ %s] TJ\n", run.String())
	_, c.Err = fmt.Fprintln(&c.buf, "ET")
}

// writeGlyphChar writes the content-stream representation of one character
// code: "?" for unencoded glyphs, the ASCII character (with "\", "(" and ")"
// escaped) for codes up to 127, and a three-digit octal escape above that.
func writeGlyphChar(b *strings.Builder, code int) {
	switch {
	case code < 0:
		b.WriteByte('?')
	case code > 127:
		fmt.Fprintf(b, `\%03o`, code)
	default:
		ch := byte(code)
		if ch == '\\' || ch == '(' || ch == ')' {
			b.WriteByte('\\')
		}
		b.WriteByte(ch)
	}
}
