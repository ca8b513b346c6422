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

// CoreFontNames lists the PostScript names of the 14 standard PDF fonts.
// Conforming readers provide these fonts without an embedded font program.
var CoreFontNames = []string{
	"Courier",
	"Courier-Bold",
	"Courier-BoldOblique",
	"Courier-Oblique",
	"Helvetica",
	"Helvetica-Bold",
	"Helvetica-BoldOblique",
	"Helvetica-Oblique",
	"Times-Roman",
	"Times-Bold",
	"Times-BoldItalic",
	"Times-Italic",
	"Symbol",
	"ZapfDingbats",
}

var coreFonts = func() map[string]bool {
	m := make(map[string]bool, len(CoreFontNames))
	for _, name := range CoreFontNames {
		m[name] = true
	}
	return m
}()

// IsCoreName reports whether name is the PostScript name of one of the 14
// standard PDF fonts.
func IsCoreName(name string) bool {
	return coreFonts[name]
}
