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

import (
	"io"

	"seehuhn.de/go/postscript/afm"
)

// ReadAFM reads glyph metrics from Adobe Font Metrics data.
//
// The character code of each glyph is taken from the font's built-in
// encoding vector; glyphs outside the encoding get code -1.
func ReadAFM(r io.Reader) (*Font, error) {
	metrics, err := afm.Read(r)
	if err != nil {
		return nil, err
	}

	glyphs := make(map[string]Glyph, len(metrics.Glyphs))
	for name, info := range metrics.Glyphs {
		glyphs[name] = Glyph{Code: -1, Width: float64(info.WidthX)}
	}
	for code, name := range metrics.Encoding {
		if name == ".notdef" {
			continue
		}
		if g, ok := glyphs[name]; ok {
			g.Code = code
			glyphs[name] = g
		}
	}

	return &Font{Name: metrics.FontName, glyphs: glyphs}, nil
}
