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

package pdf

import (
	"time"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
)

// TextString encodes s for use as a PDF "text string", e.g. in the document
// information dictionary.  Text which fits into the Latin-1 range is stored
// as single bytes; everything else is stored as UTF-16BE with a leading byte
// order mark.
func TextString(s string) String {
	enc, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err == nil && latin1IsSafe(enc) {
		return String(enc)
	}

	code := utf16.Encode([]rune(s))
	buf := make([]byte, 2*len(code)+2)
	buf[0] = 0xFE
	buf[1] = 0xFF
	for i, c := range code {
		buf[2*i+2] = byte(c >> 8)
		buf[2*i+3] = byte(c)
	}
	return String(buf)
}

// latin1IsSafe reports whether the Latin-1 bytes have the same meaning under
// PDFDocEncoding.  The two encodings agree except for the code points from
// DEL up to (but not including) the inverted exclamation mark.
func latin1IsSafe(b []byte) bool {
	for _, c := range b {
		if c >= 0x7F && c < 0xA1 {
			return false
		}
	}
	return true
}

// Date encodes date and time in the PDF date string format.
func Date(t time.Time) String {
	s := t.Format("D:20060102150405-0700")
	k := len(s) - 2
	return String(s[:k] + "'" + s[k:])
}
