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
	"bytes"
	"fmt"
	"io"
)

// Version is the PDF language version emitted in the file header.
const Version = "1.4"

// binaryMarker is a comment line of high-bit bytes directly after the header
// line.  It makes file-type heuristics treat the output as binary data.
const binaryMarker = "%\xDC\xE1\xD8\xB7\n"

// Encode serializes the document to a complete PDF file.
//
// The output is a pure function of the registered objects: object bodies are
// written in registration order, each body's byte offset is recorded, and the
// cross-reference table, trailer and startxref anchor are derived from those
// offsets.  Encoding an unmodified document twice yields identical bytes.
func (d *Document) Encode() ([]byte, error) {
	buf := &bytes.Buffer{}
	w := &posWriter{w: buf}

	_, err := fmt.Fprintf(w, "%%PDF-%s\n%s", Version, binaryMarker)
	if err != nil {
		return nil, err
	}

	xref := &xRefTable{}
	for i, obj := range d.objects {
		xref.add(w.pos)
		if _, err := fmt.Fprintf(w, "%d 0 obj\n", i+1); err != nil {
			return nil, err
		}
		if obj == nil {
			_, err = io.WriteString(w, "null")
		} else {
			err = obj.PDF(w)
		}
		if err != nil {
			return nil, err
		}
		if _, err := io.WriteString(w, "\nendobj\n"); err != nil {
			return nil, err
		}
	}

	xrefPos := w.pos
	if err := xref.write(w); err != nil {
		return nil, err
	}

	trailer := NewDict()
	trailer.Set("Size", Integer(len(d.objects)+1))
	trailer.Set("Root", d.catalogRef)
	if !d.infoRef.IsZero() {
		trailer.Set("Info", d.infoRef)
	}
	if _, err := io.WriteString(w, "trailer\n"); err != nil {
		return nil, err
	}
	if err := trailer.PDF(w); err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintf(w, "\nstartxref\n%d\n%%%%EOF\n", xrefPos); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Write encodes the document and copies the result to w in one call.  The
// file is assembled in memory first, so w never sees partial output.
func (d *Document) Write(w io.Writer) error {
	out, err := d.Encode()
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// posWriter counts the bytes written to the underlying writer, so that
// object offsets can be recorded while the bodies are emitted.
type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
