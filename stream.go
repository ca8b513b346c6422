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
	"io"
)

// Stream represents a stream object in a PDF file: a dictionary together
// with a byte payload.  The payload is always written uncompressed.
//
// Stream implements io.Writer; drawing code appends operator bytes until the
// stream is encoded.  The Length entry of the dictionary is derived from the
// payload when the stream is encoded and must not be set by the caller.
type Stream struct {
	Dict *Dict

	buf bytes.Buffer
}

// NewStream allocates an empty stream.
func NewStream() *Stream {
	return &Stream{Dict: NewDict()}
}

// Write appends p to the stream payload.  It never fails.
func (s *Stream) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

// Len returns the current payload size in bytes.
func (s *Stream) Len() int {
	return s.buf.Len()
}

// PDF implements the [Object] interface.
func (s *Stream) PDF(w io.Writer) error {
	s.Dict.Set("Length", Integer(s.buf.Len()))
	if err := s.Dict.PDF(w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\nstream\n"); err != nil {
		return err
	}
	if _, err := w.Write(s.buf.Bytes()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\nendstream")
	return err
}
