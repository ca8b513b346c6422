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
	"fmt"
	"io"
)

// xRefTable records the byte offset of each indirect object body, in
// registration order.  It is rebuilt from scratch on every encode.
type xRefTable struct {
	offsets []int64
}

func (t *xRefTable) add(pos int64) {
	t.offsets = append(t.offsets, pos)
}

// write emits the table in the fixed textual cross-reference format.
// Readers locate entries by column position, so the field widths and the
// trailing space of each entry are mandatory.  The table has one extra
// entry, the head of the free list, in slot 0.
func (t *xRefTable) write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "xref\n0 %d\n", len(t.offsets)+1); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "0000000000 65535 f \n"); err != nil {
		return err
	}
	for _, offset := range t.offsets {
		// Generation numbers are always 0: this writer does not support
		// incremental updates.
		if _, err := fmt.Fprintf(w, "%010d %05d n \n", offset, 0); err != nil {
			return err
		}
	}
	return nil
}
