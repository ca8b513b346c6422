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
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// parseXRef locates the cross-reference table via the startxref anchor and
// returns the recorded byte offset of every object, in identifier order.
func parseXRef(t *testing.T, out []byte) []int64 {
	t.Helper()

	idx := bytes.LastIndex(out, []byte("startxref\n"))
	if idx < 0 {
		t.Fatal("startxref not found")
	}
	rest := out[idx+len("startxref\n"):]
	end := bytes.IndexByte(rest, '\n')
	xrefPos, err := strconv.Atoi(string(rest[:end]))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(rest[end+1:], []byte("%%EOF\n")) {
		t.Errorf("file does not end with %%%%EOF, got %q", rest[end+1:])
	}

	table := out[xrefPos:]
	var count int
	if _, err := fmt.Sscanf(string(table), "xref\n0 %d\n", &count); err != nil {
		t.Fatalf("cannot parse xref header: %v", err)
	}
	header := fmt.Sprintf("xref\n0 %d\n", count)
	entries := table[len(header):]

	const entryLen = 20 // 10+1+5+1+1+1+1, fixed-width
	if string(entries[:entryLen]) != "0000000000 65535 f \n" {
		t.Errorf("bad free-list head entry %q", entries[:entryLen])
	}

	var offsets []int64
	for i := 1; i < count; i++ {
		entry := string(entries[i*entryLen : (i+1)*entryLen])
		var offset int64
		var gen int
		if _, err := fmt.Sscanf(entry, "%d %d n \n", &offset, &gen); err != nil {
			t.Fatalf("cannot parse xref entry %q: %v", entry, err)
		}
		if len(entry) != entryLen || entry[19] != '\n' || entry[18] != ' ' || entry[17] != 'n' {
			t.Errorf("entry %q does not have the fixed layout", entry)
		}
		if gen != 0 {
			t.Errorf("entry %d: expected generation 0 but got %d", i, gen)
		}
		offsets = append(offsets, offset)
	}
	return offsets
}

func TestFileLayout(t *testing.T) {
	d := NewDocument()
	d.AddPage(200, 200)

	out, err := d.Encode()
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.HasPrefix(out, []byte("%PDF-1.4\n%\xDC\xE1\xD8\xB7\n")) {
		t.Errorf("bad file header %q", out[:20])
	}
	if !bytes.Contains(out, []byte("trailer\n<< /Size 4 /Root 2 0 R >>\n")) {
		t.Error("trailer dictionary missing or malformed")
	}
}

func TestXRefOffsets(t *testing.T) {
	d := NewDocument()
	d.AddPage(200, 200)
	d.AddPage(100, 300)
	contents := NewStream()
	contents.Write([]byte("0 0 m\n10 10 l\nh\n"))
	d.Add(contents)

	out, err := d.Encode()
	if err != nil {
		t.Fatal(err)
	}

	offsets := parseXRef(t, out)
	if len(offsets) != d.Len() {
		t.Fatalf("expected %d xref entries but got %d", d.Len(), len(offsets))
	}
	for i, offset := range offsets {
		head := fmt.Sprintf("%d 0 obj\n", i+1)
		if !bytes.HasPrefix(out[offset:], []byte(head)) {
			t.Errorf("object %d: offset %d does not point at %q (found %q)",
				i+1, offset, head, out[offset:offset+int64(len(head))])
		}
	}
}

func TestEncodeDeterminism(t *testing.T) {
	d := NewDocument()
	page, _ := d.AddPage(200, 200)
	contents := NewStream()
	contents.Write([]byte("q\nQ\n"))
	page.Set("Contents", d.Add(contents))

	first, err := d.Encode()
	if err != nil {
		t.Fatal(err)
	}
	second, err := d.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated encode differs (-first +second):\n%s", diff)
	}
}

func TestTrailerInfo(t *testing.T) {
	d := NewDocument()
	info := NewDict()
	info.Set("Title", TextString("Test"))
	ref := d.Add(info)
	d.SetInfo(ref)

	out, err := d.Encode()
	if err != nil {
		t.Fatal(err)
	}
	want := fmt.Sprintf("trailer\n<< /Size %d /Root 2 0 R /Info %d 0 R >>\n",
		d.Len()+1, ref.Number)
	if !bytes.Contains(out, []byte(want)) {
		t.Errorf("trailer does not contain %q", want)
	}
}
