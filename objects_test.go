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
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	withType := NewDict()
	withType.Set("Type", Name("Catalog"))
	withType.Set("Pages", Reference{Number: 1})

	ordered := NewDict()
	ordered.Set("Zebra", Integer(1))
	ordered.Set("Alpha", Integer(2))
	ordered.Set("Mid", Integer(3))

	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Integer(0), "0"},
		{Integer(-42), "-42"},
		{Real(0), "0"},
		{Real(1.5), "1.5"},
		{Real(-0.0001), "-0.0001"},
		{Real(200), "200"},
		{Null{}, "null"},
		{Name("Type"), "/Type"},
		{String(""), "()"},
		{String("hello"), "(hello)"},
		{String("a (test) b"), `(a \(test\) b)`},
		{String("tab\there"), `(tab\there)`},
		{String("line\nbreak"), `(line\nbreak)`},
		{String("cr\rff\fbs\b"), `(cr\rff\fbs\b)`},
		{String(`back\slash`), `(back\\slash)`},
		{Array{}, "[]"},
		{Array{Integer(1), nil, Integer(3)}, "[1 null 3]"},
		{Array{Name("A"), String("b")}, "[/A (b)]"},
		{Reference{Number: 7}, "7 0 R"},
		{NewDict(), "<< >>"},
		{withType, "<< /Type /Catalog /Pages 1 0 R >>"},
		{ordered, "<< /Zebra 1 /Alpha 2 /Mid 3 >>"},
	}
	for _, test := range cases {
		out := format(test.in)
		if out != test.out {
			t.Errorf("wrong encoding: expected %q but got %q", test.out, out)
		}
	}
}

func TestDictOrder(t *testing.T) {
	d := NewDict()
	d.Set("B", Integer(1))
	d.Set("A", Integer(2))
	d.Set("C", Integer(3))
	d.Set("A", Integer(4)) // update keeps position

	want := "<< /B 1 /A 4 /C 3 >>"
	if got := format(d); got != want {
		t.Errorf("expected %q but got %q", want, got)
	}

	if n := d.Len(); n != 3 {
		t.Errorf("expected 3 entries but got %d", n)
	}
	val, ok := d.Get("A")
	if !ok || val != Integer(4) {
		t.Errorf("expected A=4 but got %v (present=%t)", val, ok)
	}
}

// unescapeString undoes the escaping of String.PDF, for round-trip checks.
func unescapeString(s string) string {
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	b := &strings.Builder{}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func TestStringRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"plain text",
		"with (parens) and \\ backslash",
		"\n\r\t\b\f",
		`\n literal`,
		"()()((",
		"mixed\n(all)\\the\tthings\r",
	}
	for _, in := range cases {
		out := unescapeString(format(String(in)))
		if out != in {
			t.Errorf("round trip failed: %q -> %q", in, out)
		}
	}
}
