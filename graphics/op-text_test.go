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
	"testing"

	"github.com/google/go-cmp/cmp"

	pdf "github.com/evildmp/pdfwrite"
	"github.com/evildmp/pdfwrite/font"
)

// fakeRegistry assigns F1, F2, ... aliases the way a page does.
type fakeRegistry struct {
	aliases map[*font.Font]pdf.Name
}

func (r *fakeRegistry) RegisterFont(f *font.Font) (pdf.Name, error) {
	if r.aliases == nil {
		r.aliases = make(map[*font.Font]pdf.Name)
	}
	alias, ok := r.aliases[f]
	if !ok {
		alias = pdf.Name(fmt.Sprintf("F%d", len(r.aliases)+1))
		r.aliases[f] = alias
	}
	return alias, nil
}

func testFont() *font.Font {
	return font.New("Test", map[string]font.Glyph{
		"A":         {Code: 65, Width: 722},
		"B":         {Code: 66, Width: 667},
		"parenleft": {Code: 40, Width: 333},
		"backslash": {Code: 92, Width: 278},
		"Ccedilla":  {Code: 200, Width: 722},
		"dotless":   {Code: -1, Width: 500},
		"space":     {Code: 32, Width: 500},
	})
}

func TestShowGlyphs(t *testing.T) {
	cases := []struct {
		name   string
		glyphs []string
		displ  []float64
		size   float64
		want   string
	}{
		{
			name:   "zero displacements",
			glyphs: []string{"A", "B"},
			displ:  []float64{0, 0},
			size:   12,
			want:   "BT\n/F1 12 Tf\n10 20 Td\n[ (A) 722 (B) 667 ] TJ\nET\n",
		},
		{
			name:   "nominal advance cancels width",
			glyphs: []string{"space"},
			displ:  []float64{4},
			size:   8,
			want:   "BT\n/F1 8 Tf\n10 20 Td\n[ ( ) 0 ] TJ\nET\n",
		},
		{
			name:   "partial advance",
			glyphs: []string{"A"},
			displ:  []float64{6},
			size:   12,
			want:   "BT\n/F1 12 Tf\n10 20 Td\n[ (A) 222 ] TJ\nET\n",
		},
		{
			name:   "escaped delimiters",
			glyphs: []string{"parenleft", "backslash"},
			displ:  []float64{0, 0},
			size:   12,
			want:   "BT\n/F1 12 Tf\n10 20 Td\n[ (\\() 333 (\\\\) 278 ] TJ\nET\n",
		},
		{
			name:   "octal escape above ascii",
			glyphs: []string{"Ccedilla"},
			displ:  []float64{0},
			size:   12,
			want:   "BT\n/F1 12 Tf\n10 20 Td\n[ (\\310) 722 ] TJ\nET\n",
		},
		{
			name:   "unencoded glyph",
			glyphs: []string{"dotless"},
			displ:  []float64{0},
			size:   12,
			want:   "BT\n/F1 12 Tf\n10 20 Td\n[ (?) 500 ] TJ\nET\n",
		},
	}

	f := testFont()
	for _, test := range cases {
		c := &Canvas{fonts: &fakeRegistry{}}
		c.ShowGlyphs(10, 20, f, test.size, test.glyphs, test.displ)
		if c.Err != nil {
			t.Errorf("%s: unexpected error %v", test.name, c.Err)
			continue
		}
		if diff := cmp.Diff(test.want, string(c.Bytes())); diff != "" {
			t.Errorf("%s: wrong text block (-want +got):\n%s", test.name, diff)
		}
	}
}

func TestShowGlyphsAliasReuse(t *testing.T) {
	reg := &fakeRegistry{}
	f := testFont()
	g := font.New("Other", map[string]font.Glyph{"A": {Code: 65, Width: 600}})

	c := &Canvas{fonts: reg}
	c.ShowGlyphs(0, 0, f, 12, []string{"A"}, []float64{0})
	c.ShowGlyphs(0, 0, g, 12, []string{"A"}, []float64{0})
	c.ShowGlyphs(0, 0, f, 12, []string{"A"}, []float64{0})
	if c.Err != nil {
		t.Fatal(c.Err)
	}
	if alias := reg.aliases[f]; alias != "F1" {
		t.Errorf("first font got alias %q, expected F1", alias)
	}
	if alias := reg.aliases[g]; alias != "F2" {
		t.Errorf("second font got alias %q, expected F2", alias)
	}
}

func TestShowGlyphsErrors(t *testing.T) {
	f := testFont()

	c := &Canvas{fonts: &fakeRegistry{}}
	c.ShowGlyphs(0, 0, f, 12, []string{"A", "B"}, []float64{0})
	if c.Err == nil {
		t.Error("length mismatch not detected")
	}

	c = &Canvas{fonts: &fakeRegistry{}}
	c.ShowGlyphs(0, 0, f, 12, []string{"Zcaron"}, []float64{0})
	var notFound *font.GlyphNotFoundError
	if !errors.As(c.Err, &notFound) {
		t.Errorf("expected GlyphNotFoundError, got %v", c.Err)
	}
	if len(c.Bytes()) != 0 {
		t.Errorf("partial text block emitted: %q", c.Bytes())
	}

	c = &Canvas{}
	c.ShowGlyphs(0, 0, f, 12, []string{"A"}, []float64{0})
	if c.Err == nil {
		t.Error("missing font registry not detected")
	}
}
