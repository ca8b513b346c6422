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

package document

import (
	"fmt"

	pdf "github.com/evildmp/pdfwrite"
	"github.com/evildmp/pdfwrite/font"
	"github.com/evildmp/pdfwrite/graphics"
)

// Page binds a page dictionary to its canvas and its font aliases.
type Page struct {
	doc    *Document
	dict   *pdf.Dict
	canvas *graphics.Canvas

	width, height float64

	// Content-stream font aliases, allocated F1, F2, … in order of first
	// use.  Numbering restarts on every page.
	fontNames map[*font.Font]pdf.Name
	nextFont  int
}

// Canvas returns the page's drawing surface.
func (p *Page) Canvas() *graphics.Canvas {
	return p.canvas
}

// Size returns the page size in points.
func (p *Page) Size() (width, height float64) {
	return p.width, p.height
}

// newPageCanvas creates the canvas covering the whole page.  The page canvas
// sits at the page origin, so its initial translation is by (0, 0).
func newPageCanvas(p *Page) *graphics.Canvas {
	return graphics.NewCanvas(p, 0, 0, p.width, p.height)
}

// RegisterFont returns the content-stream alias for f on this page,
// allocating the alias and the Resources/Font entry on first use.  It
// implements [graphics.FontRegisterer].
func (p *Page) RegisterFont(f *font.Font) (pdf.Name, error) {
	if name, ok := p.fontNames[f]; ok {
		return name, nil
	}

	ref, err := p.doc.RegisterFont(f)
	if err != nil {
		return "", err
	}

	name := pdf.Name(fmt.Sprintf("F%d", p.nextFont))
	p.nextFont++

	fonts, err := p.fontResources()
	if err != nil {
		return "", err
	}
	fonts.Set(name, ref)
	p.fontNames[f] = name
	return name, nil
}

// fontResources returns the Font dictionary of the page's Resources,
// creating it on first use.
func (p *Page) fontResources() (*pdf.Dict, error) {
	obj, _ := p.dict.Get("Resources")
	res, ok := obj.(*pdf.Dict)
	if !ok {
		return nil, fmt.Errorf("page has no Resources dictionary")
	}
	if obj, ok := res.Get("Font"); ok {
		fonts, ok := obj.(*pdf.Dict)
		if !ok {
			return nil, fmt.Errorf("page Resources/Font is not a dictionary")
		}
		return fonts, nil
	}
	fonts := pdf.NewDict()
	res.Set("Font", fonts)
	return fonts, nil
}
