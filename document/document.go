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

// Package document is the page-level façade over the object model.
//
// A [Document] creates pages, hands out their canvases, caches font
// resources, and finalizes everything into the underlying object graph when
// the file is written:
//
//	doc := document.New()
//	page := doc.AddPage(595, 842)
//	c := page.Canvas()
//	... draw on c ...
//	err := doc.WriteFile("out.pdf")
package document

import (
	"io"
	"os"
	"path/filepath"

	pdf "github.com/evildmp/pdfwrite"
	"github.com/evildmp/pdfwrite/font"
)

// Document writes one PDF file.  Pages and fonts are added during the
// construction phase; Write or WriteFile ends that phase and produces the
// complete file.
type Document struct {
	pages []*Page
	fonts map[*font.Font]pdf.Reference

	cos       *pdf.Document
	info      *Info
	finalized bool
}

// New creates an empty document.
func New() *Document {
	return &Document{
		fonts: make(map[*font.Font]pdf.Reference),
		cos:   pdf.NewDocument(),
	}
}

// AddPage appends a page of the given size, in points, and returns it.
func (d *Document) AddPage(width, height float64) *Page {
	dict, _ := d.cos.AddPage(width, height)
	p := &Page{
		doc:       d,
		dict:      dict,
		width:     width,
		height:    height,
		fontNames: make(map[*font.Font]pdf.Name),
		nextFont:  1,
	}
	p.canvas = newPageCanvas(p)
	d.pages = append(d.pages, p)
	return p
}

// RegisterFont returns the reference of the shared font dictionary for f,
// creating and registering the dictionary on first use.  Each distinct font
// is registered at most once per document.
//
// Only the built-in PDF fonts are supported; other fonts are rejected with
// [*font.NotCoreError].
func (d *Document) RegisterFont(f *font.Font) (pdf.Reference, error) {
	if ref, ok := d.fonts[f]; ok {
		return ref, nil
	}
	if !f.IsCore() {
		return pdf.Reference{}, &font.NotCoreError{Name: f.Name}
	}

	dict := pdf.NewDict()
	dict.Set("Type", pdf.Name("Font"))
	dict.Set("Subtype", pdf.Name("Type1"))
	dict.Set("BaseFont", pdf.Name(f.Name))
	ref := d.cos.Add(dict)
	d.fonts[f] = ref
	return ref, nil
}

// SetInfo attaches document metadata.  The metadata is written out as the
// trailer Info dictionary and as an XMP metadata stream in the catalog.
func (d *Document) SetInfo(info *Info) {
	d.info = info
}

// finalize moves the accumulated page canvases into the object graph: each
// canvas buffer becomes a stream object and is attached to its page's
// Contents entry.  Finalization happens once; afterwards the graph is stable
// and repeated writes produce identical bytes.
func (d *Document) finalize() error {
	if d.finalized {
		return nil
	}
	for _, p := range d.pages {
		if p.canvas.Err != nil {
			return p.canvas.Err
		}
	}

	for _, p := range d.pages {
		contents := pdf.NewStream()
		if _, err := contents.Write(p.canvas.Bytes()); err != nil {
			return err
		}
		p.dict.Set("Contents", d.cos.Add(contents))
	}

	if d.info != nil {
		d.cos.SetInfo(d.cos.Add(d.info.dict()))
		if err := d.attachMetadata(); err != nil {
			return err
		}
	}

	d.finalized = true
	return nil
}

// Write finalizes the document and writes the complete file to w.  The file
// is assembled in memory, so a failure never leaves partial output in w.
func (d *Document) Write(w io.Writer) error {
	if err := d.finalize(); err != nil {
		return err
	}
	return d.cos.Write(w)
}

// WriteFile writes the document to the named file.  The output is staged in
// a temporary file next to the target and moved into place only on success,
// so the named file is never left half written.
func (d *Document) WriteFile(name string) error {
	if err := d.finalize(); err != nil {
		return err
	}
	out, err := d.cos.Encode()
	if err != nil {
		return err
	}

	dir := filepath.Dir(name)
	tmp, err := os.CreateTemp(dir, filepath.Base(name)+".tmp*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(out); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), name); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
