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

// Document owns the indirect objects of one PDF file.
//
// Objects are registered with [Document.Add], which assigns identifiers
// 1, 2, 3, … in registration order.  Identifiers are never reused or
// renumbered, and registration order is also the order in which the object
// bodies appear in the output file.
//
// A new Document already contains its two structural objects: the Pages tree
// root (object 1) and the Catalog (object 2).
type Document struct {
	objects []Object

	catalog    *Dict
	catalogRef Reference
	pages      *Dict
	pagesRef   Reference

	kids    Array
	infoRef Reference
}

// NewDocument creates an empty document with its Catalog and Pages tree.
func NewDocument() *Document {
	d := &Document{}

	d.pages = NewDict()
	d.pages.Set("Type", Name("Pages"))
	d.pages.Set("Count", Integer(0))
	d.pages.Set("Kids", Array{})
	d.pagesRef = d.Add(d.pages)

	d.catalog = NewDict()
	d.catalog.Set("Type", Name("Catalog"))
	d.catalog.Set("Pages", d.pagesRef)
	d.catalogRef = d.Add(d.catalog)

	return d
}

// Add registers obj as an indirect object and returns the reference which
// identifies it.  Each value must be registered at most once; registering a
// value twice would store two copies of its body in the file.
func (d *Document) Add(obj Object) Reference {
	d.objects = append(d.objects, obj)
	return Reference{Number: len(d.objects)}
}

// Get resolves a reference to the registered object.  An identifier which
// was never handed out by this document is reported as
// [*UnknownReferenceError].
func (d *Document) Get(ref Reference) (Object, error) {
	if ref.Number < 1 || ref.Number > len(d.objects) || ref.Generation != 0 {
		return nil, &UnknownReferenceError{Ref: ref}
	}
	return d.objects[ref.Number-1], nil
}

// Len returns the number of registered objects.
func (d *Document) Len() int {
	return len(d.objects)
}

// Catalog returns the document catalog and its reference.
func (d *Document) Catalog() (*Dict, Reference) {
	return d.catalog, d.catalogRef
}

// Pages returns the root of the page tree and its reference.
func (d *Document) Pages() (*Dict, Reference) {
	return d.pages, d.pagesRef
}

// SetInfo records ref as the document information dictionary.  The reference
// is written to the Info entry of the file trailer.
func (d *Document) SetInfo(ref Reference) {
	d.infoRef = ref
}

// AddPage appends a new page of the given size to the page tree.  It returns
// the page dictionary, so that the caller can attach contents and resources,
// and the page's reference.
func (d *Document) AddPage(width, height float64) (*Dict, Reference) {
	page := NewDict()
	ref := d.Add(page)

	page.Set("Type", Name("Page"))
	page.Set("Parent", d.pagesRef)
	page.Set("Resources", NewDict())
	page.Set("MediaBox", Array{Integer(0), Integer(0), Real(width), Real(height)})

	d.kids = append(d.kids, ref)
	kids := make(Array, len(d.kids))
	copy(kids, d.kids)
	d.pages.Set("Kids", kids)
	d.pages.Set("Count", Integer(len(d.kids)))

	return page, ref
}
