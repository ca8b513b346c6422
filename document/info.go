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
	"time"

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	pdf "github.com/evildmp/pdfwrite"
)

// Info holds document metadata.  Empty fields are omitted from the output.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string

	CreationDate time.Time
}

// dict builds the document information dictionary for the file trailer.
func (info *Info) dict() *pdf.Dict {
	d := pdf.NewDict()
	set := func(key pdf.Name, val string) {
		if val != "" {
			d.Set(key, pdf.TextString(val))
		}
	}
	set("Title", info.Title)
	set("Author", info.Author)
	set("Subject", info.Subject)
	set("Keywords", info.Keywords)
	set("Creator", info.Creator)
	if !info.CreationDate.IsZero() {
		d.Set("CreationDate", pdf.Date(info.CreationDate))
	}
	return d
}

var xmpDefault = language.MustParse("x-default")

// attachMetadata mirrors the Info dictionary as an XMP metadata stream and
// records it in the document catalog.
func (d *Document) attachMetadata() error {
	info := d.info

	dc := &xmp.DublinCore{}
	if info.Title != "" {
		dc.Title.Set(xmpDefault, info.Title)
	}
	if info.Author != "" {
		dc.Creator.Append(xmp.NewProperName(info.Author))
	}
	if info.Subject != "" {
		dc.Description.Set(xmpDefault, info.Subject)
	}

	basic := &xmp.Basic{}
	if !info.CreationDate.IsZero() {
		basic.CreateDate = xmp.NewDate(info.CreationDate)
	}

	packet := xmp.NewPacket()
	if err := packet.Set(dc, basic); err != nil {
		return err
	}

	stream := pdf.NewStream()
	stream.Dict.Set("Type", pdf.Name("Metadata"))
	stream.Dict.Set("Subtype", pdf.Name("XML"))
	if err := packet.Write(stream, nil); err != nil {
		return err
	}

	catalog, _ := d.cos.Catalog()
	catalog.Set("Metadata", d.cos.Add(stream))
	return nil
}
