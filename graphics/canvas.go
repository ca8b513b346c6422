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

// Package graphics generates PDF content streams.
//
// A [Canvas] accumulates drawing and text operators for one page, or for a
// nested region which is later spliced into its parent.  The operator bytes
// become the page's content stream when the document is written.
package graphics

import (
	"bytes"
	"strconv"

	pdf "github.com/evildmp/pdfwrite"
	"github.com/evildmp/pdfwrite/font"
)

// FontRegisterer allocates content-stream alias names for fonts.  It is
// implemented by the page façade: the alias is recorded in the page's
// Resources dictionary and reused for every later use of the same font on
// that page.
type FontRegisterer interface {
	RegisterFont(f *font.Font) (pdf.Name, error)
}

// Canvas is an append-only buffer of content-stream operators.
//
// Operations do not return errors.  Instead the first failure is recorded in
// Err and all subsequent operations become no-ops, so that call sites can
// draw without checking after every operator; the error surfaces when the
// page is finalized.
type Canvas struct {
	// Err holds the first error encountered while drawing.
	Err error

	// Left, Bottom, Width and Height describe the region the canvas was
	// created for, in the coordinates of its parent.
	Left, Bottom, Width, Height float64

	buf   bytes.Buffer
	fonts FontRegisterer
}

// NewCanvas creates a canvas for the given region.  The first emitted
// operator translates the coordinate system to (left, bottom), so that
// drawing operations use region-relative coordinates.
//
// fonts may be nil for canvases which show no text.
func NewCanvas(fonts FontRegisterer, left, bottom, width, height float64) *Canvas {
	c := &Canvas{
		Left:   left,
		Bottom: bottom,
		Width:  width,
		Height: height,
		fonts:  fonts,
	}
	c.Translate(left, bottom)
	return c
}

// New creates a nested canvas for a sub-region.  The child shares the
// page's font registry but owns its own buffer; nothing appears in the
// parent until [Canvas.Append] is called.
func (c *Canvas) New(left, bottom, width, height float64) *Canvas {
	return NewCanvas(c.fonts, left, bottom, width, height)
}

// Append splices the child canvas's operators into c, bracketed by
// save/restore so the child's coordinate translation stays local.
func (c *Canvas) Append(child *Canvas) {
	if c.Err != nil {
		return
	}
	if child.Err != nil {
		c.Err = child.Err
		return
	}
	c.SaveState()
	c.buf.Write(child.buf.Bytes())
	c.RestoreState()
}

// Bytes returns the operator bytes accumulated so far.
func (c *Canvas) Bytes() []byte {
	return c.buf.Bytes()
}

// coord formats a coordinate or other numeric operand.
func coord(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
