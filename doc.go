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

// Package pdf implements the PDF object model and file writer.
//
// A [Document] owns a registry of indirect objects.  Values implementing the
// [Object] interface are registered with [Document.Add], which assigns
// sequential identifiers; the returned [Reference] is used wherever the
// object is mentioned from other objects.  [Document.Encode] serializes the
// whole graph in two passes: the object bodies are written in registration
// order while their byte offsets are recorded, then the cross-reference
// table pointing back at those offsets is appended, followed by the file
// trailer.
//
// The package writes complete, uncompressed PDF 1.4 files in a single pass.
// Reading or updating existing files is not supported.
//
// Page contents are produced separately, as content streams; see the
// graphics package for the drawing API and the document package for the
// page-level façade which ties the two together.
package pdf
