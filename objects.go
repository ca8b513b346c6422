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
	"strconv"
	"strings"
)

// Object represents a value in a PDF file.  The native PDF types are
// implemented by Bool, Integer, Real, String, Name, Null, Array, *Dict,
// *Stream and Reference.
//
// An Object on its own is always direct: its encoding is inlined wherever it
// is used.  A value becomes indirect by registering it with a [Document]; the
// Reference returned by [Document.Add] is what appears at use sites.
type Object interface {
	// PDF writes the direct lexical form of the object to w.
	PDF(w io.Writer) error
}

// Bool represents a boolean value in a PDF file.
type Bool bool

// PDF implements the [Object] interface.
func (x Bool) PDF(w io.Writer) error {
	s := "false"
	if x {
		s = "true"
	}
	_, err := io.WriteString(w, s)
	return err
}

// Integer represents an integer constant in a PDF file.
type Integer int64

// PDF implements the [Object] interface.
func (x Integer) PDF(w io.Writer) error {
	_, err := io.WriteString(w, strconv.FormatInt(int64(x), 10))
	return err
}

// Real represents a real number in a PDF file.  The encoding is the shortest
// decimal representation which round-trips to the same float64; exponent
// notation is never used, since PDF does not allow it.
type Real float64

// PDF implements the [Object] interface.
func (x Real) PDF(w io.Writer) error {
	_, err := io.WriteString(w, strconv.FormatFloat(float64(x), 'f', -1, 64))
	return err
}

// stringEscaper rewrites the characters which cannot appear literally inside
// a PDF string.  The replacement is done in a single pass, so that the
// backslashes introduced for one character are not escaped again.
//
// Control and non-ASCII bytes other than the ones listed here are written
// as-is; octal escapes are not used.
var stringEscaper = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\b", `\b`,
	"\f", `\f`,
	`\`, `\\`,
	"(", `\(`,
	")", `\)`,
)

// String represents a string in a PDF file.  Use [TextString] to encode
// general Unicode text.
type String []byte

// PDF implements the [Object] interface.
func (x String) PDF(w io.Writer) error {
	if _, err := io.WriteString(w, "("); err != nil {
		return err
	}
	if _, err := stringEscaper.WriteString(w, string(x)); err != nil {
		return err
	}
	_, err := io.WriteString(w, ")")
	return err
}

// Name represents a name object in a PDF file.
//
// Delimiter characters inside the name are not escaped.  All names used by
// this writer are plain ASCII identifiers, so no escaping is required.
type Name string

// PDF implements the [Object] interface.
func (x Name) PDF(w io.Writer) error {
	_, err := io.WriteString(w, "/"+string(x))
	return err
}

// Null represents the PDF null object.
type Null struct{}

// PDF implements the [Object] interface.
func (x Null) PDF(w io.Writer) error {
	_, err := io.WriteString(w, "null")
	return err
}

// Array represents an array of objects in a PDF file.  A nil element is
// written as null.
type Array []Object

// PDF implements the [Object] interface.
func (x Array) PDF(w io.Writer) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	for i, elem := range x {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		var err error
		if elem == nil {
			_, err = io.WriteString(w, "null")
		} else {
			err = elem.PDF(w)
		}
		if err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]")
	return err
}

// Reference identifies an indirect object by identifier and generation.  It
// is a non-owning lookup key into the registry of the [Document] which handed
// it out; use [Document.Get] to resolve it.
//
// The zero value does not refer to any object.
type Reference struct {
	Number     int
	Generation uint16
}

// IsZero reports whether r is the zero Reference.
func (r Reference) IsZero() bool {
	return r == Reference{}
}

func (r Reference) String() string {
	return fmt.Sprintf("obj_%d@%d", r.Number, r.Generation)
}

// PDF implements the [Object] interface.  The encoding is the use-site
// reference token, not the body of the referenced object.
func (r Reference) PDF(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d %d R", r.Number, r.Generation)
	return err
}

// format encodes a single object to a string, for error messages and tests.
func format(obj Object) string {
	if obj == nil {
		return "null"
	}
	b := &strings.Builder{}
	_ = obj.PDF(b)
	return b.String()
}
