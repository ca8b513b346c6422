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
	"io"
	"strconv"
	"strings"
)

// Dict represents a dictionary object in a PDF file.
//
// Entries are encoded in insertion order.  Readers accept any key order, but
// a fixed order makes the output reproducible byte-for-byte, so the order is
// part of the encoding contract.  Dict is therefore not a plain Go map.
type Dict struct {
	keys []Name
	vals map[Name]Object
}

// NewDict allocates an empty dictionary.
func NewDict() *Dict {
	return &Dict{vals: make(map[Name]Object)}
}

// Set stores an entry in the dictionary.  Updating an existing key keeps the
// key's original position.
func (d *Dict) Set(key Name, val Object) {
	if _, ok := d.vals[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.vals[key] = val
}

// Get returns the value stored for key, if any.
func (d *Dict) Get(key Name) (Object, bool) {
	val, ok := d.vals[key]
	return val, ok
}

// Len returns the number of entries in the dictionary.
func (d *Dict) Len() int {
	return len(d.keys)
}

// Keys returns the dictionary keys in insertion order.
func (d *Dict) Keys() []Name {
	keys := make([]Name, len(d.keys))
	copy(keys, d.keys)
	return keys
}

func (d *Dict) String() string {
	res := []string{"Dict"}
	if tp, ok := d.vals["Type"].(Name); ok {
		res[0] = string(tp) + " Dict"
	}
	res = append(res, strconv.Itoa(len(d.keys))+" entries")
	return "<" + strings.Join(res, ", ") + ">"
}

// PDF implements the [Object] interface.
func (d *Dict) PDF(w io.Writer) error {
	if d == nil {
		_, err := io.WriteString(w, "null")
		return err
	}

	if _, err := io.WriteString(w, "<<"); err != nil {
		return err
	}
	for _, key := range d.keys {
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
		if err := key.PDF(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
		val := d.vals[key]
		var err error
		if val == nil {
			_, err = io.WriteString(w, "null")
		} else {
			err = val.PDF(w)
		}
		if err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, " >>")
	return err
}
